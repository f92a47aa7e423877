package state

import (
	"github.com/zyedidia/generic/mapset"

	"detectivequest/pkg/engine/world"
	"detectivequest/pkg/game/ledger"
	"detectivequest/pkg/game/suspects"
)

// Game represents one investigation session. It exclusively owns the
// mansion map and the clue ledger; the suspect table is built before the
// session starts and read-only during it.
type Game struct {
	CurrentRoom *world.Room
	Start       *world.Room

	Clues    *ledger.Node
	Suspects *suspects.Table

	VisitedRooms mapset.Set[*world.Room]

	Messages []string
	Hints    []string

	Ended bool
	Moves int
}

// NewGame creates a new game instance
func NewGame() *Game {
	return &Game{
		VisitedRooms: mapset.New[*world.Room](),
		Messages:     make([]string, 0),
	}
}

// AddMessage adds a message to the game's message log
func (g *Game) AddMessage(msg string) {
	const maxMessages = 5
	g.Messages = append(g.Messages, msg)

	// Keep only the last maxMessages
	if len(g.Messages) > maxMessages {
		g.Messages = g.Messages[len(g.Messages)-maxMessages:]
	}
}

// ClearMessages clears all messages
func (g *Game) ClearMessages() {
	g.Messages = make([]string, 0)
}

// AddHint adds a hint to the game
func (g *Game) AddHint(hint string) {
	g.Hints = append(g.Hints, hint)
}

// RecordClue files a discovered clue in the ledger. The ledger root may
// change on the first clue of the session.
func (g *Game) RecordClue(clue string) {
	g.Clues = ledger.Insert(g.Clues, clue)
}

// EndExploration marks the exploration phase as finished. The map and the
// ledger stay alive for the accusation phase.
func (g *Game) EndExploration() {
	g.Ended = true
}
