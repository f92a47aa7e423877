package gameplay

import (
	"math/rand"

	"github.com/leonelquinteros/gotext"

	engineinput "detectivequest/pkg/engine/input"
	"detectivequest/pkg/engine/world"
	"detectivequest/pkg/game/state"
)

// ProcessIntent handles a high-level input intent from the tiered input
// system. Rejected moves and no-op requests leave the session state
// untouched; in particular the current room is not re-visited.
func ProcessIntent(g *state.Game, intent engineinput.Intent) {
	switch intent.Action {
	case engineinput.ActionMoveLeft:
		Move(g, world.Left)

	case engineinput.ActionMoveRight:
		Move(g, world.Right)

	case engineinput.ActionQuit:
		g.EndExploration()
		logMessage(g, "%s", gotext.Get("You chose to end the exploration."))

	case engineinput.ActionReviewClues:
		reviewClues(g)

	case engineinput.ActionHint:
		showHint(g)

	default:
		logMessage(g, "%s", gotext.Get("Unknown command. Use 'e', 'd' or 's'."))
	}
}

// reviewClues logs the collected clues so far, in alphabetical order.
func reviewClues(g *state.Game) {
	if g.Clues.Len() == 0 {
		logMessage(g, "%s", gotext.Get("No clues collected yet."))
		return
	}
	logMessage(g, "%s", gotext.Get("Collected so far:"))
	g.Clues.InOrder(func(clue string, count int) {
		logMessage(g, "CLUE{%s} ×%d", clue, count)
	})
}

// showHint logs how much of the mansion remains unsearched, plus one of
// the prepared hints when any exist.
func showHint(g *state.Game) {
	remaining := g.Start.CountUncollected()
	logMessage(g, "%s", gotext.Get("%d clue(s) remain undiscovered in the mansion.", remaining))

	if len(g.Hints) > 0 {
		idx := rand.Intn(len(g.Hints))
		logMessage(g, "%s", g.Hints[idx])
	}
}
