// Package gameplay provides the exploration session logic: movement over
// the mansion map, clue collection, and the accusation verdict.
package gameplay

import (
	"strings"

	"github.com/leonelquinteros/gotext"

	"detectivequest/pkg/engine/world"
	"detectivequest/pkg/game/renderer"
	"detectivequest/pkg/game/state"
)

// EnterRoom performs the visit that fires on every genuine entry to a
// room, the starting room included. Rejected moves must never re-run it.
func EnterRoom(g *state.Game, room *world.Room) {
	if room == nil {
		return
	}
	g.CurrentRoom = room
	g.VisitedRooms.Put(room)

	outcome := room.Visit()
	switch outcome.Kind {
	case world.ClueFound:
		g.RecordClue(outcome.Clue)
		logMessage(g, "%s CLUE{%s}", gotext.Get("Clue found:"), outcome.Clue)
	case world.AlreadyCollected:
		logMessage(g, "%s", gotext.Get("This room's clue was collected earlier."))
	default:
		logMessage(g, "%s", gotext.Get("No clue in this room."))
	}
}

// Move attempts a step in the given direction. Dead ends reject the move
// and leave the session exactly where it was, without re-visiting.
func Move(g *state.Game, dir world.Direction) {
	if g.CurrentRoom == nil {
		return
	}
	next := g.CurrentRoom.Child(dir)
	if next == nil {
		logMessage(g, "%s", gotext.Get("There is no path to the %s from here.", lower(dir.String())))
		return
	}
	g.Moves++
	EnterRoom(g, next)
}

// logMessage adds a formatted message to the game's message log
func logMessage(g *state.Game, msg string, a ...any) {
	formatted := renderer.FormatString(msg, a...)
	g.AddMessage(formatted)
}

// lower is a tiny helper for direction names in messages.
func lower(s string) string {
	return strings.ToLower(s)
}
