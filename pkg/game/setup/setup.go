// Package setup assembles the demo investigation: the fixed mansion map,
// the clue/suspect case file, and a fresh session at the entrance.
package setup

import (
	"github.com/leonelquinteros/gotext"

	"detectivequest/pkg/engine/world"
	"detectivequest/pkg/game/gameplay"
	"detectivequest/pkg/game/state"
	"detectivequest/pkg/game/suspects"
)

// BuildMansion constructs the fixed demo map and returns its entrance.
//
//	             Entrance Hall
//	             /           \
//	        Library        Sitting Room
//	        /     \          /      \
//	   Kitchen   Garden   Hallway   Workshop
//
// Each room may hold one clue or none.
func BuildMansion() *world.Room {
	hall := world.NewRoom("Entrance Hall", "")
	library := world.NewRoom("Library", "Dusty glove mark")
	sitting := world.NewRoom("Sitting Room", "Broken glass with footprints")
	kitchen := world.NewRoom("Kitchen", "Herbal tea residue")
	garden := world.NewRoom("Garden", "")
	hallway := world.NewRoom("Hallway", "Torn notes with initials A.B.")
	workshop := world.NewRoom("Workshop", "Wrench piece with fresh varnish")

	hall.SetChild(world.Left, library)
	hall.SetChild(world.Right, sitting)

	library.SetChild(world.Left, kitchen)
	library.SetChild(world.Right, garden)

	sitting.SetChild(world.Left, hallway)
	sitting.SetChild(world.Right, workshop)

	return hall
}

// BuildCaseFile seeds the clue-to-suspect associations for the demo story.
func BuildCaseFile() *suspects.Table {
	t := suspects.NewTable(suspects.DefaultSize)

	t.Put("Dusty glove mark", "Mr. Almeida")
	t.Put("Broken glass with footprints", "Mrs. Beatriz")
	t.Put("Herbal tea residue", "Miss Camila")
	t.Put("Torn notes with initials A.B.", "Mrs. Beatriz")
	t.Put("Wrench piece with fresh varnish", "Mr. Almeida")

	return t
}

// BuildGame wires a fresh session and enters the mansion at its entrance,
// which counts as a genuine visit.
func BuildGame() *state.Game {
	g := state.NewGame()
	g.Start = BuildMansion()
	g.Suspects = BuildCaseFile()

	buildHints(g)

	g.ClearMessages()
	gameplay.EnterRoom(g, g.Start)
	return g
}

// buildHints prepares one hint per clue-holding room. Hints name the room
// but never the clue.
func buildHints(g *state.Game) {
	g.Start.Walk(func(room *world.Room, _ int) {
		if room.HasClue() {
			g.AddHint(gotext.Get("Something in the %s seems worth a closer look.", "ROOM{"+room.Name+"}"))
		}
	})
}
