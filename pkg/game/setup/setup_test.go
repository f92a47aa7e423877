package setup

import (
	"testing"

	"detectivequest/pkg/engine/world"
	"detectivequest/pkg/game/gameplay"
)

func TestBuildMansion_Shape(t *testing.T) {
	hall := BuildMansion()

	if hall.Name != "Entrance Hall" {
		t.Errorf("entrance = %q, want Entrance Hall", hall.Name)
	}
	if got := hall.CountRooms(); got != 7 {
		t.Errorf("CountRooms = %d, want 7", got)
	}
	if got := hall.CountClues(); got != 5 {
		t.Errorf("CountClues = %d, want 5", got)
	}
	if hall.HasClue() {
		t.Error("the entrance holds a clue, want none")
	}

	if got := hall.Child(world.Left); got == nil || got.Name != "Library" {
		t.Errorf("left of entrance = %v, want Library", got)
	}
	if got := hall.Child(world.Right); got == nil || got.Name != "Sitting Room" {
		t.Errorf("right of entrance = %v, want Sitting Room", got)
	}
}

// Every clue placed in the mansion must resolve to a suspect, or the
// accusation phase could never account for it.
func TestEveryMansionClueResolvesToASuspect(t *testing.T) {
	hall := BuildMansion()
	table := BuildCaseFile()

	hall.Walk(func(room *world.Room, _ int) {
		if !room.HasClue() {
			return
		}
		if _, found := table.Lookup(room.Clue); !found {
			t.Errorf("clue %q in %q has no suspect in the case file", room.Clue, room.Name)
		}
	})
}

func TestBuildCaseFile_Associations(t *testing.T) {
	table := BuildCaseFile()

	cases := []struct {
		clue    string
		suspect string
	}{
		{"Dusty glove mark", "Mr. Almeida"},
		{"Broken glass with footprints", "Mrs. Beatriz"},
		{"Herbal tea residue", "Miss Camila"},
		{"Torn notes with initials A.B.", "Mrs. Beatriz"},
		{"Wrench piece with fresh varnish", "Mr. Almeida"},
	}
	for _, c := range cases {
		suspect, found := table.Lookup(c.clue)
		if !found || suspect != c.suspect {
			t.Errorf("Lookup(%q) = (%q, %v), want (%q, true)", c.clue, suspect, found, c.suspect)
		}
	}
}

func TestBuildGame_SessionStartsAtEntrance(t *testing.T) {
	g := BuildGame()

	if g.CurrentRoom == nil || g.CurrentRoom.Name != "Entrance Hall" {
		t.Fatalf("CurrentRoom = %v, want Entrance Hall", g.CurrentRoom)
	}
	if g.Ended {
		t.Error("fresh session already ended")
	}
	if got := g.VisitedRooms.Size(); got != 1 {
		t.Errorf("VisitedRooms.Size = %d, want 1 (the entrance)", got)
	}
	if got := g.Clues.Len(); got != 0 {
		t.Errorf("ledger Len = %d, want 0 (entrance has no clue)", got)
	}
	if len(g.Hints) != 5 {
		t.Errorf("len(Hints) = %d, want one per clue room", len(g.Hints))
	}
}

// Full-session walk: collect both Mrs. Beatriz clues and confirm the
// accusation is sustained against her and weak against everyone else.
func TestFullSession_SustainedAgainstBeatriz(t *testing.T) {
	g := BuildGame()

	gameplay.Move(g, world.Right) // Sitting Room: broken glass (Beatriz)
	gameplay.Move(g, world.Left)  // Hallway: torn notes (Beatriz)

	verdict, err := gameplay.Accuse(g, "Mrs. Beatriz")
	if err != nil {
		t.Fatalf("Accuse error = %v", err)
	}
	if verdict.Count != 2 || !verdict.Sustained {
		t.Errorf("verdict = %+v, want sustained with count 2", verdict)
	}

	weak, err := gameplay.Accuse(g, "Mr. Almeida")
	if err != nil {
		t.Fatalf("Accuse error = %v", err)
	}
	if weak.Count != 0 || weak.Sustained {
		t.Errorf("verdict for Mr. Almeida = %+v, want weak with count 0", weak)
	}
}
