package devtools

import (
	"os"
	"strings"
	"testing"

	"detectivequest/pkg/engine/world"
)

func buildMap(t *testing.T) *world.Room {
	t.Helper()
	hall := world.NewRoom("Hall", "")
	library := world.NewRoom("Library", "glove mark")
	parlor := world.NewRoom("Parlor", "")
	hall.SetChild(world.Left, library)
	hall.SetChild(world.Right, parlor)
	return hall
}

func TestRenderMap_MarksAndIndentation(t *testing.T) {
	hall := buildMap(t)

	out := RenderMap(hall)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("rendered %d lines, want 3:\n%s", len(lines), out)
	}
	if lines[0] != "Hall" {
		t.Errorf("line 1 = %q, want %q", lines[0], "Hall")
	}
	if lines[1] != "    Library [*]" {
		t.Errorf("line 2 = %q, want indented Library with clue marker", lines[1])
	}
	if lines[2] != "    Parlor" {
		t.Errorf("line 3 = %q, want indented Parlor without marker", lines[2])
	}

	hall.Child(world.Left).Visit()
	if !strings.Contains(RenderMap(hall), "Library [+]") {
		t.Error("collected clue room not marked with [+]")
	}
}

func TestDumpMansionMap_WritesFile(t *testing.T) {
	oldWD, err := os.Getwd()
	if err != nil {
		t.Fatalf("getting working directory: %v", err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("changing directory: %v", err)
	}
	t.Cleanup(func() { os.Chdir(oldWD) })

	path, err := DumpMansionMap(buildMap(t))
	if err != nil {
		t.Fatalf("DumpMansionMap error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading dump: %v", err)
	}
	if !strings.Contains(string(data), "Library [*]") {
		t.Errorf("dump missing clue room:\n%s", data)
	}
}
