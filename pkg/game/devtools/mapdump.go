// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"fmt"
	"os"
	"strings"

	"detectivequest/pkg/engine/world"
)

const mapDumpFilename = "mansion-map.txt"

// RenderMap renders the mansion tree as indented text. Clue-holding rooms
// are marked with '*', collected ones with '+'.
func RenderMap(root *world.Room) string {
	var b strings.Builder

	root.Walk(func(room *world.Room, depth int) {
		b.WriteString(strings.Repeat("    ", depth))
		b.WriteString(room.Name)
		switch {
		case room.Collected:
			b.WriteString(" [+]")
		case room.HasClue():
			b.WriteString(" [*]")
		}
		b.WriteString("\n")
	})

	return b.String()
}

// DumpMansionMap writes the rendered map to a file in the working
// directory and returns its path.
func DumpMansionMap(root *world.Room) (string, error) {
	if err := os.WriteFile(mapDumpFilename, []byte(RenderMap(root)), 0o644); err != nil {
		return "", fmt.Errorf("dump mansion map: %w", err)
	}
	return mapDumpFilename, nil
}
