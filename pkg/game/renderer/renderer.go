// Package renderer draws the investigation to the terminal.
package renderer

import (
	"fmt"
	"os"
	"os/exec"
	"regexp"
	"sort"
	"strings"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"
	"github.com/zyedidia/generic/mapset"

	"detectivequest/pkg/engine/terminal"
	"detectivequest/pkg/engine/world"
	"detectivequest/pkg/game/state"
)

var (
	ColorRoom        color.Style
	ColorClue        color.Style
	ColorSuspect     color.Style
	ColorAction      color.Style
	ColorActionShort color.Style
	ColorDenied      color.Style
	ColorSustained   color.Style
	ColorSubtle      color.Style
)

var regexpStringFunctions = regexp.MustCompile(`([A-Z_]+){([^{}]+)}`)

// InitColors initializes the color styles
func InitColors() {
	ColorRoom = color.Style{color.FgBlue, color.OpBold}
	ColorClue = color.Style{color.FgYellow}
	ColorSuspect = color.Style{color.FgCyan, color.OpBold}
	ColorAction = color.Style{color.FgMagenta}
	ColorActionShort = color.Style{color.FgMagenta, color.OpBold}
	ColorDenied = color.Style{color.FgRed, color.OpBold}
	ColorSustained = color.Style{color.FgGreen, color.OpBold}
	ColorSubtle = color.Style{color.FgGray, color.OpBold}
}

// dynamicGet is used for runtime translation key lookups.
// A function variable avoids go vet's non-constant format string check,
// since markup operands are looked up dynamically.
var dynamicGet = gotext.Get

// FormatString formats a string with special markup. Operands of ROOM{},
// CLUE{}, SUSPECT{} and ACTION{} are styled; GT{} operands go through the
// message catalog.
func FormatString(msg string, a ...any) string {
	ret := fmt.Sprintf(msg, a...)

	matches := regexpStringFunctions.FindAllStringSubmatch(ret, -1)

	for _, match := range matches {
		function := match[1]
		operand := match[2]

		var val string

		switch function {
		case "GT":
			val = dynamicGet(operand)
		case "ROOM":
			val = ColorRoom.Sprint(operand)
		case "CLUE":
			val = ColorClue.Sprint(operand)
		case "SUSPECT":
			val = ColorSuspect.Sprint(operand)
		case "ACTION":
			val = ColorActionShort.Sprint(operand[0:1]) + ColorAction.Sprint(operand[1:])
		default:
			ret = fmt.Sprintf("ERROR, function not found: %v -> %v", function, operand)
			continue
		}

		ret = strings.Replace(ret, match[0], val, -1)
	}

	return ret
}

// PrintString prints a formatted string
func PrintString(msg string, a ...any) {
	fmt.Print(FormatString(msg, a...))
}

// PrintBullet prints a bulleted item
func PrintBullet(txt string) {
	fmt.Printf(" - %s\n", FormatString(txt))
}

// Clear clears the terminal screen
func Clear() {
	c := exec.Command("clear")
	c.Stdout = os.Stdout
	c.Run()
}

// PrintRoomBanner prints where the player currently stands.
func PrintRoomBanner(g *state.Game) {
	PrintString("GT{You are in the} ROOM{%v}\n\n", g.CurrentRoom.Name)
}

// directionActionText returns the option line for a branch, or a subtle
// dead-end marker when there is no room that way.
func directionActionText(g *state.Game, dir world.Direction) string {
	next := g.CurrentRoom.Child(dir)
	if next == nil {
		return ColorSubtle.Sprintf("# %s #", gotext.Get("no path"))
	}

	key := "e"
	if dir == world.Right {
		key = "d"
	}
	return FormatString("ACTION{%v}: ROOM{%v}", key, next.Name)
}

// PrintOptions prints the movement and meta options for the current room.
func PrintOptions(g *state.Game) {
	PrintBullet(directionActionText(g, world.Left))
	PrintBullet(directionActionText(g, world.Right))
	PrintBullet(FormatString("ACTION{s}: %v", gotext.Get("end the exploration")))
	PrintBullet(FormatString("ACTION{p}: %v", gotext.Get("review collected clues")))
	PrintBullet(FormatString("ACTION{?}: %v", gotext.Get("hint")))
}

// PrintStatusBar summarizes the investigation so far.
func PrintStatusBar(g *state.Game) {
	fmt.Println()
	PrintString("%v", ColorSubtle.Sprint(gotext.Get("Clues")+": "))
	fmt.Printf("%d", g.Clues.Len())
	if extra := g.Clues.Total() - g.Clues.Len(); extra > 0 {
		PrintString(" %v", ColorSubtle.Sprintf("(+%d repeat)", extra))
	}
	PrintString("   %v%d\n", ColorSubtle.Sprint(gotext.Get("Rooms explored")+": "), g.VisitedRooms.Size())
}

// PrintMessagesPane renders the messages log pane
func PrintMessagesPane(g *state.Game) {
	width := terminal.GetWidth()

	label := " " + gotext.Get("Messages") + " "
	labelLen := len(label)
	sideLen := (width - labelLen) / 2
	if sideLen < 1 {
		sideLen = 1
	}

	leftDashes := strings.Repeat("─", sideLen)
	rightDashes := strings.Repeat("─", width-sideLen-labelLen)

	fmt.Println()
	fmt.Println(ColorSubtle.Sprint(leftDashes + label + rightDashes))

	if len(g.Messages) == 0 {
		fmt.Println(ColorSubtle.Sprint("  (" + gotext.Get("no messages") + ")"))
	} else {
		for _, msg := range g.Messages {
			fmt.Printf("  %s\n", msg)
		}
	}

	fmt.Println(ColorSubtle.Sprint(strings.Repeat("─", width)))
}

// PrintCluesReport prints every collected clue in alphabetical order with
// its repeat count.
func PrintCluesReport(g *state.Game) {
	fmt.Println()
	fmt.Println(ColorSubtle.Sprint("=== " + gotext.Get("COLLECTED CLUES (alphabetical)") + " ==="))

	if g.Clues.Len() == 0 {
		fmt.Println(gotext.Get("No clues were collected during the investigation."))
		return
	}

	g.Clues.InOrder(func(clue string, count int) {
		PrintBullet(FormatString("CLUE{%v} (%v: %d)", clue, gotext.Get("times collected"), count))
	})
}

// PrintSuspectRoster prints the distinct suspect names known to the case
// file, so the player knows who can be accused.
func PrintSuspectRoster(g *state.Game) {
	names := mapset.New[string]()
	g.Suspects.Each(func(_, suspect string) {
		names.Put(suspect)
	})

	var sorted []string
	names.Each(func(name string) {
		sorted = append(sorted, name)
	})
	sort.Strings(sorted)

	fmt.Println()
	fmt.Println(gotext.Get("Known suspects:"))
	for _, name := range sorted {
		PrintBullet(FormatString("SUSPECT{%v}", name))
	}
}
