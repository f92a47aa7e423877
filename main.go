package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/leonelquinteros/gotext"
	"github.com/spf13/cobra"

	engineinput "detectivequest/pkg/engine/input"
	"detectivequest/pkg/game/devtools"
	"detectivequest/pkg/game/gameplay"
	"detectivequest/pkg/game/renderer"
	"detectivequest/pkg/game/setup"
	"detectivequest/pkg/game/state"
)

var (
	langFlag    string
	localesFlag string
)

var rootCmd = &cobra.Command{
	Use:   "detectivequest",
	Short: "An interactive investigation of the mansion",
	Long: `Detective Quest: explore the mansion room by room, collect the clues
you stumble on, and accuse a suspect at the end. Two implicating clues
sustain an accusation.`,
	Run: func(cmd *cobra.Command, args []string) {
		initGotext()
		renderer.InitColors()
		play()
	},
}

var mapCmd = &cobra.Command{
	Use:   "map",
	Short: "Dump the mansion map to a file",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := devtools.DumpMansionMap(setup.BuildMansion())
		if err != nil {
			return err
		}
		fmt.Printf("Mansion map dumped to %s\n", path)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&langFlag, "lang", "en_GB", "message catalog language")
	rootCmd.PersistentFlags().StringVar(&localesFlag, "locales", "locales", "directory holding compiled message catalogs")
	rootCmd.AddCommand(mapCmd)
}

func initGotext() {
	// Missing catalogs degrade to the English msgids.
	gotext.Configure(localesFlag, langFlag, "default")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func play() {
	g := setup.BuildGame()

	fmt.Println(gotext.Get("=== Detective Quest: Investigation at the Mansion ==="))
	fmt.Println(gotext.Get("Navigate with 'e' (left), 'd' (right); end the exploration with 's'."))
	fmt.Println()

	for !g.Ended {
		explorationTurn(g)
	}

	renderer.Clear()
	renderer.PrintCluesReport(g)
	accusationPhase(g)

	g.Suspects.Teardown()
	fmt.Println()
	fmt.Println(gotext.Get("Closing Detective Quest. Thanks for playing!"))
}

// explorationTurn renders one frame of the exploration loop and processes
// a single keypress. Rejected moves come back through the messages pane;
// the room is only re-visited on a genuine move.
func explorationTurn(g *state.Game) {
	renderer.Clear()
	renderer.PrintRoomBanner(g)
	renderer.PrintOptions(g)
	renderer.PrintStatusBar(g)
	renderer.PrintMessagesPane(g)

	fmt.Printf("\n> ")
	code := engineinput.GetKey()
	if code == "" {
		return
	}

	raw := engineinput.RawInput{
		Device:    engineinput.DeviceTerminal,
		Code:      code,
		Timestamp: time.Now(),
	}
	gameplay.ProcessIntent(g, engineinput.MapToIntent(engineinput.NewDebouncedInput(raw)))
}

func accusationPhase(g *state.Game) {
	renderer.PrintSuspectRoster(g)

	fmt.Println()
	fmt.Println(gotext.Get("Name the suspect you wish to accuse."))
	fmt.Print(gotext.Get("Accused: "))

	verdict, err := gameplay.Accuse(g, engineinput.GetInput())
	if errors.Is(err, gameplay.ErrNoAccusation) {
		fmt.Println()
		fmt.Println(gotext.Get("No name given. Closing the case without an accusation."))
		return
	}

	renderer.PrintString("\nGT{You accused:} SUSPECT{%v}\n", verdict.Accused)
	renderer.PrintString("GT{Collected clues implicating them:} %d\n\n", verdict.Count)

	if verdict.Sustained {
		fmt.Println(renderer.ColorSustained.Sprint(
			gotext.Get("ACCUSATION SUSTAINED! The evidence is sufficient (%d or more clues).", gameplay.SustainThreshold)))
	} else {
		fmt.Println(renderer.ColorDenied.Sprint(
			gotext.Get("WEAK ACCUSATION. There are not enough clues to sustain it.")))
	}
}
