package gameplay

import (
	"errors"
	"strings"

	"detectivequest/pkg/game/ledger"
	"detectivequest/pkg/game/state"
)

// SustainThreshold is how many collected clues must implicate a suspect
// for an accusation against them to be sustained.
const SustainThreshold = 2

// ErrNoAccusation is returned when the player declines to name anyone.
// The case closes without a numeric verdict.
var ErrNoAccusation = errors.New("no accusation made")

// Verdict is the outcome of an accusation.
type Verdict struct {
	Accused   string
	Count     int
	Sustained bool
}

// Accuse evaluates an accusation against the collected clues. The name is
// matched exactly, case included, after trimming surrounding whitespace;
// an empty name short-circuits with ErrNoAccusation and no evaluation.
func Accuse(g *state.Game, name string) (Verdict, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Verdict{}, ErrNoAccusation
	}

	count := ledger.CountFor(g.Clues, name, g.Suspects.Lookup)
	return Verdict{
		Accused:   name,
		Count:     count,
		Sustained: count >= SustainThreshold,
	}, nil
}
