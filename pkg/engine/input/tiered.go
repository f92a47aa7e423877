package input

import (
	"sort"
	"strings"
	"time"
)

// Device represents a physical input source.
type Device int

const (
	DeviceUnknown Device = iota
	DeviceTerminal
)

// Action represents a high-level intent in the game.
type Action int

const (
	ActionNone Action = iota

	// Movement
	ActionMoveLeft
	ActionMoveRight

	// Meta / UI
	ActionQuit
	ActionReviewClues
	ActionHint
)

// Intent is the high-level description of what the player wants to do.
type Intent struct {
	Action Action
}

// RawInput is the event emitted directly from an input device.
// Code is a device-specific identifier (e.g. "e", "arrow_left").
type RawInput struct {
	Device    Device
	Code      string
	Timestamp time.Time
}

// DebouncedInput is the representation after debouncing/deduplication.
// Terminal raw mode already delivers one event per keypress, but the
// distinct type keeps the layering explicit and extensible.
type DebouncedInput struct {
	Device Device
	Code   string
}

// NewDebouncedInput converts a raw event to a debounced event.
func NewDebouncedInput(raw RawInput) DebouncedInput {
	return DebouncedInput{
		Device: raw.Device,
		Code:   strings.ToLower(raw.Code),
	}
}

// bindings maps raw codes to actions. Multiple codes may point to the same
// Action.
var bindings = map[string]Action{
	// Movement (the classic e/d pair, plus spelled-out and arrow forms)
	"e":           ActionMoveLeft,
	"l":           ActionMoveLeft,
	"left":        ActionMoveLeft,
	"arrow_left":  ActionMoveLeft,
	"d":           ActionMoveRight,
	"r":           ActionMoveRight,
	"right":       ActionMoveRight,
	"arrow_right": ActionMoveRight,

	// End the exploration
	"s":    ActionQuit,
	"q":    ActionQuit,
	"quit": ActionQuit,

	// Review collected clues
	"p":     ActionReviewClues,
	"clues": ActionReviewClues,

	// Help / hint
	"?":    ActionHint,
	"hint": ActionHint,
}

// MapToIntent applies the current bindings to a debounced input and returns
// a high-level Intent.
func MapToIntent(ev DebouncedInput) Intent {
	if act, ok := bindings[ev.Code]; ok {
		return Intent{Action: act}
	}
	return Intent{Action: ActionNone}
}

// ActionName returns a human-friendly name for an action.
func ActionName(a Action) string {
	switch a {
	case ActionMoveLeft:
		return "Go Left"
	case ActionMoveRight:
		return "Go Right"
	case ActionQuit:
		return "End Exploration"
	case ActionReviewClues:
		return "Review Clues"
	case ActionHint:
		return "Hint"
	default:
		return "None"
	}
}

// GetBindingsByAction returns the current bindings grouped by action.
func GetBindingsByAction() map[Action][]string {
	result := make(map[Action][]string)
	for code, act := range bindings {
		result[act] = append(result[act], code)
	}
	// Ensure stable ordering of codes within each action so UI doesn't flicker.
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}
