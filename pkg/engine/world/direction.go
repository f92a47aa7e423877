package world

// Direction represents a branch choice in the room map.
type Direction int

// Branch directions
const (
	Left Direction = iota
	Right
)

// AllDirections returns all valid directions for iteration
func AllDirections() []Direction {
	return []Direction{Left, Right}
}

// String returns the string representation of a direction
func (d Direction) String() string {
	switch d {
	case Left:
		return "Left"
	case Right:
		return "Right"
	default:
		return "Unknown"
	}
}

// IsValid returns true if the direction is a valid branch direction
func (d Direction) IsValid() bool {
	return d == Left || d == Right
}
