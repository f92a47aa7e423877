// Package world provides the binary room-map primitives for the mansion.
// Rooms form a fixed tree, built in full by the caller before exploration
// begins; only the collected flag mutates afterwards.
package world

// VisitKind classifies what happened when a room was entered.
type VisitKind int

// Visit outcomes
const (
	NoClue VisitKind = iota
	ClueFound
	AlreadyCollected
)

// String returns the string representation of a visit outcome kind
func (k VisitKind) String() string {
	switch k {
	case NoClue:
		return "NoClue"
	case ClueFound:
		return "ClueFound"
	case AlreadyCollected:
		return "AlreadyCollected"
	default:
		return "Unknown"
	}
}

// VisitOutcome is the result of genuinely entering a room.
type VisitOutcome struct {
	Kind VisitKind
	Clue string // set unless Kind is NoClue
}

// Room is a node of the mansion map.
type Room struct {
	Name      string
	Clue      string // empty if the room holds no clue
	Collected bool

	Left  *Room
	Right *Room
}

// NewRoom creates a room with an optional clue. The collected flag starts
// false and a room without a clue never flips it.
func NewRoom(name, clue string) *Room {
	return &Room{
		Name: name,
		Clue: clue,
	}
}

// SetChild links child under the given branch. The structure performs no
// cycle detection; callers must only ever build acyclic trees.
func (r *Room) SetChild(dir Direction, child *Room) {
	if r == nil {
		return
	}
	switch dir {
	case Left:
		r.Left = child
	case Right:
		r.Right = child
	}
}

// Child returns the room in the requested direction, or nil at a dead end.
// It has no side effects.
func (r *Room) Child(dir Direction) *Room {
	if r == nil {
		return nil
	}
	switch dir {
	case Left:
		return r.Left
	case Right:
		return r.Right
	default:
		return nil
	}
}

// HasClue reports whether the room holds a clue at all, collected or not.
func (r *Room) HasClue() bool {
	return r.Clue != ""
}

// Visit reports what the player finds on entering the room. The first entry
// to a clue-holding room flips the collected flag; later entries report
// AlreadyCollected without touching anything.
func (r *Room) Visit() VisitOutcome {
	if r.Clue == "" {
		return VisitOutcome{Kind: NoClue}
	}
	if r.Collected {
		return VisitOutcome{Kind: AlreadyCollected, Clue: r.Clue}
	}
	r.Collected = true
	return VisitOutcome{Kind: ClueFound, Clue: r.Clue}
}

// Walk visits every room in the subtree, parents before children, left
// branch before right. The depth of the receiver is 0.
func (r *Room) Walk(fn func(room *Room, depth int)) {
	r.walk(fn, 0)
}

func (r *Room) walk(fn func(room *Room, depth int), depth int) {
	if r == nil {
		return
	}
	fn(r, depth)
	r.Left.walk(fn, depth+1)
	r.Right.walk(fn, depth+1)
}

// CountRooms returns the number of rooms in the subtree.
func (r *Room) CountRooms() int {
	count := 0
	r.Walk(func(*Room, int) { count++ })
	return count
}

// CountClues returns the number of rooms in the subtree holding a clue.
func (r *Room) CountClues() int {
	count := 0
	r.Walk(func(room *Room, _ int) {
		if room.HasClue() {
			count++
		}
	})
	return count
}

// CountUncollected returns the number of clues not yet collected.
func (r *Room) CountUncollected() int {
	count := 0
	r.Walk(func(room *Room, _ int) {
		if room.HasClue() && !room.Collected {
			count++
		}
	})
	return count
}
