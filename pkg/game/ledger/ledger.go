// Package ledger implements the ordered clue ledger: a binary search tree
// keyed by exact clue text, counting repeat collections.
//
// The zero value of the tree is a nil *Node; all operations accept it.
package ledger

// Node is a single ledger entry. At most one node exists per distinct clue
// text; repeats bump the counter instead of adding nodes.
type Node struct {
	Clue  string
	Count int

	Left  *Node
	Right *Node
}

// Insert records a clue in the ledger rooted at root and returns the root.
// The root changes only when inserting into an empty ledger, so callers
// must always adopt the returned value as the current root. Ordering is
// lexicographic byte order over the exact clue text.
func Insert(root *Node, clue string) *Node {
	if root == nil {
		return &Node{Clue: clue, Count: 1}
	}
	switch {
	case clue == root.Clue:
		root.Count++
	case clue < root.Clue:
		root.Left = Insert(root.Left, clue)
	default:
		root.Right = Insert(root.Right, clue)
	}
	return root
}

// InOrder visits every entry in ascending clue order, with its repeat
// count. The walk restarts from the smallest key on every call.
func (n *Node) InOrder(visit func(clue string, count int)) {
	if n == nil {
		return
	}
	n.Left.InOrder(visit)
	visit(n.Clue, n.Count)
	n.Right.InOrder(visit)
}

// Len returns the number of distinct clues in the ledger.
func (n *Node) Len() int {
	if n == nil {
		return 0
	}
	return 1 + n.Left.Len() + n.Right.Len()
}

// Total returns the number of collections, repeats included.
func (n *Node) Total() int {
	if n == nil {
		return 0
	}
	return n.Count + n.Left.Total() + n.Right.Total()
}

// CountFor sums the counters of every entry whose clue resolves, through
// lookup, to exactly the named suspect. Entries with no resolvable suspect
// contribute nothing. The whole tree is traversed; key order plays no part
// in the result.
func CountFor(root *Node, suspect string, lookup func(clue string) (string, bool)) int {
	if root == nil {
		return 0
	}
	total := 0
	if s, ok := lookup(root.Clue); ok && s == suspect {
		total += root.Count
	}
	total += CountFor(root.Left, suspect, lookup)
	total += CountFor(root.Right, suspect, lookup)
	return total
}
