// Package suspects maps clue text to suspect names with a fixed-size
// chained hash table. The table is built once before exploration and is
// read-only during play.
package suspects

// DefaultSize is the bucket count used by the demo case file. A small
// prime keeps clustering down.
const DefaultSize = 31

type entry struct {
	clue    string
	suspect string
	next    *entry
}

// Table associates clue text with suspect names.
type Table struct {
	buckets []*entry
}

// NewTable allocates a table with size empty buckets. size must be a
// positive constant chosen by the caller.
func NewTable(size int) *Table {
	if size <= 0 {
		panic("suspects: table size must be positive")
	}
	return &Table{buckets: make([]*entry, size)}
}

// hash is the djb2 string hash: h = h*33 + byte, seeded with 5381.
// Deterministic, unseeded, and it only needs the input text.
func hash(s string) uint64 {
	var h uint64 = 5381
	for i := 0; i < len(s); i++ {
		h = h*33 + uint64(s[i])
	}
	return h
}

func (t *Table) bucket(clue string) int {
	if t.buckets == nil {
		panic("suspects: table used after teardown")
	}
	return int(hash(clue) % uint64(len(t.buckets)))
}

// Put prepends an association to its bucket chain. Existing entries for
// the same clue are shadowed, never removed or overwritten.
func (t *Table) Put(clue, suspect string) {
	i := t.bucket(clue)
	t.buckets[i] = &entry{clue: clue, suspect: suspect, next: t.buckets[i]}
}

// Lookup returns the suspect associated with the exact clue text. When the
// same clue was inserted more than once this is the most recent one, since
// Put prepends.
func (t *Table) Lookup(clue string) (string, bool) {
	for e := t.buckets[t.bucket(clue)]; e != nil; e = e.next {
		if e.clue == clue {
			return e.suspect, true
		}
	}
	return "", false
}

// Each calls fn for every stored association, shadowed entries included.
// Order is bucket order and carries no meaning.
func (t *Table) Each(fn func(clue, suspect string)) {
	if t.buckets == nil {
		panic("suspects: table used after teardown")
	}
	for _, e := range t.buckets {
		for ; e != nil; e = e.next {
			fn(e.clue, e.suspect)
		}
	}
}

// Len returns the number of stored associations, shadowed entries included.
func (t *Table) Len() int {
	count := 0
	t.Each(func(string, string) { count++ })
	return count
}

// Teardown drops every bucket chain. No further operations are valid on
// the table afterwards.
func (t *Table) Teardown() {
	for i := range t.buckets {
		t.buckets[i] = nil
	}
	t.buckets = nil
}
