package suspects

import (
	"fmt"
	"testing"
)

func TestPutAndLookup(t *testing.T) {
	table := NewTable(DefaultSize)
	table.Put("glove mark", "Smith")
	table.Put("broken glass", "Jones")

	cases := []struct {
		clue        string
		wantSuspect string
		wantFound   bool
	}{
		{"glove mark", "Smith", true},
		{"broken glass", "Jones", true},
		{"missing clue", "", false},
		{"Glove mark", "", false}, // comparison is exact, case included
	}
	for _, c := range cases {
		suspect, found := table.Lookup(c.clue)
		if found != c.wantFound || suspect != c.wantSuspect {
			t.Errorf("Lookup(%q) = (%q, %v), want (%q, %v)",
				c.clue, suspect, found, c.wantSuspect, c.wantFound)
		}
	}
}

func TestPut_DuplicateClueShadowsOlderEntry(t *testing.T) {
	table := NewTable(DefaultSize)
	table.Put("glove mark", "Smith")
	table.Put("glove mark", "Jones")

	suspect, found := table.Lookup("glove mark")
	if !found || suspect != "Jones" {
		t.Errorf("Lookup after duplicate Put = (%q, %v), want most recent (%q, true)",
			suspect, found, "Jones")
	}

	// The shadowed entry still occupies the chain.
	if got := table.Len(); got != 2 {
		t.Errorf("Len = %d, want 2 (shadowed entries are kept)", got)
	}
}

func TestLookup_SingleBucketScansWholeChain(t *testing.T) {
	// With one bucket every key collides; lookups must still resolve by
	// scanning the chain.
	table := NewTable(1)
	for i := 0; i < 10; i++ {
		table.Put(fmt.Sprintf("clue-%d", i), fmt.Sprintf("suspect-%d", i))
	}
	for i := 0; i < 10; i++ {
		clue := fmt.Sprintf("clue-%d", i)
		want := fmt.Sprintf("suspect-%d", i)
		if suspect, found := table.Lookup(clue); !found || suspect != want {
			t.Errorf("Lookup(%q) = (%q, %v), want (%q, true)", clue, suspect, found, want)
		}
	}
	if _, found := table.Lookup("clue-99"); found {
		t.Error("Lookup of absent key in full chain reported found")
	}
}

func TestHash_Deterministic(t *testing.T) {
	for _, s := range []string{"", "a", "glove mark", "Torn notes with initials A.B."} {
		if hash(s) != hash(s) {
			t.Errorf("hash(%q) not stable across calls", s)
		}
	}
	if hash("abc") == hash("acb") {
		// djb2 is position sensitive; identical values here would mean the
		// accumulation is broken.
		t.Error("hash collides on trivially permuted keys")
	}
}

func TestEach_VisitsEveryAssociation(t *testing.T) {
	table := NewTable(DefaultSize)
	want := map[string]string{
		"glove mark":   "Smith",
		"broken glass": "Jones",
		"tea residue":  "Camila",
	}
	for clue, suspect := range want {
		table.Put(clue, suspect)
	}

	seen := make(map[string]string)
	table.Each(func(clue, suspect string) {
		seen[clue] = suspect
	})

	if len(seen) != len(want) {
		t.Fatalf("Each visited %d associations, want %d", len(seen), len(want))
	}
	for clue, suspect := range want {
		if seen[clue] != suspect {
			t.Errorf("Each saw %q -> %q, want %q", clue, seen[clue], suspect)
		}
	}
}

func TestNewTable_RejectsNonPositiveSize(t *testing.T) {
	for _, size := range []int{0, -1} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("NewTable(%d) did not panic", size)
				}
			}()
			NewTable(size)
		}()
	}
}

func TestTeardown_TableUnusableAfterwards(t *testing.T) {
	table := NewTable(DefaultSize)
	table.Put("glove mark", "Smith")
	table.Teardown()

	defer func() {
		if recover() == nil {
			t.Error("Lookup after Teardown did not panic")
		}
	}()
	table.Lookup("glove mark")
}
