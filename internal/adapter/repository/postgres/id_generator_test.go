package postgres

import (
	"sort"
	"testing"

	"github.com/oklog/ulid/v2"
)

func TestULIDGeneratorIsSortable(t *testing.T) {
	g := NewULIDGenerator()

	ids := make([]string, 100)
	for i := range ids {
		ids[i] = g.Generate()
		if _, err := ulid.Parse(ids[i]); err != nil {
			t.Fatalf("invalid ULID %q: %v", ids[i], err)
		}
	}

	if !sort.StringsAreSorted(ids) {
		t.Fatalf("expected IDs to be generated in ascending order")
	}
}
