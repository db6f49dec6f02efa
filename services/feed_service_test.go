package services

import (
	"testing"
)

func decidedSet(ids ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

func TestExcludeDecided(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		decided  map[string]struct{}
		expected []string
	}{
		{"nil set passes everything", []string{"a", "b", "c"}, nil, []string{"a", "b", "c"}},
		{"empty set passes everything", []string{"a", "b"}, decidedSet(), []string{"a", "b"}},
		{"liked listing dropped", []string{"a", "b", "c"}, decidedSet("b"), []string{"a", "c"}},
		{"dismissed listing dropped", []string{"a", "b", "c"}, decidedSet("c"), []string{"a", "b"}},
		{"union of likes and dismissals dropped", []string{"a", "b", "c", "d"}, decidedSet("a", "c"), []string{"b", "d"}},
		{"all decided leaves nothing", []string{"a", "b"}, decidedSet("a", "b"), []string{}},
		{"unrelated decisions ignored", []string{"a"}, decidedSet("x", "y"), []string{"a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := excludeDecided(listings(tt.input...), tt.decided)
			if len(got) != len(tt.expected) {
				t.Fatalf("kept %d listings, want %d (%v)", len(got), len(tt.expected), got)
			}
			for i, id := range tt.expected {
				if got[i].ID != id {
					t.Errorf("position %d = %s, want %s", i, got[i].ID, id)
				}
			}
			for _, p := range got {
				if _, decided := tt.decided[p.ID]; decided {
					t.Errorf("decided listing %s survived exclusion", p.ID)
				}
			}
		})
	}
}
