package state

import (
	"strings"
	"testing"
)

func TestFilterEntries(t *testing.T) {
	catalog := entries("alpha", "Beta", "gamma")

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"empty query keeps everything", "", []string{"alpha", "Beta", "gamma"}},
		{"common letter matches all", "a", []string{"alpha", "Beta", "gamma"}},
		{"case-insensitive prefix", "be", []string{"Beta"}},
		{"uppercase query", "GAM", []string{"gamma"}},
		{"infix match", "ph", []string{"alpha"}},
		{"no match", "zzz", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterEntries(catalog, tt.query)
			names := make([]string, 0, len(got))
			for _, e := range got {
				names = append(names, e.Name)
			}
			if !equalNames(names, tt.want) {
				t.Fatalf("FilterEntries(%q) = %v, want %v", tt.query, names, tt.want)
			}
		})
	}
}

func TestFilterEntriesIsOrderedSubsequence(t *testing.T) {
	catalog := entries("api", "App", "backend", "docs", "frontend", "infra", "mobile-app", "Notes")

	for _, query := range []string{"", "a", "p", "end", "APP", "o", "x", "-"} {
		got := FilterEntries(catalog, query)

		pos := 0
		for _, e := range got {
			for pos < len(catalog) && catalog[pos].FullPath != e.FullPath {
				pos++
			}
			if pos == len(catalog) {
				t.Fatalf("query %q: %q is out of catalog order", query, e.Name)
			}
			pos++

			if !strings.Contains(strings.ToLower(e.Name), strings.ToLower(query)) {
				t.Fatalf("query %q: %q does not contain the query", query, e.Name)
			}
		}
	}
}

func TestFilterEntriesEmptyQueryReturnsCatalog(t *testing.T) {
	catalog := entries("b", "a")
	got := FilterEntries(catalog, "")
	if len(got) != len(catalog) || &got[0] != &catalog[0] {
		t.Fatalf("expected empty query to return the catalog slice itself")
	}
}

func TestFilterEntriesDoesNotMutateCatalog(t *testing.T) {
	catalog := entries("alpha", "Beta", "gamma")
	before := append([]FileEntry(nil), catalog...)

	_ = FilterEntries(catalog, "be")

	for i := range catalog {
		if catalog[i] != before[i] {
			t.Fatalf("catalog changed at %d: %v -> %v", i, before[i], catalog[i])
		}
	}
}

func TestFilterRecomputesFromCatalogOnEveryKeystroke(t *testing.T) {
	r := NewStateReducer()
	s := newTestState("alpha", "Beta", "gamma")

	mustReduce(t, r, s, SearchStartAction{})
	typeQuery(t, r, s, "be")
	if !equalNames(displayedNames(s), []string{"Beta"}) {
		t.Fatalf("after 'be' displayed = %v", displayedNames(s))
	}

	// Widening the query must bring back entries the narrower query dropped.
	mustReduce(t, r, s, SearchBackspaceAction{})
	if !equalNames(displayedNames(s), []string{"Beta"}) {
		t.Fatalf("after backspace to 'b' displayed = %v", displayedNames(s))
	}
	mustReduce(t, r, s, SearchBackspaceAction{})
	if !equalNames(displayedNames(s), []string{"alpha", "Beta", "gamma"}) {
		t.Fatalf("after clearing query displayed = %v", displayedNames(s))
	}

	typeQuery(t, r, s, "a")
	if !equalNames(displayedNames(s), []string{"alpha", "Beta", "gamma"}) {
		t.Fatalf("after 'a' displayed = %v", displayedNames(s))
	}
}

func TestFilterStaleListIsNeverChained(t *testing.T) {
	r := NewStateReducer()
	s := newTestState("alpha", "Beta", "gamma")

	mustReduce(t, r, s, SearchStartAction{})
	typeQuery(t, r, s, "g")
	// Simulate a stale narrowed list; the next keystroke must rederive from the catalog.
	s.Displayed = entries("gamma")
	mustReduce(t, r, s, SearchBackspaceAction{})
	typeQuery(t, r, s, "a")

	if !equalNames(displayedNames(s), []string{"alpha", "Beta", "gamma"}) {
		t.Fatalf("expected list rederived from catalog, got %v", displayedNames(s))
	}
}
