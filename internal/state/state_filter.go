package state

import (
	"strings"

	textutil "github.com/kk-code-lab/stigen/internal/textutil"
)

// FilterEntries returns the entries whose names contain query, ignoring
// case, in catalog order. An empty query returns catalog itself. catalog is
// never modified.
func FilterEntries(catalog []FileEntry, query string) []FileEntry {
	if query == "" {
		return catalog
	}

	pattern := textutil.Fold(query)
	matches := make([]FileEntry, 0, len(catalog))
	for _, entry := range catalog {
		if strings.Contains(textutil.Fold(entry.Name), pattern) {
			matches = append(matches, entry)
		}
	}
	return matches
}

// recomputeFilter rebuilds Displayed from the full catalog. It never narrows
// the previous result, so deleting characters widens the list again.
func (s *AppState) recomputeFilter() {
	s.Displayed = FilterEntries(s.Catalog, s.Query)
	s.resetSelection()
}

func (s *AppState) resetFilter() {
	s.Query = ""
	s.recomputeFilter()
}

func (s *AppState) resetSelection() {
	s.ScrollOffset = 0
	if len(s.Displayed) == 0 {
		s.SelectedIndex = -1
		return
	}
	s.SelectedIndex = 0
}

// FilterActive reports whether a query currently narrows the list.
func (s *AppState) FilterActive() bool {
	return s.Query != ""
}
