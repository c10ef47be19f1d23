package state

import "testing"

func entries(names ...string) []FileEntry {
	out := make([]FileEntry, 0, len(names))
	for _, name := range names {
		out = append(out, FileEntry{Name: name, FullPath: "/projects/" + name})
	}
	return out
}

func newTestState(names ...string) *AppState {
	s := NewAppState("/projects", entries(names...))
	s.ScreenWidth = 80
	s.ScreenHeight = 24
	s.Dirty = false
	return s
}

func displayedNames(s *AppState) []string {
	out := make([]string, 0, len(s.Displayed))
	for _, e := range s.Displayed {
		out = append(out, e.Name)
	}
	return out
}

func mustReduce(t *testing.T, r *StateReducer, s *AppState, actions ...Action) {
	t.Helper()
	for _, action := range actions {
		if _, err := r.Reduce(s, action); err != nil {
			t.Fatalf("reduce %T: %v", action, err)
		}
	}
}

func typeQuery(t *testing.T, r *StateReducer, s *AppState, query string) {
	t.Helper()
	for _, ch := range query {
		mustReduce(t, r, s, SearchCharAction{Char: ch})
	}
}

func equalNames(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
