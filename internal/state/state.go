package state

import (
	fsutil "github.com/kk-code-lab/stigen/internal/fs"
	textutil "github.com/kk-code-lab/stigen/internal/textutil"
)

// FileEntry mirrors fs.Entry so UI/state code can rely on a stable type.
type FileEntry = fsutil.Entry

// Mode is the active interaction mode. Exactly one is active at a time.
type Mode int

const (
	ModeBrowse Mode = iota
	ModeSearch
	ModeSettings
)

func (m Mode) String() string {
	switch m {
	case ModeBrowse:
		return "browse"
	case ModeSearch:
		return "search"
	case ModeSettings:
		return "settings"
	default:
		return "unknown"
	}
}

// Screen geometry shared by the reducer (scrolling) and the renderer.
const (
	// ListStartRow is the first row of the project list; rows above it hold
	// the title and the key help line.
	ListStartRow = 4
	// FooterRows is the number of rows reserved at the bottom for the query
	// line and the status line.
	FooterRows = 2
)

// ===== STATE DEFINITIONS =====

// AppState is the single source of truth, owned by the event loop.
type AppState struct {
	Mode Mode

	// Root directory and its catalog (always sorted)
	RootPath string
	Catalog  []FileEntry

	// Filtering
	Query     string
	Displayed []FileEntry // Catalog filtered by Query

	// Selection & viewport
	SelectedIndex int // -1 when Displayed is empty
	ScrollOffset  int

	// Settings
	SettingsDraft string

	// Dimensions
	ScreenWidth  int
	ScreenHeight int

	// Redraw bookkeeping
	Dirty bool
	Alert bool // ring the bell once

	// Error state
	LastError error

	// Terminal outcome
	ShouldQuit   bool
	LaunchTarget *FileEntry

	nameWidth int // widest catalog name, for column alignment
}

// NewAppState builds the initial browse state for root.
func NewAppState(root string, catalog []FileEntry) *AppState {
	s := &AppState{
		Mode:  ModeBrowse,
		Dirty: true,
	}
	s.setCatalog(root, catalog)
	return s
}

// setCatalog replaces the root and catalog and resets filtering.
func (s *AppState) setCatalog(root string, catalog []FileEntry) {
	if catalog == nil {
		catalog = []FileEntry{}
	}
	s.RootPath = root
	s.Catalog = catalog
	s.nameWidth = 0
	s.resetFilter()
}

// NameWidth returns the display width of the longest catalog name.
func (s *AppState) NameWidth() int {
	if s.nameWidth == 0 && len(s.Catalog) > 0 {
		for _, entry := range s.Catalog {
			if w := textutil.DisplayWidth(entry.Name); w > s.nameWidth {
				s.nameWidth = w
			}
		}
	}
	return s.nameWidth
}
