package state

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	fsutil "github.com/kk-code-lab/stigen/internal/fs"
)

// SettingsStore persists the default root directory. Implementations report
// their own failures; a failed save never blocks the settings commit.
type SettingsStore interface {
	SetDefaultDirectory(path string)
}

// ErrUnhandledAction is returned for actions the reducer has no case for,
// such as SuspendAction which the event loop owns.
var ErrUnhandledAction = errors.New("unhandled action")

// StateReducer applies actions to an AppState.
type StateReducer struct {
	settings    SettingsStore
	loadCatalog func(root string) []FileEntry
	isDirectory func(path string) bool
	expandPath  func(path string) (string, error)
}

// NewStateReducer creates a reducer backed by the real filesystem.
func NewStateReducer() *StateReducer {
	return &StateReducer{
		loadCatalog: func(root string) []FileEntry {
			return fsutil.LoadCatalog(root, fsutil.ReservedName)
		},
		isDirectory: fsutil.IsDirectory,
		expandPath:  fsutil.ExpandPath,
	}
}

// SetSettingsStore wires persistence for settings commits. A nil store keeps
// root changes in memory only.
func (r *StateReducer) SetSettingsStore(store SettingsStore) {
	r.settings = store
}

// Reduce applies action to state in place. Actions that change nothing leave
// state.Dirty untouched.
func (r *StateReducer) Reduce(state *AppState, action Action) (*AppState, error) {
	switch a := action.(type) {

	// ===== BROWSE =====

	case NavigateDownAction:
		r.moveSelection(state, 1)

	case NavigateUpAction:
		r.moveSelection(state, -1)

	case LaunchAction:
		entry := state.SelectedEntry()
		if entry == nil {
			return state, nil
		}
		state.LaunchTarget = entry
		state.LastError = nil

	case ClearFilterAction:
		if !state.FilterActive() {
			return state, nil
		}
		state.resetFilter()
		state.Dirty = true

	// ===== SEARCH =====

	case SearchStartAction:
		state.Mode = ModeSearch
		state.LastError = nil
		state.resetFilter()
		state.Dirty = true

	case SearchCharAction:
		state.Query += string(a.Char)
		state.recomputeFilter()
		state.Dirty = true

	case SearchBackspaceAction:
		query, ok := dropLastRune(state.Query)
		if !ok {
			return state, nil
		}
		state.Query = query
		state.recomputeFilter()
		state.Dirty = true

	case SearchCommitAction:
		state.Mode = ModeBrowse
		state.Dirty = true

	case SearchCancelAction:
		state.resetFilter()
		state.Mode = ModeBrowse
		state.Dirty = true

	// ===== SETTINGS =====

	case SettingsStartAction:
		state.Mode = ModeSettings
		state.SettingsDraft = state.RootPath
		state.LastError = nil
		state.Dirty = true

	case SettingsCharAction:
		state.SettingsDraft += string(a.Char)
		state.Dirty = true

	case SettingsBackspaceAction:
		draft, ok := dropLastRune(state.SettingsDraft)
		if !ok {
			return state, nil
		}
		state.SettingsDraft = draft
		state.Dirty = true

	case SettingsCommitAction:
		r.commitSettings(state)

	case SettingsCancelAction:
		state.SettingsDraft = ""
		state.Mode = ModeBrowse
		state.Dirty = true

	// ===== VIEW =====

	case ResizeAction:
		state.ScreenWidth = a.Width
		state.ScreenHeight = a.Height
		state.updateScrollVisibility()
		state.Dirty = true

	case QuitAction:
		state.ShouldQuit = true

	default:
		return state, fmt.Errorf("%w: %T", ErrUnhandledAction, action)
	}

	return state, nil
}

func (r *StateReducer) moveSelection(state *AppState, delta int) {
	count := len(state.Displayed)
	if count == 0 {
		return
	}
	idx := state.SelectedIndex
	if idx < 0 || idx >= count {
		idx = 0
	} else {
		idx = ((idx+delta)%count + count) % count
	}
	state.SelectedIndex = idx
	state.updateScrollVisibility()
	state.Dirty = true
}

// commitSettings switches the root to the draft when it names an existing
// directory. An invalid draft only raises the alert.
func (r *StateReducer) commitSettings(state *AppState) {
	candidate, ok := r.resolveDraft(state.SettingsDraft)
	if !ok {
		state.Alert = true
		return
	}

	if r.settings != nil {
		r.settings.SetDefaultDirectory(candidate)
	}

	state.setCatalog(candidate, r.loadCatalog(candidate))
	state.SettingsDraft = ""
	state.Mode = ModeBrowse
	state.Dirty = true
}

func (r *StateReducer) resolveDraft(draft string) (string, bool) {
	if strings.TrimSpace(draft) == "" {
		return "", false
	}
	candidate := draft
	if r.expandPath != nil {
		expanded, err := r.expandPath(draft)
		if err != nil {
			return "", false
		}
		candidate = expanded
	}
	if r.isDirectory == nil || !r.isDirectory(candidate) {
		return "", false
	}
	return candidate, true
}

func dropLastRune(s string) (string, bool) {
	if s == "" {
		return s, false
	}
	_, size := utf8.DecodeLastRuneInString(s)
	return s[:len(s)-size], true
}
