package state

// Action is the base interface for all state mutations
type Action interface{}

// ===== BROWSE ACTIONS =====

type NavigateUpAction struct{}
type NavigateDownAction struct{}
type LaunchAction struct{}      // Enter - hand the selection to the launcher
type ClearFilterAction struct{} // Esc - drop a sticky filter

// ===== SEARCH ACTIONS =====

type SearchStartAction struct{}
type SearchCharAction struct {
	Char rune
}
type SearchBackspaceAction struct{}
type SearchCommitAction struct{} // Enter - keep the filter
type SearchCancelAction struct{} // Esc - drop the filter

// ===== SETTINGS ACTIONS =====

type SettingsStartAction struct{}
type SettingsCharAction struct {
	Char rune
}
type SettingsBackspaceAction struct{}
type SettingsCommitAction struct{}
type SettingsCancelAction struct{}

// ===== VIEW ACTIONS =====

type ResizeAction struct {
	Width  int
	Height int
}

// ===== APPLICATION ACTIONS =====

type QuitAction struct{}
type SuspendAction struct{} // Ctrl+Z - handled by the event loop
