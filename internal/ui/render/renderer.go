package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	fsutil "github.com/kk-code-lab/stigen/internal/fs"
	statepkg "github.com/kk-code-lab/stigen/internal/state"
	textutil "github.com/kk-code-lab/stigen/internal/textutil"
)

const (
	titleText        = "=== STIGEN ==="
	keyHelpText      = "(s for settings, / to search, ESC to cancel, q to exit, ENTER to open)"
	settingsTitle    = "--- SETTINGS ---"
	settingsLabel    = "Default Directory:"
	settingsHelpText = "(Type to change, ENTER to save, ESC to cancel)"

	selectedPrefix   = ">  "
	unselectedPrefix = "   "

	contentCol = 2
	statusCol  = 1
)

// Renderer handles all UI rendering
type Renderer struct {
	surface     Surface
	theme       ColorTheme
	widths      *widthCache
	isDirectory func(path string) bool

	lastW, lastH int
}

// NewRenderer creates a new renderer
func NewRenderer(surface Surface) *Renderer {
	return &Renderer{
		surface:     surface,
		theme:       GetColorTheme(),
		widths:      &widthCache{},
		isDirectory: draftIsDirectory,
	}
}

func draftIsDirectory(draft string) bool {
	expanded, err := fsutil.ExpandPath(draft)
	if err != nil {
		return false
	}
	return fsutil.IsDirectory(expanded)
}

// Render repaints the screen for state. The whole screen is cleared only when
// its size changed since the last call; otherwise just the list region and
// the footer are cleared before painting.
func (r *Renderer) Render(state *statepkg.AppState) {
	w, h := r.surface.Size()
	if w <= 0 || h <= 0 {
		return
	}

	if w != r.lastW || h != r.lastH {
		r.surface.ClearRegion(0, h-1)
		r.lastW, r.lastH = w, h
	} else {
		r.surface.ClearRegion(statepkg.ListStartRow, h-1)
	}

	r.drawHeader()

	switch state.Mode {
	case statepkg.ModeSettings:
		r.drawSettings(state, h)
	default:
		r.drawList(state, w, h)
	}

	r.drawQueryLine(state, w, h)
	r.drawStatusLine(state, h)
	r.placeCursor(state, h)

	r.surface.Refresh()
}

// Bell rings the terminal bell.
func (r *Renderer) Bell() {
	r.surface.Bell()
}

// ShowLaunching replaces the screen with the hand-off message.
func (r *Renderer) ShowLaunching(command, name string) {
	w, h := r.surface.Size()
	if w <= 0 || h <= 0 {
		return
	}
	r.surface.ClearRegion(0, h-1)
	r.lastW, r.lastH = 0, 0

	text := fmt.Sprintf("Starting %s for: %s", command, textutil.SanitizeTerminalText(name))
	r.surface.PaintLine(contentCol, 2, text, r.theme.Accent, r.theme.Background)
	r.surface.HideCursor()
	r.surface.Refresh()
}

func (r *Renderer) drawHeader() {
	r.surface.PaintLine(contentCol, 1, titleText, r.theme.Accent, r.theme.Background)
	r.surface.PaintLine(contentCol, 2, keyHelpText, r.theme.Foreground, r.theme.Background)
}

func (r *Renderer) drawList(state *statepkg.AppState, w, h int) {
	row := statepkg.ListStartRow
	lastRow := h - statepkg.FooterRows - 1
	if row > lastRow {
		return
	}

	if len(state.Catalog) == 0 {
		msg := "No projects found in " + textutil.SanitizeTerminalText(state.RootPath)
		r.surface.PaintLine(contentCol, row, msg, r.theme.ErrorFg, r.theme.Background)
		return
	}
	if len(state.Displayed) == 0 && state.Query != "" {
		msg := fmt.Sprintf("No projects found matching '%s'", textutil.SanitizeTerminalText(state.Query))
		r.surface.PaintLine(contentCol, row, msg, r.theme.ErrorFg, r.theme.Background)
		return
	}

	nameWidth := state.NameWidth()
	maxWidth := w - contentCol - textutil.DisplayWidth(selectedPrefix)

	start := state.ScrollOffset
	if start < 0 || start >= len(state.Displayed) {
		start = 0
	}
	for idx := start; idx < len(state.Displayed) && row <= lastRow; idx++ {
		name := textutil.SanitizeTerminalText(state.Displayed[idx].Name)
		name = r.widths.truncate(textutil.PadRight(name, nameWidth), maxWidth)

		if idx == state.SelectedIndex {
			r.surface.PaintLine(contentCol, row, selectedPrefix+name, r.theme.Accent, r.theme.Background)
		} else {
			r.surface.PaintLine(contentCol, row, unselectedPrefix+name, r.theme.Foreground, r.theme.Background)
		}
		row++
	}
}

// drawSettings paints the settings panel above the footer; rows that would
// reach the query or status line are dropped.
func (r *Renderer) drawSettings(state *statepkg.AppState, h int) {
	top := statepkg.ListStartRow
	lastRow := h - statepkg.FooterRows - 1
	paint := func(row int, text string, fg tcell.Color) {
		if row <= lastRow {
			r.surface.PaintLine(contentCol, row, text, fg, r.theme.Background)
		}
	}

	paint(top, settingsTitle, r.theme.Foreground)
	paint(top+2, settingsLabel, r.theme.Foreground)

	draftFg := r.theme.ErrorFg
	if r.isDirectory != nil && r.isDirectory(state.SettingsDraft) {
		draftFg = r.theme.ValidFg
	}
	paint(top+3, " "+textutil.SanitizeTerminalText(state.SettingsDraft)+" ", draftFg)
	paint(top+5, settingsHelpText, r.theme.Foreground)
}

func (r *Renderer) drawQueryLine(state *statepkg.AppState, w, h int) {
	row := h - 2
	if row < statepkg.ListStartRow {
		return
	}

	switch state.Mode {
	case statepkg.ModeSearch:
		r.surface.PaintLine(contentCol, row, "/"+textutil.SanitizeTerminalText(state.Query), r.theme.Foreground, r.theme.Background)
	case statepkg.ModeBrowse:
		if state.LastError != nil {
			msg := r.widths.truncate(textutil.SanitizeTerminalText(state.LastError.Error()), w-contentCol)
			r.surface.PaintLine(contentCol, row, msg, r.theme.ErrorFg, r.theme.Background)
		} else if state.FilterActive() {
			msg := fmt.Sprintf("filter: %s (ESC to clear)", textutil.SanitizeTerminalText(state.Query))
			r.surface.PaintLine(contentCol, row, msg, r.theme.Foreground, r.theme.Background)
		}
	}
}

func (r *Renderer) drawStatusLine(state *statepkg.AppState, h int) {
	text := fmt.Sprintf("PATH: %s | PROJECTS: %d / %d",
		textutil.SanitizeTerminalText(state.RootPath), len(state.Displayed), len(state.Catalog))
	r.surface.PaintLine(statusCol, h-1, text, r.theme.Accent, r.theme.Background)
}

func (r *Renderer) placeCursor(state *statepkg.AppState, h int) {
	switch state.Mode {
	case statepkg.ModeSearch:
		r.surface.SetCursor(contentCol+1+textutil.DisplayWidth(state.Query), h-2)
	case statepkg.ModeSettings:
		row := statepkg.ListStartRow + 3
		if row > h-statepkg.FooterRows-1 {
			r.surface.HideCursor()
			return
		}
		r.surface.SetCursor(contentCol+1+textutil.DisplayWidth(state.SettingsDraft), row)
	default:
		r.surface.HideCursor()
	}
}
