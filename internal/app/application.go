// Package app runs the interactive picker session on a terminal screen.
package app

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/stigen/internal/launch"
	statepkg "github.com/kk-code-lab/stigen/internal/state"
	inputui "github.com/kk-code-lab/stigen/internal/ui/input"
	renderui "github.com/kk-code-lab/stigen/internal/ui/render"
	"github.com/sirupsen/logrus"
)

// DefaultGrace is how long the launch message stays up after a successful
// hand-off before the picker exits.
const DefaultGrace = 1500 * time.Millisecond

// Options configures a session.
type Options struct {
	// Root is the absolute projects directory to browse.
	Root string
	// Screen is initialised by NewApplication. Nil means the real terminal.
	Screen tcell.Screen
	// Launcher receives the selected project path.
	Launcher launch.Launcher
	// LauncherName is shown on the launch screen.
	LauncherName string
	// Settings persists root changes made on the settings screen.
	Settings statepkg.SettingsStore
	// Grace overrides DefaultGrace when positive.
	Grace  time.Duration
	Logger *logrus.Entry
}

// Application represents the running app.
type Application struct {
	screen   tcell.Screen
	state    *statepkg.AppState
	reducer  *statepkg.StateReducer
	renderer *renderui.Renderer
	input    *inputui.InputHandler
	actionCh chan statepkg.Action

	launcher     launch.Launcher
	launcherName string
	grace        time.Duration
	sleep        func(time.Duration)
	logger       *logrus.Entry

	launchErr error
	closed    bool
}

// Close releases the terminal. It is safe to call more than once.
func (app *Application) Close() error {
	if app.closed {
		return nil
	}
	app.closed = true
	close(app.actionCh)
	app.screen.Fini()
	return nil
}

// State exposes the live state, mainly for tests and diagnostics.
func (app *Application) State() *statepkg.AppState {
	return app.state
}
