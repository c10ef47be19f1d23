//go:build !windows

package app

import (
	"syscall"
)

func (app *Application) suspendToShell() {
	// Return terminal control to the shell before stopping the process.
	_ = app.screen.Suspend()
	// Stop only this process; the call returns once the shell continues us.
	_ = syscall.Kill(syscall.Getpid(), syscall.SIGTSTP)
}

func (app *Application) resumeAfterStop() {
	if err := app.screen.Resume(); err != nil {
		app.logger.WithError(err).Warn("could not resume terminal")
		return
	}
	app.screen.Sync()
	if w, h := app.screen.Size(); w > 0 && h > 0 {
		app.state.ScreenWidth = w
		app.state.ScreenHeight = h
	}
	app.state.Dirty = true
}
