package app

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	fsutil "github.com/kk-code-lab/stigen/internal/fs"
	"github.com/kk-code-lab/stigen/internal/logging"
	statepkg "github.com/kk-code-lab/stigen/internal/state"
	"github.com/kk-code-lab/stigen/internal/ui/input"
	renderui "github.com/kk-code-lab/stigen/internal/ui/render"
)

// NewApplication acquires the terminal and loads the catalog for opts.Root.
func NewApplication(opts Options) (*Application, error) {
	if opts.Launcher == nil {
		return nil, fmt.Errorf("no launcher configured")
	}

	screen := opts.Screen
	if screen == nil {
		var err error
		screen, err = tcell.NewScreen()
		if err != nil {
			return nil, fmt.Errorf("open terminal: %w", err)
		}
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("initialise terminal: %w", err)
	}

	logger := opts.Logger
	if logger == nil {
		logger = logging.NewLogger("app")
	}

	catalog := fsutil.LoadCatalog(opts.Root, fsutil.ReservedName)
	logger.WithField("root", opts.Root).WithField("projects", len(catalog)).Debug("catalog loaded")

	state := statepkg.NewAppState(opts.Root, catalog)
	w, h := screen.Size()
	state.ScreenWidth = w
	state.ScreenHeight = h

	actionCh := make(chan statepkg.Action, 10)

	reducer := statepkg.NewStateReducer()
	if opts.Settings != nil {
		reducer.SetSettingsStore(opts.Settings)
	}
	renderer := renderui.NewRenderer(renderui.NewScreenSurface(screen))
	inputHandler := input.NewInputHandler(actionCh)
	inputHandler.SetState(state)

	grace := opts.Grace
	if grace <= 0 {
		grace = DefaultGrace
	}

	return &Application{
		screen:       screen,
		state:        state,
		reducer:      reducer,
		renderer:     renderer,
		input:        inputHandler,
		actionCh:     actionCh,
		launcher:     opts.Launcher,
		launcherName: opts.LauncherName,
		grace:        grace,
		sleep:        time.Sleep,
		logger:       logger,
	}, nil
}

// Run processes key events until the user quits or a launch succeeds. The
// returned error is the last launch failure when the user quit without a
// later successful launch.
func (app *Application) Run() error {
	defer func() {
		if p := recover(); p != nil {
			_ = app.Close()
			panic(p)
		}
	}()

	app.flush()

	for !app.state.ShouldQuit {
		ev := app.screen.PollEvent()
		if ev == nil {
			// Screen finalised underneath us.
			break
		}

		app.handleEvent(ev)
		app.processActions()

		if app.state.LaunchTarget != nil && app.launchSelected() {
			return nil
		}

		app.flush()
	}

	return app.launchErr
}

func (app *Application) handleEvent(ev tcell.Event) {
	switch ev.(type) {
	case *tcell.EventKey, *tcell.EventResize:
		app.input.ProcessEvent(ev)
	}
}

func (app *Application) processActions() {
	for {
		select {
		case action := <-app.actionCh:
			app.handleAction(action)
		default:
			return
		}
	}
}

func (app *Application) handleAction(action statepkg.Action) {
	if action == nil {
		return
	}

	if _, ok := action.(statepkg.SuspendAction); ok {
		app.suspendToShell()
		app.resumeAfterStop()
		return
	}

	if _, err := app.reducer.Reduce(app.state, action); err != nil {
		app.logger.WithError(err).Warn("dropped action")
	}
}

// flush rings a pending bell and repaints when the state changed.
func (app *Application) flush() {
	if app.state.Alert {
		app.renderer.Bell()
		app.state.Alert = false
	}
	if app.state.Dirty {
		app.renderer.Render(app.state)
		app.state.Dirty = false
	}
}

// launchSelected hands the launch target to the launcher. It reports true
// when the session is over.
func (app *Application) launchSelected() bool {
	target := *app.state.LaunchTarget
	app.state.LaunchTarget = nil

	app.renderer.ShowLaunching(app.launcherName, target.Name)

	if err := app.launcher.Launch(target.FullPath); err != nil {
		app.logger.WithError(err).WithField("project", target.FullPath).Warn("launch failed")
		app.launchErr = err
		app.state.LastError = err
		app.state.Alert = true
		app.state.Dirty = true
		return false
	}

	app.logger.WithField("project", target.FullPath).Info("project launched")
	app.launchErr = nil
	app.sleep(app.grace)
	app.state.ShouldQuit = true
	return true
}
