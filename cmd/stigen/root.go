package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/gdamore/tcell/v2"
	apppkg "github.com/kk-code-lab/stigen/internal/app"
	"github.com/kk-code-lab/stigen/internal/config"
	fsutil "github.com/kk-code-lab/stigen/internal/fs"
	"github.com/kk-code-lab/stigen/internal/launch"
	"github.com/kk-code-lab/stigen/internal/logging"
	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	// ErrInvalidRoot means the projects directory cannot be browsed.
	ErrInvalidRoot = errors.New("invalid projects directory")
	// ErrNotTerminal means stdin or stdout is not an interactive terminal.
	ErrNotTerminal = errors.New("stigen needs an interactive terminal")
)

var version = "dev"

type rootOptions struct {
	configPath string
	launcher   string
	logLevel   string
}

// defaultsSource supplies the persisted default directory.
type defaultsSource interface {
	DefaultDirectory() (string, bool)
}

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "stigen [ROOT]",
		Short: "Pick a project directory and open it",
		Long: `stigen lists the subdirectories of a projects directory, lets you filter
them by name and opens the selected one with an external launcher.

ROOT defaults to the directory saved from the settings screen, then to the
home directory.`,
		Version:       version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts, args)
		},
	}

	cmd.Flags().StringVar(&opts.configPath, "config", "", "config file (default is "+config.DefaultPath()+")")
	cmd.Flags().StringVar(&opts.launcher, "launcher", "", "command used to open a project (default $"+launch.CommandEnv+" or "+launch.DefaultCommand+")")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, error (default $"+logging.LevelEnv+" or warn)")

	return cmd
}

func run(opts *rootOptions, args []string) error {
	if opts.logLevel != "" {
		if err := logging.SetLevel(opts.logLevel); err != nil {
			return fmt.Errorf("--log-level: %w", err)
		}
	}
	logger := logging.NewLogger("cli")

	store := config.NewStore(opts.configPath)
	if path, err := store.Resolved(); err == nil {
		logger.WithField("path", path).Debug("using config file")
	}
	bridge := config.NewBridge(store, logging.NewLogger("config"))

	root, err := resolveRoot(args, bridge, os.UserHomeDir, logger)
	if err != nil {
		return err
	}

	if !isInteractive() {
		return ErrNotTerminal
	}

	launcher := launch.NewExecLauncher(launch.ResolveCommand(opts.launcher, os.Getenv), logging.NewLogger("launch"))

	release := logging.Hold()
	defer release()

	tcell.SetEncodingFallback(tcell.EncodingFallbackUTF8)

	app, err := apppkg.NewApplication(apppkg.Options{
		Root:         root,
		Launcher:     launcher,
		LauncherName: launcher.Name(),
		Settings:     bridge,
	})
	if err != nil {
		return err
	}
	defer func() {
		_ = app.Close()
	}()

	return app.Run()
}

// resolveRoot picks the projects directory: the argument, then the saved
// default, then the home directory. Whichever source is used must name an
// existing directory; a present but blank argument is rejected too.
func resolveRoot(args []string, defaults defaultsSource, home func() (string, error), logger *logrus.Entry) (string, error) {
	if len(args) > 0 {
		arg := args[0]
		if strings.TrimSpace(arg) == "" {
			return "", fmt.Errorf("%w: ROOT argument is empty", ErrInvalidRoot)
		}
		return checkRoot(arg)
	}

	if defaults != nil {
		if saved, ok := defaults.DefaultDirectory(); ok {
			root, err := checkRoot(saved)
			if err != nil {
				return "", fmt.Errorf("%w (saved default; pass ROOT or fix it on the settings screen)", err)
			}
			logger.WithField("root", root).Debug("using saved default directory")
			return root, nil
		}
	}

	dir, err := home()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidRoot, err)
	}
	return checkRoot(dir)
}

func checkRoot(path string) (string, error) {
	root, err := fsutil.ExpandPath(path)
	if err != nil || !fsutil.IsDirectory(root) {
		return "", fmt.Errorf("%w: %s is not a directory", ErrInvalidRoot, path)
	}
	return root, nil
}

func isInteractive() bool {
	return isTerminalFd(os.Stdin.Fd()) && isTerminalFd(os.Stdout.Fd())
}

func isTerminalFd(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
