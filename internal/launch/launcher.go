package launch

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
)

// ErrLaunchFailed wraps every failure to start the external program.
var ErrLaunchFailed = errors.New("launch failed")

// Launcher starts an external program for a project directory.
type Launcher interface {
	Launch(path string) error
}

// ExecLauncher runs a command line with the project path appended as the
// last argument. The child is detached from the terminal session and is not
// waited for.
type ExecLauncher struct {
	args     []string
	lookPath func(string) (string, error)
	start    func(*exec.Cmd) error
	logger   *logrus.Entry
}

// NewExecLauncher parses command into an ExecLauncher.
func NewExecLauncher(command string, logger *logrus.Entry) *ExecLauncher {
	if logger == nil {
		logger = logrus.NewEntry(logrus.StandardLogger())
	}
	return &ExecLauncher{
		args:     ParseCommand(command),
		lookPath: exec.LookPath,
		start:    startDetached,
		logger:   logger,
	}
}

// Name returns the program name shown on the launch screen.
func (l *ExecLauncher) Name() string {
	if len(l.args) == 0 {
		return ""
	}
	return filepath.Base(l.args[0])
}

// Launch starts the program for path.
func (l *ExecLauncher) Launch(path string) error {
	if len(l.args) == 0 {
		return fmt.Errorf("%w: no launcher command configured", ErrLaunchFailed)
	}

	program, err := l.lookPath(l.args[0])
	if err != nil {
		return fmt.Errorf("%w: %s not found: %v", ErrLaunchFailed, l.args[0], err)
	}

	argv := make([]string, 0, len(l.args))
	argv = append(argv, l.args[1:]...)
	argv = append(argv, path)

	cmd := exec.Command(program, argv...)
	cmd.Dir = path
	detach(cmd)

	l.logger.WithFields(logrus.Fields{
		"program": program,
		"args":    strings.Join(argv, " "),
	}).Info("starting launcher")

	if err := l.start(cmd); err != nil {
		return fmt.Errorf("%w: %v", ErrLaunchFailed, err)
	}
	return nil
}

func startDetached(cmd *exec.Cmd) error {
	devNull, err := os.OpenFile(os.DevNull, os.O_RDWR, 0)
	if err != nil {
		return err
	}
	defer func() {
		_ = devNull.Close()
	}()

	cmd.Stdin = devNull
	cmd.Stdout = devNull
	cmd.Stderr = devNull
	if err := cmd.Start(); err != nil {
		return err
	}
	return cmd.Process.Release()
}
