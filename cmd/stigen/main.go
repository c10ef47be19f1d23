package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/kk-code-lab/stigen/internal/launch"
)

const (
	exitOK          = 0
	exitFailure     = 1
	exitInvalidRoot = 2
	exitLaunch      = 3
)

func main() {
	err := NewRootCmd().Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "stigen: %v\n", err)
	}
	os.Exit(exitCode(err))
}

func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, ErrInvalidRoot):
		return exitInvalidRoot
	case errors.Is(err, launch.ErrLaunchFailed):
		return exitLaunch
	default:
		return exitFailure
	}
}
