// Package launch hands a selected project to an external program.
package launch

import (
	"os"
	"strings"
	"unicode"

	fsutil "github.com/kk-code-lab/stigen/internal/fs"
)

// DefaultCommand is used when neither --launcher nor STIGEN_LAUNCHER is set.
const DefaultCommand = "intellij-idea-ultimate-edition"

// CommandEnv overrides DefaultCommand.
const CommandEnv = "STIGEN_LAUNCHER"

// ResolveCommand picks the launcher command line: flag value, then the
// environment, then DefaultCommand.
func ResolveCommand(flagValue string, getenv func(string) string) string {
	if v := strings.TrimSpace(flagValue); v != "" {
		return v
	}
	if getenv == nil {
		getenv = os.Getenv
	}
	if v := strings.TrimSpace(getenv(CommandEnv)); v != "" {
		return v
	}
	return DefaultCommand
}

// ParseCommand splits a command line honouring single and double quotes.
// A leading "~" in the program name is expanded.
func ParseCommand(cmd string) []string {
	cmd = strings.TrimSpace(cmd)
	if cmd == "" {
		return nil
	}

	var args []string
	var current strings.Builder
	inSingle := false
	inDouble := false

	for _, r := range cmd {
		switch r {
		case '\'':
			if inDouble {
				current.WriteRune(r)
			} else {
				inSingle = !inSingle
			}
			continue
		case '"':
			if inSingle {
				current.WriteRune(r)
			} else {
				inDouble = !inDouble
			}
			continue
		default:
			if !inSingle && !inDouble && unicode.IsSpace(r) {
				if current.Len() > 0 {
					args = append(args, current.String())
					current.Reset()
				}
				continue
			}
			current.WriteRune(r)
		}
	}

	if current.Len() > 0 {
		args = append(args, current.String())
	}

	if len(args) > 0 {
		args[0] = expandProgram(args[0])
	}

	return args
}

// expandProgram resolves a home-relative program path. Bare names are left
// for PATH lookup.
func expandProgram(program string) string {
	if program != "~" && !strings.HasPrefix(program, "~/") && !strings.HasPrefix(program, `~\`) {
		return program
	}
	expanded, err := fsutil.ExpandPath(program)
	if err != nil {
		return program
	}
	return expanded
}
