package fs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// IsDirectory reports whether path names an existing directory, following
// symlinks.
func IsDirectory(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

var userHomeDirFn = os.UserHomeDir

// ExpandPath resolves a leading ~ to the user's home directory and returns an
// absolute, cleaned path.
func ExpandPath(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("path is empty")
	}
	if path == "~" || strings.HasPrefix(path, "~/") || strings.HasPrefix(path, `~\`) {
		home, err := userHomeDirFn()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}
	return filepath.Abs(path)
}
