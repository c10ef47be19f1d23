// Package config persists the default projects directory.
// The store is a flat TOML file holding a single default_directory key,
// by default ~/.stigen/config.toml. A default directory saved by earlier
// releases in ~/.stigen/config.properties is picked up and migrated.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	fsutil "github.com/kk-code-lab/stigen/internal/fs"
	toml "github.com/pelletier/go-toml/v2"
)

const defaultConfigPath = "~/.stigen/config.toml"

// DefaultPath returns the default config file path, unexpanded.
func DefaultPath() string {
	return defaultConfigPath
}

type fileConfig struct {
	DefaultDirectory string `toml:"default_directory,omitempty"`
}

// Store reads and writes the config file at Path. An empty Path means
// DefaultPath. LegacyPath, when set, names a properties file read by
// LoadLegacy.
type Store struct {
	Path       string
	LegacyPath string
}

// NewStore returns a store for path, falling back to the default location.
// Only the default location also looks at the legacy properties file.
func NewStore(path string) *Store {
	store := &Store{Path: path}
	if strings.TrimSpace(path) == "" {
		store.LegacyPath = legacyConfigPath
	}
	return store
}

// Load returns the configured default directory. A missing file or key is
// reported as ok=false with a nil error.
func (s *Store) Load() (string, bool, error) {
	resolved, err := s.resolvePath()
	if err != nil {
		return "", false, err
	}

	data, err := os.ReadFile(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("read config: %w", err)
	}

	var raw fileConfig
	if err := toml.Unmarshal(data, &raw); err != nil {
		return "", false, fmt.Errorf("parse config %s: %w", resolved, err)
	}

	dir := strings.TrimSpace(raw.DefaultDirectory)
	if dir == "" {
		return "", false, nil
	}
	return dir, true, nil
}

// Save writes dir as the default directory, creating parent directories as
// needed.
func (s *Store) Save(dir string) error {
	resolved, err := s.resolvePath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(resolved), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := toml.Marshal(fileConfig{DefaultDirectory: dir})
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(resolved, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Resolved returns the absolute config path.
func (s *Store) Resolved() (string, error) {
	return s.resolvePath()
}

func (s *Store) resolvePath() (string, error) {
	path := s.Path
	if strings.TrimSpace(path) == "" {
		path = defaultConfigPath
	}
	return resolveConfigPath(path)
}

func resolveConfigPath(path string) (string, error) {
	resolved, err := fsutil.ExpandPath(path)
	if err != nil {
		return "", fmt.Errorf("resolve config path: %w", err)
	}
	return resolved, nil
}
