package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseProperties(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "default_directory=/home/me/dev\n", "/home/me/dev"},
		{"java store output", "#Stigen Configuration\n#Mon Jan 01 10:00:00 CET 2024\ndefault_directory=/home/me/dev\n", "/home/me/dev"},
		{"colon separator and spaces", "default_directory : /srv/projects\n", "/srv/projects"},
		{"escaped windows path", `default_directory=C\:\\Users\\me\\dev` + "\n", `C:\Users\me\dev`},
		{"unicode escape", `default_directory=/home/\u00e5sa/dev` + "\n", "/home/åsa/dev"},
		{"surrogate pair", `default_directory=/p/\ud83d\ude80` + "\n", "/p/🚀"},
		{"continuation", "default_directory=/home/\\\n    me/dev\n", "/home/me/dev"},
		{"no trailing newline", "default_directory=/x", "/x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			props, err := parseProperties([]byte(tt.in))
			require.NoError(t, err)
			assert.Equal(t, tt.want, props[defaultDirectoryKey])
		})
	}
}

func TestParsePropertiesRejectsBadUnicodeEscape(t *testing.T) {
	_, err := parseProperties([]byte(`default_directory=\u00zz` + "\n"))

	require.Error(t, err)
}

func TestLoadLegacy(t *testing.T) {
	dir := t.TempDir()
	legacy := filepath.Join(dir, "config.properties")
	require.NoError(t, os.WriteFile(legacy, []byte("#Stigen Configuration\ndefault_directory=/srv/old\n"), 0o600))

	store := &Store{Path: filepath.Join(dir, "config.toml"), LegacyPath: legacy}
	got, ok, err := store.LoadLegacy()

	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "/srv/old", got)
}

func TestLoadLegacyDisabledForExplicitPath(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "config.toml"))

	_, ok, err := store.LoadLegacy()

	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, store.LegacyPath)
}

func TestNewStoreDefaultLooksAtLegacyFile(t *testing.T) {
	assert.Equal(t, legacyConfigPath, NewStore("").LegacyPath)
}

func TestBridge_MigratesLegacyDefault(t *testing.T) {
	dir := t.TempDir()
	legacy := filepath.Join(dir, "config.properties")
	target := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(legacy, []byte("default_directory=/srv/old\n"), 0o600))
	logger, buf := newTestLogger()

	got, ok := NewBridge(&Store{Path: target, LegacyPath: legacy}, logger).DefaultDirectory()

	assert.True(t, ok)
	assert.Equal(t, "/srv/old", got)
	assert.Contains(t, buf.String(), "migrating default directory")

	migrated, ok, err := NewStore(target).Load()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "/srv/old", migrated)
}

func TestBridge_TOMLWinsOverLegacy(t *testing.T) {
	dir := t.TempDir()
	legacy := filepath.Join(dir, "config.properties")
	target := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(legacy, []byte("default_directory=/srv/old\n"), 0o600))
	require.NoError(t, NewStore(target).Save("/srv/new"))
	logger, _ := newTestLogger()

	got, ok := NewBridge(&Store{Path: target, LegacyPath: legacy}, logger).DefaultDirectory()

	assert.True(t, ok)
	assert.Equal(t, "/srv/new", got)
}
