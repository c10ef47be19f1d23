package fs

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsDirectory(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(file, nil, 0o644))

	assert.True(t, IsDirectory(dir))
	assert.False(t, IsDirectory(file))
	assert.False(t, IsDirectory(filepath.Join(dir, "missing")))
	assert.False(t, IsDirectory(""))
}

func TestExpandPathResolvesHome(t *testing.T) {
	home := t.TempDir()
	orig := userHomeDirFn
	userHomeDirFn = func() (string, error) { return home, nil }
	t.Cleanup(func() { userHomeDirFn = orig })

	got, err := ExpandPath("~/projects")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "projects"), got)

	got, err = ExpandPath("~")
	require.NoError(t, err)
	assert.Equal(t, home, got)
}

func TestExpandPathKeepsTildeInsideNames(t *testing.T) {
	got, err := ExpandPath("/tmp/~backup")
	require.NoError(t, err)
	assert.Equal(t, "~backup", filepath.Base(got))
}

func TestExpandPathErrors(t *testing.T) {
	_, err := ExpandPath("")
	require.Error(t, err)

	orig := userHomeDirFn
	userHomeDirFn = func() (string, error) { return "", errors.New("no home") }
	t.Cleanup(func() { userHomeDirFn = orig })

	_, err = ExpandPath("~/x")
	require.Error(t, err)
}
