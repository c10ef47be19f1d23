package fs

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mkdirs(t *testing.T, root string, names ...string) {
	t.Helper()
	for _, name := range names {
		require.NoError(t, os.Mkdir(filepath.Join(root, name), 0o755))
	}
}

func names(entries []Entry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Name)
	}
	return out
}

func TestLoadCatalogSortsCaseInsensitively(t *testing.T) {
	root := t.TempDir()
	mkdirs(t, root, "gamma", "Beta", "alpha")

	catalog := LoadCatalog(root, ReservedName)

	assert.Equal(t, []string{"alpha", "Beta", "gamma"}, names(catalog))
	for _, e := range catalog {
		assert.Equal(t, filepath.Join(root, e.Name), e.FullPath)
	}
}

func TestLoadCatalogSkipsFilesAndReservedName(t *testing.T) {
	root := t.TempDir()
	mkdirs(t, root, "app", ReservedName, "web")
	require.NoError(t, os.WriteFile(filepath.Join(root, "notes.txt"), []byte("x"), 0o644))

	catalog := LoadCatalog(root, ReservedName)

	assert.Equal(t, []string{"app", "web"}, names(catalog))
}

func TestLoadCatalogKeepsHiddenDirectories(t *testing.T) {
	root := t.TempDir()
	mkdirs(t, root, ".dotfiles", "site")

	catalog := LoadCatalog(root, ReservedName)

	assert.Equal(t, []string{".dotfiles", "site"}, names(catalog))
}

func TestLoadCatalogFollowsDirectorySymlinks(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlink creation requires privileges on windows")
	}
	root := t.TempDir()
	target := t.TempDir()
	mkdirs(t, root, "real")
	require.NoError(t, os.Symlink(target, filepath.Join(root, "linked")))
	require.NoError(t, os.WriteFile(filepath.Join(target, "f.txt"), nil, 0o644))
	require.NoError(t, os.Symlink(filepath.Join(target, "f.txt"), filepath.Join(root, "filelink")))

	catalog := LoadCatalog(root, ReservedName)

	assert.Equal(t, []string{"linked", "real"}, names(catalog))
}

func TestLoadCatalogMissingRootIsEmpty(t *testing.T) {
	catalog := LoadCatalog(filepath.Join(t.TempDir(), "missing"), ReservedName)
	require.NotNil(t, catalog)
	assert.Empty(t, catalog)
}

func TestLoadCatalogFileRootIsEmpty(t *testing.T) {
	file := filepath.Join(t.TempDir(), "plain")
	require.NoError(t, os.WriteFile(file, nil, 0o644))

	assert.Empty(t, LoadCatalog(file, ReservedName))
}

func TestLoadCatalogResolvesRelativeRoot(t *testing.T) {
	root := t.TempDir()
	mkdirs(t, root, "one")
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(root))
	t.Cleanup(func() { _ = os.Chdir(prev) })

	catalog := LoadCatalog(".", ReservedName)

	require.Len(t, catalog, 1)
	assert.True(t, filepath.IsAbs(catalog[0].FullPath))
}

func TestSortEntriesIsStableForCaseTies(t *testing.T) {
	entries := []Entry{
		{Name: "b", FullPath: "/x/b"},
		{Name: "A", FullPath: "/x/A"},
		{Name: "B", FullPath: "/x/B"},
		{Name: "a", FullPath: "/x/a"},
	}

	SortEntries(entries)

	assert.Equal(t, []string{"A", "a", "b", "B"}, names(entries))
}
