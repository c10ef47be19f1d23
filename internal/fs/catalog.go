package fs

import (
	"os"
	"path/filepath"
	"sort"

	textutil "github.com/kk-code-lab/stigen/internal/textutil"
	"golang.org/x/text/unicode/norm"
)

// ReservedName is the launcher's own checkout; it never shows up as a project.
const ReservedName = "project-launcher"

// LoadCatalog lists the immediate subdirectories of root, sorted
// case-insensitively by name. A missing or unreadable root yields an empty
// catalog rather than an error; callers render the "no projects" state.
func LoadCatalog(root, reserved string) []Entry {
	if !IsDirectory(root) {
		return []Entry{}
	}

	dirPath, err := filepath.Abs(root)
	if err != nil {
		dirPath = filepath.Clean(root)
	}

	entries, err := os.ReadDir(dirPath)
	if err != nil {
		return []Entry{}
	}

	catalog := make([]Entry, 0, len(entries))
	for _, e := range entries {
		rawName := e.Name()
		if reserved != "" && rawName == reserved {
			continue
		}

		fullPath := filepath.Join(dirPath, rawName)
		if !isDirectoryEntry(e, fullPath) || isProtectedEntry(fullPath) {
			continue
		}

		catalog = append(catalog, Entry{
			Name:     norm.NFC.String(rawName),
			FullPath: fullPath,
		})
	}

	SortEntries(catalog)
	return catalog
}

// SortEntries orders entries by case-folded name. The sort is stable so
// names differing only in case keep their listing order.
func SortEntries(entries []Entry) {
	keys := make(map[string]string, len(entries))
	for _, e := range entries {
		keys[e.FullPath] = textutil.Fold(e.Name)
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return keys[entries[i].FullPath] < keys[entries[j].FullPath]
	})
}

func isDirectoryEntry(e os.DirEntry, fullPath string) bool {
	if e.IsDir() {
		return true
	}
	// Symlinks count when their target is a directory.
	if e.Type()&os.ModeSymlink != 0 {
		info, err := os.Stat(fullPath)
		return err == nil && info.IsDir()
	}
	return false
}
