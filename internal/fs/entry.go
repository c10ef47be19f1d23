package fs

// Entry is a candidate project directory. Identity is FullPath.
type Entry struct {
	Name     string
	FullPath string
}
