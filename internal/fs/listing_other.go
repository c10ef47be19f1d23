//go:build !windows

package fs

func isProtectedEntry(_ string) bool {
	return false
}
