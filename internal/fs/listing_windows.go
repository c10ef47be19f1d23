//go:build windows

package fs

import "syscall"

const (
	fileAttributeSystem       = 0x04
	fileAttributeReparsePoint = 0x0400
)

// isProtectedEntry reports compatibility junctions such as "Application Data"
// in a profile directory. They look like directories but cannot be opened.
func isProtectedEntry(fullPath string) bool {
	if fullPath == "" {
		return false
	}
	ptr, err := syscall.UTF16PtrFromString(fullPath)
	if err != nil {
		return false
	}
	attrs, err := syscall.GetFileAttributes(ptr)
	if err != nil {
		return false
	}
	const protectedMask = fileAttributeSystem | fileAttributeReparsePoint
	return attrs&protectedMask == protectedMask
}
