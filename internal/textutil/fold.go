package textutil

import "golang.org/x/text/cases"

// Fold returns the case-folded form of s, used for case-insensitive sorting
// and substring matching.
func Fold(s string) string {
	return cases.Fold().String(s)
}
