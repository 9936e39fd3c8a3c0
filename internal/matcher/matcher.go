// file: internal/matcher/matcher.go
// version: 2.0.0
// guid: 1f2a3b4c-5d6e-7f8a-9b0c-1d2e3f4a5b6c

// Package matcher implements the text matching used by catalog searches.
package matcher

import (
	"strings"

	"golang.org/x/text/cases"
)

// Fold returns s in Unicode case-folded form, suitable for caseless
// comparison of titles and author names in any script.
func Fold(s string) string {
	// cases.Caser keeps state between calls and is not safe for reuse
	// across goroutines, so build one per call.
	return cases.Fold().String(s)
}

// Contains reports whether needle occurs in haystack, ignoring case.
// An empty needle matches everything.
func Contains(haystack, needle string) bool {
	return strings.Contains(Fold(haystack), Fold(needle))
}
