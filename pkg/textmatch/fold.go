// Package textmatch provides case-insensitive matching on Unicode case folds.
package textmatch

import (
	"strings"

	"golang.org/x/text/cases"
)

// Fold returns the case-folded form of s.
func Fold(s string) string {
	// cases.Caser is stateful, so one per call.
	return cases.Fold().String(s)
}

// ContainsFold reports whether needle occurs in haystack ignoring case.
// An empty needle always matches.
func ContainsFold(haystack, needle string) bool {
	if needle == "" {
		return true
	}
	return strings.Contains(Fold(haystack), Fold(needle))
}
