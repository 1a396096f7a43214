// Package textnorm normalizes transcript text before keyword matching.
package textnorm

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Lower returns the Unicode lowercase form of s.
// A Caser keeps state, so each call builds its own.
func Lower(s string) string {
	if s == "" {
		return s
	}
	return cases.Lower(language.Und).String(s)
}
