// Package trfold normalizes Turkish text for keyword matching.
package trfold

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var stripMarks = transform.Chain(
	norm.NFD,
	runes.Remove(runes.In(unicode.Mn)),
	norm.NFC,
)

// Lower lowercases with Turkish casing rules, so I becomes ı and İ becomes i.
func Lower(s string) string {
	return strings.ToLowerSpecial(unicode.TurkishCase, s)
}

// Fold lowercases and strips diacritics so that "Kahramanmaraş" and
// "kahramanmaras" compare equal. The dotless ı survives NFD stripping
// (it is a base letter, not a combining mark) and is mapped by hand.
func Fold(s string) string {
	s = Lower(s)
	if out, _, err := transform.String(stripMarks, s); err == nil {
		s = out
	}
	return strings.Map(func(r rune) rune {
		if r == 'ı' {
			return 'i'
		}
		return r
	}, s)
}
