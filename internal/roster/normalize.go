// Package roster converts a raw tabular leadership export into the typed
// hierarchy model: it locates the header row, detects section markers,
// resolves free-text position titles against the catalog, and assembles
// filled and vacant seats in a single forward pass.
package roster

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Human-maintained spreadsheets accumulate invisible format runes (the
// U+202C pop-directional mark pasted in with phone numbers is the usual
// offender). NFC first so composed forms compare equal.
var cellCleaner = transform.Chain(
	norm.NFC,
	runes.Remove(runes.In(unicode.Cf)),
)

// Clean strips format/control runes from a cell and collapses runs of
// whitespace to single spaces, trimming the ends.
func Clean(s string) string {
	out, _, err := transform.String(cellCleaner, s)
	if err != nil {
		out = s
	}
	out = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return ' '
		}
		return r
	}, out)
	return strings.Join(strings.Fields(out), " ")
}

// Fold is Clean plus case folding, the normal form for comparisons.
func Fold(s string) string {
	return strings.ToLower(Clean(s))
}

// Tokens splits a cell into lowercase alphanumeric tokens, dropping all
// punctuation. "Operations Manager, Big Ball (Monday)" becomes
// [operations manager big ball monday].
func Tokens(s string) []string {
	return strings.FieldsFunc(Fold(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// Key derives a machine-stable key from free text: tokens joined with
// underscores. Used for list-section position keys.
func Key(s string) string {
	return strings.Join(Tokens(s), "_")
}

// foldDashes maps Unicode en and em dashes to ASCII hyphens so marker
// strings compare equal regardless of which dash data entry used.
func foldDashes(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '–', '—':
			return '-'
		}
		return r
	}, s)
}
