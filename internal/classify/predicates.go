// Package classify infers what statement columns mean from their content.
// Header names are never consulted; banks label the same column a dozen
// different ways, but the values themselves are recognizable.
package classify

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	// datePattern matches numeric date shapes like 03/14/2024, 2024-03-14
	// and 14.3.24 regardless of component order.
	datePattern = regexp.MustCompile(`\d{1,4}[/\-.]\d{1,2}[/\-.]\d{1,4}`)

	// plainNumber matches a cleaned cell that is nothing but a signed number.
	plainNumber = regexp.MustCompile(`^-?\d+(\.\d*)?$`)

	// trailingCents matches values that end in a two-decimal money tail,
	// catching formats the cleaner cannot reduce, like "1.234,56".
	trailingCents = regexp.MustCompile(`\d+[.,]\d{2}$`)
)

const dateSeparators = "/-."

// LooksLikeDate reports whether a raw cell value plausibly holds a calendar
// date. Values shorter than six runes are never dates; "3/4" is a fraction.
func LooksLikeDate(v string) bool {
	if v == "" || utf8.RuneCountInString(v) < 6 {
		return false
	}
	if strings.ContainsAny(v, dateSeparators) && strings.ContainsFunc(v, unicode.IsDigit) {
		return true
	}
	if _, ok := ParseDate(v); ok {
		return true
	}
	return datePattern.MatchString(v)
}

// LooksLikeAmount reports whether a raw cell value plausibly holds a money
// amount, tolerating currency symbols, thousands separators, and whitespace.
func LooksLikeAmount(v string) bool {
	if v == "" {
		return false
	}
	if plainNumber.MatchString(stripAmountNoise(v)) {
		return true
	}
	return trailingCents.MatchString(v)
}

// LooksLikeText reports whether a raw cell value reads as free text, the
// kind of thing a description column holds. Short codes do not qualify.
func LooksLikeText(v string) bool {
	if utf8.RuneCountInString(v) <= 3 {
		return false
	}
	return strings.ContainsFunc(v, unicode.IsLetter)
}

// stripAmountNoise drops currency symbols, comma separators, and whitespace,
// leaving the bare numeric part of an amount cell.
func stripAmountNoise(v string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case unicode.Is(unicode.Sc, r):
			return -1
		case r == ',':
			return -1
		case unicode.IsSpace(r):
			return -1
		default:
			return r
		}
	}, v)
}
