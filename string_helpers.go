package main

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// transformString is a seam over transform.String so tests can inject
// transformation failures.
var transformString = transform.String

// normalizeCityName standardizes a city name for catalog lookups: diacritics
// are stripped ("São Paulo" becomes "sao paulo") and the result is lowercased.
// Lookups by name from the query string go through this, so user input doesn't
// have to match the catalog spelling exactly.
func normalizeCityName(s string) (string, error) {
	if !utf8.ValidString(s) {
		return "", fmt.Errorf("input string is not valid UTF-8")
	}
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, err := transformString(t, s)
	if err != nil {
		return "", err
	}
	return strings.ToLower(strings.TrimSpace(result)), nil
}
