// Package textnorm cleans and validates extracted text across scripts.
package textnorm

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// MinLength is the minimum trimmed length for text to be considered.
const MinLength = 2

// Clean applies NFKC normalization and collapses whitespace runs to a
// single space. Empty input stays empty.
func Clean(s string) string {
	if s == "" {
		return ""
	}
	s = norm.NFKC.String(s)
	return strings.Join(strings.Fields(s), " ")
}

// IsMeaningful reports whether text is worth considering as a heading
// candidate: at least minLength runes after trimming, and at least two
// runes in a Unicode letter or number category. This rejects
// punctuation-only and symbol-only runs uniformly across scripts.
func IsMeaningful(s string, minLength int) bool {
	if minLength <= 0 {
		minLength = MinLength
	}
	s = strings.TrimSpace(s)
	if utf8.RuneCountInString(s) < minLength {
		return false
	}

	count := 0
	for _, r := range s {
		// Letter categories Lu/Ll/Lt/Lo/Lm and numbers Nd/Nl/No.
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.Is(unicode.Nl, r) || unicode.Is(unicode.No, r) {
			count++
			if count >= 2 {
				return true
			}
		}
	}
	return false
}
