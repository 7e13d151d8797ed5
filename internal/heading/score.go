// Package heading implements the heading-inference engine: it turns a
// stream of positioned, sized glyphs into a confidence-scored, leveled
// outline.
package heading

import (
	"math"
	"regexp"
	"strings"
	"unicode"

	"github.com/pardivkamishetty/outliner/internal/fontstats"
	"github.com/pardivkamishetty/outliner/internal/script"
)

// Sub-score weights. Pattern evidence dominates because numbering
// conventions are the most script-agnostic signal; font size is weighted
// lowest because body text in decorative fonts can rival heading sizes.
const (
	weightPattern = 0.4
	weightFormat  = 0.3
	weightLength  = 0.2
	weightFont    = 0.1
)

// Universal numbering patterns: "1.", "1)", "1 ", "1.1", roman prefixes.
var universalPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^[0-9]+[.)\s]`),
	regexp.MustCompile(`^[0-9]+\.[0-9]+`),
	regexp.MustCompile(`(?i)^[IVX]+\.?\s*`),
}

// Score computes a [0,1] confidence that text is a heading, combining
// pattern, format, length and font-rank signals. The script family is
// the document-level classification, not re-detected per run.
func Score(text string, size float64, fam script.Family, pct fontstats.Percentiles) float64 {
	t := strings.TrimSpace(text)
	if t == "" {
		return 0
	}
	prof := script.Lookup(fam)

	confidence := patternScore(t, fam, prof)*weightPattern +
		formatScore(t)*weightFormat +
		lengthScore(t, prof)*weightLength +
		fontScore(size, pct)*weightFont

	return math.Min(confidence, 1.0)
}

func patternScore(t string, fam script.Family, prof script.Profile) float64 {
	score := 0.0
	for _, re := range universalPatterns {
		if re.MatchString(t) {
			score = 1.0
			break
		}
	}

	switch fam {
	case script.Japanese, script.Hindi:
		for _, re := range prof.Patterns {
			if re.MatchString(t) {
				score = math.Max(score, 0.9)
				break
			}
		}
	default:
		lower := strings.ToLower(t)
		for _, kw := range prof.Keywords {
			if strings.Contains(lower, kw) {
				score = math.Max(score, 0.8)
				break
			}
		}
	}
	return score
}

// formatScore applies the casing checks in strict priority order; only
// the highest applicable branch counts.
func formatScore(t string) float64 {
	n := runeLen(t)
	switch {
	case isAllCaps(t) && n >= 3:
		return 0.8
	case isTitleCase(t) && n >= 5:
		return 0.7
	case firstLetterUpper(t):
		return 0.4
	}
	return 0
}

func lengthScore(t string, prof script.Profile) float64 {
	n := runeLen(t)
	switch {
	case n >= prof.MinLen && n <= prof.MaxLen:
		return 1.0
	case n < prof.MinLen:
		return 0.2
	default:
		// Graceful decay: legitimately long headings should not zero out.
		return math.Max(0.3, 1.0-float64(n-prof.MaxLen)/float64(prof.MaxLen))
	}
}

func fontScore(size float64, pct fontstats.Percentiles) float64 {
	if size <= 0 || len(pct) == 0 {
		return 0
	}
	switch {
	case size >= pct[fontstats.P90]:
		return 1.0
	case size >= pct[fontstats.P75]:
		return 0.7
	case size >= pct[fontstats.P50]:
		return 0.4
	}
	return 0.1
}

func runeLen(s string) int {
	n := 0
	for range s {
		n++
	}
	return n
}

// isAllCaps reports whether the text contains at least one letter and no
// lowercase letters.
func isAllCaps(s string) bool {
	hasLetter := false
	for _, r := range s {
		if !unicode.IsLetter(r) {
			continue
		}
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			hasLetter = true
		}
	}
	return hasLetter
}

// isTitleCase reports whether every whitespace-separated word starts
// with an uppercase letter and carries no further uppercase letters.
// Words that do not begin with a letter (e.g. a "1." prefix) disqualify
// the text, leaving it to the weaker initial-capital check.
func isTitleCase(s string) bool {
	words := strings.Fields(s)
	if len(words) == 0 {
		return false
	}
	for _, w := range words {
		first, rest := firstRune(w)
		if !unicode.IsUpper(first) {
			return false
		}
		for _, r := range rest {
			if unicode.IsUpper(r) {
				return false
			}
		}
	}
	return true
}

// firstLetterUpper reports whether the first letter rune in the text is
// uppercase, skipping any leading digits or punctuation.
func firstLetterUpper(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return unicode.IsUpper(r)
		}
	}
	return false
}

func firstRune(s string) (rune, string) {
	for i, r := range s {
		return r, s[i+len(string(r)):]
	}
	return 0, ""
}
