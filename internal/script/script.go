// Package script classifies text into a coarse script family and holds
// the per-family heading heuristics.
package script

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/runenames"
)

// Family identifies the dominant writing system of a text sample.
type Family string

const (
	English  Family = "english"
	Japanese Family = "japanese"
	Hindi    Family = "hindi"
)

// SampleRuns is how many text runs are concatenated for the per-document
// classification. The decision is made once per document: mixing
// per-line script choices would corrupt length-based scoring.
const SampleRuns = 50

// Profile holds a family's heading heuristics: acceptable heading
// lengths (in runes), structural patterns (japanese/hindi) and lowercase
// keyword cues (english).
type Profile struct {
	MinLen   int
	MaxLen   int
	Patterns []*regexp.Regexp
	Keywords []string
}

// profiles is constructed once and never mutated, so it is safe to read
// from concurrent document workers.
var profiles = map[Family]Profile{
	English: {
		MinLen: 3,
		MaxLen: 80,
		Keywords: []string{
			"chapter", "section", "part", "introduction", "conclusion",
			"abstract", "summary", "overview", "background", "references",
		},
	},
	Japanese: {
		MinLen: 1,
		MaxLen: 25,
		Patterns: []*regexp.Regexp{
			regexp.MustCompile(`第[0-9０-９]+[章節条項部編]`),
			regexp.MustCompile(`[一二三四五六七八九十]\s*[章節条項部編]`),
		},
	},
	Hindi: {
		MinLen: 2,
		MaxLen: 40,
		Patterns: []*regexp.Regexp{
			regexp.MustCompile(`^(अध्याय|भाग|खंड|विभाग|प्रकरण)`),
			regexp.MustCompile(`^(परिचय|निष्कर्ष|सारांश|विषय)`),
		},
	},
}

// Lookup returns the profile for a family, falling back to English for
// anything unknown.
func Lookup(f Family) Profile {
	if p, ok := profiles[f]; ok {
		return p
	}
	return profiles[English]
}

// Detect returns the dominant script family of a text sample. Each
// non-space, non-punctuation rune is bucketed by its Unicode character
// name; runes without a usable name, and letters of any other script,
// count toward the default english bucket.
func Detect(text string) Family {
	if text == "" {
		return English
	}

	counts := map[Family]int{}
	for _, r := range text {
		if unicode.IsSpace(r) || unicode.IsPunct(r) {
			continue
		}
		counts[classifyRune(r)]++
	}

	best, bestN := English, 0
	// Fixed iteration order keeps ties deterministic.
	for _, f := range []Family{English, Japanese, Hindi} {
		if counts[f] > bestN {
			best, bestN = f, counts[f]
		}
	}
	if bestN == 0 {
		return English
	}
	return best
}

// unclassified is returned for runes that belong to no bucket at all
// (digits, symbols); they are not counted.
const unclassified Family = ""

func classifyRune(r rune) Family {
	name := runenames.Name(r)
	switch {
	case strings.Contains(name, "CJK"),
		strings.Contains(name, "HIRAGANA"),
		strings.Contains(name, "KATAKANA"):
		return Japanese
	case strings.Contains(name, "DEVANAGARI"):
		return Hindi
	case strings.Contains(name, "LATIN"):
		return English
	case unicode.IsLetter(r):
		// Letters of any other script fall into the default bucket.
		return English
	}
	return unclassified
}
