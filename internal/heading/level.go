package heading

import (
	"regexp"
	"strings"

	"github.com/pardivkamishetty/outliner/internal/outline"
)

// MinConfidence is the acceptance threshold for the whole pipeline;
// candidates below it are not headings.
const MinConfidence = 0.4

// Chapter-like markers across the supported scripts, matched against
// lower-cased text.
var chapterPattern = regexp.MustCompile(`chapter(\s+[0-9]+)?|第[0-9]+章|अध्याय`)

// Subsection markers: two-level numbering or the word "section".
var subsectionPattern = regexp.MustCompile(`[0-9]+\.[0-9]+(\.[0-9]+)?|section`)

var (
	threeLevelNumber = regexp.MustCompile(`[0-9]+\.[0-9]+\.[0-9]+`)
	twoLevelNumber   = regexp.MustCompile(`[0-9]+\.[0-9]+`)
)

// AssignLevel maps a scored candidate to a discrete heading level. The
// second return value is false when the candidate is rejected outright.
func AssignLevel(confidence float64, text string) (outline.Level, bool) {
	switch {
	case confidence >= 0.8:
		lower := strings.ToLower(text)
		if chapterPattern.MatchString(lower) {
			return outline.H1, true
		}
		if subsectionPattern.MatchString(lower) {
			return outline.H2, true
		}
		// Very high confidence defaults to the top level.
		return outline.H1, true

	case confidence >= 0.6:
		if threeLevelNumber.MatchString(text) {
			return outline.H3, true
		}
		if twoLevelNumber.MatchString(text) {
			return outline.H2, true
		}
		return outline.H2, true

	case confidence >= MinConfidence:
		return outline.H3, true
	}
	return "", false
}
