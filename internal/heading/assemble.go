package heading

import (
	"sort"
	"strings"

	"github.com/pardivkamishetty/outliner/internal/outline"
)

// Candidate is a text run that passed the confidence threshold. It is
// transient: only level, text and page survive into the final record.
type Candidate struct {
	Text       string
	Level      outline.Level
	Page       int
	Confidence float64
	Size       float64
}

// titleConfidence is the bar an H1 candidate must clear to become the
// document title.
const titleConfidence = 0.7

// Assemble deduplicates candidates and selects the document title.
// Candidates are visited in descending-confidence order so the
// highest-confidence occurrence of a duplicated text wins, and the
// outline is emitted in that same order. Title falls back to
// fallbackTitle (the filename stem) when no H1 qualifies.
func Assemble(candidates []Candidate, fallbackTitle string) outline.Document {
	sorted := make([]Candidate, len(candidates))
	copy(sorted, candidates)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Confidence > sorted[j].Confidence
	})

	doc := outline.Empty("")
	seen := make(map[string]struct{}, len(sorted))

	for _, c := range sorted {
		key := dedupKey(c.Text)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		if doc.Title == "" && c.Level == outline.H1 && c.Confidence >= titleConfidence {
			doc.Title = c.Text
		}
		doc.Outline = append(doc.Outline, outline.Entry{
			Level: c.Level,
			Text:  c.Text,
			Page:  c.Page,
		})
	}

	if doc.Title == "" {
		doc.Title = fallbackTitle
	}
	return doc
}

// dedupKey case-folds and collapses whitespace so near-identical texts
// collide.
func dedupKey(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}
