package heading

import (
	"strings"

	"github.com/pardivkamishetty/outliner/internal/fontstats"
	"github.com/pardivkamishetty/outliner/internal/glyph"
	"github.com/pardivkamishetty/outliner/internal/outline"
	"github.com/pardivkamishetty/outliner/internal/script"
	"github.com/pardivkamishetty/outliner/internal/textnorm"
)

// Engine runs the full inference pipeline for one document. It touches
// no filesystem or environment state; each call owns its own font
// statistics and candidate list, so documents can be processed
// concurrently with one Engine value.
type Engine struct {
	// Proximity is the glyph merge threshold passed to the run assembler.
	Proximity float64
	// SampleRuns is how many runs feed the script classification.
	SampleRuns int
}

func NewEngine() Engine {
	return Engine{
		Proximity:  glyph.DefaultProximity,
		SampleRuns: script.SampleRuns,
	}
}

// Extract turns per-page glyph sequences into an outline record.
// A document with no sized glyphs is not an error: it yields an empty
// outline titled with the fallback.
func (e Engine) Extract(pages [][]glyph.Glyph, fallbackTitle string) outline.Document {
	stats := fontstats.NewCollector()
	for _, page := range pages {
		for _, g := range page {
			stats.Add(g.Size)
		}
	}

	runs := e.assembleRuns(pages)
	if len(runs) == 0 {
		return outline.Empty(fallbackTitle)
	}

	fam := script.Detect(e.sampleText(runs))
	pct := stats.Percentiles()

	var candidates []Candidate
	for _, run := range runs {
		if !textnorm.IsMeaningful(run.Text, textnorm.MinLength) {
			continue
		}
		confidence := Score(run.Text, run.Size, fam, pct)
		level, ok := AssignLevel(confidence, run.Text)
		if !ok {
			continue
		}
		candidates = append(candidates, Candidate{
			Text:       run.Text,
			Level:      level,
			Page:       run.Page,
			Confidence: confidence,
			Size:       run.Size,
		})
	}

	return Assemble(candidates, fallbackTitle)
}

func (e Engine) assembleRuns(pages [][]glyph.Glyph) []glyph.TextRun {
	asm := glyph.Assembler{Proximity: e.Proximity}
	var runs []glyph.TextRun
	for _, page := range pages {
		for _, run := range asm.Runs(page) {
			run.Text = textnorm.Clean(run.Text)
			if run.Text == "" {
				continue
			}
			runs = append(runs, run)
		}
	}
	return runs
}

// sampleText concatenates the first SampleRuns runs for the one-shot,
// document-level script classification.
func (e Engine) sampleText(runs []glyph.TextRun) string {
	n := e.SampleRuns
	if n <= 0 {
		n = script.SampleRuns
	}
	if n > len(runs) {
		n = len(runs)
	}
	parts := make([]string, 0, n)
	for _, run := range runs[:n] {
		parts = append(parts, run.Text)
	}
	return strings.Join(parts, " ")
}
