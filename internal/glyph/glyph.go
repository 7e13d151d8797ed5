// Package glyph models positioned characters from a PDF page and merges
// them into text runs.
package glyph

import "math"

// Glyph is a single character as reported by the PDF layer. Size is the
// font size in points; 0 means the glyph carries no size information.
type Glyph struct {
	Text string
	Size float64
	X0   float64
	X1   float64
	Page int
}

// TextRun is a maximal sequence of adjacent same-size, horizontally
// contiguous glyphs treated as one text unit. Runs never span pages.
type TextRun struct {
	Text string
	Size float64
	Page int
}

// DefaultProximity is the maximum horizontal gap (in points) between a
// run's right edge and the next glyph's left edge for them to merge.
const DefaultProximity = 2.0

// RoundSize rounds a font size to one decimal place so runs group on a
// stable size key.
func RoundSize(size float64) float64 {
	return math.Round(size*10) / 10
}

// Assembler merges a page's glyphs into text runs.
type Assembler struct {
	Proximity float64
}

// Runs walks one page's glyph sequence in order. A glyph extends the
// open run iff its rounded size matches the run's size and its left edge
// is within Proximity of the run's previous right edge. Glyphs without
// size information are skipped and do not close the run.
func (a Assembler) Runs(glyphs []Glyph) []TextRun {
	proximity := a.Proximity
	if proximity <= 0 {
		proximity = DefaultProximity
	}

	var runs []TextRun
	var open *openRun

	for _, g := range glyphs {
		if g.Size <= 0 {
			continue
		}
		size := RoundSize(g.Size)

		if open != nil && open.size == size && math.Abs(g.X0-open.x1) < proximity {
			open.text += g.Text
			open.x1 = g.X1
			continue
		}

		if open != nil {
			runs = appendRun(runs, open)
		}
		open = &openRun{text: g.Text, size: size, x1: g.X1, page: g.Page}
	}

	// The last open run of the page must be flushed explicitly.
	if open != nil {
		runs = appendRun(runs, open)
	}

	return runs
}

type openRun struct {
	text string
	size float64
	x1   float64
	page int
}

func appendRun(runs []TextRun, r *openRun) []TextRun {
	if !hasInk(r.text) {
		return runs
	}
	return append(runs, TextRun{Text: r.text, Size: r.size, Page: r.page})
}

func hasInk(s string) bool {
	for _, r := range s {
		if r != ' ' && r != '\t' && r != '\n' && r != '\r' {
			return true
		}
	}
	return false
}
