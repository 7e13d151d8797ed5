package heading

import (
	"reflect"
	"strings"
	"testing"

	"github.com/pardivkamishetty/outliner/internal/glyph"
	"github.com/pardivkamishetty/outliner/internal/outline"
)

// lineGlyphs lays out text as contiguous same-size glyphs starting at x.
func lineGlyphs(text string, size float64, page int, x float64) []glyph.Glyph {
	w := size * 0.5
	glyphs := make([]glyph.Glyph, 0, len(text))
	for _, r := range text {
		glyphs = append(glyphs, glyph.Glyph{
			Text: string(r),
			Size: size,
			X0:   x,
			X1:   x + w,
			Page: page,
		})
		x += w
	}
	return glyphs
}

// samplePages builds a document with one prominent heading, a keyword
// heading and a mass of body text.
func samplePages() [][]glyph.Glyph {
	var page1 []glyph.Glyph
	page1 = append(page1, lineGlyphs("INTRODUCTION", 20, 1, 0)...)
	page1 = append(page1, lineGlyphs("chapter 2", 10, 1, 500)...)

	var page2 []glyph.Glyph
	body := "lorem ipsum dolor sit amet"
	for i := range 8 {
		page2 = append(page2, lineGlyphs(body, 8, 2, float64(i)*300)...)
	}
	return [][]glyph.Glyph{page1, page2}
}

func TestExtractFindsHeadingsAndTitle(t *testing.T) {
	e := NewEngine()
	doc := e.Extract(samplePages(), "sample")

	if doc.Title != "INTRODUCTION" {
		t.Errorf("expected title INTRODUCTION, got %q", doc.Title)
	}
	if len(doc.Outline) != 2 {
		t.Fatalf("expected 2 outline entries, got %d: %+v", len(doc.Outline), doc.Outline)
	}
	if doc.Outline[0].Text != "INTRODUCTION" || doc.Outline[0].Level != outline.H1 {
		t.Errorf("unexpected first entry: %+v", doc.Outline[0])
	}
	if doc.Outline[1].Text != "chapter 2" {
		t.Errorf("unexpected second entry: %+v", doc.Outline[1])
	}
	if doc.Outline[1].Page != 1 {
		t.Errorf("expected page 1, got %d", doc.Outline[1].Page)
	}
}

func TestExtractRejectsBodyText(t *testing.T) {
	e := NewEngine()
	doc := e.Extract(samplePages(), "sample")
	for _, entry := range doc.Outline {
		if strings.Contains(entry.Text, "lorem") {
			t.Errorf("body text leaked into the outline: %+v", entry)
		}
	}
}

func TestExtractNoSizedGlyphs(t *testing.T) {
	pages := [][]glyph.Glyph{
		{{Text: "x", Size: 0, Page: 1}},
		{},
	}
	e := NewEngine()
	doc := e.Extract(pages, "scanned-form")
	if doc.Title != "scanned-form" {
		t.Errorf("expected filename-stem title, got %q", doc.Title)
	}
	if len(doc.Outline) != 0 {
		t.Errorf("expected empty outline, got %+v", doc.Outline)
	}
}

func TestExtractIsIdempotent(t *testing.T) {
	e := NewEngine()
	pages := samplePages()
	first := e.Extract(pages, "sample")
	second := e.Extract(pages, "sample")
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated extraction diverged:\n%+v\n%+v", first, second)
	}
}

func TestExtractDeduplicatesAcrossPages(t *testing.T) {
	pages := samplePages()
	// The same heading repeated on a later page, same size.
	pages = append(pages, lineGlyphs("chapter 2", 10, 5, 0))

	e := NewEngine()
	doc := e.Extract(pages, "sample")
	count := 0
	for _, entry := range doc.Outline {
		if strings.EqualFold(entry.Text, "chapter 2") {
			count++
			if entry.Page != 1 {
				t.Errorf("expected first occurrence (page 1) to win, got page %d", entry.Page)
			}
		}
	}
	if count != 1 {
		t.Errorf("expected exactly one chapter 2 entry, got %d", count)
	}
}

func TestExtractOutlineOrderIsConfidenceDescending(t *testing.T) {
	// INTRODUCTION (all caps + keyword) outscores "chapter 2" (keyword
	// only); the emitted order pins the confidence-descending contract.
	e := NewEngine()
	doc := e.Extract(samplePages(), "sample")
	if len(doc.Outline) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(doc.Outline))
	}
	if doc.Outline[0].Text != "INTRODUCTION" {
		t.Errorf("expected highest-confidence entry first, got %q", doc.Outline[0].Text)
	}
}
