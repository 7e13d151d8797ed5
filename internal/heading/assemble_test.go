package heading

import (
	"testing"

	"github.com/pardivkamishetty/outliner/internal/outline"
)

func TestAssembleDeduplicatesKeepingHigherConfidence(t *testing.T) {
	candidates := []Candidate{
		{Text: "Chapter  1", Level: outline.H1, Page: 7, Confidence: 0.5},
		{Text: "chapter 1", Level: outline.H1, Page: 1, Confidence: 0.9},
	}
	doc := Assemble(candidates, "doc")
	if len(doc.Outline) != 1 {
		t.Fatalf("expected 1 entry after dedup, got %d", len(doc.Outline))
	}
	if doc.Outline[0].Page != 1 {
		t.Errorf("expected page 1 (higher-confidence duplicate), got %d", doc.Outline[0].Page)
	}
	if doc.Outline[0].Text != "chapter 1" {
		t.Errorf("expected the higher-confidence text, got %q", doc.Outline[0].Text)
	}
}

func TestAssembleTitleFromFirstQualifyingH1(t *testing.T) {
	candidates := []Candidate{
		{Text: "2.1 Methods", Level: outline.H2, Page: 3, Confidence: 0.95},
		{Text: "Annual Report", Level: outline.H1, Page: 1, Confidence: 0.85},
		{Text: "Appendix", Level: outline.H1, Page: 9, Confidence: 0.75},
	}
	doc := Assemble(candidates, "fallback")
	if doc.Title != "Annual Report" {
		t.Errorf("expected title %q, got %q", "Annual Report", doc.Title)
	}
	// The title candidate stays in the outline as well.
	found := false
	for _, e := range doc.Outline {
		if e.Text == "Annual Report" {
			found = true
		}
	}
	if !found {
		t.Error("expected the title candidate to remain an outline entry")
	}
}

func TestAssembleTitleFallsBackToFilenameStem(t *testing.T) {
	candidates := []Candidate{
		{Text: "2.1 Methods", Level: outline.H2, Page: 3, Confidence: 0.95},
		{Text: "Notes", Level: outline.H1, Page: 2, Confidence: 0.65}, // below the 0.7 bar
	}
	doc := Assemble(candidates, "report-2024")
	if doc.Title != "report-2024" {
		t.Errorf("expected fallback title, got %q", doc.Title)
	}
}

func TestAssembleEmitsInDescendingConfidenceOrder(t *testing.T) {
	candidates := []Candidate{
		{Text: "low", Level: outline.H3, Page: 1, Confidence: 0.45},
		{Text: "high", Level: outline.H1, Page: 5, Confidence: 0.9},
		{Text: "mid", Level: outline.H2, Page: 2, Confidence: 0.7},
	}
	doc := Assemble(candidates, "doc")
	want := []string{"high", "mid", "low"}
	if len(doc.Outline) != len(want) {
		t.Fatalf("expected %d entries, got %d", len(want), len(doc.Outline))
	}
	for i, w := range want {
		if doc.Outline[i].Text != w {
			t.Errorf("entry %d: expected %q, got %q", i, w, doc.Outline[i].Text)
		}
	}
}

func TestAssembleNoCandidates(t *testing.T) {
	doc := Assemble(nil, "empty-doc")
	if doc.Title != "empty-doc" {
		t.Errorf("expected fallback title, got %q", doc.Title)
	}
	if doc.Outline == nil || len(doc.Outline) != 0 {
		t.Errorf("expected non-nil empty outline, got %#v", doc.Outline)
	}
}

func TestAssembleStableForEqualConfidence(t *testing.T) {
	// Equal confidence keeps input order (stable sort), so the earlier
	// page wins dedup ties deterministically.
	candidates := []Candidate{
		{Text: "References", Level: outline.H1, Page: 10, Confidence: 0.8},
		{Text: "references", Level: outline.H1, Page: 12, Confidence: 0.8},
	}
	doc := Assemble(candidates, "doc")
	if len(doc.Outline) != 1 || doc.Outline[0].Page != 10 {
		t.Fatalf("expected the first-seen duplicate to win, got %+v", doc.Outline)
	}
}
