package persona

import (
	"testing"
	"time"
)

func TestTokenize(t *testing.T) {
	got := tokenize("Plan a 5-day trip to Kyoto!")
	want := []string{"plan", "day", "trip", "to", "kyoto"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestRankOrdersByRelevance(t *testing.T) {
	sections := []Section{
		{Document: "a.pdf", PageNumber: 3, SectionTitle: "Budget hotels", Text: "Budget hotels and cheap accommodation options"},
		{Document: "a.pdf", PageNumber: 9, SectionTitle: "Local cuisine", Text: "Local cuisine and restaurant recommendations"},
		{Document: "b.pdf", PageNumber: 1, SectionTitle: "Visa requirements", Text: "Visa requirements for foreign travelers"},
	}

	ranked := Rank(sections, "Budget traveler", "Find cheap accommodation")
	if len(ranked) != 3 {
		t.Fatalf("expected all sections returned, got %d", len(ranked))
	}
	if ranked[0].SectionTitle != "Budget hotels" {
		t.Errorf("expected accommodation section first, got %q (score %f)", ranked[0].SectionTitle, ranked[0].Score)
	}
	if ranked[0].Score <= ranked[2].Score {
		t.Errorf("expected descending scores: %f vs %f", ranked[0].Score, ranked[2].Score)
	}
}

func TestRankEmpty(t *testing.T) {
	if got := Rank(nil, "persona", "job"); got != nil {
		t.Errorf("expected nil for empty input, got %v", got)
	}
}

func TestRankStable(t *testing.T) {
	sections := []Section{
		{Document: "a.pdf", PageNumber: 1, Text: "unrelated alpha content"},
		{Document: "a.pdf", PageNumber: 2, Text: "unrelated alpha content"},
	}
	ranked := Rank(sections, "chef", "bake bread")
	if ranked[0].PageNumber != 1 || ranked[1].PageNumber != 2 {
		t.Errorf("equal scores must keep input order, got pages %d, %d", ranked[0].PageNumber, ranked[1].PageNumber)
	}
}

func TestIsSectionLine(t *testing.T) {
	cases := map[string]bool{
		"Introduction to Go": true,
		"introduction":       false,
		"Hi":                 false,
		"":                   false,
		"12345 numbered":     false,
		"Break even":         true,
	}
	for line, want := range cases {
		if got := isSectionLine(line); got != want {
			t.Errorf("isSectionLine(%q) = %v, want %v", line, got, want)
		}
	}
}

func TestBuildResultTopFive(t *testing.T) {
	var sections []Section
	for i := 1; i <= 8; i++ {
		sections = append(sections, Section{
			Document:     "doc.pdf",
			PageNumber:   i,
			SectionTitle: "Section",
			Text:         "Section text",
			Score:        float64(10 - i),
		})
	}
	now := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	res := BuildResult(sections, []string{"doc.pdf"}, "analyst", "summarize", now)

	if len(res.ExtractedSections) != TopSections {
		t.Fatalf("expected %d sections, got %d", TopSections, len(res.ExtractedSections))
	}
	if len(res.SubsectionAnalysis) != TopSections {
		t.Fatalf("expected %d subsections, got %d", TopSections, len(res.SubsectionAnalysis))
	}
	for i, sec := range res.ExtractedSections {
		if sec.ImportanceRank != i+1 {
			t.Errorf("rank %d: expected importance %d, got %d", i, i+1, sec.ImportanceRank)
		}
	}
	if res.Metadata.Persona != "analyst" || res.Metadata.JobToBeDone != "summarize" {
		t.Errorf("metadata mismatch: %+v", res.Metadata)
	}
	if res.Metadata.ProcessingTimestamp != "2026-03-14T09:26:53Z" {
		t.Errorf("unexpected timestamp: %q", res.Metadata.ProcessingTimestamp)
	}
}

func TestBuildResultEmpty(t *testing.T) {
	res := BuildResult(nil, nil, "p", "j", time.Now())
	if res.ExtractedSections == nil || res.SubsectionAnalysis == nil || res.Metadata.InputDocuments == nil {
		t.Error("result slices must be non-nil for JSON encoding")
	}
	if len(res.ExtractedSections) != 0 {
		t.Errorf("expected empty sections, got %d", len(res.ExtractedSections))
	}
}
