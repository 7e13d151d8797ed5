package heading

import (
	"math"
	"testing"

	"github.com/pardivkamishetty/outliner/internal/fontstats"
	"github.com/pardivkamishetty/outliner/internal/script"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

// pct builds a percentile context with the given cut-points.
func pct(p50, p75, p90 float64) fontstats.Percentiles {
	return fontstats.Percentiles{fontstats.P50: p50, fontstats.P75: p75, fontstats.P90: p90}
}

func TestScoreNumberedIntroduction(t *testing.T) {
	// "1. Introduction" at the top font band: pattern 1.0, initial
	// capital 0.4, length in range 1.0, font 1.0.
	got := Score("1. Introduction", 24, script.English, pct(10, 12, 18))
	want := 0.4*1.0 + 0.3*0.4 + 0.2*1.0 + 0.1*1.0 // 0.82
	if !almostEqual(got, want) {
		t.Errorf("expected %.4f, got %.4f", want, got)
	}
}

func TestScoreLowercaseChapterKeyword(t *testing.T) {
	// "chapter 2" below the median: keyword 0.8, no casing signal,
	// length in range, font 0.1.
	got := Score("chapter 2", 8, script.English, pct(10, 12, 18))
	want := 0.4*0.8 + 0.3*0 + 0.2*1.0 + 0.1*0.1 // 0.53
	if !almostEqual(got, want) {
		t.Errorf("expected %.4f, got %.4f", want, got)
	}
}

func TestScoreNeverExceedsOne(t *testing.T) {
	// All four sub-scores maximal: weights sum to exactly 1.0.
	texts := []string{"IV. SUMMARY", "1. CHAPTER OVERVIEW", "CHAPTER 1"}
	for _, text := range texts {
		got := Score(text, 99, script.English, pct(10, 12, 18))
		if got > 1.0 {
			t.Errorf("Score(%q) = %v, exceeds 1.0", text, got)
		}
		if got < 0 {
			t.Errorf("Score(%q) = %v, below 0", text, got)
		}
	}
}

func TestScoreEmptyText(t *testing.T) {
	if got := Score("   ", 24, script.English, pct(10, 12, 18)); got != 0 {
		t.Errorf("expected 0 for blank text, got %v", got)
	}
}

func TestScoreFontRankMonotonic(t *testing.T) {
	// Holding text fixed, moving the size up through percentile buckets
	// never decreases confidence.
	p := pct(10, 12, 18)
	sizes := []float64{8, 10, 12, 18, 24}
	prev := -1.0
	for _, size := range sizes {
		got := Score("2.1 Methods", size, script.English, p)
		if got < prev {
			t.Fatalf("confidence decreased from %v to %v at size %v", prev, got, size)
		}
		prev = got
	}
}

func TestScoreNoPercentileContext(t *testing.T) {
	// Empty percentile map: font sub-score is 0 for any size.
	withCtx := Score("1. Introduction", 24, script.English, pct(10, 12, 18))
	without := Score("1. Introduction", 24, script.English, fontstats.Percentiles{})
	if !almostEqual(withCtx-without, 0.1) {
		t.Errorf("expected font contribution 0.1 to vanish, got diff %v", withCtx-without)
	}
}

func TestScoreJapaneseStructuralPattern(t *testing.T) {
	// No universal numbering, but the script pattern awards 0.9.
	got := Score("第二章 手法", 12, script.Japanese, fontstats.Percentiles{})
	// pattern 0.9, no casing signal, length within [1,25].
	want := 0.4*0.9 + 0.2*1.0
	if !almostEqual(got, want) {
		t.Errorf("expected %.4f, got %.4f", want, got)
	}
}

func TestScoreLengthDecayForLongHeadings(t *testing.T) {
	prof := script.Lookup(script.Japanese) // max 25
	long := "あいうえおかきくけこあいうえおかきくけこあいうえおかきくけこ" // 30 runes
	if n := len([]rune(long)); n != 30 {
		t.Fatalf("test text has %d runes, want 30", n)
	}
	got := lengthScore(long, prof)
	want := 1.0 - float64(30-25)/25.0 // 0.8
	if !almostEqual(got, want) {
		t.Errorf("expected decayed length score %.4f, got %.4f", want, got)
	}
}

func TestScoreLengthDecayFloor(t *testing.T) {
	prof := script.Profile{MinLen: 1, MaxLen: 4}
	if got := lengthScore("aaaaaaaaaaaaaaaaaaaaaaaa", prof); !almostEqual(got, 0.3) {
		t.Errorf("expected floor 0.3, got %v", got)
	}
}

func TestScoreTooShortPenalty(t *testing.T) {
	prof := script.Lookup(script.English) // min 3
	if got := lengthScore("ab", prof); !almostEqual(got, 0.2) {
		t.Errorf("expected 0.2 for too-short text, got %v", got)
	}
}

func TestFormatScorePriorityOrder(t *testing.T) {
	tests := []struct {
		text string
		want float64
	}{
		{"TABLE OF CONTENTS", 0.8}, // all caps, >= 3 runes
		{"Executive Summary", 0.7}, // title case, >= 5 runes
		{"Results and discussion", 0.4},
		{"1. Introduction", 0.4}, // numeric prefix blocks title case
		{"lowercase heading", 0},
		// Too short for the all-caps branch, but the initial capital
		// still earns the weakest score.
		{"AB", 0.4},
		{"ab", 0},
	}
	for _, tt := range tests {
		if got := formatScore(tt.text); !almostEqual(got, tt.want) {
			t.Errorf("formatScore(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}
