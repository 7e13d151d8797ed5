package textnorm

import "testing"

func TestCleanCollapsesWhitespace(t *testing.T) {
	got := Clean("  Chapter\t 1:\n Introduction  ")
	want := "Chapter 1: Introduction"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestCleanAppliesCompatibilityNormalization(t *testing.T) {
	// Ligature and full-width forms decompose under NFKC.
	if got := Clean("ﬁle"); got != "file" {
		t.Errorf("expected %q, got %q", "file", got)
	}
	if got := Clean("Ａｂｃ"); got != "Abc" {
		t.Errorf("expected %q, got %q", "Abc", got)
	}
}

func TestCleanEmptyInput(t *testing.T) {
	if got := Clean(""); got != "" {
		t.Errorf("expected empty string, got %q", got)
	}
}

func TestIsMeaningful(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"Introduction", true},
		{"ab", true},
		{"a", false},
		{"", false},
		{"  ", false},
		{"--", false},
		{"***", false},
		{"1.", false},  // one number plus punctuation
		{"1.2", true},  // two numbers
		{"第1章", true}, // CJK letters count
		{"अध्याय", true},
		{"- a", false}, // only one letter
	}
	for _, tt := range tests {
		if got := IsMeaningful(tt.text, MinLength); got != tt.want {
			t.Errorf("IsMeaningful(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}

func TestIsMeaningfulRespectsMinLength(t *testing.T) {
	if IsMeaningful("abc", 5) {
		t.Error("expected false for text shorter than min length")
	}
	if !IsMeaningful("abcdef", 5) {
		t.Error("expected true for text meeting min length")
	}
}
