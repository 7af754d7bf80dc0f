package generator

import (
	"strings"
	"testing"
)

var testWords = []string{"more", "begin", "each", "large", "under"}

func TestGenerateCyclesShuffledVocabulary(t *testing.T) {
	g := NewWithSeed(1)
	out := g.Generate(testWords, 12)
	if len(out) != 12 {
		t.Fatalf("expected 12 words, got %d", len(out))
	}
	for i := len(testWords); i < len(out); i++ {
		if out[i] != out[i%len(testWords)] {
			t.Fatalf("expected cyclic reuse at %d: %v", i, out)
		}
	}
	seen := map[string]bool{}
	for _, w := range out[:len(testWords)] {
		seen[w] = true
	}
	if len(seen) != len(testWords) {
		t.Fatalf("expected every vocabulary word in the first cycle: %v", out)
	}
}

func TestGenerateDoesNotMutateVocabulary(t *testing.T) {
	words := append([]string(nil), testWords...)
	NewWithSeed(7).Generate(words, 20)
	if strings.Join(words, " ") != strings.Join(testWords, " ") {
		t.Fatalf("vocabulary was mutated: %v", words)
	}
}

func TestGenerateDeterministicWithSeed(t *testing.T) {
	a := NewWithSeed(42).Text(testWords, 30)
	b := NewWithSeed(42).Text(testWords, 30)
	if a != b {
		t.Fatalf("expected identical text for identical seeds")
	}
}

func TestGenerateEmpty(t *testing.T) {
	g := NewWithSeed(1)
	if out := g.Generate(testWords, 0); len(out) != 0 {
		t.Fatalf("expected no words, got %v", out)
	}
	if out := g.Generate(nil, 5); len(out) != 0 {
		t.Fatalf("expected no words from empty vocabulary, got %v", out)
	}
}

func TestExtendSeparatesWithOneSpace(t *testing.T) {
	g := NewWithSeed(3)
	text := "more begin"
	extended := g.Extend(text, testWords, DefaultExtendWords)
	if !strings.HasPrefix(extended, text+" ") {
		t.Fatalf("expected original text followed by a space: %q", extended)
	}
	rest := strings.TrimPrefix(extended, text+" ")
	if rest == "" || strings.HasPrefix(rest, " ") {
		t.Fatalf("expected non-empty appended text after one space: %q", extended)
	}
	if got := len(strings.Fields(rest)); got != DefaultExtendWords {
		t.Fatalf("expected %d appended words, got %d", DefaultExtendWords, got)
	}
}

func TestNeedsExtension(t *testing.T) {
	cases := []struct {
		target, input int
		want          bool
	}{
		{target: 50, input: 1, want: false},
		{target: 50, input: 40, want: false},
		{target: 50, input: 41, want: true},
		{target: 3, input: 2, want: false},
		{target: 3, input: 3, want: true},
		{target: 10, input: 9, want: true},
	}
	for _, tc := range cases {
		if got := NeedsExtension(tc.target, tc.input); got != tc.want {
			t.Fatalf("NeedsExtension(%d, %d) = %v, want %v", tc.target, tc.input, got, tc.want)
		}
	}
}
