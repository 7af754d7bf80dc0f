// Package generator builds typing text sequences.
package generator

import (
	"math/rand"
	"strings"
	"time"
)

const (
	// DefaultWords is the size of a freshly generated text.
	DefaultWords = 50
	// DefaultExtendWords is how many words are appended when the text runs low.
	DefaultExtendWords = 10
	extendRatio        = 0.8
)

// Generator produces randomized typing text.
type Generator struct {
	rnd *rand.Rand
}

// New returns a Generator seeded with the current time.
func New() *Generator {
	return NewWithSeed(time.Now().UnixNano())
}

// NewWithSeed returns a deterministic Generator.
func NewWithSeed(seed int64) *Generator {
	return &Generator{rnd: rand.New(rand.NewSource(seed))}
}

// Generate shuffles a copy of words and takes count entries from it cyclically.
func (g *Generator) Generate(words []string, count int) []string {
	if count <= 0 || len(words) == 0 {
		return []string{}
	}
	shuffled := make([]string, len(words))
	copy(shuffled, words)
	g.rnd.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	result := make([]string, 0, count)
	for i := 0; i < count; i++ {
		result = append(result, shuffled[i%len(shuffled)])
	}
	return result
}

// Text returns Generate joined with single spaces.
func (g *Generator) Text(words []string, count int) string {
	return strings.Join(g.Generate(words, count), " ")
}

// Extend appends count freshly generated words to text, separated by one space.
func (g *Generator) Extend(text string, words []string, count int) string {
	more := g.Text(words, count)
	if more == "" {
		return text
	}
	if text == "" {
		return more
	}
	return text + " " + more
}

// NeedsExtension reports whether a text of targetWords words should grow
// once the input holds inputWords tokens.
func NeedsExtension(targetWords, inputWords int) bool {
	current := inputWords - 1
	return current >= targetWords-1 || float64(inputWords) > float64(targetWords)*extendRatio
}
