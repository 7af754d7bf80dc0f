// Package match classifies typed input against the target text.
package match

import (
	"strings"
	"unicode"

	"github.com/verte-zerg/typerun/internal/model"
)

const (
	// DefaultWindowSize is the maximum number of words in the visible line.
	DefaultWindowSize = 8
	// DefaultWindowBack is how many already typed words stay visible.
	DefaultWindowBack = 2
)

// Options controls the visible window.
type Options struct {
	Size int
	Back int
}

// DefaultOptions returns the standard eight word window anchored two words back.
func DefaultOptions() Options {
	return Options{Size: DefaultWindowSize, Back: DefaultWindowBack}
}

func (o Options) normalized() Options {
	if o.Size <= 0 {
		o.Size = DefaultWindowSize
	}
	if o.Back < 0 {
		o.Back = 0
	}
	return o
}

// SplitInput splits typed input at every whitespace rune. Empty tokens are kept,
// so a trailing separator opens a new, empty current word.
func SplitInput(input string) []string {
	tokens := []string{}
	start := 0
	for i, r := range input {
		if unicode.IsSpace(r) {
			tokens = append(tokens, input[start:i])
			start = i + len(string(r))
		}
	}
	return append(tokens, input[start:])
}

// TargetWords splits the target text into words.
func TargetWords(target string) []string {
	return strings.Fields(target)
}

// CurrentIndex returns the index of the word being typed.
func CurrentIndex(input string) int {
	return len(SplitInput(input)) - 1
}

// Classify returns the visible window of target with every word and the
// letters of the current word classified against input.
func Classify(target, input string, opts Options) model.Line {
	opts = opts.normalized()
	words := TargetWords(target)
	typed := SplitInput(input)
	current := len(typed) - 1

	start := current - opts.Back
	if start < 0 {
		start = 0
	}
	if start > len(words) {
		start = len(words)
	}
	end := start + opts.Size
	if end > len(words) {
		end = len(words)
	}
	if current >= len(words) && len(words) > 0 {
		// Input ran past the text: keep the trailing window visible.
		start = len(words) - opts.Size
		if start < 0 {
			start = 0
		}
		end = len(words)
	}

	line := model.Line{Start: start, Current: -1, Words: make([]model.Word, 0, end-start)}
	for idx := start; idx < end; idx++ {
		word := model.Word{Index: idx, Text: words[idx]}
		switch {
		case idx < current:
			word.Status = model.StatusIncorrect
			if typed[idx] == words[idx] {
				word.Status = model.StatusCorrect
			}
		case idx == current:
			word.Status = model.StatusCurrent
			word.Letters = ClassifyLetters(words[idx], typed[idx])
			line.Current = len(line.Words)
		default:
			word.Status = model.StatusRemaining
		}
		line.Words = append(line.Words, word)
	}
	return line
}

// ClassifyLetters compares a typed token with its target word rune by rune.
// Runes typed past the end of the target word are returned as extra letters.
func ClassifyLetters(target, typed string) []model.Letter {
	want := []rune(target)
	got := []rune(typed)
	letters := make([]model.Letter, 0, max(len(want), len(got)))
	for i, r := range want {
		status := model.StatusRemaining
		switch {
		case i < len(got):
			status = model.StatusIncorrect
			if got[i] == r {
				status = model.StatusCorrect
			}
		case i == len(got):
			status = model.StatusCurrent
		}
		letters = append(letters, model.Letter{Rune: r, Status: status})
	}
	for i := len(want); i < len(got); i++ {
		letters = append(letters, model.Letter{Rune: got[i], Status: model.StatusExtra})
	}
	return letters
}
