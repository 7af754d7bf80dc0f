package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/typerun/internal/model"
)

func letterStatuses(letters []model.Letter) []model.Status {
	out := make([]model.Status, len(letters))
	for i, l := range letters {
		out[i] = l.Status
	}
	return out
}

func TestSplitInput(t *testing.T) {
	cases := map[string][]string{
		"":           {""},
		"more":       {"more"},
		"more ":      {"more", ""},
		"more began": {"more", "began"},
		"a  b":       {"a", "", "b"},
		"a\tb\nc":    {"a", "b", "c"},
	}
	for input, want := range cases {
		assert.Equal(t, want, SplitInput(input), "input %q", input)
	}
}

func TestClassifyEmptyInput(t *testing.T) {
	line := Classify("more begin each", "", DefaultOptions())
	require.Len(t, line.Words, 3)
	assert.Equal(t, 0, line.Start)
	assert.Equal(t, 0, line.Current)
	assert.Equal(t, model.StatusCurrent, line.Words[0].Status)
	assert.Equal(t, []model.Status{
		model.StatusCurrent, model.StatusRemaining, model.StatusRemaining, model.StatusRemaining,
	}, letterStatuses(line.Words[0].Letters))
	assert.Equal(t, model.StatusRemaining, line.Words[1].Status)
	assert.Nil(t, line.Words[1].Letters)
}

func TestClassifyPartialCurrentWord(t *testing.T) {
	line := Classify("more begin each", "more bega", DefaultOptions())
	require.Equal(t, 1, line.Current)
	assert.Equal(t, model.StatusCorrect, line.Words[0].Status)
	assert.Equal(t, []model.Status{
		model.StatusCorrect, model.StatusCorrect, model.StatusCorrect, model.StatusIncorrect, model.StatusCurrent,
	}, letterStatuses(line.Words[1].Letters))
	assert.Equal(t, model.StatusRemaining, line.Words[2].Status)
}

func TestClassifyFullyTypedCurrentWord(t *testing.T) {
	line := Classify("more begin each", "more began", DefaultOptions())
	require.Equal(t, 1, line.Current)
	assert.Equal(t, []model.Status{
		model.StatusCorrect, model.StatusCorrect, model.StatusCorrect, model.StatusIncorrect, model.StatusCorrect,
	}, letterStatuses(line.Words[1].Letters))
}

func TestClassifyCompletedWords(t *testing.T) {
	line := Classify("more begin each", "more begun ", DefaultOptions())
	require.Equal(t, 2, line.Current)
	assert.Equal(t, model.StatusCorrect, line.Words[0].Status)
	assert.Equal(t, model.StatusIncorrect, line.Words[1].Status)
	assert.Equal(t, model.StatusCurrent, line.Words[2].Status)
}

func TestClassifyOverflowLettersAreExtra(t *testing.T) {
	letters := ClassifyLetters("each", "eachxy")
	require.Len(t, letters, 6)
	assert.Equal(t, model.Letter{Rune: 'x', Status: model.StatusExtra}, letters[4])
	assert.Equal(t, model.Letter{Rune: 'y', Status: model.StatusExtra}, letters[5])
	for _, l := range letters[:4] {
		assert.Equal(t, model.StatusCorrect, l.Status)
	}
}

func TestClassifyMultiByteLetters(t *testing.T) {
	letters := ClassifyLetters("café", "caf")
	require.Len(t, letters, 4)
	assert.Equal(t, 'é', letters[3].Rune)
	assert.Equal(t, model.StatusCurrent, letters[3].Status)
}

func TestClassifyWindowAnchoring(t *testing.T) {
	target := "w0 w1 w2 w3 w4 w5 w6 w7 w8 w9 w10 w11"
	line := Classify(target, "w0 w1 w2 w3 w4 w", DefaultOptions())
	assert.Equal(t, 3, line.Start)
	require.Len(t, line.Words, 8)
	assert.Equal(t, 3, line.Words[0].Index)
	assert.Equal(t, 10, line.Words[7].Index)
	assert.Equal(t, 2, line.Current)
	assert.Equal(t, "w5", line.Words[line.Current].Text)
}

func TestClassifyWindowClampedAtEnd(t *testing.T) {
	target := "w0 w1 w2 w3 w4 w5"
	line := Classify(target, "w0 w1 w2 w3 w", DefaultOptions())
	assert.Equal(t, 2, line.Start)
	require.Len(t, line.Words, 4)
	assert.Equal(t, "w5", line.Words[3].Text)
}

func TestClassifyInputPastTargetEnd(t *testing.T) {
	line := Classify("one two", "one two three", DefaultOptions())
	assert.Equal(t, -1, line.Current)
	require.Len(t, line.Words, 2)
	assert.Equal(t, model.StatusCorrect, line.Words[0].Status)
	assert.Equal(t, model.StatusCorrect, line.Words[1].Status)
}
