// Package stats contains the live session metrics and their reporting.
package stats

import (
	"math"
	"time"

	"github.com/verte-zerg/typerun/internal/match"
	"github.com/verte-zerg/typerun/internal/model"
)

// minElapsedMinutes keeps WPM finite right after the first keystroke.
const minElapsedMinutes = 0.01

// Zero returns the metrics of a session nobody has typed in yet.
func Zero() model.Metrics {
	return model.Metrics{Accuracy: 100}
}

// Compute derives the session metrics from the target text, the typed input
// and the time elapsed since the first keystroke.
func Compute(target, input string, elapsed time.Duration) model.Metrics {
	if input == "" {
		return Zero()
	}
	typed := match.SplitInput(input)
	errors, total := CountErrors(match.TargetWords(target), typed)
	return model.Metrics{
		WPM:      WPM(len(typed), elapsed),
		Accuracy: Accuracy(errors, total),
		Words:    len(typed),
		Chars:    len([]rune(input)),
		Errors:   errors,
	}
}

// WPM returns words per minute, flooring elapsed time at 0.01 minutes.
func WPM(words int, elapsed time.Duration) int {
	if words <= 0 {
		return 0
	}
	minutes := elapsed.Minutes()
	if minutes < minElapsedMinutes {
		minutes = minElapsedMinutes
	}
	return int(math.Round(float64(words) / minutes))
}

// Accuracy returns the rounded percentage of correctly typed runes, 100 when
// nothing was typed.
func Accuracy(errors, total int) int {
	if total <= 0 {
		return 100
	}
	acc := math.Round(100 - float64(errors)/float64(total)*100)
	if acc < 0 {
		return 0
	}
	return int(acc)
}

// CountErrors compares every typed token with the target word at the same
// position. Runes typed past the end of a target word are errors; tokens past
// the end of the target text are not scored.
func CountErrors(targetWords, typed []string) (errors, total int) {
	for i, token := range typed {
		if i >= len(targetWords) {
			break
		}
		want := []rune(targetWords[i])
		got := []rune(token)
		total += len(got)
		for j, r := range got {
			if j >= len(want) || r != want[j] {
				errors++
			}
		}
	}
	return errors, total
}
