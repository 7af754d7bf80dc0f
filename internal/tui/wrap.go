package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/typerun/internal/model"
)

type styledRune struct {
	s       string
	width   int
	isSpace bool
}

func statusStyle(status model.Status) lipgloss.Style {
	switch status {
	case model.StatusCorrect:
		return correctStyle
	case model.StatusIncorrect:
		return incorrectStyle
	case model.StatusCurrent:
		return currentWordStyle
	case model.StatusExtra:
		return extraStyle
	default:
		return pendingStyle
	}
}

func letterStyle(status model.Status) lipgloss.Style {
	switch status {
	case model.StatusCurrent:
		return cursorStyle
	case model.StatusRemaining:
		return currentWordStyle
	default:
		return statusStyle(status)
	}
}

// buildStyledRunes renders the classified window one rune at a time so the
// result can be wrapped by display width.
func buildStyledRunes(line model.Line) []styledRune {
	out := []styledRune{}
	for i, word := range line.Words {
		if i > 0 {
			out = append(out, styledRune{s: pendingStyle.Render(" "), width: 1, isSpace: true})
		}
		if i == line.Current {
			for _, letter := range word.Letters {
				out = append(out, styledRune{
					s:     letterStyle(letter.Status).Render(string(letter.Rune)),
					width: runewidth.RuneWidth(letter.Rune),
				})
			}
			continue
		}
		style := statusStyle(word.Status)
		for _, r := range word.Text {
			out = append(out, styledRune{
				s:     style.Render(string(r)),
				width: runewidth.RuneWidth(r),
			})
		}
	}
	return out
}

func renderStyledRunes(runes []styledRune) string {
	var b strings.Builder
	for _, item := range runes {
		b.WriteString(item.s)
	}
	return b.String()
}

func wrapStyledRunes(runes []styledRune, width int) string {
	if width <= 0 {
		return renderStyledRunes(runes)
	}
	var out strings.Builder
	line := make([]styledRune, 0, len(runes))
	lineWidth := 0
	lastSpaceIdx := -1

	for i := 0; i < len(runes); {
		item := runes[i]
		if lineWidth+item.width > width && len(line) > 0 {
			if lastSpaceIdx >= 0 {
				out.WriteString(renderStyledRunes(line[:lastSpaceIdx]))
				out.WriteRune('\n')
				line = append([]styledRune{}, line[lastSpaceIdx+1:]...)
				lineWidth = lineWidthOf(line)
				lastSpaceIdx = lastSpaceIndex(line)
			} else {
				out.WriteString(renderStyledRunes(line))
				out.WriteRune('\n')
				line = line[:0]
				lineWidth = 0
				lastSpaceIdx = -1
			}
			continue
		}
		line = append(line, item)
		lineWidth += item.width
		if item.isSpace {
			lastSpaceIdx = len(line) - 1
		}
		i++
	}
	out.WriteString(renderStyledRunes(line))
	return out.String()
}

func lineWidthOf(line []styledRune) int {
	total := 0
	for _, item := range line {
		total += item.width
	}
	return total
}

func lastSpaceIndex(line []styledRune) int {
	for i := len(line) - 1; i >= 0; i-- {
		if line[i].isSpace {
			return i
		}
	}
	return -1
}
