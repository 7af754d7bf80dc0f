package vocab

import (
	"unicode"
	"unicode/utf8"
)

// FilterFunc returns true when a word should be kept.
type FilterFunc func(string) bool

// Filter keeps printable words without control characters.
func Filter(word string) bool {
	if word == "" || !utf8.ValidString(word) {
		return false
	}
	for _, r := range word {
		if unicode.IsSpace(r) || unicode.IsControl(r) || !unicode.IsPrint(r) {
			return false
		}
	}
	return true
}
