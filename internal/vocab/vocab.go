// Package vocab provides the word lists the generator draws from.
package vocab

import (
	"bufio"
	"embed"
	"fmt"
	"io"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/sahilm/fuzzy"
)

// DefaultName is the vocabulary used when none is configured.
const DefaultName = "common"

//go:embed lists/*.txt
var lists embed.FS

// Names returns the embedded vocabulary names in sorted order.
func Names() []string {
	entries, err := lists.ReadDir("lists")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".txt") {
			continue
		}
		names = append(names, strings.TrimSuffix(name, ".txt"))
	}
	sort.Strings(names)
	return names
}

// Embedded returns the embedded vocabulary with the given name.
// Unknown names produce an error listing the closest matches.
func Embedded(name string) ([]string, error) {
	name = strings.TrimSpace(strings.ToLower(name))
	if name == "" {
		name = DefaultName
	}
	file, err := lists.Open(path.Join("lists", name+".txt"))
	if err != nil {
		return nil, unknownVocabError(name)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for embedded data.
			_ = cerr
		}
	}()
	words, err := readWords(file, Filter)
	if err != nil {
		return nil, fmt.Errorf("failed to read vocabulary %q: %w", name, err)
	}
	return words, nil
}

// LoadWords reads one word per line from the provided file path.
// Lines holding several words contribute each of them.
func LoadWords(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only word list.
			_ = cerr
		}
	}()
	return readWords(file, Filter)
}

// Suggest returns embedded vocabulary names ranked by fuzzy similarity to name.
func Suggest(name string) []string {
	matches := fuzzy.Find(name, Names())
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, m.Str)
	}
	return out
}

func unknownVocabError(name string) error {
	if suggestions := Suggest(name); len(suggestions) > 0 {
		return fmt.Errorf("unknown vocabulary %q (did you mean: %s?)", name, strings.Join(suggestions, ", "))
	}
	return fmt.Errorf("unknown vocabulary %q (available: %s)", name, strings.Join(Names(), ", "))
}

func readWords(r io.Reader, keep FilterFunc) ([]string, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		for _, word := range strings.Fields(scanner.Text()) {
			if keep(word) {
				words = append(words, word)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("word list is empty")
	}
	return words, nil
}
