// Package wordlist loads practice vocabularies.
package wordlist

import (
	"bufio"
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"
)

//go:embed data/en.txt
var defaultWords string

// Default returns the built-in English vocabulary.
func Default() []string {
	words, err := parseWords(strings.NewReader(defaultWords), Keep)
	if err != nil {
		panic(fmt.Sprintf("embedded word list: %v", err))
	}
	return words
}

// LoadWords reads one word per line from the provided file path, drops words
// rejected by keep, and removes duplicates while preserving order.
func LoadWords(path string, keep FilterFunc) ([]string, error) {
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
	return parseWords(file, keep)
}

// Resolve loads path when set, otherwise returns the default vocabulary.
func Resolve(path string) ([]string, error) {
	if strings.TrimSpace(path) == "" {
		return Default(), nil
	}
	return LoadWords(path, FilterPracticeWord)
}

func parseWords(r io.Reader, keep FilterFunc) ([]string, error) {
	var words []string
	seen := map[string]struct{}{}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if !keep(line) {
			continue
		}
		if _, ok := seen[line]; ok {
			continue
		}
		seen[line] = struct{}{}
		words = append(words, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("word list is empty")
	}
	return words, nil
}
