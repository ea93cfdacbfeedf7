package wordlist

import "unicode"

// FilterFunc returns true when a word should be kept.
type FilterFunc func(string) bool

// Keep accepts every word.
func Keep(string) bool { return true }

// FilterPracticeWord keeps single tokens that can be typed and submitted with space:
// printable, no whitespace.
func FilterPracticeWord(word string) bool {
	if word == "" {
		return false
	}
	for _, r := range word {
		if unicode.IsSpace(r) || !unicode.IsPrint(r) {
			return false
		}
	}
	return true
}
