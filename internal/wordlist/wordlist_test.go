package wordlist

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	words := Default()
	if len(words) < 100 {
		t.Fatalf("expected a sizeable default vocabulary, got %d words", len(words))
	}
	seen := map[string]bool{}
	for _, w := range words {
		if seen[w] {
			t.Fatalf("duplicate word %q", w)
		}
		seen[w] = true
		if !FilterPracticeWord(w) {
			t.Fatalf("default word %q is not typeable", w)
		}
	}
}

func TestLoadWords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	data := "# drills\nalpha\n\n  beta  \nalpha\ntwo words\ngamma\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	words, err := LoadWords(path, FilterPracticeWord)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := []string{"alpha", "beta", "gamma"}
	if len(words) != len(want) {
		t.Fatalf("expected %v, got %v", want, words)
	}
	for i := range want {
		if words[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, words)
		}
	}
}

func TestLoadWordsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.txt")
	if err := os.WriteFile(path, []byte("\n# nothing\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadWords(path, Keep); err == nil {
		t.Fatalf("expected error for empty word list")
	}
}

func TestResolve(t *testing.T) {
	words, err := Resolve("  ")
	if err != nil {
		t.Fatalf("resolve default: %v", err)
	}
	if len(words) != len(Default()) {
		t.Fatalf("expected default vocabulary")
	}
	if _, err := Resolve(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
