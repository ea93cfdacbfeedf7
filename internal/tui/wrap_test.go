package tui

import (
	"strings"
	"testing"
)

func TestBuildStyledRunesCursor(t *testing.T) {
	runes := buildStyledRunes([]wordView{{text: "ab", current: true, input: []rune("a")}})
	if len(runes) != 2 {
		t.Fatalf("expected 2 runes, got %d", len(runes))
	}
	if runes[0].s != correctStyle.Render("a") {
		t.Fatalf("expected correct style for first rune")
	}
	if runes[1].s != currentWordStyle.Underline(true).Render("b") {
		t.Fatalf("expected cursor style for second rune")
	}
}

func TestBuildStyledRunesKeepsTargetOnMistype(t *testing.T) {
	runes := buildStyledRunes([]wordView{{text: "ab", current: true, input: []rune("ax")}})
	if len(runes) != 2 {
		t.Fatalf("expected 2 runes, got %d", len(runes))
	}
	if runes[1].s != incorrectStyle.Render("b") {
		t.Fatalf("expected incorrect style for second rune")
	}
}

func TestBuildStyledRunesOverflow(t *testing.T) {
	runes := buildStyledRunes([]wordView{{text: "a", current: true, input: []rune("abc")}})
	if len(runes) != 3 {
		t.Fatalf("expected 3 runes, got %d", len(runes))
	}
	if runes[1].s != overflowStyle.Render("b") || runes[2].s != overflowStyle.Render("c") {
		t.Fatalf("expected overflow style for extra input")
	}
}

func TestBuildStyledRunesWordStates(t *testing.T) {
	runes := buildStyledRunes([]wordView{
		{text: "ok", done: true},
		{text: "no", done: true, hadError: true},
		{text: "up", current: true},
		{text: "go"},
	})
	if len(runes) != 11 {
		t.Fatalf("expected 11 runes, got %d", len(runes))
	}
	if runes[0].s != correctStyle.Render("o") {
		t.Fatalf("expected correct style for clean word")
	}
	if runes[3].s != erroredWordStyle.Render("n") {
		t.Fatalf("expected errored style for word with mistakes")
	}
	if !runes[2].isSpace || !runes[5].isSpace || !runes[8].isSpace {
		t.Fatalf("expected separators between words")
	}
	if runes[7].s != currentWordStyle.Render("p") {
		t.Fatalf("expected current word style for untyped rune")
	}
	if runes[9].s != pendingStyle.Render("g") {
		t.Fatalf("expected pending style for next word")
	}
}

func TestWrapStyledRunesBreaksAtSpaces(t *testing.T) {
	runes := make([]styledRune, 0)
	for _, r := range "aa bb cc" {
		runes = append(runes, styledRune{s: string(r), width: 1, isSpace: r == ' '})
	}
	out := wrapStyledRunes(runes, 5)
	if out != "aa\nbb cc" {
		t.Fatalf("unexpected wrap: %q", out)
	}
	if got := strings.Count(wrapStyledRunes(runes, 0), "\n"); got != 0 {
		t.Fatalf("expected no wrapping for zero width, got %d breaks", got)
	}
}

func TestWrapStyledRunesHardBreaksLongWord(t *testing.T) {
	runes := make([]styledRune, 0)
	for _, r := range "abcdef" {
		runes = append(runes, styledRune{s: string(r), width: 1})
	}
	if out := wrapStyledRunes(runes, 4); out != "abcd\nef" {
		t.Fatalf("unexpected wrap: %q", out)
	}
}
