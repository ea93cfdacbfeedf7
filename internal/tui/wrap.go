// Package tui provides the Bubble Tea typing interface.
package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

type styledRune struct {
	s       string
	width   int
	isSpace bool
}

// wordView is what the renderer needs to know about one word of the list.
type wordView struct {
	text     string
	done     bool
	hadError bool
	current  bool
	input    []rune
}

func buildStyledRunes(words []wordView) []styledRune {
	out := make([]styledRune, 0, len(words)*6)
	for i, w := range words {
		if i > 0 {
			out = append(out, plainRune(' ', pendingStyle, true))
		}
		switch {
		case w.done:
			style := correctStyle
			if w.hadError {
				style = erroredWordStyle
			}
			for _, r := range w.text {
				out = append(out, plainRune(r, style, false))
			}
		case w.current:
			out = append(out, currentWordRunes(w)...)
		default:
			for _, r := range w.text {
				out = append(out, plainRune(r, pendingStyle, false))
			}
		}
	}
	return out
}

func currentWordRunes(w wordView) []styledRune {
	target := []rune(w.text)
	out := make([]styledRune, 0, len(target)+len(w.input))
	for i, r := range target {
		style := currentWordStyle
		if i < len(w.input) {
			if w.input[i] == r {
				style = correctStyle
			} else {
				style = incorrectStyle
			}
		}
		if i == len(w.input) {
			style = style.Underline(true)
		}
		out = append(out, plainRune(r, style, false))
	}
	for i := len(target); i < len(w.input); i++ {
		out = append(out, plainRune(w.input[i], overflowStyle, false))
	}
	return out
}

func plainRune(r rune, style lipgloss.Style, isSpace bool) styledRune {
	return styledRune{
		s:       style.Render(string(r)),
		width:   runewidth.RuneWidth(r),
		isSpace: isSpace,
	}
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
