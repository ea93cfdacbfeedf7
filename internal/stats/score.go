// Package stats contains statistics calculations and reporting.
package stats

import "unicode/utf8"

const (
	msPerMinute     = 60000.0
	charsPerWordWPM = 5.0
)

// NormalizedScore returns the average milliseconds spent per character. Lower is better.
func NormalizedScore(elapsedMs float64, wordLength int) float64 {
	return elapsedMs / float64(wordLength)
}

// WordScore scores elapsedMs against the rune length of word.
func WordScore(word string, elapsedMs float64) float64 {
	return NormalizedScore(elapsedMs, utf8.RuneCountInString(word))
}

// GraduationThresholdMs is the per-character time budget implied by a WPM target.
func GraduationThresholdMs(wpm float64) float64 {
	return msPerMinute / (wpm * charsPerWordWPM)
}

// IsGraduated reports whether a word's last score beats the target pace.
// An unattempted word (score 0) never graduates.
func IsGraduated(score, wpm float64) bool {
	return score > 0 && score < GraduationThresholdMs(wpm)
}
