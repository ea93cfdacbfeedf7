package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizedScore(t *testing.T) {
	assert.InDelta(t, 40.0, NormalizedScore(120, 3), 1e-9)
	for _, elapsed := range []float64{1, 75, 333.3, 12000} {
		for _, n := range []int{1, 3, 7} {
			assert.InDelta(t, 2*NormalizedScore(elapsed, n), NormalizedScore(2*elapsed, n), 1e-9)
			assert.InDelta(t, NormalizedScore(elapsed, n)/2, NormalizedScore(elapsed, 2*n), 1e-9)
		}
	}
}

func TestWordScoreCountsRunes(t *testing.T) {
	assert.InDelta(t, 50.0, WordScore("café", 200), 1e-9)
}

func TestGraduationThresholdMs(t *testing.T) {
	assert.InDelta(t, 300.0, GraduationThresholdMs(40), 1e-9)
	assert.InDelta(t, 200.0, GraduationThresholdMs(60), 1e-9)

	prev := GraduationThresholdMs(1)
	for wpm := 2.0; wpm <= 250; wpm++ {
		cur := GraduationThresholdMs(wpm)
		assert.Less(t, cur, prev, "wpm=%v", wpm)
		prev = cur
	}
}

func TestIsGraduated(t *testing.T) {
	tests := []struct {
		name  string
		score float64
		wpm   float64
		want  bool
	}{
		{"unattempted", 0, 40, false},
		{"unattempted at high target", 0, 500, false},
		{"fast", 20, 40, true},
		{"exactly threshold", 300, 40, false},
		{"slow", 301, 40, false},
		{"just under threshold", 299.99, 40, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsGraduated(tt.score, tt.wpm))
		})
	}
}
