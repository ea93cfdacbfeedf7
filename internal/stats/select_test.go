package stats

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/wordrill/internal/model"
)

func records(scores map[string]float64) map[string]model.WordRecord {
	out := make(map[string]model.WordRecord, len(scores))
	for word, score := range scores {
		rec := model.WordRecord{Word: word, LastScore: score}
		if score > 0 {
			rec.Attempts = 1
		}
		out[word] = rec
	}
	return out
}

func TestSelectCandidatesScoredFirst(t *testing.T) {
	got := SelectCandidates(records(map[string]float64{"cat": 320, "dog": 0}), 40, 10)
	assert.Equal(t, []string{"cat", "dog"}, got)

	// 20ms/char beats the 300ms/char threshold at 40 WPM.
	got = SelectCandidates(records(map[string]float64{"cat": 20, "dog": 0}), 40, 10)
	assert.Equal(t, []string{"dog"}, got)
}

func TestSelectCandidatesExcludesGraduated(t *testing.T) {
	// threshold at 60 WPM is 200ms/char
	store := records(map[string]float64{
		"quick": 150,
		"brown": 450,
		"fox":   260,
		"lazy":  0,
		"dog":   199.9,
	})
	got := SelectCandidates(store, 60, 10)
	assert.Equal(t, []string{"brown", "fox", "lazy"}, got)
}

func TestSelectCandidatesWorstFirstAndTruncated(t *testing.T) {
	scores := map[string]float64{}
	for i := 0; i < 15; i++ {
		scores[fmt.Sprintf("w%02d", i)] = float64(400 + i*10)
	}
	scores["fresh"] = 0
	got := SelectCandidates(records(scores), 40, 10)
	require.Len(t, got, 10)
	assert.Equal(t, "w14", got[0])
	assert.Equal(t, "w05", got[9])
	assert.NotContains(t, got, "fresh")
}

func TestSelectCandidatesUnscoredStableOrder(t *testing.T) {
	got := SelectCandidates(records(map[string]float64{"zeta": 0, "alpha": 0, "mid": 0}), 40, 10)
	assert.Equal(t, []string{"alpha", "mid", "zeta"}, got)
}

func TestSelectCandidatesIdempotent(t *testing.T) {
	store := records(map[string]float64{"a": 310, "b": 0, "c": 500, "d": 310, "e": 0})
	first := SelectCandidates(store, 40, 3)
	second := SelectCandidates(store, 40, 3)
	assert.Equal(t, first, second)
	assert.Equal(t, []string{"c", "a", "d"}, first)
}

func TestSelectCandidatesAllGraduated(t *testing.T) {
	got := SelectCandidates(records(map[string]float64{"a": 10, "b": 20}), 40, 10)
	assert.Empty(t, got)
	assert.Empty(t, SelectCandidates(nil, 40, 10))
}

func TestSelectCandidatesNeverReturnsGraduatedWhenOthersExist(t *testing.T) {
	store := records(map[string]float64{"a": 10, "b": 20, "c": 900})
	for _, max := range []int{1, 2, 3, 10} {
		got := SelectCandidates(store, 40, max)
		assert.LessOrEqual(t, len(got), max)
		for _, word := range got {
			assert.False(t, IsGraduated(store[word].LastScore, 40), word)
		}
	}
}

func TestSelectCandidatesDefaultMax(t *testing.T) {
	scores := map[string]float64{}
	for i := 0; i < 20; i++ {
		scores[fmt.Sprintf("w%02d", i)] = 0
	}
	assert.Len(t, SelectCandidates(records(scores), 40, 0), DefaultCandidates)
}
