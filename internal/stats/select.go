package stats

import (
	"sort"

	"github.com/verte-zerg/wordrill/internal/model"
)

// DefaultCandidates is the number of words drilled per adaptive test.
const DefaultCandidates = 10

// SelectCandidates returns the worst-performing non-graduated words, worst first.
// Scored words precede unscored ones; unscored words keep alphabetical order.
func SelectCandidates(records map[string]model.WordRecord, wpm float64, max int) []string {
	if max <= 0 {
		max = DefaultCandidates
	}
	eligible := make([]model.WordRecord, 0, len(records))
	for _, rec := range sortedRecords(records) {
		if IsGraduated(rec.LastScore, wpm) {
			continue
		}
		eligible = append(eligible, rec)
	}
	sort.SliceStable(eligible, func(i, j int) bool {
		return worseFirst(eligible[i], eligible[j])
	})
	if len(eligible) > max {
		eligible = eligible[:max]
	}
	words := make([]string, len(eligible))
	for i, rec := range eligible {
		words[i] = rec.Word
	}
	return words
}

func worseFirst(a, b model.WordRecord) bool {
	if a.Scored() != b.Scored() {
		return a.Scored()
	}
	return a.LastScore > b.LastScore
}

// sortedRecords flattens the mapping in key order so ties resolve deterministically.
func sortedRecords(records map[string]model.WordRecord) []model.WordRecord {
	keys := make([]string, 0, len(records))
	for k := range records {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]model.WordRecord, len(keys))
	for i, k := range keys {
		rec := records[k]
		if rec.Word == "" {
			rec.Word = k
		}
		out[i] = rec
	}
	return out
}
