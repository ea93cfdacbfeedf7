package stats

import (
	"sort"

	"github.com/verte-zerg/wordrill/internal/model"
)

// RankedWords orders every record for display: scored words worst first, then unscored.
func RankedWords(records map[string]model.WordRecord) []model.WordRecord {
	ranked := sortedRecords(records)
	sort.SliceStable(ranked, func(i, j int) bool {
		return worseFirst(ranked[i], ranked[j])
	})
	return ranked
}

// GraduatedWords returns the graduated records, fastest first.
func GraduatedWords(records map[string]model.WordRecord, wpm float64) []model.WordRecord {
	var out []model.WordRecord
	for _, rec := range sortedRecords(records) {
		if IsGraduated(rec.LastScore, wpm) {
			out = append(out, rec)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].LastScore < out[j].LastScore
	})
	return out
}

// CountGraduated returns how many records are graduated at wpm.
func CountGraduated(records map[string]model.WordRecord, wpm float64) int {
	n := 0
	for _, rec := range records {
		if IsGraduated(rec.LastScore, wpm) {
			n++
		}
	}
	return n
}
