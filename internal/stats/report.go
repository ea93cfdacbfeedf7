package stats

import "github.com/verte-zerg/wordrill/internal/model"

// Snapshotter exposes a read-only view of word records.
type Snapshotter interface {
	Snapshot() map[string]model.WordRecord
}

// Report contains precomputed data for stats rendering.
type Report struct {
	WPM        float64
	Threshold  float64
	Ranked     []model.WordRecord
	Graduated  []model.WordRecord
	Candidates []string
	Practised  int
}

// BuildReport prepares word rankings for the stats views.
func BuildReport(src Snapshotter, wpm float64, candidates int) Report {
	records := src.Snapshot()
	practised := 0
	for _, rec := range records {
		if rec.Attempts > 0 {
			practised++
		}
	}
	return Report{
		WPM:        wpm,
		Threshold:  GraduationThresholdMs(wpm),
		Ranked:     RankedWords(records),
		Graduated:  GraduatedWords(records, wpm),
		Candidates: SelectCandidates(records, wpm, candidates),
		Practised:  practised,
	}
}
