// Package stats contains statistics calculations and reporting.
package stats

import (
	"fmt"
	"io"
	"sort"

	"github.com/verte-zerg/wordrill/internal/model"
)

// SessionMetrics computes WPM, CPM, and accuracy for a session.
func SessionMetrics(correct, incorrect int, durationMs int64) (wpm, cpm, accuracy float64) {
	if durationMs <= 0 {
		return 0, 0, 0
	}
	minutes := float64(durationMs) / msPerMinute
	if minutes <= 0 {
		return 0, 0, 0
	}
	wpm = (float64(correct) / charsPerWordWPM) / minutes
	cpm = float64(correct) / minutes
	den := float64(correct + incorrect)
	if den > 0 {
		accuracy = float64(correct) / den
	}
	return wpm, cpm, accuracy
}

// SessionAverages groups events by word and returns the mean elapsed time per word
// along with how often each word was typed.
func SessionAverages(events []model.TypedWordEvent) (avg map[string]float64, counts map[string]int) {
	sums := map[string]float64{}
	counts = map[string]int{}
	for _, ev := range events {
		sums[ev.Word] += ev.ElapsedMs
		counts[ev.Word]++
	}
	avg = make(map[string]float64, len(sums))
	for word, sum := range sums {
		avg[word] = sum / float64(counts[word])
	}
	return avg, counts
}

// Summarize builds the per-word session summary, worst score first.
func Summarize(events []model.TypedWordEvent) []model.SummaryRow {
	avg, counts := SessionAverages(events)
	hadError := map[string]bool{}
	for _, ev := range events {
		if ev.HadError {
			hadError[ev.Word] = true
		}
	}
	rows := make([]model.SummaryRow, 0, len(avg))
	for word, ms := range avg {
		rows = append(rows, model.SummaryRow{
			Word:     word,
			Score:    WordScore(word, ms),
			TimeMs:   ms,
			HadError: hadError[word],
			Count:    counts[word],
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Score == rows[j].Score {
			return rows[i].Word < rows[j].Word
		}
		return rows[i].Score > rows[j].Score
	})
	return rows
}

// RenderSummary prints the session summary table.
func RenderSummary(w io.Writer, rows []model.SummaryRow) error {
	if len(rows) == 0 {
		_, err := fmt.Fprintln(w, "No words completed.")
		return err
	}
	tableRows := make([][]string, 0, len(rows))
	for _, r := range rows {
		errMark := ""
		if r.HadError {
			errMark = "x"
		}
		tableRows = append(tableRows, []string{
			r.Word,
			fmt.Sprintf("%.1f", r.Score),
			fmt.Sprintf("%.0f", r.TimeMs),
			fmt.Sprintf("%d", r.Count),
			errMark,
		})
	}
	return writeTable(w, summaryColumns, tableRows)
}

// RenderWordTable prints every word worst first. Words in next are the ones
// the coming test drills and are marked as such.
func RenderWordTable(w io.Writer, ranked []model.WordRecord, wpm float64, next []string) error {
	if len(ranked) == 0 {
		_, err := fmt.Fprintln(w, "No words found.")
		return err
	}
	if _, err := fmt.Fprintf(w, "Words (target %.0f WPM, graduate under %.1f ms/char)\n", wpm, GraduationThresholdMs(wpm)); err != nil {
		return err
	}
	return writeTable(w, wordColumns, MarkNext(ranked, wpm, next))
}

// MarkNext formats ranked records with WordRow, replacing the status of words
// drilled by the next test with "next".
func MarkNext(ranked []model.WordRecord, wpm float64, next []string) [][]string {
	drill := make(map[string]struct{}, len(next))
	for _, word := range next {
		drill[word] = struct{}{}
	}
	rows := make([][]string, 0, len(ranked))
	for _, rec := range ranked {
		row := WordRow(rec, wpm)
		if _, ok := drill[rec.Word]; ok {
			row[len(row)-1] = "next"
		}
		rows = append(rows, row)
	}
	return rows
}

// RenderGraduatedTable prints graduated words, fastest first.
func RenderGraduatedTable(w io.Writer, graduated []model.WordRecord, wpm float64) error {
	if len(graduated) == 0 {
		_, err := fmt.Fprintf(w, "No graduated words at %.0f WPM.\n", wpm)
		return err
	}
	tableRows := make([][]string, 0, len(graduated))
	for _, rec := range graduated {
		tableRows = append(tableRows, []string{
			rec.Word,
			fmt.Sprintf("%.0f", rec.LastScore),
			fmt.Sprintf("%d", rec.Attempts),
		})
	}
	return writeTable(w, graduatedColumns, tableRows)
}

// WordRow formats one record as Word, Score, Avg Time, Attempts and Status cells.
func WordRow(rec model.WordRecord, wpm float64) []string {
	if !rec.Scored() {
		return []string{rec.Word, "-", "-", fmt.Sprintf("%d", rec.Attempts), "new"}
	}
	status := "practice"
	if IsGraduated(rec.LastScore, wpm) {
		status = "graduated"
	}
	return []string{
		rec.Word,
		fmt.Sprintf("%.0f", rec.LastScore),
		fmt.Sprintf("%.0f", rec.Time),
		fmt.Sprintf("%d", rec.Attempts),
		status,
	}
}
