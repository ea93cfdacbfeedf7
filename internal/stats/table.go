package stats

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// column describes one column of a plain-text word table.
type column struct {
	title string
	right bool
}

var (
	summaryColumns = []column{
		{title: "Word"},
		{title: "Score (ms/char)", right: true},
		{title: "Time (ms)", right: true},
		{title: "Typed", right: true},
		{title: "Error"},
	}
	wordColumns = []column{
		{title: "Word"},
		{title: "Score", right: true},
		{title: "Avg Time (ms)", right: true},
		{title: "Attempts", right: true},
		{title: "Status"},
	}
	graduatedColumns = []column{
		{title: "Word"},
		{title: "Score", right: true},
		{title: "Attempts", right: true},
	}
)

// writeTable prints the header and rows with every column sized to its widest
// cell. Cells beyond the declared columns are dropped and trailing blanks trimmed.
func writeTable(w io.Writer, cols []column, rows [][]string) error {
	widths := make([]int, len(cols))
	for i, col := range cols {
		widths[i] = runewidth.StringWidth(col.title)
	}
	for _, row := range rows {
		for i := range cols {
			if i < len(row) {
				widths[i] = max(widths[i], runewidth.StringWidth(row[i]))
			}
		}
	}

	titles := make([]string, len(cols))
	for i, col := range cols {
		titles[i] = col.title
	}
	if _, err := fmt.Fprintln(w, tableLine(cols, widths, titles)); err != nil {
		return err
	}
	for _, row := range rows {
		if _, err := fmt.Fprintln(w, tableLine(cols, widths, row)); err != nil {
			return err
		}
	}
	return nil
}

func tableLine(cols []column, widths []int, cells []string) string {
	parts := make([]string, len(cols))
	for i, col := range cols {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		gap := strings.Repeat(" ", max(0, widths[i]-runewidth.StringWidth(cell)))
		if col.right {
			parts[i] = gap + cell
		} else {
			parts[i] = cell + gap
		}
	}
	return strings.TrimRight(strings.Join(parts, " "), " ")
}
