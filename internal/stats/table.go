package stats

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// column describes one plain-text table column. maxWidth of zero means the
// column grows to its widest cell.
type column struct {
	title      string
	rightAlign bool
	maxWidth   int
}

// formatTable lays rows out under cols, padding each cell to its column's
// display width. Cells wider than maxWidth are cut with an ellipsis.
func formatTable(cols []column, rows [][]string) []string {
	if len(cols) == 0 {
		return nil
	}
	widths := make([]int, len(cols))
	for i, col := range cols {
		widths[i] = runewidth.StringWidth(col.title)
	}
	for _, row := range rows {
		for i, col := range cols {
			if w := runewidth.StringWidth(fitCell(cellAt(row, i), col.maxWidth)); w > widths[i] {
				widths[i] = w
			}
		}
	}

	lines := make([]string, 0, len(rows)+2)
	titles := make([]string, len(cols))
	rules := make([]string, len(cols))
	for i, col := range cols {
		titles[i] = col.title
		rules[i] = strings.Repeat("-", widths[i])
	}
	lines = append(lines, formatRow(cols, titles, widths), formatRow(cols, rules, widths))
	for _, row := range rows {
		lines = append(lines, formatRow(cols, row, widths))
	}
	return lines
}

func formatRow(cols []column, row []string, widths []int) string {
	var b strings.Builder
	for i, col := range cols {
		if i > 0 {
			b.WriteString("  ")
		}
		b.WriteString(padCell(fitCell(cellAt(row, i), col.maxWidth), widths[i], col.rightAlign))
	}
	return strings.TrimRight(b.String(), " ")
}

func cellAt(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}

func fitCell(value string, maxWidth int) string {
	if maxWidth <= 0 {
		return value
	}
	return runewidth.Truncate(value, maxWidth, "…")
}

// padCell pads by terminal cells, so CJK player names stay aligned.
func padCell(value string, width int, rightAlign bool) string {
	padding := width - runewidth.StringWidth(value)
	if padding <= 0 {
		return value
	}
	if rightAlign {
		return strings.Repeat(" ", padding) + value
	}
	return value + strings.Repeat(" ", padding)
}
