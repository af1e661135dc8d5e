// Package table aligns rows of display strings into a fixed-width text table.
package table

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// RenderError reports rows that cannot form a table.
type RenderError struct {
	Row     int
	Columns int
	Want    int
}

func (e *RenderError) Error() string {
	switch {
	case e.Want == 0 && e.Row < 0:
		return "cannot render table: no header row"
	case e.Want == 0:
		return "cannot render table: header has no columns"
	}
	return fmt.Sprintf("cannot render table: row %d has %d columns, header has %d", e.Row, e.Columns, e.Want)
}

// Column widths are measured in terminal cells. Ambiguous-width runes such as
// the degree sign count as one cell.
var cells = &runewidth.Condition{EastAsianWidth: false}

// Render lays out rows, the first of which is the header. Column 0 is left
// justified, the other columns are right justified, and a line of dashes
// follows the header. The returned lines have no trailing newline.
func Render(rows [][]string) ([]string, error) {
	if len(rows) == 0 {
		return nil, &RenderError{Row: -1}
	}
	n := len(rows[0])
	if n == 0 {
		return nil, &RenderError{Row: 0}
	}

	widths := make([]int, n)
	for i, row := range rows {
		if len(row) != n {
			return nil, &RenderError{Row: i, Columns: len(row), Want: n}
		}
		for col, cell := range row {
			widths[col] = max(widths[col], cells.StringWidth(cell))
		}
	}

	total := 0
	for _, w := range widths {
		total += w
	}

	lines := make([]string, 0, len(rows)+1)
	for i, row := range rows {
		lines = append(lines, renderRow(row, widths))
		if i == 0 {
			lines = append(lines, strings.Repeat("-", total+3*n))
		}
	}
	return lines, nil
}

func renderRow(row []string, widths []int) string {
	var sb strings.Builder
	sb.WriteString(cells.FillRight(row[0], widths[0]+1))
	for col := 1; col < len(row); col++ {
		sb.WriteString(cells.FillLeft(row[col], widths[col]+2))
	}
	return sb.String()
}
