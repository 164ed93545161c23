// Package static provides non-interactive terminal output components.
package static

import (
	"strings"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
)

// StyleFunc styles the cell at row, col. Rows are numbered from 0.
type StyleFunc = table.StyleFunc

// RenderRows lays out rows as aligned columns without borders or headers.
// Column widths are calculated by lipgloss/table from the content. A nil
// style pads every column by two spaces.
func RenderRows(rows [][]string, style StyleFunc) string {
	if len(rows) == 0 {
		return ""
	}
	if style == nil {
		style = func(int, int) lipgloss.Style {
			return lipgloss.NewStyle().PaddingRight(2)
		}
	}

	t := table.New().
		Rows(rows...).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderHeader(false).
		BorderColumn(false).
		BorderRow(false).
		StyleFunc(style)

	var out strings.Builder
	for _, line := range strings.Split(t.String(), "\n") {
		out.WriteString(strings.TrimRight(line, " "))
		out.WriteString("\n")
	}
	return out.String()
}
