package cli

import (
	"strings"
)

// Table is a plain text table with dynamic column widths.
type Table struct {
	headers []string
	rows    [][]string
	padding int
}

// NewTable creates a new table with the given headers.
func NewTable(headers ...string) *Table {
	return &Table{
		headers: headers,
		padding: 2, // 2 spaces between columns
	}
}

// AddRow adds a row, padding or truncating it to the header count.
func (t *Table) AddRow(row ...string) {
	normalised := make([]string, len(t.headers))
	copy(normalised, row)
	t.rows = append(t.rows, normalised)
}

// Render formats and returns the table as a string.
func (t *Table) Render() string {
	if len(t.headers) == 0 {
		return ""
	}

	widths := make([]int, len(t.headers))
	for i, h := range t.headers {
		widths[i] = len(h)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			widths[i] = max(widths[i], len(cell))
		}
	}

	var b strings.Builder
	t.renderRow(&b, t.headers, widths)
	for _, row := range t.rows {
		t.renderRow(&b, row, widths)
	}
	return b.String()
}

func (t *Table) renderRow(b *strings.Builder, cells []string, widths []int) {
	line := make([]string, len(cells))
	for i, cell := range cells {
		if i == len(cells)-1 {
			line[i] = cell
			continue
		}
		line[i] = cell + strings.Repeat(" ", widths[i]-len(cell))
	}
	b.WriteString(strings.TrimRight(strings.Join(line, strings.Repeat(" ", t.padding)), " "))
	b.WriteByte('\n')
}
