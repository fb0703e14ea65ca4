// Package table lays out plain-text columns for the non-interactive listing.
package table

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
)

// Column describes one table column.
type Column struct {
	Title string
	Align Alignment
}

const gutter = "  "

// Render returns a header line followed by one line per row, each cell padded
// to the widest entry of its column. Rows shorter than columns are padded
// with empty cells; extra cells are dropped.
func Render(columns []Column, rows [][]string) []string {
	if len(columns) == 0 {
		return nil
	}
	widths := make([]int, len(columns))
	for c, col := range columns {
		widths[c] = lipgloss.Width(col.Title)
	}
	for _, row := range rows {
		for c := range columns {
			if w := lipgloss.Width(cell(row, c)); w > widths[c] {
				widths[c] = w
			}
		}
	}

	titles := make([]string, len(columns))
	for c, col := range columns {
		titles[c] = col.Title
	}
	out := make([]string, 0, len(rows)+1)
	out = append(out, line(columns, widths, titles))
	for _, row := range rows {
		out = append(out, line(columns, widths, row))
	}
	return out
}

func line(columns []Column, widths []int, row []string) string {
	var b strings.Builder
	for c, col := range columns {
		if c > 0 {
			b.WriteString(gutter)
		}
		text := cell(row, c)
		pad := widths[c] - lipgloss.Width(text)
		if pad < 0 {
			pad = 0
		}
		if col.Align == AlignRight {
			b.WriteString(strings.Repeat(" ", pad))
			b.WriteString(text)
			continue
		}
		b.WriteString(text)
		if c < len(columns)-1 {
			b.WriteString(strings.Repeat(" ", pad))
		}
	}
	return b.String()
}

func cell(row []string, c int) string {
	if c < len(row) {
		return row[c]
	}
	return ""
}
