package report

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/timekeep/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Columns is the fixed report header.
var Columns = []string{"Date", "Start", "End", "Description", "Hours"}

// Hours cells are padded with no-break spaces so fixed-width alignment
// survives markdown rendering.
const nbsp = " "

// FormatHours renders an hours value at fixed width with three decimals.
func FormatHours(h float64) string {
	return strings.ReplaceAll(fmt.Sprintf("%7.3f", h), " ", nbsp)
}

// RenderTable renders rows as a github-style markdown table. Columns are
// padded to the widest visible cell, measured with lipgloss to stay
// correct for any styled content.
func RenderTable(rows []domain.ReportRow) string {
	cells := make([][]string, 0, len(rows))
	for _, row := range rows {
		cells = append(cells, []string{
			row.Date, row.Start, row.End, row.Description, FormatHours(row.Hours),
		})
	}

	widths := make([]int, len(Columns))
	for i, h := range Columns {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range cells {
		for i, cell := range row {
			if w := lipgloss.Width(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	var b strings.Builder
	writeRow := func(row []string) {
		for i, cell := range row {
			b.WriteString("| ")
			b.WriteString(cell)
			b.WriteString(strings.Repeat(" ", widths[i]-lipgloss.Width(cell)+1))
		}
		b.WriteString("|\n")
	}

	writeRow(Columns)
	for _, w := range widths {
		b.WriteString("|")
		b.WriteString(strings.Repeat("-", w+2))
	}
	b.WriteString("|\n")
	for _, row := range cells {
		writeRow(row)
	}

	return strings.TrimSuffix(b.String(), "\n")
}
