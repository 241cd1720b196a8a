package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"job-scraper/internal/app"
	"job-scraper/internal/export"
)

const (
	colDate = 2
	colLink = 3
)

// RenderTable draws the result rows under the export column headers. A width
// of zero leaves the table at its natural size.
func RenderTable(theme Theme, rows [][4]string, width int) string {
	if len(rows) == 0 {
		return theme.Dim.Render("No job postings to show.")
	}

	tbl := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(theme.Border).
		Headers(export.Columns...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return theme.Header
			case col == colLink:
				return theme.Link
			case col == colDate:
				return theme.Date
			default:
				return theme.Cell
			}
		})

	for _, r := range rows {
		tbl.Row(r[0], r[1], r[2], r[3])
	}
	if width > 0 {
		tbl.Width(width)
	}

	return tbl.Render()
}

// RenderStatus formats the status line for the last action.
func RenderStatus(theme Theme, status app.Status) string {
	switch {
	case status.IsError():
		return theme.Error.Render("✗ " + status.Message)
	case status.Kind == app.StatusSuccess:
		return theme.Success.Render("✓ " + status.Message)
	default:
		return theme.Dim.Render(status.Message)
	}
}

// RenderMenu lists the numbered actions.
func RenderMenu(theme Theme, items []string) string {
	var b strings.Builder
	b.WriteString(theme.Header.Render("Options") + "\n")
	for i, item := range items {
		b.WriteString(theme.Menu.Render(string(rune('1'+i))+". "+item) + "\n")
	}
	return b.String()
}

// RenderSites lists the supported site URLs.
func RenderSites(theme Theme, sites []string) string {
	var b strings.Builder
	b.WriteString(theme.Header.Render("Supported sites") + "\n")
	for _, s := range sites {
		b.WriteString(theme.Link.Render(s) + "\n")
	}
	return b.String()
}
