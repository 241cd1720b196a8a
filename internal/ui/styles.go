package ui

import (
	"github.com/charmbracelet/lipgloss"

	"job-scraper/internal/config"
)

// Theme is one colour palette for the terminal view.
type Theme struct {
	Name string

	Header  lipgloss.Style
	Cell    lipgloss.Style
	Link    lipgloss.Style
	Date    lipgloss.Style
	Border  lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
	Dim     lipgloss.Style
	Menu    lipgloss.Style
}

var (
	darkText   = lipgloss.Color("#FFFFFF")
	darkDim    = lipgloss.Color("#6E7681")
	darkAccent = lipgloss.Color("#2DA44E")
	darkLink   = lipgloss.Color("#58A6FF")
	darkDate   = lipgloss.Color("#A371F7")

	lightText   = lipgloss.Color("#1F2328")
	lightDim    = lipgloss.Color("#57606A")
	lightAccent = lipgloss.Color("#1A7F37")
	lightLink   = lipgloss.Color("#0969DA")
	lightDate   = lipgloss.Color("#8250DF")

	primaryColor = lipgloss.Color("#0969DA")
	errorColor   = lipgloss.Color("#CF222E")
)

func DarkTheme() Theme {
	return newTheme(config.ThemeDark, darkText, darkDim, darkAccent, darkLink, darkDate)
}

func LightTheme() Theme {
	return newTheme(config.ThemeLight, lightText, lightDim, lightAccent, lightLink, lightDate)
}

// ThemeByName falls back to the dark theme for unknown names.
func ThemeByName(name string) Theme {
	if name == config.ThemeLight {
		return LightTheme()
	}
	return DarkTheme()
}

// Toggle switches between the dark and light themes.
func Toggle(t Theme) Theme {
	if t.Name == config.ThemeDark {
		return LightTheme()
	}
	return DarkTheme()
}

func newTheme(name string, text, dim, accent, link, date lipgloss.Color) Theme {
	return Theme{
		Name: name,
		Header: lipgloss.NewStyle().
			Foreground(primaryColor).
			Bold(true).
			Padding(0, 1),
		Cell: lipgloss.NewStyle().
			Foreground(text).
			Padding(0, 1),
		Link: lipgloss.NewStyle().
			Foreground(link).
			Underline(true).
			Padding(0, 1),
		Date: lipgloss.NewStyle().
			Foreground(date).
			Italic(true).
			Padding(0, 1),
		Border: lipgloss.NewStyle().
			Foreground(accent),
		Success: lipgloss.NewStyle().
			Foreground(accent).
			Bold(true),
		Error: lipgloss.NewStyle().
			Foreground(errorColor).
			Bold(true),
		Dim: lipgloss.NewStyle().
			Foreground(dim),
		Menu: lipgloss.NewStyle().
			Foreground(text).
			MarginLeft(2),
	}
}
