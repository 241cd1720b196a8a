package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"job-scraper/internal/app"
	"job-scraper/internal/config"
)

func TestToggle(t *testing.T) {
	theme := ThemeByName(config.ThemeDark)
	assert.Equal(t, config.ThemeDark, theme.Name)

	theme = Toggle(theme)
	assert.Equal(t, config.ThemeLight, theme.Name)

	theme = Toggle(theme)
	assert.Equal(t, config.ThemeDark, theme.Name)

	assert.Equal(t, config.ThemeDark, ThemeByName("neon").Name)
}

func TestRenderTable(t *testing.T) {
	out := RenderTable(DarkTheme(), [][4]string{
		{"Go Developer", "Acme", "05 Mar 2024", "https://example.com/jobs/1"},
		{"SRE", "Globex", "12 Mar 2024", "https://example.com/jobs/2"},
	}, 0)

	for _, want := range []string{
		"Title", "Company", "Date Posted", "Job Link",
		"Go Developer", "Globex", "12 Mar 2024", "https://example.com/jobs/2",
	} {
		assert.Contains(t, out, want)
	}
}

func TestRenderEmptyTable(t *testing.T) {
	assert.Contains(t, RenderTable(LightTheme(), nil, 80), "No job postings")
}

func TestRenderStatus(t *testing.T) {
	theme := DarkTheme()

	assert.Contains(t, RenderStatus(theme, app.Status{Kind: app.StatusError, ErrorKind: app.ErrorFetch, Message: "Error fetching data: boom"}), "boom")
	assert.Contains(t, RenderStatus(theme, app.Status{Kind: app.StatusSuccess, Message: "Fetched 2 job postings"}), "Fetched 2")
	assert.Contains(t, RenderStatus(theme, app.Status{Kind: app.StatusCleared, Message: "Results cleared."}), "Results cleared.")
}

func TestRenderMenuAndSites(t *testing.T) {
	menu := RenderMenu(DarkTheme(), []string{"Fetch", "Exit"})
	assert.Contains(t, menu, "1. Fetch")
	assert.Contains(t, menu, "2. Exit")

	sites := RenderSites(DarkTheme(), []string{"https://example.com/jobs"})
	assert.Contains(t, sites, "https://example.com/jobs")
}
