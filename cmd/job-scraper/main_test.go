package main

import (
	"bufio"
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"job-scraper/internal/app"
	"job-scraper/internal/config"
	"job-scraper/internal/fetcher"
	"job-scraper/internal/normalize"
	"job-scraper/internal/observability"
	"job-scraper/internal/scraper"
	"job-scraper/internal/ui"
)

func TestReadLine(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"https://example.com/jobs\n", "https://example.com/jobs"},
		{"https://example.com/jobs\r\n", "https://example.com/jobs"},
		{" https://example.com/jobs \n", " https://example.com/jobs "},
		{"https://example.com/jobs", "https://example.com/jobs"},
	}

	for _, tt := range tests {
		got, err := readLine(bufio.NewReader(strings.NewReader(tt.input)))
		require.NoError(t, err)
		assert.Equal(t, tt.expected, got, "readLine(%q)", tt.input)
	}

	_, err := readLine(bufio.NewReader(strings.NewReader("")))
	assert.Error(t, err)
}

func newTestSession(input string, pages map[string]string) (*session, *bytes.Buffer) {
	cfg := config.Defaults()
	logger := observability.Nop()
	registry := scraper.DefaultRegistry()

	var out bytes.Buffer
	return &session{
		ctx:      context.Background(),
		registry: registry,
		orch: app.NewOrchestrator(
			registry,
			fetcher.NewFetcher(cfg, fetcher.NewSnapshotLauncher(pages), logger),
			scraper.NewExtractor(normalize.NewNormalizer(cfg)),
			logger,
		),
		theme:  ui.DarkTheme(),
		reader: bufio.NewReader(strings.NewReader(input)),
		out:    &out,
	}, &out
}

func TestFetchPromptMatchesURLExactly(t *testing.T) {
	page := `<html><body><p>no openings</p></body></html>`

	s, out := newTestSession("https://example.com/jobs \n", map[string]string{"https://example.com/jobs": page})
	s.fetch()
	assert.Contains(t, out.String(), "Unsupported URL")

	s, out = newTestSession("https://example.com/jobs\r\n", map[string]string{"https://example.com/jobs": page})
	s.fetch()
	assert.NotContains(t, out.String(), "Unsupported URL")
	assert.Contains(t, out.String(), "No job listings found.")
}
