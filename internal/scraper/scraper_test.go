package scraper

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"job-scraper/internal/config"
	"job-scraper/internal/fetcher"
	"job-scraper/internal/normalize"
)

// fakeElement is a listing element whose descendants are keyed by selector.
type fakeElement struct {
	text     string
	href     string
	children map[string]*fakeElement
}

func (e *fakeElement) Text() (string, error) { return e.text, nil }

func (e *fakeElement) Href() (string, error) {
	if e.href == "" {
		return "", errors.New("element has no href")
	}
	return e.href, nil
}

func (e *fakeElement) Find(selector string) (fetcher.Element, error) {
	child, ok := e.children[selector]
	if !ok {
		return nil, fmt.Errorf("%w: %s", fetcher.ErrElementNotFound, selector)
	}
	return child, nil
}

var exampleSelectors = SiteSelectors{
	Title:   ".job-title",
	Company: ".company-name",
	Date:    ".date-posted",
	Link:    ".apply-link",
}

func listingElement() *fakeElement {
	return &fakeElement{children: map[string]*fakeElement{
		".job-title":    {text: "  Backend   Engineer "},
		".company-name": {text: "Acme"},
		".date-posted":  {text: "05 Mar 2024"},
		".apply-link":   {text: "Apply", href: "https://example.com/jobs/42"},
	}}
}

func newTestExtractor() *Extractor {
	return NewExtractor(normalize.NewNormalizer(config.Defaults()))
}

func TestDefaultRegistryLookup(t *testing.T) {
	registry := DefaultRegistry()

	sel, err := registry.Lookup("https://example.com/jobs")
	require.NoError(t, err)
	assert.Equal(t, exampleSelectors, sel)

	sel, err = registry.Lookup("https://anotherexample.com/careers")
	require.NoError(t, err)
	assert.Equal(t, ".post-title", sel.Title)
	assert.Equal(t, ".job-link", sel.Link)

	assert.Equal(t, []string{"https://anotherexample.com/careers", "https://example.com/jobs"}, registry.Sites())
}

func TestRegistryLookupIsExact(t *testing.T) {
	registry := DefaultRegistry()

	for _, url := range []string{
		"",
		"https://example.com/jobs/",
		"http://example.com/jobs",
		" https://example.com/jobs",
		"https://EXAMPLE.com/jobs",
		"https://example.com",
	} {
		_, err := registry.Lookup(url)
		assert.ErrorIs(t, err, ErrUnsupportedSite, "Lookup(%q)", url)
	}
}

func TestNewRegistryRejectsIncompleteSelectors(t *testing.T) {
	_, err := NewRegistry(map[string]SiteSelectors{
		"https://example.com/jobs": {Title: ".t", Company: ".c", Date: ".d"},
	})
	assert.ErrorContains(t, err, "link selector is required")

	_, err = NewRegistry(map[string]SiteSelectors{"": exampleSelectors})
	assert.Error(t, err)
}

func TestExtract(t *testing.T) {
	raw, err := newTestExtractor().Extract(listingElement(), exampleSelectors)
	require.NoError(t, err)

	assert.Equal(t, RawListing{
		Title:    "Backend Engineer",
		Company:  "Acme",
		DateText: "05 Mar 2024",
		Link:     "https://example.com/jobs/42",
	}, raw)
}

func TestExtractMissingField(t *testing.T) {
	fields := map[string]string{
		"title":   ".job-title",
		"company": ".company-name",
		"date":    ".date-posted",
		"link":    ".apply-link",
	}

	for field, selector := range fields {
		t.Run(field, func(t *testing.T) {
			el := listingElement()
			delete(el.children, selector)

			raw, err := newTestExtractor().Extract(el, exampleSelectors)

			assert.ErrorIs(t, err, ErrPartialExtraction)
			assert.ErrorIs(t, err, fetcher.ErrElementNotFound)
			var pe *PartialExtractionError
			require.ErrorAs(t, err, &pe)
			assert.Equal(t, field, pe.Field)
			assert.Equal(t, selector, pe.Selector)
			assert.Equal(t, RawListing{}, raw)
		})
	}
}

func TestExtractKeepsDateTextExact(t *testing.T) {
	el := listingElement()
	el.children[".job-title"] = &fakeElement{text: "\uff27\uff4f Developer"}
	el.children[".date-posted"] = &fakeElement{text: "\uff10\uff15\u00a0Mar\u00a0\uff12\uff10\uff12\uff14"}

	raw, err := newTestExtractor().Extract(el, exampleSelectors)
	require.NoError(t, err)

	// full-width letters in labels are folded, the date is only NBSP-cleaned
	assert.Equal(t, "Go Developer", raw.Title)
	assert.Equal(t, "\uff10\uff15 Mar \uff12\uff10\uff12\uff14", raw.DateText)

	_, err = ParseDate(raw.DateText)
	assert.ErrorIs(t, err, ErrDateParse)
}

func TestExtractLinkWithoutHref(t *testing.T) {
	el := listingElement()
	el.children[".apply-link"] = &fakeElement{text: "Apply"}

	_, err := newTestExtractor().Extract(el, exampleSelectors)

	var pe *PartialExtractionError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "link", pe.Field)
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		input    string
		expected time.Time
		wantErr  bool
	}{
		{"15 Mar 2024", time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), false},
		{"01 Jan 2025", time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), false},
		{"29 Feb 2024", time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), false},
		{"2024-03-05", time.Time{}, true},
		{"5 Mar 2024", time.Time{}, true},
		{"15 March 2024", time.Time{}, true},
		{"15 Mar 24", time.Time{}, true},
		{"15/03/2024", time.Time{}, true},
		{"Mar 15 2024", time.Time{}, true},
		{"30 Feb 2024", time.Time{}, true},
		{" 15 Mar 2024", time.Time{}, true},
		{"", time.Time{}, true},
		{"today", time.Time{}, true},
	}

	for _, tt := range tests {
		result, err := ParseDate(tt.input)
		if tt.wantErr {
			assert.ErrorIs(t, err, ErrDateParse, "ParseDate(%q)", tt.input)
			var de *DateParseError
			if assert.ErrorAs(t, err, &de) {
				assert.Equal(t, tt.input, de.Text)
			}
			continue
		}
		require.NoError(t, err, "ParseDate(%q)", tt.input)
		assert.True(t, tt.expected.Equal(result), "ParseDate(%q) = %v, want %v", tt.input, result, tt.expected)
	}
}

func TestInCurrentMonth(t *testing.T) {
	now := time.Date(2024, 3, 18, 14, 30, 0, 0, time.UTC)

	tests := []struct {
		name     string
		date     time.Time
		expected bool
	}{
		{"same day", time.Date(2024, 3, 18, 0, 0, 0, 0, time.UTC), true},
		{"first of month", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), true},
		{"last of month", time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC), true},
		{"last of previous month", time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), false},
		{"first of next month", time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC), false},
		{"same month last year", time.Date(2023, 3, 18, 0, 0, 0, 0, time.UTC), false},
		{"same month next year", time.Date(2025, 3, 18, 0, 0, 0, 0, time.UTC), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, InCurrentMonth(tt.date, now))
		})
	}
}

func TestRow(t *testing.T) {
	l := Listing{Title: "T", Company: "C", DateText: "05 Mar 2024", Link: "L"}
	assert.Equal(t, [4]string{"T", "C", "05 Mar 2024", "L"}, l.Row())
}
