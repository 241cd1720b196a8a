package scraper

import (
	"errors"
	"fmt"

	"job-scraper/internal/fetcher"
	"job-scraper/internal/normalize"
)

// ErrPartialExtraction matches every *PartialExtractionError.
var ErrPartialExtraction = errors.New("partial extraction")

// PartialExtractionError reports the field that could not be read from a
// listing element. The listing is skipped.
type PartialExtractionError struct {
	Field    string
	Selector string
	Err      error
}

func (e *PartialExtractionError) Error() string {
	return fmt.Sprintf("extract %s (%s): %v", e.Field, e.Selector, e.Err)
}

func (e *PartialExtractionError) Unwrap() error { return e.Err }

func (e *PartialExtractionError) Is(target error) bool { return target == ErrPartialExtraction }

// Extractor reads listing fields out of listing elements.
type Extractor struct {
	normalizer *normalize.Normalizer
}

func NewExtractor(n *normalize.Normalizer) *Extractor {
	return &Extractor{normalizer: n}
}

// Extract reads title, company and date text and the link href from the first
// descendant matching each selector. All four must be present.
func (x *Extractor) Extract(el fetcher.Element, sel SiteSelectors) (RawListing, error) {
	title, err := x.text(el, "title", sel.Title, x.normalizer.Label)
	if err != nil {
		return RawListing{}, err
	}
	company, err := x.text(el, "company", sel.Company, x.normalizer.Label)
	if err != nil {
		return RawListing{}, err
	}
	date, err := x.text(el, "date", sel.Date, x.normalizer.Text)
	if err != nil {
		return RawListing{}, err
	}

	linkEl, err := el.Find(sel.Link)
	if err != nil {
		return RawListing{}, &PartialExtractionError{Field: "link", Selector: sel.Link, Err: err}
	}
	link, err := linkEl.Href()
	if err != nil {
		return RawListing{}, &PartialExtractionError{Field: "link", Selector: sel.Link, Err: err}
	}

	return RawListing{
		Title:    title,
		Company:  company,
		DateText: date,
		Link:     link,
	}, nil
}

func (x *Extractor) text(el fetcher.Element, field, selector string, clean func(string) string) (string, error) {
	found, err := el.Find(selector)
	if err != nil {
		return "", &PartialExtractionError{Field: field, Selector: selector, Err: err}
	}
	text, err := found.Text()
	if err != nil {
		return "", &PartialExtractionError{Field: field, Selector: selector, Err: err}
	}
	return clean(text), nil
}
