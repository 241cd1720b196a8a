package scraper

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnsupportedSite is returned for URLs with no registered selectors.
var ErrUnsupportedSite = errors.New("unsupported site")

// Registry maps a site URL, compared as an exact string, to its selectors. It
// is read-only once built.
type Registry struct {
	sites map[string]SiteSelectors
}

// NewRegistry copies sites into a new registry, rejecting incomplete entries.
func NewRegistry(sites map[string]SiteSelectors) (*Registry, error) {
	r := &Registry{sites: make(map[string]SiteSelectors, len(sites))}
	for url, sel := range sites {
		if url == "" {
			return nil, fmt.Errorf("registry: empty site URL")
		}
		if err := validateSelectors(sel); err != nil {
			return nil, fmt.Errorf("registry: %s: %w", url, err)
		}
		r.sites[url] = sel
	}
	return r, nil
}

// DefaultRegistry returns the built-in table of supported sites.
func DefaultRegistry() *Registry {
	r, err := NewRegistry(map[string]SiteSelectors{
		"https://example.com/jobs": {
			Title:   ".job-title",
			Company: ".company-name",
			Date:    ".date-posted",
			Link:    ".apply-link",
		},
		"https://anotherexample.com/careers": {
			Title:   ".post-title",
			Company: ".org-name",
			Date:    ".posted-date",
			Link:    ".job-link",
		},
	})
	if err != nil {
		panic(err)
	}
	return r
}

// Lookup returns the selectors registered for url.
func (r *Registry) Lookup(url string) (SiteSelectors, error) {
	if url == "" {
		return SiteSelectors{}, fmt.Errorf("%w: no URL given", ErrUnsupportedSite)
	}
	sel, ok := r.sites[url]
	if !ok {
		return SiteSelectors{}, fmt.Errorf("%w: %s", ErrUnsupportedSite, url)
	}
	return sel, nil
}

// Sites lists the registered URLs in sorted order.
func (r *Registry) Sites() []string {
	urls := make([]string, 0, len(r.sites))
	for url := range r.sites {
		urls = append(urls, url)
	}
	sort.Strings(urls)
	return urls
}

func validateSelectors(s SiteSelectors) error {
	if s.Title == "" {
		return fmt.Errorf("title selector is required")
	}
	if s.Company == "" {
		return fmt.Errorf("company selector is required")
	}
	if s.Date == "" {
		return fmt.Errorf("date selector is required")
	}
	if s.Link == "" {
		return fmt.Errorf("link selector is required")
	}
	return nil
}
