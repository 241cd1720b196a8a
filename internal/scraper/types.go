package scraper

import "time"

// SiteSelectors locates the four listing fields inside one listing element
// of a known site.
type SiteSelectors struct {
	Title   string
	Company string
	Date    string
	Link    string
}

// RawListing holds the field values of one listing element as read from the
// page.
type RawListing struct {
	Title    string
	Company  string
	DateText string
	Link     string
}

// Listing is a RawListing whose date parsed. DateText keeps the original
// string for display.
type Listing struct {
	Title    string
	Company  string
	DateText string
	Date     time.Time
	Link     string
}

// Row returns the listing in display column order: title, company, date, link.
func (l Listing) Row() [4]string {
	return [4]string{l.Title, l.Company, l.DateText, l.Link}
}
