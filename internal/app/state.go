package app

import "job-scraper/internal/scraper"

// State is one step of a fetch cycle. The concrete types are Idle, Fetching,
// Extracting, Done and Failed.
type State interface {
	isState()
}

type Idle struct{}

type Fetching struct {
	URL string
}

type Extracting struct {
	URL      string
	Elements int
}

// DoneReason says why a finished cycle ended the way it did.
type DoneReason int

const (
	// ReasonFound means at least one current-month listing was accepted.
	ReasonFound DoneReason = iota
	// ReasonNoListings means the page had no listing elements.
	ReasonNoListings
	// ReasonNoneCurrent means listings were present but none were kept.
	ReasonNoneCurrent
)

type Done struct {
	URL      string
	Listings []scraper.Listing
	Reason   DoneReason
}

// Empty distinguishes Done(empty) from Done(nonempty).
func (d Done) Empty() bool { return len(d.Listings) == 0 }

type Failed struct {
	URL string
	Err error
}

func (Idle) isState()       {}
func (Fetching) isState()   {}
func (Extracting) isState() {}
func (Done) isState()       {}
func (Failed) isState()     {}
