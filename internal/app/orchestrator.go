package app

import (
	"context"
	"errors"
	"sync"
	"time"

	"job-scraper/internal/fetcher"
	"job-scraper/internal/observability"
	"job-scraper/internal/scraper"
)

// ErrFetchInProgress is returned when Fetch is called while another fetch is
// running. Overlapping browser sessions are not supported.
var ErrFetchInProgress = errors.New("fetch already in progress")

// Outcome is what one Fetch call ends with.
type Outcome struct {
	State  State
	Status Status
}

// Orchestrator runs fetch cycles and owns the result set.
type Orchestrator struct {
	registry  *scraper.Registry
	fetcher   *fetcher.Fetcher
	extractor *scraper.Extractor
	logger    *observability.Logger
	now       func() time.Time

	// busy holds a token while a fetch runs.
	busy chan struct{}

	mu      sync.Mutex
	state   State
	results []scraper.Listing
}

func NewOrchestrator(
	registry *scraper.Registry,
	f *fetcher.Fetcher,
	x *scraper.Extractor,
	logger *observability.Logger,
) *Orchestrator {
	return &Orchestrator{
		registry:  registry,
		fetcher:   f,
		extractor: x,
		logger:    logger,
		now:       time.Now,
		busy:      make(chan struct{}, 1),
		state:     Idle{},
	}
}

// WithClock replaces the wall clock used by the month filter.
func (o *Orchestrator) WithClock(now func() time.Time) *Orchestrator {
	o.now = now
	return o
}

// Fetch runs one fetch cycle for url and blocks until it finishes. On success
// (including an empty result) the result set is replaced; on failure it is
// left as it was.
func (o *Orchestrator) Fetch(ctx context.Context, url string) Outcome {
	select {
	case o.busy <- struct{}{}:
	default:
		o.logger.Warn("Fetch rejected, another fetch is running", "url", url)
		return Outcome{State: o.State(), Status: errorStatus(ErrFetchInProgress)}
	}
	defer func() { <-o.busy }()

	o.setState(Fetching{URL: url})

	selectors, err := o.registry.Lookup(url)
	if err != nil {
		return o.fail(url, err)
	}

	var (
		listings []scraper.Listing
		elements int
	)
	err = o.fetcher.Fetch(ctx, url, func(found []fetcher.Element) error {
		// one reference instant for the whole batch
		now := o.now()
		elements = len(found)
		o.setState(Extracting{URL: url, Elements: elements})
		listings = o.extractAll(found, selectors, now)
		return nil
	})

	switch {
	case errors.Is(err, fetcher.ErrNoListingsTimeout):
		o.logger.Info("No listing elements on page", "url", url, "detail", err.Error())
		return o.done(Done{URL: url, Reason: ReasonNoListings})
	case err != nil:
		return o.fail(url, err)
	case elements == 0:
		return o.done(Done{URL: url, Reason: ReasonNoListings})
	case len(listings) == 0:
		return o.done(Done{URL: url, Reason: ReasonNoneCurrent})
	default:
		return o.done(Done{URL: url, Listings: listings, Reason: ReasonFound})
	}
}

func (o *Orchestrator) extractAll(elements []fetcher.Element, selectors scraper.SiteSelectors, now time.Time) []scraper.Listing {
	var listings []scraper.Listing
	var partial, badDate, old int

	for i, el := range elements {
		raw, err := o.extractor.Extract(el, selectors)
		if err != nil {
			partial++
			o.logger.Warn("Skipping listing: extraction failed",
				"index", i,
				"error", err.Error(),
			)
			continue
		}

		date, err := scraper.ParseDate(raw.DateText)
		if err != nil {
			badDate++
			o.logger.Warn("Skipping listing: bad date",
				"index", i,
				"title", raw.Title,
				"date_raw", raw.DateText,
				"error", err.Error(),
			)
			continue
		}

		if !scraper.InCurrentMonth(date, now) {
			old++
			o.logger.Debug("Skipping listing: not in current month",
				"index", i,
				"title", raw.Title,
				"date", date.Format("2006-01-02"),
			)
			continue
		}

		listings = append(listings, scraper.Listing{
			Title:    raw.Title,
			Company:  raw.Company,
			DateText: raw.DateText,
			Date:     date,
			Link:     raw.Link,
		})
	}

	o.logger.Info("Extraction finished",
		"elements", len(elements),
		"accepted", len(listings),
		"partial", partial,
		"bad_date", badDate,
		"other_month", old,
		"reference", now.Format("2006-01"),
	)

	return listings
}

func (o *Orchestrator) done(d Done) Outcome {
	o.mu.Lock()
	o.state = d
	o.results = d.Listings
	o.mu.Unlock()

	status := doneStatus(d)
	o.logger.Info("Fetch completed", "url", d.URL, "status", status.Code(), "count", len(d.Listings))
	return Outcome{State: d, Status: status}
}

func (o *Orchestrator) fail(url string, err error) Outcome {
	f := Failed{URL: url, Err: err}
	o.setState(f)

	status := errorStatus(err)
	o.logger.Error("Fetch failed", "url", url, "status", status.Code(), "error", err.Error())
	return Outcome{State: f, Status: status}
}

// Clear empties the result set and returns to Idle.
func (o *Orchestrator) Clear() Status {
	o.mu.Lock()
	o.results = nil
	o.state = Idle{}
	o.mu.Unlock()

	o.logger.Debug("Results cleared")
	return clearedStatus()
}

func (o *Orchestrator) State() State {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state
}

// Results returns a copy of the current result set in extraction order.
func (o *Orchestrator) Results() []scraper.Listing {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]scraper.Listing(nil), o.results...)
}

// Rows returns the result set as (title, company, date, link) tuples.
func (o *Orchestrator) Rows() [][4]string {
	results := o.Results()
	rows := make([][4]string, 0, len(results))
	for _, l := range results {
		rows = append(rows, l.Row())
	}
	return rows
}

func (o *Orchestrator) setState(s State) {
	o.mu.Lock()
	o.state = s
	o.mu.Unlock()
}
