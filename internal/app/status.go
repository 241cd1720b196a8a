package app

import (
	"errors"
	"fmt"

	"job-scraper/internal/fetcher"
	"job-scraper/internal/scraper"
)

type StatusKind string

const (
	StatusSuccess           StatusKind = "success"
	StatusEmptyCurrentMonth StatusKind = "empty-current-month"
	StatusNoListings        StatusKind = "no-listings"
	StatusCleared           StatusKind = "cleared"
	StatusError             StatusKind = "error"
)

// Error kinds carried by StatusError.
const (
	ErrorUnsupportedSite = "unsupported-site"
	ErrorPageLoadTimeout = "page-load-timeout"
	ErrorBrowserLaunch   = "browser-launch"
	ErrorBusy            = "busy"
	ErrorFetch           = "fetch"
)

// Status is the user-facing summary of the last action.
type Status struct {
	Kind      StatusKind
	ErrorKind string
	Count     int
	Message   string
}

// Code is the machine-readable form: "success", "no-listings",
// "error:unsupported-site", ...
func (s Status) Code() string {
	if s.Kind == StatusError {
		return string(s.Kind) + ":" + s.ErrorKind
	}
	return string(s.Kind)
}

func (s Status) IsError() bool { return s.Kind == StatusError }

func doneStatus(d Done) Status {
	switch d.Reason {
	case ReasonNoListings:
		return Status{Kind: StatusNoListings, Message: "No job listings found."}
	case ReasonNoneCurrent:
		return Status{Kind: StatusEmptyCurrentMonth, Message: "No job postings found for the current month."}
	default:
		return Status{
			Kind:    StatusSuccess,
			Count:   len(d.Listings),
			Message: fmt.Sprintf("Fetched %d job postings for the current month.", len(d.Listings)),
		}
	}
}

func errorStatus(err error) Status {
	kind := ClassifyError(err)

	var msg string
	switch kind {
	case ErrorUnsupportedSite:
		msg = fmt.Sprintf("Unsupported URL or no selectors defined: %v", err)
	case ErrorBusy:
		msg = "A fetch is already running."
	default:
		msg = fmt.Sprintf("Error fetching data: %v", err)
	}

	return Status{Kind: StatusError, ErrorKind: kind, Message: msg}
}

func clearedStatus() Status {
	return Status{Kind: StatusCleared, Message: "Results cleared."}
}

// ClassifyError maps a fetch-cycle error to its error kind.
func ClassifyError(err error) string {
	switch {
	case errors.Is(err, scraper.ErrUnsupportedSite):
		return ErrorUnsupportedSite
	case errors.Is(err, fetcher.ErrPageLoadTimeout):
		return ErrorPageLoadTimeout
	case errors.Is(err, fetcher.ErrBrowserLaunch):
		return ErrorBrowserLaunch
	case errors.Is(err, ErrFetchInProgress):
		return ErrorBusy
	default:
		return ErrorFetch
	}
}
