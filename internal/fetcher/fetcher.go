package fetcher

import (
	"context"
	"errors"
	"fmt"
	"time"

	"job-scraper/internal/config"
	"job-scraper/internal/observability"
)

var (
	// ErrBrowserLaunch means no session could be started.
	ErrBrowserLaunch = errors.New("browser launch failed")
	// ErrPageLoadTimeout means the document body never appeared.
	ErrPageLoadTimeout = errors.New("page load timed out")
	// ErrNoListingsTimeout means no listing container appeared in time. The
	// page loaded; it just has nothing to offer.
	ErrNoListingsTimeout = errors.New("no listings appeared")
	// ErrWaitTimeout is returned by Session.WaitFor.
	ErrWaitTimeout = errors.New("wait timed out")
	// ErrElementNotFound is returned by Element.Find.
	ErrElementNotFound = errors.New("element not found")
)

// Element is a handle to one node on a loaded page. Handles are only valid
// while the session that produced them is open.
type Element interface {
	Text() (string, error)
	// Href returns the absolute link target of the element.
	Href() (string, error)
	// Find returns the first descendant matching selector.
	Find(selector string) (Element, error)
}

// Session is one controlled browser instance.
type Session interface {
	Navigate(ctx context.Context, url string) error
	WaitFor(ctx context.Context, selector string, timeout time.Duration) error
	FindAll(ctx context.Context, selector string) ([]Element, error)
	Close() error
}

// Launcher starts a fresh Session. Sessions are never reused.
type Launcher interface {
	Launch(ctx context.Context) (Session, error)
}

// sourcer is implemented by sessions that can report the page source.
type sourcer interface {
	HTML(ctx context.Context) (string, error)
}

const bodySelector = "body"

type Fetcher struct {
	launcher        Launcher
	logger          *observability.Logger
	listingSelector string
	pageTimeout     time.Duration
	listingsTimeout time.Duration
}

func NewFetcher(cfg *config.Config, launcher Launcher, logger *observability.Logger) *Fetcher {
	return &Fetcher{
		launcher:        launcher,
		logger:          logger,
		listingSelector: cfg.Browser.ListingSelector,
		pageTimeout:     cfg.GetPageTimeout(),
		listingsTimeout: cfg.GetListingsTimeout(),
	}
}

// Fetch opens url in a fresh session, waits for the page and its listing
// containers, and hands the containers to visit. The session is closed before
// Fetch returns, whatever happened. Element handles must not escape visit.
func (f *Fetcher) Fetch(ctx context.Context, url string, visit func([]Element) error) error {
	session, err := f.launcher.Launch(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBrowserLaunch, err)
	}
	defer func() {
		if closeErr := session.Close(); closeErr != nil {
			f.logger.Error("Failed to close browser session", "url", url, "error", closeErr.Error())
		}
		f.logger.Debug("Browser session closed", "url", url)
	}()

	f.logger.Info("Fetching URL", "url", url)

	if err := f.navigate(ctx, session, url); err != nil {
		return err
	}

	if err := session.WaitFor(ctx, bodySelector, f.pageTimeout); err != nil {
		if errors.Is(err, ErrWaitTimeout) {
			return fmt.Errorf("%w after %s: %s", ErrPageLoadTimeout, f.pageTimeout, url)
		}
		return fmt.Errorf("wait for page body: %w", err)
	}

	if src, ok := session.(sourcer); ok && f.logger.DebugEnabled() {
		if html, err := src.HTML(ctx); err == nil {
			f.logger.Debug("Page source", "url", url, "bytes", len(html))
		}
	}

	if err := session.WaitFor(ctx, f.listingSelector, f.listingsTimeout); err != nil {
		if errors.Is(err, ErrWaitTimeout) {
			return fmt.Errorf("%w within %s: %s", ErrNoListingsTimeout, f.listingsTimeout, f.listingSelector)
		}
		return fmt.Errorf("wait for listings: %w", err)
	}

	elements, err := session.FindAll(ctx, f.listingSelector)
	if err != nil {
		return fmt.Errorf("find listings: %w", err)
	}

	f.logger.Debug("Listing elements found", "url", url, "count", len(elements))

	return visit(elements)
}

// navigate loads url under the page timeout. A server that accepts the
// connection but never answers counts as a page load timeout.
func (f *Fetcher) navigate(ctx context.Context, session Session, url string) error {
	navCtx, cancel := context.WithTimeout(ctx, f.pageTimeout)
	defer cancel()

	err := session.Navigate(navCtx, url)
	switch {
	case err == nil:
		return nil
	case ctx.Err() == nil && errors.Is(navCtx.Err(), context.DeadlineExceeded):
		return fmt.Errorf("%w after %s: %s", ErrPageLoadTimeout, f.pageTimeout, url)
	default:
		return fmt.Errorf("navigate to %s: %w", url, err)
	}
}
