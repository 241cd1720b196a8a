package fetcher

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"job-scraper/internal/normalize"
)

var errSessionClosed = errors.New("session closed")

// SnapshotLauncher serves saved HTML pages instead of driving a browser. Pages
// come either from memory or from files in a directory named by
// SnapshotFileName.
type SnapshotLauncher struct {
	pages map[string]string
	dir   string
}

func NewSnapshotLauncher(pages map[string]string) *SnapshotLauncher {
	return &SnapshotLauncher{pages: pages}
}

func NewSnapshotDirLauncher(dir string) *SnapshotLauncher {
	return &SnapshotLauncher{dir: dir}
}

// SnapshotFileName maps a page URL to its file name in a snapshot directory,
// e.g. https://example.com/jobs -> example.com_jobs.html.
func SnapshotFileName(pageURL string) string {
	name := pageURL
	if u, err := url.Parse(pageURL); err == nil && u.Host != "" {
		name = u.Host + u.Path
	}
	name = strings.Trim(name, "/")
	name = strings.NewReplacer("/", "_", ":", "_", "?", "_").Replace(name)
	return name + ".html"
}

func (l *SnapshotLauncher) Launch(_ context.Context) (Session, error) {
	if l.pages == nil && l.dir == "" {
		return nil, fmt.Errorf("snapshot launcher has no pages")
	}
	return &snapshotSession{launcher: l}, nil
}

func (l *SnapshotLauncher) load(pageURL string) (string, error) {
	if l.pages != nil {
		html, ok := l.pages[pageURL]
		if !ok {
			return "", fmt.Errorf("no snapshot for %s", pageURL)
		}
		return html, nil
	}

	data, err := os.ReadFile(filepath.Join(l.dir, SnapshotFileName(pageURL)))
	if err != nil {
		return "", fmt.Errorf("read snapshot for %s: %w", pageURL, err)
	}
	return string(data), nil
}

type snapshotSession struct {
	launcher *SnapshotLauncher
	doc      *goquery.Document
	url      string
	closed   bool
}

func (s *snapshotSession) Navigate(_ context.Context, pageURL string) error {
	if s.closed {
		return errSessionClosed
	}

	html, err := s.launcher.load(pageURL)
	if err != nil {
		return err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return fmt.Errorf("failed to parse HTML: %w", err)
	}

	s.doc = doc
	s.url = pageURL
	return nil
}

// WaitFor never blocks: a static document either has the element or never
// will.
func (s *snapshotSession) WaitFor(_ context.Context, selector string, _ time.Duration) error {
	if err := s.ready(); err != nil {
		return err
	}
	if s.doc.Find(selector).Length() == 0 {
		return fmt.Errorf("%w: %s", ErrWaitTimeout, selector)
	}
	return nil
}

func (s *snapshotSession) FindAll(_ context.Context, selector string) ([]Element, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}

	var elements []Element
	s.doc.Find(selector).Each(func(_ int, sel *goquery.Selection) {
		elements = append(elements, &snapshotElement{sel: sel, base: s.url})
	})
	return elements, nil
}

func (s *snapshotSession) HTML(_ context.Context) (string, error) {
	if err := s.ready(); err != nil {
		return "", err
	}
	return s.doc.Html()
}

func (s *snapshotSession) Close() error {
	s.closed = true
	s.doc = nil
	return nil
}

func (s *snapshotSession) ready() error {
	if s.closed {
		return errSessionClosed
	}
	if s.doc == nil {
		return fmt.Errorf("no page loaded")
	}
	return nil
}

type snapshotElement struct {
	sel  *goquery.Selection
	base string
}

func (e *snapshotElement) Text() (string, error) {
	return e.sel.Text(), nil
}

func (e *snapshotElement) Href() (string, error) {
	href, ok := e.sel.Attr("href")
	if !ok {
		return "", fmt.Errorf("element has no href")
	}
	return normalize.Link(e.base, href)
}

func (e *snapshotElement) Find(selector string) (Element, error) {
	found := e.sel.Find(selector).First()
	if found.Length() == 0 {
		return nil, fmt.Errorf("%w: %s", ErrElementNotFound, selector)
	}
	return &snapshotElement{sel: found, base: e.base}, nil
}
