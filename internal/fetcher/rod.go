package fetcher

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"job-scraper/internal/config"
	"job-scraper/internal/observability"
)

// RodLauncher starts a local Chrome through go-rod.
type RodLauncher struct {
	cfg    config.BrowserConfig
	logger *observability.Logger
}

func NewRodLauncher(cfg *config.Config, logger *observability.Logger) *RodLauncher {
	return &RodLauncher{cfg: cfg.Browser, logger: logger}
}

// chromeLauncher builds the Chrome command line without starting it.
func (l *RodLauncher) chromeLauncher(ctx context.Context) *launcher.Launcher {
	lch := launcher.New().
		Context(ctx).
		Headless(l.cfg.Headless).
		Leakless(true)
	if l.cfg.ChromePath != "" {
		lch = lch.Bin(l.cfg.ChromePath)
	}
	if l.cfg.IgnoreCertErrors {
		lch = lch.Set("ignore-certificate-errors")
	}
	if l.cfg.UserAgent != "" {
		lch = lch.Set("user-agent", l.cfg.UserAgent)
	}
	return lch
}

func (l *RodLauncher) Launch(ctx context.Context) (Session, error) {
	lch := l.chromeLauncher(ctx)

	controlURL, err := lch.Launch()
	if err != nil {
		return nil, fmt.Errorf("start chrome: %w", err)
	}

	browser := rod.New().ControlURL(controlURL)
	if err := browser.Connect(); err != nil {
		lch.Kill()
		lch.Cleanup()
		return nil, fmt.Errorf("connect to chrome: %w", err)
	}

	page, err := browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		s := &rodSession{launcher: lch, browser: browser, logger: l.logger}
		_ = s.Close()
		return nil, fmt.Errorf("open page: %w", err)
	}

	if l.cfg.UserAgent != "" {
		if err := page.SetUserAgent(&proto.NetworkSetUserAgentOverride{UserAgent: l.cfg.UserAgent}); err != nil {
			l.logger.Warn("Failed to override user agent", "error", err.Error())
		}
	}

	l.logger.Debug("Browser launched", "control_url", controlURL, "headless", l.cfg.Headless)

	return &rodSession{launcher: lch, browser: browser, page: page, logger: l.logger}, nil
}

type rodSession struct {
	launcher *launcher.Launcher
	browser  *rod.Browser
	page     *rod.Page
	logger   *observability.Logger
}

func (s *rodSession) Navigate(ctx context.Context, url string) error {
	return s.page.Context(ctx).Navigate(url)
}

func (s *rodSession) WaitFor(ctx context.Context, selector string, timeout time.Duration) error {
	page := s.page.Context(ctx).Timeout(timeout)
	defer page.CancelTimeout()

	_, err := page.Element(selector)
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %s", ErrWaitTimeout, selector)
	}
	return err
}

func (s *rodSession) FindAll(ctx context.Context, selector string) ([]Element, error) {
	els, err := s.page.Context(ctx).Elements(selector)
	if err != nil {
		return nil, err
	}

	elements := make([]Element, 0, len(els))
	for _, el := range els {
		elements = append(elements, &rodElement{el: el})
	}
	return elements, nil
}

func (s *rodSession) HTML(ctx context.Context) (string, error) {
	return s.page.Context(ctx).HTML()
}

// Close shuts the browser down and waits for the process to exit.
func (s *rodSession) Close() error {
	err := s.browser.Close()
	if err != nil {
		s.launcher.Kill()
	}
	s.launcher.Cleanup()
	return err
}

type rodElement struct {
	el *rod.Element
}

func (e *rodElement) Text() (string, error) {
	return e.el.Text()
}

// Href reads the href property, which the browser has already resolved to an
// absolute URL.
func (e *rodElement) Href() (string, error) {
	v, err := e.el.Property("href")
	if err != nil {
		return "", err
	}
	if v.Nil() || v.Str() == "" {
		return "", fmt.Errorf("element has no href")
	}
	return v.Str(), nil
}

func (e *rodElement) Find(selector string) (Element, error) {
	// Elements does not wait, unlike Element.
	els, err := e.el.Elements(selector)
	if err != nil {
		return nil, err
	}
	if els.Empty() {
		return nil, fmt.Errorf("%w: %s", ErrElementNotFound, selector)
	}
	return &rodElement{el: els.First()}, nil
}
