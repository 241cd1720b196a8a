// Package fetchertest provides launchers for exercising code that drives a
// browser without starting one.
package fetchertest

import (
	"context"
	"errors"
	"sync"
	"time"

	"job-scraper/internal/fetcher"
)

// CountingLauncher wraps another launcher and records how many sessions were
// launched and how many were closed.
type CountingLauncher struct {
	Next fetcher.Launcher
	// LaunchErr, when set, is returned instead of delegating to Next.
	LaunchErr error

	mu       sync.Mutex
	launched int
	closed   int
}

func (l *CountingLauncher) Launch(ctx context.Context) (fetcher.Session, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.launched++
	if l.LaunchErr != nil {
		return nil, l.LaunchErr
	}

	session, err := l.Next.Launch(ctx)
	if err != nil {
		return nil, err
	}
	return &countingSession{Session: session, launcher: l}, nil
}

func (l *CountingLauncher) Launched() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.launched
}

func (l *CountingLauncher) Closed() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.closed
}

type countingSession struct {
	fetcher.Session
	launcher *CountingLauncher
}

// HTML forwards to the wrapped session when it can report the page source.
func (s *countingSession) HTML(ctx context.Context) (string, error) {
	src, ok := s.Session.(interface {
		HTML(ctx context.Context) (string, error)
	})
	if !ok {
		return "", errors.New("session cannot report page source")
	}
	return src.HTML(ctx)
}

func (s *countingSession) Close() error {
	s.launcher.mu.Lock()
	s.launcher.closed++
	s.launcher.mu.Unlock()
	return s.Session.Close()
}

// StallingSession never finds the selectors in Stall, reporting a wait timeout
// for them, and records the timeout it was asked to honour for every selector.
type StallingSession struct {
	Stall map[string]bool
	// Block, when set, is closed by the test to release FindAll.
	Block chan struct{}
	// HangNavigate makes Navigate wait until its context is done, like a
	// server that accepts the connection and never answers.
	HangNavigate bool

	mu        sync.Mutex
	Timeouts  map[string]time.Duration
	closed    bool
	htmlCalls int
}

func (s *StallingSession) Navigate(ctx context.Context, _ string) error {
	if !s.HangNavigate {
		return nil
	}
	<-ctx.Done()
	return ctx.Err()
}

func (s *StallingSession) HTML(context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.htmlCalls++
	return "<html><body></body></html>", nil
}

// HTMLCalls is how often the page source was requested.
func (s *StallingSession) HTMLCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.htmlCalls
}

func (s *StallingSession) WaitFor(_ context.Context, selector string, timeout time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Timeouts == nil {
		s.Timeouts = make(map[string]time.Duration)
	}
	s.Timeouts[selector] = timeout
	if s.Stall[selector] {
		return fetcher.ErrWaitTimeout
	}
	return nil
}

func (s *StallingSession) FindAll(context.Context, string) ([]fetcher.Element, error) {
	if s.Block != nil {
		<-s.Block
	}
	return nil, nil
}

func (s *StallingSession) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return errors.New("already closed")
	}
	s.closed = true
	return nil
}

// SessionLauncher hands out one prepared session.
type SessionLauncher struct {
	Session fetcher.Session
}

func (l SessionLauncher) Launch(context.Context) (fetcher.Session, error) {
	return l.Session, nil
}
