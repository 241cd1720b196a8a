package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"golang.org/x/term"

	"job-scraper/internal/app"
	"job-scraper/internal/config"
	"job-scraper/internal/export"
	"job-scraper/internal/fetcher"
	"job-scraper/internal/normalize"
	"job-scraper/internal/observability"
	"job-scraper/internal/scraper"
	"job-scraper/internal/ui"
)

var menuItems = []string{
	"Fetch job postings",
	"Clear results",
	"Toggle theme",
	"Export data (Word + PDF)",
	"Supported sites",
	"Exit",
}

type session struct {
	ctx      context.Context
	orch     *app.Orchestrator
	registry *scraper.Registry
	exporter *export.Exporter
	theme    ui.Theme
	reader   *bufio.Reader
	out      io.Writer
}

func main() {
	configPath := "configs/config.yaml"
	if len(os.Args) > 1 {
		configPath = os.Args[1]
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := observability.NewLogger(cfg.Observability.LogPath, cfg.Observability.LogLevel)
	defer func() {
		if err := logger.Close(); err != nil {
			log.Printf("Warning: failed to close logger: %v", err)
		}
	}()

	ctx, cancel := app.GracefulShutdown(logger)
	defer cancel()

	var launcher fetcher.Launcher
	switch cfg.Browser.Driver {
	case config.DriverSnapshot:
		launcher = fetcher.NewSnapshotDirLauncher(cfg.Browser.SnapshotDir)
	default:
		launcher = fetcher.NewRodLauncher(cfg, logger)
	}

	registry := scraper.DefaultRegistry()
	s := &session{
		ctx:      ctx,
		registry: registry,
		orch: app.NewOrchestrator(
			registry,
			fetcher.NewFetcher(cfg, launcher, logger),
			scraper.NewExtractor(normalize.NewNormalizer(cfg)),
			logger,
		),
		exporter: export.NewExporter(cfg, logger),
		theme:    ui.ThemeByName(cfg.UI.Theme),
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
	}

	logger.Info("Job scraper started", "driver", cfg.Browser.Driver, "sites", len(registry.Sites()))
	s.run()
	logger.Info("Job scraper stopped")
}

func (s *session) run() {
	for {
		fmt.Fprintln(s.out)
		fmt.Fprint(s.out, ui.RenderMenu(s.theme, menuItems))
		fmt.Fprint(s.out, "Enter your choice: ")

		choice, err := s.reader.ReadString('\n')
		if err != nil {
			return
		}
		if s.ctx.Err() != nil {
			return
		}

		switch strings.TrimSpace(choice) {
		case "1":
			s.fetch()
		case "2":
			s.show(s.orch.Clear())
		case "3":
			s.theme = ui.Toggle(s.theme)
			fmt.Fprintln(s.out, s.theme.Dim.Render("Theme: "+s.theme.Name))
			s.printTable()
		case "4":
			s.export()
		case "5":
			fmt.Fprint(s.out, ui.RenderSites(s.theme, s.registry.Sites()))
		case "6":
			return
		default:
			fmt.Fprintln(s.out, s.theme.Error.Render("Invalid choice"))
		}
	}
}

func (s *session) fetch() {
	fmt.Fprint(s.out, "Enter Job Listing URL: ")
	url, err := readLine(s.reader)
	if err != nil {
		return
	}

	fmt.Fprintln(s.out, s.theme.Dim.Render("Fetching..."))
	outcome := s.orch.Fetch(s.ctx, url)
	s.printTable()
	s.show(outcome.Status)
}

func (s *session) export() {
	artifacts, err := s.exporter.Export(export.NewTable(s.orch.Rows()))
	switch {
	case errors.Is(err, export.ErrNothingToExport):
		fmt.Fprintln(s.out, s.theme.Error.Render("No data to export."))
	case err != nil:
		fmt.Fprintln(s.out, s.theme.Error.Render(fmt.Sprintf("Export failed: %v", err)))
	default:
		fmt.Fprintln(s.out, s.theme.Success.Render(
			fmt.Sprintf("Data exported to %s and %s", artifacts.Docx, artifacts.PDF)))
	}
}

func (s *session) printTable() {
	fmt.Fprintln(s.out, ui.RenderTable(s.theme, s.orch.Rows(), terminalWidth()))
}

func (s *session) show(status app.Status) {
	fmt.Fprintln(s.out, ui.RenderStatus(s.theme, status))
}

// readLine returns the next input line without its line terminator. Other
// whitespace is kept: site URLs are matched exactly.
func readLine(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func terminalWidth() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return 0
	}
	width, _, err := term.GetSize(fd)
	if err != nil {
		return 0
	}
	return width
}
