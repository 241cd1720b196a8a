package config

import (
	"fmt"
	"time"
)

const (
	DriverRod      = "rod"
	DriverSnapshot = "snapshot"

	ThemeDark  = "dark"
	ThemeLight = "light"
)

type Config struct {
	Browser       BrowserConfig       `yaml:"browser"`
	Normalize     NormalizeConfig     `yaml:"normalize"`
	Export        ExportConfig        `yaml:"export"`
	UI            UIConfig            `yaml:"ui"`
	Observability ObservabilityConfig `yaml:"observability"`
}

type BrowserConfig struct {
	Driver           string `yaml:"driver"`
	ChromePath       string `yaml:"chrome_path"`
	Headless         bool   `yaml:"headless"`
	IgnoreCertErrors bool   `yaml:"ignore_cert_errors"`
	UserAgent        string `yaml:"user_agent"`
	PageTimeoutS     int    `yaml:"page_timeout_s"`
	ListingsTimeoutS int    `yaml:"listings_timeout_s"`
	ListingSelector  string `yaml:"listing_selector"`
	SnapshotDir      string `yaml:"snapshot_dir"`
}

type NormalizeConfig struct {
	TrimNBSP       bool `yaml:"trim_nbsp"`
	CollapseSpaces bool `yaml:"collapse_spaces"`
	FoldWidth      bool `yaml:"fold_width"`
}

type ExportConfig struct {
	Dir      string `yaml:"dir"`
	DocxName string `yaml:"docx_name"`
	PDFName  string `yaml:"pdf_name"`
}

type UIConfig struct {
	Theme string `yaml:"theme"`
}

type ObservabilityConfig struct {
	LogPath  string `yaml:"log_path"`
	LogLevel string `yaml:"log_level"`
}

// Defaults returns the configuration used when no file is present.
func Defaults() *Config {
	return &Config{
		Browser: BrowserConfig{
			Driver:           DriverRod,
			Headless:         false,
			IgnoreCertErrors: true,
			UserAgent:        "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/58.0.3029.110 Safari/537.3",
			PageTimeoutS:     20,
			ListingsTimeoutS: 30,
			ListingSelector:  ".job-listing",
			SnapshotDir:      "snapshots",
		},
		Normalize: NormalizeConfig{
			TrimNBSP:       true,
			CollapseSpaces: true,
			FoldWidth:      true,
		},
		Export: ExportConfig{
			Dir:      ".",
			DocxName: "job_postings.docx",
			PDFName:  "job_postings.pdf",
		},
		UI: UIConfig{
			Theme: ThemeDark,
		},
		Observability: ObservabilityConfig{
			LogPath:  "",
			LogLevel: "info",
		},
	}
}

// Validation
func (c *Config) Validate() error {
	if c.Browser.Driver != DriverRod && c.Browser.Driver != DriverSnapshot {
		return fmt.Errorf("browser.driver must be 'rod' or 'snapshot'")
	}
	if c.Browser.PageTimeoutS <= 0 {
		return fmt.Errorf("browser.page_timeout_s must be > 0")
	}
	if c.Browser.ListingsTimeoutS <= 0 {
		return fmt.Errorf("browser.listings_timeout_s must be > 0")
	}
	if c.Browser.ListingSelector == "" {
		return fmt.Errorf("browser.listing_selector is required")
	}
	if c.Browser.Driver == DriverSnapshot && c.Browser.SnapshotDir == "" {
		return fmt.Errorf("browser.snapshot_dir is required when browser.driver is 'snapshot'")
	}
	if c.Export.Dir == "" {
		return fmt.Errorf("export.dir is required")
	}
	if c.Export.DocxName == "" {
		return fmt.Errorf("export.docx_name is required")
	}
	if c.Export.PDFName == "" {
		return fmt.Errorf("export.pdf_name is required")
	}
	if c.Export.DocxName == c.Export.PDFName {
		return fmt.Errorf("export.docx_name and export.pdf_name must differ")
	}
	if c.UI.Theme != ThemeDark && c.UI.Theme != ThemeLight {
		return fmt.Errorf("ui.theme must be 'dark' or 'light'")
	}
	switch c.Observability.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("observability.log_level must be one of debug, info, warn, error")
	}
	return nil
}

// Getters
func (c *Config) GetPageTimeout() time.Duration {
	return time.Duration(c.Browser.PageTimeoutS) * time.Second
}

func (c *Config) GetListingsTimeout() time.Duration {
	return time.Duration(c.Browser.ListingsTimeoutS) * time.Second
}
