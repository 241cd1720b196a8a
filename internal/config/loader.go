package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment overrides, applied after the YAML file.
const (
	EnvChromePath = "JOB_SCRAPER_CHROME_PATH"
	EnvUserAgent  = "JOB_SCRAPER_USER_AGENT"
	EnvLogLevel   = "JOB_SCRAPER_LOG_LEVEL"
	EnvExportDir  = "JOB_SCRAPER_EXPORT_DIR"
)

// LoadConfig reads filePath on top of Defaults. A missing file is not an
// error; a malformed one is.
func LoadConfig(filePath string) (*Config, error) {
	// .env is optional
	_ = godotenv.Load()

	cfg := Defaults()

	file, err := os.Open(filePath)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		log.Printf("Config file %s not found, using defaults", filePath)
	case err != nil:
		return nil, fmt.Errorf("failed to open config file: %w", err)
	default:
		defer func() {
			if closeErr := file.Close(); closeErr != nil {
				log.Printf("Warning: failed to close config file: %v", closeErr)
			}
		}()

		decoder := yaml.NewDecoder(file)
		decoder.KnownFields(true)
		if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation error: %w", err)
	}

	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv(EnvChromePath); v != "" {
		cfg.Browser.ChromePath = v
	}
	if v := os.Getenv(EnvUserAgent); v != "" {
		cfg.Browser.UserAgent = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Observability.LogLevel = v
	}
	if v := os.Getenv(EnvExportDir); v != "" {
		cfg.Export.Dir = v
	}
}
