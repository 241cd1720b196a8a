package fetcher

import (
	"context"
	"testing"

	"github.com/go-rod/rod/lib/launcher/flags"
	"github.com/stretchr/testify/assert"

	"job-scraper/internal/config"
	"job-scraper/internal/observability"
)

func TestChromeLauncherFlags(t *testing.T) {
	cfg := config.Defaults()
	cfg.Browser.ChromePath = "/opt/chrome/chrome"

	lch := NewRodLauncher(cfg, observability.Nop()).chromeLauncher(context.Background())

	assert.True(t, lch.Has("ignore-certificate-errors"))
	assert.Equal(t, cfg.Browser.UserAgent, lch.Get("user-agent"))
	assert.False(t, lch.Has(flags.Headless), "browser runs with a visible window")
	assert.Equal(t, "/opt/chrome/chrome", lch.Get(flags.Bin))
}

func TestChromeLauncherOptionalFlags(t *testing.T) {
	cfg := config.Defaults()
	cfg.Browser.Headless = true
	cfg.Browser.IgnoreCertErrors = false
	cfg.Browser.UserAgent = ""

	lch := NewRodLauncher(cfg, observability.Nop()).chromeLauncher(context.Background())

	assert.True(t, lch.Has(flags.Headless))
	assert.False(t, lch.Has("ignore-certificate-errors"))
	assert.False(t, lch.Has("user-agent"))
}
