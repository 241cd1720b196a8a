package normalize

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"

	"job-scraper/internal/config"
)

var spaceRun = regexp.MustCompile(`\s+`)

// Normalizer cleans text read out of listing elements before it is stored or
// parsed.
type Normalizer struct {
	cfg config.NormalizeConfig
}

func NewNormalizer(cfg *config.Config) *Normalizer {
	return &Normalizer{cfg: cfg.Normalize}
}

// Text trims s and, depending on config, turns NBSP into a plain space and
// collapses whitespace runs. Nothing else is rewritten, so date text keeps its
// exact characters.
func (n *Normalizer) Text(s string) string {
	if n.cfg.TrimNBSP {
		s = strings.ReplaceAll(s, "\u00a0", " ")
	}
	if n.cfg.CollapseSpaces {
		s = spaceRun.ReplaceAllString(s, " ")
	}
	return strings.TrimSpace(s)
}

// Label is Text plus NFKC folding of full-width and other compatibility
// characters, for display fields such as title and company.
func (n *Normalizer) Label(s string) string {
	if n.cfg.FoldWidth {
		s = norm.NFKC.String(s)
	}
	return n.Text(s)
}

// Link resolves href against the page it was found on, the way a browser
// reports an anchor's href property.
func Link(base, href string) (string, error) {
	href = strings.TrimSpace(href)
	if href == "" {
		return "", fmt.Errorf("empty href")
	}

	ref, err := url.Parse(href)
	if err != nil {
		return "", fmt.Errorf("invalid href %q: %w", href, err)
	}
	if base == "" || ref.IsAbs() {
		return ref.String(), nil
	}

	baseURL, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("invalid base URL %q: %w", base, err)
	}
	return baseURL.ResolveReference(ref).String(), nil
}
