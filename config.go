package headlines

import (
	"time"

	"github.com/andybalholm/cascadia"
)

// DefaultSource is the front page digested when no source is given.
const DefaultSource = "https://www.news.com.au/"

// DefaultUserAgent is sent by fetchers that set a user agent.
const DefaultUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/122.0 Safari/537.36"

// Config holds the settings shared by the CLI and the API server.
type Config struct {
	Source       string        `yaml:"source" json:"source"`
	Sources      []string      `yaml:"sources" json:"sources"`
	KeywordLimit int           `yaml:"keywordLimit" json:"keywordLimit"`
	Timeout      time.Duration `yaml:"timeout" json:"timeout"`
	UserAgent    string        `yaml:"userAgent" json:"userAgent"`
	Render       bool          `yaml:"render" json:"render"`
	Concurrency  int           `yaml:"concurrency" json:"concurrency"`
	RateLimit    float64       `yaml:"rateLimit" json:"rateLimit"`
	Addr         string        `yaml:"addr" json:"addr"`
	Layout       Layout        `yaml:"layout" json:"layout"`
}

// Layout names the CSS selectors used to find article blocks and their
// fields. Empty selectors fall back to the extractor's defaults.
type Layout struct {
	Block    string `yaml:"block" json:"block"`
	Category string `yaml:"category" json:"category"`
	Title    string `yaml:"title" json:"title"`
	Summary  string `yaml:"summary" json:"summary"`
	Image    string `yaml:"image" json:"image"`
}

// DefaultConfig returns a Config populated with defaults.
func DefaultConfig() Config {
	return Config{
		Source:       DefaultSource,
		KeywordLimit: DefaultKeywordLimit,
		Timeout:      10 * time.Second,
		UserAgent:    DefaultUserAgent,
		Concurrency:  3,
		RateLimit:    1.0,
		Addr:         ":8080",
	}
}

// Validate returns an error if the config contains invalid fields.
func (c *Config) Validate() error {
	if c.Source == "" {
		return Errorf(EINVALID, "config source required")
	}
	if c.KeywordLimit < 0 {
		return Errorf(EINVALID, "config keyword limit must not be negative")
	}
	if c.Timeout < 0 {
		return Errorf(EINVALID, "config timeout must not be negative")
	}
	if c.Concurrency < 0 {
		return Errorf(EINVALID, "config concurrency must not be negative")
	}
	if c.RateLimit < 0 {
		return Errorf(EINVALID, "config rate limit must not be negative")
	}
	return c.Layout.Validate()
}

// Validate returns EINVALID if a non-empty selector is not valid CSS.
func (l *Layout) Validate() error {
	for _, f := range []struct{ name, selector string }{
		{"block", l.Block},
		{"category", l.Category},
		{"title", l.Title},
		{"summary", l.Summary},
		{"image", l.Image},
	} {
		if f.selector == "" {
			continue
		}
		if _, err := cascadia.Compile(f.selector); err != nil {
			return Errorf(EINVALID, "config layout %s selector %q: %v", f.name, f.selector, err)
		}
	}
	return nil
}
