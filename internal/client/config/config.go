// Package config handles configuration for the terminal client: defaults,
// JSON overlay, and command-line flags.
package config

import "time"

// Config holds runtime settings for the terminal CLI.
//
// Fields:
//   - ServerURL: base URL of the backend HTTP API.
//   - DatabasePath: sqlite file for preferences and the saved session.
//   - SearchURL: search engine prefix the `search` command opens.
//   - BootSequence: whether the startup messages and loading bar play.
//   - MacroStepDelay: pause between replayed macro steps.
//   - RequestTimeout: per-request timeout for API calls.
type Config struct {
	ServerURL      string
	DatabasePath   string
	SearchURL      string
	BootSequence   bool
	MacroStepDelay time.Duration
	RequestTimeout time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerURL = "http://127.0.0.1:8080"
	c.DatabasePath = "terminal.db"
	c.SearchURL = "https://www.google.com/search?q="
	c.BootSequence = true
	c.MacroStepDelay = time.Second
	c.RequestTimeout = 90 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
