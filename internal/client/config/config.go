package config

import "time"

// Config holds runtime settings for the SmartScan CLI.
//
// Fields:
//   - LogLevel: minimum slog level (debug, info, warn, error).
//   - Locale: BCP 47 tag used for title ordering in the library view.
//   - ExportDir: directory export files are written to.
//   - Seed: load the demo library on start.
//   - ImportExclude: gitignore-style patterns skipped by folder import.
//   - OCRDelay, SummaryDelay, TagsDelay: simulated assistant latency.
type Config struct {
	LogLevel      string
	Locale        string
	ExportDir     string
	Seed          bool
	ImportExclude []string
	OCRDelay      time.Duration
	SummaryDelay  time.Duration
	TagsDelay     time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.LogLevel = "info"
	c.Locale = "en"
	c.ExportDir = "exports"
	c.Seed = false
	c.ImportExclude = []string{".*"}
	c.OCRDelay = 500 * time.Millisecond
	c.SummaryDelay = 1500 * time.Millisecond
	c.TagsDelay = time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// a config file (if given) and command-line flags (if present). Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseFile(cfg)
	parseFlags(cfg)
	return cfg
}
