package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/smartscan/internal/flagx"
	"github.com/dmitrijs2005/smartscan/internal/timex"
	"gopkg.in/yaml.v3"
)

// FileConfig is a DTO used exclusively for config file unmarshalling.
// Pointer fields distinguish keys missing from the file, which keep the
// current value, from keys set to a zero value. Durations use
// timex.Duration so they can be strings like "1.5s" or integer nanoseconds.
type FileConfig struct {
	LogLevel      *string         `json:"log_level" yaml:"log_level"`
	Locale        *string         `json:"locale" yaml:"locale"`
	ExportDir     *string         `json:"export_dir" yaml:"export_dir"`
	Seed          *bool           `json:"seed" yaml:"seed"`
	ImportExclude []string        `json:"import_exclude" yaml:"import_exclude"`
	OCRDelay      *timex.Duration `json:"ocr_delay" yaml:"ocr_delay"`
	SummaryDelay  *timex.Duration `json:"summary_delay" yaml:"summary_delay"`
	TagsDelay     *timex.Duration `json:"tags_delay" yaml:"tags_delay"`
}

// parseFile overlays Config with values loaded from the file named by -c or
// -config. Files ending in .yaml or .yml are read as YAML, anything else as
// JSON. Without either flag nothing is loaded.
//
// Panics on read or unmarshal errors.
//
// Intended usage is: defaults -> parseFile -> parseFlags, where later stages
// override earlier ones.
func parseFile(cfg *Config) {
	path := flagx.ConfigPath(os.Args[1:])
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var fc FileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fc)
	default:
		err = json.Unmarshal(data, &fc)
	}
	if err != nil {
		panic(err)
	}

	fc.apply(cfg)
}

func (fc FileConfig) apply(cfg *Config) {
	if fc.LogLevel != nil {
		cfg.LogLevel = *fc.LogLevel
	}
	if fc.Locale != nil {
		cfg.Locale = *fc.Locale
	}
	if fc.ExportDir != nil {
		cfg.ExportDir = *fc.ExportDir
	}
	if fc.Seed != nil {
		cfg.Seed = *fc.Seed
	}
	if fc.ImportExclude != nil {
		cfg.ImportExclude = fc.ImportExclude
	}
	if fc.OCRDelay != nil {
		cfg.OCRDelay = fc.OCRDelay.Duration
	}
	if fc.SummaryDelay != nil {
		cfg.SummaryDelay = fc.SummaryDelay.Duration
	}
	if fc.TagsDelay != nil {
		cfg.TagsDelay = fc.TagsDelay.Duration
	}
}
