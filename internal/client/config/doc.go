// Package config loads runtime configuration for the SmartScan CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON or YAML file (see parseFile) selected via -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-l string   log level (debug, info, warn, error)
//	-g string   locale used to order titles, e.g. "en" or "de"
//	-e string   export directory
//	-s          seed the library with demo documents
//
// # File schema
//
// Files ending in .yaml or .yml are read as YAML, anything else as JSON; the
// keys are the same. Import exclusions and assistant delays are only
// configurable from a file. Delays use timex.Duration, so values can be
// strings like "1.5s" or integer nanoseconds. Keys left out keep their
// default:
//
//	{
//	  "log_level": "debug",
//	  "locale": "en",
//	  "export_dir": "exports",
//	  "seed": true,
//	  "import_exclude": [".*", "raw/"],
//	  "ocr_delay": "500ms",
//	  "summary_delay": "1.5s",
//	  "tags_delay": "1s"
//	}
//
// This package does not read environment variables.
package config
