package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/smartscan/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-l string   log level (default from Config)
//	-g string   locale for title ordering (default from Config)
//	-e string   export directory (default from Config)
//	-s          seed the library with demo documents
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:],
		flagx.Value("l"), flagx.Value("g"), flagx.Value("e"), flagx.Bool("s"))

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level: debug, info, warn or error")
	fs.StringVar(&cfg.Locale, "g", cfg.Locale, "locale used to order titles")
	fs.StringVar(&cfg.ExportDir, "e", cfg.ExportDir, "directory for exported documents")
	fs.BoolVar(&cfg.Seed, "s", cfg.Seed, "seed the library with demo documents")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
