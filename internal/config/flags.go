package config

import (
	"flag"

	"github.com/dmitrijs2005/derivepass/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-d string   database path
//	-l int      default password length (clamped to [0, common.MaxLength])
//	-s string   default alphabet
//	-v string   log level
//
// args is filtered with flagx.FilterArgs so flags owned by other parsers
// (-c/-config) do not interfere.
func parseFlags(cfg *Config, args []string) {
	args = flagx.FilterArgs(args, []string{"-d", "-l", "-s", "-v"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DBPath, "d", cfg.DBPath, "path to the local database")
	fs.IntVar(&cfg.Length, "l", cfg.Length, "default password length")
	fs.StringVar(&cfg.Alphabet, "s", cfg.Alphabet, "default alphabet")
	fs.StringVar(&cfg.LogLevel, "v", cfg.LogLevel, "log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.Length = clampLength(cfg.Length)
}
