package config

import (
	"os"

	"github.com/dmitrijs2005/derivepass/internal/common"
)

// Config holds runtime settings for the derivepass CLI.
type Config struct {
	// DBPath is the SQLite file that stores the verification record.
	DBPath string
	// Length and Alphabet seed the form; the user can change both per session.
	Length   int
	Alphabet string
	LogLevel string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DBPath = "derivepass.db"
	c.Length = common.DefaultLength
	c.Alphabet = common.DefaultAlphabet
	c.LogLevel = "info"
}

// clampLength bounds a configured length to [0, common.MaxLength].
func clampLength(n int) int {
	return min(max(0, n), common.MaxLength)
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), the environment and command-line flags. Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	args := os.Args[1:]

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg, args)
	parseEnv(cfg)
	parseFlags(cfg, args)
	return cfg
}
