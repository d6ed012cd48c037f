package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	envDBPath   = "DERIVEPASS_DB"
	envLength   = "DERIVEPASS_LENGTH"
	envAlphabet = "DERIVEPASS_ALPHABET"
	envLogLevel = "DERIVEPASS_LOG_LEVEL"
)

// dotenvFiles lists the optional env files read before the environment.
var dotenvFiles = []string{".env"}

// parseEnv overlays cfg with DERIVEPASS_* variables. A missing .env file is
// not an error; a malformed one panics. Unparsable numbers are ignored.
func parseEnv(cfg *Config) {
	for _, f := range dotenvFiles {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			panic(err)
		}
	}

	if v, ok := os.LookupEnv(envDBPath); ok && v != "" {
		cfg.DBPath = v
	}
	if v, ok := os.LookupEnv(envLength); ok {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Length = clampLength(n)
		}
	}
	if v, ok := os.LookupEnv(envAlphabet); ok && v != "" {
		cfg.Alphabet = v
	}
	if v, ok := os.LookupEnv(envLogLevel); ok && v != "" {
		cfg.LogLevel = v
	}
}
