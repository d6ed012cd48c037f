package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/derivepass/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Pointer
// fields distinguish "absent" from zero values.
type JsonConfig struct {
	DBPath   *string `json:"db_path"`
	Length   *int    `json:"length"`
	Alphabet *string `json:"alphabet"`
	LogLevel *string `json:"log_level"`
}

// parseJson overlays cfg with values loaded from the JSON file named by
// -c/-config in args. Without the flag it does nothing.
//
// Panics on read or unmarshal errors (caller should recover if desired).
func parseJson(cfg *Config, args []string) {
	path := flagx.ConfigFileFlag(args)
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DBPath != nil {
		cfg.DBPath = *jc.DBPath
	}
	if jc.Length != nil {
		cfg.Length = clampLength(*jc.Length)
	}
	if jc.Alphabet != nil {
		cfg.Alphabet = *jc.Alphabet
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
}
