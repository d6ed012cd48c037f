// Package config loads runtime configuration for the derivepass CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via -c or -config.
//  3. Environment variables DERIVEPASS_*, optionally read from a .env file
//     in the working directory (existing variables are not overridden).
//  4. Command-line flags, which override everything else.
//
// Supported flags
//
//	-d string   path of the SQLite database holding the verification record
//	-l int      default password length
//	-s string   default alphabet (characters to draw from)
//	-v string   log level: debug, info, warn, error
//
// # JSON schema
//
//	{
//	  "db_path": "derivepass.db",
//	  "length": 40,
//	  "alphabet": "ABC...xyz0123456789!@#$%^&*()",
//	  "log_level": "info"
//	}
//
// Fields missing from the JSON file keep their previous value.
package config
