package config

import (
	"os"
	"testing"

	"github.com/dmitrijs2005/derivepass/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "derivepass.db", c.DBPath)
	assert.Equal(t, 40, c.Length)
	assert.Equal(t, common.DefaultAlphabet, c.Alphabet)
	assert.Equal(t, "info", c.LogLevel)
}

func TestLoadConfig_Precedence(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	noDotenv(t)

	path := writeTempJSON(t, t.TempDir(), "cfg.json", map[string]any{
		"db_path":   "json.db",
		"length":    12,
		"log_level": "debug",
	})
	t.Setenv(envLength, "16")
	t.Setenv(envAlphabet, "xyz")

	os.Args = []string{"derivepass", "-c", path, "-s", "abc"}
	cfg := LoadConfig()

	require.NotNil(t, cfg)
	assert.Equal(t, "json.db", cfg.DBPath, "json overrides defaults")
	assert.Equal(t, 16, cfg.Length, "env overrides json")
	assert.Equal(t, "abc", cfg.Alphabet, "flags override env")
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadConfig_DefaultsOnly(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	noDotenv(t)

	os.Args = []string{"derivepass"}
	cfg := LoadConfig()

	var want Config
	want.LoadDefaults()
	assert.Equal(t, want, *cfg)
}
