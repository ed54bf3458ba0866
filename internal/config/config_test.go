package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridroute/gridio"
)

// clearEnv unsets every GRIDROUTE_* variable for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{EnvMaxWeight, EnvLegacyBounds, EnvLogLevel, EnvMaxCells} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))

	return p
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, gridio.BoundsStrict, cfg.Bounds())
}

func TestLoad_TOML(t *testing.T) {
	clearEnv(t)
	p := writeFile(t, "gridroute.toml", "max_weight = 15\nlegacy_bounds = true\nlog_level = \"debug\"\n")

	cfg, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, 15, cfg.MaxWeight)
	assert.True(t, cfg.LegacyBounds)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, gridio.BoundsLegacy, cfg.Bounds())
}

func TestLoad_TOMLErrors(t *testing.T) {
	clearEnv(t)
	cases := map[string]string{
		"Syntax":     "max_weight = = 3",
		"UnknownKey": "max_wieght = 3",
		"BadWeight":  "max_weight = 0",
		"HugeWeight": "max_weight = 9223372036854775807",
		"BadLevel":   "log_level = \"loud\"",
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeFile(t, "c.toml", content))
			require.ErrorIs(t, err, ErrInvalidConfig)
		})
	}

	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	clearEnv(t)
	p := writeFile(t, "c.toml", "max_weight = 15\n")
	t.Setenv(EnvMaxWeight, "12")
	t.Setenv(EnvLegacyBounds, "true")
	t.Setenv(EnvLogLevel, " WARN ")

	cfg, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.MaxWeight)
	assert.True(t, cfg.LegacyBounds)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoad_EnvErrors(t *testing.T) {
	for _, kv := range [][2]string{
		{EnvMaxWeight, "nine"},
		{EnvMaxWeight, "1099511627776"},
		{EnvMaxCells, "many"},
		{EnvLegacyBounds, "maybe"},
	} {
		t.Run(kv[0], func(t *testing.T) {
			clearEnv(t)
			t.Setenv(kv[0], kv[1])
			_, err := Load("")
			require.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestLoad_EnvFile(t *testing.T) {
	clearEnv(t)
	env := writeFile(t, "test.env", "GRIDROUTE_MAX_WEIGHT=20\nGRIDROUTE_MAX_CELLS=100\n")

	cfg, err := Load("", env)
	require.NoError(t, err)
	assert.Equal(t, 20, cfg.MaxWeight)
	assert.Equal(t, 100, cfg.MaxCells)

	_, err = Load("", filepath.Join(t.TempDir(), "absent.env"))
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestReadOptions(t *testing.T) {
	cfg := Default()
	cfg.LegacyBounds = true
	cfg.MaxWeight = 4

	var o gridio.Options
	for _, opt := range cfg.ReadOptions() {
		opt(&o)
	}
	assert.Equal(t, gridio.Options{Bounds: gridio.BoundsLegacy, MaxWeight: 4, MaxCells: gridio.DefaultMaxCells}, o)
}
