package cli_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/selectkit/internal/config"
)

func TestConfigInit_Global(t *testing.T) {
	home := setupCLITest(t)

	out, _, err := run(t, "", "config", "init")
	require.NoError(t, err)
	assert.Contains(t, out, "Configuration initialized successfully")

	path := filepath.Join(home, "config.yaml")
	_, statErr := os.Stat(path)
	require.NoError(t, statErr)

	config.ResetGlobalConfigForTest()
	_, _, err = run(t, "", "config", "init")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	config.ResetGlobalConfigForTest()
	_, _, err = run(t, "", "config", "init", "--force")
	require.NoError(t, err)
}

func TestConfigInit_Project(t *testing.T) {
	setupCLITest(t)
	dir := t.TempDir()
	t.Chdir(dir)

	out, _, err := run(t, "", "config", "init", "--project")
	require.NoError(t, err)
	assert.Contains(t, out, config.ProjectConfigName)

	_, statErr := os.Stat(filepath.Join(dir, config.ProjectConfigName))
	require.NoError(t, statErr)
}

func TestConfig_ProjectOverlayApplies(t *testing.T) {
	setupCLITest(t)
	dir := t.TempDir()
	overlay := "search:\n  fields: [code]\n  highlight_class: project-hit\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.ProjectConfigName), []byte(overlay), 0o600))

	sub := filepath.Join(dir, "nested")
	require.NoError(t, os.Mkdir(sub, 0o750))
	t.Chdir(sub)

	out, _, err := run(t, "", "config", "show", "-o", "json")
	require.NoError(t, err)

	var shown config.Config
	require.NoError(t, json.Unmarshal([]byte(out), &shown))
	assert.Equal(t, []string{"code"}, shown.Search.Fields)
	assert.Equal(t, "project-hit", shown.Search.HighlightClass)
	assert.Equal(t, config.DefaultDecimals, shown.Display.Decimals, "sections absent from the overlay keep their values")
}

func TestConfig_ExplicitPath(t *testing.T) {
	setupCLITest(t)
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output:\n  default_format: json\n"), 0o600))

	out, _, err := run(t, "", "--config", path, "config", "validate", "--verbose")
	require.NoError(t, err)
	assert.Contains(t, out, "Configuration is valid")
	assert.Contains(t, out, "Output format: json")
	assert.Contains(t, out, "Config file: "+path)
}

func TestConfigValidate_Invalid(t *testing.T) {
	setupCLITest(t)
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("scroll:\n  item_height: -5\n"), 0o600))

	_, _, err := run(t, "", "--config", path, "config", "validate")
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestConfig_UnsupportedVersion(t *testing.T) {
	setupCLITest(t)
	path := filepath.Join(t.TempDir(), "future.yaml")
	require.NoError(t, os.WriteFile(path, []byte("version: 2.0.0\n"), 0o600))

	_, _, err := run(t, "", "--config", path, "config", "show")
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrUnsupportedVersion)
}

func TestCacheCommands(t *testing.T) {
	setupCLITest(t)
	file := writeProducts(t)

	_, _, err := run(t, "", "search", file, "-q", "apple")
	require.NoError(t, err)

	config.ResetGlobalConfigForTest()
	out, _, err := run(t, "", "cache", "stats", "-o", "json")
	require.NoError(t, err)
	var stats struct {
		Entries    int `json:"entries"`
		TTLSeconds int `json:"ttl_seconds"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &stats))
	assert.Equal(t, 1, stats.Entries)

	config.ResetGlobalConfigForTest()
	out, _, err = run(t, "", "cache", "stats")
	require.NoError(t, err)
	assert.Contains(t, out, "Entries:   1 (0 expired)")
	assert.Contains(t, out, "TTL:")

	config.ResetGlobalConfigForTest()
	out, _, err = run(t, "", "cache", "cleanup")
	require.NoError(t, err)
	assert.Contains(t, out, "Removed 0 expired entries")

	config.ResetGlobalConfigForTest()
	out, _, err = run(t, "", "cache", "clear")
	require.NoError(t, err)
	assert.Contains(t, out, "Cache cleared")

	config.ResetGlobalConfigForTest()
	out, _, err = run(t, "", "cache", "stats", "-o", "json")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &stats))
	assert.Equal(t, 0, stats.Entries)
}

func TestCacheCommands_Disabled(t *testing.T) {
	setupCLITest(t)
	t.Setenv("SELECTKIT_CACHE_ENABLED", "false")

	out, _, err := run(t, "", "cache", "stats")
	require.NoError(t, err)
	assert.Contains(t, out, "Cache is disabled")
}
