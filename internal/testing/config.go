package testing

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/memedex/memedex/internal/config"
)

// NewTestConfig builds a valid configuration pointing at temp directories.
// The YAML round-trip ensures tests exercise the same loading path as the
// application. Overrides are merged into the raw document before loading.
func NewTestConfig(t *testing.T, overrides map[string]any) config.Config {
	t.Helper()

	tmpDir := t.TempDir()

	raw := map[string]any{
		"library": map[string]any{
			"root": tmpDir,
		},
		"database": map[string]any{
			"path": filepath.Join(tmpDir, "test.db"),
		},
		"worker": map[string]any{
			"url":          "http://worker.test:8000",
			"defaultModel": "test",
		},
	}
	for key, value := range overrides {
		raw[key] = value
	}

	data, err := yaml.Marshal(raw)
	require.NoError(t, err, "failed to marshal test config")

	configFile := filepath.Join(tmpDir, "config.yaml")
	require.NoError(t, os.WriteFile(configFile, data, 0644))

	cfg, err := config.Load(config.LoadOptions{ConfigFile: configFile})
	require.NoError(t, err, "failed to load test config")

	return cfg
}
