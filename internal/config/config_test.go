package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/memedex/memedex/internal/config"
)

// loadConfigFromYAML creates a temp config file and loads it using Load().
// This ensures tests use the exact same config loading code as the application.
func loadConfigFromYAML(t *testing.T, yaml string) config.Config {
	t.Helper()

	tmpDir := t.TempDir()
	configFile := filepath.Join(tmpDir, "config.yaml")

	err := os.WriteFile(configFile, []byte(yaml), 0644)
	require.NoError(t, err, "failed to write temp config file")

	cfg, err := config.Load(config.LoadOptions{ConfigFile: configFile})
	require.NoError(t, err, "failed to load config")

	return cfg
}

// minimalYAML is the smallest config that passes validation.
const minimalYAML = `
library:
  root: /library
worker:
  url: http://worker:8000
`

func TestConfigDefaults(t *testing.T) {
	cfg := loadConfigFromYAML(t, minimalYAML)

	assert.Equal(t, "[::]:8712", cfg.Server.Listen)
	assert.Equal(t, "memedex.db", cfg.Database.Path)
	assert.Equal(t, 5*time.Minute, cfg.Scanner.CheckInterval)
	assert.Equal(t, 3, cfg.Scanner.FailureThreshold)
	assert.Equal(t, time.Hour, cfg.Scanner.FailureTTL)
	assert.Equal(t, 30*time.Second, cfg.Worker.HTTPTimeout)
	assert.Equal(t, "Florence-2-base", cfg.Worker.DefaultModel)
}

func TestConfigOverrides(t *testing.T) {
	cfg := loadConfigFromYAML(t, `
server:
  listen: "0.0.0.0:9000"
library:
  root: /data/memes
database:
  path: /data/memedex.db
scanner:
  checkInterval: 1m
  failureThreshold: 5
  failureTTL: 30m
worker:
  url: http://captioner:8000
  httpTimeout: 10s
  defaultModel: moondream2
`)

	assert.Equal(t, "0.0.0.0:9000", cfg.Server.Listen)
	assert.Equal(t, "/data/memes", cfg.Library.Root)
	assert.Equal(t, "/data/memedex.db", cfg.Database.Path)
	assert.Equal(t, time.Minute, cfg.Scanner.CheckInterval)
	assert.Equal(t, 5, cfg.Scanner.FailureThreshold)
	assert.Equal(t, 30*time.Minute, cfg.Scanner.FailureTTL)
	assert.Equal(t, "http://captioner:8000", cfg.Worker.URL)
	assert.Equal(t, 10*time.Second, cfg.Worker.HTTPTimeout)
	assert.Equal(t, "moondream2", cfg.Worker.DefaultModel)
}

func TestConfigValidation(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name: "missing library root",
			yaml: `
worker:
  url: http://worker:8000
`,
			wantErr: "library.root is required",
		},
		{
			name: "missing worker url",
			yaml: `
library:
  root: /library
`,
			wantErr: "worker.url is required",
		},
		{
			name: "unknown model",
			yaml: minimalYAML + `
  defaultModel: gpt-vision
`,
			wantErr: "unknown model",
		},
		{
			name: "zero check interval",
			yaml: minimalYAML + `
scanner:
  checkInterval: 0s
`,
			wantErr: "checkInterval must be positive",
		},
		{
			name: "zero failure threshold",
			yaml: minimalYAML + `
scanner:
  failureThreshold: 0
`,
			wantErr: "failureThreshold must be at least 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			configFile := filepath.Join(tmpDir, "config.yaml")
			require.NoError(t, os.WriteFile(configFile, []byte(tt.yaml), 0644))

			_, err := config.Load(config.LoadOptions{ConfigFile: configFile})
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("MEMEDEX_SERVER_LISTEN", "127.0.0.1:7777")

	cfg := loadConfigFromYAML(t, minimalYAML)
	assert.Equal(t, "127.0.0.1:7777", cfg.Server.Listen)
}

func TestValidModel(t *testing.T) {
	assert.True(t, config.ValidModel("Florence-2-base"))
	assert.True(t, config.ValidModel("test"))
	assert.False(t, config.ValidModel("unknown"))
	assert.False(t, config.ValidModel(""))
}
