package config

import (
	"os"
	"path/filepath"
	"testing"

	"EnronClassifier/internal/resource"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Setenv(EnvConfigPath, "")
	t.Setenv(EnvResourceDir, "")
	t.Setenv(EnvBackendMode, "")
	t.Setenv(EnvLogLevel, "")
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "enron.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadEmbeddedConfig(t *testing.T) {
	cfg, err := LoadEmbeddedConfig()
	require.NoError(t, err)

	assert.Equal(t, "Enron Classifier", cfg.App.Title)
	assert.Equal(t, "bin/flask-backend", cfg.Backend.Resource)
	assert.Empty(t, cfg.Backend.Mode)
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, resource.DefaultMode, cfg.ResourceMode())
}

func TestLoadConfigFromFileOverlaysDefaults(t *testing.T) {
	path := writeConfig(t, `
[backend]
mode = "development"
resource_dir = "/srv/enron/resources"
`)

	cfg, err := LoadConfigFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "development", cfg.Backend.Mode)
	assert.Equal(t, "/srv/enron/resources", cfg.Backend.ResourceDir)
	assert.Equal(t, "bin/flask-backend", cfg.Backend.Resource)
	assert.Equal(t, 1280, cfg.App.Width)
}

func TestLoadConfigFromFileErrors(t *testing.T) {
	_, err := LoadConfigFromFile(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)

	_, err = LoadConfigFromFile(writeConfig(t, "[backend\n"))
	assert.Error(t, err)

	_, err = LoadConfigFromFile(writeConfig(t, "[backend]\nport = 5000\n"))
	assert.ErrorContains(t, err, "unknown keys")
}

func TestLoadEnvOverrides(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "[backend]\nmode = \"packaged\"\n")
	t.Setenv(EnvConfigPath, path)
	t.Setenv(EnvResourceDir, "/opt/enron")
	t.Setenv(EnvBackendMode, "dev")
	t.Setenv(EnvLogLevel, "debug")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/opt/enron", cfg.Backend.ResourceDir)
	assert.Equal(t, resource.Development, cfg.ResourceMode())
}

func TestLoadExplicitPathWins(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvConfigPath, filepath.Join(t.TempDir(), "ignored.toml"))
	path := writeConfig(t, "[app]\ntitle = \"Inbox\"\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Inbox", cfg.App.Title)
}

func TestValidate(t *testing.T) {
	base, err := LoadEmbeddedConfig()
	require.NoError(t, err)

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty resource", func(c *Config) { c.Backend.Resource = "" }},
		{"bad mode", func(c *Config) { c.Backend.Mode = "staging" }},
		{"zero width", func(c *Config) { c.App.Width = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}

	clearEnv(t)
	t.Setenv(EnvBackendMode, "staging")
	_, err = Load("")
	assert.Error(t, err)
}

func TestCrashDir(t *testing.T) {
	cfg := Config{Crash: Crash{Dir: "/var/crash/enron"}}
	assert.Equal(t, "/var/crash/enron", cfg.CrashDir())

	cfg.Crash.Dir = ""
	assert.Contains(t, cfg.CrashDir(), filepath.Join("EnronClassifier", "crash_reports"))
}
