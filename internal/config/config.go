package config

import (
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"EnronClassifier/internal/resource"

	"github.com/BurntSushi/toml"
)

//go:embed config.toml
var configFile embed.FS

const (
	EnvConfigPath  = "ENRON_CONFIG"
	EnvResourceDir = "ENRON_RESOURCE_DIR"
	EnvBackendMode = "ENRON_BACKEND_MODE"
	EnvLogLevel    = "ENRON_LOG_LEVEL"
)

type App struct {
	Title  string `toml:"title"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
}

type Backend struct {
	Resource    string `toml:"resource"`
	Mode        string `toml:"mode"`
	ResourceDir string `toml:"resource_dir"`
}

type Crash struct {
	Dir string `toml:"dir"`
}

type Log struct {
	Level string `toml:"level"`
}

type Config struct {
	App     App     `toml:"app"`
	Backend Backend `toml:"backend"`
	Crash   Crash   `toml:"crash"`
	Log     Log     `toml:"log"`
}

// LoadEmbeddedConfig returns the defaults compiled into the binary.
func LoadEmbeddedConfig() (Config, error) {
	var cfg Config
	data, err := configFile.ReadFile("config.toml")
	if err != nil {
		return Config{}, fmt.Errorf("failed to read embedded config: %w", err)
	}
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse embedded config: %w", err)
	}
	return cfg, nil
}

// LoadConfigFromFile overlays filePath on the embedded defaults. Keys absent
// from the file keep their default values.
func LoadConfigFromFile(filePath string) (Config, error) {
	cfg, err := LoadEmbeddedConfig()
	if err != nil {
		return Config{}, err
	}
	md, err := toml.DecodeFile(filePath, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to parse config file %s: %w", filePath, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("unknown keys in %s: %v", filePath, undecoded)
	}
	return cfg, nil
}

// Load reads the embedded defaults, then path (or $ENRON_CONFIG when path is
// empty), then the environment overrides, and validates the result.
func Load(path string) (Config, error) {
	if path == "" {
		path = os.Getenv(EnvConfigPath)
	}

	var (
		cfg Config
		err error
	)
	if path == "" {
		cfg, err = LoadEmbeddedConfig()
	} else {
		cfg, err = LoadConfigFromFile(path)
	}
	if err != nil {
		return Config{}, err
	}

	if dir := os.Getenv(EnvResourceDir); dir != "" {
		cfg.Backend.ResourceDir = dir
	}
	if mode := os.Getenv(EnvBackendMode); mode != "" {
		cfg.Backend.Mode = mode
	}
	if level := os.Getenv(EnvLogLevel); level != "" {
		cfg.Log.Level = level
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error
	if c.Backend.Resource == "" {
		errs = append(errs, errors.New("backend.resource must not be empty"))
	}
	if _, err := resource.ParseMode(c.Backend.Mode); err != nil {
		errs = append(errs, fmt.Errorf("backend.mode: %w", err))
	}
	if c.App.Width <= 0 || c.App.Height <= 0 {
		errs = append(errs, fmt.Errorf("app size must be positive, got %dx%d", c.App.Width, c.App.Height))
	}
	return errors.Join(errs...)
}

// ResourceMode returns the parsed backend mode. Validate must have passed.
func (c Config) ResourceMode() resource.Mode {
	mode, _ := resource.ParseMode(c.Backend.Mode)
	return mode
}

// CrashDir falls back to the user cache directory when no dir is configured.
func (c Config) CrashDir() string {
	if c.Crash.Dir != "" {
		return c.Crash.Dir
	}
	if dir, err := os.UserCacheDir(); err == nil {
		return filepath.Join(dir, "EnronClassifier", "crash_reports")
	}
	return filepath.Join(os.TempDir(), "EnronClassifier", "crash_reports")
}
