// Package config provides application configuration.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Default configuration values.
const (
	DefaultCheckInterval    = 5 * time.Minute
	DefaultFailureThreshold = 3
	DefaultFailureTTL       = time.Hour
	DefaultWorkerTimeout    = 30 * time.Second
	DefaultModel            = "Florence-2-base"
)

// Config is the application configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Library  LibraryConfig  `mapstructure:"library"`
	Database DatabaseConfig `mapstructure:"database"`
	Scanner  ScannerConfig  `mapstructure:"scanner"`
	Worker   WorkerConfig   `mapstructure:"worker"`
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Listen string `mapstructure:"listen"`
}

// LibraryConfig holds the image library location.
type LibraryConfig struct {
	Root string `mapstructure:"root"` // Each watched directory is a subdirectory of Root
}

// DatabaseConfig holds database configuration.
type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

// ScannerConfig holds scan-scheduler configuration.
type ScannerConfig struct {
	CheckInterval    time.Duration `mapstructure:"checkInterval"`    // How often due directories are looked up
	FailureThreshold int           `mapstructure:"failureThreshold"` // Consecutive whole-pass failures before the loop stops
	FailureTTL       time.Duration `mapstructure:"failureTTL"`       // Age after which the failure counter resets on its own
}

// WorkerConfig holds configuration for the captioning worker.
type WorkerConfig struct {
	URL          string        `mapstructure:"url"`
	HTTPTimeout  time.Duration `mapstructure:"httpTimeout"`
	DefaultModel string        `mapstructure:"defaultModel"`
}

// LoadOptions configures how configuration is loaded.
type LoadOptions struct {
	// ConfigFile is an explicit config file path. If empty, default locations are searched.
	ConfigFile string
}

// Load reads configuration from file and environment variables.
// If opts.ConfigFile is set, that file is used directly. Otherwise default
// locations are searched: $HOME, current directory, /config for files named
// .memedex.yaml, memedex.yaml, or config.yaml.
//
// Environment variables with prefix MEMEDEX_ override config file values.
func Load(opts LoadOptions) (Config, error) {
	v := viper.NewWithOptions(viper.ExperimentalBindStruct())

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			v.AddConfigPath(home)
		}
		v.AddConfigPath(".")
		v.AddConfigPath("/config")
		v.SetConfigType("yaml")
		v.SetConfigName(".memedex")
		v.SetConfigName("memedex")
		v.SetConfigName("config")
	}

	// Environment variables
	v.SetEnvPrefix("MEMEDEX")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Set defaults
	v.SetDefault("server.listen", "[::]:8712")
	v.SetDefault("database.path", "memedex.db")
	v.SetDefault("scanner.checkInterval", "5m")
	v.SetDefault("scanner.failureThreshold", DefaultFailureThreshold)
	v.SetDefault("scanner.failureTTL", "1h")
	v.SetDefault("worker.httpTimeout", "30s")
	v.SetDefault("worker.defaultModel", DefaultModel)

	// Read config file (ignore error if not found)
	_ = v.ReadInConfig()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}

	if err := validate(&cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Models the captioning worker knows how to load.
//
//nolint:gochecknoglobals // validation lookup table
var validModels = map[string]bool{
	"test":                  true,
	"Florence-2-base":       true,
	"Florence-2-large":      true,
	"SmolVLM-256M-Instruct": true,
	"SmolVLM-500M-Instruct": true,
	"moondream2":            true,
}

// ValidModel reports whether the captioning worker accepts the given model name.
func ValidModel(name string) bool {
	return validModels[name]
}

// validate checks that the configuration is valid.
func validate(cfg *Config) error {
	var errs []error

	if cfg.Library.Root == "" {
		errs = append(errs, errors.New("library.root is required"))
	}

	if cfg.Database.Path == "" {
		errs = append(errs, errors.New("database.path is required"))
	}

	if cfg.Worker.URL == "" {
		errs = append(errs, errors.New("worker.url is required"))
	} else if _, err := url.Parse(cfg.Worker.URL); err != nil {
		errs = append(errs, fmt.Errorf("worker.url: invalid url: %w", err))
	}

	if !ValidModel(cfg.Worker.DefaultModel) {
		errs = append(errs, fmt.Errorf("worker.defaultModel: unknown model %q", cfg.Worker.DefaultModel))
	}

	if cfg.Scanner.CheckInterval <= 0 {
		errs = append(errs, errors.New("scanner.checkInterval must be positive"))
	}
	if cfg.Scanner.FailureThreshold < 1 {
		errs = append(errs, errors.New("scanner.failureThreshold must be at least 1"))
	}
	if cfg.Scanner.FailureTTL <= 0 {
		errs = append(errs, errors.New("scanner.failureTTL must be positive"))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}
