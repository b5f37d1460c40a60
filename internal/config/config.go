// Package config provides configuration management for udh using Viper.
package config

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/viper"

	"github.com/sandy081/userdata-history/internal/errors"
	"github.com/sandy081/userdata-history/internal/paths"
)

// AppName is the application name used for config file naming.
const AppName = "udh"

// DefaultWatchDebounce is how long the watcher waits after the last
// file event before capturing a snapshot.
const DefaultWatchDebounce = 500 * time.Millisecond

// Config represents the top-level configuration structure.
type Config struct {
	Version    int                         `mapstructure:"version" yaml:"version"`
	BackupRoot string                      `mapstructure:"backup_root" yaml:"backup_root"`
	SyncRoot   string                      `mapstructure:"sync_root" yaml:"sync_root"`
	Resources  map[string]ResourceOverride `mapstructure:"resources" yaml:"resources"`
	Watch      WatchConfig                 `mapstructure:"watch" yaml:"watch"`
}

// ResourceOverride contains configuration overrides for a tracked resource.
type ResourceOverride struct {
	// Path overrides the live configuration file location.
	Path string `mapstructure:"path" yaml:"path"`
}

// WatchConfig configures the file watcher.
type WatchConfig struct {
	// Debounce is how long to wait after the last change event before
	// capturing a snapshot.
	Debounce time.Duration `mapstructure:"debounce" yaml:"debounce"`
}

// Init initializes Viper with default configuration.
// Call this once at application startup before accessing config values.
func Init() {
	// Config file settings
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Search paths (in order of precedence)
	viper.AddConfigPath(".") // Current directory
	viper.AddConfigPath(paths.AppConfigDir())

	// Environment variable support
	viper.SetEnvPrefix("UDH")
	viper.AutomaticEnv()

	// Defaults
	viper.SetDefault("version", 1)
	viper.SetDefault("backup_root", paths.BackupRoot())
	viper.SetDefault("sync_root", paths.SyncRoot())
	viper.SetDefault("watch.debounce", DefaultWatchDebounce)
}

// Load reads the configuration file.
// If path is provided, it reads from that specific file.
// If path is empty, it searches in the default locations.
// Returns the loaded configuration or default values if no file is found (when path is empty).
func Load(path string) (*Config, error) {
	if path != "" {
		viper.SetConfigFile(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		// If config file not found...
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// If user specified a path, this is an error
			if path != "" {
				return nil, fmt.Errorf("config file not found at %s: %w", path, err)
			}
			// Otherwise (implicit load), it's fine to use defaults
		} else {
			// Real read error (parsing, permissions, etc)
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the loaded values for contradictions a typo in the
// config file could introduce.
func (c *Config) Validate() error {
	if c.Version > 1 {
		return errors.Wrapf(errors.ErrInvalidConfig, "unsupported config version %d", c.Version)
	}
	if c.Watch.Debounce < 0 {
		return errors.Wrapf(errors.ErrInvalidConfig, "watch.debounce must not be negative, got %s", c.Watch.Debounce)
	}
	return nil
}

// Default returns a configuration populated with default values.
func Default() *Config {
	return &Config{
		Version:    1,
		BackupRoot: paths.BackupRoot(),
		SyncRoot:   paths.SyncRoot(),
		Resources: map[string]ResourceOverride{
			"settings":    {Path: paths.LiveFile("settings")},
			"keybindings": {Path: paths.LiveFile("keybindings")},
		},
		Watch: WatchConfig{Debounce: DefaultWatchDebounce},
	}
}

// DefaultPath returns the default config file location.
func DefaultPath() string {
	return filepath.Join(paths.AppConfigDir(), "config.yaml")
}
