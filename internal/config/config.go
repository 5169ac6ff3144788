// ABOUTME: Configuration management for cocktail with YAML config loading.
// ABOUTME: Handles recipe API settings, storage backend selection, and ~ expansion.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/2389-research/cocktail/internal/storage"
)

const (
	defaultAPIURL     = "https://www.thecocktaildb.com/api/json/v1"
	defaultAPIKey     = "1"
	defaultTimeout    = 10 * time.Second
	defaultRetries    = 1
	defaultRate       = 5
	defaultRedisAddr  = "localhost:6379"
	defaultUndoWindow = 2 * time.Second
	defaultLogLevel   = "info"
)

// Config stores cocktail configuration loaded from ~/.config/cocktail/config.yaml.
type Config struct {
	API       APIConfig       `yaml:"api"`
	Storage   StorageConfig   `yaml:"storage"`
	Favorites FavoritesConfig `yaml:"favorites"`
	Share     ShareConfig     `yaml:"share"`
	Log       LogConfig       `yaml:"log"`
}

// APIConfig holds recipe provider settings.
type APIConfig struct {
	URL           string        `yaml:"url,omitempty"`
	Key           string        `yaml:"key,omitempty"`
	Timeout       time.Duration `yaml:"timeout,omitempty"`
	Retries       *int          `yaml:"retries,omitempty"`
	RatePerSecond float64       `yaml:"rate_per_second,omitempty"`
}

// StorageConfig selects where favorites are persisted.
type StorageConfig struct {
	Backend       string `yaml:"backend,omitempty"`
	DataDir       string `yaml:"data_dir,omitempty"`
	RedisAddr     string `yaml:"redis_addr,omitempty"`
	RedisPassword string `yaml:"redis_password,omitempty"`
	RedisDB       int    `yaml:"redis_db,omitempty"`
}

// FavoritesConfig holds favorites store tuning.
type FavoritesConfig struct {
	UndoWindow time.Duration `yaml:"undo_window,omitempty"`
}

// ShareConfig holds the base URL used to build share links.
type ShareConfig struct {
	BaseURL string `yaml:"base_url,omitempty"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `yaml:"level,omitempty"`
}

// GetAPIURL returns the provider base URL.
func (c *Config) GetAPIURL() string {
	if c.API.URL != "" {
		return c.API.URL
	}
	return defaultAPIURL
}

// GetAPIKey returns the provider API key.
func (c *Config) GetAPIKey() string {
	if c.API.Key != "" {
		return c.API.Key
	}
	return defaultAPIKey
}

// GetTimeout returns the per-request provider timeout.
func (c *Config) GetTimeout() time.Duration {
	if c.API.Timeout > 0 {
		return c.API.Timeout
	}
	return defaultTimeout
}

// GetRetries returns how many times a failed provider request is retried.
func (c *Config) GetRetries() int {
	if c.API.Retries != nil && *c.API.Retries >= 0 {
		return *c.API.Retries
	}
	return defaultRetries
}

// GetRatePerSecond returns the provider request rate cap.
func (c *Config) GetRatePerSecond() float64 {
	if c.API.RatePerSecond > 0 {
		return c.API.RatePerSecond
	}
	return defaultRate
}

// GetUndoWindow returns how long a bulk clear stays undoable.
func (c *Config) GetUndoWindow() time.Duration {
	if c.Favorites.UndoWindow > 0 {
		return c.Favorites.UndoWindow
	}
	return defaultUndoWindow
}

// GetLogLevel returns the configured log level.
func (c *Config) GetLogLevel() string {
	if c.Log.Level != "" {
		return c.Log.Level
	}
	return defaultLogLevel
}

// GetDataDir returns the favorites data directory, defaulting to $XDG_DATA_HOME/cocktail.
func (c *Config) GetDataDir() (string, error) {
	if c.Storage.DataDir != "" {
		return ExpandPath(c.Storage.DataDir)
	}
	return DataDir()
}

// StorageOptions converts the storage section into backend open options.
func (c *Config) StorageOptions() (storage.OpenOptions, error) {
	opts := storage.OpenOptions{
		Backend:       c.Storage.Backend,
		RedisAddr:     c.Storage.RedisAddr,
		RedisPassword: c.Storage.RedisPassword,
		RedisDB:       c.Storage.RedisDB,
	}
	if opts.Backend == "" {
		opts.Backend = storage.BackendFile
	}
	switch opts.Backend {
	case storage.BackendFile:
		dir, err := c.GetDataDir()
		if err != nil {
			return storage.OpenOptions{}, err
		}
		opts.DataDir = dir
	case storage.BackendRedis:
		if opts.RedisAddr == "" {
			opts.RedisAddr = defaultRedisAddr
		}
	}
	return opts, nil
}

// DataDir returns the default cocktail data directory.
func DataDir() (string, error) {
	dataDir := os.Getenv("XDG_DATA_HOME")
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataDir, "cocktail"), nil
}

// GetConfigPath returns the config file path.
func GetConfigPath() (string, error) {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		configDir = filepath.Join(home, ".config")
	}
	return filepath.Join(configDir, "cocktail", "config.yaml"), nil
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	if path == "~" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		return home, nil
	}
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		return filepath.Join(home, path[2:]), nil
	}
	return path, nil
}

// Load reads config from disk. Returns default config if file doesn't exist.
func Load() (*Config, error) {
	path, err := GetConfigPath()
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &cfg, nil
}

// Save writes config to disk.
func (c *Config) Save() error {
	path, err := GetConfigPath()
	if err != nil {
		return err
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
