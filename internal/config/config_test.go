// ABOUTME: Tests for cocktail configuration loading and path expansion.
// ABOUTME: Covers YAML parsing, defaults, path expansion, and storage options.
package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/2389-research/cocktail/internal/storage"
)

func TestExpandPath(t *testing.T) {
	home, _ := os.UserHomeDir()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty", "", ""},
		{"tilde only", "~", home},
		{"tilde slash", "~/foo/bar", filepath.Join(home, "foo", "bar")},
		{"absolute", "/tmp/foo", "/tmp/foo"},
		{"relative", "foo/bar", "foo/bar"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExpandPath(tt.input)
			if err != nil {
				t.Fatalf("ExpandPath(%q) error: %v", tt.input, err)
			}
			if got != tt.expected {
				t.Errorf("ExpandPath(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestLoadDefaultConfig(t *testing.T) {
	// Set config path to a non-existent location
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.GetAPIURL() != defaultAPIURL {
		t.Errorf("expected default api url, got %q", cfg.GetAPIURL())
	}
	if cfg.GetAPIKey() != "1" {
		t.Errorf("expected default api key '1', got %q", cfg.GetAPIKey())
	}
	if cfg.GetUndoWindow() != 2*time.Second {
		t.Errorf("expected 2s undo window, got %v", cfg.GetUndoWindow())
	}
	if cfg.GetRetries() != 1 {
		t.Errorf("expected 1 retry, got %d", cfg.GetRetries())
	}
	if cfg.GetLogLevel() != "info" {
		t.Errorf("expected info log level, got %q", cfg.GetLogLevel())
	}
}

func TestLoadYAMLConfig(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmpDir)

	configDir := filepath.Join(tmpDir, "cocktail")
	if err := os.MkdirAll(configDir, 0750); err != nil {
		t.Fatalf("failed to create config dir: %v", err)
	}

	configData := `api:
  url: "https://api.example.com/v1"
  key: "secret"
  timeout: 3s
  retries: 0
  rate_per_second: 2.5
storage:
  backend: redis
  data_dir: "~/cocktail-data"
  redis_addr: "cache:6379"
  redis_db: 2
favorites:
  undo_window: 5s
share:
  base_url: "https://share.example.com/"
log:
  level: debug
`
	configPath := filepath.Join(configDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte(configData), 0600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.GetAPIURL() != "https://api.example.com/v1" {
		t.Errorf("unexpected api url %q", cfg.GetAPIURL())
	}
	if cfg.GetAPIKey() != "secret" {
		t.Errorf("unexpected api key %q", cfg.GetAPIKey())
	}
	if cfg.GetTimeout() != 3*time.Second {
		t.Errorf("expected 3s timeout, got %v", cfg.GetTimeout())
	}
	if cfg.GetRetries() != 0 {
		t.Errorf("expected explicit 0 retries, got %d", cfg.GetRetries())
	}
	if cfg.GetRatePerSecond() != 2.5 {
		t.Errorf("expected rate 2.5, got %v", cfg.GetRatePerSecond())
	}
	if cfg.GetUndoWindow() != 5*time.Second {
		t.Errorf("expected 5s undo window, got %v", cfg.GetUndoWindow())
	}
	if cfg.Share.BaseURL != "https://share.example.com/" {
		t.Errorf("unexpected share base url %q", cfg.Share.BaseURL)
	}
	if cfg.GetLogLevel() != "debug" {
		t.Errorf("expected debug, got %q", cfg.GetLogLevel())
	}

	home, _ := os.UserHomeDir()
	if got, err := cfg.GetDataDir(); err != nil {
		t.Fatalf("GetDataDir() error: %v", err)
	} else if got != filepath.Join(home, "cocktail-data") {
		t.Errorf("GetDataDir() = %q", got)
	}

	opts, err := cfg.StorageOptions()
	if err != nil {
		t.Fatalf("StorageOptions() error: %v", err)
	}
	if opts.Backend != storage.BackendRedis || opts.RedisAddr != "cache:6379" || opts.RedisDB != 2 {
		t.Errorf("unexpected storage options %+v", opts)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmpDir)

	configDir := filepath.Join(tmpDir, "cocktail")
	if err := os.MkdirAll(configDir, 0750); err != nil {
		t.Fatalf("failed to create config dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte("api: [unclosed"), 0600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	if _, err := Load(); err == nil {
		t.Error("expected parse error")
	}
}

func TestSaveAndLoad(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmpDir)

	cfg := &Config{
		API: APIConfig{
			URL: "https://saved.example.com",
			Key: "saved-key",
		},
		Favorites: FavoritesConfig{UndoWindow: 4 * time.Second},
	}

	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	path, _ := GetConfigPath()
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat config: %v", err)
	}
	if info.Mode().Perm() != 0600 {
		t.Errorf("expected 0600 permissions, got %v", info.Mode().Perm())
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if loaded.API.Key != "saved-key" {
		t.Errorf("expected key 'saved-key', got %q", loaded.API.Key)
	}
	if loaded.API.URL != "https://saved.example.com" {
		t.Errorf("expected saved url, got %q", loaded.API.URL)
	}
	if loaded.GetUndoWindow() != 4*time.Second {
		t.Errorf("expected 4s undo window, got %v", loaded.GetUndoWindow())
	}
}

func TestDefaultStorageOptions(t *testing.T) {
	dataHome := t.TempDir()
	t.Setenv("XDG_DATA_HOME", dataHome)

	cfg := &Config{}
	opts, err := cfg.StorageOptions()
	if err != nil {
		t.Fatalf("StorageOptions() error: %v", err)
	}
	if opts.Backend != storage.BackendFile {
		t.Errorf("expected file backend, got %q", opts.Backend)
	}
	if opts.DataDir != filepath.Join(dataHome, "cocktail") {
		t.Errorf("unexpected data dir %q", opts.DataDir)
	}

	cfg.Storage.Backend = storage.BackendRedis
	opts, err = cfg.StorageOptions()
	if err != nil {
		t.Fatalf("StorageOptions() error: %v", err)
	}
	if opts.RedisAddr != "localhost:6379" {
		t.Errorf("expected default redis addr, got %q", opts.RedisAddr)
	}
}
