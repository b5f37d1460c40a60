package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"

	"github.com/sandy081/userdata-history/internal/errors"
)

func TestInit(t *testing.T) {
	viper.Reset()

	Init()

	if viper.GetInt("version") != 1 {
		t.Errorf("expected version default 1, got %d", viper.GetInt("version"))
	}
	if viper.GetString("backup_root") == "" {
		t.Error("expected backup_root default to be set")
	}
	if viper.GetDuration("watch.debounce") != DefaultWatchDebounce {
		t.Errorf("expected watch.debounce default %v, got %v",
			DefaultWatchDebounce, viper.GetDuration("watch.debounce"))
	}
}

func TestLoad_NoConfigFile(t *testing.T) {
	viper.Reset()

	// Run from a temp dir so no stray config.yaml is picked up
	t.Chdir(t.TempDir())

	Init()

	cfg, err := Load("")
	if err != nil {
		t.Errorf("Load() with no config file should not error: %v", err)
	}
	if cfg == nil {
		t.Fatal("expected config to be returned")
	}
	if cfg.BackupRoot == "" {
		t.Error("expected default backup_root")
	}
}

func TestLoad_WithConfigFile(t *testing.T) {
	viper.Reset()

	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")
	content := []byte("backup_root: /custom/backups\nresources:\n  settings:\n    path: /custom/settings.json\nwatch:\n  debounce: 2s\n")
	if err := os.WriteFile(configPath, content, 0600); err != nil {
		t.Fatal(err)
	}

	Init()

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.BackupRoot != "/custom/backups" {
		t.Errorf("BackupRoot = %q, want /custom/backups", cfg.BackupRoot)
	}
	if cfg.Resources["settings"].Path != "/custom/settings.json" {
		t.Errorf("settings path = %q, want /custom/settings.json", cfg.Resources["settings"].Path)
	}
	if cfg.Watch.Debounce != 2*time.Second {
		t.Errorf("debounce = %v, want 2s", cfg.Watch.Debounce)
	}
}

func TestLoad_MissingExplicitPath(t *testing.T) {
	viper.Reset()
	Init()

	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load() with explicit missing path should error")
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"negative debounce", "watch:\n  debounce: -1s\n"},
		{"unsupported version", "version: 99\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			viper.Reset()

			configPath := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(configPath, []byte(tt.content), 0600); err != nil {
				t.Fatal(err)
			}

			Init()

			_, err := Load(configPath)
			if !errors.Is(err, errors.ErrInvalidConfig) {
				t.Errorf("error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Version != 1 {
		t.Errorf("Version = %d, want 1", cfg.Version)
	}
	if cfg.BackupRoot == "" {
		t.Error("expected non-empty BackupRoot")
	}
	if _, ok := cfg.Resources["settings"]; !ok {
		t.Error("expected settings resource override")
	}
	if _, ok := cfg.Resources["keybindings"]; !ok {
		t.Error("expected keybindings resource override")
	}
}
