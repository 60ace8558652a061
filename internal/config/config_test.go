package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"go.yaml.in/yaml/v4"
)

func TestLoad_MissingConfig(t *testing.T) {
	t.Setenv("HABITS_CONFIG", "nonexistent.yaml")
	_, err := Load()
	if err == nil {
		t.Fatal("expected error for missing config file, got nil")
	}
}

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HABITS_CONFIG", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.DBPath != "habits.db" || cfg.ListenAddr != ":8080" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestLoad_CustomConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configFile := filepath.Join(tmpDir, "config.yaml")
	t.Setenv("HABITS_CONFIG", configFile)

	c := Config{DBPath: "custom.db", LogLevel: "debug", Nudge: NudgeConfig{Email: "me@example.com"}}
	d, err := yaml.Marshal(&c)
	if err != nil {
		t.Fatalf("failed to marshal config: %v", err)
	}
	if err := os.WriteFile(configFile, d, 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatal("error opening config:", err)
	}
	if cfg.DBPath != "custom.db" || cfg.Nudge.Email != "me@example.com" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.SlogLevel() != slog.LevelDebug {
		t.Fatalf("got level %v want debug", cfg.SlogLevel())
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	tmpDir := t.TempDir()
	configFile := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configFile, []byte("db_path: file.db\nlisten_addr: \":9000\"\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("HABITS_CONFIG", configFile)
	t.Setenv("HABITS_DB_PATH", "env.db")
	t.Setenv("HABITS_NOTIFY_EMAIL", "env@example.com")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.DBPath != "env.db" {
		t.Errorf("got db_path %q want env.db", cfg.DBPath)
	}
	if cfg.ListenAddr != ":9000" {
		t.Errorf("got listen_addr %q want :9000", cfg.ListenAddr)
	}
	if cfg.Nudge.Email != "env@example.com" {
		t.Errorf("got email %q want env@example.com", cfg.Nudge.Email)
	}
}
