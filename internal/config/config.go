package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"go.yaml.in/yaml/v4"
)

const defaultConfigPath = "config.yaml"

type NudgeConfig struct {
	ResendAPIKey string `yaml:"resend_api_key" env:"HABITS_RESEND_API_KEY"`
	Email        string `yaml:"email" env:"HABITS_NOTIFY_EMAIL"`
	From         string `yaml:"from" env:"HABITS_NOTIFY_FROM"`
	Schedule     string `yaml:"schedule" env:"HABITS_NUDGE_SCHEDULE"`
}

type Config struct {
	APIBaseURL string      `yaml:"api_base_url" env:"HABITS_API_BASE"`
	ListenAddr string      `yaml:"listen_addr" env:"HABITS_LISTEN_ADDR"`
	DBPath     string      `yaml:"db_path" env:"HABITS_DB_PATH"`
	AuthToken  string      `yaml:"auth_token" env:"HABITS_AUTH_TOKEN"`
	LogLevel   string      `yaml:"log_level" env:"HABITS_LOG_LEVEL"`
	LogFormat  string      `yaml:"log_format" env:"HABITS_LOG_FORMAT"`
	Nudge      NudgeConfig `yaml:"nudge"`
}

func defaults() Config {
	return Config{
		APIBaseURL: "http://localhost:8080",
		ListenAddr: ":8080",
		DBPath:     "habits.db",
		LogLevel:   "info",
		LogFormat:  "text",
		Nudge: NudgeConfig{
			From: "onboarding@resend.dev",
		},
	}
}

// Load reads the YAML file named by HABITS_CONFIG (default config.yaml) and
// applies .env and HABITS_* environment overrides on top. The default file is
// optional; an explicitly named file must exist.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	path, explicit := os.LookupEnv("HABITS_CONFIG")
	if !explicit || path == "" {
		path = defaultConfigPath
	}

	cfg := defaults()
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist) && !explicit:
	default:
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	return &cfg, nil
}

func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}
