package config

import (
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"textcompare/internal/theme"
)

// Lemmatizer backends.
const (
	BackendRemote = "remote"
	BackendStem   = "stem"
)

// Config holds all configuration for the application.
type Config struct {
	APIPort   string
	DBPath    string
	LogLevel  slog.Level
	LogFormat string

	// LemmatizerURL is the base URL of the remote lemmatizer. Empty disables
	// the remote backend.
	LemmatizerURL     string
	LemmatizerBackend string
	LemmatizerTimeout time.Duration

	// IgnoreCharacters are ignored by the normalizer in addition to the defaults.
	IgnoreCharacters string
	DefaultTheme     theme.Theme
}

// Load reads configuration from environment variables and returns a Config struct.
// It applies defaults for optional fields and validates the rest.
// If a .env file exists in the current directory or project root, it will be loaded automatically.
// Environment variables already set take precedence over .env file values.
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	// Walk up to find a .env at the project root
	wd, err := os.Getwd()
	if err == nil {
		dir := wd
		for i := 0; i < 5; i++ { // Limit search depth
			envPath := filepath.Join(dir, ".env")
			if _, err := os.Stat(envPath); err == nil {
				_ = godotenv.Load(envPath)
				break
			}
			parent := filepath.Dir(dir)
			if parent == dir {
				break // Reached filesystem root
			}
			dir = parent
		}
	}

	cfg := &Config{
		APIPort:           getEnv("API_PORT", "9000"),
		DBPath:            getEnv("DB_PATH", "./data/textcompare.db"),
		LogFormat:         strings.ToLower(getEnv("LOG_FORMAT", "text")),
		LemmatizerURL:     strings.TrimSpace(getEnv("LEMMATIZER_URL", "")),
		LemmatizerBackend: strings.ToLower(getEnv("LEMMATIZER_BACKEND", BackendRemote)),
		IgnoreCharacters:  getEnv("IGNORE_CHARACTERS", ""),
		DefaultTheme:      theme.Theme(strings.ToLower(getEnv("DEFAULT_THEME", string(theme.Light)))),
	}

	level, err := parseLogLevel(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		return nil, err
	}
	cfg.LogLevel = level

	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, fmt.Errorf("LOG_FORMAT must be text or json, got %q", cfg.LogFormat)
	}

	timeout, err := time.ParseDuration(getEnv("LEMMATIZER_TIMEOUT", "30s"))
	if err != nil {
		return nil, fmt.Errorf("LEMMATIZER_TIMEOUT must be a valid duration: %w", err)
	}
	if timeout <= 0 {
		return nil, fmt.Errorf("LEMMATIZER_TIMEOUT must be greater than 0")
	}
	cfg.LemmatizerTimeout = timeout

	switch cfg.LemmatizerBackend {
	case BackendRemote, BackendStem:
	default:
		return nil, fmt.Errorf("LEMMATIZER_BACKEND must be remote or stem, got %q", cfg.LemmatizerBackend)
	}

	if cfg.LemmatizerURL != "" {
		u, err := url.Parse(cfg.LemmatizerURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return nil, fmt.Errorf("LEMMATIZER_URL must be an absolute URL, got %q", cfg.LemmatizerURL)
		}
	}

	if !cfg.DefaultTheme.Valid() {
		return nil, fmt.Errorf("DEFAULT_THEME must be light or dark, got %q", cfg.DefaultTheme)
	}

	// Create the data directory for the DB file
	dataDir := filepath.Dir(cfg.DBPath)
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	return cfg, nil
}

func parseLogLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("LOG_LEVEL must be debug, info, warn or error: %w", err)
	}
	return level, nil
}

// getEnv gets an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
