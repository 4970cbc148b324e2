package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all simulator settings, populated from environment
// variables. The physics core reads nothing from the environment; these
// settings only shape the CLI, rendering, and serve-mode surfaces.
type Config struct {
	HTTPAddr        string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration

	// ASCII map dimensions in characters.
	MapWidth  int
	MapHeight int

	// NoColor disables lipgloss styling (also set by the NO_COLOR
	// convention).
	NoColor bool
}

// Load reads configuration from environment variables, applying defaults
// where unset.
func Load() (*Config, error) {
	shutdownTimeout, err := parseDuration("SHUTDOWN_TIMEOUT", "10s")
	if err != nil {
		return nil, err
	}

	mapWidth, err := parseBoundedInt("MAP_WIDTH", 60, 20, 200)
	if err != nil {
		return nil, err
	}
	mapHeight, err := parseBoundedInt("MAP_HEIGHT", 30, 10, 100)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		HTTPAddr:        envOrDefault("HTTP_ADDR", ":8080"),
		LogLevel:        envOrDefault("LOG_LEVEL", "info"),
		LogFormat:       envOrDefault("LOG_FORMAT", "json"),
		ShutdownTimeout: shutdownTimeout,
		MapWidth:        mapWidth,
		MapHeight:       mapHeight,
		NoColor:         os.Getenv("NO_COLOR") != "",
	}

	switch cfg.LogFormat {
	case "json", "text":
	default:
		return nil, fmt.Errorf("LOG_FORMAT must be json or text, got %q", cfg.LogFormat)
	}

	return cfg, nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseDuration(key, fallback string) (time.Duration, error) {
	raw := envOrDefault(key, fallback)
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("invalid %s: %q", key, raw)
	}
	return d, nil
}

func parseBoundedInt(key string, fallback, min, max int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < min || n > max {
		return 0, fmt.Errorf("%s must be an integer in [%d, %d], got %q", key, min, max, raw)
	}
	return n, nil
}
