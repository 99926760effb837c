package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures bookfinder's runtime settings.
type Config struct {
	SearchURL         string
	CoversURL         string
	UserAgent         string
	RequestTimeout    time.Duration // zero leaves the transport default
	RequestsPerSecond float64       // zero disables request pacing
	LogFile           string
	LogLevel          string
	MetricsAddr       string // empty disables the metrics listener
}

const (
	defaultConfigPath        = "~/.config/bookfinder/config.toml"
	defaultSearchURL         = "https://openlibrary.org/search.json"
	defaultCoversURL         = "https://covers.openlibrary.org"
	defaultUserAgent         = "bookfinder/0.1"
	defaultLogFile           = "~/.local/state/bookfinder/bookfinder.log"
	defaultLogLevel          = "info"
	defaultRequestsPerSecond = 5
)

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		SearchURL:         defaultSearchURL,
		CoversURL:         defaultCoversURL,
		UserAgent:         defaultUserAgent,
		RequestsPerSecond: defaultRequestsPerSecond,
		LogFile:           mustExpand(defaultLogFile),
		LogLevel:          defaultLogLevel,
	}
}

// Load locates and parses the config file, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		SearchURL         string   `toml:"search_url"`
		CoversURL         string   `toml:"covers_url"`
		UserAgent         string   `toml:"user_agent"`
		RequestTimeout    string   `toml:"request_timeout"`
		RequestsPerSecond *float64 `toml:"requests_per_second"`
		LogFile           string   `toml:"log_file"`
		LogLevel          string   `toml:"log_level"`
		MetricsAddr       string   `toml:"metrics_addr"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	cfg.SearchURL = orDefault(raw.SearchURL, defaultSearchURL)
	cfg.CoversURL = orDefault(raw.CoversURL, defaultCoversURL)
	cfg.UserAgent = orDefault(raw.UserAgent, defaultUserAgent)
	cfg.LogLevel = strings.ToLower(orDefault(raw.LogLevel, defaultLogLevel))
	cfg.LogFile = mustExpand(orDefault(raw.LogFile, defaultLogFile))
	cfg.MetricsAddr = strings.TrimSpace(raw.MetricsAddr)

	if timeout := strings.TrimSpace(raw.RequestTimeout); timeout != "" {
		d, err := time.ParseDuration(timeout)
		if err != nil {
			return Config{}, fmt.Errorf("parse request_timeout: %w", err)
		}
		if d < 0 {
			return Config{}, fmt.Errorf("parse request_timeout: %q is negative", timeout)
		}
		cfg.RequestTimeout = d
	}

	if raw.RequestsPerSecond != nil {
		cfg.RequestsPerSecond = max(*raw.RequestsPerSecond, 0)
	}

	return cfg, nil
}

func orDefault(value, fallback string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return fallback
	}
	return value
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
