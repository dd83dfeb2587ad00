// Package config provides application configuration.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"
)

// Theme names accepted by LNCGEN_THEME.
const (
	ThemeAuto  = "auto"
	ThemePlain = "plain"
)

// DefaultEnvFile is read when Load is called without explicit files.
const DefaultEnvFile = ".env"

// Config holds all application configuration.
type Config struct {
	DownloadDir string
	LogLevel    string
	WordWrap    int
	Sanitize    bool
	Theme       string
}

// Load reads optional dotenv files and then configuration from environment
// variables. Missing dotenv files are ignored; variables already set in the
// environment win over dotenv values.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{DefaultEnvFile}
	}
	for _, file := range envFiles {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config: load %s: %w", file, err)
		}
	}

	cfg := &Config{
		DownloadDir: getEnv("LNCGEN_DOWNLOAD_DIR", "."),
		LogLevel:    getEnv("LNCGEN_LOG_LEVEL", "info"),
		WordWrap:    getEnvInt("LNCGEN_WORD_WRAP", 80),
		Sanitize:    getEnvBool("LNCGEN_SANITIZE", false),
		Theme:       getEnv("LNCGEN_THEME", ThemeAuto),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks that all configuration fields hold usable values.
func (c *Config) Validate() error {
	if c.DownloadDir == "" {
		return fmt.Errorf("LNCGEN_DOWNLOAD_DIR cannot be empty")
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("LNCGEN_LOG_LEVEL: %w", err)
	}
	if c.WordWrap <= 0 {
		return fmt.Errorf("LNCGEN_WORD_WRAP must be > 0")
	}
	switch c.Theme {
	case ThemeAuto, ThemePlain:
	default:
		return fmt.Errorf("LNCGEN_THEME must be %q or %q", ThemeAuto, ThemePlain)
	}
	return nil
}

// Level returns the parsed log level.
func (c *Config) Level() zapcore.Level {
	level, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return zapcore.InfoLevel
	}
	return level
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	default:
		return fallback
	}
}

func getEnvInt(key string, fallback int) int {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return fallback
	}
	return n
}
