// Package config loads wordpick settings from the environment and builds the
// process logger.
package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexanderramin/wordpick/internal/domain"
	"github.com/caarlos0/env/v11"
)

// Config holds runtime settings. Empty paths are filled from the user's home
// directory by Load.
type Config struct {
	DBPath    string `env:"WORDPICK_DB"`
	PoolPath  string `env:"WORDPICK_POOL"`
	Duration  int    `env:"WORDPICK_DURATION" envDefault:"60"`
	Seed      uint64 `env:"WORDPICK_SEED" envDefault:"0"`
	Sound     bool   `env:"WORDPICK_SOUND" envDefault:"true"`
	LogFile   string `env:"WORDPICK_LOG_FILE"`
	LogLevel  string `env:"WORDPICK_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"WORDPICK_LOG_FORMAT" envDefault:"text"`
}

// Load parses the environment and fills default paths. Flags may still
// override the result, so callers run Validate once they are applied.
func Load() (*Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.fillPaths(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Validate checks values that flags may also have overridden.
func (c *Config) Validate() error {
	if err := domain.ValidateDuration(c.Duration); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("config: log format %q (expected text or json)", c.LogFormat)
	}
	return nil
}

// Level parses LogLevel.
func (c *Config) Level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("config: log level %q: %w", c.LogLevel, err)
	}
	return lvl, nil
}

func (c *Config) fillPaths() error {
	if c.DBPath != "" && c.LogFile != "" {
		return nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("finding home directory: %w", err)
	}
	dir := filepath.Join(home, ".wordpick")
	if c.DBPath == "" {
		c.DBPath = filepath.Join(dir, "wordpick.db")
	}
	if c.LogFile == "" {
		c.LogFile = filepath.Join(dir, "wordpick.log")
	}
	return nil
}

// NewLogger opens the log destination and returns a logger for it. LogFile
// "-" logs to stderr. The returned closer releases the file.
func NewLogger(c *Config) (*slog.Logger, io.Closer, error) {
	lvl, err := c.Level()
	if err != nil {
		return nil, nil, err
	}

	var w io.Writer = os.Stderr
	var closer io.Closer = io.NopCloser(nil)
	if c.LogFile != "-" {
		if err := os.MkdirAll(filepath.Dir(c.LogFile), 0o755); err != nil {
			return nil, nil, fmt.Errorf("creating log directory: %w", err)
		}
		f, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("opening log file: %w", err)
		}
		w, closer = f, f
	}
	return slog.New(newHandler(w, c.LogFormat, lvl)), closer, nil
}

func newHandler(w io.Writer, format string, lvl slog.Level) slog.Handler {
	opts := &slog.HandlerOptions{Level: lvl}
	if strings.EqualFold(format, "json") {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}
