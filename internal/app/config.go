package app

import (
	"fmt"
	"time"
)

// MinPause is the shortest compatibility pause a run may use.
const MinPause = time.Second

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	LogFormat string
	LogLevel  string
	Pause     time.Duration
}

// NewConfig validates cfg and returns it.
func NewConfig(cfg Config) (*Config, error) {
	switch cfg.LogFormat {
	case "text", "json":
	default:
		return nil, fmt.Errorf("invalid log format %q: must be 'text' or 'json'", cfg.LogFormat)
	}

	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("invalid log level %q: must be 'debug', 'info', 'warn', or 'error'", cfg.LogLevel)
	}

	if cfg.Pause < MinPause {
		return nil, fmt.Errorf("invalid pause %s: must be at least %s", cfg.Pause, MinPause)
	}

	return &cfg, nil
}
