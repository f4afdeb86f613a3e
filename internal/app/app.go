package app

import (
	"io"
	"log/slog"
)

// App encapsulates the evaluator's dependencies and configuration.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config *Config
	clock  Clock
}

// Option customizes an App at construction time.
type Option func(*App)

// WithClock replaces the system clock, mainly so tests can run without the
// real pause.
func WithClock(c Clock) Option {
	return func(a *App) {
		a.clock = c
	}
}

// NewApp is the constructor for the evaluator. Report output goes to outW and
// structured logs go to logW; the two must stay separate because the caller
// parses outW.
func NewApp(outW, logW io.Writer, config *Config, opts ...Option) *App {
	a := &App{
		outW:   outW,
		logger: newLogger(config.LogLevel, config.LogFormat, logW),
		config: config,
		clock:  systemClock{},
	}
	for _, opt := range opts {
		opt(a)
	}
	a.logger.Debug("Logger configured successfully.")
	return a
}
