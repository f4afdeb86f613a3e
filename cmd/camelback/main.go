package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/specialistvlad/camelback/internal/app"
	"github.com/specialistvlad/camelback/internal/cli"
	"github.com/specialistvlad/camelback/internal/config"
	"github.com/specialistvlad/camelback/internal/paramils"
)

// main is the entrypoint for the camelback target.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	// The real main function handles errors and exit codes.
	if err := run(context.Background(), os.Stdout, os.Stderr, os.Args[1:], os.Environ()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cli.Code(err))
	}
}

// run encapsulates the main application logic for easier testing and error handling.
func run(ctx context.Context, outW, errW io.Writer, args, environ []string) error {
	settings, err := config.Load(ctx, environ)
	if err != nil {
		return crash(outW, err)
	}

	appConfig, err := app.NewConfig(app.Config{
		LogFormat: settings.LogFormat,
		LogLevel:  settings.LogLevel,
		Pause:     settings.Pause,
	})
	if err != nil {
		return crash(outW, err)
	}

	return app.NewApp(outW, errW, appConfig).Run(ctx, args)
}

// crash reports a startup failure in the line format the configurator
// expects, so the run is recorded instead of lost.
func crash(outW io.Writer, err error) error {
	fmt.Fprintln(outW, paramils.CrashLine)
	return &cli.ExitError{Code: 1, Message: fmt.Sprintf("startup failed: %v", err)}
}
