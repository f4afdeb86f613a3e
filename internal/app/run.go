package app

import (
	"context"
	"fmt"

	"github.com/specialistvlad/camelback/internal/camelback"
	"github.com/specialistvlad/camelback/internal/cli"
	"github.com/specialistvlad/camelback/internal/ctxlog"
	"github.com/specialistvlad/camelback/internal/paramils"
)

// Run evaluates the point named by args and writes the report to the App's
// output. args excludes the program name.
//
// When the coordinate flags cannot be resolved, the crash line is the only
// output and the returned *cli.ExitError carries exit code 1. Otherwise the
// argument echo, the diagnostic lines and the SAT line are written and Run
// returns nil after the compatibility pause.
func (a *App) Run(ctx context.Context, args []string) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	start := a.clock.Now()
	a.logger.Debug("App.Run method started.", "args", args)

	caller := cli.ParseCallerInfo(args)
	a.logger.Debug("Caller metadata.",
		"instance", caller.Instance,
		"instance_info", caller.InstanceInfo,
		"cutoff_time", caller.CutoffTime,
		"cutoff_length", caller.CutoffLength,
		"seed", caller.Seed,
	)

	point, err := cli.ResolvePoint(args)
	if err != nil {
		a.logger.Error("Cannot evaluate without both coordinates.", "error", err)
		fmt.Fprintln(a.outW, paramils.CrashLine)
		return &cli.ExitError{Code: 1, Message: err.Error()}
	}

	for _, arg := range args {
		fmt.Fprintln(a.outW, arg)
	}

	value := a.evaluate(ctx, point)

	a.logger.Debug("Pausing before report.", "pause", a.config.Pause)
	a.clock.Sleep(a.config.Pause)
	duration := a.clock.Now().Sub(start)

	report := paramils.NewSAT(duration.Seconds(), value)
	fmt.Fprintf(a.outW, "\n%s\n", report)

	a.logger.Info("Evaluation finished.", "x", point.X, "y", point.Y, "value", value, "duration", duration)
	return nil
}

// evaluate echoes the point, computes the function and echoes the result.
func (a *App) evaluate(ctx context.Context, p camelback.Point) float64 {
	logger := ctxlog.FromContext(ctx)
	if !camelback.InDomain(p) {
		logger.Warn("Point lies outside the documented domain -2 < x < 2, -1 < y < 1.", "x", p.X, "y", p.Y)
	}

	fmt.Fprintln(a.outW, "Params: ")
	fmt.Fprintln(a.outW, formatValue(p.X))
	fmt.Fprintln(a.outW, formatValue(p.Y))

	value := p.At()

	fmt.Fprintln(a.outW, "Result: ")
	fmt.Fprintln(a.outW, formatValue(value))
	return value
}
