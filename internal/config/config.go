package config

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/camelback/internal/ctxlog"
	"github.com/specialistvlad/camelback/internal/fsutil"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"
)

// Environment variables consulted by Load.
const (
	EnvConfigPath = "CAMELBACK_CONFIG"
	EnvLogLevel   = "CAMELBACK_LOG_LEVEL"
	EnvLogFormat  = "CAMELBACK_LOG_FORMAT"
)

// DefaultPause is the delay the evaluator waits before reporting. Some run
// wrappers mis-measure targets that finish almost instantly.
const DefaultPause = time.Second

// Settings is the resolved, format-agnostic result of loading.
type Settings struct {
	LogLevel  string
	LogFormat string
	Pause     time.Duration
	// Sources lists the files that contributed, in load order.
	Sources []string
}

// Defaults returns the settings used when nothing is configured.
func Defaults() Settings {
	return Settings{
		LogLevel:  "info",
		LogFormat: "text",
		Pause:     DefaultPause,
	}
}

// hclFile is the decoding schema of one settings file.
type hclFile struct {
	Logging      *hclLogging `hcl:"logging,block"`
	PauseSeconds *float64    `hcl:"pause_seconds,optional"`
}

type hclLogging struct {
	Level  *string `hcl:"level,optional"`
	Format *string `hcl:"format,optional"`
}

// Load resolves settings from defaults, the file or directory named by
// CAMELBACK_CONFIG, and the log environment overrides, in that order.
// environ has the form returned by os.Environ.
func Load(ctx context.Context, environ []string) (*Settings, error) {
	logger := ctxlog.FromContext(ctx)
	env := envMap(environ)
	settings := Defaults()

	if path := env[EnvConfigPath]; path != "" {
		files, err := discover(path)
		if err != nil {
			return nil, err
		}
		logger.Debug("Loading settings files.", "path", path, "count", len(files))
		if err := settings.applyFiles(EvalContext(env), files...); err != nil {
			return nil, err
		}
	}

	if v := env[EnvLogLevel]; v != "" {
		settings.LogLevel = strings.ToLower(v)
	}
	if v := env[EnvLogFormat]; v != "" {
		settings.LogFormat = strings.ToLower(v)
	}

	logger.Debug("Settings resolved.", "log_level", settings.LogLevel, "log_format", settings.LogFormat, "pause", settings.Pause)
	return &settings, nil
}

// LoadFiles applies the given files on top of the defaults. Later files
// override attributes set by earlier ones.
func LoadFiles(evalCtx *hcl.EvalContext, paths ...string) (*Settings, error) {
	settings := Defaults()
	if err := settings.applyFiles(evalCtx, paths...); err != nil {
		return nil, err
	}
	return &settings, nil
}

// EvalContext builds the context settings expressions are evaluated in.
func EvalContext(env map[string]string) *hcl.EvalContext {
	vals := make(map[string]cty.Value, len(env))
	for k, v := range env {
		vals[k] = cty.StringVal(v)
	}
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"env": cty.ObjectVal(vals),
		},
		Functions: map[string]function.Function{
			"lookup": stdlib.LookupFunc,
			"lower":  stdlib.LowerFunc,
			"upper":  stdlib.UpperFunc,
		},
	}
}

func (s *Settings) applyFiles(evalCtx *hcl.EvalContext, paths ...string) error {
	parser := hclparse.NewParser()
	for _, path := range paths {
		file, err := decodeFile(parser, evalCtx, path)
		if err != nil {
			return err
		}
		s.apply(file)
		s.Sources = append(s.Sources, path)
	}
	return nil
}

func (s *Settings) apply(f *hclFile) {
	if f.Logging != nil {
		if f.Logging.Level != nil {
			s.LogLevel = strings.ToLower(*f.Logging.Level)
		}
		if f.Logging.Format != nil {
			s.LogFormat = strings.ToLower(*f.Logging.Format)
		}
	}
	if f.PauseSeconds != nil {
		s.Pause = time.Duration(*f.PauseSeconds * float64(time.Second))
	}
}

func decodeFile(parser *hclparse.Parser, evalCtx *hcl.EvalContext, path string) (*hclFile, error) {
	f, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", path, diags)
	}

	var parsed hclFile
	diags = gohcl.DecodeBody(f.Body, evalCtx, &parsed)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", path, diags)
	}
	return &parsed, nil
}

// discover returns path itself when it is a file, or every .hcl file below it
// when it is a directory.
func discover(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings path: %w", err)
	}
	if !info.IsDir() {
		return []string{path}, nil
	}

	files, err := fsutil.FindFilesByExtension(path, ".hcl")
	if err != nil {
		return nil, fmt.Errorf("failed to find settings files in %s: %w", path, err)
	}
	return files, nil
}

func envMap(environ []string) map[string]string {
	env := make(map[string]string, len(environ))
	for _, kv := range environ {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			continue
		}
		env[k] = v
	}
	return env
}
