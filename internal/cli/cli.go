package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strconv"

	"github.com/specialistvlad/camelback/internal/camelback"
)

// Argument positions, counted without the program name.
const (
	firstFlagPos  = 5
	secondFlagPos = 7
)

// Default coordinates used for an axis whose flag never appears.
const (
	DefaultX = -1.0
	DefaultY = -1.0
)

// ErrMissingFlag marks a coordinate flag that is absent or unrecognized.
var ErrMissingFlag = errors.New("missing or unrecognized coordinate flag")

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Code maps an error returned by the application to a process exit code.
func Code(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return 1
}

// FlagError reports which argument position failed to hold a coordinate flag.
type FlagError struct {
	Pos   int
	Value string // empty when the argument is missing
}

func (e *FlagError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("%s: no argument at position %d", ErrMissingFlag, e.Pos)
	}
	return fmt.Sprintf("%s: %q at position %d is neither -x nor -y", ErrMissingFlag, e.Value, e.Pos)
}

func (e *FlagError) Unwrap() error {
	return ErrMissingFlag
}

// CallerInfo holds the leading positional arguments a configurator passes to
// every target. They do not influence the evaluation.
type CallerInfo struct {
	Instance     string
	InstanceInfo string
	CutoffTime   string
	CutoffLength string
	Seed         string
}

// ParseCallerInfo extracts positions 0 to 4. Missing positions stay empty.
func ParseCallerInfo(args []string) CallerInfo {
	at := func(i int) string {
		if i < len(args) {
			return args[i]
		}
		return ""
	}
	return CallerInfo{
		Instance:     at(0),
		InstanceInfo: at(1),
		CutoffTime:   at(2),
		CutoffLength: at(3),
		Seed:         at(4),
	}
}

// ResolvePoint reads the two "-x <value>" / "-y <value>" pairs at positions
// 5-6 and 7-8. The pairs may come in either order. An axis whose flag does not
// appear (the same flag given twice) keeps its default coordinate.
func ResolvePoint(args []string) (camelback.Point, error) {
	slog.Debug("Resolving coordinate flags.", "arg_count", len(args))
	p := camelback.Point{X: DefaultX, Y: DefaultY}

	for _, pos := range []int{firstFlagPos, secondFlagPos} {
		if pos >= len(args) {
			return p, &FlagError{Pos: pos}
		}
		flag := args[pos]
		if flag != "-x" && flag != "-y" {
			return p, &FlagError{Pos: pos, Value: flag}
		}
		if pos+1 >= len(args) {
			return p, &FlagError{Pos: pos + 1}
		}

		value := ParseFloat(args[pos+1])
		if flag == "-x" {
			p.X = value
		} else {
			p.Y = value
		}
	}

	slog.Debug("Coordinate flags resolved.", "x", p.X, "y", p.Y)
	return p, nil
}

var floatPrefix = regexp.MustCompile(`^\s*([+-]?(?:\d+(?:\.\d+)?|\.\d+)(?:[eE][+-]?\d+)?)`)

// ParseFloat converts the longest leading decimal literal of s into a float64.
// Text without a numeric prefix yields 0; trailing garbage is ignored.
// Overflowing literals saturate to an infinity.
func ParseFloat(s string) float64 {
	m := floatPrefix.FindStringSubmatch(s)
	if m == nil {
		return 0
	}
	// On overflow strconv returns ±Inf alongside a range error.
	v, _ := strconv.ParseFloat(m[1], 64)
	return v
}
