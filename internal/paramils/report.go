// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package paramils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Prefix opens every report line.
const Prefix = "Result for ParamILS:"

// Instance is the instance name the camelback target reports.
const Instance = "camelback.rb"

// CrashLine is the fixed line reported when the target cannot run at all.
const CrashLine = Prefix + " CRASH, 1, 1, 10, -1, " + Instance

// Status is the solved state of a run.
type Status string

const (
	StatusSAT   Status = "SAT"
	StatusCrash Status = "CRASH"
)

// ErrNoReport is returned by Find when no line carries the report prefix.
var ErrNoReport = errors.New("no ParamILS result line found")

// Report is one parsed or to-be-printed result line.
type Report struct {
	Status    Status
	Runtime   float64 // seconds
	RunLength int
	Quality   float64
	Seed      int
	Instance  string
}

// NewSAT builds the success report for a run that took runtime seconds and
// produced quality.
func NewSAT(runtime, quality float64) Report {
	return Report{
		Status:    StatusSAT,
		Runtime:   runtime,
		RunLength: 1,
		Quality:   quality,
		Seed:      -1,
		Instance:  Instance,
	}
}

// String renders the report without a trailing newline.
func (r Report) String() string {
	return fmt.Sprintf("%s %s, %f, %d, %f, %d, %s",
		Prefix, r.Status, r.Runtime, r.RunLength, r.Quality, r.Seed, r.Instance)
}

// Parse reads a single report line. Leading text before the prefix is
// ignored, matching how wrappers search the target's output.
func Parse(line string) (Report, error) {
	pos := strings.Index(line, Prefix)
	if pos == -1 {
		return Report{}, ErrNoReport
	}

	fields := strings.Split(strings.TrimSpace(line[pos+len(Prefix):]), ",")
	if len(fields) != 6 {
		return Report{}, fmt.Errorf("expected 6 fields in result line, got %d", len(fields))
	}
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}

	var (
		r   = Report{Status: Status(fields[0]), Instance: fields[5]}
		err error
	)
	if r.Runtime, err = strconv.ParseFloat(fields[1], 64); err != nil {
		return Report{}, fmt.Errorf("invalid runtime %q: %w", fields[1], err)
	}
	if r.RunLength, err = strconv.Atoi(fields[2]); err != nil {
		return Report{}, fmt.Errorf("invalid runlength %q: %w", fields[2], err)
	}
	if r.Quality, err = strconv.ParseFloat(fields[3], 64); err != nil {
		return Report{}, fmt.Errorf("invalid quality %q: %w", fields[3], err)
	}
	if r.Seed, err = strconv.Atoi(fields[4]); err != nil {
		return Report{}, fmt.Errorf("invalid seed %q: %w", fields[4], err)
	}
	return r, nil
}

// Find scans multi-line output and parses the first report line in it.
func Find(output string) (Report, error) {
	for _, line := range strings.Split(output, "\n") {
		if strings.Contains(line, Prefix) {
			return Parse(line)
		}
	}
	return Report{}, ErrNoReport
}
