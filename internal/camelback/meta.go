// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package camelback

// Interval is a closed range [Lower, Upper].
type Interval struct {
	Lower, Upper float64
}

// Contains reports whether v lies in the closed interval.
func (i Interval) Contains(v float64) bool {
	return v >= i.Lower && v <= i.Upper
}

// Meta describes the benchmark for optimizers that tune against it.
type Meta struct {
	Name             string
	NumFunctionEvals int
	Optima           []Point
	FOpt             float64
	Bounds           [2]Interval
}

// Info returns the benchmark's meta information. Each call returns a fresh
// copy so callers may modify it freely.
func Info() Meta {
	return Meta{
		Name:             "Camelback",
		NumFunctionEvals: 200,
		Optima: []Point{
			{X: 0.0898, Y: -0.7126},
			{X: -0.0898, Y: 0.7126},
		},
		FOpt: -1.03162842,
		Bounds: [2]Interval{
			{Lower: -3, Upper: 3},
			{Lower: -2, Upper: 2},
		},
	}
}

// InBounds reports whether p lies inside the search bounds.
func (m Meta) InBounds(p Point) bool {
	return m.Bounds[0].Contains(p.X) && m.Bounds[1].Contains(p.Y)
}
