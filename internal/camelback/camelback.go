// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package camelback

// Point is a location in the two-dimensional input space.
type Point struct {
	X, Y float64
}

// Evaluate returns the six-hump camelback value at (x, y).
func Evaluate(x, y float64) float64 {
	x2 := x * x
	y2 := y * y

	term1 := (4 - 2.1*x2 + (x2*x2)/3) * x2
	term2 := x * y
	term3 := (-4 + 4*y2) * y2

	return term1 + term2 + term3
}

// At is Evaluate applied to a Point.
func (p Point) At() float64 {
	return Evaluate(p.X, p.Y)
}

// Negate returns the point mirrored through the origin. The function is
// invariant under this mapping.
func (p Point) Negate() Point {
	return Point{X: -p.X, Y: -p.Y}
}

// InDomain reports whether p lies strictly inside the documented domain.
func InDomain(p Point) bool {
	return p.X > -2 && p.X < 2 && p.Y > -1 && p.Y < 1
}
