// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package camelback implements the six-hump camelback benchmark, a
// non-convex function of two variables with two global minima. It is a pure
// numeric package: it performs no I/O and holds no state.
//
// The function is usually searched over -3 <= x <= 3, -2 <= y <= 2, while its
// interesting region (the documented domain) is the open box
// -2 < x < 2, -1 < y < 1. Neither range is enforced by Evaluate.
package camelback
