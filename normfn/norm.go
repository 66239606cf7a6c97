// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package normfn implements the robust norm family used by the data
// attachment functional: Huber, Tukey, an asymmetric Huber/Tukey blend, and
// the plain quadratic (L2) norm.
package normfn

import (
	"github.com/cpmech/gosl/chk"
)

// Norm defines a robust (or not) scalar norm ρ used to weigh residuals in
// the data-attachment functional.
//
//   Distance(r, σ)   returns ρ(r/σ)
//   Derivative(r, σ) returns (1/σ) ρ'(r/σ)
//
// Implementations must be safe for concurrent read-only use: Params holds a
// single Norm and every pixel in the grid calls into it.
type Norm interface {
	Distance(r, sigma float64) float64
	Derivative(r, sigma float64) float64
}

// allocators holds the norm factory, one entry per accepted name
var allocators = map[string]func() Norm{}

// New returns a new Norm by name. Accepted names are "huber", "tukey",
// "hubertukey" and "L2" (case-sensitive, matching the legacy CLI). An
// unknown name is a configuration error, reported as a plain error so the
// caller (Solve, or the CLI at its own boundary) decides how fatal to
// treat it.
func New(name string) (Norm, error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("norm %q is not available; known norms are huber, tukey, hubertukey, L2", name)
	}
	return allocator(), nil
}

// sign returns ±1 matching the sign of val, or 0 for val == 0
func sign(val float64) float64 {
	if val < 0 {
		return -1
	}
	if val > 0 {
		return 1
	}
	return 0
}
