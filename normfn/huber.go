// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package normfn

import "math"

// Huber implements the Huber norm: quadratic for small residuals, linear
// beyond the cutoff c.
//
//   ρ(u)  = u²/2                      for |u| <  c
//   ρ(u)  = c·(|u| - c/2)             for |u| >= c
//   ρ'(u) = u                         for |u| <  c
//   ρ'(u) = sign(u)·c                 for |u| >= c
type Huber struct {
	C float64 // cutoff constant
}

// add to factory
func init() {
	allocators["huber"] = func() Norm { return NewHuber() }
}

// NewHuber returns a Huber norm with the legacy default cutoff c = 1.2107
func NewHuber() *Huber {
	return &Huber{C: 1.2107}
}

// Distance returns ρ(r/σ)
func (o *Huber) Distance(r, sigma float64) float64 {
	u := r / sigma
	if math.Abs(u) < o.C {
		return u * u / 2
	}
	return o.C * (math.Abs(u) - o.C/2)
}

// Derivative returns (1/σ) ρ'(r/σ)
func (o *Huber) Derivative(r, sigma float64) float64 {
	u := r / sigma
	var d float64
	if math.Abs(u) < o.C {
		d = u
	} else {
		d = sign(u) * o.C
	}
	return d / sigma
}
