// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package normfn

import "math"

// Tukey implements the Tukey biweight norm: quadratic-like near zero,
// saturating to a constant and losing all gradient beyond the cutoff c.
//
//   t = 1 - (u/c)²
//   ρ(u)  = K·(1 - t³)    ρ'(u)  = u·t²      for |u| <  c
//   ρ(u)  = K             ρ'(u)  = 0         for |u| >= c
//
// where K = c²/6.
type Tukey struct {
	C float64 // cutoff constant
	K float64 // c² / 6
}

func init() {
	allocators["tukey"] = func() Norm { return NewTukey() }
}

// NewTukey returns a Tukey norm with the legacy default cutoff c = 4.6851
func NewTukey() *Tukey {
	return newTukey(4.6851)
}

func newTukey(c float64) *Tukey {
	return &Tukey{C: c, K: c * c / 6.}
}

// Distance returns ρ(r/σ)
func (o *Tukey) Distance(r, sigma float64) float64 {
	u := r / sigma
	if math.Abs(u) >= o.C {
		return o.K
	}
	t := 1 - (u/o.C)*(u/o.C)
	return o.K * (1 - t*t*t)
}

// Derivative returns (1/σ) ρ'(r/σ)
func (o *Tukey) Derivative(r, sigma float64) float64 {
	u := r / sigma
	var d float64
	if math.Abs(u) < o.C {
		t := 1 - (u/o.C)*(u/o.C)
		d = u * t * t
	}
	return d / sigma
}
