// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package normfn

// L2 implements the plain quadratic norm ρ(u) = u²/2. Unlike the other
// three norms, both Distance and Derivative ignore σ entirely; this is
// intentional legacy behavior, preserved for compatibility. Callers that
// expect L2 to rescale with σ the way Huber/Tukey/HuberTukey do will be
// surprised; this is documented rather than "fixed" because changing it
// would silently change every solve that already relies on it.
type L2 struct{}

func init() {
	allocators["L2"] = func() Norm { return NewL2() }
}

// NewL2 returns an L2 norm
func NewL2() *L2 {
	return &L2{}
}

// Distance returns r²/2, ignoring sigma (legacy behavior)
func (o *L2) Distance(r, sigma float64) float64 {
	return r * r / 2
}

// Derivative returns r, ignoring sigma (legacy behavior)
func (o *L2) Derivative(r, sigma float64) float64 {
	return r
}
