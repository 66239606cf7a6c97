// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dtm

// dataValue computes D(x) = Σ_{i: mask[i] != excluded} ρ((x[i]-o[i])/σ_eff).
// Masked pixels contribute zero. O(N), no neighbor access.
func dataValue(x []float64, p *Params) float64 {
	sigma := p.effectiveScale()
	sum := 0.0
	for i := 0; i < len(x); i++ {
		if p.mask[i] == excludedMask {
			continue
		}
		sum += p.NormDistance(x[i]-p.o[i], sigma)
	}
	return sum
}

// dataGradient fills grad with ∇D(x): grad[i] = (1/σ_eff)ρ'((x[i]-o[i])/σ_eff)
// for trusted pixels, 0 for masked pixels.
func dataGradient(x []float64, p *Params, grad []float64) {
	sigma := p.effectiveScale()
	for i := 0; i < len(x); i++ {
		if p.mask[i] == excludedMask {
			grad[i] = 0
			continue
		}
		grad[i] = p.NormDerivative(x[i]-p.o[i], sigma)
	}
}
