// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package normfn

// HuberTukey implements the asymmetric norm: Huber's positive half for
// u > 0, Tukey's norm for u <= 0. Useful when positive and negative
// residuals carry different outlier risk (e.g. above-ground objects in a
// DSM are far more likely to be outliers than pits).
//
// Distance on the negative half is algebraically Tukey's Distance; an
// earlier revision of this split had a control-flow shortcut there that
// obscured this, so it is written out plainly here.
type HuberTukey struct {
	huber Huber
	tukey Tukey
}

func init() {
	allocators["hubertukey"] = func() Norm { return NewHuberTukey() }
}

// NewHuberTukey returns a HuberTukey norm with the legacy default cutoffs
// (Huber c = 1.2107, Tukey c = 4.6851)
func NewHuberTukey() *HuberTukey {
	return &HuberTukey{
		huber: Huber{C: 1.2107},
		tukey: *newTukey(4.6851),
	}
}

// Distance returns ρ(r/σ): Huber for u > 0, Tukey for u <= 0
func (o *HuberTukey) Distance(r, sigma float64) float64 {
	u := r / sigma
	if u > 0 {
		return o.huber.Distance(r, sigma)
	}
	return o.tukey.Distance(r, sigma)
}

// Derivative returns (1/σ) ρ'(r/σ): Huber for u > 0, Tukey for u <= 0
func (o *HuberTukey) Derivative(r, sigma float64) float64 {
	u := r / sigma
	if u > 0 {
		return o.huber.Derivative(r, sigma)
	}
	return o.tukey.Derivative(r, sigma)
}
