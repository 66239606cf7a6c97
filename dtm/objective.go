// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dtm

// Objective wraps a Params bundle as the total functional f = R + λ_eff·D
// that the minimizer drives to a local minimum. It holds a
// scratch gradient buffer for the data term so repeated calls don't
// allocate.
type Objective struct {
	p        *Params
	dScratch []float64
}

// NewObjective returns an Objective over the given Params bundle
func NewObjective(p *Params) *Objective {
	return &Objective{p: p, dScratch: make([]float64, p.N())}
}

// Value returns f(x) = R(x) + λ_eff·D(x)
func (o *Objective) Value(x []float64) float64 {
	return regularizationValue(x, o.p) + o.p.effectiveLambda()*dataValue(x, o.p)
}

// Gradient fills grad with ∇f(x) = ∇R(x) + λ_eff·∇D(x)
func (o *Objective) Gradient(x []float64, grad []float64) {
	regularizationGradient(x, o.p, grad)
	dataGradient(x, o.p, o.dScratch)
	lambda := o.p.effectiveLambda()
	for i := range grad {
		grad[i] += lambda * o.dScratch[i]
	}
}

// ValueAndGradient computes f(x) and ∇f(x) in a single call, the way the
// minimizer wants it: the data term's value and gradient are both
// O(N) pixel-local passes, so sharing the residual is not worth the extra
// bookkeeping — gosl's own fdf-style interfaces (e.g. num.NlSolver) take
// the same "give me f and the gradient together" shape.
func (o *Objective) ValueAndGradient(x []float64, grad []float64) (f float64) {
	o.Gradient(x, grad)
	f = o.Value(x)
	return
}
