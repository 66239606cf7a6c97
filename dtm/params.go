// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dtm implements the DTM reconstruction core: the derivative-type
// classification, the data-attachment and regularization functionals, the
// combined objective, and the Fletcher-Reeves conjugate-gradient minimizer
// that drives a noisy elevation grid to a smooth, outlier-tolerant terrain
// model.
package dtm

import (
	"math"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/gomnt/normfn"
)

// Params holds everything a solve needs to read, and nothing it needs to
// write: the flattened observation and mask grids, the static derivative
// classification, the output range, and the hyperparameters. It is built
// once at the start of a solve and never mutated afterwards; only the
// estimate vector x, owned by the minimizer, changes during a solve.
type Params struct {
	h, w       int
	vmin, vmax int
	sigma      float64
	lambda     float64
	norm       normfn.Norm
	o          []float64 // normalized observations, length h*w
	mask       []int     // length h*w; excludedMask (11) marks an excluded pixel
	tx, ty     []int     // derivative-type codes, length h*w
}

// NewParams builds a Params bundle from normalized observations o, the
// mask, the output range [vmin, vmax], a norm name, and the hyperparameters
// sigma and lambda. o and mask must already be flattened row-major to
// length h*w; o must already be normalized to [0, 1] — NewParams does
// not normalize anything itself, that's Solve's job.
//
// NewParams returns a configuration error (never a panic) when the shapes
// don't match, the norm name is unknown, or sigma/lambda/vmin/vmax are not
// finite or vmax <= vmin.
func NewParams(o []float64, mask []int, h, w, vmin, vmax int, normName string, sigma, lambda float64) (*Params, error) {

	n := h * w
	if len(o) != n {
		return nil, chk.Err("NewParams: observation vector has length %d, expected h*w = %d", len(o), n)
	}
	if len(mask) != n {
		return nil, chk.Err("NewParams: mask vector has length %d, expected h*w = %d", len(mask), n)
	}
	if vmax <= vmin {
		return nil, chk.Err("NewParams: vmax (%d) must be greater than vmin (%d)", vmax, vmin)
	}
	if !isFinite(sigma) || sigma <= 0 {
		return nil, chk.Err("NewParams: sigma must be finite and positive, got %v", sigma)
	}
	if !isFinite(lambda) {
		return nil, chk.Err("NewParams: lambda must be finite, got %v", lambda)
	}

	norm, err := normfn.New(normName)
	if err != nil {
		return nil, chk.Err("NewParams: %v", err)
	}

	tx, ty := computeDerivativeTypes(mask, h, w)

	return &Params{
		h: h, w: w,
		vmin: vmin, vmax: vmax,
		sigma: sigma, lambda: lambda,
		norm: norm,
		o:    o, mask: mask,
		tx: tx, ty: ty,
	}, nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// N returns the total number of pixels h*w
func (p *Params) N() int { return p.h * p.w }

// GetH returns the grid height
func (p *Params) GetH() int { return p.h }

// GetW returns the grid width
func (p *Params) GetW() int { return p.w }

// GetMin returns vmin
func (p *Params) GetMin() int { return p.vmin }

// GetMax returns vmax
func (p *Params) GetMax() int { return p.vmax }

// GetSigma returns the raw (not rescaled) sigma
func (p *Params) GetSigma() float64 { return p.sigma }

// GetLambda returns the raw (not rescaled) lambda
func (p *Params) GetLambda() float64 { return p.lambda }

// GetObservation returns the normalized observation at linear index i
func (p *Params) GetObservation(i int) float64 { return p.o[i] }

// GetMask returns the mask value at linear index i
func (p *Params) GetMask(i int) int { return p.mask[i] }

// GetTypeX returns the X-axis derivative-type code at linear index i
func (p *Params) GetTypeX(i int) int { return p.tx[i] }

// GetTypeY returns the Y-axis derivative-type code at linear index i
func (p *Params) GetTypeY(i int) int { return p.ty[i] }

// NormDistance evaluates the configured norm's Distance(r, sigma)
func (p *Params) NormDistance(r, sigma float64) float64 { return p.norm.Distance(r, sigma) }

// NormDerivative evaluates the configured norm's Derivative(r, sigma)
func (p *Params) NormDerivative(r, sigma float64) float64 { return p.norm.Derivative(r, sigma) }

// effectiveScale returns sigma / (vmax - vmin), the rescaled sigma used by
// the data-attachment functional
func (p *Params) effectiveScale() float64 {
	return p.sigma / float64(p.vmax-p.vmin)
}

// effectiveLambda returns lambda / (vmax - vmin)², the rescaled lambda used
// by the total objective
func (p *Params) effectiveLambda() float64 {
	k := float64(p.vmax - p.vmin)
	return p.lambda / (k * k)
}
