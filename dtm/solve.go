// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dtm

import (
	"math"
	"time"

	"github.com/cpmech/gosl/chk"
)

// Solve is the package's single entry point: given the raw,
// unnormalized rasters and the solve hyperparameters, it normalizes,
// builds the Params/Objective pair, drives the minimizer, and returns the
// output raster in physical units.
//
// oRaw, maskRaw and initRaw must all have length h*w, row-major. Pixels
// where oRaw equals noData are excluded from the vmin/vmax scan;
// maskRaw carries the per-pixel trust/exclusion codes consumed during
// classification. recordHistory, when true, asks the minimizer to keep a
// per-iteration gradient-norm trace in the returned SolveSummary; it costs
// O(iterations) and is meant for diagnostics, not the hot path.
//
// Solve returns a non-nil error only for configuration failures:
// mismatched raster lengths, an empty or degenerate elevation range,
// an unknown norm name, a non-finite or non-positive sigma, or a
// non-finite lambda. A numerical-failure or iteration-limit Status
// is never an error — the returned out is still the minimizer's best
// estimate in that case.
func Solve(oRaw []float64, maskRaw []int, initRaw []float64, h, w int, noData float64, normName string, sigma, lambda float64, recordHistory bool) (out []float64, summary SolveSummary, err error) {

	start := time.Now()

	n := h * w
	if len(oRaw) != n {
		return nil, summary, chk.Err("Solve: observation raster has length %d, expected h*w = %d", len(oRaw), n)
	}
	if len(maskRaw) != n {
		return nil, summary, chk.Err("Solve: mask raster has length %d, expected h*w = %d", len(maskRaw), n)
	}
	if len(initRaw) != n {
		return nil, summary, chk.Err("Solve: initial-solution raster has length %d, expected h*w = %d", len(initRaw), n)
	}

	vmin, vmax, nTrusted := scanRange(oRaw, noData)
	if nTrusted == 0 {
		return nil, summary, chk.Err("Solve: no pixel in the observation raster is different from the no-data sentinel %v", noData)
	}
	if vmax <= vmin {
		return nil, summary, chk.Err("Solve: degenerate elevation range [%d, %d]; vmax must be greater than vmin", vmin, vmax)
	}
	k := float64(vmax - vmin)

	o := make([]float64, n)
	initNorm := make([]float64, n)
	for i := 0; i < n; i++ {
		o[i] = (oRaw[i] - float64(vmin)) / k
		initNorm[i] = (initRaw[i] - float64(vmin)) / k
	}

	p, err := NewParams(o, maskRaw, h, w, vmin, vmax, normName, sigma, lambda)
	if err != nil {
		return nil, summary, err
	}

	obj := NewObjective(p)
	cfg := DefaultConfig()
	cfg.RecordHistory = recordHistory

	xNorm, summary := Minimize(obj, initNorm, cfg)

	out = make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = xNorm[i]*k + float64(vmin)
	}

	summary.Duration = time.Since(start)
	return out, summary, nil
}

// scanRange computes (vmin, vmax) over the pixels of oRaw that are not
// equal to noData, rounding outward to the nearest integer pair so the
// normalized range contains every trusted observation. nTrusted is the
// number of pixels that entered the scan.
func scanRange(oRaw []float64, noData float64) (vmin, vmax int, nTrusted int) {
	first := true
	var lo, hi float64
	for _, v := range oRaw {
		if v == noData {
			continue
		}
		nTrusted++
		if first {
			lo, hi = v, v
			first = false
			continue
		}
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	if nTrusted == 0 {
		return 0, 0, 0
	}
	return int(math.Floor(lo)), int(math.Ceil(hi)), nTrusted
}
