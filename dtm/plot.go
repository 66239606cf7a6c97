// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dtm

import (
	"math"

	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
)

// PlotConvergence renders the log10(gradient-norm)-vs-iteration curve
// from a SolveSummary's GradNormHistory and saves it to fn. It is
// a diagnostic only: nothing on the Solve/CLI hot path calls it.
// summary.GradNormHistory must be non-empty (populate it by passing
// recordHistory=true to Solve).
func PlotConvergence(summary SolveSummary, fn string) {
	n := len(summary.GradNormHistory)
	if n == 0 {
		io.Pfyel("dtm: PlotConvergence: summary has no gradient-norm history; nothing to plot\n")
		return
	}
	x := make([]float64, n)
	y := make([]float64, n)
	for i, g := range summary.GradNormHistory {
		x[i] = float64(i + 1)
		y[i] = math.Log10(g)
	}
	plt.Reset()
	plt.SetForEps(0.75, 300)
	plt.Plot(x, y, "'b-', clip_on=0")
	plt.Gll("iteration", "$\\mathrm{log_{10}}(||\\nabla f||)$", "")
	plt.Save(fn)
	io.Pf("dtm: convergence plot written to %s\n", fn)
}
