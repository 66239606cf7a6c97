// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dtm

import "time"

// SolveSummary reports how a solve went, independent of whether it
// converged. Callers decide what to do with a non-converged Status;
// the output raster is valid in every case.
type SolveSummary struct {
	Status          Status    // how the minimizer stopped
	Iterations      int       // number of completed iterations
	MaxIterations   int       // the cap that was configured
	FinalValue      float64   // f(x) at the returned estimate
	FinalGradNorm   float64   // ||∇f(x)|| at the returned estimate
	Duration        time.Duration
	GradNormHistory []float64 // per-iteration ||∇f||, only when requested
}
