// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dtm

import (
	"math"

	"github.com/cpmech/gosl/la"
)

// Status reports how a solve terminated. It is never an error: every
// Status still comes with a valid elevation output.
type Status int

const (
	// StatusConverged means the gradient norm fell at or below GradTol
	StatusConverged Status = iota
	// StatusNumericalFailure means the line search could not find a
	// descent step (non-descent direction, or a non-finite objective)
	StatusNumericalFailure
	// StatusIterationLimit means MaxIterations was reached without
	// meeting GradTol
	StatusIterationLimit
)

// String implements fmt.Stringer
func (s Status) String() string {
	switch s {
	case StatusConverged:
		return "converged"
	case StatusNumericalFailure:
		return "numerical failure"
	case StatusIterationLimit:
		return "iteration limit"
	default:
		return "unknown status"
	}
}

// MinimizerConfig holds the Fletcher-Reeves conjugate-gradient descent
// constants. The zero value is not usable; use DefaultConfig.
type MinimizerConfig struct {
	InitialStep    float64 // initial line-search step size
	LineSearchTol  float64 // Armijo sufficient-decrease constant
	MaxIterations  int     // iteration cap
	GradTol        float64 // success test: ||∇f(x)|| <= GradTol
	RecordHistory  bool    // collect the gradient-norm history in SolveSummary
}

// DefaultConfig returns the legacy constants: initial step 0.01, line
// search tolerance 1e-4, iteration cap 30000, gradient tolerance 1e-3.
func DefaultConfig() MinimizerConfig {
	return MinimizerConfig{
		InitialStep:   0.01,
		LineSearchTol: 1e-4,
		MaxIterations: 30000,
		GradTol:       1e-3,
	}
}

// Minimize drives obj's objective to a local minimum by Fletcher-Reeves
// nonlinear conjugate-gradient descent, starting from x0 (not mutated),
// and returns the final estimate (still in normalized space — denormalizing
// to physical units is Solve's job) together with a SolveSummary.
//
// The minimizer is untied from the functionals: it drives any Objective
// exposing Value/Gradient/ValueAndGradient, so any equivalent descent
// method (steepest descent, L-BFGS) could take its place without changing
// what "converged" means.
func Minimize(obj *Objective, x0 []float64, cfg MinimizerConfig) (x []float64, summary SolveSummary) {

	n := len(x0)
	x = make([]float64, n)
	la.VecCopy(x, 1, x0)

	grad := make([]float64, n)
	f := obj.ValueAndGradient(x, grad)

	dir := make([]float64, n)
	la.VecCopy(dir, -1, grad) // steepest descent to start

	newGrad := make([]float64, n)
	trial := make([]float64, n)

	step := cfg.InitialStep
	summary.MaxIterations = cfg.MaxIterations

	if cfg.RecordHistory {
		summary.GradNormHistory = append(summary.GradNormHistory, la.VecNorm(grad))
	}
	if la.VecNorm(grad) <= cfg.GradTol {
		summary.Status = StatusConverged
		summary.FinalValue = f
		summary.FinalGradNorm = la.VecNorm(grad)
		return x, summary
	}

	iter := 0
	for ; iter < cfg.MaxIterations; iter++ {

		alpha, fNew, ok := lineSearch(obj, x, dir, f, grad, step, cfg.LineSearchTol, trial)
		if !ok {
			summary.Status = StatusNumericalFailure
			break
		}
		// x += alpha*dir
		la.VecAdd(x, alpha, dir)
		step = alpha

		f = fNew
		obj.Gradient(x, newGrad)
		gnorm := la.VecNorm(newGrad)

		if cfg.RecordHistory {
			summary.GradNormHistory = append(summary.GradNormHistory, gnorm)
		}

		if gnorm <= cfg.GradTol {
			copy(grad, newGrad)
			summary.Status = StatusConverged
			iter++
			break
		}

		// Fletcher-Reeves update: β = (g_new·g_new) / (g_old·g_old)
		oldDot := la.VecDot(grad, grad)
		newDot := la.VecDot(newGrad, newGrad)
		beta := 0.0
		if oldDot > 0 {
			beta = newDot / oldDot
		}

		// d_new = -g_new + β·d_old
		for i := 0; i < n; i++ {
			dir[i] = -newGrad[i] + beta*dir[i]
		}

		// restart with steepest descent if the CG direction is not a
		// descent direction (can happen with nonlinear objectives)
		if la.VecDot(dir, newGrad) >= 0 {
			la.VecCopy(dir, -1, newGrad)
		}

		copy(grad, newGrad)
	}

	if iter >= cfg.MaxIterations && summary.Status != StatusConverged && summary.Status != StatusNumericalFailure {
		summary.Status = StatusIterationLimit
	}

	summary.Iterations = iter
	summary.FinalValue = f
	summary.FinalGradNorm = la.VecNorm(grad)
	return x, summary
}

// lineSearch performs a backtracking search along dir for a step alpha
// satisfying the Armijo sufficient-decrease condition
//
//   f(x + alpha*dir) <= f(x) + c1*alpha*(grad·dir)
//
// starting from the minimizer's current step size (grown slightly on
// success, halved on each backtrack). trial is a scratch buffer the size
// of x; it is overwritten. Returns
// ok=false when dir is not a descent direction or no finite improving
// step can be found.
func lineSearch(obj *Objective, x, dir []float64, f0 float64, grad []float64, step, c1 float64, trial []float64) (alpha, fNew float64, ok bool) {
	slope := la.VecDot(grad, dir)
	if slope >= 0 {
		return 0, 0, false
	}

	alpha = step * 1.1
	const maxBacktracks = 60
	n := len(x)
	for try := 0; try < maxBacktracks; try++ {
		for i := 0; i < n; i++ {
			trial[i] = x[i] + alpha*dir[i]
		}
		fNew = obj.Value(trial)
		if math.IsNaN(fNew) || math.IsInf(fNew, 0) {
			alpha *= 0.5
			continue
		}
		if fNew <= f0+c1*alpha*slope {
			return alpha, fNew, true
		}
		alpha *= 0.5
	}
	return 0, 0, false
}
