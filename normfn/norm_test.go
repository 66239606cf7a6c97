// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package normfn

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func TestNew01(tst *testing.T) {

	//chk.Verbose = true
	chk.PrintTitle("New01: norm factory")

	names := []string{"huber", "tukey", "hubertukey", "L2"}
	for _, name := range names {
		n, err := New(name)
		if err != nil {
			tst.Errorf("New(%q) failed: %v", name, err)
			return
		}
		if n == nil {
			tst.Errorf("New(%q) returned a nil norm", name)
			return
		}
	}

	if _, err := New("not-a-norm"); err == nil {
		tst.Errorf("New should fail with an unknown norm name")
	}
}

func TestL201(tst *testing.T) {

	chk.PrintTitle("L201: L2 ignores sigma")

	n := NewL2()
	chk.Scalar(tst, "Distance(2,1)", 1e-15, n.Distance(2, 1), 2.0)
	chk.Scalar(tst, "Distance(2,99)", 1e-15, n.Distance(2, 99), 2.0)
	chk.Scalar(tst, "Derivative(2,1)", 1e-15, n.Derivative(2, 1), 2.0)
	chk.Scalar(tst, "Derivative(2,99)", 1e-15, n.Derivative(2, 99), 2.0)
}

func TestHuber01(tst *testing.T) {

	chk.PrintTitle("Huber01: boundary continuity")

	n := NewHuber()
	c := n.C

	chk.Scalar(tst, "Distance(c,1)", 1e-15, n.Distance(c, 1), c*c/2)

	eps := 1e-6
	dAtMinus := n.Distance(c-eps, 1)
	dAtPlus := n.Distance(c+eps, 1)
	chk.Scalar(tst, "continuity at c", 1e-5, dAtMinus, dAtPlus)

	derivBelow := n.Derivative(c-eps, 1)
	derivAbove := n.Derivative(c+eps, 1)
	chk.Scalar(tst, "derivative continuity at c", 1e-5, derivBelow, derivAbove)

	chk.Scalar(tst, "Derivative(-10,1)", 1e-15, n.Derivative(-10, 1), -c)
	chk.Scalar(tst, "Derivative(10,1)", 1e-15, n.Derivative(10, 1), c)
}

func TestTukey01(tst *testing.T) {

	chk.PrintTitle("Tukey01: saturates beyond cutoff")

	n := NewTukey()
	chk.Scalar(tst, "Distance(0,1)", 1e-15, n.Distance(0, 1), 0)
	chk.Scalar(tst, "Distance(c,1)", 1e-15, n.Distance(n.C, 1), n.K)
	chk.Scalar(tst, "Distance(100c,1)", 1e-15, n.Distance(100*n.C, 1), n.K)
	chk.Scalar(tst, "Derivative(100c,1)", 1e-15, n.Derivative(100*n.C, 1), 0)

	if n.Distance(50, 1) < 0 {
		tst.Errorf("Tukey Distance must be non-negative")
	}
}

func TestHuberTukey01(tst *testing.T) {

	chk.PrintTitle("HuberTukey01: asymmetric dispatch")

	n := NewHuberTukey()
	h := NewHuber()
	t := NewTukey()

	chk.Scalar(tst, "positive half matches Huber", 1e-15, n.Distance(3, 1), h.Distance(3, 1))
	chk.Scalar(tst, "negative half matches Tukey", 1e-15, n.Distance(-3, 1), t.Distance(-3, 1))
	chk.Scalar(tst, "deriv positive half matches Huber", 1e-15, n.Derivative(3, 1), h.Derivative(3, 1))
	chk.Scalar(tst, "deriv negative half matches Tukey", 1e-15, n.Derivative(-3, 1), t.Derivative(-3, 1))
}

func TestDistanceNonNegative(tst *testing.T) {

	chk.PrintTitle("DistanceNonNegative: all four norms")

	names := []string{"huber", "tukey", "hubertukey", "L2"}
	residuals := []float64{-100, -10, -1, -0.1, 0, 0.1, 1, 10, 100}
	for _, name := range names {
		n, _ := New(name)
		for _, r := range residuals {
			d := n.Distance(r, 1)
			if d < 0 {
				tst.Errorf("%s: Distance(%v) = %v must be >= 0", name, r, d)
			}
		}
	}
}
