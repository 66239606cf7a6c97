// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dtm

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/num"
)

func TestObjective01(tst *testing.T) {

	chk.PrintTitle("Objective01: masked pixels carry zero total gradient")

	h, w := 1, 5
	mask := []int{0, 0, excludedMask, 0, 0}
	o := []float64{0.1, 0.2, 0.99, 0.3, 0.4}
	p, err := NewParams(o, mask, h, w, 0, 100, "hubertukey", 0.5, 0.02)
	if err != nil {
		tst.Errorf("NewParams failed: %v", err)
		return
	}
	obj := NewObjective(p)

	x := []float64{0.15, 0.25, 0.80, 0.28, 0.42}
	grad := make([]float64, h*w)
	obj.Gradient(x, grad)
	chk.Scalar(tst, "grad[excluded]", 1e-15, grad[2], 0)
}

func TestObjective02(tst *testing.T) {

	chk.PrintTitle("Objective02: L2 total gradient matches a finite-difference check")

	h, w := 4, 5
	mask := make([]int, h*w)
	o := make([]float64, h*w)
	for i := range o {
		o[i] = 0.2 + 0.05*float64(i%6)
	}
	p, err := NewParams(o, mask, h, w, 0, 100, "L2", 0.4, 0.02)
	if err != nil {
		tst.Errorf("NewParams failed: %v", err)
		return
	}
	obj := NewObjective(p)

	x := make([]float64, h*w)
	for i := range x {
		x[i] = 0.1 + 0.06*float64(i%7)
	}

	grad := make([]float64, h*w)
	obj.Gradient(x, grad)

	for i := range x {
		xi := i
		dnum, _ := num.DerivCentral(func(xv float64, args ...interface{}) (res float64) {
			tmp := x[xi]
			x[xi] = xv
			res = obj.Value(x)
			x[xi] = tmp
			return
		}, x[i], 1e-6)
		chk.AnaNum(tst, "df/dx", 1e-6, grad[i], dnum, false)
	}
}

func TestObjective03(tst *testing.T) {

	chk.PrintTitle("Objective03: ValueAndGradient agrees with separate calls")

	h, w := 3, 3
	mask := make([]int, h*w)
	o := make([]float64, h*w)
	p, err := NewParams(o, mask, h, w, 0, 10, "tukey", 0.5, 0.02)
	if err != nil {
		tst.Errorf("NewParams failed: %v", err)
		return
	}
	obj := NewObjective(p)

	x := []float64{0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9}

	gradA := make([]float64, h*w)
	fA := obj.ValueAndGradient(x, gradA)

	gradB := make([]float64, h*w)
	obj.Gradient(x, gradB)
	fB := obj.Value(x)

	chk.Scalar(tst, "f", 1e-15, fA, fB)
	for i := range gradA {
		chk.Scalar(tst, "grad", 1e-15, gradA[i], gradB[i])
	}
}
