// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rasterio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func TestRaster01(tst *testing.T) {

	chk.PrintTitle("Raster01: float raster round-trips through WriteFloats/ReadFloats")

	h, w := 2, 3
	vals := []float64{1.5, 2.25, -3, 0, 100.125, -9999}

	fn := filepath.Join(os.TempDir(), "gomnt_raster_test_floats.txt")
	defer os.Remove(fn)

	if err := WriteFloats(fn, vals, h, w); err != nil {
		tst.Errorf("WriteFloats failed: %v", err)
		return
	}

	got, gh, gw, err := ReadFloats(fn)
	if err != nil {
		tst.Errorf("ReadFloats failed: %v", err)
		return
	}
	chk.IntAssert(gh, h)
	chk.IntAssert(gw, w)
	for i := range vals {
		chk.Scalar(tst, "val", 1e-9, got[i], vals[i])
	}
}

func TestRaster02(tst *testing.T) {

	chk.PrintTitle("Raster02: int raster round-trips through WriteInts/ReadInts")

	h, w := 2, 2
	vals := []int{0, 11, 7, 0}

	fn := filepath.Join(os.TempDir(), "gomnt_raster_test_ints.txt")
	defer os.Remove(fn)

	if err := WriteInts(fn, vals, h, w); err != nil {
		tst.Errorf("WriteInts failed: %v", err)
		return
	}

	got, gh, gw, err := ReadInts(fn)
	if err != nil {
		tst.Errorf("ReadInts failed: %v", err)
		return
	}
	chk.IntAssert(gh, h)
	chk.IntAssert(gw, w)
	chk.Ints(tst, "vals", got, vals)
}

func TestRaster03(tst *testing.T) {

	chk.PrintTitle("Raster03: a header/body mismatch is rejected")

	fn := filepath.Join(os.TempDir(), "gomnt_raster_test_bad.txt")
	defer os.Remove(fn)

	if err := os.WriteFile(fn, []byte("2 2\n1 2 3\n"), 0644); err != nil {
		tst.Errorf("could not write fixture: %v", err)
		return
	}

	if _, _, _, err := ReadFloats(fn); err == nil {
		tst.Errorf("ReadFloats should reject a header/body length mismatch")
	}
}
