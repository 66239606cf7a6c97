// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// gomnt reconstructs a denoised digital terrain model from a noisy
// elevation raster, a trust mask, and an initial guess, via regularized
// variational optimization (see the gomnt/dtm package).
package main

import (
	"flag"
	"os"
	"strconv"

	"github.com/cpmech/gomnt/dtm"
	"github.com/cpmech/gomnt/rasterio"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

const usage = `usage: gomnt dsm mask init out [sigma] [lambda] [no-data] [norm]

  dsm      path to the noisy elevation raster (float, "H W" header)
  mask     path to the trust-mask raster (int, "H W" header)
  init     path to the initial-solution raster (float, "H W" header)
  out      path to write the reconstructed elevation raster

  sigma    robust-norm scale, default 0.5
  lambda   regularization weight, default 0.02
  no-data  sentinel value excluded from the elevation range scan, default -9999
  norm     one of huber, tukey, hubertukey, L2; default hubertukey
`

func main() {
	code := 0
	defer func() {
		if r := recover(); r != nil {
			io.PfRed("ERROR: %v\n\n", r)
			io.Pf(usage)
			os.Exit(1)
		}
		os.Exit(code)
	}()
	code = run(os.Args[1:])
}

func run(args []string) int {
	fs := flag.NewFlagSet("gomnt", flag.ContinueOnError)
	fs.Usage = func() { io.Pf(usage) }
	if err := fs.Parse(args); err != nil {
		return 1
	}
	pos := fs.Args()

	if len(pos) < 4 {
		chk.Panic("expected at least 4 positional arguments, got %d", len(pos))
	}

	dsmPath, maskPath, initPath, outPath := pos[0], pos[1], pos[2], pos[3]

	sigma, lambda, noData := 0.5, 0.02, -9999.0
	normName := "hubertukey"
	var err error
	if len(pos) > 4 {
		if sigma, err = strconv.ParseFloat(pos[4], 64); err != nil {
			io.PfRed("ERROR: bad sigma %q: %v\n", pos[4], err)
			return 1
		}
	}
	if len(pos) > 5 {
		if lambda, err = strconv.ParseFloat(pos[5], 64); err != nil {
			io.PfRed("ERROR: bad lambda %q: %v\n", pos[5], err)
			return 1
		}
	}
	if len(pos) > 6 {
		if noData, err = strconv.ParseFloat(pos[6], 64); err != nil {
			io.PfRed("ERROR: bad no-data sentinel %q: %v\n", pos[6], err)
			return 1
		}
	}
	if len(pos) > 7 {
		normName = pos[7]
	}

	oRaw, h, w, err := rasterio.ReadFloats(dsmPath)
	if err != nil {
		io.PfRed("ERROR: %v\n", err)
		return 1
	}
	mask, hm, wm, err := rasterio.ReadInts(maskPath)
	if err != nil {
		io.PfRed("ERROR: %v\n", err)
		return 1
	}
	initRaw, hi, wi, err := rasterio.ReadFloats(initPath)
	if err != nil {
		io.PfRed("ERROR: %v\n", err)
		return 1
	}
	if hm != h || wm != w || hi != h || wi != w {
		io.PfRed("ERROR: raster shapes disagree: dsm=%dx%d mask=%dx%d init=%dx%d\n", h, w, hm, wm, hi, wi)
		return 1
	}

	out, summary, err := dtm.Solve(oRaw, mask, initRaw, h, w, noData, normName, sigma, lambda, false)
	if err != nil {
		io.PfRed("ERROR: %v\n", err)
		return 1
	}

	if err := rasterio.WriteFloats(outPath, out, h, w); err != nil {
		io.PfRed("ERROR: %v\n", err)
		return 1
	}

	io.Pf("gomnt: %s, %d iterations, f=%.6g, ||grad||=%.3g, took %v\n",
		summary.Status, summary.Iterations, summary.FinalValue, summary.FinalGradNorm, summary.Duration)

	return 0
}
