// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dtm

// excludedMask is the mask sentinel meaning "excluded from data fidelity
// and derivative boundary"; every other mask value means "trusted
// observation".
const excludedMask = 11

// remapAxisCode applies the table that reconciles the forward/backward scan
// encodings of a single axis: 0→0, 1→1, 2→2, 3→3, 4→6, 5→5, 6→4, 7→7, 8→8;
// -1 stays -1. The 4↔6 swap is the only step that compensates for the
// asymmetry between the forward (weight 1, cap 2) and backward (weight 3,
// cap 6) scan directions.
var axisRemap = [9]int{0, 1, 2, 3, 6, 5, 4, 7, 8}

func remapAxisCode(code int) int {
	if code == -1 {
		return -1
	}
	return axisRemap[code]
}

// classifyAxis computes the derivative-type code for one axis of one line
// (a row, when classifying X, or a column, when classifying Y) of length n.
// at(k) must return the mask value of the k-th cell along the line; out(k)
// receives the remapped code for that cell.
//
// Two sweeps run over the line: a forward sweep accumulating gL (capped at
// 2, weight 1) and a backward sweep accumulating gR (capped at 2, weight 3,
// so it lands on 0/3/6). An excluded cell resets its own counter to zero
// and is marked -1 regardless of what the other sweep found.
func classifyAxis(n int, at func(k int) int, out func(k int, code int)) {
	gL := 0
	gR := 0
	codes := make([]int, n)
	for k := 0; k < n; k++ {
		if at(k) != excludedMask {
			codes[k] += gL
			if gL < 2 {
				gL++
			}
		} else {
			codes[k] = -1
			gL = 0
		}
		j := n - 1 - k
		if at(j) != excludedMask {
			codes[j] += gR * 3
			if gR < 2 {
				gR++
			}
		} else {
			codes[j] = -1
			gR = 0
		}
	}
	for k := 0; k < n; k++ {
		out(k, remapAxisCode(codes[k]))
	}
}

// computeDerivativeTypes builds the tx, ty classification vectors
// from the flattened mask. tx is swept row by row (the X axis); ty is swept
// column by column (the Y axis).
func computeDerivativeTypes(mask []int, h, w int) (tx, ty []int) {
	n := h * w
	tx = make([]int, n)
	ty = make([]int, n)

	for y := 0; y < h; y++ {
		row := y * w
		classifyAxis(w,
			func(x int) int { return mask[row+x] },
			func(x int, code int) { tx[row+x] = code },
		)
	}

	for x := 0; x < w; x++ {
		classifyAxis(h,
			func(y int) int { return mask[y*w+x] },
			func(y int, code int) { ty[y*w+x] = code },
		)
	}

	return tx, ty
}
