// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dtm

// regularizationValue computes R(x), the sum of squared discrete second
// derivatives of x along X and Y. Only pixels whose derivative-type
// code on that axis exceeds 4 (both-sides symmetric availability)
// contribute; the sweep deliberately skips the first and last cell of each
// row/column since the stencil needs both neighbors.
func regularizationValue(x []float64, p *Params) float64 {
	h, w := p.h, p.w
	sum := 0.0

	// derivative along X: slide a 3-cell window across each row
	for j := 0; j < h; j++ {
		row := j * w
		if w < 3 {
			continue
		}
		z0 := x[row]
		z1 := x[row+1]
		for i := 1; i <= w-2; i++ {
			z2 := x[row+i+1]
			if p.tx[row+i] > 4 {
				d := z0 - 2*z1 + z2
				sum += d * d
			}
			z0, z1 = z1, z2
		}
	}

	// derivative along Y: slide a 3-cell window down each column
	for i := 0; i < w; i++ {
		if h < 3 {
			continue
		}
		z0 := x[i]
		z1 := x[w+i]
		for j := 1; j <= h-2; j++ {
			z2 := x[(j+1)*w+i]
			if p.ty[j*w+i] > 4 {
				d := z0 - 2*z1 + z2
				sum += d * d
			}
			z0, z1 = z1, z2
		}
	}

	return sum
}

// regStencilContribution returns the (temp, coef) contribution of a single
// axis's derivative-type code to the gradient at its center pixel, reading
// the four neighbors at offsets -2,-1,+1,+2 along that axis via get.
// Legend: - active neighbor, * center, | boundary (outside the active
// region or outside the grid on that side).
func regStencilContribution(code int, get func(offset int) float64) (temp, coef float64) {
	switch code {
	case 0: // ||*||
	case 1: // |-*||
	case 2: // --*||
		temp = 2*get(-2) - 4*get(-1)
		coef = 2
	case 3: // ||*-|
	case 4: // ||*--
		temp = -4*get(1) + 2*get(2)
		coef = 2
	case 5: // --*-|
		temp = 2*get(-2) - 8*get(-1) - 4*get(1)
		coef = 10
	case 6: // |-*-|
		temp = -4*get(-1) - 4*get(1)
		coef = 8
	case 7: // |-*--
		temp = 2*get(2) - 4*get(-1) - 8*get(1)
		coef = 10
	case 8: // --*--
		temp = 2*get(-2) + 2*get(2) - 8*get(-1) - 8*get(1)
		coef = 12
	}
	return
}

// regularizationGradient fills grad with ∇R(x). For every active
// pixel (tx[i] != -1), both axes are summed into a single temp/coef pair
// and the gradient at i is temp + coef*x[i]; masked pixels get 0.
func regularizationGradient(x []float64, p *Params, grad []float64) {
	w := p.w
	n := len(x)
	for i := 0; i < n; i++ {
		if p.tx[i] == -1 {
			grad[i] = 0
			continue
		}

		var temp, coef float64

		tempX, coefX := regStencilContribution(p.tx[i], func(offset int) float64 {
			return x[i+offset]
		})
		temp += tempX
		coef += coefX

		tempY, coefY := regStencilContribution(p.ty[i], func(offset int) float64 {
			return x[i+offset*w]
		})
		temp += tempY
		coef += coefY

		grad[i] = temp + coef*x[i]
	}
}
