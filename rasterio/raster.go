// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rasterio reads and writes the single-band text raster format
// used by the gomnt CLI. It is deliberately not a GeoTIFF reader:
// the real geospatial format and its projection/metadata propagation
// belong to an external collaborator; this format exists only so the
// command-line tool in this repository is end-to-end runnable and
// testable without that dependency.
//
// The format is a header line "H W" followed by H*W whitespace-separated
// values in row-major order.
package rasterio

import (
	"bytes"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// ReadFloats reads a float raster, returning its values row-major
// together with its height and width.
func ReadFloats(path string) (vals []float64, h, w int, err error) {
	fields, h, w, err := readFields(path)
	if err != nil {
		return nil, 0, 0, err
	}
	vals = make([]float64, len(fields))
	for i, f := range fields {
		vals[i], err = strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, 0, 0, chk.Err("ReadFloats: %s: cell %d is not a valid number: %q", path, i, f)
		}
	}
	return vals, h, w, nil
}

// ReadInts reads an integer raster (typically a mask), returning its
// values row-major together with its height and width.
func ReadInts(path string) (vals []int, h, w int, err error) {
	fields, h, w, err := readFields(path)
	if err != nil {
		return nil, 0, 0, err
	}
	vals = make([]int, len(fields))
	for i, f := range fields {
		vals[i], err = strconv.Atoi(f)
		if err != nil {
			return nil, 0, 0, chk.Err("ReadInts: %s: cell %d is not a valid integer: %q", path, i, f)
		}
	}
	return vals, h, w, nil
}

// readFields loads path, validates the header against the body length,
// and returns the H*W value tokens still as strings.
func readFields(path string) (fields []string, h, w int, err error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, 0, 0, chk.Err("rasterio: cannot read %s: %v", path, err)
	}

	fields = strings.Fields(string(buf))
	if len(fields) < 2 {
		return nil, 0, 0, chk.Err("rasterio: %s: missing \"H W\" header", path)
	}

	h, err = strconv.Atoi(fields[0])
	if err != nil || h <= 0 {
		return nil, 0, 0, chk.Err("rasterio: %s: invalid height %q", path, fields[0])
	}
	w, err = strconv.Atoi(fields[1])
	if err != nil || w <= 0 {
		return nil, 0, 0, chk.Err("rasterio: %s: invalid width %q", path, fields[1])
	}

	body := fields[2:]
	if len(body) != h*w {
		return nil, 0, 0, chk.Err("rasterio: %s: header declares %d x %d = %d cells, found %d", path, h, w, h*w, len(body))
	}
	return body, h, w, nil
}

// WriteFloats writes a float raster in the "H W" header format.
func WriteFloats(path string, vals []float64, h, w int) error {
	if len(vals) != h*w {
		return chk.Err("rasterio: WriteFloats: %d values do not match h*w = %d", len(vals), h*w)
	}
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%d %d\n", h, w)
	for j := 0; j < h; j++ {
		for i := 0; i < w; i++ {
			if i > 0 {
				buf.WriteByte(' ')
			}
			fmt.Fprintf(&buf, "%.10g", vals[j*w+i])
		}
		buf.WriteByte('\n')
	}
	io.WriteFile(path, &buf)
	return nil
}

// WriteInts writes an integer raster in the "H W" header format.
func WriteInts(path string, vals []int, h, w int) error {
	if len(vals) != h*w {
		return chk.Err("rasterio: WriteInts: %d values do not match h*w = %d", len(vals), h*w)
	}
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%d %d\n", h, w)
	for j := 0; j < h; j++ {
		for i := 0; i < w; i++ {
			if i > 0 {
				buf.WriteByte(' ')
			}
			fmt.Fprintf(&buf, "%d", vals[j*w+i])
		}
		buf.WriteByte('\n')
	}
	io.WriteFile(path, &buf)
	return nil
}
