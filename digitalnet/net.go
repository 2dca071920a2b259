// Copyright ©2024 The LatNetBuilder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package digitalnet

import "github.com/umontreal-simul/latnetbuilder-sub002/gf2"

// Net is a digital net in base 2: a family of square binary
// generating matrices, one per dimension, all of the same order m
// (spec.md §3). NumPoints is 2^m.
type Net interface {
	NumColumns() int
	NumRows() int
	NumPoints() int
	Dimension() int
	GeneratingMatrices() []gf2.Matrix
	GeneratingMatrix(dim int) gf2.Matrix
}

// Point returns the dim-th coordinate (0-based) of point i (0 <= i <
// net.NumPoints()) of net, computed as sum_l bit_l * 2^-(l+1) where
// bit_l is the parity of (generating matrix row l) AND (binary digits
// of i), matching original_source's digital-net point-generation
// convention (DigitalNet.h's rolledGeneratingMatrices comment: column
// k of row j packs the bit contributed by coordinate-i bit k).
func Point(net Net, i, dim int) float64 {
	m := net.GeneratingMatrix(dim)
	rows, _ := m.Dims()
	var acc float64
	scale := 0.5
	for l := 0; l < rows; l++ {
		if parity(m.Row(l)&uint64(i)) != 0 {
			acc += scale
		}
		scale /= 2
	}
	return acc
}

func parity(v uint64) uint64 {
	v ^= v >> 32
	v ^= v >> 16
	v ^= v >> 8
	v ^= v >> 4
	v ^= v >> 2
	v ^= v >> 1
	return v & 1
}
