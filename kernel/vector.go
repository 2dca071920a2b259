// Copyright ©2024 The LatNetBuilder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kernel

import "github.com/umontreal-simul/latnetbuilder-sub002/storage"

// BuildOrdinaryVector samples k over an Ordinary storage's virtual
// grid x_i = i/n, i = 0..n-1, folding the result through the
// storage's compression: v[s.Unpermute(i)] = k.Eval(i/n, n) (spec.md
// §4.3).
func BuildOrdinaryVector(k Kernel, s storage.Ordinary) []float64 {
	n := s.VirtualSize()
	v := make([]float64, s.Size())
	for i := 0; i < n; i++ {
		v[s.Unpermute(i)] = k.Eval(float64(i)/float64(n), n)
	}
	return v
}

// BuildPolynomialVector samples k over a Polynomial storage's virtual
// grid. The grid point for index i is toKernelIndex(i, P), the image
// of i(z)/P(z) under the m-term Laurent expansion — implemented here
// by reading the coefficients of i(z) (bit l of i is the coefficient
// of z^l) off as the binary digits of x, the natural correspondence
// between a degree-P(z) polynomial index and its point coordinate
// that the rest of this module's polynomial-lattice point generation
// also uses.
func BuildPolynomialVector(k Kernel, s storage.Polynomial) []float64 {
	n := s.VirtualSize()
	degree := s.Modulus().Degree()
	v := make([]float64, s.Size())
	for i := 0; i < n; i++ {
		v[s.Unpermute(i)] = k.Eval(polyGridPoint(i, degree), n)
	}
	return v
}

func polyGridPoint(i, degree int) float64 {
	var x float64
	scale := 0.5
	for b := 0; b < degree; b++ {
		if (i>>uint(b))&1 != 0 {
			x += scale
		}
		scale /= 2
	}
	return x
}
