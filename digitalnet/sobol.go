// Copyright ©2024 The LatNetBuilder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package digitalnet

import "github.com/umontreal-simul/latnetbuilder-sub002/gf2"

// sobolParams holds the primitive polynomial and initial direction
// numbers for one Sobol' coordinate beyond the first, in the
// Bratley-Fox/Joe-Kuo convention: the primitive polynomial over GF(2)
// is z^degree + a_1 z^{degree-1} + ... + a_{degree-1} z + 1, with a_1
// .. a_{degree-1} packed as the bits of poly (a_1 most significant),
// and m holds the degree initial direction integers m_1, ..., m_degree
// (m_i has i significant bits and is odd).
//
// This table covers only the first ten coordinates, a deliberate
// scope-trim of the full several-thousand-dimension Joe-Kuo direction
// number tables shipped with the original implementation; see
// DESIGN.md's scope-trim note on the Sobol table.
type sobolParams struct {
	degree int
	poly   int
	m      []int
}

var sobolTable = []sobolParams{
	{degree: 1, poly: 0, m: []int{1}},
	{degree: 2, poly: 1, m: []int{1, 3}},
	{degree: 3, poly: 1, m: []int{1, 3, 1}},
	{degree: 3, poly: 2, m: []int{1, 1, 1}},
	{degree: 4, poly: 1, m: []int{1, 1, 3, 3}},
	{degree: 4, poly: 4, m: []int{1, 3, 5, 13}},
	{degree: 5, poly: 2, m: []int{1, 1, 5, 5, 17}},
	{degree: 5, poly: 4, m: []int{1, 1, 5, 5, 5}},
	{degree: 5, poly: 7, m: []int{1, 1, 7, 11, 19}},
}

// MaxSobolDimension is the number of coordinates (including the first,
// van-der-Corput coordinate) the embedded table supports.
var MaxSobolDimension = len(sobolTable) + 1

// Sobol is a digital net whose generating matrices are built from the
// standard Sobol' direction-number recurrence (original_source's
// DigitalNet/SobolNet.h, whose generatingMatrix/generatingMatrices
// were left "TO IMPLEMENT").
type Sobol struct {
	order     int // number of rows/columns m; numPoints = 2^order
	dimension int
	matrices  []gf2.Matrix
}

// NewSobol returns a Sobol' net of the given order (generating
// matrices are order x order, so numPoints = 2^order) and dimension.
// It panics if dimension exceeds MaxSobolDimension.
func NewSobol(order, dimension int) *Sobol {
	if dimension < 1 || dimension > MaxSobolDimension {
		panic("digitalnet: NewSobol: dimension out of range of the embedded direction-number table")
	}
	matrices := make([]gf2.Matrix, dimension)
	matrices[0] = vanDerCorputMatrix(order)
	for d := 1; d < dimension; d++ {
		matrices[d] = sobolMatrix(order, sobolTable[d-1])
	}
	return &Sobol{order: order, dimension: dimension, matrices: matrices}
}

// NumColumns returns the order of the generating matrices.
func (n *Sobol) NumColumns() int { return n.order }

// NumRows returns the order of the generating matrices.
func (n *Sobol) NumRows() int { return n.order }

// NumPoints returns 2^order.
func (n *Sobol) NumPoints() int { return 1 << uint(n.order) }

// Dimension returns the net's dimension.
func (n *Sobol) Dimension() int { return n.dimension }

// GeneratingMatrices returns the net's generating matrices.
func (n *Sobol) GeneratingMatrices() []gf2.Matrix { return n.matrices }

// GeneratingMatrix returns the generating matrix for dimension dim (0-based).
func (n *Sobol) GeneratingMatrix(dim int) gf2.Matrix { return n.matrices[dim] }

// vanDerCorputMatrix is the generating matrix of the first Sobol'
// coordinate: the identity, reproducing the van der Corput sequence in
// base 2.
func vanDerCorputMatrix(order int) gf2.Matrix { return gf2.Identity(order) }

// sobolMatrix builds the order x order generating matrix for one
// coordinate from its primitive polynomial and initial direction
// numbers, following the standard direction-number recurrence
//
//	v_k = v_{k-d} xor (v_{k-d} >> d) xor sum_{l=1}^{d-1} a_l * v_{k-l}
//
// where v_k is represented as an order-bit integer (the k-th column of
// the generating matrix, most significant bit in row 0).
func sobolMatrix(order int, p sobolParams) gf2.Matrix {
	d := p.degree
	v := make([]int, order)
	for i := 0; i < d && i < order; i++ {
		v[i] = p.m[i] << uint(order-1-i)
	}
	for k := d; k < order; k++ {
		vk := v[k-d] ^ (v[k-d] >> uint(d))
		for l := 1; l < d; l++ {
			if (p.poly>>uint(d-1-l))&1 == 1 {
				vk ^= v[k-l]
			}
		}
		v[k] = vk
	}
	m := gf2.NewMatrix(order, order)
	for col := 0; col < order; col++ {
		for row := 0; row < order; row++ {
			bit := (v[col] >> uint(order-1-row)) & 1
			m.Set(row, col, uint64(bit))
		}
	}
	return m
}

var _ Net = (*Sobol)(nil)
