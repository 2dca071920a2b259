// Copyright ©2024 The LatNetBuilder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package digitalnet

import "github.com/umontreal-simul/latnetbuilder-sub002/gf2"

// Explicit is a digital net defined by an arbitrary set of generating
// matrices, one per dimension, all square and of the same order
// (original_source's DigitalNet/ExplicitNet.h).
type Explicit struct {
	matrices []gf2.Matrix
	rows     int
	cols     int
}

// NewExplicit returns the net with the given generating matrices. It
// panics if the matrices are not all square of the same order, or if
// none are given.
func NewExplicit(matrices []gf2.Matrix) *Explicit {
	if len(matrices) == 0 {
		panic("digitalnet: NewExplicit requires at least one matrix")
	}
	r, c := matrices[0].Dims()
	if r != c {
		panic("digitalnet: NewExplicit requires square generating matrices")
	}
	for _, m := range matrices[1:] {
		mr, mc := m.Dims()
		if mr != r || mc != c {
			panic("digitalnet: NewExplicit: generating matrices must all have the same order")
		}
	}
	return &Explicit{matrices: matrices, rows: r, cols: c}
}

// NumColumns returns the number of columns of the generating matrices.
func (n *Explicit) NumColumns() int { return n.cols }

// NumRows returns the number of rows of the generating matrices.
func (n *Explicit) NumRows() int { return n.rows }

// NumPoints returns 2^NumColumns.
func (n *Explicit) NumPoints() int { return 1 << uint(n.cols) }

// Dimension returns the number of generating matrices (coordinates).
func (n *Explicit) Dimension() int { return len(n.matrices) }

// GeneratingMatrices returns the net's generating matrices, one per
// dimension.
func (n *Explicit) GeneratingMatrices() []gf2.Matrix { return n.matrices }

// GeneratingMatrix returns the generating matrix for dimension dim
// (0-based).
func (n *Explicit) GeneratingMatrix(dim int) gf2.Matrix { return n.matrices[dim] }

var _ Net = (*Explicit)(nil)
