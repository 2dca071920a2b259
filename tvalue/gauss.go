// Copyright ©2024 The LatNetBuilder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tvalue

import "github.com/umontreal-simul/latnetbuilder-sub002/gf2"

// GaussReducer maintains the reduced row echelon form of a growing set
// of GF(2) row vectors, incrementally, one AddRow at a time. It keeps
// enough bookkeeping to satisfy the invariant of spec.md §8 property 5:
// at all times, reduced = rowOps * original (mod 2), rowOps is square
// and invertible (a product of elementary row operations), and every
// pivot column has exactly one 1-bit set, in its own pivot row.
type GaussReducer struct {
	ncols      int
	original   []uint64
	reduced    []uint64
	rowOps     gf2.Matrix
	pivotRowOf []int // pivotRowOf[col] = row index owning that column's pivot, or -1
	rowPivot   []int // rowPivot[row] = pivot column of that row, or -1 if dependent
}

// NewGaussReducer returns an empty reducer over row vectors of width
// ncols (ncols <= 64, the gf2.Matrix column limit).
func NewGaussReducer(ncols int) *GaussReducer {
	p := make([]int, ncols)
	for i := range p {
		p[i] = -1
	}
	return &GaussReducer{ncols: ncols, pivotRowOf: p}
}

// Reset discards all rows added so far, for reuse across composition
// checks without reallocating pivotRowOf.
func (g *GaussReducer) Reset() {
	g.original = g.original[:0]
	g.reduced = g.reduced[:0]
	g.rowOps = gf2.Matrix{}
	g.rowPivot = g.rowPivot[:0]
	for i := range g.pivotRowOf {
		g.pivotRowOf[i] = -1
	}
}

// AddRow appends row to the reducer and re-pivots to restore the
// reduced-row-echelon invariant. It returns true if row increased the
// rank (row is independent from the rows already present).
func (g *GaussReducer) AddRow(row uint64) bool {
	k := len(g.original)
	g.original = append(g.original, row)

	newOps := gf2.NewMatrix(k+1, k+1)
	for i := 0; i < k; i++ {
		newOps.SetRow(i, g.rowOps.Row(i))
	}
	newOps.SetRow(k, 1<<uint(k))
	g.rowOps = newOps

	red := row
	for col := 0; col < g.ncols; col++ {
		r := g.pivotRowOf[col]
		if r < 0 || red&(1<<uint(col)) == 0 {
			continue
		}
		red ^= g.reduced[r]
		g.rowOps.SetRow(k, g.rowOps.Row(k)^g.rowOps.Row(r))
	}
	g.reduced = append(g.reduced, red)

	if red == 0 {
		g.rowPivot = append(g.rowPivot, -1)
		return false
	}
	col := lowestSetBit(red)
	g.pivotRowOf[col] = k
	g.rowPivot = append(g.rowPivot, col)
	for i := 0; i < k; i++ {
		if g.reduced[i]&(1<<uint(col)) != 0 {
			g.reduced[i] ^= red
			g.rowOps.SetRow(i, g.rowOps.Row(i)^g.rowOps.Row(k))
		}
	}
	return true
}

// Rank returns the number of pivot columns found so far.
func (g *GaussReducer) Rank() int {
	rank := 0
	for _, r := range g.pivotRowOf {
		if r >= 0 {
			rank++
		}
	}
	return rank
}

// RowOps returns the current row-operations matrix (exported for
// testing the reduced = rowOps * original invariant).
func (g *GaussReducer) RowOps() gf2.Matrix { return g.rowOps }

// Original returns the rows added so far, in insertion order.
func (g *GaussReducer) Original() []uint64 { return g.original }

// Reduced returns the current reduced row echelon rows, parallel to
// Original (exported for testing the reduced = rowOps * original
// invariant).
func (g *GaussReducer) Reduced() []uint64 { return g.reduced }

// PivotCols returns the pivot column of each row added so far, parallel
// to Original and Reduced; a dependent row's entry is -1 (exported for
// testing the reduced-row-echelon pivot-set invariant).
func (g *GaussReducer) PivotCols() []int {
	return append([]int(nil), g.rowPivot...)
}

func lowestSetBit(v uint64) int {
	for c := 0; c < 64; c++ {
		if v&(1<<uint(c)) != 0 {
			return c
		}
	}
	return -1
}
