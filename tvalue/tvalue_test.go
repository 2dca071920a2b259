// Copyright ©2024 The LatNetBuilder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tvalue

import (
	"testing"

	"github.com/umontreal-simul/latnetbuilder-sub002/bitset"
	"github.com/umontreal-simul/latnetbuilder-sub002/gf2"
)

func identity(m int) gf2.Matrix { return gf2.Identity(m) }

// reverseIdentity returns the m-by-m matrix whose row i is e_{m-1-i}.
func reverseIdentity(m int) gf2.Matrix {
	a := gf2.NewMatrix(m, m)
	for i := 0; i < m; i++ {
		a.SetRow(i, 1<<uint(m-1-i))
	}
	return a
}

func TestTValueSingleCoordinateIsZero(t *testing.T) {
	const m = 5
	got := TValue([]gf2.Matrix{identity(m)}, m, 0)
	if got != 0 {
		t.Errorf("TValue(single identity coordinate) = %d, want 0", got)
	}
}

func TestTValueDisjointPairIsZero(t *testing.T) {
	const m = 4
	gens := []gf2.Matrix{identity(m), reverseIdentity(m)}
	got := TValue(gens, m, 0)
	if got != 0 {
		t.Errorf("TValue(identity, reverseIdentity) = %d, want 0", got)
	}
}

func TestTValueDegeneratePairIsPositive(t *testing.T) {
	const m = 4
	// Two coordinates sharing the same generating matrix: at l=1 the
	// compositions (1,0) and (0,1) each stack a single row and have
	// full rank, but at l=2 composition (1,1) stacks row 0 twice, a
	// rank-deficient 2-row matrix, so the first failure is at l=2.
	gens := []gf2.Matrix{identity(m), identity(m)}
	got := TValue(gens, m, 0)
	if got <= 0 {
		t.Errorf("TValue(identity, identity) = %d, want > 0 (degenerate)", got)
	}
}

func TestTValueLowerBoundCapsSearch(t *testing.T) {
	const m = 5
	gens := []gf2.Matrix{identity(m)}
	// A single coordinate's t-value is always 0; an (incorrect, too
	// tight) lower bound should still be respected as an upper cap on
	// l*, producing a worse (larger) t-value than the true one.
	got := TValue(gens, m, m)
	if got != m {
		t.Errorf("TValue with lowerBound=m = %d, want %d (search capped to l=0)", got, m)
	}
}

func TestSchedulerMothersAndLowerBound(t *testing.T) {
	s := NewScheduler(3, 0)
	find := func(coords ...int) *Node {
		u := bitset.New(coords...)
		for _, n := range s.Nodes {
			if n.Proj == u {
				return n
			}
		}
		t.Fatalf("projection %v not scheduled", coords)
		return nil
	}
	n123 := find(1, 2, 3)
	if len(n123.Mothers) != 3 {
		t.Fatalf("{1,2,3}: want 3 mothers, got %d", len(n123.Mothers))
	}

	gens := func(coord int) gf2.Matrix { return identity(4) }
	s.ComputeAll(gens, 4)
	// Every projection here is built from identical identity matrices
	// per coordinate, so every composition with more than one nonzero
	// part collides; cardinality-2 and -3 projections are degenerate.
	if n123.T <= 0 {
		t.Errorf("{1,2,3}.T = %d, want > 0", n123.T)
	}
	n12 := find(1, 2)
	if n123.LowerBound < n12.T {
		t.Errorf("{1,2,3}.LowerBound = %d, want >= {1,2}.T = %d", n123.LowerBound, n12.T)
	}
}

