// Copyright ©2024 The LatNetBuilder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tvalue

import "github.com/umontreal-simul/latnetbuilder-sub002/gf2"

// TValue computes the (s,t)-value contribution t(u) of a projection u
// of cardinality k = len(gens), for a digital net of maximum level m,
// where gens[j] is coordinate u's j-th generating matrix (row i is the
// i-th row of that coordinate's generating matrix, 0-indexed, width m).
//
// By definition (spec.md §4.7), t(u) = m - l*(u), where l*(u) is the
// largest l such that for every composition (c_0,...,c_{k-1}) of l into
// k nonnegative parts each <= m, the stack of the first c_j rows of
// gens[j] (j = 0..k-1) has full row rank l. lowerBound is a known lower
// bound on t(u) itself (e.g. from the projection's mothers, see
// Scheduler) used to cap the search: since t(u) >= lowerBound implies
// l*(u) <= m - lowerBound, candidate l values above that cap can never
// be the answer and are skipped.
func TValue(gens []gf2.Matrix, m, lowerBound int) int {
	maxL := m - lowerBound
	if maxL < 0 {
		maxL = 0
	}
	best := 0
	reducer := NewGaussReducer(m)
	for l := 1; l <= maxL; l++ {
		if !allCompositionsFullRank(reducer, gens, m, l) {
			break
		}
		best = l
	}
	return m - best
}

// allCompositionsFullRank reports whether every composition of l into
// len(gens) nonnegative parts, each at most m, stacks to a full-row-rank
// l matrix.
func allCompositionsFullRank(reducer *GaussReducer, gens []gf2.Matrix, m, l int) bool {
	k := len(gens)
	c := make([]int, k)
	ok := true
	var rec func(idx, remaining int)
	rec = func(idx, remaining int) {
		if !ok {
			return
		}
		if idx == k-1 {
			if remaining > m {
				ok = false
				return
			}
			c[idx] = remaining
			if !checkComposition(reducer, gens, c, l) {
				ok = false
			}
			return
		}
		max := remaining
		if max > m {
			max = m
		}
		for ci := 0; ci <= max; ci++ {
			c[idx] = ci
			rec(idx+1, remaining-ci)
			if !ok {
				return
			}
		}
	}
	rec(0, l)
	return ok
}

func checkComposition(reducer *GaussReducer, gens []gf2.Matrix, c []int, l int) bool {
	reducer.Reset()
	for j, cj := range c {
		for r := 0; r < cj; r++ {
			reducer.AddRow(gens[j].Row(r))
		}
	}
	return reducer.Rank() == l
}
