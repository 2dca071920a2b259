// Copyright ©2024 The LatNetBuilder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bitset

import (
	"fmt"
	"math/bits"
	"sort"

	"gonum.org/v1/gonum/stat/combin"
)

// Projection is a finite, nonempty subset of 1-based coordinate
// indices (spec.md §3), stored as a 64-bit word: bit (i-1) set means
// coordinate i belongs to the projection. This limits a Projection to
// coordinates 1..64, matching gf2.Matrix's own 64-column limit used by
// package tvalue for the same composition-enumeration arithmetic.
type Projection uint64

// New returns the Projection containing exactly the given 1-based
// coordinates. It panics if any coordinate is not in [1, 64].
func New(coords ...int) Projection {
	var p Projection
	for _, c := range coords {
		if c < 1 || c > 64 {
			panic("bitset: coordinate out of range [1,64]")
		}
		p |= 1 << uint(c-1)
	}
	return p
}

// Single returns the Projection {coord}.
func Single(coord int) Projection { return New(coord) }

// Card returns the cardinality |u| of the projection.
func (p Projection) Card() int { return bits.OnesCount64(uint64(p)) }

// Contains reports whether coord (1-based) belongs to p.
func (p Projection) Contains(coord int) bool {
	if coord < 1 || coord > 64 {
		return false
	}
	return p&(1<<uint(coord-1)) != 0
}

// Union returns p ∪ q.
func (p Projection) Union(q Projection) Projection { return p | q }

// Without returns p \ {coord}.
func (p Projection) Without(coord int) Projection {
	if coord < 1 || coord > 64 {
		return p
	}
	return p &^ (1 << uint(coord-1))
}

// Coords returns the projection's coordinates in increasing order.
func (p Projection) Coords() []int {
	out := make([]int, 0, p.Card())
	for c := 1; c <= 64; c++ {
		if p.Contains(c) {
			out = append(out, c)
		}
	}
	return out
}

// Max returns the largest coordinate of p, or 0 if p is empty.
func (p Projection) Max() int {
	if p == 0 {
		return 0
	}
	return 64 - bits.LeadingZeros64(uint64(p))
}

// String renders the projection's coordinates as "[i j k]".
func (p Projection) String() string {
	return fmt.Sprintf("%v", p.Coords())
}

// AllOfOrder returns every projection of cardinality exactly k drawn
// from coordinates 1..s, in increasing coordinate order (the caller
// is expected to re-sort by weight for the non-increasing-weight
// enumeration of spec.md §3).
func AllOfOrder(s, k int) []Projection {
	if k <= 0 || k > s {
		return nil
	}
	combos := combin.Combinations(s, k)
	out := make([]Projection, len(combos))
	for i, combo := range combos {
		coords := make([]int, len(combo))
		for j, c := range combo {
			coords[j] = c + 1
		}
		out[i] = New(coords...)
	}
	return out
}

// All returns every nonempty projection drawn from coordinates 1..s
// with cardinality at most maxOrder (0 means unbounded, i.e. s),
// ordered by non-decreasing cardinality (spec.md §3/§4.6/§4.7's
// canonical enumeration order; ties within a cardinality are left in
// increasing-coordinate order here — callers that need the
// non-increasing-weight tie-break, e.g. package tvalue's scheduler,
// re-sort with SortByWeight).
func All(s, maxOrder int) []Projection {
	if maxOrder <= 0 || maxOrder > s {
		maxOrder = s
	}
	var out []Projection
	for k := 1; k <= maxOrder; k++ {
		out = append(out, AllOfOrder(s, k)...)
	}
	return out
}

// SortByWeight stably reorders projections of equal cardinality so
// that higher-weight projections come first, via the given weight
// function, leaving the non-decreasing-cardinality grouping intact
// (spec.md §3's "Enumerated in order of non-decreasing cardinality
// and, within a cardinality, in an order of non-increasing weight").
func SortByWeight(projs []Projection, weight func(Projection) float64) {
	sort.SliceStable(projs, func(i, j int) bool {
		ci, cj := projs[i].Card(), projs[j].Card()
		if ci != cj {
			return ci < cj
		}
		return weight(projs[i]) > weight(projs[j])
	})
}

// Containing returns the subset of projs each of which contains coord.
func Containing(projs []Projection, coord int) []Projection {
	var out []Projection
	for _, p := range projs {
		if p.Contains(coord) {
			out = append(out, p)
		}
	}
	return out
}
