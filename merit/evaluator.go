// Copyright ©2024 The LatNetBuilder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package merit

import (
	"math"

	"github.com/umontreal-simul/latnetbuilder-sub002/bitset"
	"github.com/umontreal-simul/latnetbuilder-sub002/weights"
)

// Kind selects the accumulator template tag of spec.md §4.6.
type Kind int

const (
	// Sum accumulates projection contributions additively.
	Sum Kind = iota
	// Max accumulates the largest projection contribution.
	Max
)

// Neutral returns the accumulator's identity element: 0 for Sum,
// -Inf for Max (testable property 10, "dimension 0 evaluation
// returns the neutral element of the accumulator").
func (k Kind) Neutral() float64 {
	if k == Max {
		return math.Inf(-1)
	}
	return 0
}

// Combine folds term into acc according to the accumulator kind.
func (k Kind) Combine(acc, term float64) float64 {
	if k == Max {
		if term > acc {
			return term
		}
		return acc
	}
	return acc + term
}

// ProjValueFunc computes D2_u(gen), the projection-dependent
// discrepancy contribution, for a given projection. Callers supply
// one grounded in their storage/kernel machinery (coordinate-uniform
// figures) or in package tvalue (equidistribution figures).
type ProjValueFunc func(u bitset.Projection) float64

// Evaluator is a generic weighted figure-of-merit evaluator (spec.md
// §4.6): ACC_u gamma_u * D2_u(gen)^q over all nonempty projections of
// cardinality at most MaxOrder (0 = unbounded).
type Evaluator struct {
	Weights  weights.Weights
	Q        float64
	Kind     Kind
	MaxOrder int
}

// OnProgress is called after each projection's contribution has been
// folded into the running accumulator; a false return aborts the
// evaluation (spec.md §4.6, §7 "Search aborted for a candidate").
type OnProgress func(acc float64, u bitset.Projection) bool

// Evaluate computes F(gen) over every nonempty projection of
// coordinates 1..dimension, in non-decreasing-cardinality,
// non-increasing-weight order. If onProgress is non-nil and returns
// false for some projection, Evaluate returns +Inf immediately
// (spec.md §4.6/§7).
func (e Evaluator) Evaluate(dimension int, value ProjValueFunc, onProgress OnProgress) float64 {
	projs := bitset.All(dimension, e.MaxOrder)
	return e.fold(e.Kind.Neutral(), projs, value, onProgress)
}

// EvaluateDimension folds in only the projections that contain
// coordinate dim (1-based), atop a previously computed accumulator
// prevAcc — the incremental form spec.md §4.6 describes for CBC-style
// dimension-by-dimension construction ("When selecting dimension j+1,
// only projections containing coordinate j+1 are added").
func (e Evaluator) EvaluateDimension(prevAcc float64, dim, dimension int, value ProjValueFunc, onProgress OnProgress) float64 {
	all := bitset.All(dimension, e.MaxOrder)
	projs := bitset.Containing(all, dim)
	return e.fold(prevAcc, projs, value, onProgress)
}

func (e Evaluator) fold(start float64, projs []bitset.Projection, value ProjValueFunc, onProgress OnProgress) float64 {
	bitset.SortByWeight(projs, func(u bitset.Projection) float64 { return e.Weights.Weight(u.Coords()) })
	acc := start
	for _, u := range projs {
		g := e.Weights.Weight(u.Coords())
		if g == 0 {
			continue
		}
		d2 := value(u)
		term := g * math.Pow(d2, e.Q)
		acc = e.Kind.Combine(acc, term)
		if onProgress != nil && !onProgress(acc, u) {
			return math.Inf(1)
		}
	}
	return acc
}
