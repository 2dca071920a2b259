// Copyright ©2024 The LatNetBuilder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cbcstate

import "github.com/umontreal-simul/latnetbuilder-sub002/bitset"

// projEntry is one tracked projection's running partial product.
type projEntry struct {
	u       bitset.Projection
	gamma   float64
	partial []float64 // product of stride(v,a_l) over already-committed l in u
}

// ProjectionDependent is the CBC state for an explicit list of
// weighted projections (spec.md §4.4's "separate per-projection
// accumulator"). Each tracked projection u accumulates the product of
// the strided kernel values at the coordinates of u committed so far;
// once the last (largest) coordinate of u is about to be committed,
// its accumulated product (over the other members) becomes part of
// the weighted state, so that the generic merit formula's v ⊙
// stride_a(w_j) folds in the final member's contribution.
type ProjectionDependent struct {
	entries []*projEntry
	dim     int
	n       int
}

// NewProjectionDependent returns the ProjectionDependent CBC state
// tracking the given (gamma, projection) pairs over a storage of the
// given size.
func NewProjectionDependent(projs []bitset.Projection, gammas []float64, size int) *ProjectionDependent {
	entries := make([]*projEntry, len(projs))
	for i, u := range projs {
		entries[i] = &projEntry{u: u, gamma: gammas[i], partial: ones(size)}
	}
	return &ProjectionDependent{entries: entries, n: size}
}

// WeightedState implements State.
func (p *ProjectionDependent) WeightedState() []float64 {
	out := make([]float64, p.n)
	next := p.dim + 1
	for _, e := range p.entries {
		if e.u.Max() != next {
			continue
		}
		for i, v := range e.partial {
			out[i] += e.gamma * v
		}
	}
	return out
}

// Select implements State.
func (p *ProjectionDependent) Select(stridedV []float64) {
	next := p.dim + 1
	for _, e := range p.entries {
		if !e.u.Contains(next) || e.u.Max() == next {
			// Either this projection does not involve the committed
			// dimension, or it was just completed: its contribution
			// to the merit already folded in via WeightedState, and
			// no further coordinates of u remain to accumulate.
			continue
		}
		for i := range e.partial {
			e.partial[i] *= stridedV[i]
		}
	}
	p.dim++
}

// Clone implements State.
func (p *ProjectionDependent) Clone() State {
	entries := make([]*projEntry, len(p.entries))
	for i, e := range p.entries {
		entries[i] = &projEntry{u: e.u, gamma: e.gamma, partial: cloneVec(e.partial)}
	}
	return &ProjectionDependent{entries: entries, dim: p.dim, n: p.n}
}

// Reset implements State.
func (p *ProjectionDependent) Reset() {
	p.dim = 0
	for _, e := range p.entries {
		for i := range e.partial {
			e.partial[i] = 1
		}
	}
}

var _ State = (*ProjectionDependent)(nil)
