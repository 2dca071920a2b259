// Copyright ©2024 The LatNetBuilder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package search

import (
	"github.com/umontreal-simul/latnetbuilder-sub002/cbcstate"
	"github.com/umontreal-simul/latnetbuilder-sub002/meritvalue"
	"github.com/umontreal-simul/latnetbuilder-sub002/observer"
	"github.com/umontreal-simul/latnetbuilder-sub002/seq"
)

// fullMerit evaluates the full merit of a complete generating vector
// gen by replaying the CBC recurrence one dimension at a time with
// gen's own coordinates as the only candidate considered at each
// step: the "LatSeqOverCBC" wrapper of spec.md §4.9 that lets
// Exhaustive, Korobov and Eval reuse the CBC state machinery and
// Strategy for a single, fixed candidate.
func fullMerit(b *Base, gen []int) meritvalue.Value {
	state := cbcstate.New(b.Weights, b.Storage.Size(), b.Dimension)
	create := b.Storage.CreateMeritValue
	baseMerit := create(0)
	for _, a := range gen {
		ws := state.WeightedState()
		cand := seq.Slice[int]{a}
		merits := ScalarBuilder(b.Storage, cand, b.Kernel, ws, create, baseMerit)
		baseMerit = merits.At(0)
		perm := b.Storage.Stride(a)
		state.Select(permute(b.Kernel, perm))
	}
	return baseMerit
}

// FullCandidateDriver evaluates every element of a candidate sequence
// of complete generating vectors and keeps the one minimizing the
// merit, per spec.md §4.9's Exhaustive and Korobov drivers.
type FullCandidateDriver struct {
	Base
	Candidates  seq.Sequence[[]int]
	MinObserver *observer.MinObserver
}

// Execute runs the full-candidate scan.
func (d *FullCandidateDriver) Execute() {
	d.Reset()
	merits := seq.Func[meritvalue.Value]{N: d.Candidates.Len(), F: func(i int) meritvalue.Value {
		return fullMerit(&d.Base, d.Candidates.At(i))
	}}
	res := d.MinObserver.Scan(merits)
	if res.BestIndex < 0 {
		d.failed = true
		d.Observer.FailedSearch()
		return
	}
	d.finish(d.Candidates.At(res.BestIndex), res.BestValue)
}

// cartesian enumerates every generating vector with coordinate 0
// fixed to 1 and every other coordinate ranging independently over
// CoprimeCandidates(j, storage): the full search space of the
// Exhaustive driver.
type cartesian struct {
	dims []seq.Sequence[int]
}

func newCartesian(b *Base) *cartesian {
	dims := make([]seq.Sequence[int], b.Dimension)
	for j := range dims {
		dims[j] = CoprimeCandidates(j, b.Storage)
	}
	return &cartesian{dims: dims}
}

// Len implements seq.Sequence.
func (c *cartesian) Len() int {
	total := 1
	for _, d := range c.dims {
		total *= d.Len()
	}
	return total
}

// At implements seq.Sequence: the mixed-radix decoding of i across
// c.dims, least significant dimension first.
func (c *cartesian) At(i int) []int {
	gen := make([]int, len(c.dims))
	idx := i
	for j := len(c.dims) - 1; j >= 0; j-- {
		l := c.dims[j].Len()
		gen[j] = c.dims[j].At(idx % l)
		idx /= l
	}
	return gen
}

var _ seq.Sequence[[]int] = (*cartesian)(nil)

// NewExhaustive returns the Exhaustive driver of spec.md §4.9,
// enumerating every candidate generating vector of b.Dimension
// coordinates.
func NewExhaustive(b Base, obs *observer.MinObserver) *FullCandidateDriver {
	return &FullCandidateDriver{Base: b, Candidates: newCartesian(&b), MinObserver: orDefaultObserver(obs)}
}

// korobovGen returns the classical Korobov generating vector
// (1, a, a^2, ..., a^(dimension-1)) mod n.
func korobovGen(a, n, dimension int) []int {
	gen := make([]int, dimension)
	if dimension == 0 {
		return gen
	}
	gen[0] = 1
	for j := 1; j < dimension; j++ {
		gen[j] = (gen[j-1] * a) % n
	}
	return gen
}

// korobovCandidates adapts a sequence of Korobov multipliers a into
// the full generating vectors they induce.
type korobovCandidates struct {
	a         seq.Sequence[int]
	n         int
	dimension int
}

// Len implements seq.Sequence.
func (k korobovCandidates) Len() int { return k.a.Len() }

// At implements seq.Sequence.
func (k korobovCandidates) At(i int) []int { return korobovGen(k.a.At(i), k.n, k.dimension) }

var _ seq.Sequence[[]int] = korobovCandidates{}

// NewKorobov returns the Korobov driver of spec.md §4.9, searching
// over the one-parameter family of generating vectors
// (1, a, a^2, ..., a^(dimension-1)) for a in the units group modulo
// the lattice's modulus.
func NewKorobov(b Base, obs *observer.MinObserver) *FullCandidateDriver {
	n := b.Storage.SizeParam().Modulus()
	cands := korobovCandidates{a: CoprimeCandidates(1, b.Storage), n: n, dimension: b.Dimension}
	return &FullCandidateDriver{Base: b, Candidates: cands, MinObserver: orDefaultObserver(obs)}
}

var _ Driver = (*FullCandidateDriver)(nil)
