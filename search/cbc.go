// Copyright ©2024 The LatNetBuilder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package search

import (
	"github.com/umontreal-simul/latnetbuilder-sub002/cbcstate"
	"github.com/umontreal-simul/latnetbuilder-sub002/genseq"
	"github.com/umontreal-simul/latnetbuilder-sub002/innerprod"
	"github.com/umontreal-simul/latnetbuilder-sub002/meritvalue"
	"github.com/umontreal-simul/latnetbuilder-sub002/observer"
	"github.com/umontreal-simul/latnetbuilder-sub002/seq"
	"github.com/umontreal-simul/latnetbuilder-sub002/sizeparam"
	"github.com/umontreal-simul/latnetbuilder-sub002/storage"
)

// GenSequenceFunc returns the candidate generator-value sequence to
// search over when committing dimension dim (0-based) of a CBC
// search, given the lattice's storage.
type GenSequenceFunc func(dim int, s storage.Ordinary) seq.Sequence[int]

// MeritSeqBuilder computes the merit sequence for a dimension's
// candidates, one of ScalarBuilder (naive, any storage) or
// FastCBCBuilder (FFT-accelerated, storage.None only).
type MeritSeqBuilder func(s storage.Ordinary, gen seq.Sequence[int], v, w []float64, create func(float64) meritvalue.Value, baseMerit meritvalue.Value) seq.Sequence[meritvalue.Value]

// ScalarBuilder is the MeritSeqBuilder wrapping innerprod.Scalar: the
// naive O(size)-per-candidate strategy, valid for any storage and
// embedding.
func ScalarBuilder(s storage.Ordinary, gen seq.Sequence[int], v, w []float64, create func(float64) meritvalue.Value, baseMerit meritvalue.Value) seq.Sequence[meritvalue.Value] {
	var levelRanges [][2]int
	if s.SizeParam().Embedding() == sizeparam.Multilevel {
		levelRanges = s.LevelRanges()
	}
	return innerprod.NewScalar[int](gen, s.Stride, v, w, s.VirtualSize(), s.Symmetric(), levelRanges, create, baseMerit)
}

// FastCBCBuilder is the MeritSeqBuilder wrapping innerprod.FastCBC:
// the FFT-accelerated strategy of spec.md §4.5, restricted to
// storage.None compression. It panics if s is symmetric-compressed.
func FastCBCBuilder(s storage.Ordinary, gen seq.Sequence[int], v, w []float64, create func(float64) meritvalue.Value, baseMerit meritvalue.Value) seq.Sequence[meritvalue.Value] {
	if s.Symmetric() {
		panic("search: FastCBCBuilder requires storage.None compression")
	}
	sp := s.SizeParam()
	base, maxLevel := sp.Modulus(), 1
	if sp.Embedding() == sizeparam.Multilevel {
		base, maxLevel = sp.Base(), sp.MaxLevel()
	}
	return innerprod.NewFastCBC(gen, base, maxLevel, v, w, create, baseMerit)
}

// CoprimeCandidates is the default GenSequenceFunc: a singleton {1}
// for dimension 0 (the conventional first coordinate of a rank-1
// lattice generating vector), and the full units group
// (CoprimeIntegers, or its symmetric half under storage.Symmetric)
// for every subsequent dimension.
func CoprimeCandidates(dim int, s storage.Ordinary) seq.Sequence[int] {
	if dim == 0 {
		return seq.Slice[int]{1}
	}
	n := s.SizeParam().Modulus()
	if s.Symmetric() {
		return genseq.NewCoprimeIntegersSymmetric(n)
	}
	return genseq.NewCoprimeIntegers(n)
}

// CBC is the component-by-component search driver of spec.md §4.9: it
// commits one dimension at a time, each time scanning Candidates(dim)
// for the value minimizing the merit sequence built by Strategy, then
// advancing the CBC state with the winning candidate's strided kernel
// vector.
type CBC struct {
	Base
	Candidates  GenSequenceFunc
	Strategy    MeritSeqBuilder
	MinObserver *observer.MinObserver
}

// NewCBC returns a CBC driver over b, searching Candidates(dim) at
// each dimension and ranking candidates with strategy. A nil
// candidates defaults to CoprimeCandidates; a nil strategy defaults to
// ScalarBuilder.
func NewCBC(b Base, candidates GenSequenceFunc, strategy MeritSeqBuilder, obs *observer.MinObserver) *CBC {
	if candidates == nil {
		candidates = CoprimeCandidates
	}
	if strategy == nil {
		strategy = ScalarBuilder
	}
	return &CBC{Base: b, Candidates: candidates, Strategy: strategy, MinObserver: orDefaultObserver(obs)}
}

// Execute runs the component-by-component search over c.Dimension
// coordinates.
func (c *CBC) Execute() {
	c.Reset()
	state := cbcstate.New(c.Weights, c.Storage.Size(), c.Dimension)
	create := c.Storage.CreateMeritValue
	gen := make([]int, 0, c.Dimension)
	baseMerit := create(0)
	for dim := 0; dim < c.Dimension; dim++ {
		ws := state.WeightedState()
		cands := c.Candidates(dim, c.Storage)
		merits := c.Strategy(c.Storage, cands, c.Kernel, ws, create, baseMerit)
		res := c.MinObserver.Scan(merits)
		if res.BestIndex < 0 {
			break
		}
		a := cands.At(res.BestIndex)
		gen = append(gen, a)
		baseMerit = res.BestValue
		perm := c.Storage.Stride(a)
		state.Select(permute(c.Kernel, perm))
		c.Observer.NetSelected(dim+1, baseMerit)
		if res.Aborted {
			c.Observer.Abort()
			break
		}
	}
	if len(gen) < c.Dimension {
		c.failed = true
		c.Observer.FailedSearch()
		return
	}
	c.finish(gen, baseMerit)
}

var _ Driver = (*CBC)(nil)
