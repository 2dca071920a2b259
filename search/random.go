// Copyright ©2024 The LatNetBuilder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package search

import (
	"math/rand"

	"github.com/umontreal-simul/latnetbuilder-sub002/observer"
	"github.com/umontreal-simul/latnetbuilder-sub002/seq"
	"github.com/umontreal-simul/latnetbuilder-sub002/storage"
)

// randomCoords wraps CoprimeCandidates(dim, s) in a Random traversal
// of the given sample size, independently for every non-fixed
// dimension, so that views[j].At(i) is the j-th coordinate of the
// i-th randomly sampled candidate.
func randomCoords(b *Base, sampleCount int, rng *rand.Rand) []seq.Sequence[int] {
	views := make([]seq.Sequence[int], b.Dimension)
	for j := range views {
		base := CoprimeCandidates(j, b.Storage)
		if j == 0 {
			views[j] = base
			continue
		}
		views[j] = seq.NewView[int](base, seq.NewRandom(base.Len(), sampleCount, rng))
	}
	return views
}

// randomCandidates adapts a set of per-dimension coordinate views,
// each already a uniformly random sample, into a sequence of complete
// generating vectors, zipping the views index-wise.
type randomCandidates struct {
	views []seq.Sequence[int]
	n     int
}

// Len implements seq.Sequence.
func (c randomCandidates) Len() int { return c.n }

// At implements seq.Sequence.
func (c randomCandidates) At(i int) []int {
	gen := make([]int, len(c.views))
	for j, v := range c.views {
		idx := i
		if j == 0 {
			idx = 0
		}
		gen[j] = v.At(idx)
	}
	return gen
}

var _ seq.Sequence[[]int] = randomCandidates{}

// NewRandom returns the Random driver of spec.md §4.9: Exhaustive
// restricted to sampleCount uniformly random candidate generating
// vectors (every coordinate but the first sampled independently),
// rather than the full cartesian product.
func NewRandom(b Base, sampleCount int, rng *rand.Rand, obs *observer.MinObserver) *FullCandidateDriver {
	views := randomCoords(&b, sampleCount, rng)
	cands := randomCandidates{views: views, n: sampleCount}
	return &FullCandidateDriver{Base: b, Candidates: cands, MinObserver: orDefaultObserver(obs)}
}

// NewRandomKorobov returns the RandomKorobov driver of spec.md §4.9:
// Korobov restricted to sampleCount uniformly random multipliers a,
// rather than the full units group.
func NewRandomKorobov(b Base, sampleCount int, rng *rand.Rand, obs *observer.MinObserver) *FullCandidateDriver {
	n := b.Storage.SizeParam().Modulus()
	base := CoprimeCandidates(1, b.Storage)
	view := seq.NewView[int](base, seq.NewRandom(base.Len(), sampleCount, rng))
	cands := korobovCandidates{a: view, n: n, dimension: b.Dimension}
	return &FullCandidateDriver{Base: b, Candidates: cands, MinObserver: orDefaultObserver(obs)}
}

// NewRandomCBC returns the RandomCBC driver of spec.md §4.9: CBC with
// a bounded random sample of candidates per dimension, obs's
// MaxAcceptedCount set to sampleCount accordingly.
func NewRandomCBC(b Base, sampleCount int, rng *rand.Rand, strategy MeritSeqBuilder, obs *observer.MinObserver) *CBC {
	obs = orDefaultObserver(obs)
	obs.MaxAcceptedCount = sampleCount
	candidates := func(dim int, s storage.Ordinary) seq.Sequence[int] {
		base := CoprimeCandidates(dim, s)
		if dim == 0 {
			return base
		}
		return seq.NewView[int](base, seq.NewRandom(base.Len(), sampleCount, rng))
	}
	return NewCBC(b, candidates, strategy, obs)
}
