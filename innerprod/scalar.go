// Copyright ©2024 The LatNetBuilder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package innerprod

import (
	"github.com/umontreal-simul/latnetbuilder-sub002/meritvalue"
	"github.com/umontreal-simul/latnetbuilder-sub002/rvec"
	"github.com/umontreal-simul/latnetbuilder-sub002/seq"
)

// Scalar is the naive (non-FFT) CBC inner-product strategy of spec.md
// §4.4: for each candidate generator value a in a generator sequence,
// apply the storage's Stride(a) index map to the weighted state w and
// compressedSum the elementwise product against the kernel vector v.
// It supports any Storage (Ordinary, Polynomial) and any embedding
// (unilevel or multilevel, via levelRanges) at O(size) per candidate.
type Scalar[G any] struct {
	v           []float64
	w           []float64
	virtualSize int
	symmetric   bool
	levelRanges [][2]int // nil for unilevel
	stride      func(G) seq.IndexMap
	create      func(float64) meritvalue.Value
	gen         seq.Sequence[G]
	baseMerit   meritvalue.Value
}

// NewScalar returns the Scalar merit sequence evaluating, for each
// element a = gen.At(i), the merit of committing dimension j+1 with
// generator a atop the already-committed baseMerit, using weighted
// state w and kernel vector v (both storage-native, length =
// storage.Size()). levelRanges is nil for a unilevel storage, or
// storage.LevelRanges() for a multilevel one.
func NewScalar[G any](
	gen seq.Sequence[G],
	stride func(G) seq.IndexMap,
	v, w []float64,
	virtualSize int,
	symmetric bool,
	levelRanges [][2]int,
	create func(float64) meritvalue.Value,
	baseMerit meritvalue.Value,
) *Scalar[G] {
	return &Scalar[G]{
		v: v, w: w, virtualSize: virtualSize, symmetric: symmetric,
		levelRanges: levelRanges, stride: stride, create: create,
		gen: gen, baseMerit: baseMerit,
	}
}

// Len implements seq.Sequence.
func (s *Scalar[G]) Len() int { return s.gen.Len() }

// At implements seq.Sequence: the merit value for generator
// s.gen.At(i), as a full MeritValue (scalar, or one entry per level).
func (s *Scalar[G]) At(i int) meritvalue.Value {
	a := s.gen.At(i)
	perm := s.stride(a)
	prod := make([]float64, len(s.v))
	for j := range prod {
		prod[j] = s.v[j] * s.w[perm.At(j)]
	}
	if s.levelRanges == nil {
		inc := foldSum(prod, s.virtualSize, s.symmetric)
		return meritvalue.Value{s.baseMerit.Scalar() + inc}
	}
	out := make(meritvalue.Value, len(s.levelRanges))
	var cum float64
	for k, r := range s.levelRanges {
		cum += rvec.Sum(prod[r[0]:r[1]])
		out[k] = s.baseMerit[k] + cum
	}
	return out
}

// foldSum sums prod back over its virtual (natural) length n,
// unfolding symmetric compression if in effect.
func foldSum(prod []float64, n int, symmetric bool) float64 {
	if symmetric {
		return rvec.CompressedSum(prod, n)
	}
	return rvec.Sum(prod)
}

var _ seq.Sequence[meritvalue.Value] = (*Scalar[int])(nil)
