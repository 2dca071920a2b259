// Copyright ©2024 The LatNetBuilder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/umontreal-simul/latnetbuilder-sub002/meritvalue"
	"github.com/umontreal-simul/latnetbuilder-sub002/seq"
	"github.com/umontreal-simul/latnetbuilder-sub002/sizeparam"
)

// Ordinary is the storage for an ordinary (integer-modulus) lattice,
// unilevel or embedded. The vector elements are not permuted; only
// the index space is folded by the Compress policy.
type Ordinary struct {
	size     sizeparam.SizeParam
	compress Compress
}

// NewOrdinary returns the storage for an ordinary lattice of the
// given size parameter and compression policy.
func NewOrdinary(size sizeparam.SizeParam, compress Compress) Ordinary {
	if size.Kind() != sizeparam.Ordinary {
		panic("storage: NewOrdinary requires an ordinary size parameter")
	}
	return Ordinary{size: size, compress: compress}
}

// SizeParam returns the lattice's size parameter.
func (s Ordinary) SizeParam() sizeparam.SizeParam { return s.size }

// VirtualSize returns the number of points of the full (top) level.
func (s Ordinary) VirtualSize() int { return s.size.NumPoints(s.size.MaxLevel()) }

// Size returns the number of storage slots (after compression).
func (s Ordinary) Size() int { return s.compress.Size(s.VirtualSize()) }

// Symmetric reports whether the Symmetric compression policy is in effect.
func (s Ordinary) Symmetric() bool { return s.compress == Symmetric }

// CreateMeritValue returns a merit value appropriate to this
// storage's embedding: a scalar for Unilevel, one entry per level for
// Multilevel.
func (s Ordinary) CreateMeritValue(v float64) meritvalue.Value {
	if s.size.Embedding() == sizeparam.Unilevel {
		return meritvalue.NewScalar(v)
	}
	mv := meritvalue.NewLevels(s.size.MaxLevel())
	for i := range mv {
		mv[i] = v
	}
	return mv
}

// Unpermute returns the storage slot holding the natural (virtual)
// index i.
func (s Ordinary) Unpermute(i int) int {
	return s.compress.CompressIndex(i, s.VirtualSize())
}

// Stride returns the index map sending storage slot j to the storage
// slot of (a*j) mod n, where n is the virtual size: the permutation
// induced on a compressed kernel vector by multiplying every point's
// coordinate by the candidate generator value a (spec.md §4.1).
func (s Ordinary) Stride(a int) seq.IndexMap {
	n := s.VirtualSize()
	sz := s.Size()
	perm := make([]int, sz)
	for j := 0; j < sz; j++ {
		perm[j] = s.compress.CompressIndex((a*j)%n, n)
	}
	return seq.NewIndexMap(perm)
}

// LevelRanges returns, for each level 0..maxLevel, the half-open
// range [lo, hi) of storage slots first introduced at that level: the
// cumulative point set of level k occupies natural indices [0,
// numPoints(k)), and LevelRanges reports how that interval maps into
// the (possibly compressed) storage index space.
func (s Ordinary) LevelRanges() [][2]int {
	m := s.size.MaxLevel()
	out := make([][2]int, m+1)
	n := s.VirtualSize()
	prevHi := 0
	for k := 0; k <= m; k++ {
		natHi := s.size.NumPoints(k)
		hi := s.compress.Size(natHi)
		if hi > s.compress.Size(n) {
			hi = s.compress.Size(n)
		}
		out[k] = [2]int{prevHi, hi}
		prevHi = hi
	}
	return out
}
