// Copyright ©2024 The LatNetBuilder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/umontreal-simul/latnetbuilder-sub002/gf2"
	"github.com/umontreal-simul/latnetbuilder-sub002/meritvalue"
	"github.com/umontreal-simul/latnetbuilder-sub002/seq"
	"github.com/umontreal-simul/latnetbuilder-sub002/sizeparam"
)

// Polynomial is the storage for a polynomial-modulus lattice. Compress
// is always None: the original implementation does not define a
// symmetric kernel for polynomial lattices (original_source's
// Storage-SIMPLE.h rejects Symmetric for polynomial/digital lattice
// types), a restriction reproduced here by NewPolynomial.
type Polynomial struct {
	size sizeparam.SizeParam
}

// NewPolynomial returns the storage for a polynomial lattice of the
// given size parameter.
func NewPolynomial(size sizeparam.SizeParam) Polynomial {
	if size.Kind() != sizeparam.Polynomial {
		panic("storage: NewPolynomial requires a polynomial size parameter")
	}
	return Polynomial{size: size}
}

// SizeParam returns the lattice's size parameter.
func (s Polynomial) SizeParam() sizeparam.SizeParam { return s.size }

// VirtualSize returns the number of points of the full (top) level.
func (s Polynomial) VirtualSize() int { return s.size.NumPoints(s.size.MaxLevel()) }

// Size returns the number of storage slots. Polynomial storage is
// never compressed.
func (s Polynomial) Size() int { return s.VirtualSize() }

// Symmetric always reports false for polynomial storage.
func (s Polynomial) Symmetric() bool { return false }

// CreateMeritValue returns a merit value appropriate to this
// storage's embedding.
func (s Polynomial) CreateMeritValue(v float64) meritvalue.Value {
	if s.size.Embedding() == sizeparam.Unilevel {
		return meritvalue.NewScalar(v)
	}
	mv := meritvalue.NewLevels(s.size.MaxLevel())
	for i := range mv {
		mv[i] = v
	}
	return mv
}

// Unpermute returns the storage slot holding the natural index i
// (the identity, since polynomial storage is never compressed).
func (s Polynomial) Unpermute(i int) int { return i }

// Modulus returns the modulus polynomial P(z) for the top level.
func (s Polynomial) Modulus() gf2.Poly {
	if s.size.Embedding() == sizeparam.Unilevel {
		return s.size.PolyModulus()
	}
	p := gf2.One
	b := s.size.PolyBase()
	for k := 0; k < s.size.MaxLevel(); k++ {
		p = p.Mul(b)
	}
	return p
}

// indexToPoly interprets the bits of i as the GF(2)-polynomial whose
// coefficient of z^l is bit l of i, matching original_source's
// convention j(z) = sum a_l z^l for j = sum a_l 2^l.
func indexToPoly(i int) gf2.Poly { return gf2.NewPoly(uint64(i)) }

// polyToIndex is the inverse of indexToPoly.
func polyToIndex(p gf2.Poly) int { return int(p.Uint64()) }

// Stride returns the index map sending storage slot j(z) to the
// storage slot of j(z)*q(z) mod P(z): the permutation induced on a
// kernel vector by multiplying every point's coordinate by the
// candidate generator polynomial q (spec.md §4.1).
func (s Polynomial) Stride(q gf2.Poly) seq.IndexMap {
	p := s.Modulus()
	sz := s.Size()
	perm := make([]int, sz)
	for j := 0; j < sz; j++ {
		h := indexToPoly(j).MulMod(q, p)
		perm[j] = polyToIndex(h)
	}
	return seq.NewIndexMap(perm)
}

// LevelRanges returns, for each level 0..maxLevel, the half-open
// range of storage slots first introduced at that level.
func (s Polynomial) LevelRanges() [][2]int {
	m := s.size.MaxLevel()
	out := make([][2]int, m+1)
	prevHi := 0
	for k := 0; k <= m; k++ {
		hi := s.size.NumPoints(k)
		out[k] = [2]int{prevHi, hi}
		prevHi = hi
	}
	return out
}
