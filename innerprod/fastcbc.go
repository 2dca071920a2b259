// Copyright ©2024 The LatNetBuilder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package innerprod

import (
	"math/cmplx"

	"gonum.org/v1/gonum/dsp/fourier"

	"github.com/umontreal-simul/latnetbuilder-sub002/genseq"
	"github.com/umontreal-simul/latnetbuilder-sub002/meritvalue"
	"github.com/umontreal-simul/latnetbuilder-sub002/seq"
)

// FastCBC is the FFT-accelerated inner-product strategy of spec.md
// §4.5 for an ordinary storage of prime base b and maximum level m
// (modulus = b^m, unilevel searches being the m=1 special case with b
// the prime modulus itself). It requires storage.None compression
// (the symmetric-compression reindexing needed to make the FFT trick
// apply to a folded vector is not implemented — a documented scope
// simplification, see DESIGN.md).
//
// The key identity: the points newly introduced at level k (k>=1) are
// indexed i = j*b^(m-k) for j ranging over the units mod b^k, a group
// of order (b-1)*b^(k-1). Multiplication by any unit a mod b^m acts on
// this level's indices exactly as multiplication by (a mod b^k) acts
// on the units mod b^k — a cyclic shift once j is replaced by its
// discrete logarithm with respect to a generator of that group. This
// turns "the merit for every candidate a in the top-level group" into
// one circular cross-correlation per level, computed by one FFT/IFFT
// pair and cached.
type FastCBC struct {
	base, maxLevel int
	levels         []levelCorr
	c0             float64 // contribution of the single level-0 index (index 0, stride_a(0)=0 for every a)
	create         func(float64) meritvalue.Value
	baseMerit      meritvalue.Value
	gen            seq.Sequence[int]
}

type levelCorr struct {
	order int
	dlog  []int // dlog[u] = discrete log of unit u mod b^k, -1 if u is not a unit
	corr  []float64
}

// NewFastCBC precomputes the per-level FFT correlations for an
// ordinary, non-compressed storage of modulus b^maxLevel, kernel
// vector v and weighted state w (both of length b^maxLevel), and
// returns the merit sequence indexed by gen, a generator sequence
// over the units mod b^maxLevel (typically a *genseq.CyclicGroup).
// It panics if len(v) != len(w) != b^maxLevel.
func NewFastCBC(gen seq.Sequence[int], base, maxLevel int, v, w []float64, create func(float64) meritvalue.Value, baseMerit meritvalue.Value) *FastCBC {
	n := ipow(base, maxLevel)
	if len(v) != n || len(w) != n {
		panic("innerprod: FastCBC requires kernel and state vectors of length base^maxLevel")
	}
	f := &FastCBC{base: base, maxLevel: maxLevel, create: create, baseMerit: baseMerit, gen: gen}
	f.c0 = v[0] * w[0]
	f.levels = make([]levelCorr, maxLevel+1)
	for k := 1; k <= maxLevel; k++ {
		bk := ipow(base, k)
		g := genseq.NewCyclicGroup(base, k, genseq.Direct)
		order := g.Len()
		dlog := make([]int, bk)
		for i := range dlog {
			dlog[i] = -1
		}
		vp := make([]complex128, order)
		wp := make([]complex128, order)
		shift := ipow(base, maxLevel-k)
		for idx := 0; idx < order; idx++ {
			u := g.At(idx)
			dlog[u] = idx
			i := u * shift
			vp[idx] = complex(v[i], 0)
			wp[idx] = complex(w[i], 0)
		}
		f.levels[k] = levelCorr{order: order, dlog: dlog, corr: correlate(vp, wp, order)}
	}
	return f
}

// correlate returns corr[l] = sum_idx v[idx]*w[(idx+l) mod order],
// the circular cross-correlation of the real sequences packed into v
// and w, computed via one FFT/IFFT pair per the correlation theorem:
// IFFT(conj(FFT(v)) .* FFT(w))[l] = order * corr[l] for our
// unnormalized FFT/IFFT convention (spec.md §4.5, §8 property 8).
func correlate(v, w []complex128, order int) []float64 {
	t := fourier.NewCmplxFFT(order)
	V := t.FFT(nil, v)
	W := t.FFT(nil, w)
	prod := make([]complex128, order)
	for i := range prod {
		prod[i] = cmplx.Conj(V[i]) * W[i]
	}
	raw := t.IFFT(nil, prod)
	out := make([]float64, order)
	for i, c := range raw {
		out[i] = real(c) / float64(order)
	}
	return out
}

// Len implements seq.Sequence.
func (f *FastCBC) Len() int { return f.gen.Len() }

// At implements seq.Sequence: the merit value for f.gen.At(i),
// reconstructed level by level from the cached correlations.
func (f *FastCBC) At(i int) meritvalue.Value {
	a := f.gen.At(i)
	if len(f.baseMerit) == 1 {
		return meritvalue.Value{f.baseMerit.Scalar() + f.c0 + f.levelSum(a, f.maxLevel)}
	}
	out := make(meritvalue.Value, f.maxLevel+1)
	var cum float64
	for k := 0; k <= f.maxLevel; k++ {
		if k == 0 {
			cum = f.c0
		} else {
			cum += f.contribution(a, k)
		}
		out[k] = f.baseMerit[k] + cum
	}
	return out
}

// levelSum returns the total FFT-derived contribution of levels 1..k
// for candidate a (used by the unilevel At path, which only reports
// the top level).
func (f *FastCBC) levelSum(a, k int) float64 {
	var sum float64
	for l := 1; l <= k; l++ {
		sum += f.contribution(a, l)
	}
	return sum
}

func (f *FastCBC) contribution(a, k int) float64 {
	lvl := f.levels[k]
	bk := ipow(f.base, k)
	u := ((a % bk) + bk) % bk
	idx := lvl.dlog[u]
	if idx < 0 {
		// a is not a unit mod b^k: should not occur for a drawn from
		// the top-level group, since a unit mod b^maxLevel reduces to
		// a unit mod any b^k, k <= maxLevel.
		panic("innerprod: FastCBC: candidate is not a unit at this level")
	}
	return lvl.corr[idx]
}

func ipow(b, e int) int {
	r := 1
	for i := 0; i < e; i++ {
		r *= b
	}
	return r
}

var _ seq.Sequence[meritvalue.Value] = (*FastCBC)(nil)
