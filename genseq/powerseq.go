// Copyright ©2024 The LatNetBuilder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package genseq

import "github.com/umontreal-simul/latnetbuilder-sub002/seq"

// PowerSeq wraps a base sequence of integers and yields, for each
// element x, x^r if modulus is 0, or x^r mod modulus otherwise. It is
// used to build Korobov generating vectors (1, a, a^2, ..., a^(s-1))
// from a CoprimeIntegers base sequence of candidate values a, one
// PowerSeq per coordinate with r equal to the coordinate index.
type PowerSeq struct {
	base    seq.Sequence[int]
	r       int
	modulus int
}

// NewPowerSeq returns the sequence whose i-th element is
// base.At(i)^r, reduced mod modulus unless modulus == 0.
func NewPowerSeq(base seq.Sequence[int], r, modulus int) *PowerSeq {
	return &PowerSeq{base: base, r: r, modulus: modulus}
}

// Len implements seq.Sequence[int].
func (p *PowerSeq) Len() int { return p.base.Len() }

// At implements seq.Sequence[int].
func (p *PowerSeq) At(i int) int {
	x := p.base.At(i)
	if p.modulus == 0 {
		v := 1
		for k := 0; k < p.r; k++ {
			v *= x
		}
		return v
	}
	return powMod(x, p.r, p.modulus)
}

var _ seq.Sequence[int] = (*PowerSeq)(nil)

// PowerSeqOf1Equal checks testable property 9: PowerSeq(seq, 1, 0) is
// element-wise equal to seq. Exposed as a helper so tests can assert
// it directly.
func PowerSeqOf1Equal(base seq.Sequence[int]) bool {
	p := NewPowerSeq(base, 1, 0)
	for i := 0; i < base.Len(); i++ {
		if p.At(i) != base.At(i) {
			return false
		}
	}
	return true
}
