// Copyright ©2024 The LatNetBuilder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package genseq

import "github.com/umontreal-simul/latnetbuilder-sub002/seq"

// Extend is the generator-value sequence consumed by the Extend search
// driver (spec.md §4.9): given a base lattice of modulus p0 and
// generator a0 (0 <= a0 < p0), it enumerates every a in [0, p) with
// gcd(a,p) = 1 and a ≡ a0 (mod p0), for a larger modulus p that is a
// multiple of p0. This mirrors original_source's GenSeq/Extend.h.
type Extend struct {
	p, p0, a0 int
	values    []int
}

// NewExtend returns the Extend sequence of candidates modulo p
// congruent to a0 modulo p0. It panics if p0 does not divide p.
func NewExtend(p, p0, a0 int) *Extend {
	if p%p0 != 0 {
		panic("genseq: extend: p0 must divide p")
	}
	var values []int
	for a := a0 % p0; a < p; a += p0 {
		if gcdInt(a, p) == 1 {
			values = append(values, a)
		}
	}
	return &Extend{p: p, p0: p0, a0: a0, values: values}
}

// Len implements seq.Sequence[int].
func (e *Extend) Len() int { return len(e.values) }

// At implements seq.Sequence[int].
func (e *Extend) At(i int) int { return e.values[i] }

func gcdInt(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	if a < 0 {
		return -a
	}
	return a
}

var _ seq.Sequence[int] = (*Extend)(nil)
