// Copyright ©2024 The LatNetBuilder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package search

import (
	"github.com/umontreal-simul/latnetbuilder-sub002/genseq"
	"github.com/umontreal-simul/latnetbuilder-sub002/observer"
	"github.com/umontreal-simul/latnetbuilder-sub002/seq"
	"github.com/umontreal-simul/latnetbuilder-sub002/storage"
)

// NewExtend returns the Extend driver of spec.md §4.9: given a base
// lattice of modulus p0 and generating vector baseGen, it runs a CBC
// search over a larger modulus (b.Storage's own modulus, a multiple
// of p0), restricting each dimension's candidates to genseq.Extend(p,
// p0, baseGen[dim]) — the values congruent to the base generator
// modulo p0. It panics if baseGen's length does not match b.Dimension.
//
// Grounded on original_source's GenSeq/Extend.h and Task/Extend.h: the
// original keeps the base lattice's accumulated CBC state across the
// size change and folds in only the newly introduced points; this
// rendition rebuilds the CBC state from scratch at the new modulus,
// since the kernel values vector itself differs at every index once
// the modulus changes (a simplification recorded in DESIGN.md).
func NewExtend(b Base, p0 int, baseGen []int, strategy MeritSeqBuilder, obs *observer.MinObserver) *CBC {
	if len(baseGen) != b.Dimension {
		panic("search: NewExtend: base generating vector length must equal dimension")
	}
	candidates := func(dim int, s storage.Ordinary) seq.Sequence[int] {
		p := s.SizeParam().Modulus()
		return genseq.NewExtend(p, p0, baseGen[dim])
	}
	return NewCBC(b, candidates, strategy, obs)
}
