// Copyright ©2024 The LatNetBuilder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package seq

import "math/rand"

// Traversal maps a visitation order of length Len onto indices into some
// underlying base sequence. Forward and Random are the two traversal
// policies required by spec.md §4.2.
type Traversal interface {
	// Len returns the number of indices this traversal will visit.
	Len() int
	// Index returns the base-sequence index visited at position k,
	// 0 <= k < Len().
	Index(k int) int
}

// Forward visits a contiguous range [Offset, Offset+Size) of a base
// sequence's indices in increasing order.
type Forward struct {
	Offset int
	Size   int
}

// NewForward returns the Forward traversal visiting all Size elements
// starting at Offset.
func NewForward(offset, size int) Forward { return Forward{Offset: offset, Size: size} }

// Len implements Traversal.
func (f Forward) Len() int { return f.Size }

// Index implements Traversal.
func (f Forward) Index(k int) int { return f.Offset + k }

// Random visits Size indices sampled uniformly at random (with
// replacement) from [0, base) using a bound *rand.Rand. The sampled
// indices are drawn once, at construction, so that repeated reads of
// the same position are idempotent — required for the Cached bridge
// and for the min-element scan to see a stable sequence.
type Random struct {
	base    int
	indices []int
	rng     *rand.Rand
}

// NewRandom returns a Random traversal of size elements drawn uniformly
// from [0, base) using rng.
func NewRandom(base, size int, rng *rand.Rand) *Random {
	idx := make([]int, size)
	for i := range idx {
		idx[i] = rng.Intn(base)
	}
	return &Random{base: base, indices: idx, rng: rng}
}

// Len implements Traversal.
func (r *Random) Len() int { return len(r.indices) }

// Index implements Traversal.
func (r *Random) Index(k int) int { return r.indices[k] }

// Jump advances the underlying RNG to an independent substream (via the
// LFSR Jump contract of internal/rng) and redraws the sample, matching
// spec.md §4.2/§5's "jump on the RNG produces an independent substream".
func (r *Random) Jump(jumper interface{ Jump() }) {
	jumper.Jump()
	for i := range r.indices {
		r.indices[i] = r.rng.Intn(r.base)
	}
}

// View composes a base Sequence with a Traversal, yielding a new
// Sequence whose i-th element is base.At(trav.Index(i)).
type View[T any] struct {
	Base Sequence[T]
	Trav Traversal
}

// NewView returns the View of base through trav.
func NewView[T any](base Sequence[T], trav Traversal) View[T] {
	return View[T]{Base: base, Trav: trav}
}

// Len implements Sequence.
func (v View[T]) Len() int { return v.Trav.Len() }

// At implements Sequence.
func (v View[T]) At(i int) T { return v.Base.At(v.Trav.Index(i)) }
