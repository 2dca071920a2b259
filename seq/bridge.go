// Copyright ©2024 The LatNetBuilder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package seq

// Cached wraps a base Sequence, memoizing each element the first time
// it is read. This is the Go rendition of the BridgeSeq /
// BridgeIteratorCached pattern of spec.md §9 Pattern 3: a pipeline
// stage that may be read more than once (e.g. the same candidate
// merit value inspected by onProgress and then by the min-element
// scan) without recomputing it.
type Cached[T any] struct {
	base Sequence[T]
	have []bool
	vals []T
}

// NewCached returns a Cached sequence wrapping base.
func NewCached[T any](base Sequence[T]) *Cached[T] {
	n := base.Len()
	return &Cached[T]{
		base: base,
		have: make([]bool, n),
		vals: make([]T, n),
	}
}

// Len implements Sequence.
func (c *Cached[T]) Len() int { return len(c.vals) }

// At implements Sequence, computing and storing base.At(i) on the
// first call for a given i and returning the stored value thereafter.
func (c *Cached[T]) At(i int) T {
	if !c.have[i] {
		c.vals[i] = c.base.At(i)
		c.have[i] = true
	}
	return c.vals[i]
}

// Reset clears all cached values, forcing recomputation on next read.
// Used when a search driver resets between runs (spec.md §4.9 reset).
func (c *Cached[T]) Reset() {
	for i := range c.have {
		c.have[i] = false
	}
}
