// Copyright ©2024 The LatNetBuilder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package seq

// IndexMap is a permutation of the integers [0, n), used to reorder the
// indices of a Sequence without copying its elements (spec.md §9
// "index-map permutations"; original_source's IndexMap.h).
type IndexMap struct {
	perm []int
}

// NewIndexMap returns an IndexMap over a copy of perm. perm must be a
// permutation of [0, len(perm)); this is not validated since the cost
// of validation would defeat the purpose of a cheap index remap.
func NewIndexMap(perm []int) IndexMap {
	p := make([]int, len(perm))
	copy(p, perm)
	return IndexMap{perm: p}
}

// Identity returns the identity permutation of [0, n).
func Identity(n int) IndexMap {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	return IndexMap{perm: p}
}

// Len returns the size of the permutation.
func (m IndexMap) Len() int { return len(m.perm) }

// At returns the image of i under the permutation.
func (m IndexMap) At(i int) int { return m.perm[i] }

// Invert returns the inverse permutation, satisfying
// m.Invert().At(m.At(i)) == i for all i.
func (m IndexMap) Invert() IndexMap {
	inv := make([]int, len(m.perm))
	for i, v := range m.perm {
		inv[v] = i
	}
	return IndexMap{perm: inv}
}

// Mapped composes a base Sequence with an IndexMap: the i-th element of
// the result is base.At(m.At(i)).
type Mapped[T any] struct {
	Base Sequence[T]
	Map  IndexMap
}

// Len implements Sequence.
func (m Mapped[T]) Len() int { return m.Map.Len() }

// At implements Sequence.
func (m Mapped[T]) At(i int) T { return m.Base.At(m.Map.At(i)) }
