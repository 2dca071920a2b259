// Copyright ©2024 The LatNetBuilder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package seq implements the lazy, randomly-indexable sequence
// infrastructure of spec.md §4.2/§9 Pattern 3: a Sequence[T] interface
// composed with Forward or Random traversal policies, a Cached bridge
// that memoizes computed elements on first read, and an IndexMap
// permutation of indices. Concrete generator-value sequences (coprime
// integers, cyclic groups, power sequences) live in package genseq and
// are built on top of the primitives here.
package seq // import "github.com/umontreal-simul/latnetbuilder-sub002/seq"
