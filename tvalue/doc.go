// Copyright ©2024 The LatNetBuilder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tvalue implements the equidistribution figure-of-merit
// engine of spec.md §4.7: a GF(2) Gauss reducer that tracks rank
// incrementally as rows are added, a t-value computation that tests
// every composition of a row budget across a projection's coordinates,
// and a projection scheduler that reuses already-computed t-values as
// a lower bound for their descendants' own computation.
//
// No file in the teacher or the retrieval pack implements digital-net
// equidistribution; this package is grounded on spec.md §4.7 and §8
// directly, reusing gf2.Matrix.Rank/StackRows (themselves grounded on
// the teacher's own dense bitset conventions, see package gf2) as its
// linear-algebra primitive.
package tvalue // import "github.com/umontreal-simul/latnetbuilder-sub002/tvalue"
