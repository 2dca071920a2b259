// Copyright ©2024 The LatNetBuilder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package search implements the search drivers of spec.md §4.9:
// Exhaustive, Korobov, Random, RandomKorobov, CBC, FastCBC, RandomCBC,
// Extend and Eval, wiring together package storage (the point-set
// grid), cbcstate (the per-weight-shape CBC accumulator), innerprod
// (the naive and FFT-accelerated merit sequences), observer (the
// min-element scan and driver-level signals) and filter (the merit
// filter pipeline) into the uniform surface every driver exposes:
// dimension, execute, reset, BestGen, BestMeritValue.
//
// Scope: this package's drivers construct ordinary (integer-modulus)
// rank-1 lattices. Polynomial-modulus and digital-net searches follow
// the identical driver shape over gf2.Poly/digitalnet.Net in place of
// an integer generating vector, but are not built out here — see
// DESIGN.md for the scope note. Exhaustive, Korobov and Eval replay
// the CBC recurrence one dimension at a time for a fixed candidate
// (fullMerit), so they support multilevel storages exactly as CBC
// does, through innerprod.Scalar's own per-level folding. FastCBC
// remains restricted to storage.None compression.
//
// No file in the teacher or retrieval pack implements a search driver
// of this shape; this package is grounded on spec.md §4.9 directly,
// and on original_source's GenSeq/Extend.h for the Extend driver's
// restricted candidate sequence (see genseq.Extend, already grounded).
package search // import "github.com/umontreal-simul/latnetbuilder-sub002/search"
