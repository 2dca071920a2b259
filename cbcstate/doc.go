// Copyright ©2024 The LatNetBuilder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cbcstate implements the coordinate-uniform CBC state engine
// of spec.md §4.4: for each weight shape of package weights, a State
// that tracks the running per-coordinate accumulator s_j as
// dimensions are committed one at a time, and exposes the "weighted
// state" w_j consumed by the merit-sequence formula
//
//	merit_{j+1}(a) = merit_j + compressedSum(storage, v ⊙ stride_a(w_j))
//
// No file in the teacher (gonum, a real/complex numerics library) or
// the rest of the retrieval pack implements component-by-component
// lattice search; this package is grounded directly on spec.md §4.4's
// formulas and on original_source's CBC/Coeff.h naming
// (CoeffOne/CoeffSum/CoeffProjDep), adapted into the Go State
// interface below.
package cbcstate // import "github.com/umontreal-simul/latnetbuilder-sub002/cbcstate"
