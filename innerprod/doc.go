// Copyright ©2024 The LatNetBuilder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package innerprod implements the two CBC inner-product strategies
// of spec.md §4.4-§4.5: Scalar, the naive per-candidate evaluation of
//
//	merit_{j+1}(a) = merit_j + compressedSum(v ⊙ stride_a(w_j))
//
// and FastCBC, the FFT-accelerated evaluation of every candidate in a
// cyclic group at once, by recognizing that multiplication by a
// generator power is a cyclic shift once indices are reindexed by
// discrete logarithm, which turns the per-candidate sum into a
// circular correlation computable by one FFT/IFFT pair per level.
//
// As with cbcstate, no file in the teacher or retrieval pack
// implements CBC lattice search; this package is grounded on spec.md
// §4.4/§4.5's formulas directly, using gonum.org/v1/gonum/dsp/fourier's
// CmplxFFT as its numeric workhorse.
package innerprod // import "github.com/umontreal-simul/latnetbuilder-sub002/innerprod"
