// Copyright ©2024 The LatNetBuilder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cbcstate

import "github.com/umontreal-simul/latnetbuilder-sub002/rvec"

// State is one weight component's coordinate-uniform CBC accumulator
// (spec.md §4.4). Its vectors are indexed by storage slot, in the
// un-permuted (storage-native) index space; the caller is responsible
// for applying storage.Stride(a) to obtain the strided kernel vector
// passed to WeightedState/Select.
type State interface {
	// WeightedState returns w_j, the vector contributed to the next
	// dimension's merit-sequence formula. The returned slice must not
	// be mutated by the caller.
	WeightedState() []float64
	// Select commits the next dimension with the given candidate's
	// strided kernel vector (storage.Stride(a) applied to the kernel
	// values vector v), advancing the state from s_j to s_{j+1}.
	Select(stridedV []float64)
	// Clone returns an independent copy of the state, used to
	// evaluate multiple candidates from the same committed prefix
	// without mutating the shared state (spec.md §3 "CBC states:
	// ... cloned for each candidate under evaluation").
	Clone() State
	// Reset returns the state to its dimension-0 (empty prefix) value.
	Reset()
}

// ones returns a vector of n ones, the neutral element s_0 for every
// weight shape's multiplicative accumulator.
func ones(n int) []float64 {
	v := make([]float64, n)
	for i := range v {
		v[i] = 1
	}
	return v
}

// cloneVec returns an independent copy of v.
func cloneVec(v []float64) []float64 {
	out := make([]float64, len(v))
	copy(out, v)
	return out
}

// MeritIncrement returns compressedSum(v ⊙ strided(w)) for the given kernel
// vector v (storage-native index space) and w already viewed through
// a candidate's stride permutation (strided(w)), the spec.md §4.4
// merit-sequence increment. n is the storage's virtual (uncompressed)
// size, needed by compressedSum to unfold symmetric compression.
func MeritIncrement(v, stridedW []float64, n int) float64 {
	prod := make([]float64, len(v))
	rvec.MulTo(prod, v, stridedW)
	return rvec.CompressedSum(prod, n)
}
