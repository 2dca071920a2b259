// Copyright ©2024 The LatNetBuilder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rvec

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Sum returns the sum of the elements of s.
func Sum(s []float64) float64 { return floats.Sum(s) }

// Max returns the maximum value in s and its index. Max panics if s is
// empty.
func Max(s []float64) (max float64, ind int) { return floats.Max(s) }

// Dot returns the dot product of s1 and s2. Dot panics if the lengths
// of s1 and s2 do not match.
func Dot(s1, s2 []float64) float64 { return floats.Dot(s1, s2) }

// Scale multiplies every element of dst by c, in place.
func Scale(c float64, dst []float64) { floats.Scale(c, dst) }

// AddScaled performs dst[i] += alpha*s[i] for all i. It panics if the
// lengths of dst and s do not match.
func AddScaled(dst []float64, alpha float64, s []float64) { floats.AddScaled(dst, alpha, s) }

// MulTo sets dst[i] = s[i]*t[i] for all i, and returns dst. It panics if
// the lengths of s, t and dst do not match.
func MulTo(dst, s, t []float64) []float64 { return floats.MulTo(dst, s, t) }

// EqualWithinAbs returns true if a and b have an absolute difference of
// less than tol.
func EqualWithinAbs(a, b, tol float64) bool { return floats.EqualWithinAbs(a, b, tol) }

// EqualWithinRel returns true if the difference between a and b is not
// greater than tol times the greater of the absolute values of a and b.
func EqualWithinRel(a, b, tol float64) bool { return floats.EqualWithinRel(a, b, tol) }

// EqualWithinAbsOrRel returns true if a and b are equal to within the
// absolute tolerance absTol or the relative tolerance relTol. It is the
// standard comparator used by this module's tests for merit values
// (testable property 3: naive vs. fast CBC within 1e-10*|value|).
func EqualWithinAbsOrRel(a, b, absTol, relTol float64) bool {
	return floats.EqualWithinAbsOrRel(a, b, absTol, relTol)
}

// Pow sets dst[i] = s[i]^q for all i, and returns dst. gonum/floats has
// no elementwise real-exponent power helper, so this stays a local
// helper built on math.Pow.
func Pow(dst, s []float64, q float64) []float64 {
	if len(dst) != len(s) {
		panic("rvec: length mismatch")
	}
	for i, v := range s {
		dst[i] = math.Pow(v, q)
	}
	return dst
}

// CompressedSum folds a compressed vector v (of the natural length n,
// compressed per storage/Compress rules) back into the full sum over n
// natural points: the first element counted once, the last counted once
// when n is even, and every other element counted twice. This implements
// the "compressedSum" operation of spec.md §4.4. When v already has n
// elements (the storage.None compression policy, where no folding
// occurred) CompressedSum degenerates to a plain Sum: there is nothing
// to unfold. No gonum/floats equivalent exists; this fold is specific to
// the symmetric-compression indexing of package storage.
func CompressedSum(v []float64, n int) float64 {
	if n == 0 {
		return 0
	}
	if len(v) == n {
		return Sum(v)
	}
	if len(v) == 1 {
		return v[0]
	}
	sum := v[0]
	last := len(v) - 1
	for i := 1; i < last; i++ {
		sum += 2 * v[i]
	}
	if n%2 == 0 {
		sum += v[last]
	} else {
		sum += 2 * v[last]
	}
	return sum
}
