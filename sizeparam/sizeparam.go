// Copyright ©2024 The LatNetBuilder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sizeparam

import "github.com/umontreal-simul/latnetbuilder-sub002/gf2"

// LatticeKind distinguishes ordinary integer-modulus lattices from
// polynomial-modulus lattices.
type LatticeKind int

const (
	// Ordinary lattices have an integer modulus.
	Ordinary LatticeKind = iota
	// Polynomial lattices have a GF(2)-polynomial modulus.
	Polynomial
)

// Embedding distinguishes a single-level point set from a nested
// (embedded) family of point sets indexed by level.
type Embedding int

const (
	// Unilevel is a single point set.
	Unilevel Embedding = iota
	// Multilevel is a nested family numPoints(k) = b^k, k = 0..m.
	Multilevel
)

// SizeParam is the size-parameter of a lattice or digital net: its
// modulus structure (integer or polynomial, unilevel or multilevel)
// together with the point counts it implies. It is the Go rendition
// of spec.md §3's four SizeParam variants, unified behind one struct
// since the four are closed, mutually exclusive shapes.
type SizeParam struct {
	kind      LatticeKind
	embedding Embedding

	// Ordinary case.
	base    int // prime base b (Multilevel) or the modulus itself (Unilevel, where base is unused)
	modulus int // n (Unilevel) or b^maxLevel (Multilevel)

	// Polynomial case.
	polyBase    gf2.Poly // B(z) (Multilevel) or P(z) (Unilevel)
	polyModulus gf2.Poly // B(z)^maxLevel-equivalent accumulation is not a polynomial power; see PolyModulus()

	maxLevel int
}

// NewOrdinaryUnilevel returns the size parameter for a single-level
// ordinary lattice of modulus n >= 1.
func NewOrdinaryUnilevel(n int) SizeParam {
	if n < 1 {
		panic("sizeparam: modulus must be >= 1")
	}
	return SizeParam{kind: Ordinary, embedding: Unilevel, modulus: n}
}

// NewOrdinaryMultilevel returns the size parameter for an embedded
// family of ordinary lattices with prime base b and maximum level m,
// modulus b^m.
func NewOrdinaryMultilevel(b, m int) SizeParam {
	if m < 0 {
		panic("sizeparam: negative max level")
	}
	if !isPrime(b) {
		panic("sizeparam: base must be prime")
	}
	mod := 1
	for i := 0; i < m; i++ {
		mod *= b
	}
	return SizeParam{kind: Ordinary, embedding: Multilevel, base: b, modulus: mod, maxLevel: m}
}

// NewPolynomialUnilevel returns the size parameter for a single-level
// polynomial lattice with modulus P(z).
func NewPolynomialUnilevel(p gf2.Poly) SizeParam {
	if p.IsZero() {
		panic("sizeparam: polynomial modulus must be nonzero")
	}
	return SizeParam{kind: Polynomial, embedding: Unilevel, polyModulus: p}
}

// NewPolynomialMultilevel returns the size parameter for an embedded
// family of polynomial lattices with base polynomial B(z) and maximum
// level m.
func NewPolynomialMultilevel(b gf2.Poly, m int) SizeParam {
	if m < 0 {
		panic("sizeparam: negative max level")
	}
	if b.IsZero() {
		panic("sizeparam: base polynomial must be nonzero")
	}
	return SizeParam{kind: Polynomial, embedding: Multilevel, polyBase: b, maxLevel: m}
}

// Kind returns whether this is an ordinary or polynomial size param.
func (s SizeParam) Kind() LatticeKind { return s.kind }

// Embedding returns whether this is a unilevel or multilevel size param.
func (s SizeParam) Embedding() Embedding { return s.embedding }

// MaxLevel returns the maximum level (0 for Unilevel).
func (s SizeParam) MaxLevel() int { return s.maxLevel }

// Base returns the prime base b (Ordinary Multilevel only).
func (s SizeParam) Base() int { return s.base }

// PolyBase returns the base polynomial B(z) (Polynomial Multilevel only).
func (s SizeParam) PolyBase() gf2.Poly { return s.polyBase }

// Modulus returns the integer modulus n (Ordinary only).
func (s SizeParam) Modulus() int {
	if s.kind != Ordinary {
		panic("sizeparam: Modulus() called on a polynomial size param")
	}
	return s.modulus
}

// PolyModulus returns the polynomial modulus P(z) (Polynomial
// Unilevel only).
func (s SizeParam) PolyModulus() gf2.Poly {
	if s.kind != Polynomial {
		panic("sizeparam: PolyModulus() called on an ordinary size param")
	}
	return s.polyModulus
}

// NumPoints returns the number of points of the point set at level
// (ignored for Unilevel): n for OrdinaryUnilevel, b^level for
// OrdinaryMultilevel, 2^deg(P) for PolynomialUnilevel, and
// 2^(level*deg(B)) for PolynomialMultilevel.
func (s SizeParam) NumPoints(level int) int {
	switch {
	case s.kind == Ordinary && s.embedding == Unilevel:
		return s.modulus
	case s.kind == Ordinary && s.embedding == Multilevel:
		n := 1
		for i := 0; i < level; i++ {
			n *= s.base
		}
		return n
	case s.kind == Polynomial && s.embedding == Unilevel:
		return 1 << uint(s.polyModulus.Degree())
	default: // Polynomial, Multilevel
		return 1 << uint(level*s.polyBase.Degree())
	}
}

// Totient returns |(Z/nZ)*| for OrdinaryUnilevel size params. It
// panics for the other three variants, for which the notion does not
// apply the same way (spec.md §3).
func (s SizeParam) Totient() int {
	if !(s.kind == Ordinary && s.embedding == Unilevel) {
		panic("sizeparam: Totient() only defined for OrdinaryUnilevel")
	}
	phi, n := 1, s.modulus
	m := n
	for p := 2; p*p <= m; p++ {
		if m%p != 0 {
			continue
		}
		phi *= p - 1
		for m%p == 0 {
			m /= p
			if m%p == 0 {
				phi *= p
			}
		}
	}
	if m > 1 {
		phi *= m - 1
	}
	if n == 1 {
		return 1
	}
	return phi
}

func isPrime(n int) bool {
	if n < 2 {
		return false
	}
	for d := 2; d*d <= n; d++ {
		if n%d == 0 {
			return false
		}
	}
	return true
}
