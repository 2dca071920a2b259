// Copyright ©2024 The LatNetBuilder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package genseq

import "github.com/umontreal-simul/latnetbuilder-sub002/seq"

// factor is one b_j^p_j term of the prime factorization of a modulus.
type factor struct {
	b, p, n, phi int // n = b^p, phi = Euler's totient of n = (b-1)*b^(p-1)
}

// factorize returns the distinct-prime-power factorization of n, as
// described by spec.md §4.2: n = prod_j n_j with n_j = b_j^p_j for
// distinct primes b_j.
func factorize(n int) []factor {
	var out []factor
	m := n
	for p := 2; p*p <= m; p++ {
		if m%p != 0 {
			continue
		}
		nj, e := 1, 0
		for m%p == 0 {
			m /= p
			nj *= p
			e++
		}
		out = append(out, factor{b: p, p: e, n: nj, phi: nj - nj/p})
	}
	if m > 1 {
		out = append(out, factor{b: m, p: 1, n: m, phi: m - 1})
	}
	return out
}

// Totient returns Euler's totient function phi(n).
func Totient(n int) int {
	if n <= 1 {
		return n // phi(1) = 1 by convention used throughout this module
	}
	phi := 1
	for _, f := range factorize(n) {
		phi *= f.phi
	}
	return phi
}

// kthCoprimeInFactor returns the d-th (0-indexed) integer k in
// [1, f.n) with b_j not dividing k, in increasing order. This closed
// form follows directly from inverting spec.md §4.2's digit formula
// d = k - floor(k/b) - 1.
func kthCoprimeInFactor(f factor, d int) int {
	b := f.b
	q, r := d/(b-1), d%(b-1)
	return q*b + r + 1
}

// crtCombine returns the unique k in [0, n) with k == residues[j] (mod
// factors[j].n) for every j, via the standard pairwise CRT
// reconstruction (the factors are pairwise coprime by construction).
func crtCombine(factors []factor, residues []int, n int) int {
	k, mod := 0, 1
	for j, f := range factors {
		// Solve k ≡ residues[j] (mod f.n) incrementally: k already
		// satisfies the congruences for the previous factors modulo
		// `mod`; extend by CRT with the new modulus f.n.
		k = crtPair(k, mod, residues[j], f.n)
		mod *= f.n
	}
	return ((k % n) + n) % n
}

// crtPair solves x ≡ a (mod m), x ≡ b (mod n) for coprime m, n via the
// extended Euclidean algorithm, returning a representative in [0, m*n).
func crtPair(a, m, b, n int) int {
	// m1*m + n1*n = 1
	m1, _ := modInverse(m, n), 0
	x := a + m*mulMod(m1, ((b-a)%n+n)%n, n)
	return ((x % (m * n)) + m*n) % (m * n)
}

func modInverse(a, m int) int {
	g, x, _ := extGCD(a%m, m)
	if g != 1 {
		panic("genseq: modular inverse does not exist")
	}
	return ((x % m) + m) % m
}

func extGCD(a, b int) (g, x, y int) {
	if a == 0 {
		return b, 0, 1
	}
	g, x1, y1 := extGCD(b%a, a)
	return g, y1 - (b/a)*x1, x1
}

func mulMod(a, b, m int) int {
	return ((a % m) * (b % m)) % m
}

// CoprimeIntegers is the sequence of integers k in {1,...,n-1} with
// gcd(k,n)=1, visited in the canonical CRT-digit order of spec.md §4.2.
// With symmetric compression only the first Totient(n)/2 indices are
// produced, since k and n-k share a storage slot after the symmetric
// fold, and each is reported as the smaller of k and n-k, so every
// element satisfies 2k <= n (testable property 1).
type CoprimeIntegers struct {
	n        int
	factors  []factor
	phi      int
	size     int
	symmetric bool
}

// NewCoprimeIntegers returns the CoprimeIntegers sequence for modulus
// n >= 1 with no compression.
func NewCoprimeIntegers(n int) *CoprimeIntegers {
	return newCoprimeIntegers(n, false)
}

// NewCoprimeIntegersSymmetric returns the CoprimeIntegers sequence for
// modulus n under symmetric compression (only the first half).
func NewCoprimeIntegersSymmetric(n int) *CoprimeIntegers {
	return newCoprimeIntegers(n, true)
}

func newCoprimeIntegers(n int, symmetric bool) *CoprimeIntegers {
	if n < 1 {
		panic("genseq: modulus must be >= 1")
	}
	factors := factorize(n)
	phi := Totient(n)
	size := phi
	if n == 1 {
		// The range {1,...,n-1} is empty for n=1; Totient(1)=1 is the
		// standard convention but does not apply to this sequence.
		size = 0
	} else if symmetric {
		size = phi / 2
	}
	return &CoprimeIntegers{n: n, factors: factors, phi: phi, size: size, symmetric: symmetric}
}

// Len implements seq.Sequence[int].
func (c *CoprimeIntegers) Len() int { return c.size }

// Modulus returns the modulus n.
func (c *CoprimeIntegers) Modulus() int { return c.n }

// At returns the i-th coprime residue in canonical order. The CRT
// digits are peeled off starting from the last prime-power factor
// (least significant), which is the disambiguation of spec.md §4.2's
// digit-weight formula that reproduces its literal scenario S2
// (CoprimeIntegers(12) = 1, 5, 7, 11 in that order).
func (c *CoprimeIntegers) At(i int) int {
	if i < 0 || i >= c.size {
		panic("genseq: index out of range")
	}
	residues := make([]int, len(c.factors))
	idx := i
	for j := len(c.factors) - 1; j >= 0; j-- {
		f := c.factors[j]
		d := idx % f.phi
		idx /= f.phi
		residues[j] = kthCoprimeInFactor(f, d)
	}
	k := crtCombine(c.factors, residues, c.n)
	if c.symmetric && 2*k > c.n {
		k = c.n - k
	}
	return k
}

var _ seq.Sequence[int] = (*CoprimeIntegers)(nil)
