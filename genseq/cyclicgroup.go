// Copyright ©2024 The LatNetBuilder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package genseq

import "github.com/umontreal-simul/latnetbuilder-sub002/seq"

// Order is the traversal order of a CyclicGroup: Direct follows powers
// of the generator, Inverse follows powers of its modular inverse.
type Order bool

const (
	// Direct visits g^0, g^1, g^2, ....
	Direct Order = false
	// Inverse visits g^-0, g^-1, g^-2, ....
	Inverse Order = true
)

// CyclicGroup is the multiplicative group of units (Z/b^m)*, b prime,
// exposed as a Sequence in the canonical generator order of spec.md
// §4.2. For odd b the group is cyclic of order (b-1)*b^(m-1) with
// generator g, visited as powers of g (or of g^-1 under Inverse). For
// b=2 the group is not cyclic for m>=3; it is presented as the union
// {1} ∪ 3·<3> interleaved with its negation, following the "after
// visiting 1, proceed with n-1, then continue multiplying by g"
// convention of spec.md §4.2.
type CyclicGroup struct {
	b, m, modulus int
	order         int // |(Z/b^m)*|
	gen           int // generator (b odd) or 3 (b == 2)
	ord           Order
}

// NewCyclicGroup returns the CyclicGroup over (Z/b^m)*, b an odd prime
// or 2, traversed in the given Order.
func NewCyclicGroup(b, m int, ord Order) *CyclicGroup {
	if m < 0 {
		panic("genseq: negative level")
	}
	modulus := ipow(b, m)
	g := &CyclicGroup{b: b, m: m, modulus: modulus, order: Totient(modulus), ord: ord}
	if m == 0 {
		g.order = 1
		return g
	}
	if b == 2 {
		g.gen = 3 % modulus
		if modulus == 1 {
			g.gen = 0
		}
		return g
	}
	g.gen = primitiveRootPowerOfPrime(b, m)
	return g
}

// Modulus returns b^m.
func (g *CyclicGroup) Modulus() int { return g.modulus }

// Len implements seq.Sequence[int].
func (g *CyclicGroup) Len() int { return g.order }

// Generator returns the group generator used to build the sequence (for
// b==2, the generator of the order-2^(m-2) cyclic subgroup <3>).
func (g *CyclicGroup) Generator() int { return g.gen }

// At returns the i-th element of the group in the configured order.
func (g *CyclicGroup) At(i int) int {
	if i < 0 || i >= g.order {
		panic("genseq: index out of range")
	}
	if g.modulus <= 2 {
		return 1 % max(g.modulus, 1)
	}
	gen := g.gen
	if g.ord == Inverse {
		gen = modInverse(gen, g.modulus)
	}
	if g.b != 2 {
		return powMod(gen, i, g.modulus)
	}
	k, parity := i/2, i%2
	c := powMod(gen, k, g.modulus)
	if parity == 0 {
		return c
	}
	return (g.modulus - c) % g.modulus
}

// SubgroupOrder returns the order of the subgroup of (Z/b^m)* formed by
// restricting to level k <= m, i.e. (b-1)*b^k/b, as described in
// spec.md §4.2 ("Subgroups at level ℓ").
func SubgroupOrder(b, k int) int {
	if k == 0 {
		return 1
	}
	return (b - 1) * ipow(b, k-1)
}

func ipow(b, e int) int {
	r := 1
	for i := 0; i < e; i++ {
		r *= b
	}
	return r
}

func powMod(base, exp, mod int) int {
	if mod == 1 {
		return 0
	}
	base %= mod
	if base < 0 {
		base += mod
	}
	result := 1
	for exp > 0 {
		if exp&1 == 1 {
			result = (result * base) % mod
		}
		base = (base * base) % mod
		exp >>= 1
	}
	return result
}

// primitiveRootPowerOfPrime returns a generator of (Z/b^m)* for an odd
// prime b, found by trial search for a primitive root mod b and lifted
// to mod b^m via the standard criterion: if g^(b-1) != 1 (mod b^2) then
// g generates (Z/b^k)* for every k >= 1; otherwise g+b does.
func primitiveRootPowerOfPrime(b, m int) int {
	g := primitiveRootModPrime(b)
	if m == 1 {
		return g
	}
	if powMod(g, b-1, b*b) == 1 {
		g += b
	}
	return g
}

func primitiveRootModPrime(p int) int {
	if p == 2 {
		return 1
	}
	phi := p - 1
	factors := distinctPrimeFactors(phi)
	for g := 2; g < p; g++ {
		ok := true
		for _, f := range factors {
			if powMod(g, phi/f, p) == 1 {
				ok = false
				break
			}
		}
		if ok {
			return g
		}
	}
	panic("genseq: no primitive root found")
}

func distinctPrimeFactors(n int) []int {
	var out []int
	m := n
	for p := 2; p*p <= m; p++ {
		if m%p == 0 {
			out = append(out, p)
			for m%p == 0 {
				m /= p
			}
		}
	}
	if m > 1 {
		out = append(out, m)
	}
	return out
}

var _ seq.Sequence[int] = (*CyclicGroup)(nil)
