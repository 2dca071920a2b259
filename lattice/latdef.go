// Copyright ©2024 The LatNetBuilder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lattice

import (
	"fmt"

	"github.com/umontreal-simul/latnetbuilder-sub002/gf2"
	"github.com/umontreal-simul/latnetbuilder-sub002/sizeparam"
)

// Ordinary is the definition of an ordinary (integer-modulus) rank-1
// lattice: a size parameter together with an integer generating
// vector, one coordinate per dimension.
type Ordinary struct {
	Size sizeparam.SizeParam
	Gen  []int
}

// NewOrdinary returns the lattice definition with the given size
// parameter and generating vector.
func NewOrdinary(size sizeparam.SizeParam, gen []int) Ordinary {
	return Ordinary{Size: size, Gen: append([]int(nil), gen...)}
}

// Dimension returns the number of coordinates of the generating vector.
func (d Ordinary) Dimension() int { return len(d.Gen) }

// Equal reports whether d and other have the same size and
// generating vector.
func (d Ordinary) Equal(other Ordinary) bool {
	if d.Size != other.Size || len(d.Gen) != len(other.Gen) {
		return false
	}
	for i, a := range d.Gen {
		if other.Gen[i] != a {
			return false
		}
	}
	return true
}

// Less orders lattice definitions by size, then lexicographically by
// generating vector, matching original_source's LatDef::operator<.
func (d Ordinary) Less(other Ordinary) bool {
	if d.Size.NumPoints(d.Size.MaxLevel()) != other.Size.NumPoints(other.Size.MaxLevel()) {
		return d.Size.NumPoints(d.Size.MaxLevel()) < other.Size.NumPoints(other.Size.MaxLevel())
	}
	for i := 0; i < len(d.Gen) && i < len(other.Gen); i++ {
		if d.Gen[i] != other.Gen[i] {
			return d.Gen[i] < other.Gen[i]
		}
	}
	return len(d.Gen) < len(other.Gen)
}

// String renders the lattice definition as "n: [a1 a2 ... as]".
func (d Ordinary) String() string {
	return fmt.Sprintf("%d: %v", d.Size.NumPoints(d.Size.MaxLevel()), d.Gen)
}

// Polynomial is the definition of a polynomial-modulus rank-1
// lattice: a size parameter together with a generating vector of
// GF(2) polynomials.
type Polynomial struct {
	Size sizeparam.SizeParam
	Gen  []gf2.Poly
}

// NewPolynomial returns the lattice definition with the given size
// parameter and generating vector.
func NewPolynomial(size sizeparam.SizeParam, gen []gf2.Poly) Polynomial {
	return Polynomial{Size: size, Gen: append([]gf2.Poly(nil), gen...)}
}

// Dimension returns the number of coordinates of the generating vector.
func (d Polynomial) Dimension() int { return len(d.Gen) }

// String renders the generating vector as "[q1(z) ... qs(z)]"; the
// modulus P(z) is not included.
func (d Polynomial) String() string {
	polys := make([]string, len(d.Gen))
	for i, p := range d.Gen {
		polys[i] = p.String()
	}
	return fmt.Sprintf("%v", polys)
}
