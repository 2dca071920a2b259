// Copyright ©2024 The LatNetBuilder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sizeparam

import (
	"testing"

	"github.com/umontreal-simul/latnetbuilder-sub002/gf2"
)

func TestOrdinaryUnilevelNumPoints(t *testing.T) {
	s := NewOrdinaryUnilevel(1)
	if n := s.NumPoints(0); n != 1 {
		t.Fatalf("NumPoints = %d, want 1", n)
	}
	if s.Totient() != 1 {
		t.Fatalf("Totient(1) = %d, want 1", s.Totient())
	}

	s = NewOrdinaryUnilevel(12)
	if n := s.NumPoints(0); n != 12 {
		t.Fatalf("NumPoints = %d, want 12", n)
	}
	if phi := s.Totient(); phi != 4 {
		t.Fatalf("Totient(12) = %d, want 4", phi)
	}
}

func TestOrdinaryMultilevelNumPoints(t *testing.T) {
	s := NewOrdinaryMultilevel(2, 3)
	want := []int{1, 2, 4, 8}
	for level, w := range want {
		if n := s.NumPoints(level); n != w {
			t.Errorf("NumPoints(%d) = %d, want %d", level, n, w)
		}
	}
	if s.Modulus() != 8 {
		t.Fatalf("Modulus() = %d, want 8", s.Modulus())
	}
}

func TestOrdinaryMultilevelRejectsCompositeBase(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for composite base")
		}
	}()
	NewOrdinaryMultilevel(4, 2)
}

func TestPolynomialUnilevelNumPoints(t *testing.T) {
	// P(z) = z^3 + z + 1, degree 3.
	p := gf2.NewPoly(0b1011)
	s := NewPolynomialUnilevel(p)
	if n := s.NumPoints(0); n != 8 {
		t.Fatalf("NumPoints = %d, want 8", n)
	}
}

func TestPolynomialMultilevelNumPoints(t *testing.T) {
	// B(z) = z + 1, degree 1.
	b := gf2.NewPoly(0b11)
	s := NewPolynomialMultilevel(b, 3)
	want := []int{1, 2, 4, 8}
	for level, w := range want {
		if n := s.NumPoints(level); n != w {
			t.Errorf("NumPoints(%d) = %d, want %d", level, n, w)
		}
	}
}

// TestSingleLevelZeroIsSinglePoint is testable property 12 from
// spec.md: configuration size "2^0" produces a single-point lattice.
func TestSingleLevelZeroIsSinglePoint(t *testing.T) {
	s := NewOrdinaryMultilevel(2, 0)
	if n := s.NumPoints(0); n != 1 {
		t.Fatalf("NumPoints(0) = %d, want 1", n)
	}
	if s.Modulus() != 1 {
		t.Fatalf("Modulus() = %d, want 1", s.Modulus())
	}
}

func TestAccessorPanicsOnWrongKind(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic calling Modulus() on a polynomial size param")
		}
	}()
	s := NewPolynomialUnilevel(gf2.NewPoly(0b11))
	_ = s.Modulus()
}
