// Copyright ©2024 The LatNetBuilder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gf2

import "testing"

func TestPolyAddIsXor(t *testing.T) {
	p := NewPoly(0b1011)
	q := NewPoly(0b0110)
	got := p.Add(q)
	if want := uint64(0b1101); got.Uint64() != want {
		t.Errorf("Add = %b, want %b", got.Uint64(), want)
	}
}

func TestPolyDegree(t *testing.T) {
	tests := []struct {
		v    uint64
		want int
	}{
		{1, 0},
		{0b10, 1},
		{0b1011, 3},
	}
	for _, tt := range tests {
		if got := NewPoly(tt.v).Degree(); got != tt.want {
			t.Errorf("Degree(%b) = %d, want %d", tt.v, got, tt.want)
		}
	}
}

func TestPolyDegreeZeroPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Degree of zero polynomial: want panic")
		}
	}()
	Zero.Degree()
}

func TestPolyMul(t *testing.T) {
	// (z+1)*(z+1) = z^2 + 1 over GF(2) (cross terms cancel).
	p := NewPoly(0b11)
	got := p.Mul(p)
	if want := uint64(0b101); got.Uint64() != want {
		t.Errorf("Mul = %b, want %b", got.Uint64(), want)
	}
}

func TestPolyDivMod(t *testing.T) {
	// z^3 + z + 1 divided by z + 1.
	p := NewPoly(0b1011)
	m := NewPoly(0b11)
	quo, rem := p.DivMod(m)
	if got := quo.Mul(m).Add(rem); got.Uint64() != p.Uint64() {
		t.Errorf("quo*m + rem = %b, want %b", got.Uint64(), p.Uint64())
	}
}

func TestPolyGcd(t *testing.T) {
	a := NewPoly(0b1100) // z^3 + z^2 = z^2(z+1)
	b := NewPoly(0b100)  // z^2
	g := Gcd(a, b)
	if g.Uint64() != 0b100 {
		t.Errorf("Gcd = %b, want %b", g.Uint64(), 0b100)
	}
}

func TestPolyIrreducible(t *testing.T) {
	tests := []struct {
		v    uint64
		want bool
	}{
		{0b11, true},   // z + 1
		{0b111, true},  // z^2 + z + 1
		{0b1001, false}, // z^3+1 = (z+1)(z^2+z+1)
		{1, false},     // constant 1 is not irreducible
	}
	for _, tt := range tests {
		if got := NewPoly(tt.v).Irreducible(); got != tt.want {
			t.Errorf("Irreducible(%b) = %v, want %v", tt.v, got, tt.want)
		}
	}
}

func TestPolyString(t *testing.T) {
	tests := []struct {
		v    uint64
		want string
	}{
		{0, "0"},
		{1, "1"},
		{0b10, "z"},
		{0b1011, "z^3 + z + 1"},
	}
	for _, tt := range tests {
		if got := NewPoly(tt.v).String(); got != tt.want {
			t.Errorf("String(%b) = %q, want %q", tt.v, got, tt.want)
		}
	}
}
