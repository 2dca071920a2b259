// Copyright ©2024 The LatNetBuilder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package digitalnet

import (
	"testing"

	"github.com/umontreal-simul/latnetbuilder-sub002/gf2"
)

func TestExplicitNetIdentityIsVanDerCorput(t *testing.T) {
	net := NewExplicit([]gf2.Matrix{gf2.Identity(3)})
	if net.NumPoints() != 8 {
		t.Fatalf("NumPoints() = %d, want 8", net.NumPoints())
	}
	want := []float64{0, 0.5, 0.25, 0.75, 0.125, 0.625, 0.375, 0.875}
	for i, w := range want {
		if got := Point(net, i, 0); got != w {
			t.Errorf("Point(%d,0) = %v, want %v", i, got, w)
		}
	}
}

func TestSobolFirstCoordIsVanDerCorput(t *testing.T) {
	net := NewSobol(4, 3)
	for i := 0; i < net.NumPoints(); i++ {
		vdc := Point(NewExplicit([]gf2.Matrix{gf2.Identity(4)}), i, 0)
		if got := Point(net, i, 0); got != vdc {
			t.Errorf("Point(%d,0) = %v, want van der Corput %v", i, got, vdc)
		}
	}
}

func TestSobolNetDistinctPoints(t *testing.T) {
	net := NewSobol(5, 4)
	seen := map[[4]float64]bool{}
	for i := 0; i < net.NumPoints(); i++ {
		var pt [4]float64
		for d := 0; d < 4; d++ {
			pt[d] = Point(net, i, d)
		}
		if seen[pt] {
			t.Fatalf("duplicate point at index %d: %v", i, pt)
		}
		seen[pt] = true
	}
}

func TestNewSobolRejectsOutOfRangeDimension(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for out-of-table dimension")
		}
	}()
	NewSobol(4, MaxSobolDimension+1)
}
