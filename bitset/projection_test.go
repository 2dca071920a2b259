// Copyright ©2024 The LatNetBuilder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bitset

import "testing"

func TestNewCoordsRoundTrip(t *testing.T) {
	p := New(3, 1, 5)
	want := []int{1, 3, 5}
	got := p.Coords()
	if len(got) != len(want) {
		t.Fatalf("Coords = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Coords[%d] = %d, want %d", i, got[i], want[i])
		}
	}
	if p.Card() != 3 {
		t.Errorf("Card = %d, want 3", p.Card())
	}
	if p.Max() != 5 {
		t.Errorf("Max = %d, want 5", p.Max())
	}
}

func TestContainsAndWithout(t *testing.T) {
	p := New(1, 2, 3)
	if !p.Contains(2) {
		t.Fatal("Contains(2) = false, want true")
	}
	q := p.Without(2)
	if q.Contains(2) {
		t.Fatal("Without(2) still contains 2")
	}
	if q.Card() != 2 {
		t.Errorf("Card after Without = %d, want 2", q.Card())
	}
}

func TestUnion(t *testing.T) {
	a := New(1, 2)
	b := New(2, 3)
	u := a.Union(b)
	if u.Card() != 3 {
		t.Errorf("Union card = %d, want 3", u.Card())
	}
}

func TestNewOutOfRangePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("New(0): want panic")
		}
	}()
	New(0)
}

func TestAllOfOrder(t *testing.T) {
	got := AllOfOrder(4, 2)
	want := int(6) // C(4,2)
	if len(got) != want {
		t.Fatalf("len(AllOfOrder(4,2)) = %d, want %d", len(got), want)
	}
	seen := make(map[Projection]bool)
	for _, p := range got {
		if p.Card() != 2 {
			t.Errorf("projection %v has cardinality %d, want 2", p, p.Card())
		}
		for _, c := range p.Coords() {
			if c < 1 || c > 4 {
				t.Errorf("projection %v has coordinate out of [1,4]", p)
			}
		}
		seen[p] = true
	}
	if len(seen) != want {
		t.Errorf("AllOfOrder produced %d distinct projections, want %d", len(seen), want)
	}
}

func TestAllOfOrderEdgeCases(t *testing.T) {
	if got := AllOfOrder(4, 0); got != nil {
		t.Errorf("AllOfOrder(4,0) = %v, want nil", got)
	}
	if got := AllOfOrder(2, 5); got != nil {
		t.Errorf("AllOfOrder(2,5) = %v, want nil", got)
	}
}

func TestAllNonDecreasingCardinality(t *testing.T) {
	projs := All(3, 0)
	last := 0
	for _, p := range projs {
		if p.Card() < last {
			t.Fatalf("All: cardinality decreased at %v", p)
		}
		last = p.Card()
	}
	// nonempty subsets of {1,2,3}: 2^3 - 1 = 7
	if len(projs) != 7 {
		t.Errorf("len(All(3,0)) = %d, want 7", len(projs))
	}
}

func TestSortByWeight(t *testing.T) {
	projs := []Projection{New(1), New(2), New(3)}
	weight := map[Projection]float64{
		New(1): 0.1,
		New(2): 0.9,
		New(3): 0.5,
	}
	SortByWeight(projs, func(p Projection) float64 { return weight[p] })
	if projs[0] != New(2) || projs[1] != New(3) || projs[2] != New(1) {
		t.Errorf("SortByWeight order = %v, want [2,3,1] by weight", projs)
	}
}

func TestContaining(t *testing.T) {
	projs := []Projection{New(1, 2), New(2, 3), New(1, 3)}
	got := Containing(projs, 2)
	if len(got) != 2 {
		t.Fatalf("Containing(2) = %v, want 2 projections", got)
	}
}
