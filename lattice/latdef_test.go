// Copyright ©2024 The LatNetBuilder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lattice

import (
	"testing"

	"github.com/umontreal-simul/latnetbuilder-sub002/sizeparam"
)

func TestOrdinaryDimension(t *testing.T) {
	d := NewOrdinary(sizeparam.NewOrdinaryUnilevel(31), []int{1, 12, 3})
	if d.Dimension() != 3 {
		t.Fatalf("Dimension() = %d, want 3", d.Dimension())
	}
}

func TestOrdinaryLess(t *testing.T) {
	small := NewOrdinary(sizeparam.NewOrdinaryUnilevel(7), []int{1, 2})
	big := NewOrdinary(sizeparam.NewOrdinaryUnilevel(31), []int{1, 2})
	if !small.Less(big) {
		t.Fatal("expected smaller modulus to sort first")
	}
	a := NewOrdinary(sizeparam.NewOrdinaryUnilevel(31), []int{1, 2})
	b := NewOrdinary(sizeparam.NewOrdinaryUnilevel(31), []int{1, 3})
	if !a.Less(b) {
		t.Fatal("expected lexicographically smaller generator to sort first")
	}
}

func TestOrdinaryEqual(t *testing.T) {
	a := NewOrdinary(sizeparam.NewOrdinaryUnilevel(31), []int{1, 12})
	b := NewOrdinary(sizeparam.NewOrdinaryUnilevel(31), []int{1, 12})
	if !a.Equal(b) {
		t.Fatal("expected equal lattice definitions")
	}
	c := NewOrdinary(sizeparam.NewOrdinaryUnilevel(31), []int{1, 13})
	if a.Equal(c) {
		t.Fatal("expected unequal lattice definitions")
	}
}
