// Copyright ©2024 The LatNetBuilder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tvalue

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestGaussReducerIndependentRows(t *testing.T) {
	g := NewGaussReducer(4)
	rows := []uint64{0b0001, 0b0010, 0b0100, 0b1000}
	for i, r := range rows {
		if inc := g.AddRow(r); !inc {
			t.Fatalf("row %d: want rank increase, got none", i)
		}
		if got, want := g.Rank(), i+1; got != want {
			t.Errorf("after row %d: rank = %d, want %d", i, got, want)
		}
	}
}

func TestGaussReducerDependentRow(t *testing.T) {
	g := NewGaussReducer(4)
	g.AddRow(0b0001)
	g.AddRow(0b0010)
	if inc := g.AddRow(0b0011); inc {
		t.Errorf("row 0b0011 = row0 xor row1: want no rank increase, got increase")
	}
	if got, want := g.Rank(), 2; got != want {
		t.Errorf("rank = %d, want %d", got, want)
	}
}

func TestGaussReducerInvariant(t *testing.T) {
	g := NewGaussReducer(4)
	g.AddRow(0b0101)
	g.AddRow(0b0011)
	g.AddRow(0b0110) // = row0 xor row1

	rowOps := g.RowOps()
	original := g.Original()
	reduced := g.Reduced()
	n, _ := rowOps.Dims()
	for i := 0; i < n; i++ {
		var acc uint64
		for j := 0; j < n; j++ {
			if rowOps.At(i, j) == 1 {
				acc ^= original[j]
			}
		}
		if acc != reduced[i] {
			t.Errorf("row %d: rowOps*original = %04b, reduced = %04b", i, acc, reduced[i])
		}
	}
}

func TestGaussReducerPivotCols(t *testing.T) {
	g := NewGaussReducer(4)
	g.AddRow(0b0101) // pivot col 0
	g.AddRow(0b0011) // pivot col 1 (after reduction, lowest set bit among surviving cols)
	g.AddRow(0b0110) // dependent: row0 xor row1

	want := []int{0, 1, -1}
	if diff := cmp.Diff(want, g.PivotCols()); diff != "" {
		t.Errorf("PivotCols() mismatch (-want +got):\n%s", diff)
	}
}

func TestGaussReducerReset(t *testing.T) {
	g := NewGaussReducer(3)
	g.AddRow(0b001)
	g.AddRow(0b010)
	g.Reset()
	if got := g.Rank(); got != 0 {
		t.Fatalf("after Reset: rank = %d, want 0", got)
	}
	if !g.AddRow(0b001) {
		t.Fatalf("after Reset: adding a fresh row should increase rank")
	}
}
