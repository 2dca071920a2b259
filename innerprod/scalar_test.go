// Copyright ©2024 The LatNetBuilder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package innerprod

import (
	"testing"

	"github.com/umontreal-simul/latnetbuilder-sub002/meritvalue"
	"github.com/umontreal-simul/latnetbuilder-sub002/seq"
)

func TestScalarUnilevel(t *testing.T) {
	gen := seq.Slice[int]{1, 2}
	v := []float64{1, 2, 3}
	w := []float64{10, 20, 30}

	s := NewScalar[int](
		gen,
		func(a int) seq.IndexMap { return seq.Identity(3) },
		v, w, 3, false, nil,
		meritvalue.NewScalar,
		meritvalue.NewScalar(0),
	)
	if s.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", s.Len())
	}
	got := s.At(0).Scalar()
	want := 1*10 + 2*20 + 3*30.0
	if got != want {
		t.Errorf("At(0) = %v, want %v", got, want)
	}
}

func TestScalarMultilevel(t *testing.T) {
	gen := seq.Slice[int]{0}
	v := []float64{1, 1, 1, 1}
	w := []float64{1, 1, 1, 1}
	levelRanges := [][2]int{{0, 2}, {2, 4}}
	base := meritvalue.Value{5, 5}

	s := NewScalar[int](
		gen,
		func(a int) seq.IndexMap { return seq.Identity(4) },
		v, w, 4, false, levelRanges,
		meritvalue.NewScalar,
		base,
	)
	got := s.At(0)
	if len(got) != 2 {
		t.Fatalf("len(At(0)) = %d, want 2", len(got))
	}
	// level 0: base[0] + sum(prod[0:2]) = 5 + 2 = 7
	if got[0] != 7 {
		t.Errorf("got[0] = %v, want 7", got[0])
	}
	// level 1 is cumulative: base[1] + sum(prod[0:4]) = 5 + 4 = 9
	if got[1] != 9 {
		t.Errorf("got[1] = %v, want 9", got[1])
	}
}

func TestFoldSumSymmetric(t *testing.T) {
	prod := []float64{1, 2, 3}
	want := prod[0] + 2*prod[1] + prod[2] // n=4 is even: last term counted once
	if got := foldSum(prod, 4, true); got != want {
		t.Errorf("foldSum(symmetric) = %v, want %v", got, want)
	}
	if got := foldSum(prod, 3, false); got != 6 {
		t.Errorf("foldSum(non-symmetric) = %v, want 6", got)
	}
}
