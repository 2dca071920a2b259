// Copyright ©2024 The LatNetBuilder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kernel

import (
	"math"
	"testing"

	"github.com/umontreal-simul/latnetbuilder-sub002/sizeparam"
	"github.com/umontreal-simul/latnetbuilder-sub002/storage"
)

func TestPAlphaSymmetric(t *testing.T) {
	k := NewPAlpha(2)
	for _, x := range []float64{0.1, 0.25, 0.4, 0.49} {
		a := k.Eval(x, 0)
		b := k.Eval(1-x, 0)
		if math.Abs(a-b) > 1e-9 {
			t.Errorf("P2 not symmetric at x=%v: omega(x)=%v omega(1-x)=%v", x, a, b)
		}
	}
}

func TestPAlphaRejectsOddAlpha(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for odd alpha")
		}
	}()
	NewPAlpha(3)
}

func TestRAlphaConvergesToPAlpha(t *testing.T) {
	p := NewPAlpha(4)
	r := NewRAlpha(4)
	diff := math.Abs(r.Eval(0.3, 1000000) - p.Eval(0.3, 0))
	if diff > 1e-6 {
		t.Fatalf("RAlpha should converge to PAlpha for large n, diff=%v", diff)
	}
}

func TestICAlphaPositive(t *testing.T) {
	k := NewICAlpha(4, 3)
	for _, x := range []float64{0, 0.1, 0.5, 0.9} {
		if v := k.Eval(x, 0); v <= 0 {
			t.Errorf("ICAlpha.Eval(%v) = %v, want > 0", x, v)
		}
	}
}

func TestICAlphaRejectsSmallInterlacing(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for interlacing factor < 2")
		}
	}()
	NewICAlpha(4, 1)
}

func TestBuildOrdinaryVectorLength(t *testing.T) {
	sp := sizeparam.NewOrdinaryUnilevel(12)
	s := storage.NewOrdinary(sp, storage.Symmetric)
	v := BuildOrdinaryVector(NewPAlpha(2), s)
	if len(v) != s.Size() {
		t.Fatalf("len(v) = %d, want %d", len(v), s.Size())
	}
}
