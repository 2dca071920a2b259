// Copyright ©2024 The LatNetBuilder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cbcstate

import (
	"testing"

	"github.com/umontreal-simul/latnetbuilder-sub002/weights"
)

func TestProductStateRecurrence(t *testing.T) {
	w := weights.NewConstantProduct(0.5)
	s := NewProduct(w, 2)

	ws0 := s.WeightedState()
	if ws0[0] != 0.5 || ws0[1] != 0.5 {
		t.Fatalf("WeightedState() before any Select = %v, want [0.5 0.5]", ws0)
	}

	s.Select([]float64{2, 3})
	got := s.WeightedState()
	// s_1(i) = 1 * (1 + 0.5*v(i)); weighted by gamma_2 = 0.5.
	want := []float64{0.5 * (1 + 0.5*2), 0.5 * (1 + 0.5*3)}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("WeightedState()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestProductStateClone(t *testing.T) {
	w := weights.NewConstantProduct(0.5)
	s := NewProduct(w, 2)
	s.Select([]float64{1, 1})
	clone := s.Clone()
	clone.Select([]float64{2, 2})
	if s.WeightedState()[0] == clone.WeightedState()[0] {
		t.Fatal("Clone: mutating the clone's state affected the original")
	}
}

func TestProductStateReset(t *testing.T) {
	w := weights.NewConstantProduct(0.5)
	s := NewProduct(w, 2)
	s.Select([]float64{1, 1})
	s.Reset()
	got := s.WeightedState()
	if got[0] != 0.5 || got[1] != 0.5 {
		t.Errorf("WeightedState() after Reset = %v, want [0.5 0.5]", got)
	}
}

func TestMeritIncrement(t *testing.T) {
	v := []float64{1, 2, 3}
	w := []float64{1, 1, 1}
	got := MeritIncrement(v, w, 3)
	if got != 6 {
		t.Errorf("MeritIncrement = %v, want 6", got)
	}
}

func TestNewDispatchesOnWeightShape(t *testing.T) {
	if _, ok := New(weights.NewConstantProduct(1), 2, 2).(*Product); !ok {
		t.Error("New(Product weight) did not return a *Product state")
	}
	if _, ok := New(weights.NewOrderDependent(nil, 1), 2, 2).(*Order); !ok {
		t.Error("New(OrderDependent weight) did not return an *Order state")
	}
	combined := weights.NewCombined(weights.NewConstantProduct(1), weights.NewConstantProduct(1))
	if _, ok := New(combined, 2, 2).(*Combined); !ok {
		t.Error("New(Combined weight) did not return a *Combined state")
	}
}

func TestNewUnsupportedWeightPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("New with an unsupported weight shape: want panic")
		}
	}()
	New(unsupportedWeights{}, 2, 2)
}

type unsupportedWeights struct{}

func (unsupportedWeights) Weight(coords []int) float64 { return 0 }
func (unsupportedWeights) Name() string                { return "unsupported" }
