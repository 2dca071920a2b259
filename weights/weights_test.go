// Copyright ©2024 The LatNetBuilder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package weights

import (
	"math"
	"testing"
)

func TestProductWeight(t *testing.T) {
	w := NewProduct([]float64{0.5, 0.2}, 0.1)
	got := w.Weight([]int{1, 2})
	want := 0.5 * 0.2
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("Weight({1,2}) = %v, want %v", got, want)
	}
	// Coordinate beyond len(Gammas) falls back to the default.
	got = w.Weight([]int{3})
	if got != 0.1 {
		t.Errorf("Weight({3}) = %v, want 0.1", got)
	}
}

func TestConstantProduct(t *testing.T) {
	w := NewConstantProduct(0.3)
	got := w.Weight([]int{1, 2, 3})
	want := 0.3 * 0.3 * 0.3
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("Weight = %v, want %v", got, want)
	}
}

func TestOrderDependentWeight(t *testing.T) {
	w := NewOrderDependent([]float64{1, 0.5}, 0.1)
	if got := w.Weight([]int{1}); got != 1 {
		t.Errorf("Weight(order 1) = %v, want 1", got)
	}
	if got := w.Weight([]int{1, 2}); got != 0.5 {
		t.Errorf("Weight(order 2) = %v, want 0.5", got)
	}
	if got := w.Weight([]int{1, 2, 3}); got != 0.1 {
		t.Errorf("Weight(order 3, beyond list) = %v, want 0.1", got)
	}
}

func TestProductOrderDependentWeight(t *testing.T) {
	order := NewOrderDependent([]float64{2}, 1)
	product := NewConstantProduct(0.5)
	w := NewProductOrderDependent(order, product)
	got := w.Weight([]int{1})
	want := 2 * 0.5
	if got != want {
		t.Errorf("Weight = %v, want %v", got, want)
	}
}

func TestProjectionDependentWeight(t *testing.T) {
	w := NewProjectionDependent(0.01)
	w.Set([]int{1, 3}, 0.9)
	if got := w.Weight([]int{3, 1}); got != 0.9 {
		t.Errorf("Weight({3,1}) = %v, want 0.9 (order-independent key)", got)
	}
	if got := w.Weight([]int{2}); got != 0.01 {
		t.Errorf("Weight(unset) = %v, want default 0.01", got)
	}
}

func TestCombinedWeight(t *testing.T) {
	a := NewConstantProduct(0.1)
	b := NewOrderDependent([]float64{0.5}, 0)
	w := NewCombined(a, b)
	got := w.Weight([]int{1})
	want := 0.1 + 0.5
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("Weight = %v, want %v", got, want)
	}
}

func TestNames(t *testing.T) {
	if NewConstantProduct(1).Name() == "" {
		t.Error("Product.Name() is empty")
	}
	if NewOrderDependent(nil, 0).Name() == "" {
		t.Error("OrderDependent.Name() is empty")
	}
	if NewProjectionDependent(0).Name() == "" {
		t.Error("ProjectionDependent.Name() is empty")
	}
	if (NewCombined().Name()) == "" {
		t.Error("Combined.Name() is empty")
	}
}
