// Copyright ©2024 The LatNetBuilder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package weights

import "fmt"

// OrderDependent assigns gamma_u = Gamma_{|u|}, a weight depending
// only on the projection's cardinality (spec.md §3's "order-dependent"
// shape). DefaultWeight covers any order beyond len(Gammas).
type OrderDependent struct {
	Gammas        []float64 // Gammas[k-1] = Gamma_k for k = 1, 2, ...
	DefaultWeight float64
}

// NewOrderDependent returns the order-dependent weight with
// Gamma_k = gammas[k-1] for k <= len(gammas), and defaultWeight for
// larger orders.
func NewOrderDependent(gammas []float64, defaultWeight float64) OrderDependent {
	return OrderDependent{Gammas: append([]float64(nil), gammas...), DefaultWeight: defaultWeight}
}

// Weight implements Weights: gamma_u = Gamma_{|u|}.
func (w OrderDependent) Weight(coords []int) float64 {
	k := len(coords)
	if k >= 1 && k <= len(w.Gammas) {
		return w.Gammas[k-1]
	}
	return w.DefaultWeight
}

// Name implements Weights.
func (w OrderDependent) Name() string { return "order-dependent" }

var _ Weights = OrderDependent{}

// ProductOrderDependent (POD) assigns
// gamma_u = Gamma_{|u|} * prod_{j in u} gamma_j, the shape combining
// per-coordinate and per-order factors (spec.md §3's "product-and-
// order-dependent" shape).
type ProductOrderDependent struct {
	Order   OrderDependent
	Product Product
}

// NewProductOrderDependent returns the POD weight combining the given
// order and product factors.
func NewProductOrderDependent(order OrderDependent, product Product) ProductOrderDependent {
	return ProductOrderDependent{Order: order, Product: product}
}

// Weight implements Weights.
func (w ProductOrderDependent) Weight(coords []int) float64 {
	return w.Order.Weight(coords) * w.Product.Weight(coords)
}

// Name implements Weights.
func (w ProductOrderDependent) Name() string { return "POD" }

var _ Weights = ProductOrderDependent{}

// ProjectionDependent assigns an explicit gamma_u per named
// projection, falling back to DefaultWeight for any projection not
// listed (spec.md §3's "projection-dependent" shape).
type ProjectionDependent struct {
	byKey         map[string]float64
	DefaultWeight float64
}

// NewProjectionDependent returns an (initially empty) projection-
// dependent weight with the given fallback.
func NewProjectionDependent(defaultWeight float64) *ProjectionDependent {
	return &ProjectionDependent{byKey: make(map[string]float64), DefaultWeight: defaultWeight}
}

// Set assigns gamma_u for the projection given by coords.
func (w *ProjectionDependent) Set(coords []int, gamma float64) {
	w.byKey[key(coords)] = gamma
}

// Weight implements Weights.
func (w *ProjectionDependent) Weight(coords []int) float64 {
	if g, ok := w.byKey[key(coords)]; ok {
		return g
	}
	return w.DefaultWeight
}

// Name implements Weights.
func (w *ProjectionDependent) Name() string {
	return fmt.Sprintf("projection-dependent(%d explicit)", len(w.byKey))
}

var _ Weights = (*ProjectionDependent)(nil)

// Combined is the weighted sum gamma_u = sum_k gamma_u^{(k)} of a
// list of sub-weights of possibly different shapes (spec.md §3's
// "combined" shape; §4.4's CombinedWeights owns the sub-weight list
// and its state is the concatenation of the sub-states).
type Combined struct {
	Sub []Weights
}

// NewCombined returns the Combined weight summing the given sub-weights.
func NewCombined(sub ...Weights) Combined { return Combined{Sub: sub} }

// Weight implements Weights.
func (w Combined) Weight(coords []int) float64 {
	var g float64
	for _, s := range w.Sub {
		g += s.Weight(coords)
	}
	return g
}

// Name implements Weights.
func (w Combined) Name() string { return fmt.Sprintf("combined(%d)", len(w.Sub)) }

var _ Weights = Combined{}
