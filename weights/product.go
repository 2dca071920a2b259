// Copyright ©2024 The LatNetBuilder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package weights

import "fmt"

// Product assigns gamma_u = prod_{j in u} gamma_j, the per-coordinate
// weight product (spec.md §3's "product" weight shape). DefaultWeight
// is used for coordinates beyond len(Gammas), so a Product weight can
// be specified with a short prefix and a constant tail.
type Product struct {
	Gammas       []float64
	DefaultWeight float64
}

// NewProduct returns a Product weight with the given per-coordinate
// gammas and a default weight applied to any coordinate index beyond
// len(gammas).
func NewProduct(gammas []float64, defaultWeight float64) Product {
	return Product{Gammas: append([]float64(nil), gammas...), DefaultWeight: defaultWeight}
}

// NewConstantProduct returns a Product weight with gamma_j == gamma
// for every coordinate.
func NewConstantProduct(gamma float64) Product {
	return Product{DefaultWeight: gamma}
}

func (w Product) gamma(j int) float64 {
	if j >= 1 && j <= len(w.Gammas) {
		return w.Gammas[j-1]
	}
	return w.DefaultWeight
}

// Weight implements Weights: gamma_u = prod_{j in u} gamma_j.
func (w Product) Weight(coords []int) float64 {
	g := 1.0
	for _, j := range coords {
		g *= w.gamma(j)
	}
	return g
}

// Name implements Weights.
func (w Product) Name() string { return fmt.Sprintf("product(default=%g)", w.DefaultWeight) }

var _ Weights = Product{}
