// Copyright ©2024 The LatNetBuilder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cbcstate

import "github.com/umontreal-simul/latnetbuilder-sub002/weights"

// Product is the CBC state for a product weight (spec.md §4.4):
//
//	s_{j+1}(i) = s_j(i) * (1 + gamma_{j+1} * stride(v,a)(i))
//
// with weighted state w_j = gamma_{j+1} * s_j.
type Product struct {
	w   weights.Product
	dim int // number of dimensions already committed (1-based index of the next coordinate is dim+1)
	s   []float64
}

// NewProduct returns the Product CBC state over a storage of the
// given size, with no dimension yet committed (s_0 = all-ones).
func NewProduct(w weights.Product, size int) *Product {
	return &Product{w: w, s: ones(size)}
}

func (p *Product) gammaNext() float64 { return p.w.Weight([]int{p.dim + 1}) }

// WeightedState implements State.
func (p *Product) WeightedState() []float64 {
	w := cloneVec(p.s)
	g := p.gammaNext()
	for i := range w {
		w[i] *= g
	}
	return w
}

// Select implements State.
func (p *Product) Select(stridedV []float64) {
	g := p.gammaNext()
	for i, v := range stridedV {
		p.s[i] *= 1 + g*v
	}
	p.dim++
}

// Clone implements State.
func (p *Product) Clone() State {
	return &Product{w: p.w, dim: p.dim, s: cloneVec(p.s)}
}

// Reset implements State.
func (p *Product) Reset() {
	p.dim = 0
	for i := range p.s {
		p.s[i] = 1
	}
}

var _ State = (*Product)(nil)
