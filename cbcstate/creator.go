// Copyright ©2024 The LatNetBuilder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cbcstate

import (
	"fmt"

	"github.com/umontreal-simul/latnetbuilder-sub002/bitset"
	"github.com/umontreal-simul/latnetbuilder-sub002/weights"
)

// New dispatches on the dynamic shape of w (spec.md §4.4's "state
// creator driven by the weight shape") and returns the matching CBC
// State, sized for a storage of size slots over a dimension-s lattice
// (dimension is only used by weights.ProjectionDependent, which needs
// to know the full coordinate range over which projections may be
// declared).
func New(w weights.Weights, size, dimension int) State {
	switch t := w.(type) {
	case weights.Product:
		return NewProduct(t, size)
	case weights.OrderDependent:
		return NewOrder(t, size)
	case weights.ProductOrderDependent:
		// A POD weight's CBC state is a product state scaled by the
		// order-dependent state's per-order factor: implemented as
		// the order-dependent recurrence over stride(v,a)*gamma_j
		// (the product weight folded into each per-coordinate factor)
		// rather than a distinct third state shape, since
		// Gamma_k * prod gamma_j is exactly what Order's recurrence
		// produces when its per-step increment is pre-scaled.
		return newPOD(t, size)
	case *weights.ProjectionDependent:
		return newFromProjectionDependent(t, size, dimension)
	case weights.Combined:
		sub := make([]State, len(t.Sub))
		for i, s := range t.Sub {
			sub[i] = New(s, size, dimension)
		}
		return NewCombined(sub, size)
	default:
		panic(fmt.Sprintf("cbcstate: unsupported weight shape %T", w))
	}
}

// pod is the CBC state for weights.ProductOrderDependent: an Order
// state whose recurrence is driven by the product-weighted strided
// vector gamma_{j+1} * stride(v,a) rather than the raw strided
// vector, so that its elementary-symmetric terms e_k already carry
// the product factors of the selected coordinates; WeightedState
// applies the order factors Gamma_k together with the next
// coordinate's product factor gamma_{j+1}.
type pod struct {
	prod  weights.Product
	order *Order
	dim   int
}

func newPOD(t weights.ProductOrderDependent, size int) *pod {
	return &pod{prod: t.Product, order: NewOrder(t.Order, size)}
}

func (p *pod) gammaNext() float64 { return p.prod.Weight([]int{p.dim + 1}) }

// WeightedState implements State.
func (p *pod) WeightedState() []float64 {
	w := p.order.WeightedState()
	g := p.gammaNext()
	for i := range w {
		w[i] *= g
	}
	return w
}

// Select implements State.
func (p *pod) Select(stridedV []float64) {
	g := p.gammaNext()
	scaled := make([]float64, len(stridedV))
	for i, v := range stridedV {
		scaled[i] = g * v
	}
	p.order.Select(scaled)
	p.dim++
}

// Clone implements State.
func (p *pod) Clone() State {
	return &pod{prod: p.prod, order: p.order.Clone().(*Order), dim: p.dim}
}

// Reset implements State.
func (p *pod) Reset() {
	p.order.Reset()
	p.dim = 0
}

var _ State = (*pod)(nil)

// newFromProjectionDependent enumerates every nonempty projection of
// coordinates 1..dimension and asks w for its weight, keeping only
// the ones with a nonzero weight as tracked entries — mirroring
// original_source's lazy construction of the projection-dependent
// coefficient table from a sparse weight specification.
func newFromProjectionDependent(w *weights.ProjectionDependent, size, dimension int) *ProjectionDependent {
	var projs []bitset.Projection
	var gammas []float64
	for _, u := range bitset.All(dimension, 0) {
		g := w.Weight(u.Coords())
		if g != 0 {
			projs = append(projs, u)
			gammas = append(gammas, g)
		}
	}
	return NewProjectionDependent(projs, gammas, size)
}
