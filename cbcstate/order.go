// Copyright ©2024 The LatNetBuilder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cbcstate

import "github.com/umontreal-simul/latnetbuilder-sub002/weights"

// Order is the CBC state for an order-dependent weight (spec.md
// §4.4's "accumulates cross-terms of increasing order"): it maintains
// the elementary symmetric polynomials e_0..e_j of the strided kernel
// values selected so far, via the standard recurrence
//
//	e_0^{(j)}   = 1
//	e_k^{(j+1)} = e_k^{(j)} + stride(v,a_{j+1}) * e_{k-1}^{(j)}
//
// so that the order-dependent merit contribution of committing
// dimension j+1 is sum_{k=1}^{j+1} Gamma_k * stride(v,a_{j+1}) *
// e_{k-1}^{(j)}, giving weighted state
//
//	w_j = sum_{k=0}^{j} Gamma_{k+1} * e_k^{(j)}.
type Order struct {
	w  weights.OrderDependent
	es [][]float64 // es[k] = e_k^{(j)}, for k = 0..j
	n  int
}

// NewOrder returns the Order CBC state over a storage of the given
// size, with no dimension yet committed (e_0 = all-ones).
func NewOrder(w weights.OrderDependent, size int) *Order {
	return &Order{w: w, es: [][]float64{ones(size)}, n: size}
}

func (o *Order) gamma(k int) float64 { return o.w.Weight(make([]int, k)) }

// WeightedState implements State.
func (o *Order) WeightedState() []float64 {
	out := make([]float64, o.n)
	for k, ek := range o.es {
		g := o.gamma(k + 1)
		for i, v := range ek {
			out[i] += g * v
		}
	}
	return out
}

// Select implements State.
func (o *Order) Select(stridedV []float64) {
	j := len(o.es) - 1
	newEs := make([][]float64, j+2)
	newEs[0] = o.es[0]
	for k := 1; k <= j+1; k++ {
		cur := make([]float64, o.n)
		if k <= j {
			copy(cur, o.es[k])
		}
		if k-1 <= j {
			prev := o.es[k-1]
			for i := range cur {
				cur[i] += stridedV[i] * prev[i]
			}
		}
		newEs[k] = cur
	}
	o.es = newEs
}

// Clone implements State.
func (o *Order) Clone() State {
	es := make([][]float64, len(o.es))
	for i, e := range o.es {
		es[i] = cloneVec(e)
	}
	return &Order{w: o.w, es: es, n: o.n}
}

// Reset implements State.
func (o *Order) Reset() { o.es = [][]float64{ones(o.n)} }

var _ State = (*Order)(nil)
