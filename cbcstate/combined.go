// Copyright ©2024 The LatNetBuilder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cbcstate

// Combined is the CBC state for a weights.Combined weight: a list of
// sub-states, one per sub-weight, whose state is their concatenation
// and whose update delegates to each member (spec.md §4.4:
// "CombinedWeights owns a list of sub-weights, and its state is the
// concatenation of the sub-states; its update delegates").
type Combined struct {
	sub []State
	n   int
}

// NewCombined returns the Combined CBC state wrapping the given
// per-sub-weight states, all built over a storage of the given size.
func NewCombined(sub []State, size int) *Combined {
	return &Combined{sub: sub, n: size}
}

// WeightedState implements State: the elementwise sum of every
// sub-state's own weighted state.
func (c *Combined) WeightedState() []float64 {
	out := make([]float64, c.n)
	for _, s := range c.sub {
		w := s.WeightedState()
		for i, v := range w {
			out[i] += v
		}
	}
	return out
}

// Select implements State, delegating to every sub-state.
func (c *Combined) Select(stridedV []float64) {
	for _, s := range c.sub {
		s.Select(stridedV)
	}
}

// Clone implements State.
func (c *Combined) Clone() State {
	sub := make([]State, len(c.sub))
	for i, s := range c.sub {
		sub[i] = s.Clone()
	}
	return &Combined{sub: sub, n: c.n}
}

// Reset implements State.
func (c *Combined) Reset() {
	for _, s := range c.sub {
		s.Reset()
	}
}

var _ State = (*Combined)(nil)
