// Copyright ©2024 The LatNetBuilder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package filter

import "github.com/umontreal-simul/latnetbuilder-sub002/meritvalue"

// CombineKind selects how a Combiner reduces a multilevel MeritValue
// to a single Real (spec.md §6, "combiner ∈ {sum, max, level:k}").
type CombineKind int

const (
	// CombineSum sums every level's merit.
	CombineSum CombineKind = iota
	// CombineMax takes the largest level merit.
	CombineMax
	// CombineLevel reports a single named level's merit.
	CombineLevel
)

// Combiner reduces a multilevel MeritValue to a single Real.
type Combiner struct {
	Kind  CombineKind
	Level int // used only when Kind == CombineLevel
}

// Combine applies c to v. It panics if Kind is CombineLevel and Level
// is out of range for v.
func (c Combiner) Combine(v meritvalue.Value) float64 {
	switch c.Kind {
	case CombineMax:
		return v.Max()
	case CombineLevel:
		if c.Level < 0 || c.Level >= len(v) {
			panic("filter: Combiner: level index out of range")
		}
		return v[c.Level]
	default:
		var sum float64
		for _, x := range v {
			sum += x
		}
		return sum
	}
}
