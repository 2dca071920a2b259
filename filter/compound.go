// Copyright ©2024 The LatNetBuilder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package filter

import "github.com/umontreal-simul/latnetbuilder-sub002/meritvalue"

// MeritFilterList is the compound filter pipeline of spec.md §4.9: it
// applies the multilevel filters, reduces to a single Real with the
// combiner, then applies the unilevel filters to the resulting scalar
// MeritValue.
type MeritFilterList struct {
	Multilevel BasicMeritFilterList
	Combiner   Combiner
	Unilevel   BasicMeritFilterList
}

// Apply runs the full pipeline over v, a multilevel MeritValue.
func (l MeritFilterList) Apply(v meritvalue.Value, def LatDef) meritvalue.Value {
	v = l.Multilevel.Apply(v, def)
	combined := meritvalue.NewScalar(l.Combiner.Combine(v))
	return l.Unilevel.Apply(combined, def)
}
