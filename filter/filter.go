// Copyright ©2024 The LatNetBuilder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package filter

import (
	"fmt"

	"github.com/umontreal-simul/latnetbuilder-sub002/meritvalue"
)

// LatDef is the minimal lattice-definition surface a filter needs:
// satisfied by both lattice.Ordinary and lattice.Polynomial without
// either depending on this package.
type LatDef interface {
	Dimension() int
	String() string
}

// Rejected is returned by a Filter to signal that def should be
// rejected outright (spec.md §7, "Lattice rejected"). It is handled
// locally by the filter list, never surfaced to the caller as an
// error.
type Rejected struct {
	Reason string
}

// Error implements error.
func (e *Rejected) Error() string {
	return fmt.Sprintf("filter: lattice rejected: %s", e.Reason)
}

// Filter transforms a merit value, or rejects the lattice outright by
// returning a *Rejected error.
type Filter func(v meritvalue.Value, def LatDef) (meritvalue.Value, error)

// BasicMeritFilterList is a chain of Filters applied in order. A
// rejection anywhere in the chain short-circuits the remaining
// filters and the list reports the merit as positive infinity (spec.md
// §7: rejection is handled locally, never surfaced as an error).
type BasicMeritFilterList struct {
	Filters []Filter
}

// Add appends f to the chain and returns the list, for fluent
// construction.
func (l *BasicMeritFilterList) Add(f Filter) *BasicMeritFilterList {
	l.Filters = append(l.Filters, f)
	return l
}

// Apply runs v through every filter in order, returning a
// positive-infinity MeritValue of the same shape as v if any filter
// rejects def.
func (l BasicMeritFilterList) Apply(v meritvalue.Value, def LatDef) meritvalue.Value {
	for _, f := range l.Filters {
		nv, err := f(v, def)
		if err != nil {
			return meritvalue.PositiveInfinity(len(v))
		}
		v = nv
	}
	return v
}
