// Copyright ©2024 The LatNetBuilder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package observer

import "github.com/umontreal-simul/latnetbuilder-sub002/meritvalue"

// DriverObserver collects the remaining signals of spec.md §9 Pattern
// 2 that a search driver (package search) emits outside of a
// MinObserver scan: onNetSelected fires once per dimension, when a new
// best candidate is committed; onAbort fires if a driver-level
// cancellation occurs; onFailedSearch fires if execute() completes
// without ever selecting a candidate (spec.md §7, "any search that
// finishes without selecting at least one net").
type DriverObserver struct {
	OnNetSelected  func(dimension int, value meritvalue.Value)
	OnAbort        func()
	OnFailedSearch func()
}

// NetSelected calls OnNetSelected if set; it is a no-op on a nil
// receiver or an unset hook, so callers need not guard every call.
func (o *DriverObserver) NetSelected(dimension int, value meritvalue.Value) {
	if o != nil && o.OnNetSelected != nil {
		o.OnNetSelected(dimension, value)
	}
}

// Abort calls OnAbort if set.
func (o *DriverObserver) Abort() {
	if o != nil && o.OnAbort != nil {
		o.OnAbort()
	}
}

// FailedSearch calls OnFailedSearch if set.
func (o *DriverObserver) FailedSearch() {
	if o != nil && o.OnFailedSearch != nil {
		o.OnFailedSearch()
	}
}
