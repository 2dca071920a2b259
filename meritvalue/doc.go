// Copyright ©2024 The LatNetBuilder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package meritvalue implements the MeritValue of spec.md §3: a Real
// for unilevel searches, or a Real vector indexed by level for
// multilevel searches. Both are represented by the single Value type
// (a []float64 of length 1 for the unilevel case), keeping the search
// and filter packages free of a scalar/vector type switch.
package meritvalue // import "github.com/umontreal-simul/latnetbuilder-sub002/meritvalue"
