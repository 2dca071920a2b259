// Copyright ©2024 The LatNetBuilder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package observer implements the signal/slot observer pattern of
// spec.md §9 Pattern 2 and the min-element functor of §4.8: a small
// set of callback hooks registered at construction, called at
// documented points in a search driver's scan over a merit sequence,
// with a false return from the per-element vote aborting the scan.
//
// No file in the teacher or the retrieval pack implements this exact
// shape (gonum has no search-driver notion), so MinObserver is this
// module's own construction against spec.md §4.8/§8 property 6 and §9
// Pattern 2 directly, reusing this module's own seq.Sequence and
// meritvalue.Value as its element types.
package observer // import "github.com/umontreal-simul/latnetbuilder-sub002/observer"
