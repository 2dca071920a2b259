// Copyright ©2024 The LatNetBuilder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package merit implements the generic weighted figure-of-merit
// evaluator of spec.md §4.6:
//
//	F(gen) = ACC_{u subset {1..s}, u != empty} gamma_u * D2_u(gen)^q
//
// with ACC in {sum, max}, over projections enumerated by package
// bitset and weighted by package weights. The evaluator is
// independent of how D2_u is computed — gonum's own `stat/combin`
// package (the teacher's subset/combination enumerator) grounds the
// projection-enumeration *style* here (iterate index subsets in a
// fixed canonical order, isolating iteration from the numeric payload
// a caller supplies), even though bitset.All is a purpose-built
// bitset enumerator rather than combin.Combinations, since ordering
// by weight within a cardinality is something combin itself has no
// notion of.
package merit // import "github.com/umontreal-simul/latnetbuilder-sub002/merit"
