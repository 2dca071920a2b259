// Copyright ©2024 The LatNetBuilder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bitset implements Projection, a finite subset of 1-based
// coordinate indices (spec.md §3, "Projection"), stored as a bitset,
// together with the enumeration orders (non-decreasing cardinality,
// non-increasing weight within a cardinality) needed by packages
// merit and tvalue.
package bitset // import "github.com/umontreal-simul/latnetbuilder-sub002/bitset"
