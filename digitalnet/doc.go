// Copyright ©2024 The LatNetBuilder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package digitalnet implements digital nets in base 2 (spec.md §3,
// module C3/C4): a Net is a set of generating matrices, one per
// dimension, each a square binary matrix whose columns, read against
// the binary expansion of a point index, give that coordinate's
// digits. Explicit provides nets built from arbitrary generating
// matrices; Sobol builds the generating matrices of a Sobol' sequence
// from a small embedded table of primitive polynomials and direction
// numbers.
package digitalnet // import "github.com/umontreal-simul/latnetbuilder-sub002/digitalnet"
