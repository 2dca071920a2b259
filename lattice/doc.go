// Copyright ©2024 The LatNetBuilder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package lattice implements LatDef, the definition of a rank-1
// lattice or polynomial lattice: a size parameter together with a
// generating vector (spec.md §3, module C1/C2).
package lattice // import "github.com/umontreal-simul/latnetbuilder-sub002/lattice"
