// Copyright ©2024 The LatNetBuilder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package result implements the Result object of spec.md §6: the
// plain data exposed to a search driver's caller once execution
// completes (num_points, modulus, dimension, generating vector, merit
// value, wall-clock seconds), independent of the driver machinery
// that produced it. Grounded on spec.md §6 directly; no pack file
// mirrors a search-result value type of this shape.
package result // import "github.com/umontreal-simul/latnetbuilder-sub002/result"
