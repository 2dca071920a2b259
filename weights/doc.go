// Copyright ©2024 The LatNetBuilder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package weights implements the projection-weight shapes of spec.md
// §3/§9 (Weight γ_u): Product, OrderDependent, ProjectionDependent,
// ProductOrderDependent (POD), and Combined (a weighted sum of
// sub-weights of possibly different shapes).
package weights // import "github.com/umontreal-simul/latnetbuilder-sub002/weights"
