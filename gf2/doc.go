// Copyright ©2024 The LatNetBuilder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gf2 implements dense polynomial and matrix arithmetic over the
// two-element field GF(2). Polynomials back the generating vectors of
// polynomial-modulus rank-1 lattices; matrices back the binary generating
// matrices of digital nets.
package gf2 // import "github.com/umontreal-simul/latnetbuilder-sub002/gf2"
