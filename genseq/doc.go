// Copyright ©2024 The LatNetBuilder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package genseq implements the generator-value sequences of spec.md
// §4.2: CoprimeIntegers (the coprime residues mod n in canonical CRT
// order), CyclicGroup (the multiplicative group of (Z/b^m)*, direct or
// inverse ordering), PowerSeq (raising every element of a base sequence
// to a fixed power, reduced mod M), and Extend (residues mod P
// congruent to a fixed base generator mod a smaller P0).
package genseq // import "github.com/umontreal-simul/latnetbuilder-sub002/genseq"
