// Copyright ©2024 The LatNetBuilder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sizeparam implements the four size-parameter variants of
// spec.md §3: OrdinaryUnilevel, OrdinaryMultilevel, PolynomialUnilevel
// and PolynomialMultilevel. A SizeParam carries just the modulus
// structure and the per-level point counts; the index-to-storage-slot
// machinery (compression, stride) lives in package storage.
package sizeparam // import "github.com/umontreal-simul/latnetbuilder-sub002/sizeparam"
