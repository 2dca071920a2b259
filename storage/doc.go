// Copyright ©2024 The LatNetBuilder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package storage implements the compressed-vector storage layer of
// spec.md §4.1: the None/Symmetric compression policies, and the
// Ordinary/Polynomial storage types that map a lattice's natural point
// index space onto a (possibly compressed) kernel-vector slot, with
// the Stride index map used to apply a candidate generator value to a
// stored vector without materializing the permuted vector.
package storage // import "github.com/umontreal-simul/latnetbuilder-sub002/storage"
