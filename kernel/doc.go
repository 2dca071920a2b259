// Copyright ©2024 The LatNetBuilder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package kernel implements the coordinate-uniform one-dimensional
// kernels of spec.md §4.3 (omega), and the machinery that samples a
// kernel over a Storage's virtual grid into a compressed
// kernel-values vector.
package kernel // import "github.com/umontreal-simul/latnetbuilder-sub002/kernel"
