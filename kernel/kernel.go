// Copyright ©2024 The LatNetBuilder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kernel

import "github.com/umontreal-simul/latnetbuilder-sub002/storage"

// Kernel is a one-dimensional coordinate-uniform kernel omega(x, n)
// (spec.md §4.3): its d-fold tensor product over coordinates
// reproduces a figure of merit amenable to fast CBC construction.
type Kernel interface {
	// Eval returns omega(x, n). n, the number of points (or, for a
	// level within an embedded point set, that level's point count),
	// is 0 when unused by the kernel.
	Eval(x float64, n int) float64
	// Symmetric reports whether omega(1-x) == omega(x).
	Symmetric() bool
	// SuggestedCompression is the compression policy the kernel is
	// built to exploit.
	SuggestedCompression() storage.Compress
	// Name renders the kernel for diagnostics and result output.
	Name() string
}
