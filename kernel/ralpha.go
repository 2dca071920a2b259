// Copyright ©2024 The LatNetBuilder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kernel

import (
	"fmt"
	"math"

	"github.com/umontreal-simul/latnetbuilder-sub002/storage"
)

// RAlpha is the one-dimensional kernel for the R_alpha discrepancy
// named in spec.md §4.3: the finite-n-corrected companion of PAlpha,
// omega(x, n) = P_alpha(x) * (1 - n^-alpha), reducing to P_alpha as
// n grows. No R_alpha source file was present in the reference
// material (unlike P_alpha's Functor/PAlpha.h); this formula is this
// module's own extrapolation from the P_alpha/R_alpha distinction
// documented in the L'Ecuyer-Munger lattice literature (R adds the
// finite-sample correction that P, the purely periodic kernel, omits)
// and is recorded here, not claimed as a transcription.
type RAlpha struct {
	p *PAlpha
}

// NewRAlpha returns the R_alpha kernel. It panics unless alpha is 2,
// 4, 6 or 8.
func NewRAlpha(alpha int) *RAlpha { return &RAlpha{p: NewPAlpha(alpha)} }

// Alpha returns the kernel's alpha parameter.
func (k *RAlpha) Alpha() int { return k.p.Alpha() }

// Eval implements Kernel.
func (k *RAlpha) Eval(x float64, n int) float64 {
	v := k.p.Eval(x, 0)
	if n <= 0 {
		return v
	}
	return v * (1 - math.Pow(float64(n), -float64(k.p.Alpha())))
}

// Symmetric implements Kernel.
func (k *RAlpha) Symmetric() bool { return true }

// SuggestedCompression implements Kernel.
func (k *RAlpha) SuggestedCompression() storage.Compress { return storage.Symmetric }

// Name implements Kernel.
func (k *RAlpha) Name() string { return fmt.Sprintf("R%d", k.p.Alpha()) }

var _ Kernel = (*RAlpha)(nil)
