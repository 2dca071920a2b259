// Copyright ©2024 The LatNetBuilder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kernel

import (
	"fmt"
	"math"

	"github.com/umontreal-simul/latnetbuilder-sub002/storage"
)

// PAlpha is the one-dimensional kernel for the P_alpha discrepancy
// (spec.md §4.3), defined for even alpha in {2,4,6,8} as
//
//	omega(x) = -i^alpha * (2*pi)^alpha / alpha! * B_alpha(x)
//
// where B_alpha is the Bernoulli polynomial of degree alpha
// (original_source's Functor/PAlpha.h).
type PAlpha struct {
	alpha   int
	scaling float64
}

// NewPAlpha returns the P_alpha kernel. It panics unless alpha is 2,
// 4, 6 or 8.
func NewPAlpha(alpha int) *PAlpha {
	switch alpha {
	case 2, 4, 6, 8:
	default:
		panic("kernel: PAlpha: alpha must be 2, 4, 6 or 8")
	}
	sign := 1.0
	if (alpha/2)%2 != 0 {
		sign = -1.0
	}
	scaling := -sign * math.Pow(2*math.Pi, float64(alpha)) / factorial(alpha)
	return &PAlpha{alpha: alpha, scaling: scaling}
}

// Alpha returns the kernel's alpha parameter.
func (k *PAlpha) Alpha() int { return k.alpha }

// Eval implements Kernel.
func (k *PAlpha) Eval(x float64, n int) float64 { return k.scaling * bernoulliPoly(k.alpha, x) }

// Symmetric implements Kernel.
func (k *PAlpha) Symmetric() bool { return true }

// SuggestedCompression implements Kernel.
func (k *PAlpha) SuggestedCompression() storage.Compress { return storage.Symmetric }

// Name implements Kernel.
func (k *PAlpha) Name() string { return fmt.Sprintf("P%d", k.alpha) }

func factorial(n int) float64 {
	f := 1.0
	for i := 2; i <= n; i++ {
		f *= float64(i)
	}
	return f
}

var _ Kernel = (*PAlpha)(nil)
