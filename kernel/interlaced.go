// Copyright ©2024 The LatNetBuilder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kernel

import (
	"fmt"
	"math"

	"github.com/umontreal-simul/latnetbuilder-sub002/storage"
)

// ICAlpha is the one-dimensional kernel for the interlaced
// C_{alpha,d} discrepancy in base 2 (original_source's
// Functor/ICAlpha.h), requiring interlacingFactor > 1.
type ICAlpha struct {
	alpha, d, min int
	denom         float64
}

// NewICAlpha returns the interlaced C-alpha kernel. It panics if
// interlacingFactor < 2.
func NewICAlpha(alpha, interlacingFactor int) *ICAlpha {
	if interlacingFactor < 2 {
		panic("kernel: ICAlpha: interlacing factor must be > 1")
	}
	m := alpha
	if interlacingFactor < m {
		m = interlacingFactor
	}
	denom := math.Pow(2, float64(alpha)) * (math.Pow(2, float64(m)) - 1)
	return &ICAlpha{alpha: alpha, d: interlacingFactor, min: m, denom: denom}
}

// Eval implements Kernel.
func (k *ICAlpha) Eval(x float64, n int) float64 {
	if x < 1e-15 {
		return 1.0 / k.denom
	}
	exp := -float64(2*k.min) * math.Floor(math.Log2(x))
	return (1.0 - (math.Pow(2, float64(2*k.min+1))-1.0)/math.Pow(2, exp)) / k.denom
}

// Symmetric implements Kernel.
func (k *ICAlpha) Symmetric() bool { return false }

// SuggestedCompression implements Kernel.
func (k *ICAlpha) SuggestedCompression() storage.Compress { return storage.None }

// Name implements Kernel.
func (k *ICAlpha) Name() string { return fmt.Sprintf("IC - alpha: %d - interlacing: %d", k.alpha, k.d) }

var _ Kernel = (*ICAlpha)(nil)

// IB is the one-dimensional kernel for the interlaced B_{d,gamma,(2)}
// discrepancy in base 2 (original_source's Functor/IB.h), requiring
// interlacingFactor > 1.
type IB struct {
	d      int
	factor float64
}

// NewIB returns the interlaced B kernel. It panics if
// interlacingFactor < 2.
func NewIB(interlacingFactor int) *IB {
	if interlacingFactor < 2 {
		panic("kernel: IB: interlacing factor must be > 1")
	}
	p := math.Pow(2, float64(interlacingFactor-1))
	return &IB{d: interlacingFactor, factor: p / (p - 1.0)}
}

// Eval implements Kernel.
func (k *IB) Eval(x float64, n int) float64 {
	if x < 1e-15 {
		return k.factor
	}
	exp := -float64(k.d-1) * math.Floor(math.Log2(x))
	return k.factor * (1.0 - (math.Pow(2, float64(k.d))-1.0)/math.Pow(2, exp))
}

// Symmetric implements Kernel.
func (k *IB) Symmetric() bool { return false }

// SuggestedCompression implements Kernel.
func (k *IB) SuggestedCompression() storage.Compress { return storage.None }

// Name implements Kernel.
func (k *IB) Name() string { return fmt.Sprintf("IB - interlacing: %d", k.d) }

var _ Kernel = (*IB)(nil)

// AIDNAlpha is the one-dimensional kernel for the interlaced A-IDN
// discrepancy in base 2 (original_source's Functor/AIDNAlpha.h).
type AIDNAlpha struct {
	alpha, d, min int
	denom         float64
}

// NewAIDNAlpha returns the A-IDN kernel.
func NewAIDNAlpha(alpha, interlacingFactor int) *AIDNAlpha {
	m := alpha
	if interlacingFactor < m {
		m = interlacingFactor
	}
	denom := math.Sqrt(float64(int64(1)<<uint(alpha+2))) * (float64(int64(1)<<uint(m-1)) - 1)
	return &AIDNAlpha{alpha: alpha, d: interlacingFactor, min: m, denom: denom}
}

// Eval implements Kernel.
func (k *AIDNAlpha) Eval(x float64, n int) float64 {
	if x < 1e-15 {
		return 1.0 / k.denom
	}
	exp := -float64(k.min-1) * math.Floor(math.Log2(x))
	return (1.0 - (float64(int64(1)<<uint(k.min))-1.0)/math.Pow(2, exp)) / k.denom
}

// Symmetric implements Kernel.
func (k *AIDNAlpha) Symmetric() bool { return false }

// SuggestedCompression implements Kernel.
func (k *AIDNAlpha) SuggestedCompression() storage.Compress { return storage.None }

// Name implements Kernel.
func (k *AIDNAlpha) Name() string { return fmt.Sprintf("A-IDN%d-d%d", k.alpha, k.d) }

var _ Kernel = (*AIDNAlpha)(nil)
