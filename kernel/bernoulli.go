// Copyright ©2024 The LatNetBuilder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kernel

// bernoulliPoly evaluates the Bernoulli polynomial of the given
// degree (0 through 8) at x, using the closed-form expansions of
// original_source's Functor/BernoulliPoly.h.
func bernoulliPoly(degree int, x float64) float64 {
	switch degree {
	case 0:
		return 1.0
	case 1:
		return x - 0.5
	case 2:
		return x*(x-1.0) + 1.0/6.0
	case 3:
		return ((2.0*x-3.0)*x+1.0) * x * 0.5
	case 4:
		return ((x-2.0)*x+1.0)*x*x - 1.0/30.0
	case 5:
		return (((x-2.5)*x+5.0/3.0)*x*x - 1.0/6.0) * x
	case 6:
		return (((x-3.0)*x+2.5)*x*x-0.5)*x*x + 1.0/42.0
	case 7:
		return ((((x-3.5)*x+3.5)*x*x-7.0/6.0)*x*x + 1.0/6.0) * x
	case 8:
		return ((((x-4.0)*x+14.0/3.0)*x*x-7.0/3.0)*x*x+2.0/3.0)*x*x - 1.0/30.0
	default:
		panic("kernel: bernoulliPoly: degree must be 0..8")
	}
}
