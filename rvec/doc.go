// Copyright ©2024 The LatNetBuilder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rvec provides the real-vector primitives (sum, scale, dot
// product, elementwise power, and floating-point comparison with
// tolerance) used throughout the coordinate-uniform kernel and merit
// machinery. Its functions mirror the shape and tolerance formulas of
// gonum's floats.go, the teacher package's own vector-algebra helper.
package rvec // import "github.com/umontreal-simul/latnetbuilder-sub002/rvec"
