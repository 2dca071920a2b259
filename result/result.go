// Copyright ©2024 The LatNetBuilder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package result

import (
	"errors"
	"fmt"
	"time"

	"github.com/umontreal-simul/latnetbuilder-sub002/search"
)

// Result is the plain value spec.md §6 exposes to a search driver's
// caller: the winning lattice's size and generating vector, its merit
// value, and the search's wall-clock duration.
type Result struct {
	NumPoints  int
	Modulus    int
	Dimension  int
	Gen        []int
	Merit      float64
	CPUSeconds float64
}

// ErrSearchFailed is returned by FromBase when the search finished
// without selecting any candidate (spec.md §7, "any search that
// finishes without selecting at least one net").
var ErrSearchFailed = errors.New("result: search finished without selecting a candidate")

// FromBase builds the Result object for a completed search.Base,
// given the search's measured wall-clock duration. It returns
// ErrSearchFailed if the search never selected a candidate.
func FromBase(b *search.Base, elapsed time.Duration) (Result, error) {
	if b.Failed() || b.BestGen() == nil {
		return Result{}, ErrSearchFailed
	}
	sp := b.Storage.SizeParam()
	return Result{
		NumPoints:  sp.NumPoints(sp.MaxLevel()),
		Modulus:    sp.Modulus(),
		Dimension:  b.Dimension,
		Gen:        append([]int(nil), b.BestGen()...),
		Merit:      b.BestMeritValue().Scalar(),
		CPUSeconds: elapsed.Seconds(),
	}, nil
}

// FromDriver is FromBase for any search.Driver, reading its embedded
// Base through AsBase. Callers that already hold a concrete *CBC,
// *Eval or *FullCandidateDriver can use either form; callers that only
// hold the Driver interface (such as package capi) need this one.
func FromDriver(d search.Driver, elapsed time.Duration) (Result, error) {
	return FromBase(d.AsBase(), elapsed)
}

// String renders the result in the rank-1-lattice output form of
// spec.md §6: the triple (modulus, dimension, gen) with merit
// appended.
func (r Result) String() string {
	return fmt.Sprintf("(%d, %d, %v)  merit=%.10g  (%.3fs)", r.Modulus, r.Dimension, r.Gen, r.Merit, r.CPUSeconds)
}
