// Copyright ©2024 The LatNetBuilder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package search

import (
	"math"

	"github.com/umontreal-simul/latnetbuilder-sub002/filter"
	"github.com/umontreal-simul/latnetbuilder-sub002/lattice"
	"github.com/umontreal-simul/latnetbuilder-sub002/meritvalue"
	"github.com/umontreal-simul/latnetbuilder-sub002/observer"
	"github.com/umontreal-simul/latnetbuilder-sub002/seq"
	"github.com/umontreal-simul/latnetbuilder-sub002/storage"
	"github.com/umontreal-simul/latnetbuilder-sub002/weights"
)

// Driver is the common surface of every search driver of spec.md
// §4.9: CBC, FullCandidateDriver (Exhaustive/Korobov/Random variants)
// and Eval all embed Base and implement Execute, so a caller holding
// only a Driver can run any of them and read back the result
// uniformly.
type Driver interface {
	Execute()
	Failed() bool
	BestGen() []int
	BestMeritValue() meritvalue.Value
	// AsBase returns the driver's embedded Base, for callers (such as
	// package result) that need the storage's size parameters or
	// dimension alongside the result methods above.
	AsBase() *Base
}

// Base holds the configuration and accumulated result shared by every
// search driver of spec.md §4.9: dimension, the point-set storage and
// its sampled kernel values vector, the weight function driving the
// figure of merit, the filter pipeline rejecting or rescaling
// candidate merits, and the driver-level observer. Drivers embed Base
// and call finish once a candidate lattice has been committed.
type Base struct {
	Dimension int
	Storage   storage.Ordinary
	Kernel    []float64 // kernel values vector, sampled over Storage's virtual grid (package kernel)
	Weights   weights.Weights
	Filters   filter.MeritFilterList
	Observer  *observer.DriverObserver

	bestGen   []int
	bestMerit meritvalue.Value
	failed    bool
}

// Reset clears any previously accumulated result, so that the
// embedding driver can be re-executed from a clean state (spec.md
// §4.9, "reset").
func (b *Base) Reset() {
	b.bestGen = nil
	b.bestMerit = nil
	b.failed = false
}

// BestGen returns the generating vector of the best lattice found by
// the last Execute call, or nil if the search failed or has not run.
func (b *Base) BestGen() []int { return b.bestGen }

// BestMeritValue returns the filtered merit of the best lattice found
// by the last Execute call.
func (b *Base) BestMeritValue() meritvalue.Value { return b.bestMerit }

// Failed reports whether the last Execute call finished without
// selecting any candidate (spec.md §7, "any search that finishes
// without selecting at least one net").
func (b *Base) Failed() bool { return b.failed }

// AsBase returns b itself, satisfying Driver for any type embedding
// Base by value.
func (b *Base) AsBase() *Base { return b }

// finish applies the filter pipeline to a completed candidate's
// generating vector and raw merit, and records it as the driver's
// result if accepted. It reports acceptance.
func (b *Base) finish(gen []int, merit meritvalue.Value) bool {
	def := lattice.NewOrdinary(b.Storage.SizeParam(), gen)
	filtered := b.Filters.Apply(merit, def)
	if math.IsInf(filtered.Scalar(), 1) {
		b.failed = true
		b.Observer.FailedSearch()
		return false
	}
	b.bestGen = append([]int(nil), gen...)
	b.bestMerit = filtered
	b.Observer.NetSelected(len(gen), filtered)
	return true
}

// orDefaultObserver returns obs, or a freshly zeroed MinObserver if
// obs is nil, so driver constructors can accept a nil observer.
func orDefaultObserver(obs *observer.MinObserver) *observer.MinObserver {
	if obs == nil {
		return &observer.MinObserver{}
	}
	return obs
}

// permute returns a new slice with out[i] = v[perm.At(i)], the index
// remap applied both to a kernel vector (to drive a CBC state's
// recurrence) and to a weighted state (to evaluate a candidate's
// merit contribution) under storage.Stride(a) (spec.md §4.4).
func permute(v []float64, perm seq.IndexMap) []float64 {
	out := make([]float64, perm.Len())
	for i := range out {
		out[i] = v[perm.At(i)]
	}
	return out
}
