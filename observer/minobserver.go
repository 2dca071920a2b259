// Copyright ©2024 The LatNetBuilder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package observer

import (
	"github.com/umontreal-simul/latnetbuilder-sub002/meritvalue"
	"github.com/umontreal-simul/latnetbuilder-sub002/seq"
)

// MinObserver is the min-element functor of spec.md §4.8: it iterates
// a merit sequence, tracks the current minimum and its index, and
// calls the registered hooks at the documented points.
//
//   - OnStart is called once, before the scan, with the sequence length.
//   - OnElementVisited is called for every element, after it has been
//     compared against the current minimum; its return value is the
//     element's "accept" vote.
//   - OnMinUpdated is called whenever an element strictly improves on
//     the current minimum.
//   - OnStop is called once, after the scan ends (whether by
//     exhaustion, a false vote, or MaxAcceptedCount).
//
// Any hook left nil is simply not called. MaxAcceptedCount, if > 0,
// caps the number of elements visited (used by driver RandomCBC to
// bound a per-dimension random sample).
type MinObserver struct {
	OnStart          func(total int)
	OnElementVisited func(i int, v meritvalue.Value) bool
	OnMinUpdated     func(i int, v meritvalue.Value)
	OnStop           func()
	MaxAcceptedCount int
}

// Result is the outcome of a MinObserver scan.
type Result struct {
	BestIndex int
	BestValue meritvalue.Value
	// Aborted reports whether the scan ended early because an
	// OnElementVisited vote returned false, rather than by exhausting
	// the sequence or reaching MaxAcceptedCount.
	Aborted bool
}

// Scan runs the min-element functor over s, a lazily evaluated merit
// sequence (spec.md §8 property 6: the returned BestValue is <= every
// value visited, and BestIndex names the element achieving it).
func (o *MinObserver) Scan(s seq.Sequence[meritvalue.Value]) Result {
	n := s.Len()
	if o.OnStart != nil {
		o.OnStart(n)
	}
	res := Result{BestIndex: -1}
	visited := 0
	for i := 0; i < n; i++ {
		v := s.At(i)
		if res.BestIndex < 0 || v.Less(res.BestValue) {
			res.BestIndex = i
			res.BestValue = v
			if o.OnMinUpdated != nil {
				o.OnMinUpdated(i, v)
			}
		}
		vote := true
		if o.OnElementVisited != nil {
			vote = o.OnElementVisited(i, v)
		}
		visited++
		if !vote {
			res.Aborted = true
			break
		}
		if o.MaxAcceptedCount > 0 && visited >= o.MaxAcceptedCount {
			break
		}
	}
	if o.OnStop != nil {
		o.OnStop()
	}
	return res
}
