// Copyright ©2024 The LatNetBuilder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package observer

import (
	"testing"

	"github.com/umontreal-simul/latnetbuilder-sub002/meritvalue"
	"github.com/umontreal-simul/latnetbuilder-sub002/seq"
)

func scalarSeq(vs ...float64) seq.Sequence[meritvalue.Value] {
	out := make(seq.Slice[meritvalue.Value], len(vs))
	for i, v := range vs {
		out[i] = meritvalue.NewScalar(v)
	}
	return out
}

func TestMinObserverFindsMinimum(t *testing.T) {
	o := &MinObserver{}
	res := o.Scan(scalarSeq(3, 1, 4, 1, 5))
	if res.Aborted {
		t.Fatalf("scan should not abort")
	}
	if res.BestIndex != 1 || res.BestValue.Scalar() != 1 {
		t.Errorf("BestIndex=%d BestValue=%v, want index 1 value 1", res.BestIndex, res.BestValue)
	}
}

func TestMinObserverAbortVote(t *testing.T) {
	visited := 0
	o := &MinObserver{
		OnElementVisited: func(i int, v meritvalue.Value) bool {
			visited++
			return i < 2
		},
	}
	res := o.Scan(scalarSeq(9, 9, 0, -1))
	if !res.Aborted {
		t.Fatalf("scan should have aborted")
	}
	if visited != 3 {
		t.Errorf("visited = %d, want 3 (stops right after the false vote)", visited)
	}
	if res.BestIndex != 2 {
		t.Errorf("BestIndex = %d, want 2 (the minimum seen before abort)", res.BestIndex)
	}
}

func TestMinObserverMaxAcceptedCount(t *testing.T) {
	o := &MinObserver{MaxAcceptedCount: 2}
	res := o.Scan(scalarSeq(5, 4, 3, 2, 1))
	if res.Aborted {
		t.Errorf("hitting MaxAcceptedCount is not an abort")
	}
	if res.BestIndex != 1 {
		t.Errorf("BestIndex = %d, want 1 (min of the first 2 elements only)", res.BestIndex)
	}
}

func TestMinObserverHooksFire(t *testing.T) {
	var starts, stops, updates int
	o := &MinObserver{
		OnStart: func(total int) {
			starts++
			if total != 3 {
				t.Errorf("OnStart total = %d, want 3", total)
			}
		},
		OnMinUpdated: func(i int, v meritvalue.Value) { updates++ },
		OnStop:       func() { stops++ },
	}
	o.Scan(scalarSeq(3, 2, 1))
	if starts != 1 || stops != 1 {
		t.Errorf("OnStart/OnStop calls = %d/%d, want 1/1", starts, stops)
	}
	if updates != 3 {
		t.Errorf("OnMinUpdated calls = %d, want 3 (strictly decreasing sequence)", updates)
	}
}
