// Copyright ©2024 The LatNetBuilder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package filter

import (
	"math"
	"testing"

	"github.com/umontreal-simul/latnetbuilder-sub002/meritvalue"
)

type fakeDef struct{ dim int }

func (d fakeDef) Dimension() int { return d.dim }
func (d fakeDef) String() string { return "fake" }

func TestBasicMeritFilterListRejectsToInfinity(t *testing.T) {
	l := (&BasicMeritFilterList{}).Add(NewLowPass(1.0))
	got := l.Apply(meritvalue.NewScalar(2.0), fakeDef{dim: 3})
	if !math.IsInf(got.Scalar(), 1) {
		t.Fatalf("rejected merit = %v, want +Inf", got)
	}
}

func TestBasicMeritFilterListPassesThrough(t *testing.T) {
	l := (&BasicMeritFilterList{}).Add(NewLowPass(10.0))
	got := l.Apply(meritvalue.NewScalar(2.0), fakeDef{dim: 3})
	if got.Scalar() != 2.0 {
		t.Errorf("merit = %v, want 2.0 unchanged", got.Scalar())
	}
}

func TestCombinerSumMaxLevel(t *testing.T) {
	v := meritvalue.Value{1, 5, 2}
	if got := (Combiner{Kind: CombineSum}).Combine(v); got != 8 {
		t.Errorf("sum = %v, want 8", got)
	}
	if got := (Combiner{Kind: CombineMax}).Combine(v); got != 5 {
		t.Errorf("max = %v, want 5", got)
	}
	if got := (Combiner{Kind: CombineLevel, Level: 2}).Combine(v); got != 2 {
		t.Errorf("level 2 = %v, want 2", got)
	}
}

func TestMeritFilterListCompound(t *testing.T) {
	l := MeritFilterList{
		Combiner: Combiner{Kind: CombineSum},
		Unilevel: BasicMeritFilterList{Filters: []Filter{NewLowPass(100)}},
	}
	got := l.Apply(meritvalue.Value{1, 2, 3}, fakeDef{dim: 2})
	if got.Scalar() != 6 {
		t.Errorf("compound merit = %v, want 6", got.Scalar())
	}
}

func TestNewNormalizerScales(t *testing.T) {
	f := NewNormalizer(func(def LatDef) float64 { return 2 })
	got, err := f(meritvalue.NewScalar(10), fakeDef{dim: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Scalar() != 5 {
		t.Errorf("normalized merit = %v, want 5", got.Scalar())
	}
}

