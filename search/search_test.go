// Copyright ©2024 The LatNetBuilder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package search

import (
	"math"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/umontreal-simul/latnetbuilder-sub002/filter"
	"github.com/umontreal-simul/latnetbuilder-sub002/kernel"
	"github.com/umontreal-simul/latnetbuilder-sub002/observer"
	"github.com/umontreal-simul/latnetbuilder-sub002/sizeparam"
	"github.com/umontreal-simul/latnetbuilder-sub002/storage"
	"github.com/umontreal-simul/latnetbuilder-sub002/weights"
)

func testBase(dimension, n int) Base {
	size := sizeparam.NewOrdinaryUnilevel(n)
	st := storage.NewOrdinary(size, storage.None)
	k := kernel.NewPAlpha(2)
	return Base{
		Dimension: dimension,
		Storage:   st,
		Kernel:    kernel.BuildOrdinaryVector(k, st),
		Weights:   weights.NewConstantProduct(1),
		Observer:  &observer.DriverObserver{},
	}
}

func TestCBCFindsFirstCoordinateOne(t *testing.T) {
	b := testBase(3, 7)
	d := NewCBC(b, nil, nil, nil)
	d.Execute()
	if d.Failed() {
		t.Fatal("CBC search failed unexpectedly")
	}
	gen := d.BestGen()
	if len(gen) != 3 {
		t.Fatalf("gen length = %d, want 3", len(gen))
	}
	if gen[0] != 1 {
		t.Errorf("gen[0] = %d, want 1", gen[0])
	}
}

func TestCBCGeneratingVectorIsReproducible(t *testing.T) {
	run := func() []int {
		d := NewCBC(testBase(3, 7), nil, nil, nil)
		d.Execute()
		return d.BestGen()
	}
	first := run()
	second := run()
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("CBC generating vector not reproducible across runs (-first +second):\n%s", diff)
	}
}

func TestExhaustiveMatchesCBCForProductWeight(t *testing.T) {
	b := testBase(2, 7)
	cbc := NewCBC(b, nil, nil, nil)
	cbc.Execute()

	b2 := testBase(2, 7)
	ex := NewExhaustive(b2, nil)
	ex.Execute()

	// For a 2-dimensional product weight, committing the first
	// coordinate to 1 and then CBC-optimizing the second dimension
	// already searches the entire candidate space, so the CBC optimum
	// must coincide with the global exhaustive optimum.
	if math.Abs(ex.BestMeritValue().Scalar()-cbc.BestMeritValue().Scalar()) > 1e-9 {
		t.Errorf("exhaustive optimum %v != CBC optimum %v", ex.BestMeritValue(), cbc.BestMeritValue())
	}
}

func TestKorobovProducesValidGen(t *testing.T) {
	b := testBase(3, 11)
	d := NewKorobov(b, nil)
	d.Execute()
	if d.Failed() {
		t.Fatal("Korobov search failed unexpectedly")
	}
	gen := d.BestGen()
	if len(gen) != 3 || gen[0] != 1 {
		t.Errorf("gen = %v, want length 3 starting with 1", gen)
	}
}

func TestEvalReproducesExhaustiveCandidate(t *testing.T) {
	b := testBase(2, 7)
	eval := NewEval(b, []int{1, 3})
	eval.Execute()
	if eval.Failed() {
		t.Fatal("Eval failed unexpectedly")
	}

	b2 := testBase(2, 7)
	ex := NewExhaustive(b2, nil)
	ex.Execute()

	// Eval(1,3) cannot beat the exhaustive optimum.
	if eval.BestMeritValue().Scalar() < ex.BestMeritValue().Scalar()-1e-9 {
		t.Errorf("Eval merit %v better than exhaustive optimum %v", eval.BestMeritValue(), ex.BestMeritValue())
	}
}

func TestRandomCBCRespectsMaxAcceptedCount(t *testing.T) {
	b := testBase(3, 101)
	obs := &observer.MinObserver{}
	rng := rand.New(rand.NewSource(1))
	d := NewRandomCBC(b, 5, rng, nil, obs)
	d.Execute()
	if d.Failed() {
		t.Fatal("RandomCBC failed unexpectedly")
	}
	if obs.MaxAcceptedCount != 5 {
		t.Errorf("MaxAcceptedCount = %d, want 5", obs.MaxAcceptedCount)
	}
}

func TestRandomExhaustiveSamplesRequestedCount(t *testing.T) {
	b := testBase(3, 101)
	rng := rand.New(rand.NewSource(2))
	d := NewRandom(b, 10, rng, nil)
	if d.Candidates.Len() != 10 {
		t.Fatalf("candidate count = %d, want 10", d.Candidates.Len())
	}
	gen := d.Candidates.At(0)
	if gen[0] != 1 {
		t.Errorf("gen[0] = %d, want 1", gen[0])
	}
}

func TestRandomKorobovSamplesRequestedCount(t *testing.T) {
	b := testBase(3, 101)
	rng := rand.New(rand.NewSource(3))
	d := NewRandomKorobov(b, 10, rng, nil)
	if d.Candidates.Len() != 10 {
		t.Fatalf("candidate count = %d, want 10", d.Candidates.Len())
	}
}

func TestExtendRestrictsToCongruentCandidates(t *testing.T) {
	p0, baseGen := 7, []int{1, 3}
	bigBase := testBase(2, 21) // 21 = 3*7, a multiple of p0
	d := NewExtend(bigBase, p0, baseGen, nil, nil)
	d.Execute()
	if d.Failed() {
		t.Fatal("Extend search failed unexpectedly")
	}
	gen := d.BestGen()
	for j, a := range gen {
		if a%p0 != baseGen[j]%p0 {
			t.Errorf("gen[%d] = %d not congruent to baseGen[%d] = %d mod %d", j, a, j, baseGen[j], p0)
		}
	}
}

func TestLowPassFilterRejectsEverything(t *testing.T) {
	b := testBase(2, 7)
	b.Filters = filter.MeritFilterList{
		Unilevel: filter.BasicMeritFilterList{Filters: []filter.Filter{filter.NewLowPass(-1)}},
	}
	d := NewCBC(b, nil, nil, nil)
	d.Execute()
	if !d.Failed() {
		t.Fatal("expected CBC search to fail under an impossible low-pass filter")
	}
}
