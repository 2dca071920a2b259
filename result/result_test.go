// Copyright ©2024 The LatNetBuilder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package result

import (
	"testing"
	"time"

	"github.com/umontreal-simul/latnetbuilder-sub002/kernel"
	"github.com/umontreal-simul/latnetbuilder-sub002/observer"
	"github.com/umontreal-simul/latnetbuilder-sub002/search"
	"github.com/umontreal-simul/latnetbuilder-sub002/sizeparam"
	"github.com/umontreal-simul/latnetbuilder-sub002/storage"
	"github.com/umontreal-simul/latnetbuilder-sub002/weights"
)

func TestFromBaseSuccess(t *testing.T) {
	size := sizeparam.NewOrdinaryUnilevel(7)
	st := storage.NewOrdinary(size, storage.None)
	b := search.Base{
		Dimension: 2,
		Storage:   st,
		Kernel:    kernel.BuildOrdinaryVector(kernel.NewPAlpha(2), st),
		Weights:   weights.NewConstantProduct(1),
		Observer:  &observer.DriverObserver{},
	}
	d := search.NewCBC(b, nil, nil, nil)
	d.Execute()

	r, err := FromBase(&d.Base, 250*time.Millisecond)
	if err != nil {
		t.Fatalf("FromBase: %v", err)
	}
	if r.Modulus != 7 || r.NumPoints != 7 || r.Dimension != 2 {
		t.Errorf("result = %+v, want modulus=7 numPoints=7 dimension=2", r)
	}
	if len(r.Gen) != 2 || r.Gen[0] != 1 {
		t.Errorf("Gen = %v, want length 2 starting with 1", r.Gen)
	}
	if r.CPUSeconds != 0.25 {
		t.Errorf("CPUSeconds = %v, want 0.25", r.CPUSeconds)
	}
}

func TestFromDriverMatchesFromBase(t *testing.T) {
	size := sizeparam.NewOrdinaryUnilevel(7)
	st := storage.NewOrdinary(size, storage.None)
	b := search.Base{
		Dimension: 2,
		Storage:   st,
		Kernel:    kernel.BuildOrdinaryVector(kernel.NewPAlpha(2), st),
		Weights:   weights.NewConstantProduct(1),
		Observer:  &observer.DriverObserver{},
	}
	d := search.NewCBC(b, nil, nil, nil)
	d.Execute()

	r, err := FromDriver(d, 100*time.Millisecond)
	if err != nil {
		t.Fatalf("FromDriver: %v", err)
	}
	if r.Modulus != 7 || r.Dimension != 2 {
		t.Errorf("result = %+v, want modulus=7 dimension=2", r)
	}
}

func TestFromBaseFailure(t *testing.T) {
	size := sizeparam.NewOrdinaryUnilevel(7)
	st := storage.NewOrdinary(size, storage.None)
	b := search.Base{
		Dimension: 2,
		Storage:   st,
		Kernel:    kernel.BuildOrdinaryVector(kernel.NewPAlpha(2), st),
		Weights:   weights.NewConstantProduct(1),
		Observer:  &observer.DriverObserver{},
	}
	// Never run Execute: BestGen is nil, so FromBase must report failure.
	if _, err := FromBase(&b, 0); err != ErrSearchFailed {
		t.Errorf("err = %v, want ErrSearchFailed", err)
	}
}
