// Copyright ©2024 The LatNetBuilder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package capi

import "testing"

func TestSearchOrdinaryStrSuccess(t *testing.T) {
	h, status := SearchOrdinaryStr("CBC", "1021", 3, "", "P2", []string{"product:1"}, 1, nil)
	if status != OK {
		t.Fatalf("status = %v, want OK (err=%q)", status, GetErrorString())
	}
	defer ReleaseResult(h)

	if n := ResultGetNumPoints(h); n != 1021 {
		t.Errorf("ResultGetNumPoints = %d, want 1021", n)
	}
	if d := ResultGetDimension(h); d != 3 {
		t.Errorf("ResultGetDimension = %d, want 3", d)
	}
	if gen := ResultGetGen(h); len(gen) != 3 || gen[0] != 1 {
		t.Errorf("ResultGetGen = %v, want length 3 starting with 1", gen)
	}
	if ResultGetCPUSeconds(h) < 0 {
		t.Errorf("ResultGetCPUSeconds = %v, want >= 0", ResultGetCPUSeconds(h))
	}
}

func TestSearchOrdinaryStrConfigError(t *testing.T) {
	_, status := SearchOrdinaryStr("CBC", "1021", 3, "", "bogus-figure", []string{"product:1"}, 1, nil)
	if status != ERROR {
		t.Fatal("status = OK, want ERROR for an unrecognized figure spec")
	}
	if GetErrorString() == "" {
		t.Error("GetErrorString is empty after an ERROR status")
	}
}

func TestReleaseResultThenZeroValues(t *testing.T) {
	h, status := SearchOrdinaryStr("CBC", "101", 2, "", "P2", []string{"product:1"}, 1, nil)
	if status != OK {
		t.Fatalf("status = %v, want OK", status)
	}
	ReleaseResult(h)
	if n := ResultGetNumPoints(h); n != 0 {
		t.Errorf("ResultGetNumPoints after release = %d, want 0", n)
	}
}
