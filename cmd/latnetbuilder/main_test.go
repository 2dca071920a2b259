// Copyright ©2024 The LatNetBuilder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import "testing"

func TestParseIntList(t *testing.T) {
	got, err := parseIntList("1, 3 ,5")
	if err != nil {
		t.Fatalf("parseIntList: %v", err)
	}
	want := []int{1, 3, 5}
	if len(got) != len(want) {
		t.Fatalf("len(got) = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestParseIntListInvalid(t *testing.T) {
	if _, err := parseIntList("1,x,3"); err == nil {
		t.Fatal("parseIntList: want error for a non-integer token")
	}
}

func TestLoadSpecFromFlags(t *testing.T) {
	saved := opts
	defer func() { opts = saved }()

	opts.configFile = ""
	opts.construction = "CBC"
	opts.size = "1021"
	opts.dimension = 3
	opts.figure = "P2"
	opts.weights = []string{"product:1"}
	opts.normType = "2"
	opts.combiner = "sum"

	spec, err := loadSpec()
	if err != nil {
		t.Fatalf("loadSpec: %v", err)
	}
	if spec.Construction != "CBC" || spec.Dimension != 3 || spec.Size != "1021" {
		t.Errorf("spec = %+v, want construction=CBC dimension=3 size=1021", spec)
	}
}
