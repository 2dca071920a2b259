// Copyright ©2024 The LatNetBuilder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package capi

import (
	"sync"
	"time"

	"github.com/umontreal-simul/latnetbuilder-sub002/internal/config"
	"github.com/umontreal-simul/latnetbuilder-sub002/result"
)

// Status mirrors capi.h's status ∈ {OK, ERROR}.
type Status int

const (
	// OK reports a successful search call.
	OK Status = iota
	// InProgress is unused by this synchronous mirror (capi.h reserves
	// it for an asynchronous search API this package does not offer).
	InProgress
	// ERROR reports a failed call; GetErrorString returns why.
	ERROR Status = -1
)

// Handle is an opaque reference to a held Result, returned by
// SearchOrdinaryStr/SearchEmbeddedStr and released by ReleaseResult.
// The zero Handle is never valid.
type Handle int

var (
	mu      sync.Mutex
	held    = map[Handle]result.Result{}
	nextID  Handle = 1
	lastErr string
)

// GetErrorString returns the message set by the most recent call on
// this package that returned ERROR. Unlike capi.h's thread-local
// string, this is a single package-level slot guarded by a mutex,
// adequate for a single embedding caller driving one search at a time.
func GetErrorString() string {
	mu.Lock()
	defer mu.Unlock()
	return lastErr
}

func fail(err error) (Handle, Status) {
	mu.Lock()
	lastErr = err.Error()
	mu.Unlock()
	return 0, ERROR
}

func store(r result.Result) Handle {
	mu.Lock()
	defer mu.Unlock()
	h := nextID
	nextID++
	held[h] = r
	return h
}

// ReleaseResult discards the Result referenced by h (capi.h's
// latbuilder_release_result). It is a no-op if h is unknown or
// already released.
func ReleaseResult(h Handle) {
	mu.Lock()
	defer mu.Unlock()
	delete(held, h)
}

func get(h Handle) (result.Result, bool) {
	mu.Lock()
	defer mu.Unlock()
	r, ok := held[h]
	return r, ok
}

// SearchOrdinaryStr mirrors capi.h's latbuilder_search_ordinary_str:
// it runs an ordinary (unilevel) rank-1 lattice search and returns a
// Handle to the result, or ERROR with GetErrorString explaining why.
func SearchOrdinaryStr(construction, size string, dimension int, normType, figure string, weights []string, weightsPower float64, filters []string) (Handle, Status) {
	spec := &config.Spec{
		Construction:      construction,
		LatticeType:       "ordinary",
		Embedding:         "unilevel",
		Size:              size,
		Dimension:         dimension,
		Figure:            figure,
		Weights:           weights,
		WeightsPowerScale: weightsPower,
		NormType:          normType,
		Filters:           filters,
	}
	return run(spec)
}

// SearchEmbeddedStr mirrors capi.h's latbuilder_search_embedded_str:
// it runs an embedded (multilevel) rank-1 lattice search over the
// full level range, reducing to a scalar merit through mlfilters and
// combiner before applying filters.
func SearchEmbeddedStr(construction, size string, dimension int, normType, figure string, weights []string, weightsPower float64, filters []string, mlfilters []string, combiner string) (Handle, Status) {
	spec := &config.Spec{
		Construction:      construction,
		LatticeType:       "ordinary",
		Embedding:         "multilevel",
		Size:              size,
		Dimension:         dimension,
		Figure:            figure,
		Weights:           weights,
		WeightsPowerScale: weightsPower,
		NormType:          normType,
		Filters:           filters,
		MultilevelFilters: mlfilters,
		Combiner:          combiner,
	}
	return run(spec)
}

func run(spec *config.Spec) (Handle, Status) {
	driver, err := config.Build(spec, nil, 0, nil, nil)
	if err != nil {
		return fail(err)
	}
	start := time.Now()
	driver.Execute()
	r, err := result.FromDriver(driver, time.Since(start))
	if err != nil {
		return fail(err)
	}
	return store(r), OK
}

// ResultGetNumPoints mirrors latbuilder_result_get_num_points.
func ResultGetNumPoints(h Handle) int {
	r, _ := get(h)
	return r.NumPoints
}

// ResultGetDimension mirrors latbuilder_result_get_dimension.
func ResultGetDimension(h Handle) int {
	r, _ := get(h)
	return r.Dimension
}

// ResultGetGen mirrors latbuilder_result_get_gen: the generating
// vector, one integer per dimension.
func ResultGetGen(h Handle) []int {
	r, _ := get(h)
	return r.Gen
}

// ResultGetMerit mirrors latbuilder_result_get_merit.
func ResultGetMerit(h Handle) float64 {
	r, _ := get(h)
	return r.Merit
}

// ResultGetCPUSeconds mirrors latbuilder_result_get_cpu_seconds.
func ResultGetCPUSeconds(h Handle) float64 {
	r, _ := get(h)
	return r.CPUSeconds
}
