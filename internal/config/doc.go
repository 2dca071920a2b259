// Copyright ©2024 The LatNetBuilder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config parses the textual search specification of spec.md
// §6 (construction, lattice type, embedding, size spec, dimension,
// figure spec, weights spec, norm type, filters, multilevel filters
// and combiner, random sample count) from YAML into the domain types
// package search needs to build a driver. It is not part of spec.md's
// core — the core treats configuration as an external collaborator
// (spec.md §1, "out of scope ... configuration parsing") — but
// SPEC_FULL.md's CLI needs a concrete parser, following the teacher
// repo's own convention of using nothing heavier than the standard
// library plus a YAML/flag library for configuration.
package config // import "github.com/umontreal-simul/latnetbuilder-sub002/internal/config"
