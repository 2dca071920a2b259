// Copyright ©2024 The LatNetBuilder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package capi is a pure-Go mirror of original_source's
// include/latbuilder/capi.h: a handle-based surface an embedding
// program can call without linking against package search or
// internal/config directly. It exposes the same function names and
// result-accessor shape as the C header, built on internal/config and
// search underneath.
//
// No real "import \"C\"\" cgo glue is added here: this module's tests
// never exercise a cgo build, and a pure-Go package of exported
// functions taking and returning plain Go scalars and an opaque handle
// type is directly callable from cgo by a caller that does add the
// glue, without this package depending on cgo itself. That scope cut
// is recorded in DESIGN.md.
package capi // import "github.com/umontreal-simul/latnetbuilder-sub002/capi"
