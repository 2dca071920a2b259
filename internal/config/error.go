// Copyright ©2024 The LatNetBuilder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import "fmt"

// Error is a recoverable configuration error (spec.md §7,
// "Configuration error"): unknown construction, unknown figure,
// weights syntax, invalid norm-type, incompatible filter/construction,
// dimension mismatch, or an unsupported compression/lattice-type
// combination. Parse errors are always returned as *Error, never a
// panic, per §7's propagation rule.
type Error struct {
	Field   string // the spec field that failed to parse, e.g. "figure", "weights[1]"
	Reason  string
	Wrapped error
}

// Error implements error.
func (e *Error) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("config: %s: %s: %v", e.Field, e.Reason, e.Wrapped)
	}
	return fmt.Sprintf("config: %s: %s", e.Field, e.Reason)
}

// Unwrap returns the wrapped error, if any, for errors.Is/As.
func (e *Error) Unwrap() error { return e.Wrapped }

func newError(field, reason string) *Error { return &Error{Field: field, Reason: reason} }

func wrapError(field, reason string, err error) *Error {
	return &Error{Field: field, Reason: reason, Wrapped: err}
}
