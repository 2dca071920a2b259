// Copyright ©2024 The LatNetBuilder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package search

// Eval is the trivial driver of spec.md §4.9: it evaluates a single,
// explicitly given generating vector rather than searching.
type Eval struct {
	Base
	Gen []int
}

// NewEval returns the Eval driver evaluating gen over b. It panics if
// gen's length does not match b.Dimension.
func NewEval(b Base, gen []int) *Eval {
	if len(gen) != b.Dimension {
		panic("search: NewEval: generating vector length must equal dimension")
	}
	return &Eval{Base: b, Gen: append([]int(nil), gen...)}
}

// Execute evaluates e.Gen and records it as the result if accepted by
// the filter pipeline.
func (e *Eval) Execute() {
	e.Reset()
	e.finish(e.Gen, fullMerit(&e.Base, e.Gen))
}

var _ Driver = (*Eval)(nil)
