// Copyright ©2024 The LatNetBuilder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package weights

import "sort"

// Weights assigns a non-negative real weight gamma_u to every
// projection u (a finite, nonempty subset of 1-based coordinate
// indices). Grounded on original_source's latticetester::Weights
// abstract base (only CombinedWeights.h was retrieved verbatim; the
// other shapes below follow its method names and spec.md §3's weight
// taxonomy).
type Weights interface {
	// Weight returns gamma_u for the projection given by coords
	// (1-based coordinate indices, need not be sorted or unique-
	// checked by the caller beyond what each shape requires).
	Weight(coords []int) float64
	// Name renders the weight shape for diagnostics.
	Name() string
}

func sorted(coords []int) []int {
	out := append([]int(nil), coords...)
	sort.Ints(out)
	return out
}

func key(coords []int) string {
	s := sorted(coords)
	b := make([]byte, 0, 4*len(s))
	for i, c := range s {
		if i > 0 {
			b = append(b, ',')
		}
		b = appendInt(b, c)
	}
	return string(b)
}

func appendInt(b []byte, v int) []byte {
	if v == 0 {
		return append(b, '0')
	}
	if v < 0 {
		b = append(b, '-')
		v = -v
	}
	start := len(b)
	for v > 0 {
		b = append(b, byte('0'+v%10))
		v /= 10
	}
	for i, j := start, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return b
}
