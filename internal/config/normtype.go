// Copyright ©2024 The LatNetBuilder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"math"
	"strconv"
	"strings"
)

// ParseNormType validates spec.md §6's norm-type spec, "inf" or a real
// q in [1, infinity). It does not feed into any merit computation in
// this module (the figure spec alone determines the coordinate-
// uniform kernel used); it exists so an invalid norm-type is still
// reported as the "Configuration error" spec.md §7 calls for, ahead of
// a spectral-test figure that would consume it.
func ParseNormType(spec string) (float64, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" || spec == "inf" {
		return math.Inf(1), nil
	}
	q, err := strconv.ParseFloat(spec, 64)
	if err != nil {
		return 0, wrapError("norm-type", "expected \"inf\" or a real q >= 1", err)
	}
	if q < 1 {
		return 0, newError("norm-type", "q must be >= 1")
	}
	return q, nil
}
