// Copyright ©2024 The LatNetBuilder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"strconv"
	"strings"

	"github.com/umontreal-simul/latnetbuilder-sub002/filter"
)

// ParseCombiner parses spec.md §6's combiner spec string, one of
// "sum", "max", or "level:k", into a filter.Combiner.
func ParseCombiner(spec string) (filter.Combiner, error) {
	spec = strings.TrimSpace(spec)
	kind, rest, hasArg := strings.Cut(spec, ":")
	switch kind {
	case "", "sum":
		return filter.Combiner{Kind: filter.CombineSum}, nil
	case "max":
		return filter.Combiner{Kind: filter.CombineMax}, nil
	case "level":
		if !hasArg {
			return filter.Combiner{}, newError("combiner", `expected "level:k"`)
		}
		k, err := strconv.Atoi(strings.TrimSpace(rest))
		if err != nil {
			return filter.Combiner{}, wrapError("combiner", "invalid level index", err)
		}
		return filter.Combiner{Kind: filter.CombineLevel, Level: k}, nil
	default:
		return filter.Combiner{}, newError("combiner", "unknown combiner "+strconv.Quote(kind))
	}
}
