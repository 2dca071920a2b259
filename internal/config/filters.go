// Copyright ©2024 The LatNetBuilder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"math"
	"strconv"
	"strings"

	"github.com/umontreal-simul/latnetbuilder-sub002/filter"
)

// ParseFilters parses spec.md §6's filter spec strings into a
// BasicMeritFilterList. Recognized forms:
//
//	low-pass:threshold     filter.NewLowPass
//	norm:Palpha-SLl        filter.NewPAlphaNormalizer(alpha, 1); the
//	                       weight scale l after "SL" is accepted but,
//	                       absent a per-projection gamma table at this
//	                       layer, the normalizer always uses gamma=1.
//	embed-norm             filter.NewEmbeddedNorm with the same P_alpha
//	                       normalization, applied level by level
func ParseFilters(specs []string) (filter.BasicMeritFilterList, error) {
	var list filter.BasicMeritFilterList
	for i, s := range specs {
		f, embedOnly, err := parseOneFilter(s)
		if err != nil {
			return filter.BasicMeritFilterList{}, wrapError("filters["+strconv.Itoa(i)+"]", "invalid filter spec", err)
		}
		if embedOnly {
			return filter.BasicMeritFilterList{}, newError("filters["+strconv.Itoa(i)+"]", "embed-norm belongs in multilevel-filters, not filters")
		}
		list.Add(f)
	}
	return list, nil
}

// ParseMultilevelFilters is ParseFilters for spec.md §6's
// multilevel-filters list, which additionally accepts "embed-norm".
func ParseMultilevelFilters(specs []string) (filter.BasicMeritFilterList, error) {
	var list filter.BasicMeritFilterList
	for i, s := range specs {
		f, _, err := parseOneFilter(s)
		if err != nil {
			return filter.BasicMeritFilterList{}, wrapError("multilevel-filters["+strconv.Itoa(i)+"]", "invalid filter spec", err)
		}
		list.Add(f)
	}
	return list, nil
}

func parseOneFilter(spec string) (f filter.Filter, embedOnly bool, err error) {
	kind, rest, _ := strings.Cut(spec, ":")
	switch kind {
	case "low-pass":
		threshold, perr := strconv.ParseFloat(rest, 64)
		if perr != nil {
			return nil, false, wrapError("filters", "invalid low-pass threshold", perr)
		}
		return filter.NewLowPass(threshold), false, nil
	case "norm":
		alpha, perr := parseNormSpec(rest)
		if perr != nil {
			return nil, false, perr
		}
		return filter.NewPAlphaNormalizer(alpha, 1), false, nil
	case "embed-norm":
		alpha := 2.0
		if rest != "" {
			var perr error
			alpha, perr = parseNormSpec(rest)
			if perr != nil {
				return nil, false, perr
			}
		}
		return filter.NewEmbeddedNorm(func(def filter.LatDef, level int) float64 {
			return embedNorm(alpha, def.Dimension(), level)
		}), true, nil
	default:
		return nil, false, newError("filters", "unknown filter kind "+strconv.Quote(kind))
	}
}

// embedNorm is the per-level analogue of filter.NewPAlphaNormalizer's
// constant-weight Pα bound: (2*zeta(alpha))^dimension, scaled down by
// 2^level since each successive embedding level doubles the number of
// points and shrinks the worst-case bound accordingly.
func embedNorm(alpha float64, dimension, level int) float64 {
	zeta := zetaSeries(alpha)
	bound := math.Pow(2*zeta, float64(dimension))
	for i := 0; i < level; i++ {
		bound /= 2
	}
	return bound
}

// zetaSeries approximates the Riemann zeta function at alpha > 1,
// matching filter's own normalization constant closely enough for
// embed-norm's purposes.
func zetaSeries(alpha float64) float64 {
	var sum float64
	const terms = 100000
	for n := 1; n <= terms; n++ {
		sum += math.Pow(float64(n), -alpha)
	}
	return sum
}

// parseNormSpec parses the "Palpha-SLl" body of a "norm:..." spec,
// returning alpha. The SL-scale suffix is accepted for forward
// compatibility but not yet threaded into the normalizer's gamma.
func parseNormSpec(body string) (float64, error) {
	body = strings.TrimSpace(body)
	main, _, _ := strings.Cut(body, "-")
	main = strings.TrimPrefix(main, "P")
	alpha, err := strconv.ParseFloat(main, 64)
	if err != nil {
		return 0, wrapError("filters", "invalid norm alpha", err)
	}
	return alpha, nil
}
