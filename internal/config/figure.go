// Copyright ©2024 The LatNetBuilder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"strconv"
	"strings"

	"github.com/umontreal-simul/latnetbuilder-sub002/kernel"
)

// ParseFigure parses spec.md §6's figure-of-merit spec string into a
// kernel.Kernel. Recognized forms:
//
//	P2, P4, ...              kernel.PAlpha with the given even alpha
//	R2, R4, ...              kernel.RAlpha
//	CU:IB:d                  kernel.IB interlaced with factor d
//	CU:IC:a:d                kernel.ICAlpha, alpha a, interlacing factor d
//	CU:IAIDN:a:d             kernel.AIDNAlpha, alpha a, interlacing factor d
//
// Spectral-test and equidistribution figures are parsed elsewhere
// (spec.md's tvalue and the as-yet-unwritten spectral driver are
// configured directly by the CLI, not through a figure string).
func ParseFigure(spec string) (kernel.Kernel, error) {
	spec = strings.TrimSpace(spec)
	if strings.HasPrefix(spec, "CU:") {
		return parseInterlaced(strings.TrimPrefix(spec, "CU:"))
	}
	if len(spec) < 2 {
		return nil, newError("figure", "unrecognized figure spec "+strconv.Quote(spec))
	}
	alpha, err := strconv.Atoi(spec[1:])
	if err != nil {
		return nil, wrapError("figure", "invalid alpha", err)
	}
	switch spec[0] {
	case 'P':
		return kernel.NewPAlpha(alpha), nil
	case 'R':
		return kernel.NewRAlpha(alpha), nil
	default:
		return nil, newError("figure", "unrecognized figure spec "+strconv.Quote(spec))
	}
}

func parseInterlaced(spec string) (kernel.Kernel, error) {
	parts := strings.Split(spec, ":")
	if len(parts) < 2 {
		return nil, newError("figure", `expected "CU:kind:params"`)
	}
	switch parts[0] {
	case "PAlpha":
		if len(parts) != 2 {
			return nil, newError("figure", `expected "CU:PAlpha:alpha"`)
		}
		alpha, err := strconv.Atoi(parts[1])
		if err != nil {
			return nil, wrapError("figure", "invalid alpha", err)
		}
		return kernel.NewPAlpha(alpha), nil
	case "IB":
		if len(parts) != 2 {
			return nil, newError("figure", `expected "CU:IB:d"`)
		}
		d, err := strconv.Atoi(parts[1])
		if err != nil {
			return nil, wrapError("figure", "invalid interlacing factor", err)
		}
		return kernel.NewIB(d), nil
	case "IC":
		if len(parts) != 3 {
			return nil, newError("figure", `expected "CU:IC:alpha:d"`)
		}
		alpha, err := strconv.Atoi(parts[1])
		if err != nil {
			return nil, wrapError("figure", "invalid alpha", err)
		}
		d, err := strconv.Atoi(parts[2])
		if err != nil {
			return nil, wrapError("figure", "invalid interlacing factor", err)
		}
		return kernel.NewICAlpha(alpha, d), nil
	case "IAIDN":
		if len(parts) != 3 {
			return nil, newError("figure", `expected "CU:IAIDN:alpha:d"`)
		}
		alpha, err := strconv.Atoi(parts[1])
		if err != nil {
			return nil, wrapError("figure", "invalid alpha", err)
		}
		d, err := strconv.Atoi(parts[2])
		if err != nil {
			return nil, wrapError("figure", "invalid interlacing factor", err)
		}
		return kernel.NewAIDNAlpha(alpha, d), nil
	default:
		return nil, newError("figure", "unknown interlaced kind "+strconv.Quote(parts[0]))
	}
}
