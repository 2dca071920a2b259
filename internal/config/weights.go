// Copyright ©2024 The LatNetBuilder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"strconv"
	"strings"

	"github.com/umontreal-simul/latnetbuilder-sub002/weights"
)

// ParseWeights parses spec.md §6's weights spec strings and combines
// them into a single Weights value. Each string is one of:
//
//	product:g1,g2,...[:default]          weights.Product
//	order:g1,g2,...[:default]            weights.OrderDependent
//	projection-dependent:u1=g1,u2=g2,...[:default]  weights.ProjectionDependent
//
// where a projection u is a dash-separated list of 1-based coordinate
// indices, e.g. "1-3=0.5". A single gamma with no default, as in
// "product:0.7", applies to every coordinate (product) or every order
// (order). Multiple spec strings are combined additively
// via weights.Combined, matching the "combined" shape of spec.md §3.
func ParseWeights(specs []string) (weights.Weights, error) {
	if len(specs) == 0 {
		return nil, newError("weights", "at least one weight spec is required")
	}
	parsed := make([]weights.Weights, 0, len(specs))
	for i, s := range specs {
		w, err := parseOneWeight(s)
		if err != nil {
			return nil, wrapError("weights["+strconv.Itoa(i)+"]", "invalid weight spec", err)
		}
		parsed = append(parsed, w)
	}
	if len(parsed) == 1 {
		return parsed[0], nil
	}
	return weights.NewCombined(parsed...), nil
}

func parseOneWeight(spec string) (weights.Weights, error) {
	kind, rest, ok := strings.Cut(spec, ":")
	if !ok {
		return nil, newError("weights", `expected "kind:params"`)
	}
	switch kind {
	case "product":
		gammas, def, err := parseGammaList(rest)
		if err != nil {
			return nil, err
		}
		return weights.NewProduct(gammas, def), nil
	case "order":
		gammas, def, err := parseGammaList(rest)
		if err != nil {
			return nil, err
		}
		return weights.NewOrderDependent(gammas, def), nil
	case "projection-dependent":
		return parseProjectionDependent(rest)
	default:
		return nil, newError("weights", "unknown weight kind "+strconv.Quote(kind))
	}
}

// parseGammaList parses "g1,g2,...[:default]" into the explicit gamma
// slice and a default weight. If the default is omitted it is the
// single gamma when exactly one is given (so "product:0.7" weights
// every coordinate by 0.7), and 0 otherwise.
func parseGammaList(spec string) ([]float64, float64, error) {
	body, defStr, hasDefault := strings.Cut(spec, ":")
	var gammas []float64
	for _, tok := range strings.Split(body, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		g, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return nil, 0, wrapError("weights", "invalid gamma "+strconv.Quote(tok), err)
		}
		gammas = append(gammas, g)
	}
	def := 0.0
	if hasDefault {
		var err error
		def, err = strconv.ParseFloat(strings.TrimSpace(defStr), 64)
		if err != nil {
			return nil, 0, wrapError("weights", "invalid default weight", err)
		}
	} else if len(gammas) == 1 {
		def = gammas[0]
	}
	return gammas, def, nil
}

func parseProjectionDependent(spec string) (weights.Weights, error) {
	body, defStr, hasDefault := strings.Cut(spec, ":")
	def := 0.0
	if hasDefault {
		var err error
		def, err = strconv.ParseFloat(strings.TrimSpace(defStr), 64)
		if err != nil {
			return nil, wrapError("weights", "invalid default weight", err)
		}
	}
	w := weights.NewProjectionDependent(def)
	for _, entry := range strings.Split(body, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		projStr, gammaStr, ok := strings.Cut(entry, "=")
		if !ok {
			return nil, newError("weights", `expected "u=gamma" in projection-dependent entry`)
		}
		coords, err := parseProjection(projStr)
		if err != nil {
			return nil, err
		}
		gamma, err := strconv.ParseFloat(strings.TrimSpace(gammaStr), 64)
		if err != nil {
			return nil, wrapError("weights", "invalid gamma", err)
		}
		w.Set(coords, gamma)
	}
	return w, nil
}

func parseProjection(spec string) ([]int, error) {
	var coords []int
	for _, tok := range strings.Split(spec, "-") {
		tok = strings.TrimSpace(tok)
		c, err := strconv.Atoi(tok)
		if err != nil {
			return nil, wrapError("weights", "invalid coordinate "+strconv.Quote(tok), err)
		}
		coords = append(coords, c)
	}
	if len(coords) == 0 {
		return nil, newError("weights", "empty projection")
	}
	return coords, nil
}
