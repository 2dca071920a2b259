// Copyright ©2024 The LatNetBuilder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import "gopkg.in/yaml.v2"

// Spec is the textual search specification of spec.md §6, as parsed
// straight out of YAML. Every field still holds its spec-string form;
// Build turns it into the domain types search needs.
type Spec struct {
	Construction      string   `yaml:"construction"`
	LatticeType       string   `yaml:"lattice-type"`
	Embedding         string   `yaml:"embedding"`
	Size              string   `yaml:"size"`
	Dimension         int      `yaml:"dimension"`
	Figure            string   `yaml:"figure"`
	Weights           []string `yaml:"weights"`
	WeightsPowerScale float64  `yaml:"weights-power-scale"`
	NormType          string   `yaml:"norm-type"`
	Filters           []string `yaml:"filters"`
	MultilevelFilters []string `yaml:"multilevel-filters"`
	Combiner          string   `yaml:"combiner"`
	RandomSamples     int      `yaml:"random-samples"`
}

// Parse decodes a YAML document into a Spec. Malformed YAML is
// reported as a *Error with Field "yaml".
func Parse(data []byte) (*Spec, error) {
	var s Spec
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, wrapError("yaml", "malformed configuration document", err)
	}
	if s.Dimension <= 0 {
		return nil, newError("dimension", "must be positive")
	}
	return &s, nil
}
