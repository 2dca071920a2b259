// Copyright ©2024 The LatNetBuilder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"strconv"
	"strings"

	"github.com/umontreal-simul/latnetbuilder-sub002/gf2"
	"github.com/umontreal-simul/latnetbuilder-sub002/sizeparam"
)

// ParseSize parses spec.md §6's size spec string into a SizeParam,
// given the already-parsed lattice type and embedding.
//
// Ordinary unilevel: a decimal modulus, e.g. "1021".
// Ordinary multilevel: "base,maxlevel", e.g. "2,10" for 2^10.
// Polynomial: a comma-separated list of set-bit exponents of the
// modulus polynomial over GF(2), e.g. "0,2,5" for z^5+z^2+1; for
// multilevel polynomial, the same list followed by ";maxlevel", e.g.
// "0,1;8".
func ParseSize(spec string, latticeType string, embedding string) (sizeparam.SizeParam, error) {
	spec = strings.TrimSpace(spec)
	multilevel := embedding == "multilevel" || embedding == "embedded"

	switch latticeType {
	case "", "ordinary":
		if !multilevel {
			n, err := strconv.Atoi(spec)
			if err != nil {
				return sizeparam.SizeParam{}, wrapError("size", "expected an integer modulus", err)
			}
			return sizeparam.NewOrdinaryUnilevel(n), nil
		}
		parts := strings.SplitN(spec, ",", 2)
		if len(parts) != 2 {
			return sizeparam.SizeParam{}, newError("size", `expected "base,maxlevel" for an embedded ordinary lattice`)
		}
		base, err := strconv.Atoi(strings.TrimSpace(parts[0]))
		if err != nil {
			return sizeparam.SizeParam{}, wrapError("size", "invalid base", err)
		}
		maxLevel, err := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil {
			return sizeparam.SizeParam{}, wrapError("size", "invalid maxlevel", err)
		}
		return sizeparam.NewOrdinaryMultilevel(base, maxLevel), nil

	case "polynomial":
		if !multilevel {
			p, err := parsePoly(spec, "size")
			if err != nil {
				return sizeparam.SizeParam{}, err
			}
			return sizeparam.NewPolynomialUnilevel(p), nil
		}
		parts := strings.SplitN(spec, ";", 2)
		if len(parts) != 2 {
			return sizeparam.SizeParam{}, newError("size", `expected "exponents;maxlevel" for an embedded polynomial lattice`)
		}
		p, err := parsePoly(parts[0], "size")
		if err != nil {
			return sizeparam.SizeParam{}, err
		}
		maxLevel, err := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil {
			return sizeparam.SizeParam{}, wrapError("size", "invalid maxlevel", err)
		}
		return sizeparam.NewPolynomialMultilevel(p, maxLevel), nil

	default:
		return sizeparam.SizeParam{}, newError("lattice-type", "unknown lattice type "+strconv.Quote(latticeType))
	}
}

// parsePoly parses a comma-separated list of set-bit exponents into a
// gf2.Poly, e.g. "0,2,5" -> z^5+z^2+1.
func parsePoly(spec string, field string) (gf2.Poly, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return gf2.Poly{}, newError(field, "empty polynomial exponent list")
	}
	var bits uint64
	for _, tok := range strings.Split(spec, ",") {
		e, err := strconv.Atoi(strings.TrimSpace(tok))
		if err != nil {
			return gf2.Poly{}, wrapError(field, "invalid exponent "+strconv.Quote(tok), err)
		}
		if e < 0 || e >= 64 {
			return gf2.Poly{}, newError(field, "exponent out of range: "+strconv.Itoa(e))
		}
		bits |= 1 << uint(e)
	}
	return gf2.NewPoly(bits), nil
}
