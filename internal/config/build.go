// Copyright ©2024 The LatNetBuilder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"math/rand"
	"strconv"

	"github.com/umontreal-simul/latnetbuilder-sub002/filter"
	"github.com/umontreal-simul/latnetbuilder-sub002/kernel"
	"github.com/umontreal-simul/latnetbuilder-sub002/observer"
	"github.com/umontreal-simul/latnetbuilder-sub002/search"
	"github.com/umontreal-simul/latnetbuilder-sub002/storage"
)

// Build turns a fully parsed Spec into a ready-to-run search.Driver,
// dispatching on Construction (spec.md §6: exhaustive, Korobov,
// random, random-Korobov, CBC, fast-CBC, random-CBC, extend,
// evaluation). rng supplies randomness to the random-* constructions;
// it may be nil for every other construction. extendBase/extendP0
// are only consulted for the "extend" construction, and evalGen only
// for "evaluation".
//
// Build rejects lattice-type "polynomial": package search builds only
// ordinary (integer-modulus) lattices (see search's package doc); a
// polynomial-modulus spec is reported as a *Error rather than
// attempted.
func Build(s *Spec, rng *rand.Rand, extendP0 int, extendBase []int, evalGen []int) (search.Driver, error) {
	if s.LatticeType != "" && s.LatticeType != "ordinary" {
		return nil, newError("lattice-type", "package search builds only ordinary lattices; got "+strconv.Quote(s.LatticeType))
	}

	if _, err := ParseNormType(s.NormType); err != nil {
		return nil, err
	}
	size, err := ParseSize(s.Size, s.LatticeType, s.Embedding)
	if err != nil {
		return nil, err
	}
	figure, err := ParseFigure(s.Figure)
	if err != nil {
		return nil, err
	}
	w, err := ParseWeights(s.Weights)
	if err != nil {
		return nil, err
	}
	unilevel, err := ParseFilters(s.Filters)
	if err != nil {
		return nil, err
	}

	multilevel := s.Embedding == "multilevel" || s.Embedding == "embedded"
	var mlFilters filter.BasicMeritFilterList
	var combiner filter.Combiner
	if multilevel {
		mlFilters, err = ParseMultilevelFilters(s.MultilevelFilters)
		if err != nil {
			return nil, err
		}
		combiner, err = ParseCombiner(s.Combiner)
		if err != nil {
			return nil, err
		}
	}

	compress := storage.None
	if figure.Symmetric() && s.Construction != "fast-CBC" {
		compress = figure.SuggestedCompression()
	}
	st := storage.NewOrdinary(size, compress)

	b := search.Base{
		Dimension: s.Dimension,
		Storage:   st,
		Kernel:    kernel.BuildOrdinaryVector(figure, st),
		Weights:   w,
		Filters:   filter.MeritFilterList{Multilevel: mlFilters, Combiner: combiner, Unilevel: unilevel},
		Observer:  &observer.DriverObserver{},
	}

	switch s.Construction {
	case "", "CBC":
		return search.NewCBC(b, search.CoprimeCandidates, search.ScalarBuilder, nil), nil
	case "fast-CBC":
		return search.NewCBC(b, search.CoprimeCandidates, search.FastCBCBuilder, nil), nil
	case "exhaustive":
		return search.NewExhaustive(b, nil), nil
	case "Korobov":
		return search.NewKorobov(b, nil), nil
	case "random":
		return search.NewRandom(b, s.RandomSamples, rngOrDefault(rng), nil), nil
	case "random-Korobov":
		return search.NewRandomKorobov(b, s.RandomSamples, rngOrDefault(rng), nil), nil
	case "random-CBC":
		return search.NewRandomCBC(b, s.RandomSamples, rngOrDefault(rng), search.ScalarBuilder, nil), nil
	case "extend":
		if len(extendBase) != b.Dimension {
			return nil, newError("extend-base-gen", "base generating vector length must equal dimension")
		}
		return search.NewExtend(b, extendP0, extendBase, search.ScalarBuilder, nil), nil
	case "evaluation":
		if len(evalGen) != b.Dimension {
			return nil, newError("eval-gen", "generating vector length must equal dimension")
		}
		return search.NewEval(b, evalGen), nil
	default:
		return nil, newError("construction", "unknown construction "+strconv.Quote(s.Construction))
	}
}

func rngOrDefault(rng *rand.Rand) *rand.Rand {
	if rng != nil {
		return rng
	}
	return rand.New(rand.NewSource(1))
}
