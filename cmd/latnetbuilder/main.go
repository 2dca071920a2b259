// Copyright ©2024 The LatNetBuilder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command latnetbuilder runs a single quasi-Monte Carlo point-set
// search and prints its result, per spec.md §6's external interface.
package main

import (
	"fmt"
	"log"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/umontreal-simul/latnetbuilder-sub002/internal/config"
	"github.com/umontreal-simul/latnetbuilder-sub002/meritvalue"
	"github.com/umontreal-simul/latnetbuilder-sub002/result"
)

var opts struct {
	configFile        string
	construction      string
	latticeType       string
	embedding         string
	size              string
	dimension         int
	figure            string
	weights           []string
	weightsPower      float64
	normType          string
	filters           []string
	multilevelFilters []string
	combiner          string
	randomSamples     int
	seed              int64
	extendBaseModulus int
	extendBaseGen     string
	evalGen           string
	verbose           bool
}

var rootCmd = &cobra.Command{
	Use:   "latnetbuilder",
	Short: "search for rank-1 lattice point sets minimizing a coordinate-uniform figure of merit",
	Long: `latnetbuilder searches for rank-1 lattice rules good for
quasi-Monte Carlo integration, by component-by-component or exhaustive
construction under a chosen figure of merit, weight shape and filter
pipeline.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runSearch,
}

func init() {
	flags := rootCmd.Flags()
	flags.StringVar(&opts.configFile, "config", "", "path to a YAML configuration file (overrides the flags below)")
	flags.StringVar(&opts.construction, "construction", "CBC", "exhaustive|Korobov|random|random-Korobov|CBC|fast-CBC|random-CBC|extend|evaluation")
	flags.StringVar(&opts.latticeType, "lattice-type", "ordinary", "ordinary|polynomial")
	flags.StringVar(&opts.embedding, "embedding", "unilevel", "unilevel|multilevel")
	flags.StringVar(&opts.size, "size", "", "modulus, or \"base,maxlevel\" for a multilevel lattice")
	flags.IntVar(&opts.dimension, "dimension", 0, "point-set dimension")
	flags.StringVar(&opts.figure, "figure", "P2", "figure of merit spec, e.g. P2, R4, CU:IB:3")
	flags.StringSliceVar(&opts.weights, "weights", []string{"product:1"}, "weight spec(s), e.g. product:0.5 or order:1,0.5")
	flags.Float64Var(&opts.weightsPower, "weights-power", 1, "weights power scale")
	flags.StringVar(&opts.normType, "norm-type", "2", "inf, or a real q >= 1")
	flags.StringSliceVar(&opts.filters, "filters", nil, "unilevel filter spec(s), e.g. low-pass:1000")
	flags.StringSliceVar(&opts.multilevelFilters, "multilevel-filters", nil, "multilevel filter spec(s), e.g. embed-norm")
	flags.StringVar(&opts.combiner, "combiner", "sum", "sum|max|level:k")
	flags.IntVar(&opts.randomSamples, "random-samples", 30, "candidate sample count for random constructions")
	flags.Int64Var(&opts.seed, "seed", 1, "PRNG seed for random constructions")
	flags.IntVar(&opts.extendBaseModulus, "extend-base-modulus", 0, "base lattice modulus for the extend construction")
	flags.StringVar(&opts.extendBaseGen, "extend-base-gen", "", "comma-separated base generating vector for the extend construction")
	flags.StringVar(&opts.evalGen, "eval-gen", "", "comma-separated generating vector for the evaluation construction")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log per-dimension progress to stderr")
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("latnetbuilder: ")
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

func runSearch(cmd *cobra.Command, args []string) error {
	spec, err := loadSpec()
	if err != nil {
		return err
	}

	var extendBase []int
	if opts.extendBaseGen != "" {
		extendBase, err = parseIntList(opts.extendBaseGen)
		if err != nil {
			return fmt.Errorf("--extend-base-gen: %w", err)
		}
	}
	var evalGen []int
	if opts.evalGen != "" {
		evalGen, err = parseIntList(opts.evalGen)
		if err != nil {
			return fmt.Errorf("--eval-gen: %w", err)
		}
	}

	rng := rand.New(rand.NewSource(opts.seed))
	driver, err := config.Build(spec, rng, opts.extendBaseModulus, extendBase, evalGen)
	if err != nil {
		return err
	}

	if opts.verbose {
		base := driver.AsBase()
		base.Observer.OnNetSelected = func(dim int, v meritvalue.Value) {
			log.Printf("dimension %d: merit = %v", dim, v)
		}
		base.Observer.OnAbort = func() {
			log.Print("candidate scan aborted early")
		}
		base.Observer.OnFailedSearch = func() {
			log.Print("search finished without selecting a candidate")
		}
	}

	start := time.Now()
	driver.Execute()
	elapsed := time.Since(start)

	r, err := result.FromDriver(driver, elapsed)
	if err != nil {
		return err
	}
	fmt.Fprintln(os.Stdout, r)
	return nil
}

// loadSpec builds a config.Spec either from --config's YAML document
// or from the flags registered in init.
func loadSpec() (*config.Spec, error) {
	if opts.configFile != "" {
		data, err := os.ReadFile(opts.configFile)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", opts.configFile, err)
		}
		return config.Parse(data)
	}
	return &config.Spec{
		Construction:      opts.construction,
		LatticeType:       opts.latticeType,
		Embedding:         opts.embedding,
		Size:              opts.size,
		Dimension:         opts.dimension,
		Figure:            opts.figure,
		Weights:           opts.weights,
		WeightsPowerScale: opts.weightsPower,
		NormType:          opts.normType,
		Filters:           opts.filters,
		MultilevelFilters: opts.multilevelFilters,
		Combiner:          opts.combiner,
		RandomSamples:     opts.randomSamples,
	}, nil
}

func parseIntList(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
