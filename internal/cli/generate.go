// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/hypervolume/front"
	"github.com/katalvlaran/hypervolume/frontfile"
)

// Front shapes produced by generate.
const (
	shapeSphere = "sphere" // positive orthant of the unit sphere, non-dominated
	shapeLinear = "linear" // unit simplex, non-dominated
	shapeRandom = "random" // uniform in the unit cube
)

// defaultSeed replaces a zero --seed so every run is reproducible.
const defaultSeed int64 = 1

func newGenerateCommand() *cobra.Command {
	var (
		fronts, points, objectives int
		seed                       int64
		shape                      string
	)
	cmd := &cobra.Command{
		Use:   "generate [flags] OUT",
		Short: "Write random benchmark fronts to OUT",
		Long: `generate writes fronts in the wfg input format. OUT is compressed
according to its extension (.gz, .zst, .lz4).`,
		Example: `  wfg generate --fronts 20 --points 200 --objectives 5 sphere5d.dat.zst`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if fronts < 1 || points < 1 || objectives < 1 {
				return errors.New("--fronts, --points and --objectives must be positive")
			}
			if seed == 0 {
				seed = defaultSeed
			}
			rng := rand.New(rand.NewSource(seed))
			out := make([]*front.Front, fronts)
			for i := range out {
				f, err := generateFront(rng, shape, points, objectives)
				if err != nil {
					return err
				}
				out[i] = f
			}
			if err := frontfile.Create(args[0], out); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d fronts of %d points × %d objectives to %s\n",
				fronts, points, objectives, args[0])

			return nil
		},
	}

	f := cmd.Flags()
	f.IntVar(&fronts, "fronts", 1, "number of fronts")
	f.IntVar(&points, "points", 100, "points per front")
	f.IntVar(&objectives, "objectives", 3, "objectives per point")
	f.Int64Var(&seed, "seed", 1, "random seed (0 means 1)")
	f.StringVar(&shape, "shape", shapeSphere, "front shape: sphere, linear or random")

	return cmd
}

// generateFront draws one front of the given shape.
func generateFront(rng *rand.Rand, shape string, points, objectives int) (*front.Front, error) {
	var norm func(p front.Point) float64
	switch shape {
	case shapeSphere:
		norm = func(p front.Point) float64 {
			var s float64
			for _, v := range p {
				s += v * v
			}

			return math.Sqrt(s)
		}
	case shapeLinear:
		norm = func(p front.Point) float64 {
			var s float64
			for _, v := range p {
				s += v
			}

			return s
		}
	case shapeRandom:
		norm = func(front.Point) float64 { return 1 }
	default:
		return nil, fmt.Errorf("--shape %q: want sphere, linear or random", shape)
	}

	f, err := front.NewFront(points, objectives)
	if err != nil {
		return nil, err
	}
	for _, p := range f.Points() {
		for j := range p {
			// Strictly positive so every point beats the origin.
			p[j] = 1e-9 + rng.Float64()
		}
		d := norm(p)
		for j := range p {
			p[j] /= d
		}
	}

	return f, nil
}
