package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/tightsim/builder"
	"github.com/katalvlaran/tightsim/core"
	"github.com/katalvlaran/tightsim/graphio"
)

func newGenCmd() *cobra.Command {
	var (
		n      int
		p      float64
		labels int
		seed   int64
		loops  bool
		out    string
	)
	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate a random labeled digraph as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if labels < 1 {
				return fmt.Errorf("--labels must be ≥ 1 (%d)", labels)
			}
			var gopts []core.GraphOption
			if loops {
				gopts = append(gopts, core.WithLoops())
			}
			g, err := builder.BuildGraph(gopts,
				[]builder.BuilderOption{builder.WithSeed(seedFrom(cmd, seed)), builder.WithLabels(labels)},
				builder.RandomSparse(n, p))
			if err != nil {
				return err
			}
			log.WithField("vertices", g.VertexCount()).WithField("edges", g.EdgeCount()).Info("graph generated")

			if out == "" || out == "-" {
				return graphio.Encode(cmd.OutOrStdout(), g)
			}
			return graphio.SaveFile(out, g)
		},
	}
	cmd.Flags().IntVar(&n, "n", 100, "Number of vertices")
	cmd.Flags().Float64Var(&p, "p", 0.05, "Edge probability per ordered pair")
	cmd.Flags().IntVar(&labels, "labels", 3, "Number of distinct labels (≥ 1)")
	cmd.Flags().Int64Var(&seed, "seed", 1, "Random seed")
	cmd.Flags().BoolVar(&loops, "loops", false, "Allow self-loops")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file (default: stdout)")
	return cmd
}
