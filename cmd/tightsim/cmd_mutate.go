package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/tightsim/graphio"
	"github.com/katalvlaran/tightsim/mutate"
)

func newMutateCmd() *cobra.Command {
	var (
		perSize     int
		perInc      int
		seed        int64
		outDir      string
		forwardOnly bool
	)
	cmd := &cobra.Command{
		Use:   "mutate <query.yaml>",
		Short: "Grow a query into per-size × per-inc larger variants",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			base, err := graphio.LoadFile(args[0])
			if err != nil {
				return err
			}
			opts := []mutate.Option{mutate.WithSeed(seedFrom(cmd, seed))}
			if forwardOnly {
				opts = append(opts, mutate.WithForwardOnly())
			}
			variants, err := mutate.Variants(base, perSize, perInc, opts...)
			if err != nil {
				return err
			}

			if outDir == "" {
				outDir = filepath.Dir(args[0])
			}
			if err := os.MkdirAll(outDir, 0o755); err != nil {
				return fmt.Errorf("create %s: %w", outDir, err)
			}
			stem := strings.TrimSuffix(filepath.Base(args[0]), filepath.Ext(args[0]))
			for _, v := range variants {
				path := filepath.Join(outDir, fmt.Sprintf("%s-V%d.yaml", stem, v.Version))
				if err := graphio.SaveFile(path, v.Graph); err != nil {
					return err
				}
				log.WithFields(logrus.Fields{
					"version":  v.Version,
					"round":    v.Round,
					"vertices": v.Graph.VertexCount(),
				}).Debug("variant written")
				fmt.Fprintln(cmd.OutOrStdout(), path)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&perSize, "per-size", 1, "Independent rounds grown from the base query")
	cmd.Flags().IntVar(&perInc, "per-inc", 1, "Vertices added per round (one variant each)")
	cmd.Flags().Int64Var(&seed, "seed", mutate.DefaultSeed, "Random seed")
	cmd.Flags().StringVar(&outDir, "out-dir", "", "Output directory (default: next to the query)")
	cmd.Flags().BoolVar(&forwardOnly, "forward-only", false, "Always link new vertices new→old")
	return cmd
}
