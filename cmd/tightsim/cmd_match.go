package main

import (
	"fmt"
	"io"
	"runtime"
	"sort"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/tightsim"
	"github.com/katalvlaran/tightsim/graphio"
	"github.com/katalvlaran/tightsim/metrics"
	"github.com/katalvlaran/tightsim/query"
)

func newMatchCmd() *cobra.Command {
	var (
		workers     int
		noFilter    bool
		showMetrics bool
	)
	cmd := &cobra.Command{
		Use:   "match <data.yaml> <query.yaml>",
		Short: "Print the tight-simulation balls of a query in a data graph",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := graphio.LoadFile(args[0])
			if err != nil {
				return err
			}
			qg, err := graphio.LoadFile(args[1])
			if err != nil {
				return err
			}
			q, err := query.New(qg)
			if err != nil {
				return fmt.Errorf("%s: %w", args[1], err)
			}

			if !cmd.Flags().Changed("workers") && cfg.Workers > 0 {
				workers = cfg.Workers
			}
			reg := prometheus.NewRegistry()
			rec, err := metrics.NewRecorder(reg)
			if err != nil {
				return err
			}

			balls, err := tightsim.Match(data, q,
				tightsim.WithContext(cmd.Context()),
				tightsim.WithWorkers(workers),
				tightsim.WithLogger(log),
				tightsim.WithMetrics(rec),
			)
			if err != nil {
				return err
			}
			if !noFilter {
				kept := tightsim.Filter(balls)
				rec.Redundant(len(balls) - len(kept))
				balls = kept
			}

			out := cmd.OutOrStdout()
			for _, b := range balls {
				fmt.Fprintln(out, b)
			}
			if showMetrics {
				return printMetrics(out, reg)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&workers, "workers", runtime.GOMAXPROCS(0), "Balls validated concurrently")
	cmd.Flags().BoolVar(&noFilter, "no-filter", false, "Keep redundant balls")
	cmd.Flags().BoolVar(&showMetrics, "metrics", false, "Print run counters after the balls")
	return cmd
}

// printMetrics writes one "name{labels} value" line per counter and gauge
// sample, and the sample count of each histogram.
func printMetrics(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return err
	}
	var lines []string
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			labels := ""
			for _, lp := range m.GetLabel() {
				labels += fmt.Sprintf("%s=%q", lp.GetName(), lp.GetValue())
			}
			if labels != "" {
				labels = "{" + labels + "}"
			}
			var value float64
			switch {
			case m.GetCounter() != nil:
				value = m.GetCounter().GetValue()
			case m.GetGauge() != nil:
				value = m.GetGauge().GetValue()
			case m.GetHistogram() != nil:
				value = float64(m.GetHistogram().GetSampleCount())
			}
			lines = append(lines, fmt.Sprintf("%s%s %g", mf.GetName(), labels, value))
		}
	}
	sort.Strings(lines)
	for _, l := range lines {
		if _, err := fmt.Fprintln(w, l); err != nil {
			return err
		}
	}
	return nil
}
