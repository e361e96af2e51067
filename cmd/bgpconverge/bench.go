package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/bgpconverge/bgpconverge/asgraph"
	"github.com/bgpconverge/bgpconverge/caida"
	"github.com/bgpconverge/bgpconverge/internal/bench"
	"github.com/bgpconverge/bgpconverge/synthetic"
)

func newBenchCmd() *cobra.Command {
	var (
		caidaPath   string
		synthTier1  int
		synthRegion int
		synthStub   int
		samples     int
		workers     int
		origins     int
		seed        int64
	)

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Run many random-origin inferences concurrently and report timing percentiles",
		RunE: func(cmd *cobra.Command, args []string) error {
			var g *asgraph.Graph
			var err error
			if caidaPath != "" {
				g, err = caida.ReadASRelGraph(caidaPath)
			} else {
				g, err = synthetic.Generate(
					synthetic.WithSeed(seed),
					synthetic.WithTierSizes(synthTier1, synthRegion, synthStub),
				)
			}
			if err != nil {
				return fmt.Errorf("load graph: %w", err)
			}

			logrus.WithFields(logrus.Fields{
				"ases":    len(g.ASNs()),
				"samples": samples,
				"workers": workers,
			}).Info("starting benchmark")

			report, err := bench.Run(cmd.Context(), g, bench.Config{
				Samples:          samples,
				Workers:          workers,
				OriginsPerSample: origins,
				Seed:             seed,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "ases=%d samples=%d wall=%s p50=%s p99=%s\n",
				report.ASCount, len(report.Samples), report.TotalWall, report.P50, report.P99)
			return nil
		},
	}

	cmd.Flags().StringVar(&caidaPath, "caida", "", "path to a bzip2-compressed CAIDA AS-relationship file")
	cmd.Flags().IntVar(&synthTier1, "synthetic-tier1", 12, "tier-1 AS count for the synthetic topology")
	cmd.Flags().IntVar(&synthRegion, "synthetic-regional", 200, "regional AS count for the synthetic topology")
	cmd.Flags().IntVar(&synthStub, "synthetic-stub", 2000, "stub AS count for the synthetic topology")
	cmd.Flags().IntVar(&samples, "samples", 100, "number of independent inference runs")
	cmd.Flags().IntVar(&workers, "workers", 8, "bounded concurrency for inference runs")
	cmd.Flags().IntVar(&origins, "origins", 3, "number of random origin ASes per sample")
	cmd.Flags().Int64Var(&seed, "seed", 1, "seed for origin selection and synthetic topology generation")

	return cmd
}
