// Package bench runs many independent path-inference runs concurrently
// over clones of a shared base graph, using a bounded worker pool since
// InferPaths owns a graph exclusively and cannot run on a shared instance
// from multiple goroutines.
package bench

import (
	"context"
	"fmt"
	"math/rand"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/bgpconverge/bgpconverge/asgraph"
)

// Config controls a benchmark run.
type Config struct {
	// Samples is the number of independent inference runs to perform.
	Samples int
	// Workers bounds the number of concurrent inference runs.
	Workers int
	// OriginsPerSample is how many random origin ASes each sample announces from.
	OriginsPerSample int
	// Seed seeds origin selection for reproducibility.
	Seed int64
}

// SampleResult records the outcome of one inference run.
type SampleResult struct {
	Origins  []asgraph.ASN
	Duration time.Duration
}

// Report summarizes a completed benchmark run.
type Report struct {
	ASCount   int
	Samples   []SampleResult
	TotalWall time.Duration
	P50, P99  time.Duration
}

// Run clones base once per sample, runs InferPaths on each clone across
// Config.Workers goroutines via errgroup, and reports timing statistics.
// base must not have had InferPaths called on it already.
func Run(ctx context.Context, base *asgraph.Graph, cfg Config) (*Report, error) {
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	if cfg.OriginsPerSample < 1 {
		cfg.OriginsPerSample = 1
	}

	asns := base.ASNs()
	if len(asns) < cfg.OriginsPerSample {
		return nil, fmt.Errorf("bench: graph has %d ASes, need at least %d for origins", len(asns), cfg.OriginsPerSample)
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	results := make([]SampleResult, cfg.Samples)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)

	start := time.Now()
	for i := 0; i < cfg.Samples; i++ {
		i := i
		origins := sampleOrigins(rng, asns, cfg.OriginsPerSample)
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			clone, err := base.Clone()
			if err != nil {
				return fmt.Errorf("bench: clone sample %d: %w", i, err)
			}

			announce := asgraph.AnycastFromSet(clone, origins)
			t0 := time.Now()
			if err := clone.InferPaths(announce); err != nil {
				return fmt.Errorf("bench: infer sample %d: %w", i, err)
			}
			results[i] = SampleResult{Origins: origins, Duration: time.Since(t0)}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	report := &Report{
		ASCount:   len(asns),
		Samples:   results,
		TotalWall: time.Since(start),
	}
	report.P50, report.P99 = percentiles(results)

	return report, nil
}

func sampleOrigins(rng *rand.Rand, asns []asgraph.ASN, n int) []asgraph.ASN {
	perm := rng.Perm(len(asns))
	origins := make([]asgraph.ASN, n)
	for i := 0; i < n; i++ {
		origins[i] = asns[perm[i]]
	}
	return origins
}

func percentiles(results []SampleResult) (p50, p99 time.Duration) {
	if len(results) == 0 {
		return 0, 0
	}
	durations := make([]time.Duration, len(results))
	for i, r := range results {
		durations[i] = r.Duration
	}
	sort.Slice(durations, func(i, j int) bool { return durations[i] < durations[j] })

	p50 = durations[(len(durations)-1)*50/100]
	p99 = durations[(len(durations)-1)*99/100]
	return p50, p99
}
