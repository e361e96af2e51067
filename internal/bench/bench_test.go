package bench_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bgpconverge/bgpconverge/internal/bench"
	"github.com/bgpconverge/bgpconverge/synthetic"
)

func TestRunProducesOneResultPerSample(t *testing.T) {
	g, err := synthetic.Generate(synthetic.WithSeed(3), synthetic.WithTierSizes(3, 10, 50))
	require.NoError(t, err)

	report, err := bench.Run(context.Background(), g, bench.Config{
		Samples:          6,
		Workers:          3,
		OriginsPerSample: 2,
		Seed:             1,
	})
	require.NoError(t, err)

	assert.Len(t, report.Samples, 6)
	assert.Equal(t, len(g.ASNs()), report.ASCount)
	for _, s := range report.Samples {
		assert.Len(t, s.Origins, 2)
	}
}

func TestRunRejectsTooFewOrigins(t *testing.T) {
	g, err := synthetic.Generate(synthetic.WithSeed(4), synthetic.WithTierSizes(1, 0, 0))
	require.NoError(t, err)

	_, err = bench.Run(context.Background(), g, bench.Config{
		Samples:          1,
		OriginsPerSample: 5,
	})
	assert.Error(t, err)
}
