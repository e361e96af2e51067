package synthetic_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bgpconverge/bgpconverge/asgraph"
	"github.com/bgpconverge/bgpconverge/synthetic"
)

func TestGenerateTopologySizes(t *testing.T) {
	g, err := synthetic.Generate(
		synthetic.WithSeed(42),
		synthetic.WithTierSizes(4, 20, 100),
	)
	require.NoError(t, err)
	assert.Len(t, g.ASNs(), 4+20+100)
}

func TestGenerateEveryStubHasAProvider(t *testing.T) {
	g, err := synthetic.Generate(
		synthetic.WithSeed(7),
		synthetic.WithTierSizes(3, 10, 50),
		synthetic.WithStubAttachment(1, 1),
	)
	require.NoError(t, err)

	for _, asn := range g.ASNs() {
		if asn <= 3+10 {
			continue // tier-1 or regional, not a stub
		}
		assert.NotEmpty(t, g.NeighborASNs(asn), "stub AS%d has no providers", asn)
	}
}

func TestGenerateDeterministicWithSameSeed(t *testing.T) {
	opts := []synthetic.Option{synthetic.WithSeed(99), synthetic.WithTierSizes(5, 30, 200)}

	g1, err := synthetic.Generate(opts...)
	require.NoError(t, err)
	g2, err := synthetic.Generate(opts...)
	require.NoError(t, err)

	for _, asn := range g1.ASNs() {
		assert.Equal(t, g1.NeighborASNs(asn), g2.NeighborASNs(asn))
	}
}

func TestGenerateInferPathsRuns(t *testing.T) {
	g, err := synthetic.Generate(synthetic.WithSeed(1), synthetic.WithTierSizes(3, 10, 30))
	require.NoError(t, err)

	origin := g.ASNs()[0]
	announce := asgraph.AnycastFromSet(g, []asgraph.ASN{origin})
	require.NoError(t, g.InferPaths(announce))
}
