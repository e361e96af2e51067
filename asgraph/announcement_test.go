package asgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bgpconverge/bgpconverge/asgraph"
)

func TestAnycastFromSet(t *testing.T) {
	g := newImplicitWithdrawalGraph()

	testSets := [][]asgraph.ASN{
		{1, 10},
		{2, 3},
		{7, 6, 2},
		{1, 2, 7, 9, 8},
	}

	for _, sources := range testSets {
		announce := asgraph.AnycastFromSet(g, sources)

		gotSources := make([]asgraph.ASN, 0, len(announce.SourceToNeighborToPath))
		for src := range announce.SourceToNeighborToPath {
			gotSources = append(gotSources, src)
		}
		assert.ElementsMatch(t, sources, gotSources)

		for _, src := range sources {
			n2p := announce.SourceToNeighborToPath[src]
			expectedNeighbors := g.NeighborASNs(src)

			gotNeighbors := make([]asgraph.ASN, 0, len(n2p))
			for nbr, p := range n2p {
				gotNeighbors = append(gotNeighbors, nbr)
				assert.Equal(t, asgraph.ASPath{}, p)
			}
			assert.ElementsMatch(t, expectedNeighbors, gotNeighbors)
		}
	}
}
