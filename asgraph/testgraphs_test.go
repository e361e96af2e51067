package asgraph_test

import (
	"github.com/bgpconverge/bgpconverge/asgraph"
	"github.com/bgpconverge/bgpconverge/relationship"
)

// Topologies below are named after the convergence property they exercise.

func mustPeer(g *asgraph.Graph, u, v asgraph.ASN, rel relationship.Relationship) {
	if err := g.AddPeering(u, v, rel); err != nil {
		panic(err)
	}
}

// newImplicitWithdrawalGraph requires a BGP implicit withdrawal prior to
// convergence: AS2 peers with AS3 but is not a customer of AS1, so AS8
// first learns a path via AS3-AS1 and later replaces it with a shorter,
// equally-preferred path via AS6-AS4 once AS3 learns the peer route.
//
//	1--------\---\
//	|    2---3   4
//	|    5   |   6
//	|    7   8---/
//	|    9
//	10---/
func newImplicitWithdrawalGraph() *asgraph.Graph {
	g := asgraph.NewGraph()
	mustPeer(g, 1, 3, relationship.P2C)
	mustPeer(g, 1, 4, relationship.P2C)
	mustPeer(g, 1, 10, relationship.P2C)
	mustPeer(g, 2, 3, relationship.P2P)
	mustPeer(g, 2, 5, relationship.P2C)
	mustPeer(g, 3, 8, relationship.P2C)
	mustPeer(g, 4, 6, relationship.P2C)
	mustPeer(g, 5, 7, relationship.P2C)
	mustPeer(g, 6, 8, relationship.P2C)
	mustPeer(g, 7, 9, relationship.P2C)
	mustPeer(g, 9, 10, relationship.P2C)
	return g
}

// newImplicitWithdrawalMultihopGraph exercises implicit withdrawal
// propagating several hops away from where the better path is learned.
//
//	1---11
//	|   | \
//	|   2  3
//	| / |   \
//	10  12   4
func newImplicitWithdrawalMultihopGraph() *asgraph.Graph {
	g := asgraph.NewGraph()
	mustPeer(g, 1, 11, relationship.P2P)
	mustPeer(g, 10, 1, relationship.C2P)
	mustPeer(g, 10, 2, relationship.C2P)
	mustPeer(g, 2, 11, relationship.C2P)
	mustPeer(g, 4, 3, relationship.C2P)
	mustPeer(g, 3, 11, relationship.C2P)
	mustPeer(g, 12, 2, relationship.C2P)
	return g
}

// newPreferredGraph has multiple routes of different preferences reaching
// the same AS, exercising straightforward Gao-Rexford preference ordering.
//
//	2----3-\
//	|    | |
//	\ 1--5 |
//	 -4  | |
//	  6--/-/
func newPreferredGraph() *asgraph.Graph {
	g := asgraph.NewGraph()
	mustPeer(g, 1, 4, relationship.P2C)
	mustPeer(g, 1, 5, relationship.P2P)
	mustPeer(g, 2, 3, relationship.P2P)
	mustPeer(g, 2, 4, relationship.P2C)
	mustPeer(g, 3, 6, relationship.P2C)
	mustPeer(g, 4, 6, relationship.P2C)
	mustPeer(g, 5, 6, relationship.P2C)
	return g
}

// newMultipleChoicesGraph gives several ASes multiple paths tied for best,
// both through providers and through customers.
//
//	1---\---\
//	|   |   |
//	2   3   4===6
//	|   |   |   |
//	5---/---/   7
//	|
//	|---\---\
//	8   9   10===12
//	|   |   |    |
//	11--/---/    13
func newMultipleChoicesGraph() *asgraph.Graph {
	g := asgraph.NewGraph()
	mustPeer(g, 1, 2, relationship.P2C)
	mustPeer(g, 1, 3, relationship.P2C)
	mustPeer(g, 1, 4, relationship.P2C)
	mustPeer(g, 2, 5, relationship.P2C)
	mustPeer(g, 3, 5, relationship.P2C)
	mustPeer(g, 4, 5, relationship.P2C)
	mustPeer(g, 2, 6, relationship.P2P)
	mustPeer(g, 3, 6, relationship.P2P)
	mustPeer(g, 4, 6, relationship.P2P)
	mustPeer(g, 6, 7, relationship.P2C)
	mustPeer(g, 5, 8, relationship.P2C)
	mustPeer(g, 5, 9, relationship.P2C)
	mustPeer(g, 5, 10, relationship.P2C)
	mustPeer(g, 8, 11, relationship.P2C)
	mustPeer(g, 9, 11, relationship.P2C)
	mustPeer(g, 10, 11, relationship.P2C)
	mustPeer(g, 8, 12, relationship.P2P)
	mustPeer(g, 9, 12, relationship.P2P)
	mustPeer(g, 10, 12, relationship.P2P)
	mustPeer(g, 12, 13, relationship.P2C)
	return g
}

// newPeerPeerRelationshipsGraph exercises propagation through a chain of
// P2P links: AS9 provides for AS1 and AS5, AS10 provides for AS3 and AS7.
//
//	9-------\   10
//	|    /--+--/|
//	1---3---5---7
//	2   4   6   8
func newPeerPeerRelationshipsGraph() *asgraph.Graph {
	g := asgraph.NewGraph()
	mustPeer(g, 1, 2, relationship.P2C)
	mustPeer(g, 3, 4, relationship.P2C)
	mustPeer(g, 5, 6, relationship.P2C)
	mustPeer(g, 7, 8, relationship.P2C)
	mustPeer(g, 9, 1, relationship.P2C)
	mustPeer(g, 9, 5, relationship.P2C)
	mustPeer(g, 10, 3, relationship.P2C)
	mustPeer(g, 10, 7, relationship.P2C)
	mustPeer(g, 1, 3, relationship.P2P)
	mustPeer(g, 3, 5, relationship.P2P)
	mustPeer(g, 5, 7, relationship.P2P)
	return g
}

// checkOrigin is an import filter that discards any candidate path not
// terminating at origin, modeling a peer-lock configuration that only
// accepts routes originated by a specific AS.
func checkOrigin(_ asgraph.ASN, candidates []asgraph.ASPath, userData interface{}) []asgraph.ASPath {
	origin := userData.(asgraph.ASN)
	out := make([]asgraph.ASPath, 0, len(candidates))
	for _, p := range candidates {
		if len(p) > 0 && p[len(p)-1] == origin {
			out = append(out, p)
		}
	}
	return out
}

// newPeerLockGraph tests hijacked-route propagation when two ASes (2 and
// 4) have peer lock configured against origin AS1: AS7 hijacks the prefix
// AS1 legitimately originates, and AS2/AS4 must reject AS7's announcement.
//
//	  ----9----
//	 /   / \   \
//	|   4   5   |  --\
//	|  | \ / |  |  --\
//	2--+--1--+--3----8
//	|  |     |  |  --/
//	 \-6     7-/
func newPeerLockGraph() *asgraph.Graph {
	g := asgraph.NewGraph()
	mustPeer(g, 1, 2, relationship.P2P)
	mustPeer(g, 1, 3, relationship.P2P)
	mustPeer(g, 1, 4, relationship.C2P)
	mustPeer(g, 1, 5, relationship.C2P)
	mustPeer(g, 6, 2, relationship.C2P)
	mustPeer(g, 6, 3, relationship.C2P)
	mustPeer(g, 6, 4, relationship.C2P)
	mustPeer(g, 6, 5, relationship.C2P)
	mustPeer(g, 7, 2, relationship.C2P)
	mustPeer(g, 7, 3, relationship.C2P)
	mustPeer(g, 7, 4, relationship.C2P)
	mustPeer(g, 7, 5, relationship.C2P)
	mustPeer(g, 8, 2, relationship.P2P)
	mustPeer(g, 8, 3, relationship.P2P)
	mustPeer(g, 8, 4, relationship.P2P)
	mustPeer(g, 8, 5, relationship.P2P)
	mustPeer(g, 9, 2, relationship.P2C)
	mustPeer(g, 9, 3, relationship.P2C)
	mustPeer(g, 9, 4, relationship.P2C)
	mustPeer(g, 9, 5, relationship.P2C)
	if err := g.SetImportFilter(2, checkOrigin, asgraph.ASN(1)); err != nil {
		panic(err)
	}
	if err := g.SetImportFilter(4, checkOrigin, asgraph.ASN(1)); err != nil {
		panic(err)
	}
	return g
}
