// Deep-copy Graph: a full structural copy of every peering and per-node
// inference state, with a fresh, empty work queue on the result.
package asgraph

import "github.com/bgpconverge/bgpconverge/relationship"

// Clone returns a deep copy of g: every peering, every node's best-paths
// set, and the Tier1s/IXPs classification sets. The clone has a fresh,
// empty work queue and no announcement set, so it can be independently
// passed to InferPaths.
//
// Clone fails with ErrAlreadyInferred if inference has already begun on g:
// a graph mid-inference carries work-queue and announcement state that a
// structural copy would not preserve correctly.
func (g *Graph) Clone() (*Graph, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if g.announce != nil {
		return nil, ErrAlreadyInferred
	}

	out := NewGraph()

	for u, nbrs := range g.adjacency {
		cp := make(map[ASN]relationship.Relationship, len(nbrs))
		for v, rel := range nbrs {
			cp[v] = rel
		}
		out.adjacency[u] = cp
	}

	for asn, n := range g.nodes {
		out.nodes[asn] = &nodeState{
			bestPaths:  clonePaths(n.bestPaths),
			pathLen:    n.pathLen,
			pathPref:   n.pathPref,
			filter:     n.filter,
			filterData: n.filterData,
		}
	}

	for asn := range g.Tier1s {
		out.Tier1s[asn] = struct{}{}
	}
	for asn := range g.IXPs {
		out.IXPs[asn] = struct{}{}
	}

	return out, nil
}

func clonePaths(paths []ASPath) []ASPath {
	if paths == nil {
		return nil
	}
	out := make([]ASPath, len(paths))
	for i, p := range paths {
		out[i] = p.Clone()
	}
	return out
}
