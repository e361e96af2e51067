// Read-only facade over per-node inference state: a thin, lock-protected
// getter surface with no algorithmic logic.
package asgraph

import "github.com/bgpconverge/bgpconverge/relationship"

// BestPaths returns a snapshot of the AS-paths currently tied for best at
// asn. The returned slice is a fresh copy safe for the caller to retain
// and mutate; it is empty (not nil) if asn has not learned any path or is
// unknown to the graph.
func (g *Graph) BestPaths(asn ASN) []ASPath {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n, ok := g.nodes[asn]
	if !ok || len(n.bestPaths) == 0 {
		return []ASPath{}
	}
	return clonePaths(n.bestPaths)
}

// PathLen returns the length shared by every path in BestPaths(asn), and
// false if asn's preference is UNKNOWN or asn is not in the graph, since
// the length is undefined in that case.
func (g *Graph) PathLen(asn ASN) (int, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n, ok := g.nodes[asn]
	if !ok || n.pathPref == relationship.UNKNOWN {
		return 0, false
	}
	return n.pathLen, true
}

// PathPref returns asn's current preference class, or UNKNOWN if asn has
// not learned a path or is not in the graph.
func (g *Graph) PathPref(asn ASN) relationship.PathPref {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n, ok := g.nodes[asn]
	if !ok {
		return relationship.UNKNOWN
	}
	return n.pathPref
}

// Inferred reports whether InferPaths has been called (successfully
// started) on this graph instance.
func (g *Graph) Inferred() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.announce != nil
}
