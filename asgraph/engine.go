// The path-inference engine.
//
// The algorithm is a modified breadth-first search that processes peering
// edges in strictly decreasing order of preference (CUSTOMER, then PEER,
// then PROVIDER) and, within a preference, in strictly increasing order of
// path length. Two monotonicity properties make this sufficient to compute
// every path tied for best without ever installing then withdrawing a
// worse one: an AS that has learned a path with preference X never
// accepts a worse preference, and valley-free routing means a route
// exportable further can only get longer, never shorter, as it
// propagates.
package asgraph

import "github.com/bgpconverge/bgpconverge/relationship"

// Debug enables invariant assertions (checkWorkLocked, preference
// monotonicity) that are too expensive to run unconditionally on large
// topologies. Tests should set this to true.
var Debug = false

// InferPaths computes every AS-path tied for best toward announce's
// sources, for every AS in the graph. It may be called at most once per
// Graph; call Clone first to run additional inferences.
func (g *Graph) InferPaths(announce *Announcement) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.announce != nil {
		return ErrAlreadyInferred
	}
	if err := g.checkAnnouncement(announce); err != nil {
		return err
	}
	g.announce = announce
	g.inferred = true

	for _, pref := range []relationship.PathPref{relationship.CUSTOMER, relationship.PEER, relationship.PROVIDER} {
		g.fireStartRelationshipPhase(pref)
		g.makeAnnouncementsLocked(pref)

		for {
			edge, ok := g.workQueue.get(pref)
			if !ok {
				break
			}
			g.fireVisitEdge(edge.exporter, edge.importer, pref)

			if announce.isOrigin(edge.importer) {
				continue
			}
			if Debug {
				actual, err := g.prefAtImporterLocked(edge.exporter, edge.importer)
				if err != nil || actual != pref {
					panic("asgraph: invariant violated, dequeued edge does not match phase preference")
				}
			}
			if g.updatePathsLocked(edge.exporter, edge.importer, nil) {
				g.addWorkLocked(edge.importer)
			}
		}
	}

	return nil
}

// makeAnnouncementsLocked seeds every neighbor of an origin with the
// shortest announced path(s) at the given preference. Paths are installed
// shortest-first within a neighbor because updatePathsLocked forbids a
// path from getting shorter once set.
func (g *Graph) makeAnnouncementsLocked(pref relationship.PathPref) {
	type lenSrcs struct {
		length int
		srcs   []ASN
	}
	nei2len2srcs := make(map[ASN]map[int][]ASN)

	for src, nei2path := range g.announce.SourceToNeighborToPath {
		for nei, path := range nei2path {
			p, err := g.prefAtImporterLocked(src, nei)
			if err != nil || p != pref {
				continue
			}
			g.fireNeighborAnnounce(src, nei, pref, path)

			if nei2len2srcs[nei] == nil {
				nei2len2srcs[nei] = make(map[int][]ASN)
			}
			nei2len2srcs[nei][len(path)] = append(nei2len2srcs[nei][len(path)], src)
		}
	}

	for nei, len2srcs := range nei2len2srcs {
		minLen := -1
		for l := range len2srcs {
			if minLen == -1 || l < minLen {
				minLen = l
			}
		}
		for _, src := range len2srcs[minLen] {
			announcePath := g.announce.SourceToNeighborToPath[src][nei]
			if g.updatePathsLocked(src, nei, &announcePath) {
				g.addWorkLocked(nei)
			}
		}
	}
}

// updatePathsLocked installs or merges the paths importer would learn from
// exporter. It returns true if importer has just learned its first path at
// any preference, meaning the caller must enqueue importer's downstream
// work; it returns false otherwise, including when importer merged
// additional paths tied for best at its existing preference and length.
//
// When announcePath is non-nil, it overrides exporter's own best paths
// (used for per-neighbor announcement content instead of plain
// propagation); otherwise every one of exporter's best paths not already
// containing importer is offered.
func (g *Graph) updatePathsLocked(exporter, importer ASN, announcePath *ASPath) bool {
	node := g.nodes[importer]

	newPref, err := g.prefAtImporterLocked(exporter, importer)
	if err != nil {
		panic("asgraph: invariant violated, queued edge has no relationship")
	}
	currentPref := node.pathPref

	if Debug && currentPref < newPref && currentPref != relationship.UNKNOWN {
		panic("asgraph: invariant violated, preference regressed")
	}
	if currentPref > newPref {
		return false
	}

	var newPaths []ASPath
	if announcePath != nil {
		newPaths = []ASPath{prepend(exporter, *announcePath)}
	} else {
		exported := g.nodes[exporter].bestPaths
		newPaths = make([]ASPath, 0, len(exported))
		for _, p := range exported {
			if !p.Contains(importer) {
				newPaths = append(newPaths, prepend(exporter, p))
			}
		}
	}

	if node.filter != nil {
		newPaths = node.filter(exporter, newPaths, node.filterData)
	}
	if len(newPaths) == 0 {
		return false
	}

	newPathLen := len(newPaths[0])

	if currentPref == relationship.UNKNOWN {
		node.bestPaths = newPaths
		node.pathLen = newPathLen
		node.pathPref = newPref
		return true
	}

	if Debug && newPathLen < node.pathLen {
		panic("asgraph: invariant violated, path got shorter after first install")
	}

	if newPathLen == node.pathLen {
		node.bestPaths = append(node.bestPaths, newPaths...)
		if Debug {
			g.checkWorkLocked(importer)
		}
	}

	return false
}

func prepend(asn ASN, path ASPath) ASPath {
	out := make(ASPath, 0, len(path)+1)
	out = append(out, asn)
	out = append(out, path...)
	return out
}
