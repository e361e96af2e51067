// Announcement type, construction helpers (anycast), and the validation
// that must hold before InferPaths can run against one.
package asgraph

// Announcement maps each origin AS to the set of neighbors it announces
// the prefix to, and the AS-path it advertises toward each of them. An
// empty ASPath means a plain announcement (no prepending); a non-empty one
// allows AS-path prepending or poisoning.
type Announcement struct {
	SourceToNeighborToPath map[ASN]map[ASN]ASPath
}

// NewAnnouncement wraps an already-built source2neighbor2path mapping.
func NewAnnouncement(m map[ASN]map[ASN]ASPath) *Announcement {
	return &Announcement{SourceToNeighborToPath: m}
}

// AnycastFromSet builds an Announcement where every AS in sources
// announces a plain (unprepended) path to every one of its graph
// neighbors.
func AnycastFromSet(g *Graph, sources []ASN) *Announcement {
	m := make(map[ASN]map[ASN]ASPath, len(sources))
	for _, src := range sources {
		nbrs := g.NeighborASNs(src)
		n2p := make(map[ASN]ASPath, len(nbrs))
		for _, nbr := range nbrs {
			n2p[nbr] = ASPath{}
		}
		m[src] = n2p
	}
	return NewAnnouncement(m)
}

// AnycastFromWeights is the mapping form of anycast: the source set is
// given as a map to integer weights that are accepted but never
// consulted. It otherwise behaves exactly like AnycastFromSet.
func AnycastFromWeights(g *Graph, sources map[ASN]int) *Announcement {
	asns := make([]ASN, 0, len(sources))
	for asn := range sources {
		asns = append(asns, asn)
	}
	return AnycastFromSet(g, asns)
}

// checkAnnouncement validates that every origin is in the graph, every
// advertised neighbor is a graph neighbor of its origin, and no
// advertised path poisons the immediate neighbor. Caller must hold mu
// (read or write).
func (g *Graph) checkAnnouncement(a *Announcement) error {
	for src, n2p := range a.SourceToNeighborToPath {
		if _, ok := g.nodes[src]; !ok {
			return &InvalidAnnouncementError{Reason: UnknownOrigin, Origin: src}
		}
		for nbr, path := range n2p {
			if _, ok := g.relationshipLocked(src, nbr); !ok {
				return &InvalidAnnouncementError{Reason: UnknownNeighbor, Origin: src, Neighbor: nbr}
			}
			if path.Contains(nbr) {
				return &InvalidAnnouncementError{Reason: SelfPoison, Origin: src, Neighbor: nbr}
			}
		}
	}
	return nil
}

// CheckAnnouncement lets callers validate an Announcement before calling
// InferPaths, which also validates internally.
func (g *Graph) CheckAnnouncement(a *Announcement) error {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.checkAnnouncement(a)
}

// isOrigin reports whether asn announces the prefix in a.
func (a *Announcement) isOrigin(asn ASN) bool {
	_, ok := a.SourceToNeighborToPath[asn]
	return ok
}
