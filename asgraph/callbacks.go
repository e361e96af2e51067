// Inference instrumentation hooks: a fixed set of named callback slots
// registered post-construction via SetCallback, rather than functional
// options supplied at construction time, since a Graph's topology and its
// instrumentation are typically wired up at different points in a
// caller's setup.
package asgraph

import "github.com/bgpconverge/bgpconverge/relationship"

// Callback identifies one of the instrumentation points InferPaths invokes
// as it runs. At most one function may be registered per Callback; a later
// SetCallback call replaces an earlier one.
type Callback int

const (
	// StartRelationshipPhase fires when InferPaths begins processing a new
	// preference phase (CUSTOMER, then PEER, then PROVIDER). Handler
	// signature: func(pref relationship.PathPref).
	StartRelationshipPhase Callback = iota

	// NeighborAnnounce fires once per (origin, neighbor) pair as the
	// initial seed announcements for the current phase are made. Handler
	// signature: func(origin, neighbor ASN, pref relationship.PathPref, path ASPath).
	NeighborAnnounce

	// VisitEdge fires for every work-queue edge the engine dequeues and
	// processes, before the importer's state is updated. Handler
	// signature: func(exporter, importer ASN, pref relationship.PathPref).
	VisitEdge
)

// SetCallback registers fn to run at the hook point when. Passing a nil fn
// removes any previously registered handler for when.
func (g *Graph) SetCallback(when Callback, fn interface{}) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if fn == nil {
		delete(g.callbacks, when)
		return
	}
	g.callbacks[when] = fn
}

func (g *Graph) fireStartRelationshipPhase(pref relationship.PathPref) {
	fn, ok := g.callbacks[StartRelationshipPhase]
	if !ok {
		return
	}
	if h, ok := fn.(func(relationship.PathPref)); ok {
		h(pref)
	}
}

func (g *Graph) fireNeighborAnnounce(origin, neighbor ASN, pref relationship.PathPref, path ASPath) {
	fn, ok := g.callbacks[NeighborAnnounce]
	if !ok {
		return
	}
	if h, ok := fn.(func(ASN, ASN, relationship.PathPref, ASPath)); ok {
		h(origin, neighbor, pref, path)
	}
}

func (g *Graph) fireVisitEdge(exporter, importer ASN, pref relationship.PathPref) {
	fn, ok := g.callbacks[VisitEdge]
	if !ok {
		return
	}
	if h, ok := fn.(func(ASN, ASN, relationship.PathPref)); ok {
		h(exporter, importer, pref)
	}
}
