// File: graph.go
// Role: Graph construction and peering mutation (AddPeering,
//       SetImportFilter), the bespoke ASN-indexed adjacency representation, and
//       the relationship/preference lookups the engine depends on.
//
// A general-purpose directed/undirected, weighted/unweighted graph
// library with string-keyed adjacency maps is the wrong fit for this
// engine: every lookup the inference loop performs is keyed by AS number
// and needs exactly two attributes per edge (relationship) and per node
// (nodeState), so Graph here is a purpose-built adjacency representation
// keyed by ASN (int64) rather than string, both simpler and faster than a
// general-purpose representation would be for this workload. Locking
// discipline, deterministic sorted iteration, and sentinel-error style
// follow the rest of the package.
package asgraph

import (
	"sort"
	"sync"

	"github.com/bgpconverge/bgpconverge/relationship"
)

// Graph is the AS-relationship graph: a directed graph whose edges carry a
// Relationship label and whose nodes carry inference state. Graph is safe
// for concurrent AddPeering/SetImportFilter calls during setup, but once
// InferPaths begins it owns the graph exclusively.
type Graph struct {
	mu sync.RWMutex

	// adjacency[u][v] is the relationship of the directed edge u->v, i.e.
	// how u sees v ("v is my customer/peer/provider").
	adjacency map[ASN]map[ASN]relationship.Relationship

	nodes map[ASN]*nodeState

	workQueue *workQueue
	announce  *Announcement
	inferred  bool

	callbacks map[Callback]interface{}

	// Tier1s and IXPs are never populated by AddPeering or ReadASRelGraph.
	// Callers with auxiliary classification data may populate them
	// explicitly via PopulateTier1s/PopulateIXPs.
	Tier1s map[ASN]struct{}
	IXPs   map[ASN]struct{}
}

// NewGraph returns an empty Graph ready for AddPeering calls.
func NewGraph() *Graph {
	return &Graph{
		adjacency: make(map[ASN]map[ASN]relationship.Relationship),
		nodes:     make(map[ASN]*nodeState),
		workQueue: newWorkQueue(),
		callbacks: make(map[Callback]interface{}),
		Tier1s:    make(map[ASN]struct{}),
		IXPs:      make(map[ASN]struct{}),
	}
}

// ensureNode creates asn's state if absent. Must be called under mu.Lock.
func (g *Graph) ensureNode(asn ASN) {
	if _, ok := g.nodes[asn]; !ok {
		g.nodes[asn] = newNodeState()
		g.adjacency[asn] = make(map[ASN]relationship.Relationship)
	}
}

// AddPeering records a commercial relationship between u and v. rel is
// u's relationship to v; the reciprocal edge v->u with rel.Reverse() is
// installed automatically.
//
// Adding the same peering twice with the same relationship is a no-op.
// Adding it with a different relationship returns ErrConflictingPeering.
// u == v returns ErrSelfPeering.
func (g *Graph) AddPeering(u, v ASN, rel relationship.Relationship) error {
	if u == v {
		return ErrSelfPeering
	}
	if !rel.Valid() {
		return ErrInvalidRelationship
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.ensureNode(u)
	g.ensureNode(v)

	if existing, ok := g.adjacency[u][v]; ok {
		if existing != rel {
			return ErrConflictingPeering
		}
		return nil // idempotent
	}

	g.adjacency[u][v] = rel
	g.adjacency[v][u] = rel.Reverse()

	return nil
}

// SetImportFilter attaches fn to asn; fn receives userData on every call.
// Passing a nil fn clears any previously set filter. Returns ErrUnknownASN
// if asn has never been added via AddPeering.
func (g *Graph) SetImportFilter(asn ASN, fn ImportFilter, userData interface{}) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	n, ok := g.nodes[asn]
	if !ok {
		return ErrUnknownASN
	}
	n.filter = fn
	n.filterData = userData

	return nil
}

// HasASN reports whether asn has been added to the graph.
func (g *Graph) HasASN(asn ASN) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.nodes[asn]
	return ok
}

// ASNs returns every AS in the graph, sorted ascending for deterministic
// iteration.
func (g *Graph) ASNs() []ASN {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]ASN, 0, len(g.nodes))
	for asn := range g.nodes {
		out = append(out, asn)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// NeighborASNs returns the out-neighbors of asn (every AS asn has a
// peering with), sorted ascending. Returns nil if asn is unknown.
func (g *Graph) NeighborASNs(asn ASN) []ASN {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.neighborASNsLocked(asn)
}

func (g *Graph) neighborASNsLocked(asn ASN) []ASN {
	adj, ok := g.adjacency[asn]
	if !ok {
		return nil
	}
	out := make([]ASN, 0, len(adj))
	for nbr := range adj {
		out = append(out, nbr)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// HasPeering reports whether u and v have a peering (in either direction;
// peerings are always installed reciprocally).
func (g *Graph) HasPeering(u, v ASN) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adjacency[u][v]
	return ok
}

// relationshipLocked returns the relationship of edge u->v (how u sees v).
// Caller must hold mu (read or write).
func (g *Graph) relationshipLocked(u, v ASN) (relationship.Relationship, bool) {
	rel, ok := g.adjacency[u][v]
	return rel, ok
}

// PrefAtImporter looks up the relationship of the edge importer->exporter
// (how importer sees exporter) and returns the preference a route learned
// from exporter receives at importer. Returns ErrInvalidRelationship if no
// such edge exists or its label is corrupt.
func (g *Graph) PrefAtImporter(exporter, importer ASN) (relationship.PathPref, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.prefAtImporterLocked(exporter, importer)
}

func (g *Graph) prefAtImporterLocked(exporter, importer ASN) (relationship.PathPref, error) {
	rel, ok := g.relationshipLocked(importer, exporter)
	if !ok || !rel.Valid() {
		return relationship.UNKNOWN, ErrInvalidRelationship
	}
	return relationship.FromRelationship(rel), nil
}

// PopulateTier1s replaces the Tier1s set with asns.
func (g *Graph) PopulateTier1s(asns []ASN) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.Tier1s = make(map[ASN]struct{}, len(asns))
	for _, asn := range asns {
		g.Tier1s[asn] = struct{}{}
	}
}

// PopulateIXPs replaces the IXPs set with asns.
func (g *Graph) PopulateIXPs(asns []ASN) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.IXPs = make(map[ASN]struct{}, len(asns))
	for _, asn := range asns {
		g.IXPs[asn] = struct{}{}
	}
}
