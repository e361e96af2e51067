// The preference-bucketed, depth-bucketed work queue that drives
// InferPaths. The dequeue strategy is pluggable so tests can substitute a
// different pop order and confirm the resulting best-paths sets are
// unaffected by visit order.
package asgraph

import (
	"sort"

	"github.com/bgpconverge/bgpconverge/relationship"
)

// workEdge is a directed edge queued for processing: exporter has a path,
// importer has not yet imported it.
type workEdge struct {
	exporter ASN
	importer ASN
}

// dequeueFunc selects and removes one edge from a non-empty slice,
// returning the chosen edge and the remaining slice. The default strategy
// takes the last element.
type dequeueFunc func(edges []workEdge) (workEdge, []workEdge)

func popLast(edges []workEdge) (workEdge, []workEdge) {
	n := len(edges)
	return edges[n-1], edges[:n-1]
}

type workQueue struct {
	buckets map[relationship.PathPref]map[int][]workEdge
	dequeue dequeueFunc
}

func newWorkQueue() *workQueue {
	return &workQueue{
		buckets: map[relationship.PathPref]map[int][]workEdge{
			relationship.CUSTOMER: make(map[int][]workEdge),
			relationship.PEER:     make(map[int][]workEdge),
			relationship.PROVIDER: make(map[int][]workEdge),
		},
		dequeue: popLast,
	}
}

// get returns the queued edge exporting the shortest paths with pref, and
// false if no edge is queued for that preference.
func (wq *workQueue) get(pref relationship.PathPref) (workEdge, bool) {
	depths := wq.buckets[pref]
	if len(depths) == 0 {
		return workEdge{}, false
	}

	minDepth := -1
	for d := range depths {
		if minDepth == -1 || d < minDepth {
			minDepth = d
		}
	}

	edges := depths[minDepth]
	edge, rest := wq.dequeue(edges)
	if len(rest) == 0 {
		delete(depths, minDepth)
	} else {
		depths[minDepth] = rest
	}

	return edge, true
}

// addWork enqueues exporter's edges to every downstream AS that should
// learn from it next: all downstream ASes if exporter's current preference
// is CUSTOMER (valley-free routing lets customer routes reach everyone),
// otherwise only downstream ASes that see exporter as a provider. Caller
// must hold g.mu for writing.
func (g *Graph) addWorkLocked(exporter ASN) {
	n := g.nodes[exporter]
	pref := n.pathPref
	depth := n.pathLen

	for _, downstream := range g.neighborASNsLocked(exporter) {
		downstreamPref, err := g.prefAtImporterLocked(exporter, downstream)
		if err != nil {
			continue
		}
		if pref == relationship.CUSTOMER || downstreamPref == relationship.PROVIDER {
			buckets := g.workQueue.buckets[downstreamPref]
			buckets[depth] = append(buckets[depth], workEdge{exporter: exporter, importer: downstream})
		}
	}
}

// checkWorkLocked asserts every downstream AS that should import from
// exporter next is already queued. It is a debug-only check invoked from
// updatePathsLocked when Debug is enabled; it never mutates state and
// always returns true, panicking instead on violation.
func (g *Graph) checkWorkLocked(exporter ASN) bool {
	n := g.nodes[exporter]
	pref := n.pathPref
	depth := n.pathLen

	for _, downstream := range g.neighborASNsLocked(exporter) {
		downstreamPref, err := g.prefAtImporterLocked(exporter, downstream)
		if err != nil {
			continue
		}
		if pref != relationship.CUSTOMER && downstreamPref != relationship.PROVIDER {
			continue
		}
		if !containsEdge(g.workQueue.buckets[downstreamPref][depth], exporter, downstream) {
			panic("asgraph: invariant violated, expected edge missing from work queue")
		}
	}
	return true
}

func containsEdge(edges []workEdge, exporter, importer ASN) bool {
	for _, e := range edges {
		if e.exporter == exporter && e.importer == importer {
			return true
		}
	}
	return false
}

// sortedPrefDepths is a small debugging aid used by tests to inspect queue
// contents deterministically; it is not on the hot path.
func (wq *workQueue) sortedPrefDepths(pref relationship.PathPref) []int {
	depths := wq.buckets[pref]
	out := make([]int, 0, len(depths))
	for d := range depths {
		out = append(out, d)
	}
	sort.Ints(out)
	return out
}
