// Package asgraph implements the AS-relationship graph and the
// preference-stratified, length-stratified path-inference engine described
// by the Gao-Rexford commercial routing model.
//
// A Graph is built by repeated calls to AddPeering, then handed to
// InferPaths exactly once together with an Announcement. InferPaths mutates
// the graph's per-AS node state in place and never needs to withdraw a
// path it has already installed, by exploiting two monotonicity properties
// of valley-free routing (see engine.go).
//
// Graph is not safe for concurrent use during inference: InferPaths owns
// the graph exclusively until it returns. Concurrent callers should Clone
// the graph and run independent inferences over the clones (see
// internal/bench for a worker-pool harness that does exactly this).
package asgraph

import "github.com/bgpconverge/bgpconverge/relationship"

// ASN identifies an Autonomous System.
type ASN int64

// ASPath is an ordered sequence of AS numbers from the importer toward the
// origin: the leftmost element is the immediate next-hop, the rightmost is
// the origin (absent prepending/poisoning games).
type ASPath []ASN

// Contains reports whether asn appears anywhere in the path.
func (p ASPath) Contains(asn ASN) bool {
	for _, hop := range p {
		if hop == asn {
			return true
		}
	}
	return false
}

// Clone returns an independent copy of the path.
func (p ASPath) Clone() ASPath {
	out := make(ASPath, len(p))
	copy(out, p)
	return out
}

// Equal reports whether two paths have the same hops in the same order.
func (p ASPath) Equal(o ASPath) bool {
	if len(p) != len(o) {
		return false
	}
	for i := range p {
		if p[i] != o[i] {
			return false
		}
	}
	return true
}

// ImportFilter prunes or reorders the candidate paths an importer would
// otherwise accept from exporter. It must not mutate candidates or consult
// graph state beyond what it is given; userData is owned by the caller and
// passed through unmodified from SetImportFilter.
type ImportFilter func(exporter ASN, candidates []ASPath, userData interface{}) []ASPath

// nodeState is the per-AS inference state.
type nodeState struct {
	bestPaths  []ASPath
	pathLen    int
	pathPref   relationship.PathPref
	filter     ImportFilter
	filterData interface{}
}

func newNodeState() *nodeState {
	return &nodeState{pathPref: relationship.UNKNOWN}
}
