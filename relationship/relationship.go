// Package relationship defines the two small enumerations at the base of
// the AS-path inference engine: the commercial peering Relationship
// labeling a directed edge, and the PathPref it induces at the importer.
//
// Both types are deliberately tiny and dependency-free: everything that
// needs a graph to answer (e.g. "what preference does this edge give the
// importer") lives in package asgraph, which imports this package, never
// the other way around.
package relationship

import "fmt"

// Relationship labels a directed peering edge u->v from u's point of view.
//
//	C2P: u is a customer of v (v is u's provider).
//	P2P: u and v are settlement-free peers.
//	P2C: u is a provider of v (v is u's customer).
//
// Relationship is ordered C2P < P2P < P2C only incidentally; callers
// should compare preferences via PathPref, not Relationship, for
// anything meaningful.
type Relationship int8

const (
	// C2P: the edge's source is a customer of its destination.
	C2P Relationship = iota
	// P2P: settlement-free peering.
	P2P
	// P2C: the edge's source is a provider of its destination.
	P2C
)

// String renders the three-letter label used throughout logs and tests.
func (r Relationship) String() string {
	switch r {
	case C2P:
		return "C2P"
	case P2P:
		return "P2P"
	case P2C:
		return "P2C"
	default:
		return fmt.Sprintf("Relationship(%d)", int8(r))
	}
}

// Reverse returns the relationship seen from the other endpoint. It is
// total and involutive: Reverse(Reverse(r)) == r for every valid r.
func (r Relationship) Reverse() Relationship {
	switch r {
	case C2P:
		return P2C
	case P2C:
		return C2P
	default: // P2P
		return P2P
	}
}

// Valid reports whether r is one of the three defined relationships.
func (r Relationship) Valid() bool {
	return r == C2P || r == P2P || r == P2C
}

// PathPref is the total order of route preference an AS assigns to a
// learned path, determined solely by the relationship of the edge it was
// learned over. Larger values are strictly preferred.
type PathPref int8

const (
	// UNKNOWN marks an AS that has not yet learned any path.
	UNKNOWN PathPref = iota
	// PROVIDER: the path was learned from a provider.
	PROVIDER
	// PEER: the path was learned from a settlement-free peer.
	PEER
	// CUSTOMER: the path was learned from a customer.
	CUSTOMER
)

// String renders the preference name.
func (p PathPref) String() string {
	switch p {
	case UNKNOWN:
		return "UNKNOWN"
	case PROVIDER:
		return "PROVIDER"
	case PEER:
		return "PEER"
	case CUSTOMER:
		return "CUSTOMER"
	default:
		return fmt.Sprintf("PathPref(%d)", int8(p))
	}
}

// FromRelationship maps the relationship of an edge, as seen from the
// importer's side, to the preference a route learned over that edge
// receives. The edge relationship is importer->exporter (i.e. how the
// importer sees the exporter): P2C means the exporter is importer's
// customer (CUSTOMER route); P2P means a peer (PEER route); C2P means the
// exporter is importer's provider (PROVIDER route).
func FromRelationship(importerToExporter Relationship) PathPref {
	switch importerToExporter {
	case P2C:
		return CUSTOMER
	case P2P:
		return PEER
	case C2P:
		return PROVIDER
	default:
		return UNKNOWN
	}
}
