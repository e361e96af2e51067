package asgraph

import (
	"errors"
	"fmt"
)

// Sentinel errors for Graph mutation and lifecycle, checked with
// errors.Is and wrapped with %w for context.
var (
	// ErrSelfPeering is returned by AddPeering when u == v.
	ErrSelfPeering = errors.New("asgraph: an AS cannot peer with itself")

	// ErrConflictingPeering is returned by AddPeering when the edge already
	// exists with a different relationship.
	ErrConflictingPeering = errors.New("asgraph: conflicting relationship for existing peering")

	// ErrInvalidRelationship is returned when a relationship lookup finds a
	// missing or corrupt edge label. This indicates a programming error:
	// AddPeering's reciprocal-edge guarantee should make this unreachable.
	ErrInvalidRelationship = errors.New("asgraph: invalid or missing relationship")

	// ErrAlreadyInferred is returned by InferPaths or Clone when inference
	// has already been started on this graph instance.
	ErrAlreadyInferred = errors.New("asgraph: InferPaths already called on this graph")

	// ErrUnknownASN is returned by SetImportFilter for an ASN absent from
	// the graph.
	ErrUnknownASN = errors.New("asgraph: AS not present in graph")
)

// AnnouncementReason classifies why an Announcement failed validation.
type AnnouncementReason int

const (
	// UnknownOrigin: an announcing AS is not in the graph.
	UnknownOrigin AnnouncementReason = iota
	// UnknownNeighbor: an advertised neighbor is not a graph neighbor of its origin.
	UnknownNeighbor
	// SelfPoison: an origin advertised a path containing the immediate neighbor.
	SelfPoison
)

func (r AnnouncementReason) String() string {
	switch r {
	case UnknownOrigin:
		return "UnknownOrigin"
	case UnknownNeighbor:
		return "UnknownNeighbor"
	case SelfPoison:
		return "SelfPoison"
	default:
		return fmt.Sprintf("AnnouncementReason(%d)", int(r))
	}
}

// InvalidAnnouncementError reports why CheckAnnouncement rejected an
// Announcement, with enough context (origin/neighbor) to act on it.
type InvalidAnnouncementError struct {
	Reason   AnnouncementReason
	Origin   ASN
	Neighbor ASN
}

func (e *InvalidAnnouncementError) Error() string {
	switch e.Reason {
	case UnknownOrigin:
		return fmt.Sprintf("asgraph: origin AS%d not in graph", e.Origin)
	case UnknownNeighbor:
		return fmt.Sprintf("asgraph: AS%d-AS%d is not a peering in the graph", e.Origin, e.Neighbor)
	case SelfPoison:
		return fmt.Sprintf("asgraph: origin AS%d poisoned immediate neighbor AS%d in its own announcement", e.Origin, e.Neighbor)
	default:
		return fmt.Sprintf("asgraph: invalid announcement (%s): AS%d/AS%d", e.Reason, e.Origin, e.Neighbor)
	}
}

// Is allows errors.Is(err, asgraph.ErrInvalidAnnouncement) to match any
// reason, while callers who need the reason still use errors.As.
func (e *InvalidAnnouncementError) Is(target error) bool {
	return target == ErrInvalidAnnouncement
}

// ErrInvalidAnnouncement is the family sentinel for InvalidAnnouncementError.
var ErrInvalidAnnouncement = errors.New("asgraph: invalid announcement")
