// Package synthetic generates synthetic AS-relationship topologies for
// benchmarking the inference engine at internet scale: a tier-1 clique,
// a regional transit layer attached to tier-1 as customers, and a stub
// layer attached to regional ASes as customers, with optional regional
// peering.
package synthetic

import "errors"

// ErrTooFewASes indicates a tier size below the minimum the generator can
// wire into a connected topology.
var ErrTooFewASes = errors.New("synthetic: tier size too small")

// ErrNeedRandSource indicates a config with tier sizes requiring random
// attachment was resolved without an RNG.
var ErrNeedRandSource = errors.New("synthetic: rng is required")
