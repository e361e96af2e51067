package synthetic

import "math/rand"

// Option customizes a Generate call by mutating a config instance before
// topology construction begins.
type Option func(*config)

// WithTierSizes sets the number of tier-1, regional transit, and stub ASes
// to generate.
func WithTierSizes(tier1, regional, stub int) Option {
	return func(c *config) {
		c.tier1Count = tier1
		c.regionalCount = regional
		c.stubCount = stub
	}
}

// WithSeed creates a new *rand.Rand with the given seed, for reproducible
// topologies across runs.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand supplies an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("synthetic: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithRegionalAttachment sets the inclusive range of tier-1 ASes each
// regional AS attaches to as a customer.
func WithRegionalAttachment(min, max int) Option {
	return func(c *config) {
		c.regionalAttachMin = min
		c.regionalAttachMax = max
	}
}

// WithStubAttachment sets the inclusive range of regional ASes each stub
// AS attaches to as a customer.
func WithStubAttachment(min, max int) Option {
	return func(c *config) {
		c.stubAttachMin = min
		c.stubAttachMax = max
	}
}

// WithRegionalPeerProbability sets the independent probability that any
// given pair of regional ASes forms a P2P peering, in addition to their
// provider attachments.
func WithRegionalPeerProbability(p float64) Option {
	return func(c *config) {
		c.regionalPeerProb = p
	}
}
