package synthetic

import (
	"github.com/bgpconverge/bgpconverge/asgraph"
	"github.com/bgpconverge/bgpconverge/relationship"
)

// Generate builds a synthetic, internet-like AS-relationship topology: a
// tier-1 clique (full-mesh P2P among the largest transit providers), a
// regional transit layer whose members are customers of one or more
// tier-1 ASes (and occasionally peer with each other), and a stub layer
// of customer ASes attached to one or more regional ASes. ASNs are
// assigned in tier order starting at 1: tier-1s first, then regionals,
// then stubs.
func Generate(opts ...Option) (*asgraph.Graph, error) {
	cfg := newConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	g := asgraph.NewGraph()

	tier1 := make([]asgraph.ASN, cfg.tier1Count)
	for i := range tier1 {
		tier1[i] = asgraph.ASN(i + 1)
	}
	next := asgraph.ASN(cfg.tier1Count + 1)

	regional := make([]asgraph.ASN, cfg.regionalCount)
	for i := range regional {
		regional[i] = next
		next++
	}

	stub := make([]asgraph.ASN, cfg.stubCount)
	for i := range stub {
		stub[i] = next
		next++
	}

	if err := wireTier1Clique(g, tier1); err != nil {
		return nil, err
	}
	if err := attachCustomers(g, cfg, tier1, regional, cfg.regionalAttachMin, cfg.regionalAttachMax); err != nil {
		return nil, err
	}
	if err := wireRegionalPeering(g, cfg, regional); err != nil {
		return nil, err
	}
	if err := attachCustomers(g, cfg, regional, stub, cfg.stubAttachMin, cfg.stubAttachMax); err != nil {
		return nil, err
	}

	g.PopulateTier1s(tier1)

	return g, nil
}

func wireTier1Clique(g *asgraph.Graph, tier1 []asgraph.ASN) error {
	for i := 0; i < len(tier1); i++ {
		for j := i + 1; j < len(tier1); j++ {
			if err := g.AddPeering(tier1[i], tier1[j], relationship.P2P); err != nil {
				return err
			}
		}
	}
	return nil
}

// attachCustomers gives every AS in customers between min and max distinct
// providers chosen from providers, as a P2C peering (provider's
// perspective: provider is the u side).
func attachCustomers(g *asgraph.Graph, cfg *config, providers, customers []asgraph.ASN, min, max int) error {
	if len(providers) == 0 {
		return nil
	}
	for _, customer := range customers {
		k := min
		if max > min {
			k += cfg.rng.Intn(max - min + 1)
		}
		if k > len(providers) {
			k = len(providers)
		}
		for _, providerIdx := range samplePermutation(cfg.rng, len(providers))[:k] {
			provider := providers[providerIdx]
			if err := g.AddPeering(provider, customer, relationship.P2C); err != nil {
				return err
			}
		}
	}
	return nil
}

func wireRegionalPeering(g *asgraph.Graph, cfg *config, regional []asgraph.ASN) error {
	for i := 0; i < len(regional); i++ {
		for j := i + 1; j < len(regional); j++ {
			if cfg.rng.Float64() >= cfg.regionalPeerProb {
				continue
			}
			if err := g.AddPeering(regional[i], regional[j], relationship.P2P); err != nil {
				return err
			}
		}
	}
	return nil
}
