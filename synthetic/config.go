package synthetic

import "math/rand"

type config struct {
	tier1Count    int
	regionalCount int
	stubCount     int

	regionalAttachMin int
	regionalAttachMax int
	stubAttachMin     int
	stubAttachMax     int
	regionalPeerProb  float64

	rng *rand.Rand
}

func newConfig() *config {
	return &config{
		tier1Count:        12,
		regionalCount:     200,
		stubCount:         2000,
		regionalAttachMin: 1,
		regionalAttachMax: 3,
		stubAttachMin:     1,
		stubAttachMax:     2,
		regionalPeerProb:  0.02,
		rng:               rand.New(rand.NewSource(1)),
	}
}

func (c *config) validate() error {
	if c.tier1Count < 1 {
		return ErrTooFewASes
	}
	if c.rng == nil {
		return ErrNeedRandSource
	}
	return nil
}
