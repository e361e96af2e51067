package synthetic

import "math/rand"

// samplePermutation returns a uniformly random permutation of [0, n), used
// to pick the first k entries as a sample of k distinct indices without
// replacement.
func samplePermutation(rng *rand.Rand, n int) []int {
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	rng.Shuffle(n, func(i, j int) {
		perm[i], perm[j] = perm[j], perm[i]
	})
	return perm
}
