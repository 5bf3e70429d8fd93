package signal

import "math"

// LCG constants for the seeded uniform generator. The recurrence is
// seed = (seed*9301 + 49297) mod 233280, normalized to [0,1).
const (
	lcgMultiplier = 9301
	lcgIncrement  = 49297
	lcgModulus    = 233280
)

// noiseSource is a seeded pseudo-random stream. Identical seeds produce
// identical streams, which keeps jitter edits reproducible.
type noiseSource struct {
	seed int64
}

// newNoiseSource creates a noise source, folding the seed into the LCG's
// modulus range so negative seeds behave.
func newNoiseSource(seed int64) *noiseSource {
	seed %= lcgModulus
	if seed < 0 {
		seed += lcgModulus
	}
	return &noiseSource{seed: seed}
}

// uniform returns the next draw in [0,1).
func (n *noiseSource) uniform() float64 {
	n.seed = (n.seed*lcgMultiplier + lcgIncrement) % lcgModulus
	return float64(n.seed) / lcgModulus
}

// gaussian returns an approximately standard-normal draw via the
// Box-Muller transform. Zero uniforms are redrawn to keep the logarithm
// finite.
func (n *noiseSource) gaussian() float64 {
	u1 := n.uniform()
	for u1 == 0 {
		u1 = n.uniform()
	}
	u2 := n.uniform()
	for u2 == 0 {
		u2 = n.uniform()
	}
	return math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)
}
