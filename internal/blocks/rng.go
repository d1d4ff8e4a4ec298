package blocks

// Rand is a deterministic pseudo-random stream derived from a 32-bit seed.
// The same seed with the same call sequence always reproduces the same
// stream, which makes generation attempts replayable from their seed alone.
type Rand struct {
	state uint32
}

func NewRand(seed uint32) *Rand {
	return &Rand{state: seed}
}

// Uint32 advances the stream by one mixing step.
func (r *Rand) Uint32() uint32 {
	r.state += 0x6d2b79f5
	z := r.state
	z = (z ^ (z >> 15)) * (z | 1)
	z ^= z + (z^(z>>7))*(z|61)
	return z ^ (z >> 14)
}

// Float64 returns the next value in [0, 1).
func (r *Rand) Float64() float64 {
	return float64(r.Uint32()) / (1 << 32)
}

// IntN returns a value in [0, n). Panics if n <= 0.
func (r *Rand) IntN(n int) int {
	if n <= 0 {
		panic(AssertionError{"IntN called with non-positive n"})
	}
	return int(r.Float64() * float64(n))
}

func (r *Rand) Shuffle(n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		j := r.IntN(i + 1)
		swap(i, j)
	}
}

// Chance reports true with probability p.
func (r *Rand) Chance(p float64) bool {
	return r.Float64() < p
}
