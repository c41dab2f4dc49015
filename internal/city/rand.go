package city

// Rand is a tiny deterministic RNG (xorshift64*). Every building gets
// its own instance seeded from its lattice seed, so generation order
// never influences the output and cells can be built in parallel.
type Rand struct {
	s uint64
}

func NewRand(seed uint64) *Rand {
	if seed == 0 {
		seed = 1
	}
	return &Rand{s: seed}
}

func (r *Rand) NextU64() uint64 {
	x := r.s
	x ^= x >> 12
	x ^= x << 25
	x ^= x >> 27
	r.s = x
	return x * 2685821657736338717
}

func (r *Rand) Float64() float64 {
	return float64(r.NextU64()>>11) * (1.0 / (1 << 53))
}

func (r *Rand) RangeF(min, max float64) float64 {
	if max <= min {
		return min
	}
	return min + (max-min)*r.Float64()
}

// rangeF32 samples a float32 range through the float64 stream so the
// draw sequence stays identical regardless of the caller's precision.
func (r *Rand) rangeF32(min, max float32) float32 {
	return float32(r.RangeF(float64(min), float64(max)))
}
