package city

import "github.com/go-gl/mathgl/mgl64"

// Seed maps a lattice coordinate to the deterministic 64-bit seed of the
// building generated there. The coordinate is offset, projected onto the
// hard seed vector, scaled by 1000 and truncated toward zero. Equal
// inputs always yield the bit-identical output; that is the only thing
// that makes revisiting a coordinate reproduce the same building.
func (p *Params) Seed(lateral, worldDepth int) int64 {
	v := mgl64.Vec2{
		float64(lateral) + seedOffsetLateral,
		float64(worldDepth) + seedOffsetDepth,
	}
	return int64(v.Dot(mgl64.Vec2{p.HardSeed[0], p.HardSeed[1]}) * 1000)
}
