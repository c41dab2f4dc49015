package city

import "fmt"

// GridSize is the side length of the working window: the grid keeps
// GridSize x GridSize buildings materialized around the viewer.
const GridSize = 10

// Lattice-to-seed projection offsets. Together with Params.HardSeed they
// make every lattice coordinate map to a distinct, stable seed.
const (
	seedOffsetLateral = 0.525
	seedOffsetDepth   = 0.164
)

// Params holds every tunable of the building generator. Values are read
// once at startup and never change afterwards; the same Params with the
// same seed always produces the same geometry.
type Params struct {
	// HardSeed is projected against lattice coordinates to derive
	// per-building seeds.
	HardSeed [2]float64

	// Window quad layout on building faces.
	WindowSize float32 // side length of one window quad
	WindowPad  float32 // gap left of / below each window
	WindowLift float32 // offset off the wall along the face normal

	// Colors.
	BaseColor float32    // uniform grey level of the shell
	LitColor  [3]float32 // color of a lit window; unlit windows are black

	// Base tier sampling ranges.
	WidthMin, WidthMax   float32
	HeightMin, HeightMax float32

	// Second-tier sampling. Tier width is drawn from
	// [WindowStep, baseWidth] and nudged up by TierWidthNudge when the
	// nudged width still fits under the base width.
	TierWidthNudge               float32
	TierHeightMin, TierHeightMax float32
}

// DefaultParams returns the stock generation parameters.
func DefaultParams() Params {
	return Params{
		HardSeed:       [2]float64{69.83, 11.17},
		WindowSize:     0.13,
		WindowPad:      0.02,
		WindowLift:     0.001,
		BaseColor:      0.6,
		LitColor:       [3]float32{0.5, 0.5, 0},
		WidthMin:       0.4,
		WidthMax:       0.8,
		HeightMin:      0.8,
		HeightMax:      2.2,
		TierWidthNudge: 0.15,
		TierHeightMin:  0.5,
		TierHeightMax:  1.5,
	}
}

// WindowStep is the lattice pitch of the window tiling.
func (p *Params) WindowStep() float32 { return p.WindowSize + p.WindowPad }

// Validate rejects parameter sets that would produce degenerate or
// unbounded geometry.
func (p *Params) Validate() error {
	if p.HardSeed[0] == 0 && p.HardSeed[1] == 0 {
		return fmt.Errorf("hard seed vector must be non-zero")
	}
	if p.WindowSize <= 0 || p.WindowPad < 0 {
		return fmt.Errorf("window size %v / padding %v out of range", p.WindowSize, p.WindowPad)
	}
	if p.WidthMin <= 0 || p.WidthMax < p.WidthMin {
		return fmt.Errorf("width range [%v, %v] invalid", p.WidthMin, p.WidthMax)
	}
	if p.HeightMin <= 0 || p.HeightMax < p.HeightMin {
		return fmt.Errorf("height range [%v, %v] invalid", p.HeightMin, p.HeightMax)
	}
	if p.TierHeightMin <= 0 || p.TierHeightMax < p.TierHeightMin {
		return fmt.Errorf("tier height range [%v, %v] invalid", p.TierHeightMin, p.TierHeightMax)
	}
	if p.WindowStep() > p.WidthMin {
		return fmt.Errorf("window step %v exceeds minimum width %v", p.WindowStep(), p.WidthMin)
	}
	return nil
}
