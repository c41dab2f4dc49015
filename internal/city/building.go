package city

import "github.com/go-gl/mathgl/mgl32"

// Tier is one box-shaped building segment: an open shell (front, left,
// right, roof; no back or floor) plus the window quads on its three
// walls. Both meshes exist together or not at all.
type Tier struct {
	Shell   *Mesh
	Windows *Mesh
}

// Cell is one building slot of the working window. Top is nil for
// simple buildings; when present it is a complete second tier stacked
// on the roof. The cell also tracks the GPU handles of its uploaded
// meshes so retirement can release them exactly once.
type Cell struct {
	Shell   *Mesh
	Windows *Mesh
	Top     *Tier

	handles  []Handle
	released bool
}

// IsComplex reports whether the building carries a stacked second tier.
func (c *Cell) IsComplex() bool { return c.Top != nil }

// Meshes returns the cell's meshes in draw order.
func (c *Cell) Meshes() []*Mesh {
	if c.Top == nil {
		return []*Mesh{c.Shell, c.Windows}
	}
	return []*Mesh{c.Shell, c.Windows, c.Top.Shell, c.Top.Windows}
}

// Handles returns the GPU handles of the cell's meshes in draw order.
// Empty until the cell has been attached to a grid.
func (c *Cell) Handles() []Handle { return c.handles }

// release frees the cell's GPU resources. Safe to call more than once;
// only the first call reaches the backend.
func (c *Cell) release(b Backend) {
	if c == nil || c.released {
		return
	}
	for _, h := range c.handles {
		b.Release(h)
	}
	c.handles = nil
	c.released = true
}

// Generator synthesizes complete buildings from lattice seeds.
type Generator struct {
	p Params
}

func NewGenerator(p Params) *Generator {
	return &Generator{p: p}
}

// Generate builds the full render geometry of one building from a
// single seed. The seed feeds a private random stream, so calls are
// independent and reproducible regardless of order: the same seed
// always yields byte-identical buffers. Generation is all-or-nothing;
// a returned cell is always complete.
func (g *Generator) Generate(seed int64) *Cell {
	rng := NewRand(uint64(seed))

	w := rng.rangeF32(g.p.WidthMin, g.p.WidthMax)
	h := rng.rangeF32(g.p.HeightMin, g.p.HeightMax)

	base := mgl32.Vec3{}
	cell := &Cell{
		Shell:   g.shell(base, w, h),
		Windows: g.tierWindows(base, w, h, rng),
	}

	// Half the buildings get a narrower tier stacked on the roof,
	// inset so it never overhangs the base.
	if rng.Float64() > 0.5 {
		step := g.p.WindowStep()
		tw := rng.rangeF32(step, w)
		if tw+g.p.TierWidthNudge < w {
			tw += g.p.TierWidthNudge
		}
		th := rng.rangeF32(g.p.TierHeightMin, g.p.TierHeightMax)
		fudge := rng.rangeF32(0, (w-tw)/2)

		top := mgl32.Vec3{fudge, h, -fudge}
		cell.Top = &Tier{
			Shell:   g.shell(top, tw, th),
			Windows: g.tierWindows(top, tw, th, rng),
		}
	}

	return cell
}

// shell builds the open box of one tier: front, left and right walls
// plus the roof, in a uniform base color with one axis-aligned normal
// per face.
func (g *Generator) shell(base mgl32.Vec3, w, h float32) *Mesh {
	bc := [3]float32{g.p.BaseColor, g.p.BaseColor, g.p.BaseColor}
	at := func(x, y, z float32) mgl32.Vec3 {
		return base.Add(mgl32.Vec3{x, y, z})
	}

	m := &Mesh{
		Positions: make([]float32, 0, 16*3),
		Colors:    make([]float32, 0, 16*3),
		Normals:   make([]float32, 0, 16*3),
		Indices:   make([]uint32, 0, 24),
	}
	// front
	m.appendQuad(at(0, 0, 0), at(w, 0, 0), at(0, h, 0), at(w, h, 0), bc, mgl32.Vec3{0, 0, 1})
	// left
	m.appendQuad(at(0, 0, 0), at(0, 0, -w), at(0, h, 0), at(0, h, -w), bc, mgl32.Vec3{-1, 0, 0})
	// right
	m.appendQuad(at(w, 0, 0), at(w, 0, -w), at(w, h, 0), at(w, h, -w), bc, mgl32.Vec3{1, 0, 0})
	// roof
	m.appendQuad(at(0, h, 0), at(w, h, 0), at(0, h, -w), at(w, h, -w), bc, mgl32.Vec3{0, 1, 0})
	return m
}

// tierWindows builds the window mesh for one tier by running the face
// generator over its three windowed walls in a fixed order.
func (g *Generator) tierWindows(base mgl32.Vec3, w, h float32, rng *Rand) *Mesh {
	m := &Mesh{}
	for _, f := range windowedWalls(base, w) {
		g.faceWindows(m, f.origin, f.right, f.up, f.normal, w, h, rng)
	}
	return m
}
