package city

import "github.com/go-gl/mathgl/mgl32"

// faceWindows tiles one rectangular wall with window quads and appends
// them to m. origin is the wall's lower-left corner on the shell
// surface, right and up span the face, and normal is the outward
// direction used to lift each quad slightly off the wall so it never
// z-fights the shell. The same routine serves every wall; only the
// frame passed in differs.
//
// Each window draws exactly one value from rng to decide whether it is
// lit, so the number and order of draws is a pure function of the face
// dimensions.
func (g *Generator) faceWindows(m *Mesh, origin, right, up, normal mgl32.Vec3, faceWidth, faceHeight float32, rng *Rand) {
	ws := g.p.WindowSize
	step := g.p.WindowStep()

	cols := int(faceWidth / step)
	rows := int(faceHeight / step)
	if cols <= 0 || rows <= 0 {
		return
	}

	// Center the columns on the face; rows start one pad above the base.
	startX := faceWidth/2 - float32(cols)*step/2 + g.p.WindowPad/2
	base := origin.Add(normal.Mul(g.p.WindowLift))

	unlit := [3]float32{0, 0, 0}
	for c := 0; c < cols; c++ {
		x := startX + float32(c)*step
		for r := 0; r < rows; r++ {
			y := g.p.WindowPad + float32(r)*step

			color := unlit
			if rng.Float64() > 0.5 {
				color = g.p.LitColor
			}

			bl := base.Add(right.Mul(x)).Add(up.Mul(y))
			br := bl.Add(right.Mul(ws))
			tl := bl.Add(up.Mul(ws))
			tr := br.Add(up.Mul(ws))
			m.appendQuad(bl, br, tl, tr, color, normal)
		}
	}
}

// wallFrame describes one windowed wall of a tier in the frame expected
// by faceWindows.
type wallFrame struct {
	origin            mgl32.Vec3
	right, up, normal mgl32.Vec3
}

// windowedWalls returns the three walls that carry windows (front, left,
// right; the roof has none) for a tier of the given footprint anchored
// at base.
func windowedWalls(base mgl32.Vec3, width float32) [3]wallFrame {
	up := mgl32.Vec3{0, 1, 0}
	return [3]wallFrame{
		{ // front: +Z face, spans +X
			origin: base,
			right:  mgl32.Vec3{1, 0, 0},
			up:     up,
			normal: mgl32.Vec3{0, 0, 1},
		},
		{ // left: -X face, spans -Z
			origin: base,
			right:  mgl32.Vec3{0, 0, -1},
			up:     up,
			normal: mgl32.Vec3{-1, 0, 0},
		},
		{ // right: +X face, spans -Z
			origin: base.Add(mgl32.Vec3{width, 0, 0}),
			right:  mgl32.Vec3{0, 0, -1},
			up:     up,
			normal: mgl32.Vec3{1, 0, 0},
		},
	}
}
