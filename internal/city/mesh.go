package city

import "github.com/go-gl/mathgl/mgl32"

// Mesh is a triangle mesh suitable for rendering. All attribute arrays
// are flat and run in lockstep: Positions, Colors and Normals hold 3
// floats per vertex, TexCoords (nil when unused) holds 2. Indices holds
// 3 uint32s per triangle. A Mesh is immutable once its cell is built and
// is owned by exactly one Cell, or by the Grid for shared geometry.
type Mesh struct {
	Positions []float32
	Colors    []float32
	Normals   []float32
	TexCoords []float32
	Indices   []uint32
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Positions) / 3
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// IsEmpty returns true if the mesh has no geometry. Empty meshes are
// valid; a face too small for any window produces one.
func (m *Mesh) IsEmpty() bool {
	return len(m.Positions) == 0
}

// appendVertex adds one vertex with a flat color and normal.
func (m *Mesh) appendVertex(pos mgl32.Vec3, color [3]float32, normal mgl32.Vec3) {
	m.Positions = append(m.Positions, pos.X(), pos.Y(), pos.Z())
	m.Colors = append(m.Colors, color[0], color[1], color[2])
	m.Normals = append(m.Normals, normal.X(), normal.Y(), normal.Z())
}

// appendQuad adds four vertices (bottom-left, bottom-right, top-left,
// top-right) and the two triangles covering them.
func (m *Mesh) appendQuad(bl, br, tl, tr mgl32.Vec3, color [3]float32, normal mgl32.Vec3) {
	base := uint32(m.VertexCount())
	m.appendVertex(bl, color, normal)
	m.appendVertex(br, color, normal)
	m.appendVertex(tl, color, normal)
	m.appendVertex(tr, color, normal)
	m.Indices = append(m.Indices,
		base+0, base+1, base+2,
		base+1, base+2, base+3,
	)
}

// GroundMesh builds the shared ground plane under the working window:
// a GridSize x GridSize quad in the XZ plane with texture coordinates
// tiling once per lattice unit.
func GroundMesh() *Mesh {
	s := float32(GridSize)
	m := &Mesh{
		Positions: []float32{
			0, 0, 0,
			s, 0, 0,
			s, 0, s,
			0, 0, s,
		},
		Colors: []float32{
			1, 1, 1,
			1, 1, 1,
			1, 1, 1,
			1, 1, 1,
		},
		Normals: []float32{
			0, 1, 0,
			0, 1, 0,
			0, 1, 0,
			0, 1, 0,
		},
		TexCoords: []float32{
			0, 0,
			s, 0,
			s, s,
			0, s,
		},
		Indices: []uint32{
			0, 1, 2,
			0, 2, 3,
		},
	}
	return m
}
