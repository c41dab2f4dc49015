package game

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Ericgi231/MTU-Graphics-OpenGL-InfiniCity/internal/city"
)

// Scene placement. The grid is centered on the travel axis and the
// ground plane slides with the materialized boundary.
const (
	CenterOffset  = 4.8
	GroundOffsetX = -5.0
	GroundOffsetZ = -9.8
)

// glOffset converts a byte offset to unsafe.Pointer for OpenGL VBO offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

// glMesh is one uploaded mesh: a VAO with an interleaved VBO and an
// index buffer. Zero value means an empty mesh with nothing to draw.
type glMesh struct {
	vao, vbo, ebo uint32
	indexCount    int32
}

// Renderer draws the city and implements city.Backend, owning the
// GPU-side lifetime of every mesh the grid materializes.
type Renderer struct {
	cityProg       uint32
	cityUProj      int32
	cityUModelView int32

	groundProg       uint32
	groundUProj      int32
	groundUModelView int32
	groundUTex       int32
	groundTex        uint32

	meshes map[city.Handle]glMesh
	next   city.Handle
}

func NewRenderer() (*Renderer, error) {
	cityProg, err := linkProgram(meshVertSrc, cityFragSrc)
	if err != nil {
		return nil, fmt.Errorf("city program: %w", err)
	}
	groundProg, err := linkProgram(meshVertSrc, groundFragSrc)
	if err != nil {
		gl.DeleteProgram(cityProg)
		return nil, fmt.Errorf("ground program: %w", err)
	}

	r := &Renderer{
		cityProg:   cityProg,
		groundProg: groundProg,
		meshes:     make(map[city.Handle]glMesh),
	}

	gl.UseProgram(cityProg)
	r.cityUProj = gl.GetUniformLocation(cityProg, gl.Str("uProjection\x00"))
	r.cityUModelView = gl.GetUniformLocation(cityProg, gl.Str("uModelView\x00"))

	gl.UseProgram(groundProg)
	r.groundUProj = gl.GetUniformLocation(groundProg, gl.Str("uProjection\x00"))
	r.groundUModelView = gl.GetUniformLocation(groundProg, gl.Str("uModelView\x00"))
	r.groundUTex = gl.GetUniformLocation(groundProg, gl.Str("uTex\x00"))
	gl.Uniform1i(r.groundUTex, 0)

	r.groundTex = newGroundTexture(groundTexSeed)

	gl.UseProgram(0)
	return r, nil
}

// Upload creates GPU buffers for a mesh and returns its handle. Empty
// meshes get a valid handle with no buffers behind it.
func (r *Renderer) Upload(m *city.Mesh) city.Handle {
	r.next++
	h := r.next

	if m.IsEmpty() {
		r.meshes[h] = glMesh{}
		return h
	}

	data := interleave(m)

	var gm glMesh
	gl.GenVertexArrays(1, &gm.vao)
	gl.GenBuffers(1, &gm.vbo)
	gl.GenBuffers(1, &gm.ebo)

	gl.BindVertexArray(gm.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, gm.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)

	stride := int32(vertexFloats * 4)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, glOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, stride, glOffset(3*4))
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(2, 3, gl.FLOAT, false, stride, glOffset(6*4))
	gl.EnableVertexAttribArray(3)
	gl.VertexAttribPointer(3, 2, gl.FLOAT, false, stride, glOffset(9*4))

	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, gm.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(m.Indices)*4, gl.Ptr(m.Indices), gl.STATIC_DRAW)

	gl.BindVertexArray(0)
	gm.indexCount = int32(len(m.Indices))

	r.meshes[h] = gm
	return h
}

// Release frees the GPU buffers behind a handle. Unknown handles are
// ignored, which keeps release idempotent.
func (r *Renderer) Release(h city.Handle) {
	gm, ok := r.meshes[h]
	if !ok {
		return
	}
	delete(r.meshes, h)
	if gm.vao == 0 {
		return
	}
	gl.DeleteBuffers(1, &gm.vbo)
	gl.DeleteBuffers(1, &gm.ebo)
	gl.DeleteVertexArrays(1, &gm.vao)
}

// draw issues one indexed draw for an uploaded mesh.
func (r *Renderer) draw(h city.Handle) {
	gm, ok := r.meshes[h]
	if !ok || gm.indexCount == 0 {
		return
	}
	gl.BindVertexArray(gm.vao)
	gl.DrawElements(gl.TRIANGLES, gm.indexCount, gl.UNSIGNED_INT, glOffset(0))
}

// DrawFrame renders one full pass over the grid: ground first, then
// every cell's meshes in draw order, each translated to its window
// slot offset by the materialized boundary.
func (r *Renderer) DrawFrame(g *city.Grid, cam Camera, fbW, fbH int) {
	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	proj := Projection(fbW, fbH)
	view := cam.View(g.Shift())
	sb := float32(g.ShiftBreak())

	gl.UseProgram(r.groundProg)
	gl.UniformMatrix4fv(r.groundUProj, 1, false, &proj[0])
	mv := view.Mul4(mgl32.Translate3D(GroundOffsetX, 0, GroundOffsetZ+sb))
	gl.UniformMatrix4fv(r.groundUModelView, 1, false, &mv[0])
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, r.groundTex)
	r.draw(g.Ground())

	gl.UseProgram(r.cityProg)
	gl.UniformMatrix4fv(r.cityUProj, 1, false, &proj[0])
	g.ForEach(func(lat, depth int, c *city.Cell) {
		mv := view.Mul4(mgl32.Translate3D(float32(lat)-CenterOffset, 0, float32(-depth)+sb))
		gl.UniformMatrix4fv(r.cityUModelView, 1, false, &mv[0])
		for _, h := range c.Handles() {
			r.draw(h)
		}
	})

	gl.BindVertexArray(0)
	gl.UseProgram(0)
}

func (r *Renderer) Destroy() {
	for h := range r.meshes {
		r.Release(h)
	}
	if r.groundTex != 0 {
		gl.DeleteTextures(1, &r.groundTex)
	}
	for _, id := range []uint32{r.cityProg, r.groundProg} {
		if id != 0 {
			gl.DeleteProgram(id)
		}
	}
}

// vertexFloats is the interleaved vertex layout: position 3, color 3,
// normal 3, texcoord 2.
const vertexFloats = 11

// interleave packs a mesh's attribute buffers into the renderer's
// vertex layout. Meshes without texture coordinates get zeros.
func interleave(m *city.Mesh) []float32 {
	n := m.VertexCount()
	data := make([]float32, 0, n*vertexFloats)
	for i := 0; i < n; i++ {
		data = append(data, m.Positions[i*3], m.Positions[i*3+1], m.Positions[i*3+2])
		data = append(data, m.Colors[i*3], m.Colors[i*3+1], m.Colors[i*3+2])
		data = append(data, m.Normals[i*3], m.Normals[i*3+1], m.Normals[i*3+2])
		if m.TexCoords != nil {
			data = append(data, m.TexCoords[i*2], m.TexCoords[i*2+1])
		} else {
			data = append(data, 0, 0)
		}
	}
	return data
}
