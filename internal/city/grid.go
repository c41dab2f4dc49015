package city

import (
	"math"
	"sync"
)

// Handle identifies one uploaded mesh on the render backend.
type Handle uint32

// Backend owns GPU-side mesh resources. The grid calls Upload once per
// mesh when a cell (or the ground plane) is materialized and Release
// exactly once when it retires; both are invoked on the grid's caller
// thread, never from generation workers.
type Backend interface {
	Upload(m *Mesh) Handle
	Release(h Handle)
}

// Grid is the working window: a fixed GridSize x GridSize matrix of
// generated buildings, indexed by (lateral, window-depth), anchored to
// the infinite lattice by the viewer's accumulated travel. As the
// viewer crosses lattice boundaries the grid retires one edge row,
// relocates the rest, and synthesizes a replacement row at the opposite
// edge; revisiting a world depth regenerates the exact same row because
// every building is a pure function of its lattice seed.
//
// The grid is single-writer by phase: mutate only through Update, read
// during the render pass.
type Grid struct {
	gen     *Generator
	backend Backend

	cells [GridSize][GridSize]*Cell // [lateral][window depth]

	ground  *Mesh
	groundH Handle

	shift      float64 // accumulated viewer travel
	shiftBreak int     // last lattice boundary materialized
}

// NewGrid populates the full working window for world depths 0..9 and
// uploads it through the backend. Building generation fans out one
// goroutine per lateral column; columns never share a cell, so this is
// race-free.
func NewGrid(p Params, b Backend) *Grid {
	g := &Grid{
		gen:     NewGenerator(p),
		backend: b,
		ground:  GroundMesh(),
	}

	var wg sync.WaitGroup
	for lat := 0; lat < GridSize; lat++ {
		wg.Add(1)
		go func(lat int) {
			defer wg.Done()
			for depth := 0; depth < GridSize; depth++ {
				g.cells[lat][depth] = g.gen.Generate(g.gen.p.Seed(lat, depth))
			}
		}(lat)
	}
	wg.Wait()

	g.groundH = b.Upload(g.ground)
	for lat := 0; lat < GridSize; lat++ {
		for depth := 0; depth < GridSize; depth++ {
			g.attach(g.cells[lat][depth])
		}
	}
	return g
}

// attach uploads a cell's meshes and records the handles in draw order.
func (g *Grid) attach(c *Cell) {
	meshes := c.Meshes()
	c.handles = make([]Handle, len(meshes))
	for i, m := range meshes {
		c.handles[i] = g.backend.Upload(m)
	}
}

// Update accumulates viewer travel and recycles one row per lattice
// boundary crossed. Sub-integer deltas coalesce into a single event at
// the crossing; a delta spanning several boundaries fires one event per
// boundary, in order. Returns the number of rows recycled.
func (g *Grid) Update(delta float64) int {
	g.shift += delta
	events := 0
	for {
		boundary := int(math.Floor(g.shift))
		switch {
		case boundary < g.shiftBreak:
			// Viewer moved one row deeper: retire window depth 0,
			// expose a new far row at depth 9.
			g.shiftBreak--
			g.recycleRow(0, GridSize-1-g.shiftBreak)
		case boundary > g.shiftBreak:
			// Viewer moved one row back: retire window depth 9,
			// expose a new row at depth 0.
			g.shiftBreak++
			g.recycleRow(GridSize-1, -g.shiftBreak)
		default:
			return events
		}
		events++
	}
}

// recycleRow retires the row at window-depth index out, relocates every
// other row one step toward it, and synthesizes the row at the opposite
// edge for the given world depth. Retired resources are released before
// their slots are overwritten.
func (g *Grid) recycleRow(out, worldDepth int) {
	for lat := 0; lat < GridSize; lat++ {
		g.cells[lat][out].release(g.backend)
	}

	in := GridSize - 1 - out
	if out == 0 {
		for lat := 0; lat < GridSize; lat++ {
			for depth := 0; depth < GridSize-1; depth++ {
				g.cells[lat][depth] = g.cells[lat][depth+1]
			}
		}
	} else {
		for lat := 0; lat < GridSize; lat++ {
			for depth := GridSize - 1; depth > 0; depth-- {
				g.cells[lat][depth] = g.cells[lat][depth-1]
			}
		}
	}

	row := g.generateRow(worldDepth)
	for lat := 0; lat < GridSize; lat++ {
		g.attach(row[lat])
		g.cells[lat][in] = row[lat]
	}
}

// generateRow synthesizes the buildings of one world-depth row, one
// goroutine per lateral index. Upload happens on the caller's thread
// afterwards.
func (g *Grid) generateRow(worldDepth int) [GridSize]*Cell {
	var row [GridSize]*Cell
	var wg sync.WaitGroup
	for lat := 0; lat < GridSize; lat++ {
		wg.Add(1)
		go func(lat int) {
			defer wg.Done()
			row[lat] = g.gen.Generate(g.gen.p.Seed(lat, worldDepth))
		}(lat)
	}
	wg.Wait()
	return row
}

// ForEach yields every cell with its lateral and window-depth index.
func (g *Grid) ForEach(fn func(lat, depth int, c *Cell)) {
	for lat := 0; lat < GridSize; lat++ {
		for depth := 0; depth < GridSize; depth++ {
			fn(lat, depth, g.cells[lat][depth])
		}
	}
}

// Cell returns the building at the given window coordinate.
func (g *Grid) Cell(lat, depth int) *Cell { return g.cells[lat][depth] }

// Shift returns the viewer's accumulated travel.
func (g *Grid) Shift() float64 { return g.shift }

// ShiftBreak returns the materialized lattice boundary; the renderer
// offsets every cell transform by it.
func (g *Grid) ShiftBreak() int { return g.shiftBreak }

// Ground returns the handle of the shared ground-plane mesh.
func (g *Grid) Ground() Handle { return g.groundH }

// Destroy releases every GPU resource the grid owns.
func (g *Grid) Destroy() {
	for lat := 0; lat < GridSize; lat++ {
		for depth := 0; depth < GridSize; depth++ {
			g.cells[lat][depth].release(g.backend)
		}
	}
	if g.ground != nil {
		g.backend.Release(g.groundH)
		g.ground = nil
	}
}
