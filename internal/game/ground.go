package game

import (
	"github.com/aquilax/go-perlin"
	"github.com/go-gl/gl/v4.1-core/gl"
)

const (
	groundTexSize = 256
	groundTexSeed = 1337
)

// asphaltPixels synthesizes an RGBA asphalt tile: dark grey with two
// octaves of perlin grain so the ground reads as a surface instead of a
// flat fill. One lattice unit of the world maps to one repeat.
func asphaltPixels(seed int64) []uint8 {
	p := perlin.NewPerlin(2, 2, 3, seed)

	px := make([]uint8, groundTexSize*groundTexSize*4)
	for y := 0; y < groundTexSize; y++ {
		for x := 0; x < groundTexSize; x++ {
			fx := float64(x) / groundTexSize
			fy := float64(y) / groundTexSize

			// Two octaves, decorrelated by offsetting the fine one.
			coarse := p.Noise2D(fx*6, fy*6)
			fine := p.Noise2D(fx*48+100, fy*48+100)

			v := 0.24 + 0.05*coarse + 0.035*fine
			if v < 0 {
				v = 0
			}
			g := uint8(v * 255)

			o := (y*groundTexSize + x) * 4
			px[o+0] = g
			px[o+1] = g
			px[o+2] = g
			px[o+3] = 255
		}
	}
	return px
}

// newGroundTexture uploads the asphalt tile with repeat wrapping so it
// tiles across the whole ground plane.
func newGroundTexture(seed int64) uint32 {
	pixels := asphaltPixels(seed)

	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)

	gl.TexImage2D(
		gl.TEXTURE_2D, 0, gl.RGBA8,
		groundTexSize, groundTexSize, 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels),
	)
	gl.GenerateMipmap(gl.TEXTURE_2D)
	return tex
}
