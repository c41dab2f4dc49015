package game

import "github.com/go-gl/mathgl/mgl32"

// Camera rides a rail above the travel axis: fixed height, distance and
// look-ahead angle, carried along Z by the viewer's accumulated shift.
// Lateral slide and the other parameters only exist for debugging the
// view; the city itself never depends on them.
type Camera struct {
	Height float64
	Dist   float64
	Angle  float64
	Slide  float64
}

// View returns the view matrix for the given accumulated travel.
func (c Camera) View(shift float64) mgl32.Mat4 {
	eye := mgl32.Vec3{float32(c.Slide), float32(c.Height), float32(shift + c.Dist)}
	at := mgl32.Vec3{0, 0, float32(c.Angle + shift)}
	return mgl32.LookAtV(eye, at, mgl32.Vec3{0, 1, 0})
}

// Projection returns the perspective matrix for the framebuffer size.
func Projection(fbW, fbH int) mgl32.Mat4 {
	aspect := float32(fbW) / float32(fbH)
	return mgl32.Perspective(mgl32.DegToRad(60), aspect, 0.1, 100)
}
