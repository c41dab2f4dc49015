package game

import "github.com/go-gl/glfw/v3.3/glfw"

const camNudge = 0.1

type Input struct {
	prevKeys map[glfw.Key]bool
}

func NewInput() *Input {
	return &Input{prevKeys: make(map[glfw.Key]bool)}
}

func (in *Input) JustPressed(window *glfw.Window, key glfw.Key) bool {
	down := window.GetKey(key) == glfw.Press
	jp := down && !in.prevKeys[key]
	in.prevKeys[key] = down
	return jp
}

// TravelDelta returns this frame's viewer travel along the generation
// axis. Space moves the viewer deeper into the city (negative shift),
// B backs out; everything else about the camera is irrelevant to the
// grid.
func TravelDelta(window *glfw.Window, speed, dt float64) float64 {
	delta := 0.0
	if window.GetKey(glfw.KeySpace) == glfw.Press {
		delta -= speed * dt
	}
	if window.GetKey(glfw.KeyB) == glfw.Press {
		delta += speed * dt
	}
	return delta
}

// DebugCamera applies discrete nudges to the rail camera.
func (in *Input) DebugCamera(window *glfw.Window, cam *Camera) {
	if in.JustPressed(window, glfw.KeyW) {
		cam.Dist += camNudge
	}
	if in.JustPressed(window, glfw.KeyS) {
		cam.Dist -= camNudge
	}
	if in.JustPressed(window, glfw.KeyA) {
		cam.Slide -= camNudge
	}
	if in.JustPressed(window, glfw.KeyD) {
		cam.Slide += camNudge
	}
	if in.JustPressed(window, glfw.KeyQ) {
		cam.Height -= camNudge
	}
	if in.JustPressed(window, glfw.KeyE) {
		cam.Height += camNudge
	}
	if in.JustPressed(window, glfw.KeyR) {
		cam.Angle -= camNudge
	}
	if in.JustPressed(window, glfw.KeyF) {
		cam.Angle += camNudge
	}
}
