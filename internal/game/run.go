package game

import (
	"fmt"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/Ericgi231/MTU-Graphics-OpenGL-InfiniCity/internal/city"
)

// Run opens a window and drives the simulation: one travel update per
// frame, fully applied before the render pass reads the grid.
func Run(s Settings) error {
	runtime.LockOSThread()

	if err := s.Validate(); err != nil {
		return err
	}
	params := s.CityParams()
	if err := params.Validate(); err != nil {
		return fmt.Errorf("generation params: %w", err)
	}

	window, err := initWindow(s)
	if err != nil {
		return err
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	gl.Enable(gl.DEPTH_TEST)
	gl.ClearColor(0.2, 0.2, 0.2, 0)

	rend, err := NewRenderer()
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer rend.Destroy()

	grid := city.NewGrid(params, rend)
	defer grid.Destroy()

	cam := Camera{
		Height: s.Camera.Height,
		Dist:   s.Camera.Dist,
		Angle:  s.Camera.Angle,
		Slide:  s.Camera.Slide,
	}
	input := NewInput()

	fmt.Println("Move with 'space' and 'b'.")

	last := glfw.GetTime()
	for !window.ShouldClose() {
		now := glfw.GetTime()
		dt := now - last
		last = now
		if dt > 0.1 {
			dt = 0.1
		}

		glfw.PollEvents()
		if window.GetKey(glfw.KeyEscape) == glfw.Press {
			window.SetShouldClose(true)
			continue
		}

		fbW, fbH := window.GetFramebufferSize()
		if fbW <= 0 || fbH <= 0 {
			continue
		}

		input.DebugCamera(window, &cam)
		grid.Update(TravelDelta(window, s.TravelSpeed, dt))

		rend.DrawFrame(grid, cam, fbW, fbH)
		window.SwapBuffers()
	}
	return nil
}
