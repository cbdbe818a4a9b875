// Package viewer implements the render loop of the orientation cube.
package viewer

import (
	"fmt"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/opennx/nxview/internal/config"
	"github.com/opennx/nxview/internal/engine/input"
	"github.com/opennx/nxview/internal/engine/renderer"
	"github.com/opennx/nxview/internal/engine/window"
	"github.com/opennx/nxview/internal/logger"
	"github.com/opennx/nxview/internal/orientation"
)

// Viewer owns the window, the renderer and the per-frame loop. The
// orientation state is shared with the OSC listener: the listener
// writes snapshots, the viewer reads one per frame.
type Viewer struct {
	width   int
	height  int
	running bool

	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	state    *orientation.State
}

// New creates the window and GL resources. Must run on the main
// thread; the window package locks it.
func New(cfg *config.Config, state *orientation.State) (*Viewer, error) {
	v := &Viewer{
		width:  cfg.Window.Width,
		height: cfg.Window.Height,
		state:  state,
	}

	var err error
	v.window, err = window.New(window.Config{
		Title:  cfg.Window.Title,
		Width:  cfg.Window.Width,
		Height: cfg.Window.Height,
		VSync:  cfg.Window.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Renderer needs the GL context the window just created
	v.renderer, err = renderer.New(renderer.Config{
		Width:  cfg.Window.Width,
		Height: cfg.Window.Height,
	})
	if err != nil {
		v.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	v.input = input.New()

	return v, nil
}

// Run drives the frame loop until quit. Redraw cadence follows the
// display (vsync); there is no separate frame limiter.
func (v *Viewer) Run() error {
	v.running = true

	frameCount := 0
	fpsTimer := time.Now()

	logger.Info("starting render loop")

	for v.running {
		if v.input.Update() {
			v.running = false
			break
		}
		if v.input.IsKeyPressed(sdl.SCANCODE_ESCAPE) {
			v.running = false
			break
		}

		// One state read per frame: a complete snapshot of the latest
		// /quat message.
		raw := v.state.Get()
		model := ModelMatrix(v.width, v.height, raw)

		v.renderer.Begin()
		v.renderer.DrawCube(model)
		v.renderer.End()

		v.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			logger.Debug("frame stats",
				zap.Int("fps", frameCount),
				zap.Float32("w", raw.W),
				zap.Float32("x", raw.X),
				zap.Float32("y", raw.Y),
				zap.Float32("z", raw.Z),
			)
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

// Close cleans up viewer resources.
func (v *Viewer) Close() {
	logger.Info("closing viewer")

	if v.renderer != nil {
		v.renderer.Close()
	}
	if v.window != nil {
		v.window.Close()
	}
}
