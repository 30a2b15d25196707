// Package mage is a character-grid rendering engine. It presents a grid of
// cells, each with an ink colour, a paper colour and a glyph index, and
// composites the grid onto a GPU window through a fixed-size font atlas.
// Applications implement App and hand the engine to Run.
package mage

import (
	"time"

	"github.com/faiface/mainthread"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/pkg/errors"

	"github.com/baad-c0de/mage-core/render"
)

// Run opens a window per config and drives app's Tick/Present loop until the
// app quits, the window is closed or escape is pressed. It must be called
// from the program's main function; it owns the main thread until it
// returns.
func Run(app App, config Config) error {
	var err error
	mainthread.Run(func() {
		err = runLoop(app, config)
	})
	return err
}

// engine holds the loop state shared with the window callbacks. Callbacks
// fire during PollEvents on the main thread, so access is strictly
// sequenced.
type engine struct {
	window *glfw.Window
	state  *render.State
	policy sizePolicy
	shift  ShiftState

	quit        bool
	firstResize bool

	fullscreen           bool
	windowedX, windowedY int
	windowedW, windowedH int
}

func runLoop(app App, config Config) error {
	font, err := config.font()
	if err != nil {
		return err
	}

	policy := config.windowSize().resolve(font.CharWidth, font.CharHeight)
	scaleX, scaleY := policy.scaleFor(policy.pixelW, policy.pixelH)
	logger().Info("window size negotiated",
		"pixels_w", policy.pixelW, "pixels_h", policy.pixelH,
		"cells_w", policy.pixelW/(font.CharWidth*scaleX),
		"cells_h", policy.pixelH/(font.CharHeight*scaleY),
		"scale", policy.scale)

	e := &engine{policy: policy, firstResize: true}

	mainthread.Call(func() {
		err = e.setup(config, font)
	})
	if err != nil {
		return err
	}
	defer mainthread.Call(glfw.Terminate)

	last := time.Now()
	for !e.quit {
		var shouldClose bool
		mainthread.Call(func() {
			glfw.PollEvents()
			shouldClose = e.window.ShouldClose()
		})
		if shouldClose || e.quit {
			break
		}

		now := time.Now()
		dt := now.Sub(last)
		last = now

		cellsW, cellsH := e.state.SizeInChars()
		if app.Tick(TickInput{DT: dt, Width: cellsW, Height: cellsH, Shift: e.shift}) == Quit {
			break
		}

		fore, back, text := e.state.Planes()
		changed := app.Present(PresentInput{
			Width:  cellsW,
			Height: cellsH,
			Fore:   fore,
			Back:   back,
			Text:   text,
		})
		if changed != Changed {
			continue
		}

		var renderErr error
		mainthread.Call(func() {
			e.state.Upload()
			renderErr = e.state.Render()
		})
		switch {
		case renderErr == nil:
		case errors.Is(renderErr, render.ErrSurfaceLost):
			logger().Warn("surface lost, reconfiguring")
			mainthread.Call(func() {
				w, h := e.window.GetFramebufferSize()
				e.applyPixelSize(w, h)
			})
		case errors.Is(renderErr, render.ErrOutOfMemory):
			return renderErr
		default:
			logger().Warn("frame skipped", "error", renderErr)
		}
	}
	return nil
}

// setup creates the window and render state. Main thread only.
func (e *engine) setup(config Config, font *FontData) error {
	if err := glfw.Init(); err != nil {
		return errors.Wrap(err, "mage: initializing GLFW")
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	if e.policy.resizable() {
		glfw.WindowHint(glfw.Resizable, glfw.True)
	} else {
		glfw.WindowHint(glfw.Resizable, glfw.False)
	}

	window, err := glfw.CreateWindow(e.policy.pixelW, e.policy.pixelH, config.title(), nil, nil)
	if err != nil {
		glfw.Terminate()
		return errors.Wrap(err, "mage: creating window")
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1)

	// CreateWindow sizes in screen coordinates; on scaled displays the
	// framebuffer comes out larger than the negotiated pixel size.
	// Re-request so the framebuffer lands on it, and convert the size
	// limits into the same coordinate space.
	winW, winH := window.GetSize()
	fbW, fbH := window.GetFramebufferSize()
	if fbW != e.policy.pixelW || fbH != e.policy.pixelH {
		sw, sh := screenFromPixels(e.policy.pixelW, e.policy.pixelH, winW, winH, fbW, fbH)
		logger().Debug("correcting window size for content scale",
			"screen_w", sw, "screen_h", sh, "pixels_w", e.policy.pixelW, "pixels_h", e.policy.pixelH)
		window.SetSize(sw, sh)
	}
	if e.policy.resizable() {
		minW, minH := screenFromPixels(e.policy.minW, e.policy.minH, winW, winH, fbW, fbH)
		window.SetSizeLimits(minW, minH, glfw.DontCare, glfw.DontCare)
	}

	scaleX, scaleY := e.policy.scaleFor(e.policy.pixelW, e.policy.pixelH)
	state, err := render.NewState(window, render.Atlas{
		Pixels: font.Data,
		CellW:  font.CharWidth,
		CellH:  font.CharHeight,
	}, scaleX, scaleY, logger())
	if err != nil {
		window.Destroy()
		glfw.Terminate()
		return err
	}

	e.window = window
	e.state = state
	window.SetKeyCallback(e.onKey)
	window.SetFramebufferSizeCallback(e.onFramebufferSize)
	window.SetContentScaleCallback(e.onContentScale)
	return nil
}

func (e *engine) onKey(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, mods glfw.ModifierKey) {
	e.shift.Update(mods)
	if action != glfw.Press {
		return
	}
	switch key {
	case glfw.KeyEscape:
		e.quit = true
	case glfw.KeyEnter:
		if e.shift.AltOnly() {
			e.toggleFullscreen()
		}
	}
}

// onFramebufferSize applies the resize-snapping policy. The very first event
// is the synthetic one hosts emit at creation and is dropped. A proposal
// that is off the snap granularity is answered by re-requesting the snapped
// size from the host rather than accepted, so the grid always covers whole
// cells.
func (e *engine) onFramebufferSize(_ *glfw.Window, width, height int) {
	if e.firstResize {
		e.firstResize = false
		logger().Debug("ignoring synthetic resize", "w", width, "h", height)
		return
	}
	if !e.policy.resizable() {
		return
	}
	if e.fullscreen {
		// Monitor size is whatever it is; take it as-is.
		e.applyPixelSize(width, height)
		return
	}
	snapW, snapH, ok := e.policy.snap(width, height)
	if !ok {
		logger().Debug("snapping resize", "proposed_w", width, "proposed_h", height,
			"snapped_w", snapW, "snapped_h", snapH)
		winW, winH := e.window.GetSize()
		sw, sh := screenFromPixels(snapW, snapH, winW, winH, width, height)
		e.window.SetSize(sw, sh)
		return
	}
	logger().Debug("resized", "w", width, "h", height)
	e.applyPixelSize(width, height)
}

func (e *engine) onContentScale(_ *glfw.Window, _, _ float32) {
	w, h := e.window.GetFramebufferSize()
	logger().Debug("content scale changed", "w", w, "h", h)
	e.applyPixelSize(w, h)
}

// applyPixelSize reconfigures the render state for an accepted framebuffer
// size, rederiving the cell scale from the sizing policy. Main thread only.
func (e *engine) applyPixelSize(w, h int) {
	scaleX, scaleY := e.policy.scaleFor(w, h)
	e.state.Resize(w, h, scaleX, scaleY)
}

func (e *engine) toggleFullscreen() {
	if e.fullscreen {
		e.fullscreen = false
		e.window.SetMonitor(nil, e.windowedX, e.windowedY, e.windowedW, e.windowedH, 0)
		return
	}
	monitor := glfw.GetPrimaryMonitor()
	if monitor == nil {
		return
	}
	mode := monitor.GetVideoMode()
	e.windowedX, e.windowedY = e.window.GetPos()
	e.windowedW, e.windowedH = e.window.GetSize()
	e.fullscreen = true
	e.window.SetMonitor(monitor, 0, 0, mode.Width, mode.Height, mode.RefreshRate)
}
