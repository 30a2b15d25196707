// Package render owns the GL side of the engine: the window's GL context,
// the three cell-plane textures plus the font atlas, the compositing shader
// and the single full-screen draw that turns cells into pixels.
//
// Every method except Planes and SizeInChars issues GL calls and must run on
// the main thread.
package render

import (
	_ "embed"
	"log/slog"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
)

var (
	//go:embed shader/cell.vert
	cellVertexShaderSource string

	//go:embed shader/cell.frag
	cellFragmentShaderSource string
)

// Atlas is a decoded font atlas ready for upload: a 16x16 grid of glyph
// cells, one 32-bit texel per pixel.
type Atlas struct {
	Pixels []uint32
	CellW  int
	CellH  int
}

// State owns all GPU resources for one window: the compositing program, the
// quad, the three live cell-plane textures and the font texture. The plane
// CPU buffers are exposed through Planes and re-uploaded in full by Upload.
type State struct {
	window *glfw.Window
	log    *slog.Logger

	program        uint32
	vao, vbo       uint32
	surfaceSizeLoc int32
	cellScaleLoc   int32

	fore *planeTexture
	back *planeTexture
	text *planeTexture
	font *planeTexture

	cellW, cellH   int
	scaleX, scaleY int
	grid           gridSize
	pixelW, pixelH int

	clearColour mgl32.Vec4
}

// quad is a full-viewport triangle strip.
var quad = []float32{
	-1, -1,
	1, -1,
	-1, 1,
	1, 1,
}

// NewState initializes GL for the window's context and builds every GPU
// resource the compositor needs. scaleX and scaleY give the integer factor
// each cell is magnified by on screen. The font atlas is uploaded once here
// and never again. Must be called from the main thread with the window's
// context current.
func NewState(window *glfw.Window, atlas Atlas, scaleX, scaleY int, log *slog.Logger) (*State, error) {
	if scaleX < 1 {
		scaleX = 1
	}
	if scaleY < 1 {
		scaleY = 1
	}
	if err := gl.Init(); err != nil {
		return nil, errors.Wrap(err, "render: no usable OpenGL device")
	}
	log.Info("OpenGL initialized", "version", gl.GoStr(gl.GetString(gl.VERSION)))

	program, err := newProgram(cellVertexShaderSource, cellFragmentShaderSource)
	if err != nil {
		return nil, errors.Wrap(err, "render: building compositing program")
	}

	pixelW, pixelH := window.GetFramebufferSize()
	grid := gridSizeFor(pixelW, pixelH, atlas.CellW, atlas.CellH, scaleX, scaleY)

	s := &State{
		window:      window,
		log:         log,
		program:     program,
		cellW:       atlas.CellW,
		cellH:       atlas.CellH,
		scaleX:      scaleX,
		scaleY:      scaleY,
		grid:        grid,
		pixelW:      pixelW,
		pixelH:      pixelH,
		clearColour: mgl32.Vec4{0.1, 0.2, 0.3, 1.0},
	}

	s.fore = newPlaneTexture(grid.w, grid.h)
	s.back = newPlaneTexture(grid.w, grid.h)
	s.text = newPlaneTexture(grid.w, grid.h)

	s.font = newPlaneTexture(16*atlas.CellW, 16*atlas.CellH)
	copy(s.font.pixels, atlas.Pixels)
	s.font.upload()

	gl.GenVertexArrays(1, &s.vao)
	gl.BindVertexArray(s.vao)
	gl.GenBuffers(1, &s.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, s.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(quad)*4, gl.Ptr(quad), gl.STATIC_DRAW)

	position := uint32(gl.GetAttribLocation(s.program, gl.Str("position\x00")))
	gl.EnableVertexAttribArray(position)
	gl.VertexAttribPointer(position, 2, gl.FLOAT, false, 2*4, nil)
	gl.BindVertexArray(0)

	gl.UseProgram(s.program)
	gl.Uniform1i(gl.GetUniformLocation(s.program, gl.Str("foreTexture\x00")), 0)
	gl.Uniform1i(gl.GetUniformLocation(s.program, gl.Str("backTexture\x00")), 1)
	gl.Uniform1i(gl.GetUniformLocation(s.program, gl.Str("textTexture\x00")), 2)
	gl.Uniform1i(gl.GetUniformLocation(s.program, gl.Str("fontTexture\x00")), 3)
	gl.Uniform2i(
		gl.GetUniformLocation(s.program, gl.Str("fontCellSize\x00")),
		int32(atlas.CellW), int32(atlas.CellH),
	)
	s.surfaceSizeLoc = gl.GetUniformLocation(s.program, gl.Str("surfaceSize\x00"))
	gl.Uniform2i(s.surfaceSizeLoc, int32(pixelW), int32(pixelH))
	s.cellScaleLoc = gl.GetUniformLocation(s.program, gl.Str("cellScale\x00"))
	gl.Uniform2i(s.cellScaleLoc, int32(scaleX), int32(scaleY))
	gl.UseProgram(0)

	gl.Viewport(0, 0, int32(pixelW), int32(pixelH))

	log.Info("render state ready",
		"pixels_w", pixelW, "pixels_h", pixelH,
		"cells_w", grid.w, "cells_h", grid.h,
		"scale_x", scaleX, "scale_y", scaleY)
	return s, nil
}

// SizeInChars returns the current screen size in cells.
func (s *State) SizeInChars() (int, int) {
	return s.grid.w, s.grid.h
}

// Planes returns the live CPU cell planes in foreground, background, glyph
// order. The slices are replaced when a resize changes the grid size.
func (s *State) Planes() (fore, back, text []uint32) {
	return s.fore.pixels, s.back.pixels, s.text.pixels
}

// Upload pushes all three cell planes to their textures in full. The font
// texture is never re-uploaded.
func (s *State) Upload() {
	s.fore.upload()
	s.back.upload()
	s.text.upload()
}

// Render clears the surface and issues the one compositing draw, then
// presents. It returns ErrSurfaceLost when the context lost its surface
// (recoverable: Resize and retry next frame), ErrOutOfMemory on GPU memory
// exhaustion (fatal), or a generic error for anything else (log and skip the
// frame).
func (s *State) Render() error {
	gl.ClearColor(s.clearColour.X(), s.clearColour.Y(), s.clearColour.Z(), s.clearColour.W())
	gl.Clear(gl.COLOR_BUFFER_BIT)

	gl.UseProgram(s.program)
	s.fore.bind(0)
	s.back.bind(1)
	s.text.bind(2)
	s.font.bind(3)
	gl.BindVertexArray(s.vao)
	gl.DrawArrays(gl.TRIANGLE_STRIP, 0, 4)
	gl.BindVertexArray(0)
	gl.UseProgram(0)

	s.window.SwapBuffers()

	switch code := gl.GetError(); code {
	case gl.NO_ERROR:
		return nil
	case gl.OUT_OF_MEMORY:
		return ErrOutOfMemory
	case glContextLost:
		return ErrSurfaceLost
	default:
		return errors.Errorf("render: GL error 0x%04x", code)
	}
}

// Resize reconfigures the surface for a new pixel size and cell scale and,
// only when the size in cells actually changed, recreates the plane textures
// and their CPU buffers. Contents do not survive a rebuild. A zero or
// negative dimension is ignored; a scale below one is clamped to one.
func (s *State) Resize(pixelW, pixelH, scaleX, scaleY int) {
	if pixelW <= 0 || pixelH <= 0 {
		return
	}
	if scaleX < 1 {
		scaleX = 1
	}
	if scaleY < 1 {
		scaleY = 1
	}
	s.pixelW = pixelW
	s.pixelH = pixelH
	s.scaleX = scaleX
	s.scaleY = scaleY
	gl.Viewport(0, 0, int32(pixelW), int32(pixelH))
	gl.UseProgram(s.program)
	gl.Uniform2i(s.surfaceSizeLoc, int32(pixelW), int32(pixelH))
	gl.Uniform2i(s.cellScaleLoc, int32(scaleX), int32(scaleY))
	gl.UseProgram(0)

	next := gridSizeFor(pixelW, pixelH, s.cellW, s.cellH, scaleX, scaleY)
	if planeTransition(s.grid, next) == keepPlanes {
		return
	}

	s.log.Debug("rebuilding cell planes",
		"old_w", s.grid.w, "old_h", s.grid.h, "new_w", next.w, "new_h", next.h)
	s.grid = next
	s.fore = newPlaneTexture(next.w, next.h)
	s.back = newPlaneTexture(next.w, next.h)
	s.text = newPlaneTexture(next.w, next.h)
}
