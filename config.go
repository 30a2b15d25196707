package mage

// MinGridCells is the smallest grid the resizable window modes allow, in
// cells per axis.
const MinGridCells = 20

// Config describes the window and font to run an App with. The zero value
// gives a default title, an 800x600 pixel-sized window and the built-in
// font.
type Config struct {
	// Title is the window title. Empty selects a default.
	Title string

	// Window selects the sizing mode. Nil selects FixedPixels{800, 600}.
	Window WindowSize

	// Font is the atlas to render with. Nil selects the built-in font.
	Font *FontData
}

const defaultTitle = "Mage Game"

func (c Config) title() string {
	if c.Title == "" {
		return defaultTitle
	}
	return c.Title
}

func (c Config) windowSize() WindowSize {
	if c.Window == nil {
		return FixedPixels{Width: 800, Height: 600}
	}
	return c.Window
}

func (c Config) font() (*FontData, error) {
	if c.Font == nil {
		return DefaultFont(), nil
	}
	return c.Font, nil
}

// WindowSize is the window sizing mode. Exactly one of the three
// implementations applies; each resolves into a single uniform size policy
// against the font's cell size.
type WindowSize interface {
	resolve(cellW, cellH int) sizePolicy
}

// FixedPixels asks for a window close to the given pixel size, aligned down
// to whole cells. The user may resize the window, changing the grid size;
// resizes snap to cell boundaries.
type FixedPixels struct {
	Width, Height int
}

// FixedGrid asks for a window of exactly the given grid size in cells. The
// user may resize the window, but resizing only rescales in whole-window
// steps: the grid dimensions never change.
type FixedGrid struct {
	Columns, Rows int
}

// ScaledGrid asks for a non-resizable window of the given grid size with
// every cell scaled up by a whole factor.
type ScaledGrid struct {
	Columns, Rows int
	Scale         int
}

// sizePolicy is the uniform result of resolving a WindowSize: the initial
// pixel size, the integer cell scale, the pixel granularity resizes snap to
// (zero meaning the window is not resizable) and the minimum pixel size.
// rescaleOnly marks the mode whose grid shape is fixed: resizes change the
// cell scale instead of the cell count.
type sizePolicy struct {
	pixelW, pixelH int
	scale          int
	snapW, snapH   int
	minW, minH     int
	rescaleOnly    bool
}

func (fp FixedPixels) resolve(cellW, cellH int) sizePolicy {
	minW := MinGridCells * cellW
	minH := MinGridCells * cellH
	w := max(minW, fp.Width) / cellW * cellW
	h := max(minH, fp.Height) / cellH * cellH
	return sizePolicy{
		pixelW: w, pixelH: h,
		scale: 1,
		snapW: cellW, snapH: cellH,
		minW: minW, minH: minH,
	}
}

func (fg FixedGrid) resolve(cellW, cellH int) sizePolicy {
	w := fg.Columns * cellW
	h := fg.Rows * cellH
	return sizePolicy{
		pixelW: w, pixelH: h,
		scale: 1,
		snapW: w, snapH: h,
		minW: w, minH: h,
		rescaleOnly: true,
	}
}

func (sg ScaledGrid) resolve(cellW, cellH int) sizePolicy {
	scale := sg.Scale
	if scale < 1 {
		scale = 1
	}
	w := sg.Columns * cellW * scale
	h := sg.Rows * cellH * scale
	return sizePolicy{
		pixelW: w, pixelH: h,
		scale: scale,
		snapW: 0, snapH: 0,
		minW: w, minH: h,
	}
}

// resizable reports whether the policy permits host resizing at all.
func (p sizePolicy) resizable() bool {
	return p.snapW > 0 && p.snapH > 0
}

// snap aligns a proposed pixel size down to the snap granularity, flooring
// at the minimum size. The boolean reports whether the proposal already
// matched: when false, the caller must re-request the returned size from the
// host instead of accepting the proposal.
func (p sizePolicy) snap(w, h int) (int, int, bool) {
	sw := max(p.minW, w/p.snapW*p.snapW)
	sh := max(p.minH, h/p.snapH*p.snapH)
	return sw, sh, sw == w && sh == h
}

// scaleFor returns the per-axis cell scale to render an accepted pixel size
// with. Rescale-only windows derive it from how many whole-window steps the
// size spans, keeping the cell count constant; the other modes keep their
// resolved scale.
func (p sizePolicy) scaleFor(w, h int) (int, int) {
	if p.rescaleOnly {
		return max(w/p.snapW, 1), max(h/p.snapH, 1)
	}
	return p.scale, p.scale
}

// screenFromPixels converts a framebuffer pixel size into the window's
// screen-coordinate space. GLFW sizes windows in screen coordinates, which
// differ from pixels on scaled displays; the current window/framebuffer
// ratio gives the conversion.
func screenFromPixels(pixelW, pixelH, winW, winH, fbW, fbH int) (int, int) {
	if fbW <= 0 || fbH <= 0 || (fbW == winW && fbH == winH) {
		return pixelW, pixelH
	}
	return pixelW * winW / fbW, pixelH * winH / fbH
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
