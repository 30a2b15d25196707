package render

// gridSize is a screen size in cells.
type gridSize struct {
	w, h int
}

// gridSizeFor maps a pixel size onto whole on-screen cells, discarding the
// remainder. Each on-screen cell covers the font cell size times the
// per-axis scale.
func gridSizeFor(pixelW, pixelH, cellW, cellH, scaleX, scaleY int) gridSize {
	return gridSize{w: pixelW / (cellW * scaleX), h: pixelH / (cellH * scaleY)}
}

// planeAction says what a resize must do to the cell-plane textures.
type planeAction int

const (
	// keepPlanes leaves the textures and their contents untouched.
	keepPlanes planeAction = iota
	// rebuildPlanes recreates the textures at the new grid size, discarding
	// previous contents.
	rebuildPlanes
)

// planeTransition decides whether moving between two grid sizes needs the
// plane textures rebuilt. Pixel-size changes that land on the same cell
// count must not disturb existing plane contents.
func planeTransition(old, next gridSize) planeAction {
	if old == next {
		return keepPlanes
	}
	return rebuildPlanes
}
