package mage

import (
	"github.com/baad-c0de/mage-core/geom"
)

// Char is a single cell to draw: a glyph index plus ink (foreground) and
// paper (background) colours. The low 8 bits of Ch select the glyph in the
// 16x16 font atlas; the top 24 bits are ignored by the engine and free for
// application use.
type Char struct {
	Ch    uint32
	Ink   Colour
	Paper Colour
}

// NewChar builds a Char from an 8-bit glyph index.
func NewChar(ch byte, ink, paper Colour) Char {
	return Char{Ch: uint32(ch), Ink: ink, Paper: paper}
}

// NewCharU32 builds a Char from a full 32-bit glyph value.
func NewCharU32(ch uint32, ink, paper Colour) Char {
	return Char{Ch: ch, Ink: ink, Paper: paper}
}

// NewCharRune builds a Char from a rune, truncated to its low 8 bits.
func NewCharRune(ch rune, ink, paper Colour) Char {
	return NewChar(byte(ch), ink, paper)
}

// Image is a rectangular grid of cells held as three parallel row-major
// planes. The planes always have identical length Width*Height and are only
// ever resized together.
type Image struct {
	Width  int
	Height int

	// Fore holds the ink colour of each cell.
	Fore []uint32
	// Back holds the paper colour of each cell.
	Back []uint32
	// Text holds the glyph index of each cell.
	Text []uint32
}

// NewImage creates an image of the given size with every cell zeroed.
func NewImage(width, height int) *Image {
	size := width * height
	return &Image{
		Width:  width,
		Height: height,
		Fore:   make([]uint32, size),
		Back:   make([]uint32, size),
		Text:   make([]uint32, size),
	}
}

// Rect returns the bounds of the image, anchored at the origin.
func (img *Image) Rect() geom.Rect {
	return geom.Rct(0, 0, img.Width, img.Height)
}

// IndexOf returns the plane index of the cell at p and whether p is in
// bounds.
func (img *Image) IndexOf(p geom.Point) (int, bool) {
	if p.X < 0 || p.Y < 0 || p.X >= img.Width || p.Y >= img.Height {
		return 0, false
	}
	return p.Y*img.Width + p.X, true
}

// Clear floods the image with the given ink and paper and zeroes every
// glyph.
func (img *Image) Clear(ink, paper Colour) {
	clearPlanes(img.Fore, img.Back, img.Text, ink, paper)
}

// DrawChar draws a single cell. Out-of-bounds coordinates are a no-op.
func (img *Image) DrawChar(p geom.Point, ch Char) {
	if i, ok := img.IndexOf(p); ok {
		img.Fore[i] = uint32(ch.Ink)
		img.Back[i] = uint32(ch.Paper)
		img.Text[i] = ch.Ch
	}
}

// DrawString draws text as a single row starting at p, clipping against the
// image bounds. Rows outside the image draw nothing; text crossing the left
// or right edge is trimmed to its visible slice.
func (img *Image) DrawString(p geom.Point, text string, ink, paper Colour) {
	drawString(img.Fore, img.Back, img.Text, img.Width, img.Height, p, text, ink, paper)
}

// DrawFilledRect fills a rectangle with the given cell, clipped to the image
// bounds.
func (img *Image) DrawFilledRect(r geom.Rect, ch Char) {
	clipped, _ := r.ClipWithin(img.Width, img.Height)
	if clipped.Empty() {
		return
	}
	i := clipped.Y*img.Width + clipped.X
	for row := 0; row < clipped.H; row++ {
		fillPlane(img.Fore[i:i+clipped.W], uint32(ch.Ink))
		fillPlane(img.Back[i:i+clipped.W], uint32(ch.Paper))
		fillPlane(img.Text[i:i+clipped.W], ch.Ch)
		i += img.Width
	}
}

func drawString(fore, back, text []uint32, width, height int, p geom.Point, s string, ink, paper Colour) {
	clipped, offset := geom.RectFromPointAndSize(p, len(s), 1).ClipWithin(width, height)
	if offset.Y != 0 || clipped.Empty() {
		return
	}
	visible := s[offset.X : offset.X+clipped.W]
	i := clipped.Y*width + clipped.X
	for k := 0; k < len(visible); k++ {
		fore[i+k] = uint32(ink)
		back[i+k] = uint32(paper)
		text[i+k] = uint32(visible[k])
	}
}

func clearPlanes(fore, back, text []uint32, ink, paper Colour) {
	fillPlane(fore, uint32(ink))
	fillPlane(back, uint32(paper))
	fillPlane(text, 0)
}

func fillPlane(plane []uint32, v uint32) {
	for i := range plane {
		plane[i] = v
	}
}
