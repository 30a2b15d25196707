package mage

import (
	"fmt"

	"github.com/baad-c0de/mage-core/geom"
)

// PresentInput hands the live screen planes to App.Present for the duration
// of a single frame. The planes are the engine's own cell buffers: writes
// land directly on screen at the next render. Callers must not retain the
// slices past the Present call; they are replaced wholesale when the window
// is resized.
type PresentInput struct {
	// Width and Height are the screen size in cells.
	Width  int
	Height int

	// Fore, Back and Text are the live screen planes, laid out exactly as
	// in Image.
	Fore []uint32
	Back []uint32
	Text []uint32
}

// Rect returns the screen bounds, anchored at the origin.
func (p *PresentInput) Rect() geom.Rect {
	return geom.Rct(0, 0, p.Width, p.Height)
}

// NewImage creates an off-screen image with the same dimensions as the
// screen, for draw-then-blit workflows.
func (p *PresentInput) NewImage() *Image {
	return NewImage(p.Width, p.Height)
}

// Clear floods the whole screen with the given ink and paper and zeroes
// every glyph.
func (p *PresentInput) Clear(ink, paper Colour) {
	clearPlanes(p.Fore, p.Back, p.Text, ink, paper)
}

// DrawChar draws a single cell on the screen. Out-of-bounds coordinates are
// a no-op.
func (p *PresentInput) DrawChar(at geom.Point, ch Char) {
	if at.X < 0 || at.Y < 0 || at.X >= p.Width || at.Y >= p.Height {
		return
	}
	i := at.Y*p.Width + at.X
	p.Fore[i] = uint32(ch.Ink)
	p.Back[i] = uint32(ch.Paper)
	p.Text[i] = ch.Ch
}

// DrawString draws text as a single clipped row, with the same contract as
// Image.DrawString.
func (p *PresentInput) DrawString(at geom.Point, text string, ink, paper Colour) {
	drawString(p.Fore, p.Back, p.Text, p.Width, p.Height, at, text, ink, paper)
}

// PrintAt writes a row of bytes at (x, y). Negative coordinates wrap from
// the right and bottom edges. The text is truncated at the right edge, and
// both colours are forced opaque.
func (p *PresentInput) PrintAt(x, y int, text []byte, ink, paper Colour) {
	if x < 0 {
		x += p.Width
	}
	if y < 0 {
		y += p.Height
	}
	if x < 0 || y < 0 || x >= p.Width || y >= p.Height {
		return
	}
	ink |= 0xff000000
	paper |= 0xff000000

	n := len(text)
	if n > p.Width-x {
		n = p.Width - x
	}
	i := y*p.Width + x
	for k := 0; k < n; k++ {
		p.Fore[i+k] = uint32(ink)
		p.Back[i+k] = uint32(paper)
		p.Text[i+k] = uint32(text[k])
	}
}

// ClearRect floods a sub-rectangle of the screen with paper and zeroes its
// glyphs. The rectangle must lie entirely within the screen; a violation is
// a defect in the caller and panics.
func (p *PresentInput) ClearRect(r geom.Rect, paper Colour) {
	if r.X < 0 || r.Y < 0 || r.X+r.W > p.Width || r.Y+r.H > p.Height {
		panic(fmt.Sprintf("mage: ClearRect %v outside screen %dx%d", r, p.Width, p.Height))
	}
	i := r.Y*p.Width + r.X
	for row := 0; row < r.H; row++ {
		fillPlane(p.Fore[i:i+r.W], uint32(paper))
		fillPlane(p.Back[i:i+r.W], uint32(paper))
		fillPlane(p.Text[i:i+r.W], 0)
		i += p.Width
	}
}

// Blit copies src from img onto the screen at dst. The two rectangles must
// have equal extents and dst must lie entirely within the screen; violating
// either is a defect in the caller and panics.
//
// src is clipped against img's bounds. Destination cells uncovered by that
// clipping - the leading row band and leading column band - are cleared with
// paper before the remaining region is copied row by row. A fully clipped
// source clears the whole destination instead.
func (p *PresentInput) Blit(dst, src geom.Rect, img *Image, paper Colour) {
	if dst.W != src.W || dst.H != src.H {
		panic(fmt.Sprintf("mage: Blit size mismatch: dst %v, src %v", dst, src))
	}
	if dst.X < 0 || dst.Y < 0 || dst.X+dst.W > p.Width || dst.Y+dst.H > p.Height {
		panic(fmt.Sprintf("mage: Blit destination %v outside screen %dx%d", dst, p.Width, p.Height))
	}

	clipped, offset := src.ClipWithin(img.Width, img.Height)
	if clipped.Empty() {
		p.ClearRect(dst, paper)
		return
	}

	// Clipping only removes from the leading edges, so the uncovered part of
	// dst is a top band across its full width plus a left band beside the
	// copied region.
	if offset.Y > 0 {
		p.ClearRect(geom.Rct(dst.X, dst.Y, dst.W, offset.Y), paper)
	}
	if offset.X > 0 {
		p.ClearRect(geom.Rct(dst.X, dst.Y+offset.Y, offset.X, clipped.H), paper)
	}

	for row := 0; row < clipped.H; row++ {
		si := (clipped.Y+row)*img.Width + clipped.X
		di := (dst.Y+offset.Y+row)*p.Width + dst.X + offset.X
		copy(p.Fore[di:di+clipped.W], img.Fore[si:si+clipped.W])
		copy(p.Back[di:di+clipped.W], img.Back[si:si+clipped.W])
		copy(p.Text[di:di+clipped.W], img.Text[si:si+clipped.W])
	}
}
