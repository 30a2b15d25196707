package mage

import (
	"bytes"
	"image"
	"image/draw"

	"github.com/pkg/errors"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	_ "image/png"

	_ "github.com/spakin/netpbm"
	_ "golang.org/x/image/bmp"
)

// FontData is a decoded font atlas: a 16x16 grid of glyph cells stored as
// one 32-bit pixel per texel in the same byte layout as the colour planes.
type FontData struct {
	// Data holds the atlas pixels, row major, 16*CharWidth texels wide.
	Data []uint32

	// CharWidth and CharHeight are the size of one glyph cell in pixels.
	CharWidth  int
	CharHeight int
}

// LoadFontImage decodes an image into a font atlas. The image must be laid
// out as a 16x16 grid of glyph cells, so both pixel dimensions must be exact
// multiples of 16; anything else fails here rather than at render time.
// PNG, BMP and the netpbm formats are supported.
func LoadFontImage(data []byte) (*FontData, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrap(err, "mage: decoding font image")
	}
	bounds := img.Bounds()
	charW := bounds.Dx() / 16
	charH := bounds.Dy() / 16
	if charW == 0 || charH == 0 || charW*16 != bounds.Dx() || charH*16 != bounds.Dy() {
		return nil, errors.Wrapf(ErrInvalidFontImage, "image is %dx%d", bounds.Dx(), bounds.Dy())
	}

	rgba := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, bounds.Min, draw.Src)

	return &FontData{
		Data:       planePixels(rgba),
		CharWidth:  charW,
		CharHeight: charH,
	}, nil
}

// DefaultFont builds the built-in atlas by rasterizing basicfont.Face7x13
// into a 16x16 grid of 7x13 cells. Glyphs the face does not cover stay
// blank.
func DefaultFont() *FontData {
	face := basicfont.Face7x13
	charW := face.Advance
	charH := face.Height

	rgba := image.NewRGBA(image.Rect(0, 0, 16*charW, 16*charH))
	drawer := font.Drawer{
		Dst:  rgba,
		Src:  image.White,
		Face: face,
	}
	for ch := 0x20; ch < 0x100; ch++ {
		col := ch % 16
		row := ch / 16
		drawer.Dot = fixed.P(col*charW, row*charH+face.Ascent)
		drawer.DrawString(string(rune(ch)))
	}

	return &FontData{
		Data:       planePixels(rgba),
		CharWidth:  charW,
		CharHeight: charH,
	}
}

// planePixels packs RGBA bytes into the engine's 32-bit texel layout: red in
// the low byte, then green, blue and alpha.
func planePixels(rgba *image.RGBA) []uint32 {
	w := rgba.Bounds().Dx()
	h := rgba.Bounds().Dy()
	out := make([]uint32, w*h)
	for i := range out {
		px := rgba.Pix[i*4 : i*4+4]
		out[i] = uint32(px[0]) | uint32(px[1])<<8 | uint32(px[2])<<16 | uint32(px[3])<<24
	}
	return out
}
