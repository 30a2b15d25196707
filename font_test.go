package mage

import (
	"bytes"
	"image"
	"image/png"
	"testing"

	"github.com/pkg/errors"
)

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h))); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestLoadFontImage(t *testing.T) {
	fd, err := LoadFontImage(encodePNG(t, 128, 192))
	if err != nil {
		t.Fatal(err)
	}
	if fd.CharWidth != 8 || fd.CharHeight != 12 {
		t.Errorf("cell size = %dx%d, want 8x12", fd.CharWidth, fd.CharHeight)
	}
	if len(fd.Data) != 128*192 {
		t.Errorf("data length = %d, want %d", len(fd.Data), 128*192)
	}
}

func TestLoadFontImageRejectsBadDimensions(t *testing.T) {
	for _, size := range [][2]int{{100, 192}, {128, 100}, {8, 8}} {
		_, err := LoadFontImage(encodePNG(t, size[0], size[1]))
		if !errors.Is(err, ErrInvalidFontImage) {
			t.Errorf("%dx%d: err = %v, want ErrInvalidFontImage", size[0], size[1], err)
		}
	}
}

func TestLoadFontImageRejectsGarbage(t *testing.T) {
	if _, err := LoadFontImage([]byte("not an image")); err == nil {
		t.Error("garbage input did not fail")
	}
}

func TestDefaultFontAtlas(t *testing.T) {
	fd := DefaultFont()
	if fd.CharWidth*16*fd.CharHeight*16 != len(fd.Data) {
		t.Fatalf("atlas length %d does not match 16x16 grid of %dx%d cells",
			len(fd.Data), fd.CharWidth, fd.CharHeight)
	}

	// The face must cover printable ASCII: 'A' may not be blank.
	cellX := ('A' % 16) * fd.CharWidth
	cellY := ('A' / 16) * fd.CharHeight
	atlasW := 16 * fd.CharWidth
	lit := false
	for y := 0; y < fd.CharHeight && !lit; y++ {
		for x := 0; x < fd.CharWidth; x++ {
			if fd.Data[(cellY+y)*atlasW+cellX+x]&0x00ffffff != 0 {
				lit = true
				break
			}
		}
	}
	if !lit {
		t.Error("glyph 'A' is blank in the default atlas")
	}
}
