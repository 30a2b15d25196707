package mage

import (
	"testing"

	"github.com/baad-c0de/mage-core/geom"
)

func newScreen(w, h int) *PresentInput {
	return &PresentInput{
		Width:  w,
		Height: h,
		Fore:   make([]uint32, w*h),
		Back:   make([]uint32, w*h),
		Text:   make([]uint32, w*h),
	}
}

// sourceImage fills an image with distinct glyphs so copied regions are
// traceable: cell (x,y) holds y*width+x+1.
func sourceImage(w, h int) *Image {
	img := NewImage(w, h)
	for i := range img.Text {
		img.Text[i] = uint32(i + 1)
		img.Fore[i] = uint32(White)
		img.Back[i] = uint32(Blue)
	}
	return img
}

func TestBlitFullyVisible(t *testing.T) {
	screen := newScreen(6, 6)
	src := sourceImage(3, 2)
	screen.Blit(geom.Rct(2, 3, 3, 2), src.Rect(), src, Black)

	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			got := screen.Text[(y+3)*6+(x+2)]
			want := uint32(y*3 + x + 1)
			if got != want {
				t.Errorf("dst cell (%d,%d) = %d, want %d", x+2, y+3, got, want)
			}
		}
	}
}

func TestBlitSourceFullyOutside(t *testing.T) {
	screen := newScreen(5, 5)
	for i := range screen.Text {
		screen.Text[i] = 99
		screen.Fore[i] = 99
		screen.Back[i] = 99
	}
	src := sourceImage(4, 4)
	dst := geom.Rct(1, 1, 2, 2)
	screen.Blit(dst, geom.Rct(-10, -10, 2, 2), src, Red)

	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			i := y*5 + x
			inDst := x >= 1 && x < 3 && y >= 1 && y < 3
			if inDst {
				if screen.Back[i] != uint32(Red) || screen.Text[i] != 0 {
					t.Errorf("dst cell (%d,%d) not cleared to paper", x, y)
				}
			} else if screen.Text[i] != 99 {
				t.Errorf("cell (%d,%d) outside dst modified", x, y)
			}
		}
	}
}

func TestBlitLeadingEdgeOverlap(t *testing.T) {
	// Source overlaps the image's negative edge by 2 cells horizontally and
	// 1 vertically: a 1-tall leading row and 2-wide leading column get
	// paper, the rest is copied.
	screen := newScreen(8, 8)
	src := sourceImage(4, 4)
	dst := geom.Rct(1, 1, 4, 4)
	screen.Blit(dst, geom.Rct(-2, -1, 4, 4), src, Red)

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			i := (y+1)*8 + (x + 1)
			if y < 1 || x < 2 {
				if screen.Back[i] != uint32(Red) || screen.Text[i] != 0 {
					t.Errorf("border cell (%d,%d) = (%d,%#x), want paper", x, y, screen.Text[i], screen.Back[i])
				}
				continue
			}
			// Copied region starts at the source origin.
			want := uint32((y-1)*4 + (x - 2) + 1)
			if screen.Text[i] != want {
				t.Errorf("copied cell (%d,%d) = %d, want %d", x, y, screen.Text[i], want)
			}
		}
	}
}

func TestBlitSizeMismatchPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Blit with mismatched sizes did not panic")
		}
	}()
	screen := newScreen(4, 4)
	src := sourceImage(4, 4)
	screen.Blit(geom.Rct(0, 0, 2, 2), geom.Rct(0, 0, 3, 2), src, Black)
}

func TestBlitDestinationOutsidePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Blit outside destination bounds did not panic")
		}
	}()
	screen := newScreen(4, 4)
	src := sourceImage(4, 4)
	screen.Blit(geom.Rct(3, 3, 2, 2), geom.Rct(0, 0, 2, 2), src, Black)
}

func TestClearRect(t *testing.T) {
	screen := newScreen(4, 4)
	for i := range screen.Text {
		screen.Text[i] = 7
	}
	screen.ClearRect(geom.Rct(1, 1, 2, 2), Green)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			i := y*4 + x
			inside := x >= 1 && x < 3 && y >= 1 && y < 3
			if inside && (screen.Text[i] != 0 || screen.Back[i] != uint32(Green)) {
				t.Errorf("cell (%d,%d) not cleared", x, y)
			}
			if !inside && screen.Text[i] != 7 {
				t.Errorf("cell (%d,%d) outside rect modified", x, y)
			}
		}
	}
}

func TestClearRectOutOfBoundsPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("ClearRect outside screen did not panic")
		}
	}()
	newScreen(4, 4).ClearRect(geom.Rct(2, 2, 4, 4), Black)
}

func TestPrintAtWrapsNegativeCoordinates(t *testing.T) {
	screen := newScreen(10, 5)
	screen.PrintAt(-4, -1, []byte("ok"), White, Black)
	i := 4*10 + 6
	if screen.Text[i] != 'o' || screen.Text[i+1] != 'k' {
		t.Errorf("text at wrapped position = %d,%d", screen.Text[i], screen.Text[i+1])
	}
}

func TestPrintAtTruncatesAtRightEdge(t *testing.T) {
	screen := newScreen(5, 2)
	screen.PrintAt(3, 0, []byte("long"), White, Black)
	if screen.Text[3] != 'l' || screen.Text[4] != 'o' {
		t.Errorf("visible prefix wrong: %d %d", screen.Text[3], screen.Text[4])
	}
	if screen.Text[5] != 0 {
		t.Error("wrote past row end")
	}
}

func TestPrintAtForcesOpaqueColours(t *testing.T) {
	screen := newScreen(4, 1)
	screen.PrintAt(0, 0, []byte("x"), Colour(0x00112233), Colour(0x00445566))
	if screen.Fore[0] != 0xff112233 {
		t.Errorf("fore = %#x, want 0xff112233", screen.Fore[0])
	}
	if screen.Back[0] != 0xff445566 {
		t.Errorf("back = %#x, want 0xff445566", screen.Back[0])
	}
}

func TestNewImageMatchesScreen(t *testing.T) {
	screen := newScreen(12, 7)
	img := screen.NewImage()
	if img.Width != 12 || img.Height != 7 {
		t.Errorf("NewImage = %dx%d, want 12x7", img.Width, img.Height)
	}
}
