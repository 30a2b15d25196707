package render

import (
	"runtime"

	"github.com/faiface/mainthread"
	"github.com/go-gl/gl/v3.3-core/gl"
)

// planeTexture pairs a CPU-side plane with a GPU texture of matching size.
// The CPU slice is the source of truth and may be mutated freely; the two
// are only in sync immediately after upload.
type planeTexture struct {
	obj    uint32
	width  int
	height int
	pixels []uint32
}

// newPlaneTexture creates a zeroed plane and its backing texture. Must be
// called from the main thread.
func newPlaneTexture(width, height int) *planeTexture {
	t := &planeTexture{
		width:  width,
		height: height,
		pixels: make([]uint32, width*height),
	}

	gl.GenTextures(1, &t.obj)
	gl.BindTexture(gl.TEXTURE_2D, t.obj)
	gl.TexImage2D(
		gl.TEXTURE_2D,
		0,
		gl.RGBA8,
		int32(width),
		int32(height),
		0,
		gl.RGBA,
		gl.UNSIGNED_BYTE,
		gl.Ptr(t.pixels),
	)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	runtime.SetFinalizer(t, (*planeTexture).delete)
	return t
}

func (t *planeTexture) delete() {
	mainthread.CallNonBlock(func() {
		gl.DeleteTextures(1, &t.obj)
	})
}

// upload pushes the whole CPU plane to the texture. Must be called from the
// main thread.
func (t *planeTexture) upload() {
	gl.BindTexture(gl.TEXTURE_2D, t.obj)
	gl.TexSubImage2D(
		gl.TEXTURE_2D,
		0,
		0,
		0,
		int32(t.width),
		int32(t.height),
		gl.RGBA,
		gl.UNSIGNED_BYTE,
		gl.Ptr(t.pixels),
	)
	gl.BindTexture(gl.TEXTURE_2D, 0)
}

// bind attaches the texture to the given texture unit.
func (t *planeTexture) bind(unit uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	gl.BindTexture(gl.TEXTURE_2D, t.obj)
}
