package render

import "github.com/pkg/errors"

var (
	// ErrSurfaceLost reports that the GL context lost its surface. The
	// caller should reconfigure with Resize at the current framebuffer size
	// and retry on the next frame.
	ErrSurfaceLost = errors.New("render: surface lost")

	// ErrOutOfMemory reports GPU memory exhaustion. Not recoverable; the
	// frame loop must terminate.
	ErrOutOfMemory = errors.New("render: GPU out of memory")
)

// glContextLost is GL_CONTEXT_LOST; the 3.3 binding does not name it.
const glContextLost = 0x0507
