package mage

import "time"

// App is the per-frame contract between the engine and the application. The
// engine calls Tick once per frame to advance application state, then
// Present to let the application draw into the live screen planes.
//
// The slices inside PresentInput are only valid for the duration of the
// Present call. Returning Changed triggers a GPU upload and draw; returning
// NoChanges skips all GPU work for the frame.
type App interface {
	Tick(input TickInput) TickResult
	Present(input PresentInput) PresentResult
}

// TickResult tells the engine whether to keep running.
type TickResult int

const (
	// Continue keeps the frame loop running.
	Continue TickResult = iota
	// Quit exits the frame loop immediately.
	Quit
)

// PresentResult reports whether the screen changed this frame.
type PresentResult int

const (
	// NoChanges skips the GPU upload and draw for this frame.
	NoChanges PresentResult = iota
	// Changed uploads the planes and renders.
	Changed
)

// TickInput carries per-frame state into App.Tick.
type TickInput struct {
	// DT is the time elapsed since the previous frame.
	DT time.Duration

	// Width and Height are the current screen size in cells.
	Width  int
	Height int

	// Shift is the current modifier key state.
	Shift ShiftState
}
