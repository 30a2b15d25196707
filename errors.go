package mage

import "github.com/pkg/errors"

// Startup errors. All of them abort Run before the frame loop begins; no
// partial engine state is left behind.
var (
	// ErrInvalidFontImage reports a font atlas whose pixel dimensions are
	// not exact multiples of 16.
	ErrInvalidFontImage = errors.New("mage: font image dimensions must be multiples of 16")
)
