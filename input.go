package mage

import "github.com/go-gl/glfw/v3.3/glfw"

// ShiftState tracks which modifier keys are currently held. The engine
// updates it from window key events and passes a copy to App.Tick.
type ShiftState struct {
	shift bool
	ctrl  bool
	alt   bool
}

// Update records the modifier bits delivered with a key event.
func (s *ShiftState) Update(mods glfw.ModifierKey) {
	s.shift = mods&glfw.ModShift != 0
	s.ctrl = mods&glfw.ModControl != 0
	s.alt = mods&glfw.ModAlt != 0
}

func (s ShiftState) ShiftDown() bool { return s.shift }
func (s ShiftState) CtrlDown() bool  { return s.ctrl }
func (s ShiftState) AltDown() bool   { return s.alt }

// ShiftOnly reports whether shift is held with no other modifier.
func (s ShiftState) ShiftOnly() bool { return s.shift && !s.ctrl && !s.alt }

// CtrlOnly reports whether ctrl is held with no other modifier.
func (s ShiftState) CtrlOnly() bool { return !s.shift && s.ctrl && !s.alt }

// AltOnly reports whether alt is held with no other modifier.
func (s ShiftState) AltOnly() bool { return !s.shift && !s.ctrl && s.alt }

func (s ShiftState) ShiftCtrl() bool    { return s.shift && s.ctrl && !s.alt }
func (s ShiftState) ShiftAlt() bool     { return s.shift && !s.ctrl && s.alt }
func (s ShiftState) CtrlAlt() bool      { return !s.shift && s.ctrl && s.alt }
func (s ShiftState) ShiftCtrlAlt() bool { return s.shift && s.ctrl && s.alt }
