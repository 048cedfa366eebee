package racer

import "github.com/vovakirdan/dodge-racer/internal/core"

// InputState tracks which steering directions are currently held.
type InputState struct {
	left  bool
	right bool
}

// Press marks a steering action as held. Non-steering actions are ignored.
func (s *InputState) Press(a core.Action) {
	switch a {
	case core.ActionLeft:
		s.left = true
	case core.ActionRight:
		s.right = true
	}
}

// Release marks a steering action as no longer held.
func (s *InputState) Release(a core.Action) {
	switch a {
	case core.ActionLeft:
		s.left = false
	case core.ActionRight:
		s.right = false
	}
}

// Held reports whether the action is currently held.
func (s InputState) Held(a core.Action) bool {
	switch a {
	case core.ActionLeft:
		return s.left
	case core.ActionRight:
		return s.right
	default:
		return false
	}
}

// Direction returns -1, 0 or +1. Holding both directions cancels out.
func (s InputState) Direction() float64 {
	d := 0.0
	if s.left {
		d--
	}
	if s.right {
		d++
	}
	return d
}

// Reset releases everything.
func (s *InputState) Reset() {
	*s = InputState{}
}
