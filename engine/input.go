package engine

import (
	"cmp"
	"maps"
	"slices"
)

// ButtonInput tracks which buttons are held and which changed this frame.
// A host calls Press and Release as input arrives and Clear at the start of
// every frame; systems only read.
type ButtonInput[T cmp.Ordered] struct {
	pressed      map[T]struct{}
	justPressed  map[T]struct{}
	justReleased map[T]struct{}
}

// Keyboard is the keyboard resource, keyed by physical key.
type Keyboard = ButtonInput[KeyCode]

// MouseButtons is the mouse button resource.
type MouseButtons = ButtonInput[MouseButton]

// MouseButton identifies a mouse button.
type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
	MouseButtonBack
	MouseButtonForward
)

func (b MouseButton) String() string {
	switch b {
	case MouseButtonLeft:
		return "Left"
	case MouseButtonRight:
		return "Right"
	case MouseButtonMiddle:
		return "Middle"
	case MouseButtonBack:
		return "Back"
	case MouseButtonForward:
		return "Forward"
	default:
		return "Other"
	}
}

func (in *ButtonInput[T]) init() {
	if in.pressed == nil {
		in.pressed = make(map[T]struct{})
		in.justPressed = make(map[T]struct{})
		in.justReleased = make(map[T]struct{})
	}
}

// Press records a press. A button that is already held is not just pressed again.
func (in *ButtonInput[T]) Press(button T) {
	in.init()
	if _, held := in.pressed[button]; held {
		return
	}
	in.pressed[button] = struct{}{}
	in.justPressed[button] = struct{}{}
}

// Release records a release of a held button.
func (in *ButtonInput[T]) Release(button T) {
	in.init()
	if _, held := in.pressed[button]; !held {
		return
	}
	delete(in.pressed, button)
	in.justReleased[button] = struct{}{}
}

// ReleaseAll releases every held button, e.g. when the window loses focus.
func (in *ButtonInput[T]) ReleaseAll() {
	for button := range in.pressed {
		in.Release(button)
	}
}

// Pressed reports whether button is held.
func (in *ButtonInput[T]) Pressed(button T) bool {
	_, ok := in.pressed[button]
	return ok
}

// AnyPressed reports whether any of buttons is held.
func (in *ButtonInput[T]) AnyPressed(buttons ...T) bool {
	for _, b := range buttons {
		if in.Pressed(b) {
			return true
		}
	}
	return false
}

// JustPressed reports whether button went down this frame.
func (in *ButtonInput[T]) JustPressed(button T) bool {
	_, ok := in.justPressed[button]
	return ok
}

// JustReleased reports whether button went up this frame.
func (in *ButtonInput[T]) JustReleased(button T) bool {
	_, ok := in.justReleased[button]
	return ok
}

// GetPressed returns held buttons in ascending order.
func (in *ButtonInput[T]) GetPressed() []T {
	return slices.Sorted(maps.Keys(in.pressed))
}

// GetJustPressed returns this frame's presses in ascending order.
func (in *ButtonInput[T]) GetJustPressed() []T {
	return slices.Sorted(maps.Keys(in.justPressed))
}

// GetJustReleased returns this frame's releases in ascending order.
func (in *ButtonInput[T]) GetJustReleased() []T {
	return slices.Sorted(maps.Keys(in.justReleased))
}

// Clear forgets this frame's transitions. Held buttons stay held.
func (in *ButtonInput[T]) Clear() {
	clear(in.justPressed)
	clear(in.justReleased)
}
