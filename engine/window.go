package engine

// Window is the primary window resource. Sizes are logical pixels.
type Window struct {
	Title  string
	Width  int
	Height int

	cursorX, cursorY float64
	hasCursor        bool
}

// CursorPosition returns the cursor position in window coordinates (top-left
// origin). ok is false while the cursor is outside the window.
func (w *Window) CursorPosition() (x, y float64, ok bool) {
	return w.cursorX, w.cursorY, w.hasCursor
}

// SetCursorPosition records the cursor as inside the window at (x, y).
func (w *Window) SetCursorPosition(x, y float64) {
	w.cursorX, w.cursorY, w.hasCursor = x, y, true
}

// ClearCursorPosition records the cursor as outside the window.
func (w *Window) ClearCursorPosition() {
	w.cursorX, w.cursorY, w.hasCursor = 0, 0, false
}

// Contains reports whether (x, y) lies inside the window bounds.
func (w *Window) Contains(x, y float64) bool {
	return x >= 0 && y >= 0 && x < float64(w.Width) && y < float64(w.Height)
}
