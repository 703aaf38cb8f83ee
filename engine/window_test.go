package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/plus3/ecsdemos/engine"
)

func TestWindowContains(t *testing.T) {
	w := engine.Window{Width: 1280, Height: 720}

	for _, tc := range []struct {
		name string
		x, y float64
		want bool
	}{
		{"origin", 0, 0, true},
		{"last pixel", 1279, 719, true},
		{"fractional last pixel", 1279.5, 719.5, true},
		{"right edge", 1280, 0, false},
		{"bottom edge", 0, 720, false},
		{"left of window", -1, 10, false},
		{"above window", 10, -0.5, false},
		{"far outside", 5000, 5000, false},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, w.Contains(tc.x, tc.y))
		})
	}
}

func TestWindowContainsEmpty(t *testing.T) {
	var w engine.Window
	assert.False(t, w.Contains(0, 0))
}

func TestWindowCursorPosition(t *testing.T) {
	var w engine.Window
	_, _, ok := w.CursorPosition()
	assert.False(t, ok)

	w.SetCursorPosition(3, 4)
	x, y, ok := w.CursorPosition()
	assert.True(t, ok)
	assert.Equal(t, [2]float64{3, 4}, [2]float64{x, y})

	w.ClearCursorPosition()
	_, _, ok = w.CursorPosition()
	assert.False(t, ok)
}
