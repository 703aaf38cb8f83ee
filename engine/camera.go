package engine

import "image/color"

// DefaultClearColor is the background used by a Camera2D with no clear color set.
var DefaultClearColor = color.RGBA{R: 0x66, G: 0x66, B: 0x66, A: 0xff}

// Camera2D renders Text2D entities with an orthographic projection.
// Its Transform is the view: translating the camera right moves content left,
// scaling it up zooms out.
type Camera2D struct {
	ClearColor color.RGBA
}

// Background returns the clear color, falling back to DefaultClearColor.
func (c Camera2D) Background() color.RGBA {
	if c.ClearColor == (color.RGBA{}) {
		return DefaultClearColor
	}
	return c.ClearColor
}

// Affine is a 2x3 row-major affine map:
//
//	x' = A[0]*x + A[1]*y + A[2]
//	y' = A[3]*x + A[4]*y + A[5]
type Affine [6]float64

// Apply maps a point.
func (a Affine) Apply(x, y float64) (float64, float64) {
	return a[0]*x + a[1]*y + a[2], a[3]*x + a[4]*y + a[5]
}

// WorldToScreen maps an entity's local Y-up plane into window pixels as seen
// through camera: inverse(camera) * model, dropping Z, flipping Y and moving the
// origin to the window center.
func WorldToScreen(camera, model Transform, width, height float64) Affine {
	m := camera.Matrix().Inv().Mul4(model.Matrix())
	return Affine{
		m.At(0, 0), m.At(0, 1), m.At(0, 3) + width/2,
		-m.At(1, 0), -m.At(1, 1), -m.At(1, 3) + height/2,
	}
}
