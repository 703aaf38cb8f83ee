package engine

import "github.com/go-gl/mathgl/mgl64"

var (
	AxisX = mgl64.Vec3{1, 0, 0}
	AxisY = mgl64.Vec3{0, 1, 0}
	AxisZ = mgl64.Vec3{0, 0, 1}
)

// Transform places an entity in world space. World space is Y-up with the
// origin at the center of the window for the default camera.
type Transform struct {
	Translation mgl64.Vec3
	Rotation    mgl64.Quat
	Scale       mgl64.Vec3
}

// NewTransform returns the identity transform.
func NewTransform() Transform {
	return Transform{
		Rotation: mgl64.QuatIdent(),
		Scale:    mgl64.Vec3{1, 1, 1},
	}
}

// TransformFromXYZ returns an identity transform translated to (x, y, z).
func TransformFromXYZ(x, y, z float64) Transform {
	t := NewTransform()
	t.Translation = mgl64.Vec3{x, y, z}
	return t
}

// Rotate applies q in world space: rotation = q * rotation.
func (t *Transform) Rotate(q mgl64.Quat) {
	t.Rotation = q.Mul(t.Rotation)
}

// RotateX rotates about the world X axis by angle radians.
func (t *Transform) RotateX(angle float64) {
	t.Rotate(mgl64.QuatRotate(angle, AxisX))
}

// RotateY rotates about the world Y axis by angle radians.
func (t *Transform) RotateY(angle float64) {
	t.Rotate(mgl64.QuatRotate(angle, AxisY))
}

// RotateZ rotates about the world Z axis by angle radians.
func (t *Transform) RotateZ(angle float64) {
	t.Rotate(mgl64.QuatRotate(angle, AxisZ))
}

// Matrix returns translation * rotation * scale.
func (t Transform) Matrix() mgl64.Mat4 {
	return mgl64.Translate3D(t.Translation.X(), t.Translation.Y(), t.Translation.Z()).
		Mul4(t.Rotation.Mat4()).
		Mul4(mgl64.Scale3D(t.Scale.X(), t.Scale.Y(), t.Scale.Z()))
}
