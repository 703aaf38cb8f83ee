package camera_test

import (
	"testing"

	"github.com/plus3/ecsdemos/engine"
	"github.com/plus3/ecsdemos/internal/demo/camera"
)

// benchApp is a started camera app with n extra text entities, the cursor
// inside the window and the arrow and shift keys held.
func benchApp(n int) *engine.App {
	app := engine.NewApp().AddPlugins(engine.DefaultPlugins{}, camera.Plugin{})
	for i := range n {
		app.Storage().Spawn(engine.Text2D{Value: "x", Size: 12}, engine.TransformFromXYZ(float64(i), 0, 0))
	}
	app.Tick(0)

	engine.Resource[engine.Window](app).SetCursorPosition(100, 200)
	kb := engine.Resource[engine.Keyboard](app)
	kb.Press(engine.KeyArrowLeft)
	kb.Press(engine.KeyShiftRight)
	kb.Press(engine.KeySuperLeft)
	return app
}

func BenchmarkCameraTick(b *testing.B) {
	app := benchApp(0)

	for b.Loop() {
		app.Tick(1.0 / 60)
	}
}

func BenchmarkCameraTickManyTexts(b *testing.B) {
	app := benchApp(10000)

	for b.Loop() {
		app.Tick(1.0 / 60)
	}
}

func BenchmarkControl(b *testing.B) {
	var kb engine.Keyboard
	kb.Press(engine.KeyArrowUp)
	kb.Press(engine.KeyAltRight)
	kb.Press(engine.KeyBracketLeft)
	t := engine.NewTransform()

	for b.Loop() {
		camera.Control(&kb, &t)
	}
}

func BenchmarkFormatCoords(b *testing.B) {
	for b.Loop() {
		_ = camera.FormatCoords(1279, 719.5)
	}
}
