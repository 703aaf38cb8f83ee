// Package camera is the camera demo: a keyboard-driven 2D camera and a text
// entity that shows the mouse position.
package camera

import (
	"image/color"
	"strconv"

	"github.com/plus3/ecsdemos/ecs"
	"github.com/plus3/ecsdemos/engine"
)

// MainCamera marks the camera moved by KeyboardControlSystem.
type MainCamera struct{}

// CursorPosition marks the text entity that shows the mouse coordinates.
type CursorPosition struct{}

const (
	FontPath    = "fonts/FiraSans-Bold.ttf"
	InitialText = "Hello, Ebitengine!"
	FontSize    = 60
)

// Plugin registers the demo's components and systems.
type Plugin struct{}

func (Plugin) Build(app *engine.App) {
	engine.RegisterComponent[MainCamera](app)
	engine.RegisterComponent[CursorPosition](app)

	app.AddSystems(engine.Startup, &Setup{})
	app.AddSystems(engine.Update, &MouseCoordinatesSystem{}, &KeyboardControlSystem{})
}

// Setup spawns the camera and the cursor text.
type Setup struct {
	Assets ecs.Singleton[engine.AssetServer]
}

func (s *Setup) Execute(frame *ecs.UpdateFrame) {
	frame.Commands.Spawn(engine.Camera2D{}, engine.NewTransform(), MainCamera{})
	frame.Commands.Spawn(
		engine.Text2D{
			Value:   InitialText,
			Font:    s.Assets.Get().LoadFont(FontPath),
			Size:    FontSize,
			Color:   color.RGBA{A: 0xff},
			Justify: engine.JustifyCenter,
		},
		engine.NewTransform(),
		CursorPosition{},
	)
}

// MouseCoordinatesSystem writes the raw window cursor position into the
// CursorPosition text. It does nothing while the cursor is outside the window.
type MouseCoordinatesSystem struct {
	Window ecs.Singleton[engine.Window]
	Text   ecs.Query[struct {
		*engine.Text2D
		*CursorPosition
	}]
}

func (s *MouseCoordinatesSystem) Execute(frame *ecs.UpdateFrame) {
	x, y, ok := s.Window.Get().CursorPosition()
	if !ok {
		return
	}
	s.Text.MustSingle().Text2D.Value = FormatCoords(x, y)
}

// FormatCoords renders "World coords: x/y" with the shortest decimal form of
// each coordinate.
func FormatCoords(x, y float64) string {
	return "World coords: " + formatFloat(x) + "/" + formatFloat(y)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Per-tick deltas applied by KeyboardControlSystem.
const (
	MoveStep    = 1.0
	ZoomIn      = 0.999
	ZoomOut     = 1.001
	RotateSteps = 0.1
)

// KeyboardControlSystem moves, zooms and rotates the MainCamera while keys are held.
type KeyboardControlSystem struct {
	Keyboard ecs.Singleton[engine.Keyboard]
	Camera   ecs.Query[struct {
		*engine.Transform
		*MainCamera
	}]
}

var controlKeys = []engine.KeyCode{
	engine.KeyArrowLeft, engine.KeyArrowRight, engine.KeyArrowUp, engine.KeyArrowDown,
	engine.KeyShiftRight, engine.KeyShiftLeft,
	engine.KeySuperRight, engine.KeySuperLeft,
	engine.KeyAltRight, engine.KeyAltLeft,
	engine.KeyBracketRight, engine.KeyBracketLeft,
}

func (s *KeyboardControlSystem) Execute(frame *ecs.UpdateFrame) {
	kb := s.Keyboard.Get()
	if !kb.AnyPressed(controlKeys...) {
		return
	}
	Control(kb, s.Camera.MustSingle().Transform)
}

// Control applies one tick of keyboard input to t.
func Control(kb *engine.Keyboard, t *engine.Transform) {
	if kb.Pressed(engine.KeyArrowLeft) {
		t.Translation[0] -= MoveStep
	}
	if kb.Pressed(engine.KeyArrowRight) {
		t.Translation[0] += MoveStep
	}
	if kb.Pressed(engine.KeyArrowUp) {
		t.Translation[1] += MoveStep
	}
	if kb.Pressed(engine.KeyArrowDown) {
		t.Translation[1] -= MoveStep
	}

	if kb.Pressed(engine.KeyShiftRight) {
		t.Scale[0] *= ZoomIn
		t.Scale[1] *= ZoomIn
	}
	if kb.Pressed(engine.KeyShiftLeft) {
		t.Scale[0] *= ZoomOut
		t.Scale[1] *= ZoomOut
	}

	if kb.Pressed(engine.KeySuperRight) {
		t.RotateZ(RotateSteps)
	}
	if kb.Pressed(engine.KeySuperLeft) {
		t.RotateZ(-RotateSteps)
	}
	if kb.Pressed(engine.KeyAltRight) {
		t.RotateX(RotateSteps)
	}
	if kb.Pressed(engine.KeyAltLeft) {
		t.RotateX(-RotateSteps)
	}
	if kb.Pressed(engine.KeyBracketRight) {
		t.RotateY(RotateSteps)
	}
	if kb.Pressed(engine.KeyBracketLeft) {
		t.RotateY(-RotateSteps)
	}
}
