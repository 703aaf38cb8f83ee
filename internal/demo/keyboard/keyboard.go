// Package keyboard is the keyboard demo: it logs every key press and release.
package keyboard

import (
	"go.uber.org/zap"

	"github.com/plus3/ecsdemos/ecs"
	"github.com/plus3/ecsdemos/engine"
)

// Plugin adds LogTransitionsSystem to the Update schedule.
type Plugin struct {
	Logger *zap.Logger
}

func (p Plugin) Build(app *engine.App) {
	app.AddSystems(engine.Update, &LogTransitionsSystem{Logger: p.Logger})
}

// LogTransitionsSystem logs keys that went down or up this frame. Held keys
// are not logged again.
type LogTransitionsSystem struct {
	Logger   *zap.Logger
	Keyboard ecs.Singleton[engine.Keyboard]
}

func (s *LogTransitionsSystem) Execute(frame *ecs.UpdateFrame) {
	kb := s.Keyboard.Get()
	if kb == nil {
		return
	}
	for _, key := range kb.GetJustPressed() {
		s.Logger.Info("'"+key.String()+"' just pressed", zap.String("key", key.String()))
	}
	for _, key := range kb.GetJustReleased() {
		s.Logger.Info("'"+key.String()+"' just released", zap.String("key", key.String()))
	}
}
