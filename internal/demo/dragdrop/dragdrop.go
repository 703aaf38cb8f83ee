// Package dragdrop is the drag-and-drop demo: it logs files dropped on the window.
package dragdrop

import (
	"go.uber.org/zap"

	"github.com/plus3/ecsdemos/ecs"
	"github.com/plus3/ecsdemos/engine"
)

// Plugin adds LogDropsSystem to the Update schedule.
type Plugin struct {
	Logger *zap.Logger
}

func (p Plugin) Build(app *engine.App) {
	app.AddSystems(engine.Update, &LogDropsSystem{Logger: p.Logger})
}

// LogDropsSystem logs one line per FileDragAndDrop event of the frame.
type LogDropsSystem struct {
	Logger *zap.Logger
	Events ecs.Singleton[engine.Events[engine.FileDragAndDrop]]
}

func (s *LogDropsSystem) Execute(frame *ecs.UpdateFrame) {
	events := s.Events.Get()
	if events == nil {
		return
	}
	for e := range events.Iter() {
		s.Logger.Info("file drag and drop",
			zap.String("kind", e.Kind.String()),
			zap.String("path", e.Path),
		)
	}
}
