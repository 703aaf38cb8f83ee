// Package hello is the smallest demo: one system that greets.
package hello

import (
	"fmt"
	"io"

	"github.com/plus3/ecsdemos/ecs"
	"github.com/plus3/ecsdemos/engine"
)

// Plugin adds a system that writes "hello world!" to Out every Update.
type Plugin struct {
	Out io.Writer
}

func (p Plugin) Build(app *engine.App) {
	app.AddSystemFunc(engine.Update, "hello_world", func(*ecs.UpdateFrame) {
		fmt.Fprintln(p.Out, "hello world!")
	})
}
