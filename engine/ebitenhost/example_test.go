package ebitenhost_test

import (
	"log"

	"go.uber.org/zap"

	"github.com/plus3/ecsdemos/engine"
	"github.com/plus3/ecsdemos/engine/ebitenhost"
)

func Example() {
	app := engine.NewApp().AddPlugins(engine.DefaultPlugins{
		Window: engine.Window{Title: "example", Width: 640, Height: 480},
	})
	app.Storage().Spawn(engine.Camera2D{}, engine.NewTransform())
	app.Storage().Spawn(engine.Text2D{Value: "hi", Size: 32}, engine.NewTransform())

	if err := app.Run(ebitenhost.Runner{Logger: zap.NewExample(), Debug: true}); err != nil {
		log.Fatal(err)
	}
}
