// Command keyboard logs every key press and release in an empty window.
package main

import (
	"flag"
	"log"
	"os"

	"go.uber.org/zap"

	"github.com/plus3/ecsdemos/engine"
	"github.com/plus3/ecsdemos/engine/ebitenhost"
	"github.com/plus3/ecsdemos/internal/config"
	"github.com/plus3/ecsdemos/internal/demo/keyboard"
	"github.com/plus3/ecsdemos/internal/logger"
)

func main() {
	cfg, err := config.Parse(flag.CommandLine, os.Args[1:], config.Default("keyboard input"))
	if err != nil {
		log.Fatal(err)
	}
	zlog, err := logger.New(cfg.Log)
	if err != nil {
		log.Fatal(err)
	}
	defer zlog.Sync()

	app := engine.NewApp().AddPlugins(
		engine.DefaultPlugins{
			Window:    engine.Window{Title: cfg.Window.Title, Width: cfg.Window.Width, Height: cfg.Window.Height},
			AssetRoot: cfg.Assets.Root,
		},
		keyboard.Plugin{Logger: zlog},
	)

	runner := ebitenhost.Runner{
		Logger:      zlog,
		Debug:       cfg.Debug,
		WatchAssets: cfg.Assets.Watch,
		TPS:         cfg.TPS,
	}
	if err := app.Run(runner); err != nil {
		zlog.Error("run", zap.Error(err))
		_ = zlog.Sync()
		os.Exit(1)
	}
}
