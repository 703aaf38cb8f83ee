// Package ebitenhost runs an engine.App inside an Ebitengine window.
package ebitenhost

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/plus3/ecsdemos/ecs/debugui"
	debugui_ebiten "github.com/plus3/ecsdemos/ecs/debugui/ebiten"
	"github.com/plus3/ecsdemos/engine"
	"github.com/plus3/ecsdemos/internal/assetwatch"
)

// Runner is an engine.Runner that opens a window and ticks the app once per
// Ebitengine update until the window is closed.
type Runner struct {
	Logger *zap.Logger
	// Debug shows the ImGui stats and entity inspector windows.
	Debug bool
	// WatchAssets reloads fonts when they change on disk.
	WatchAssets bool
	// TPS is the update rate. Zero means 60.
	TPS int
}

func (r Runner) Run(app *engine.App) error {
	log := r.Logger
	if log == nil {
		log = zap.NewNop()
	}
	tps := r.TPS
	if tps <= 0 {
		tps = ebiten.DefaultTPS
	}

	window := engine.Resource[engine.Window](app)
	assets := engine.Resource[engine.AssetServer](app)
	if window == nil || assets == nil {
		return fmt.Errorf("ebitenhost: app is missing engine.DefaultPlugins")
	}

	g := &game{
		app:     app,
		log:     log,
		dt:      1 / float64(tps),
		frames:  engine.NewFrameTimer(nil),
		window:  window,
		input:   newInputState(app, log),
		fonts:   newFontCache(assets, log),
		cameras: newCameraQuery(app),
		texts:   newTextQuery(app),
	}

	if r.WatchAssets {
		w, err := assetwatch.NewIfExists(assets.Root, assetwatch.Extensions(".ttf", ".otf"))
		switch {
		case err != nil:
			return fmt.Errorf("ebitenhost: watch %s: %w", assets.Root, err)
		case w == nil:
			log.Warn("asset root missing, not watching", zap.String("root", assets.Root))
		default:
			defer w.Close()
			g.watcher = w
			log.Info("watching assets", zap.String("root", assets.Root))
		}
	}

	if r.Debug {
		g.imgui = debugui_ebiten.NewImguiBackend(window.Title, window.Width, window.Height)
		engine.RegisterComponent[debugui.ImguiItem](app)
		app.InsertResource(&debugui.ImguiInputState{})
		app.AddSystems(engine.Update, &debugui.ImguiSystem{})
		app.Storage().Spawn(debugui.NewStatsWindow(app.Storage(), app.Stats, 120).Item(g.frames.Delta))
		app.Storage().Spawn(debugui.NewInspector(app.Storage()).Item())
	}

	ebiten.SetWindowTitle(window.Title)
	ebiten.SetWindowSize(window.Width, window.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(tps)

	log.Debug("starting window",
		zap.String("title", window.Title),
		zap.Int("width", window.Width),
		zap.Int("height", window.Height),
		zap.Int("tps", tps),
	)
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("ebitenhost: %w", err)
	}
	return nil
}

type game struct {
	app    *engine.App
	log    *zap.Logger
	dt     float64
	frames *engine.FrameTimer
	window *engine.Window

	input   *inputState
	fonts   *fontCache
	cameras *cameraQuery
	texts   *textQuery
	watcher *assetwatch.Watcher
	imgui   *debugui_ebiten.ImguiBackend
}

func (g *game) Update() error {
	g.frames.Tick()
	if g.imgui != nil {
		g.imgui.BeginFrame()
		defer g.imgui.EndFrame()
	}

	g.app.BeginFrame()
	g.input.poll(g.window, g.captured())
	g.app.Tick(g.dt)
	return nil
}

// captured reports whether ImGui wants the keyboard this frame.
func (g *game) captured() bool {
	if g.imgui == nil {
		return false
	}
	state := engine.Resource[debugui.ImguiInputState](g.app)
	return state != nil && state.WantCaptureKeyboard
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.watcher != nil {
		g.drainWatcher()
	}

	g.render(screen)

	if g.imgui != nil {
		g.imgui.DrawOver(screen)
	}
}

func (g *game) drainWatcher() {
	for {
		select {
		case path := <-g.watcher.Events:
			g.log.Info("asset changed", zap.String("path", path))
			g.fonts.Invalidate(path)
		case err := <-g.watcher.Errors:
			g.log.Warn("asset watcher", zap.Error(err))
		default:
			return
		}
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.window.Width = outsideWidth
	g.window.Height = outsideHeight
	if g.imgui != nil {
		g.imgui.Layout(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}
