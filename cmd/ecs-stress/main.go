// Command ecs-stress runs the camera demo headlessly as fast as possible with
// extra text entities and random input, then prints a markdown report.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"runtime"
	"time"

	"go.uber.org/zap"

	"github.com/plus3/ecsdemos/engine"
	"github.com/plus3/ecsdemos/internal/config"
	"github.com/plus3/ecsdemos/internal/demo/camera"
	"github.com/plus3/ecsdemos/internal/logger"
)

func main() {
	fs := flag.NewFlagSet("ecs-stress", flag.ExitOnError)
	duration := fs.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	entityCount := fs.Int("entities", 10000, "The number of extra text entities to create.")
	gcPauseMetrics := fs.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	seed := fs.Uint64("seed", 1, "Seed for the random key presses.")

	cfg, err := config.Parse(fs, os.Args[1:], config.Default("ecs-stress"))
	if err != nil {
		log.Fatal(err)
	}
	zlog, err := logger.New(cfg.Log)
	if err != nil {
		log.Fatal(err)
	}
	defer zlog.Sync()

	zlog.Info("starting stress test")

	app := engine.NewApp().AddPlugins(
		engine.DefaultPlugins{
			Window:    engine.Window{Title: cfg.Window.Title, Width: cfg.Window.Width, Height: cfg.Window.Height},
			AssetRoot: cfg.Assets.Root,
		},
		camera.Plugin{},
	)
	app.Startup()

	zlog.Info("populating storage", zap.Int("entities", *entityCount))
	rng := rand.New(rand.NewPCG(*seed, *seed))
	for i := 0; i < *entityCount; i++ {
		t := engine.TransformFromXYZ(rng.Float64()*2000-1000, rng.Float64()*2000-1000, 0)
		app.Storage().Spawn(engine.Text2D{Value: fmt.Sprint(i), Size: 12}, t)
	}

	report := &Report{
		Duration:       *duration,
		Entities:       *entityCount,
		GCPauseMetrics: *gcPauseMetrics,
	}
	runtime.ReadMemStats(&report.MemStatsStart)

	zlog.Info("running simulation", zap.Duration("duration", *duration))
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	input := newRandomInput(app, rng)
	startTime := time.Now()
	lastFrameTime := startTime

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			deltaTime := time.Since(lastFrameTime)
			lastFrameTime = time.Now()

			app.BeginFrame()
			input.step()

			updateStart := time.Now()
			app.Tick(deltaTime.Seconds())
			report.UpdateTime.Samples = append(report.UpdateTime.Samples, time.Since(updateStart))
			report.TotalUpdates++
		}
	}

	report.TotalTime = time.Since(startTime)
	report.UpdateTime.Finalize()
	report.Systems = app.Stats().Systems
	runtime.ReadMemStats(&report.MemStatsEnd)

	zlog.Info("simulation finished", zap.Int64("updates", report.TotalUpdates))

	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		zlog.Error("generate report", zap.Error(err))
		_ = zlog.Sync()
		os.Exit(1)
	}
	fmt.Println("--- End of Report ---")
}

// randomInput toggles camera keys and moves the cursor every tick.
type randomInput struct {
	rng      *rand.Rand
	keyboard *engine.Keyboard
	window   *engine.Window
}

var stressKeys = []engine.KeyCode{
	engine.KeyArrowLeft, engine.KeyArrowRight, engine.KeyArrowUp, engine.KeyArrowDown,
	engine.KeyShiftLeft, engine.KeyShiftRight,
	engine.KeySuperLeft, engine.KeySuperRight,
	engine.KeyAltLeft, engine.KeyAltRight,
	engine.KeyBracketLeft, engine.KeyBracketRight,
}

func newRandomInput(app *engine.App, rng *rand.Rand) *randomInput {
	return &randomInput{
		rng:      rng,
		keyboard: engine.Resource[engine.Keyboard](app),
		window:   engine.Resource[engine.Window](app),
	}
}

func (in *randomInput) step() {
	key := stressKeys[in.rng.IntN(len(stressKeys))]
	if in.keyboard.Pressed(key) {
		in.keyboard.Release(key)
	} else {
		in.keyboard.Press(key)
	}

	// Leave the window about a quarter of the time.
	x := in.rng.Float64()*float64(in.window.Width)*1.25 - float64(in.window.Width)*0.125
	y := in.rng.Float64() * float64(in.window.Height)
	if in.window.Contains(x, y) {
		in.window.SetCursorPosition(x, y)
	} else {
		in.window.ClearCursorPosition()
	}
}
