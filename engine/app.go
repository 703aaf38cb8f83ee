package engine

import (
	"context"
	"time"

	"github.com/plus3/ecsdemos/ecs"
)

// Schedule selects when a system runs.
type Schedule int

const (
	// Startup systems run once, before the first Update.
	Startup Schedule = iota
	// Update systems run every tick.
	Update
)

func (s Schedule) String() string {
	switch s {
	case Startup:
		return "Startup"
	case Update:
		return "Update"
	default:
		return "Schedule(?)"
	}
}

// Plugin bundles registrations that belong together.
type Plugin interface {
	Build(app *App)
}

// PluginFunc adapts a function to Plugin.
type PluginFunc func(app *App)

func (f PluginFunc) Build(app *App) {
	f(app)
}

// Runner drives an App until it decides to stop.
type Runner interface {
	Run(app *App) error
}

// App ties a storage to its Startup and Update schedules.
type App struct {
	registry *ecs.ComponentRegistry
	storage  *ecs.Storage
	startup  *ecs.Scheduler
	update   *ecs.Scheduler
	started  bool
}

// NewApp creates an empty App. Built-in components and resources come from
// DefaultPlugins.
func NewApp() *App {
	registry := ecs.NewComponentRegistry()
	storage := ecs.NewStorage(registry)
	return &App{
		registry: registry,
		storage:  storage,
		startup:  ecs.NewScheduler(storage),
		update:   ecs.NewScheduler(storage),
	}
}

// RegisterComponent makes T spawnable in app.
func RegisterComponent[T any](app *App) {
	ecs.RegisterComponent[T](app.registry)
}

// Resource returns the app's singleton of type T, or nil.
func Resource[T any](app *App) *T {
	var out *T
	if !app.storage.ReadSingleton(&out) {
		return nil
	}
	return out
}

// AddPlugins builds each plugin in order.
func (a *App) AddPlugins(plugins ...Plugin) *App {
	for _, p := range plugins {
		p.Build(a)
	}
	return a
}

// AddSystems registers systems on the given schedule, in order.
func (a *App) AddSystems(schedule Schedule, systems ...ecs.System) *App {
	s := a.scheduler(schedule)
	for _, system := range systems {
		s.Register(system)
	}
	return a
}

// AddSystemFunc registers a function system under name.
func (a *App) AddSystemFunc(schedule Schedule, name string, fn func(frame *ecs.UpdateFrame)) *App {
	a.scheduler(schedule).RegisterNamed(name, ecs.SystemFunc(fn))
	return a
}

// InsertResource stores value as a singleton, replacing any existing one of the same type.
func (a *App) InsertResource(value any) *App {
	a.storage.AddSingleton(value)
	return a
}

func (a *App) scheduler(schedule Schedule) *ecs.Scheduler {
	switch schedule {
	case Startup:
		return a.startup
	case Update:
		return a.update
	default:
		panic("unknown schedule " + schedule.String())
	}
}

// Storage exposes the underlying world.
func (a *App) Storage() *ecs.Storage {
	return a.storage
}

// Started reports whether the Startup schedule has run.
func (a *App) Started() bool {
	return a.started
}

// Startup runs the Startup schedule. Calling it again is a no-op.
func (a *App) Startup() {
	if a.started {
		return
	}
	a.started = true
	a.startup.Once(0)
}

// Tick runs one Update pass, running Startup first if it has not happened yet.
func (a *App) Tick(dt float64) {
	a.Startup()
	a.update.Once(dt)
}

// BeginFrame drops per-frame input state (just pressed/released buttons and
// queued events) so a host can record the next frame's input.
func (a *App) BeginFrame() {
	if kb := Resource[Keyboard](a); kb != nil {
		kb.Clear()
	}
	if mb := Resource[MouseButtons](a); mb != nil {
		mb.Clear()
	}
	if ev := Resource[Events[FileDragAndDrop]](a); ev != nil {
		ev.Clear()
	}
}

// Stats returns scheduler statistics for the Update schedule.
func (a *App) Stats() *ecs.SchedulerStats {
	return a.update.GetStats()
}

// Run hands the app to a runner.
func (a *App) Run(runner Runner) error {
	return runner.Run(a)
}

// RunOnce is a Runner that runs Startup and a single Update, then returns.
type RunOnce struct{}

func (RunOnce) Run(app *App) error {
	app.Tick(0)
	return nil
}

// RunFor is a headless Runner that ticks at a fixed interval until Context is done.
// A nil Context runs until the process exits.
type RunFor struct {
	Context  context.Context
	Interval time.Duration
}

func (r RunFor) Run(app *App) error {
	ctx := r.Context
	if ctx == nil {
		ctx = context.Background()
	}
	interval := r.Interval
	if interval <= 0 {
		interval = time.Second / 60
	}

	app.Startup()
	app.update.Run(ctx, interval)
	return nil
}
