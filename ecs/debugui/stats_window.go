package debugui

import (
	"fmt"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/ecsdemos/ecs"
)

// StatsWindow shows entity counts, frame times and per-system timings.
type StatsWindow struct {
	storage   *ecs.Storage
	scheduler func() *ecs.SchedulerStats

	frameHistory []float32
	frameIndex   int
}

// NewStatsWindow keeps historyFrames frame times for the graph. scheduler may
// be nil when no per-system timings are available.
func NewStatsWindow(storage *ecs.Storage, scheduler func() *ecs.SchedulerStats, historyFrames int) *StatsWindow {
	return &StatsWindow{
		storage:      storage,
		scheduler:    scheduler,
		frameHistory: make([]float32, max(historyFrames, 1)),
	}
}

// Item wraps the window for spawning.
func (w *StatsWindow) Item(deltaTime func() float64) ImguiItem {
	return ImguiItem{Render: func() { w.Render(float32(deltaTime())) }}
}

func (w *StatsWindow) Render(deltaTime float32) {
	w.frameHistory[w.frameIndex] = deltaTime * 1000
	w.frameIndex = (w.frameIndex + 1) % len(w.frameHistory)

	if !imgui.BeginV("ECS Stats", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}
	defer imgui.End()

	stats := w.storage.CollectStats()
	imgui.Text(fmt.Sprintf("Entities: %d  Archetypes: %d  Singletons: %d",
		stats.TotalEntityCount, stats.ArchetypeCount, stats.SingletonCount))

	var avg float32
	for _, ft := range w.frameHistory {
		avg += ft
	}
	avg /= float32(len(w.frameHistory))
	if avg > 0 {
		imgui.Text(fmt.Sprintf("Frame: %.2f ms (%.0f FPS)", avg, 1000/avg))
	}
	imgui.PlotLinesFloatPtr("##frametime", &w.frameHistory[0], int32(len(w.frameHistory)))

	imgui.Separator()
	if w.scheduler != nil && imgui.TreeNodeStr("Systems") {
		w.renderSystems(w.scheduler())
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Archetypes") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("archetypes", 3, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("ID")
			imgui.TableSetupColumn("Components")
			imgui.TableSetupColumn("Entities")
			imgui.TableHeadersRow()
			for _, arch := range stats.ArchetypeBreakdown {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%08x", arch.ID))
				imgui.TableNextColumn()
				imgui.Text(strings.Join(arch.ComponentTypes, ", "))
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", arch.EntityCount))
			}
			imgui.EndTable()
		}
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Singletons") {
		for _, name := range stats.SingletonTypes {
			imgui.BulletText(name)
		}
		imgui.TreePop()
	}
}

func (w *StatsWindow) renderSystems(stats *ecs.SchedulerStats) {
	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
	if !imgui.BeginTableV("systems", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
		return
	}
	imgui.TableSetupColumn("System")
	imgui.TableSetupColumn("Runs")
	imgui.TableSetupColumn("Last")
	imgui.TableSetupColumn("Avg")
	imgui.TableHeadersRow()
	for _, s := range stats.Systems {
		imgui.TableNextRow()
		imgui.TableNextColumn()
		imgui.Text(s.Name)
		imgui.TableNextColumn()
		imgui.Text(fmt.Sprintf("%d", s.ExecutionCount))
		imgui.TableNextColumn()
		imgui.Text(s.LastDuration.String())
		imgui.TableNextColumn()
		imgui.Text(s.AvgDuration.String())
	}
	imgui.EndTable()
}
