// Package debugui draws Dear ImGui debug windows for an ECS storage.
//
// Windows are ordinary components: spawn an entity holding an ImguiItem and
// ImguiSystem queues its Render func on the frame's command buffer, so it runs
// after every other system of the frame and inside the host's ImGui frame.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/ecsdemos/ecs"
)

// ImguiItem holds a function that issues ImGui calls once per frame.
type ImguiItem struct {
	Render func()
}

// ImguiInputState reports whether ImGui wants this frame's mouse or keyboard.
// Hosts read it to avoid feeding captured input to the game.
type ImguiInputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// ImguiSystem refreshes ImguiInputState and defers every ImguiItem render.
type ImguiSystem struct {
	Items      ecs.Query[struct{ *ImguiItem }]
	InputState ecs.Singleton[ImguiInputState]
}

func (i *ImguiSystem) Execute(frame *ecs.UpdateFrame) {
	if state := i.InputState.Get(); state != nil {
		io := imgui.CurrentIO()
		state.WantCaptureMouse = io.WantCaptureMouse()
		state.WantCaptureKeyboard = io.WantCaptureKeyboard()
	}

	for item := range i.Items.Iter() {
		if item.Render != nil {
			frame.Commands.Defer(item.Render)
		}
	}
}

// Register registers the package's components and inserts ImguiInputState.
func Register(registry *ecs.ComponentRegistry, storage *ecs.Storage) {
	ecs.RegisterComponent[ImguiItem](registry)
	ecs.NewSingleton[ImguiInputState](storage)
}
