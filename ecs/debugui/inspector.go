package debugui

import (
	"fmt"
	"reflect"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/ecsdemos/ecs"
)

// Inspector lists every archetype's entities and shows their component fields.
// Numeric and bool fields are editable in place.
type Inspector struct {
	storage *ecs.Storage
	// MaxEntities caps the rows drawn per archetype.
	MaxEntities int
}

func NewInspector(storage *ecs.Storage) *Inspector {
	return &Inspector{storage: storage, MaxEntities: 100}
}

func (in *Inspector) Item() ImguiItem {
	return ImguiItem{Render: in.Render}
}

func (in *Inspector) Render() {
	if !imgui.BeginV("Entities", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}
	defer imgui.End()

	for _, arch := range in.storage.Archetypes() {
		if arch.Len() == 0 {
			continue
		}
		if !imgui.TreeNodeStr(fmt.Sprintf("%08x (%d)###arch%d", arch.ID(), arch.Len(), arch.ID())) {
			continue
		}
		shown := 0
		for id := range arch.Iter() {
			if shown == in.MaxEntities {
				imgui.Text(fmt.Sprintf("... %d more", arch.Len()-shown))
				break
			}
			shown++
			if imgui.TreeNodeStr(id.String()) {
				for _, typ := range arch.Types() {
					in.renderComponent(id, typ)
				}
				imgui.TreePop()
			}
		}
		imgui.TreePop()
	}
}

func (in *Inspector) renderComponent(id ecs.EntityId, typ reflect.Type) {
	component := in.storage.GetComponent(id, typ)
	if component == nil {
		return
	}
	val := reflect.ValueOf(component).Elem()
	if val.Kind() != reflect.Struct || val.NumField() == 0 {
		imgui.BulletText(typ.String())
		return
	}
	if !imgui.TreeNodeStr(typ.String()) {
		return
	}
	for i := range val.NumField() {
		field := typ.Field(i)
		if !field.IsExported() {
			continue
		}
		renderField(id.String()+typ.String()+field.Name, field.Name, val.Field(i))
	}
	imgui.TreePop()
}

func renderField(key, name string, val reflect.Value) {
	label := name + "##" + key
	switch val.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v := int32(val.Int())
		if imgui.InputInt(label, &v) {
			val.SetInt(int64(v))
		}
	case reflect.Float32, reflect.Float64:
		v := float32(val.Float())
		if imgui.InputFloat(label, &v) {
			val.SetFloat(float64(v))
		}
	case reflect.Bool:
		v := val.Bool()
		if imgui.Checkbox(label, &v) {
			val.SetBool(v)
		}
	case reflect.String:
		imgui.Text(fmt.Sprintf("%s: %q", name, val.String()))
	default:
		imgui.Text(fmt.Sprintf("%s: %v", name, val.Interface()))
	}
}
