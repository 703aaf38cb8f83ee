package ebitenhost

import (
	"cmp"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/plus3/ecsdemos/ecs"
	"github.com/plus3/ecsdemos/engine"
)

type cameraRow struct {
	ecs.EntityId
	*engine.Camera2D
	*engine.Transform
}

type textRow struct {
	ecs.EntityId
	*engine.Text2D
	*engine.Transform
}

type cameraQuery = ecs.Query[cameraRow]

type textQuery = ecs.Query[textRow]

func newCameraQuery(app *engine.App) *cameraQuery {
	return ecs.NewQuery[cameraRow](app.Storage())
}

func newTextQuery(app *engine.App) *textQuery {
	return ecs.NewQuery[textRow](app.Storage())
}

// activeCamera picks the camera with the lowest entity id so the choice is
// stable when several exist.
func (g *game) activeCamera() (cameraRow, bool) {
	g.cameras.Execute()
	var best cameraRow
	found := false
	for row := range g.cameras.Iter() {
		if !found || row.EntityId < best.EntityId {
			best, found = row, true
		}
	}
	return best, found
}

func (g *game) render(screen *ebiten.Image) {
	cam, ok := g.activeCamera()
	if !ok {
		screen.Fill(engine.DefaultClearColor)
		return
	}
	screen.Fill(cam.Camera2D.Background())

	g.texts.Execute()
	rows := slices.Collect(g.texts.Iter())
	slices.SortFunc(rows, func(a, b textRow) int {
		if c := cmp.Compare(a.Transform.Translation.Z(), b.Transform.Translation.Z()); c != 0 {
			return c
		}
		return cmp.Compare(a.EntityId, b.EntityId)
	})

	width, height := float64(g.window.Width), float64(g.window.Height)
	for _, row := range rows {
		affine := engine.WorldToScreen(*cam.Transform, *row.Transform, width, height)
		g.drawText(screen, row.Text2D, affine)
	}
}

func (g *game) drawText(screen *ebiten.Image, t *engine.Text2D, affine engine.Affine) {
	if t.Value == "" || t.Size <= 0 {
		return
	}
	face := &text.GoTextFace{Source: g.fonts.Get(t.Font), Size: t.Size}

	var m ebiten.GeoM
	m.SetElement(0, 0, affine[0])
	m.SetElement(0, 1, affine[1])
	m.SetElement(0, 2, affine[2])
	m.SetElement(1, 0, affine[3])
	m.SetElement(1, 1, affine[4])
	m.SetElement(1, 2, affine[5])

	op := &text.DrawOptions{}
	op.LayoutOptions.LineSpacing = t.Size * 1.2
	op.LayoutOptions.PrimaryAlign = primaryAlign(t.Justify)
	op.LayoutOptions.SecondaryAlign = text.AlignCenter
	// Glyphs are laid out Y-down; the entity's local plane is Y-up.
	op.GeoM.Scale(1, -1)
	op.GeoM.Concat(m)
	op.ColorScale.ScaleWithColor(t.Color)
	op.Filter = ebiten.FilterLinear

	text.Draw(screen, t.Value, face, op)
}

func primaryAlign(j engine.Justify) text.Align {
	switch j {
	case engine.JustifyCenter:
		return text.AlignCenter
	case engine.JustifyRight:
		return text.AlignEnd
	default:
		return text.AlignStart
	}
}
