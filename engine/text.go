package engine

import "image/color"

// Justify aligns multi-line text relative to the entity's origin.
type Justify int

const (
	JustifyLeft Justify = iota
	JustifyCenter
	JustifyRight
)

// Text2D is text drawn in world space at the entity's Transform.
type Text2D struct {
	Value   string
	Font    Handle[Font]
	Size    float64
	Color   color.RGBA
	Justify Justify
}
