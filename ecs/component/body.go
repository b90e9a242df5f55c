package component

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/hopper/common"
)

// Body is the kinematic state of a moving box. Position is the top-left
// corner; Size never changes after creation.
type Body struct {
	Position     cp.Vector
	PrevPosition cp.Vector
	Size         cp.Vector
	Velocity     cp.Vector
}

var BodyComponent = NewComponent[Body]("body")

// Rect returns the body's AABB.
func (b *Body) Rect() common.Rect {
	return common.Rect{X: b.Position.X, Y: b.Position.Y, Width: b.Size.X, Height: b.Size.Y}
}

// SetBottom moves the body so its bottom edge sits at y.
func (b *Body) SetBottom(y float64) {
	b.Position.Y = y - b.Size.Y
}

// SetTop moves the body so its top edge sits at y.
func (b *Body) SetTop(y float64) {
	b.Position.Y = y
}
