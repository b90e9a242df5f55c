package system

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/hopper/common"
	"github.com/milk9111/hopper/ecs"
	"github.com/milk9111/hopper/ecs/component"
	"golang.org/x/image/colornames"
)

// FrameSource returns the decoded frames of a clip, nil when it has none.
type FrameSource interface {
	Frames(clip string) []*ebiten.Image
}

var (
	backgroundColor = colornames.Midnightblue
	borderColor     = colornames.Slategray
	obstacleColor   = colornames.Peru
	groundColor     = colornames.Saddlebrown
	targetColor     = colornames.Gold
	playerColor     = colornames.Tomato
)

type RenderSystem struct {
	frames FrameSource
}

func NewRenderSystem(frames FrameSource) *RenderSystem {
	return &RenderSystem{frames: frames}
}

// Update is a no-op; RenderSystem only draws.
func (r *RenderSystem) Update(*ecs.World) {}

// Draw paints the level and the player. The player is drawn between its
// previous and current position by alpha.
func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image, alpha float64) {
	if r == nil || w == nil || screen == nil {
		return
	}

	screen.Fill(borderColor)
	if _, lb, ok := ecs.First(w, component.LevelBoundsComponent); ok {
		fillRect(screen, lb.Rect, backgroundColor)
	} else {
		screen.Fill(backgroundColor)
	}

	ecs.ForEach(w, component.ObstacleComponent, func(e ecs.Entity, o *component.Obstacle) {
		c := obstacleColor
		if ecs.Has(w, e, component.GroundTagComponent) {
			c = groundColor
		}
		fillRect(screen, o.Rect, c)
	})

	ecs.ForEach(w, component.TargetComponent, func(_ ecs.Entity, t *component.Target) {
		fillRect(screen, t.Rect, targetColor)
	})

	ecs.ForEach2(w, component.BodyComponent, component.AnimationComponent, func(_ ecs.Entity, body *component.Body, anim *component.Animation) {
		x := common.Lerp(body.PrevPosition.X, body.Position.X, alpha)
		y := common.Lerp(body.PrevPosition.Y, body.Position.Y, alpha)

		img := r.frame(anim)
		if img == nil {
			fillRect(screen, common.Rect{X: x, Y: y, Width: body.Size.X, Height: body.Size.Y}, playerColor)
			return
		}

		imgW := float64(img.Bounds().Dx())
		imgH := float64(img.Bounds().Dy())
		sx := body.Size.X / imgW
		sy := body.Size.Y / imgH

		op := &ebiten.DrawImageOptions{}
		if anim.FlipX {
			op.GeoM.Scale(-1, 1)
			op.GeoM.Translate(imgW, 0)
		}
		op.GeoM.Scale(sx, sy)
		op.GeoM.Translate(x, y)
		screen.DrawImage(img, op)
	})
}

// frame returns the current clip frame, or nil when the clip is empty.
func (r *RenderSystem) frame(anim *component.Animation) *ebiten.Image {
	if r.frames == nil {
		return nil
	}
	frames := r.frames.Frames(anim.State.String())
	if len(frames) == 0 {
		return nil
	}
	return frames[anim.Frame%len(frames)]
}

func fillRect(screen *ebiten.Image, r common.Rect, c color.Color) {
	vector.FillRect(screen, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), c, false)
}
