package system

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/hopper/common"
	"github.com/milk9111/hopper/ecs"
	"github.com/milk9111/hopper/ecs/component"
	"golang.org/x/image/colornames"
)

// DrawCollisionDebug outlines every obstacle and player box.
func DrawCollisionDebug(w *ecs.World, screen *ebiten.Image) {
	if w == nil || screen == nil {
		return
	}
	ecs.ForEach(w, component.ObstacleComponent, func(_ ecs.Entity, o *component.Obstacle) {
		strokeRect(screen, o.Rect, colornames.Lime)
	})
	ecs.ForEach2(w, component.PlayerComponent, component.BodyComponent, func(_ ecs.Entity, p *component.Player, body *component.Body) {
		c := colornames.Red
		if p.OnGround {
			c = colornames.Cyan
		}
		strokeRect(screen, body.Rect(), c)
	})
}

func DrawPlayerStateDebug(w *ecs.World, screen *ebiten.Image) {
	if w == nil || screen == nil {
		return
	}
	ecs.ForEach3(w, component.PlayerComponent, component.BodyComponent, component.AnimationComponent, func(_ ecs.Entity, p *component.Player, body *component.Body, anim *component.Animation) {
		text := fmt.Sprintf("Anim: %s (%d)\nGrounded: %v  Jumping: %v  DoubleJump: %v\nDashing: %v  Cooldown: %d\nPos: %.1f, %.1f\nVel: %.2f, %.2f",
			anim.State, anim.Frame,
			p.OnGround, p.Jumping, p.DoubleJumpUsed,
			p.Dashing, p.DashCooldown,
			body.Position.X, body.Position.Y,
			body.Velocity.X, body.Velocity.Y,
		)
		ebitenutil.DebugPrintAt(screen, text, 16, 40)
	})
}

func strokeRect(screen *ebiten.Image, r common.Rect, c color.Color) {
	vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), 1, c, false)
}
