package system

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/hopper/common"
	"github.com/milk9111/hopper/ecs"
	"github.com/milk9111/hopper/ecs/component"
)

// PhysicsSystem integrates every player body by one tick.
type PhysicsSystem struct{}

func NewPhysicsSystem() *PhysicsSystem {
	return &PhysicsSystem{}
}

func (ps *PhysicsSystem) Update(w *ecs.World) {
	if ps == nil || w == nil {
		return
	}

	ecs.ForEach3(w, component.PlayerComponent, component.BodyComponent, component.InputComponent, func(_ ecs.Entity, p *component.Player, body *component.Body, in *component.Input) {
		Integrate(p, body, *in)
	})
}

// Integrate advances the player by one tick: dash, horizontal movement,
// gravity, jumps, then position. It does not look at obstacles.
func Integrate(p *component.Player, body *component.Body, in component.Input) {
	if p == nil || body == nil {
		return
	}
	t := &p.Tuning

	jumpPressed := in.Jump && !p.PrevJump
	dashPressed := in.Dash && !p.PrevDash
	p.PrevJump = in.Jump
	p.PrevDash = in.Dash

	body.PrevPosition = body.Position

	if p.DashCooldown > 0 {
		p.DashCooldown--
	}

	if dashPressed && !p.Dashing && p.DashCooldown == 0 {
		if dir := in.Direction(); dir.X != 0 || dir.Y != 0 {
			p.Dashing = true
			p.DashDirection = dir
			p.DashElapsed = 0
			p.DashCooldown = t.DashCooldownFrames
		}
	}

	if p.Dashing {
		integrateDash(p, body)
		return
	}

	vx := body.Velocity.X
	switch move := in.MoveX(); {
	case move != 0:
		vx += move * t.Acceleration
	case math.Abs(vx) <= t.Deceleration:
		vx = 0
	default:
		vx -= common.Sign(vx) * t.Deceleration
	}
	body.Velocity.X = clampVelocity(vx, t.MaxVelocity)

	if !p.OnGround {
		body.Velocity.Y += t.Gravity
	}

	if jumpPressed {
		switch {
		case p.OnGround:
			body.Velocity.Y = t.JumpVelocity
			p.OnGround = false
			p.Jumping = true
			p.DoubleJumpUsed = false
		case !p.DoubleJumpUsed:
			body.Velocity.Y = t.JumpVelocity
			p.Jumping = true
			p.DoubleJumpUsed = true
		}
	}

	body.Position = body.Position.Add(body.Velocity)
}

// integrateDash eases the dash in linearly: speed grows with elapsed ticks
// until DashFrames, when the dash ends with no vertical speed.
func integrateDash(p *component.Player, body *component.Body) {
	t := &p.Tuning
	p.DashElapsed++

	progress := 1.0
	if t.DashFrames > 0 {
		progress = math.Min(float64(p.DashElapsed)/float64(t.DashFrames), 1)
	}
	body.Velocity = p.DashDirection.Mult(t.DashSpeed * progress)
	body.Position = body.Position.Add(body.Velocity)

	if p.DashElapsed >= t.DashFrames {
		p.Dashing = false
		p.DashDirection = cp.Vector{}
		body.Velocity.Y = 0
		body.Velocity.X = clampVelocity(body.Velocity.X, t.MaxVelocity)
	}
}

func clampVelocity(v, max float64) float64 {
	if max <= 0 {
		return v
	}
	return common.Clamp(v, -max, max)
}
