package system

import (
	"github.com/milk9111/hopper/ecs"
	"github.com/milk9111/hopper/ecs/component"
)

// FrameCounter reports how many frames a clip has loaded.
type FrameCounter interface {
	FrameCount(clip string) int
}

type AnimationSystem struct {
	frames FrameCounter
}

// NewAnimationSystem plays clips whose lengths come from frames. A nil
// counter treats every clip as empty.
func NewAnimationSystem(frames FrameCounter) *AnimationSystem {
	return &AnimationSystem{frames: frames}
}

func (a *AnimationSystem) Update(w *ecs.World) {
	if a == nil || w == nil {
		return
	}

	ecs.ForEach3(w, component.PlayerComponent, component.BodyComponent, component.AnimationComponent, func(_ ecs.Entity, p *component.Player, body *component.Body, anim *component.Animation) {
		anim.Set(SelectAnimation(anim.State, p, body))
		anim.FlipX = body.Velocity.X < 0

		count := 0
		if a.frames != nil {
			count = a.frames.FrameCount(anim.State.String())
		}
		anim.Advance(count, p.Tuning.FramesPerTick)
	})
}

// SelectAnimation picks the clip for the player's movement flags. Airborne
// jumps go by vertical speed, grounded players by horizontal speed; anything
// else keeps prev.
func SelectAnimation(prev component.AnimState, p *component.Player, body *component.Body) component.AnimState {
	vx, vy := body.Velocity.X, body.Velocity.Y
	switch {
	case p.Jumping:
		switch {
		case vy > 0:
			return component.AnimFallDown
		case vy < 0:
			return component.AnimFallUp
		}
		return component.AnimApex
	case p.OnGround:
		if vx == 0 {
			return component.AnimIdle
		}
		return component.AnimRun
	}
	return prev
}
