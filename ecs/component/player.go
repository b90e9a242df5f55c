package component

import "github.com/jakecoffman/cp"

// Tuning holds the player's movement constants. Velocities are in pixels per
// tick and durations in ticks.
type Tuning struct {
	Width, Height      float64
	SpawnX, SpawnY     float64
	Gravity            float64
	JumpVelocity       float64
	Acceleration       float64
	Deceleration       float64
	MaxVelocity        float64
	DashSpeed          float64
	DashFrames         int
	DashCooldownFrames int
	FramesPerTick      int
}

// Player carries the player's tuning and movement flags.
//
// OnGround and Jumping are only both true on the tick a jump starts. While
// Dashing is set gravity and horizontal input are ignored.
type Player struct {
	Tuning Tuning

	OnGround       bool
	Jumping        bool
	DoubleJumpUsed bool

	Dashing       bool
	DashDirection cp.Vector
	DashElapsed   int
	// DashCooldown counts down from DashCooldownFrames starting at the tick
	// the last dash began. A new dash needs it at zero.
	DashCooldown int

	// held state from the previous tick, for rising-edge detection
	PrevJump bool
	PrevDash bool
}

var PlayerComponent = NewComponent[Player]("player")

// Reset clears all transient flags, keeping the tuning.
func (p *Player) Reset() {
	*p = Player{Tuning: p.Tuning}
}
