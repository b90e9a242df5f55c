package component

// AnimState names the player's animation clips. The clip folder for a state
// is frames/<String()>.
type AnimState int

const (
	AnimIdle AnimState = iota
	AnimRun
	AnimJump
	AnimApex
	AnimFallDown
	AnimFallUp
	AnimLanding
)

var animStateNames = [...]string{
	AnimIdle:     "Idle",
	AnimRun:      "Run",
	AnimJump:     "Jump",
	AnimApex:     "Apex",
	AnimFallDown: "FallDown",
	AnimFallUp:   "FallUp",
	AnimLanding:  "Landing",
}

func (s AnimState) String() string {
	if s < 0 || int(s) >= len(animStateNames) {
		return "Unknown"
	}
	return animStateNames[s]
}

// AnimStates lists every state in declaration order.
func AnimStates() []AnimState {
	return []AnimState{AnimIdle, AnimRun, AnimJump, AnimApex, AnimFallDown, AnimFallUp, AnimLanding}
}

// ClipNames returns the clip folder name of every state.
func ClipNames() []string {
	states := AnimStates()
	names := make([]string, len(states))
	for i, s := range states {
		names[i] = s.String()
	}
	return names
}

type Animation struct {
	State      AnimState
	Frame      int
	FrameTimer int
	FlipX      bool
}

var AnimationComponent = NewComponent[Animation]("animation")

// Set switches to state. Changing state rewinds playback; setting the current
// state is a no-op. It reports whether the state changed.
func (a *Animation) Set(state AnimState) bool {
	if a.State == state {
		return false
	}
	a.State = state
	a.Frame = 0
	a.FrameTimer = 0
	return true
}

// Advance steps playback by one tick for a looping clip of frameCount frames,
// moving to the next frame every framesPerTick ticks. An empty clip keeps the
// current frame index.
func (a *Animation) Advance(frameCount, framesPerTick int) {
	if frameCount <= 0 {
		return
	}
	if framesPerTick < 1 {
		framesPerTick = 1
	}
	a.FrameTimer++
	if a.FrameTimer >= framesPerTick {
		a.FrameTimer = 0
		a.Frame++
	}
	a.Frame %= frameCount
}
