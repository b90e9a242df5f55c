package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/hopper/ecs"
	"github.com/milk9111/hopper/ecs/component"
)

const stickDeadzone = 0.35

// Source produces one held-button snapshot per tick.
type Source interface {
	Poll() component.Input
}

// SourceFunc adapts a function to Source.
type SourceFunc func() component.Input

func (f SourceFunc) Poll() component.Input {
	return f()
}

// KeyboardSource reads the keyboard and the first standard gamepad.
type KeyboardSource struct{}

func (KeyboardSource) Poll() component.Input {
	in := component.Input{
		Left:  ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right: ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		Up:    ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		Down:  ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown),
		Jump:  ebiten.IsKeyPressed(ebiten.KeySpace),
		Dash:  ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight),
	}

	if gamepads := ebiten.AppendGamepadIDs(nil); len(gamepads) > 0 {
		id := gamepads[0]
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			return in
		}
		x := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		y := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)

		in.Left = in.Left || x < -stickDeadzone || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftLeft)
		in.Right = in.Right || x > stickDeadzone || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftRight)
		in.Up = in.Up || y < -stickDeadzone || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftTop)
		in.Down = in.Down || y > stickDeadzone || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftBottom)
		in.Jump = in.Jump || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonRightBottom)
		in.Dash = in.Dash || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonRightRight) ||
			ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonFrontBottomRight)
	}

	return in
}

// InputSystem copies one snapshot per tick into every player's Input.
type InputSystem struct {
	source Source
}

// NewInputSystem reads from src, or the keyboard when src is nil.
func NewInputSystem(src Source) *InputSystem {
	i := &InputSystem{}
	i.SetSource(src)
	return i
}

func (i *InputSystem) SetSource(src Source) {
	if src == nil {
		src = KeyboardSource{}
	}
	i.source = src
}

func (i *InputSystem) Update(w *ecs.World) {
	if i == nil || w == nil {
		return
	}

	in := i.source.Poll()
	ecs.ForEach2(w, component.PlayerTagComponent, component.InputComponent, func(_ ecs.Entity, _ *component.PlayerTag, input *component.Input) {
		*input = in
	})
}
