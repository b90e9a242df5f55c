package entity

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/hopper/ecs"
	"github.com/milk9111/hopper/ecs/component"
)

// NewPlayer creates the player at its spawn point: zero velocity, airborne,
// no dash or jump in progress, Idle animation.
func NewPlayer(w *ecs.World, tuning component.Tuning) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)

	spawn := cp.Vector{X: tuning.SpawnX, Y: tuning.SpawnY}
	body := &component.Body{
		Position:     spawn,
		PrevPosition: spawn,
		Size:         cp.Vector{X: tuning.Width, Y: tuning.Height},
	}

	if err := ecs.Add(w, e, component.PlayerTagComponent, &component.PlayerTag{}); err != nil {
		return 0, fmt.Errorf("player: add tag: %w", err)
	}
	if err := ecs.Add(w, e, component.PlayerComponent, &component.Player{Tuning: tuning}); err != nil {
		return 0, fmt.Errorf("player: add player: %w", err)
	}
	if err := ecs.Add(w, e, component.BodyComponent, body); err != nil {
		return 0, fmt.Errorf("player: add body: %w", err)
	}
	if err := ecs.Add(w, e, component.InputComponent, &component.Input{}); err != nil {
		return 0, fmt.Errorf("player: add input: %w", err)
	}
	if err := ecs.Add(w, e, component.AnimationComponent, &component.Animation{State: component.AnimIdle}); err != nil {
		return 0, fmt.Errorf("player: add animation: %w", err)
	}
	if err := ecs.Add(w, e, component.ScoreComponent, &component.Score{}); err != nil {
		return 0, fmt.Errorf("player: add score: %w", err)
	}
	return e, nil
}

// RespawnPlayer puts the player back at its spawn point with cleared state,
// keeping the score.
func RespawnPlayer(w *ecs.World, e ecs.Entity) bool {
	p, ok := ecs.Get(w, e, component.PlayerComponent)
	if !ok {
		return false
	}
	body, ok := ecs.Get(w, e, component.BodyComponent)
	if !ok {
		return false
	}
	p.Reset()
	spawn := cp.Vector{X: p.Tuning.SpawnX, Y: p.Tuning.SpawnY}
	body.Position = spawn
	body.PrevPosition = spawn
	body.Velocity = cp.Vector{}
	if anim, ok := ecs.Get(w, e, component.AnimationComponent); ok {
		*anim = component.Animation{State: component.AnimIdle}
	}
	return true
}
