package system

import (
	"github.com/milk9111/hopper/ecs"
	"github.com/milk9111/hopper/ecs/component"
	"github.com/milk9111/hopper/ecs/entity"
)

type RespawnSystem struct{}

func NewRespawnSystem() *RespawnSystem { return &RespawnSystem{} }

// Update handles pending respawn requests. Players whose body dropped below
// the level bounds are respawned too.
func (s *RespawnSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	var bottom float64
	_, lb, hasBounds := ecs.First(w, component.LevelBoundsComponent)
	if hasBounds {
		bottom = lb.Rect.Bottom()
	}

	var pending []ecs.Entity
	ecs.ForEach2(w, component.PlayerTagComponent, component.BodyComponent, func(e ecs.Entity, _ *component.PlayerTag, body *component.Body) {
		if ecs.Has(w, e, component.RespawnRequestComponent) || (hasBounds && body.Position.Y > bottom) {
			pending = append(pending, e)
		}
	})

	for _, e := range pending {
		entity.RespawnPlayer(w, e)
		ecs.Remove(w, e, component.RespawnRequestComponent)
	}
}
