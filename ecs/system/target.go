package system

import (
	"github.com/milk9111/hopper/ecs"
	"github.com/milk9111/hopper/ecs/component"
	"go.uber.org/zap"
)

// TargetSystem scores a point when the player touches the level target and
// asks for a new level. A tick completes at most one target.
type TargetSystem struct {
	logger *zap.Logger
}

func NewTargetSystem(logger *zap.Logger) *TargetSystem {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TargetSystem{logger: logger}
}

func (ts *TargetSystem) Update(w *ecs.World) {
	if ts == nil || w == nil {
		return
	}

	ecs.ForEach3(w, component.PlayerTagComponent, component.BodyComponent, component.ScoreComponent, func(_ ecs.Entity, _ *component.PlayerTag, body *component.Body, score *component.Score) {
		if w.Events().Has(ecs.EventTargetReached) {
			return
		}
		rect := body.Rect()
		ecs.ForEach(w, component.TargetComponent, func(e ecs.Entity, target *component.Target) {
			if w.Events().Has(ecs.EventTargetReached) || !rect.Intersects(target.Rect) {
				return
			}
			score.Points++
			w.Events().Push(ecs.Event{Type: ecs.EventTargetReached, Data: e})
			ts.logger.Info("target reached",
				zap.Int("points", score.Points),
				zap.Float64("x", body.Position.X),
				zap.Float64("y", body.Position.Y),
			)
		})
	})
}
