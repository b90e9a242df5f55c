package system

import (
	"github.com/milk9111/hopper/common"
	"github.com/milk9111/hopper/ecs"
	"github.com/milk9111/hopper/ecs/component"
	"github.com/milk9111/hopper/ecs/entity"
	"github.com/milk9111/hopper/levels"
	"go.uber.org/zap"
)

// LevelSystem replaces the level with a generated one whenever a target was
// reached this tick or a ReloadRequest is pending.
type LevelSystem struct {
	gen    *levels.Generator
	logger *zap.Logger
}

func NewLevelSystem(gen *levels.Generator, logger *zap.Logger) *LevelSystem {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LevelSystem{gen: gen, logger: logger}
}

func (ls *LevelSystem) Update(w *ecs.World) {
	if ls == nil || w == nil || ls.gen == nil {
		return
	}
	var requests []ecs.Entity
	ecs.ForEach(w, component.ReloadRequestComponent, func(e ecs.Entity, _ *component.ReloadRequest) {
		requests = append(requests, e)
	})
	for _, e := range requests {
		ecs.DestroyEntity(w, e)
	}
	if len(requests) == 0 && !w.Events().Has(ecs.EventTargetReached) {
		return
	}

	var avoid common.Rect
	if _, body, ok := ecs.First(w, component.BodyComponent); ok {
		avoid = body.Rect()
	}
	if err := ls.Spawn(w, ls.gen.Generate(avoid)); err != nil {
		ls.logger.Error("spawn generated level", zap.Error(err))
	}
}

// Spawn destroys the current level entities and creates lvl in their place.
// Each spawn counts toward the players' Score.Levels.
func (ls *LevelSystem) Spawn(w *ecs.World, lvl *levels.Layout) error {
	removed := entity.ClearLevel(w)
	if err := entity.SpawnLevel(w, lvl); err != nil {
		return err
	}

	ecs.ForEach(w, component.ScoreComponent, func(_ ecs.Entity, score *component.Score) {
		score.Levels++
	})

	logger := ls.logger
	if logger == nil {
		logger = zap.NewNop()
	}
	logger.Info("level spawned",
		zap.String("name", lvl.Name),
		zap.Int("obstacles", len(lvl.Obstacles)),
		zap.Int("removed", removed),
	)
	return nil
}
