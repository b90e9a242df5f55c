package entity

import (
	"fmt"

	"github.com/milk9111/hopper/common"
	"github.com/milk9111/hopper/ecs"
	"github.com/milk9111/hopper/ecs/component"
	"github.com/milk9111/hopper/levels"
)

// SpawnLevel creates the ground, obstacle and target entities of lvl. Every
// entity is tagged LevelMember so ClearLevel can remove it.
func SpawnLevel(w *ecs.World, lvl *levels.Layout) error {
	if lvl == nil {
		return fmt.Errorf("level: spawn: %w", levels.ErrInvalidLayout)
	}

	ground := ecs.CreateEntity(w)
	if err := addLevelMember(w, ground); err != nil {
		return err
	}
	if err := ecs.Add(w, ground, component.ObstacleComponent, &component.Obstacle{Rect: lvl.Ground, Order: len(lvl.Obstacles)}); err != nil {
		return fmt.Errorf("level: add ground: %w", err)
	}
	if err := ecs.Add(w, ground, component.GroundTagComponent, &component.GroundTag{}); err != nil {
		return fmt.Errorf("level: tag ground: %w", err)
	}

	for i, r := range lvl.Obstacles {
		e := ecs.CreateEntity(w)
		if err := addLevelMember(w, e); err != nil {
			return err
		}
		if err := ecs.Add(w, e, component.ObstacleComponent, &component.Obstacle{Rect: r, Order: i}); err != nil {
			return fmt.Errorf("level: add obstacle %d: %w", i, err)
		}
	}

	if lvl.Target != nil {
		e := ecs.CreateEntity(w)
		if err := addLevelMember(w, e); err != nil {
			return err
		}
		if err := ecs.Add(w, e, component.TargetComponent, &component.Target{Rect: *lvl.Target}); err != nil {
			return fmt.Errorf("level: add target: %w", err)
		}
	}
	return nil
}

// ClearLevel destroys every LevelMember entity and returns how many there
// were.
func ClearLevel(w *ecs.World) int {
	var doomed []ecs.Entity
	ecs.ForEach(w, component.LevelMemberComponent, func(e ecs.Entity, _ *component.LevelMember) {
		doomed = append(doomed, e)
	})
	for _, e := range doomed {
		ecs.DestroyEntity(w, e)
	}
	return len(doomed)
}

// NewLevelBounds stores the playable area inside the world borders. It
// outlives level regeneration.
func NewLevelBounds(w *ecs.World, r common.Rect) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.LevelBoundsComponent, &component.LevelBounds{Rect: r}); err != nil {
		return 0, fmt.Errorf("level: add bounds: %w", err)
	}
	return e, nil
}

func addLevelMember(w *ecs.World, e ecs.Entity) error {
	if err := ecs.Add(w, e, component.LevelMemberComponent, &component.LevelMember{}); err != nil {
		return fmt.Errorf("level: tag member: %w", err)
	}
	return nil
}
