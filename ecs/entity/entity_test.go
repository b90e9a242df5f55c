package entity

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/hopper/common"
	"github.com/milk9111/hopper/ecs"
	"github.com/milk9111/hopper/ecs/component"
	"github.com/milk9111/hopper/levels"
)

func testTuning() component.Tuning {
	return component.Tuning{Width: 32, Height: 32, SpawnX: 100, SpawnY: 500, MaxVelocity: 5}
}

func TestNewPlayerStartsAtSpawn(t *testing.T) {
	w := ecs.NewWorld()
	e, err := NewPlayer(w, testTuning())
	if err != nil {
		t.Fatalf("NewPlayer: %v", err)
	}

	body, ok := ecs.Get(w, e, component.BodyComponent)
	if !ok {
		t.Fatalf("expected body")
	}
	if body.Position != (cp.Vector{X: 100, Y: 500}) || body.Velocity != (cp.Vector{}) {
		t.Fatalf("unexpected body %+v", body)
	}
	if body.Size != (cp.Vector{X: 32, Y: 32}) {
		t.Fatalf("unexpected size %+v", body.Size)
	}

	p, _ := ecs.Get(w, e, component.PlayerComponent)
	if p.OnGround || p.Jumping || p.Dashing || p.DoubleJumpUsed || p.DashCooldown != 0 {
		t.Fatalf("expected cleared flags, got %+v", p)
	}
	anim, _ := ecs.Get(w, e, component.AnimationComponent)
	if anim.State != component.AnimIdle {
		t.Fatalf("expected Idle, got %s", anim.State)
	}
	for name, ok := range map[string]bool{
		"tag":   ecs.Has(w, e, component.PlayerTagComponent),
		"input": ecs.Has(w, e, component.InputComponent),
		"score": ecs.Has(w, e, component.ScoreComponent),
	} {
		if !ok {
			t.Fatalf("expected %s component", name)
		}
	}
}

func TestRespawnPlayer(t *testing.T) {
	w := ecs.NewWorld()
	e, err := NewPlayer(w, testTuning())
	if err != nil {
		t.Fatalf("NewPlayer: %v", err)
	}
	p, _ := ecs.Get(w, e, component.PlayerComponent)
	body, _ := ecs.Get(w, e, component.BodyComponent)
	score, _ := ecs.Get(w, e, component.ScoreComponent)
	anim, _ := ecs.Get(w, e, component.AnimationComponent)

	p.Dashing = true
	p.DashCooldown = 40
	body.Position = cp.Vector{X: 400, Y: 20}
	body.Velocity = cp.Vector{X: 3, Y: -2}
	score.Points = 4
	anim.Set(component.AnimFallDown)

	if !RespawnPlayer(w, e) {
		t.Fatalf("RespawnPlayer returned false")
	}
	if p.Dashing || p.DashCooldown != 0 || p.Tuning.MaxVelocity != 5 {
		t.Fatalf("expected reset player keeping tuning, got %+v", p)
	}
	if body.Position != (cp.Vector{X: 100, Y: 500}) || body.Velocity != (cp.Vector{}) {
		t.Fatalf("expected body at spawn, got %+v", body)
	}
	if score.Points != 4 {
		t.Fatalf("respawn must keep the score")
	}
	if anim.State != component.AnimIdle {
		t.Fatalf("expected Idle after respawn")
	}

	if RespawnPlayer(w, ecs.CreateEntity(w)) {
		t.Fatalf("expected false for an entity without a player")
	}
}

func TestSpawnAndClearLevel(t *testing.T) {
	w := ecs.NewWorld()
	if _, err := NewLevelBounds(w, common.Rect{X: 10, Y: 10, Width: 780, Height: 590}); err != nil {
		t.Fatalf("NewLevelBounds: %v", err)
	}
	target := common.Rect{X: 240, Y: 180, Width: 20, Height: 20}
	lvl := &levels.Layout{
		Ground: common.Rect{X: 0, Y: 560, Width: 800, Height: 40},
		Obstacles: []common.Rect{
			{X: 300, Y: 450, Width: 100, Height: 20},
			{X: 500, Y: 300, Width: 100, Height: 20},
		},
		Target: &target,
	}
	if err := SpawnLevel(w, lvl); err != nil {
		t.Fatalf("SpawnLevel: %v", err)
	}

	orders := map[int]bool{}
	grounds := 0
	ecs.ForEach(w, component.ObstacleComponent, func(e ecs.Entity, o *component.Obstacle) {
		if ecs.Has(w, e, component.GroundTagComponent) {
			grounds++
			return
		}
		orders[o.Order] = true
	})
	if grounds != 1 || !orders[0] || !orders[1] {
		t.Fatalf("unexpected obstacles: grounds=%d orders=%v", grounds, orders)
	}

	if n := ClearLevel(w); n != 4 {
		t.Fatalf("expected 4 level entities cleared, got %d", n)
	}
	if _, _, ok := ecs.First(w, component.ObstacleComponent); ok {
		t.Fatalf("expected no obstacles after clear")
	}
	if _, _, ok := ecs.First(w, component.LevelBoundsComponent); !ok {
		t.Fatalf("bounds must survive a level clear")
	}

	if err := SpawnLevel(w, nil); err == nil {
		t.Fatalf("expected error for nil layout")
	}
}
