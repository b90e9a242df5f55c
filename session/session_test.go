package session

import (
	"testing"

	"github.com/milk9111/hopper/config"
	"github.com/milk9111/hopper/ecs"
	"github.com/milk9111/hopper/ecs/component"
	"github.com/milk9111/hopper/ecs/system"
	"github.com/milk9111/hopper/prefabs"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

var idle = system.SourceFunc(func() component.Input { return component.Input{} })

func held(in component.Input) system.Source {
	return system.SourceFunc(func() component.Input { return in })
}

func newTestSession(t *testing.T, cfg *config.Config) *Session {
	t.Helper()
	spec, err := prefabs.LoadPlayerSpec()
	if err != nil {
		t.Fatalf("LoadPlayerSpec: %v", err)
	}
	s, err := New(cfg, spec.Tuning(), nil, zap.NewNop())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func playerState(t *testing.T, s *Session) (*component.Player, *component.Body) {
	t.Helper()
	p, ok := ecs.Get(s.World(), s.Player(), component.PlayerComponent)
	if !ok {
		t.Fatalf("player component missing")
	}
	b, ok := ecs.Get(s.World(), s.Player(), component.BodyComponent)
	if !ok {
		t.Fatalf("body component missing")
	}
	return p, b
}

func stepUntilGrounded(t *testing.T, s *Session, limit int) {
	t.Helper()
	p, _ := playerState(t, s)
	for i := 0; i < limit; i++ {
		s.Step(idle)
		if p.OnGround {
			return
		}
	}
	t.Fatalf("player did not land within %d ticks", limit)
}

func TestSessionStartsOnClassicLevel(t *testing.T) {
	s := newTestSession(t, config.Default())

	score := s.Score()
	if score.Levels != 1 || score.Points != 0 {
		t.Fatalf("unexpected initial score %+v", score)
	}
	obstacles := 0
	ecs.ForEach(s.World(), component.ObstacleComponent, func(ecs.Entity, *component.Obstacle) { obstacles++ })
	if obstacles != 4 {
		t.Fatalf("expected 3 obstacles plus ground, got %d", obstacles)
	}
}

func TestSessionJumpThenLand(t *testing.T) {
	s := newTestSession(t, config.Default())
	p, b := playerState(t, s)

	stepUntilGrounded(t, s, 120)
	if b.Rect().Bottom() != 560 {
		t.Fatalf("expected to stand on the ground at 560, got %v", b.Rect().Bottom())
	}

	s.Step(held(component.Input{Jump: true}))
	if p.OnGround || !p.Jumping {
		t.Fatalf("expected jump to leave the ground, flags=%+v", p)
	}
	if b.Velocity.Y != p.Tuning.JumpVelocity {
		t.Fatalf("expected vy %v, got %v", p.Tuning.JumpVelocity, b.Velocity.Y)
	}

	anim, _ := ecs.Get(s.World(), s.Player(), component.AnimationComponent)
	if anim.State != component.AnimFallUp {
		t.Fatalf("expected FallUp after jump, got %s", anim.State)
	}

	stepUntilGrounded(t, s, 200)
	if b.Velocity.Y != 0 || p.Jumping || b.Rect().Bottom() != 560 {
		t.Fatalf("expected landing at rest, vy=%v bottom=%v", b.Velocity.Y, b.Rect().Bottom())
	}
	if anim.State != component.AnimIdle {
		t.Fatalf("expected Idle after landing, got %s", anim.State)
	}
	if s.Ticks() == 0 {
		t.Fatalf("expected tick count to advance")
	}
}

func TestSessionTargetStartsNewLevel(t *testing.T) {
	s := newTestSession(t, config.Default())
	_, target, ok := ecs.First(s.World(), component.TargetComponent)
	if !ok {
		t.Fatalf("classic level has no target")
	}
	_, b := playerState(t, s)
	b.Position.X = target.Rect.X
	b.Position.Y = target.Rect.Y - 10

	s.Step(idle)

	score := s.Score()
	if score.Points != 1 || score.Levels != 2 {
		t.Fatalf("expected one point on a second level, got %+v", score)
	}
}

func TestSessionRequests(t *testing.T) {
	s := newTestSession(t, config.Default())
	_, b := playerState(t, s)

	s.RequestNewLevel()
	s.Step(idle)
	if score := s.Score(); score.Levels != 2 || score.Points != 0 {
		t.Fatalf("expected unscored new level, got %+v", score)
	}
	if _, _, ok := ecs.First(s.World(), component.ReloadRequestComponent); ok {
		t.Fatalf("reload request must be consumed")
	}

	b.Position.X = 600
	s.RequestRespawn()
	s.Step(idle)
	if b.Position.X != 100 {
		t.Fatalf("expected respawn at x=100, got %v", b.Position.X)
	}
}

func TestSessionApplyTuning(t *testing.T) {
	s := newTestSession(t, config.Default())
	p, _ := playerState(t, s)

	tuning := p.Tuning
	tuning.Gravity = 0.8
	tuning.Width = 64
	s.ApplyTuning(tuning)

	if p.Tuning.Gravity != 0.8 {
		t.Fatalf("expected gravity 0.8, got %v", p.Tuning.Gravity)
	}
	if p.Tuning.Width != 32 {
		t.Fatalf("expected width to stay 32, got %v", p.Tuning.Width)
	}
}

func TestSessionRandomStart(t *testing.T) {
	cfg := config.Default()
	cfg.Level.Start = config.StartRandom
	cfg.Level.Seed = 5
	s := newTestSession(t, cfg)

	if _, _, ok := ecs.First(s.World(), component.GroundTagComponent); !ok {
		t.Fatalf("expected a generated ground")
	}
}

func TestSessionUnknownStartLevel(t *testing.T) {
	cfg := config.Default()
	cfg.Level.Start = "missing"
	if _, err := New(cfg, component.Tuning{Width: 32, Height: 32}, nil, nil); err == nil {
		t.Fatalf("expected error for unknown start level")
	}
}

func TestSessionCloseStopsStepping(t *testing.T) {
	s := newTestSession(t, config.Default())
	s.Step(idle)
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	s.Step(idle)
	if s.Ticks() != 1 {
		t.Fatalf("expected no ticks after Close, got %d", s.Ticks())
	}
	if err := s.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
}

func TestRequestRespawnLogsDroppedRequest(t *testing.T) {
	spec, err := prefabs.LoadPlayerSpec()
	if err != nil {
		t.Fatalf("LoadPlayerSpec: %v", err)
	}
	core, logs := observer.New(zapcore.WarnLevel)
	s, err := New(config.Default(), spec.Tuning(), nil, zap.New(core))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })

	s.RequestRespawn()
	if n := logs.Len(); n != 0 {
		t.Fatalf("expected no warnings for a live player, got %d", n)
	}

	ecs.DestroyEntity(s.World(), s.Player())
	s.RequestRespawn()
	dropped := logs.FilterMessage("respawn request dropped").All()
	if len(dropped) != 1 {
		t.Fatalf("expected one dropped-request warning, got %v", logs.All())
	}
	if err, ok := dropped[0].ContextMap()["error"].(string); !ok || err == "" {
		t.Fatalf("expected error field on warning, got %v", dropped[0].ContextMap())
	}
}
