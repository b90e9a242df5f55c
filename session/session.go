// Package session owns one running game: the ECS world, its systems, the
// player and the current level.
package session

import (
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/hopper/assets"
	"github.com/milk9111/hopper/common"
	"github.com/milk9111/hopper/config"
	"github.com/milk9111/hopper/ecs"
	"github.com/milk9111/hopper/ecs/component"
	"github.com/milk9111/hopper/ecs/entity"
	"github.com/milk9111/hopper/ecs/system"
	"github.com/milk9111/hopper/levels"
	"github.com/milk9111/hopper/prefabs"
	"go.uber.org/zap"
)

type Session struct {
	cfg    *config.Config
	logger *zap.Logger
	world  *ecs.World
	player ecs.Entity

	input  *system.InputSystem
	levels *system.LevelSystem
	render *system.RenderSystem

	watcher   *prefabs.Watcher
	tuningMod time.Time

	ticks  uint64
	closed bool
}

// New builds the world and spawns the player and the first level. clips may
// be nil, in which case every clip is empty and the player is drawn as a box.
func New(cfg *config.Config, tuning component.Tuning, clips assets.Clips, logger *zap.Logger) (*Session, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Session{
		cfg:    cfg,
		logger: logger,
		world:  ecs.NewWorld(),
	}

	seed := cfg.Level.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	gen := levels.NewGenerator(cfg.LevelParams(), seed)

	s.input = system.NewInputSystem(nil)
	s.levels = system.NewLevelSystem(gen, logger.Named("level"))
	s.render = system.NewRenderSystem(clips)

	// input -> movement -> level rules; later stages never feed back into
	// earlier ones within a tick
	s.world.AddSystem(s.input)
	s.world.AddSystem(ecs.NewScheduler(
		system.NewPhysicsSystem(),
		system.NewCollisionSystem(),
		system.NewAnimationSystem(clips),
	))
	s.world.AddSystem(ecs.NewScheduler(
		system.NewTargetSystem(logger.Named("target")),
		s.levels,
		system.NewRespawnSystem(),
	))
	s.world.AddSystem(s.render)

	if _, err := entity.NewLevelBounds(s.world, cfg.Bounds()); err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}
	player, err := entity.NewPlayer(s.world, tuning)
	if err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}
	s.player = player

	first, err := s.firstLevel(gen)
	if err != nil {
		return nil, err
	}
	if err := s.levels.Spawn(s.world, first); err != nil {
		return nil, fmt.Errorf("session: spawn first level: %w", err)
	}

	logger.Info("session started",
		zap.String("level", cfg.Level.Start),
		zap.Uint64("seed", seed),
		zap.Int("tick_rate", cfg.Window.TickRate),
	)
	return s, nil
}

func (s *Session) firstLevel(gen *levels.Generator) (*levels.Layout, error) {
	if s.cfg.Level.Start == config.StartRandom {
		return gen.Generate(playerRect(s.world, s.player)), nil
	}
	lvl, err := levels.Load(s.cfg.Level.Start)
	if err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}
	return lvl, nil
}

// Step runs exactly one simulation tick reading input from src. A nil src
// keeps the previous source.
func (s *Session) Step(src system.Source) {
	if s == nil || s.closed {
		return
	}
	if src != nil {
		s.input.SetSource(src)
	}
	s.pollTuning()
	s.world.Update()
	s.ticks++
}

// Draw renders the world; alpha in [0,1] interpolates the player between its
// last two ticks.
func (s *Session) Draw(screen *ebiten.Image, alpha float64) {
	if s == nil || s.closed {
		return
	}
	s.world.Draw(screen, alpha)
}

// RequestRespawn puts the player back at spawn on the next tick.
func (s *Session) RequestRespawn() {
	if err := ecs.Add(s.world, s.player, component.RespawnRequestComponent, &component.RespawnRequest{}); err != nil {
		s.logger.Warn("respawn request dropped", zap.Error(err))
	}
}

// RequestNewLevel swaps in a generated level on the next tick without
// scoring.
func (s *Session) RequestNewLevel() {
	e := ecs.CreateEntity(s.world)
	if err := ecs.Add(s.world, e, component.ReloadRequestComponent, &component.ReloadRequest{}); err != nil {
		ecs.DestroyEntity(s.world, e)
		s.logger.Warn("new level request dropped", zap.Error(err))
	}
}

// WatchTuning reloads the player prefab whenever it changes on disk. Changes
// are applied at the start of the next tick.
func (s *Session) WatchTuning() error {
	if s.watcher != nil {
		return nil
	}
	w, err := prefabs.NewWatcher(prefabs.Dir)
	if err != nil {
		return fmt.Errorf("session: watch %s: %w", prefabs.Dir, err)
	}
	s.watcher = w
	s.tuningMod, _ = prefabs.ModTime(prefabs.PlayerFile)
	s.logger.Info("watching tuning", zap.String("dir", prefabs.Dir))
	return nil
}

func (s *Session) pollTuning() {
	if s.watcher == nil {
		return
	}
	for {
		select {
		case name, ok := <-s.watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(name) != prefabs.PlayerFile {
				continue
			}
			s.reloadTuning()
		case err, ok := <-s.watcher.Errors:
			if !ok {
				return
			}
			s.logger.Warn("tuning watcher", zap.Error(err))
		default:
			return
		}
	}
}

func (s *Session) reloadTuning() {
	mod, ok := prefabs.ModTime(prefabs.PlayerFile)
	if ok && !mod.After(s.tuningMod) {
		return
	}
	spec, err := prefabs.LoadPlayerSpec()
	if err != nil {
		s.logger.Warn("reload tuning", zap.Error(err))
		return
	}
	s.tuningMod = mod
	s.ApplyTuning(spec.Tuning())
}

// ApplyTuning swaps the player's movement constants. The body keeps its size;
// a new spawn point takes effect on the next respawn.
func (s *Session) ApplyTuning(t component.Tuning) {
	p, ok := ecs.Get(s.world, s.player, component.PlayerComponent)
	if !ok {
		return
	}
	t.Width, t.Height = p.Tuning.Width, p.Tuning.Height
	p.Tuning = t
	s.logger.Info("tuning applied",
		zap.Float64("gravity", t.Gravity),
		zap.Float64("jump_velocity", t.JumpVelocity),
		zap.Float64("max_velocity", t.MaxVelocity),
	)
}

func (s *Session) World() *ecs.World {
	return s.world
}

func (s *Session) Player() ecs.Entity {
	return s.player
}

func (s *Session) Ticks() uint64 {
	return s.ticks
}

// Score returns the player's score, zero if the player is gone.
func (s *Session) Score() component.Score {
	if score, ok := ecs.Get(s.world, s.player, component.ScoreComponent); ok {
		return *score
	}
	return component.Score{}
}

// Close stops the tuning watcher and flushes the logger. Further Steps are
// ignored.
func (s *Session) Close() error {
	if s == nil || s.closed {
		return nil
	}
	s.closed = true

	var errs []error
	if s.watcher != nil {
		if err := s.watcher.Close(); err != nil {
			errs = append(errs, fmt.Errorf("session: close watcher: %w", err))
		}
	}
	s.logger.Info("session closed", zap.Uint64("ticks", s.ticks))
	_ = s.logger.Sync()
	return errors.Join(errs...)
}

func playerRect(w *ecs.World, e ecs.Entity) (r common.Rect) {
	if body, ok := ecs.Get(w, e, component.BodyComponent); ok {
		r = body.Rect()
	}
	return r
}
