package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/hopper/assets"
	"github.com/milk9111/hopper/config"
	"github.com/milk9111/hopper/ecs/component"
	"github.com/milk9111/hopper/prefabs"
	"github.com/milk9111/hopper/session"
	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "", "path to a TOML config file (defaults are used when empty)")
	debug := flag.Bool("debug", false, "draw collision boxes and player state")
	watch := flag.Bool("watch", false, "reload prefabs/player.yaml when it changes")
	levelName := flag.String("level", "", "start level: embedded layout name (.json optional) or \"random\"")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatal(err)
		}
		cfg = loaded
	}
	if *levelName != "" {
		cfg.Level.Start = *levelName
	}

	logger, err := config.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}

	spec, err := prefabs.LoadPlayerSpec()
	if err != nil {
		logger.Fatal("load player tuning", zap.Error(err))
	}

	clips, err := assets.LoadClips(os.DirFS(cfg.Assets.FramesDir), component.ClipNames())
	if err != nil {
		logger.Warn("load clips, drawing placeholder boxes", zap.String("dir", cfg.Assets.FramesDir), zap.Error(err))
		clips = nil
	}
	for _, name := range component.ClipNames() {
		logger.Debug("clip loaded", zap.String("clip", name), zap.Int("frames", clips.FrameCount(name)))
	}

	s, err := session.New(cfg, spec.Tuning(), clips, logger)
	if err != nil {
		logger.Fatal("start session", zap.Error(err))
	}
	defer s.Close()

	if *watch {
		if err := s.WatchTuning(); err != nil {
			logger.Warn("tuning hot reload disabled", zap.Error(err))
		}
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetTPS(cfg.Window.TickRate)
	ebiten.SetWindowClosingHandled(true)

	if err := ebiten.RunGame(NewGame(s, cfg, *debug)); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Error("game loop", zap.Error(err))
	}
}
