package main

import (
	"fmt"
	"time"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/hopper/common"
	"github.com/milk9111/hopper/config"
	"github.com/milk9111/hopper/ecs/system"
	"github.com/milk9111/hopper/session"
)

type Game struct {
	session *session.Session
	width   int
	height  int
	tick    time.Duration

	debug  bool
	paused bool
	quit   bool

	pauseUI  *ebitenui.UI
	lastTick time.Time
}

func NewGame(s *session.Session, cfg *config.Config, debug bool) *Game {
	g := &Game{
		session: s,
		width:   cfg.Window.Width,
		height:  cfg.Window.Height,
		tick:    time.Second / time.Duration(cfg.Window.TickRate),
		debug:   debug,
	}
	g.pauseUI = NewPauseUI(g, g.width, g.height)
	return g
}

func (g *Game) Update() error {
	if g.quit || ebiten.IsWindowBeingClosed() || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		g.debug = !g.debug
	}

	g.lastTick = time.Now()
	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.session.RequestRespawn()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.session.RequestNewLevel()
	}
	g.session.Step(nil)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	alpha := 1.0
	if !g.paused && !g.lastTick.IsZero() {
		alpha = common.Clamp(float64(time.Since(g.lastTick))/float64(g.tick), 0, 1)
	}
	g.session.Draw(screen, alpha)

	score := g.session.Score()
	ebitenutil.DebugPrint(screen, fmt.Sprintf("Score: %d    Level: %d    FPS: %.2f", score.Points, score.Levels, ebiten.ActualFPS()))

	if g.debug {
		system.DrawCollisionDebug(g.session.World(), screen)
		system.DrawPlayerStateDebug(g.session.World(), screen)
	}
	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}
