// internal/state/game_state.go
package state

import (
	game "go-plane-war/internal/app"
	"go-plane-war/internal/config"
	"go-plane-war/internal/ui"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// GameState - состояние игры
type GameState struct {
	sm          *StateMachine
	ctx         *Context
	game        *game.Game
	hud         *ui.HUD
	pauseButton *ui.PauseButton
	pointer     pointer
	drag        dragTracker
	// Касание началось на кнопке паузы и не должно двигать самолёт
	pressOnUI bool
}

func NewGameState(sm *StateMachine, ctx *Context) *GameState {
	tuning := ctx.Tuning
	g := game.NewGame(game.Options{
		Tuning: &tuning,
		Seed:   ctx.Seed,
		Audio:  ctx.Audio,
		Scores: ctx.Scores,
	})

	var face font.Face
	if ctx.Fonts != nil {
		face = ctx.Fonts.Regular
	}
	hud := ui.NewHUD(face, g.EventDispatcher)
	gs := g.State()
	hud.Score, hud.Lives, hud.Bombs = gs.Score, gs.Lives, gs.Bombs

	return &GameState{
		sm:   sm,
		ctx:  ctx,
		game: g,
		hud:  hud,
		pauseButton: ui.NewPauseButton(
			config.ScreenWidth-config.HUDMargin-config.PauseButtonSize,
			config.HUDMargin,
			config.PauseButtonSize,
			config.TextLightColor,
		),
	}
}

// Game даёт доступ к игровой логике (панель Game Over, тесты).
func (g *GameState) Game() *game.Game {
	return g.game
}

func (g *GameState) Enter() {
	g.drag.release()
	g.pressOnUI = false
}

func (g *GameState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.togglePause()
	}
	g.handlePointer()

	g.game.Update(deltaTime)
	g.pauseButton.SetPaused(g.game.IsPaused())

	if g.game.IsOver() {
		g.sm.SetState(NewGameOverState(g.sm, g.ctx, g))
	}
}

func (g *GameState) handlePointer() {
	ev := g.pointer.poll()

	if ev.pressed {
		if g.pauseButton.Contains(ev.x, ev.y) {
			g.pressOnUI = true
			g.togglePause()
			return
		}
		g.pressOnUI = false
		g.drag.press(ev.x, ev.y)
		return
	}

	if ev.released {
		if g.pressOnUI {
			g.pressOnUI = false
			return
		}
		if g.drag.release() {
			g.game.Tap()
		}
		return
	}

	if ev.down && !g.pressOnUI {
		dx, dy := g.drag.move(ev.x, ev.y)
		if dx != 0 || dy != 0 {
			g.game.Drag(dx, dy)
		}
	}
}

func (g *GameState) togglePause() {
	playButton(g.ctx)
	if g.game.IsPaused() {
		g.game.Resume()
	} else {
		g.game.Pause()
	}
}

func (g *GameState) Draw(screen *ebiten.Image) {
	g.game.Draw(screen)
	g.hud.Draw(screen)
	g.pauseButton.Draw(screen)

	if g.game.IsPaused() && !g.game.IsOver() {
		vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.OverlayColor, false)
		if g.ctx.Fonts != nil {
			drawTitle(screen, "PAUSED", g.ctx.Fonts.Title, config.ScreenHeight/2)
		}
	}
}

func (g *GameState) Exit() {}

func itoa(n int) string { return strconv.Itoa(n) }
