// internal/state/game_over_state.go
package state

import (
	"go-plane-war/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// GameOverState - итог партии поверх замершего поля
type GameOverState struct {
	sm    *StateMachine
	ctx   *Context
	game  *GameState
	panel *ui.GameOverPanel
}

func NewGameOverState(sm *StateMachine, ctx *Context, gs *GameState) *GameOverState {
	return &GameOverState{
		sm:    sm,
		ctx:   ctx,
		game:  gs,
		panel: ui.NewGameOverPanel(ctx.Fonts),
	}
}

func (s *GameOverState) Enter() {
	score, best := s.game.Game().Result()
	s.panel.SetResult(score, best)
}

func (s *GameOverState) Update(deltaTime float64) {
	restart := inpututil.IsKeyJustPressed(ebiten.KeyR) || inpututil.IsKeyJustPressed(ebiten.KeySpace)
	if x, y, ok := clicked(); ok && s.panel.RestartButton.Contains(x, y) {
		restart = true
	}
	if restart {
		playButton(s.ctx)
		s.game.Game().Restart()
		s.sm.SetState(s.game)
	}
}

func (s *GameOverState) Draw(screen *ebiten.Image) {
	s.game.Draw(screen)
	s.panel.Draw(screen)
}

func (s *GameOverState) Exit() {}
