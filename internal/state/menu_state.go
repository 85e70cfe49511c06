// internal/state/menu_state.go
package state

import (
	"go-plane-war/internal/audio"
	"go-plane-war/internal/config"
	"go-plane-war/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// MenuState - стартовый экран
type MenuState struct {
	sm          *StateMachine
	ctx         *Context
	startButton *ui.Button
	bestScore   int
}

func NewMenuState(sm *StateMachine, ctx *Context) *MenuState {
	var face font.Face
	if ctx.Fonts != nil {
		face = ctx.Fonts.Regular
	}
	return &MenuState{
		sm:          sm,
		ctx:         ctx,
		startButton: ui.NewButton(config.ScreenWidth/2, config.ScreenHeight/2+60, config.ButtonWidth, config.ButtonHeight, "Start", face),
	}
}

func (m *MenuState) Enter() {
	if m.ctx.Scores != nil {
		m.bestScore, _ = m.ctx.Scores.Load()
	}
}

func (m *MenuState) Update(deltaTime float64) {
	start := inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter)
	if x, y, ok := clicked(); ok && m.startButton.Contains(x, y) {
		start = true
	}
	if start {
		playButton(m.ctx)
		m.sm.SetState(NewGameState(m.sm, m.ctx))
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	if m.ctx.Fonts != nil {
		drawTitle(screen, "PLANE WAR", m.ctx.Fonts.Title, config.ScreenHeight/2-80)
		if m.bestScore > 0 {
			drawTitle(screen, "Best: "+itoa(m.bestScore), m.ctx.Fonts.Regular, config.ScreenHeight/2-20)
		}
	}
	m.startButton.Draw(screen)
}

func (m *MenuState) Exit() {}

func playButton(ctx *Context) {
	if ctx.Audio != nil {
		ctx.Audio.Play(audio.SoundButton, 0.5)
	}
}

func drawTitle(screen *ebiten.Image, s string, face font.Face, y int) {
	if face == nil {
		return
	}
	bounds := text.BoundString(face, s)
	text.Draw(screen, s, face, (config.ScreenWidth-bounds.Dx())/2, y, config.TextLightColor)
}
