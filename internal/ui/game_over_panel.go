// internal/ui/game_over_panel.go
package ui

import (
	"fmt"
	"go-plane-war/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	panelWidth  = 320
	panelHeight = 300
)

// GameOverPanel - итоговая панель: рекорд, текущий счёт и кнопка рестарта.
type GameOverPanel struct {
	Score         int
	HighScore     int
	RestartButton *Button

	fonts *Fonts
}

func NewGameOverPanel(fonts *Fonts) *GameOverPanel {
	cx := config.ScreenWidth / 2
	cy := config.ScreenHeight / 2
	var regular font.Face
	if fonts != nil {
		regular = fonts.Regular
	}
	return &GameOverPanel{
		RestartButton: NewButton(cx, cy+panelHeight/2-50, config.ButtonWidth, config.ButtonHeight, "Restart", regular),
		fonts:         fonts,
	}
}

// SetResult запоминает итог партии. highScore - рекорд до этой партии.
func (p *GameOverPanel) SetResult(score, highScore int) {
	p.Score = score
	p.HighScore = highScore
}

// BestScore - рекорд с учётом только что сыгранной партии.
func (p *GameOverPanel) BestScore() int {
	if p.Score > p.HighScore {
		return p.Score
	}
	return p.HighScore
}

// IsNewRecord - побит ли прежний рекорд.
func (p *GameOverPanel) IsNewRecord() bool {
	return p.Score > p.HighScore
}

func (p *GameOverPanel) Draw(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.OverlayColor, false)

	x := float32(config.ScreenWidth-panelWidth) / 2
	y := float32(config.ScreenHeight-panelHeight) / 2
	vector.DrawFilledRect(screen, x, y, panelWidth, panelHeight, config.PanelColor, true)
	vector.StrokeRect(screen, x, y, panelWidth, panelHeight, 2, config.PanelStrokeColor, true)

	if p.fonts != nil {
		drawCentered(screen, "GAME OVER", p.fonts.Title, int(y)+60)
		drawCentered(screen, fmt.Sprintf("Best: %d", p.BestScore()), p.fonts.Regular, int(y)+120)
		drawCentered(screen, fmt.Sprintf("Score: %d", p.Score), p.fonts.Regular, int(y)+155)
		if p.IsNewRecord() {
			drawCentered(screen, "New record!", p.fonts.Regular, int(y)+190)
		}
	}
	p.RestartButton.Draw(screen)
}

// drawCentered выводит строку по центру экрана по горизонтали; y - базовая линия.
func drawCentered(screen *ebiten.Image, s string, face font.Face, y int) {
	if face == nil {
		return
	}
	bounds := text.BoundString(face, s)
	x := (config.ScreenWidth - bounds.Dx()) / 2
	text.Draw(screen, s, face, x, y, config.TextLightColor)
}
