// internal/ui/hud.go
package ui

import (
	"fmt"
	"go-plane-war/internal/config"
	"go-plane-war/internal/event"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// HUD показывает счёт, жизни и бомбы. Значения приходят событиями.
type HUD struct {
	Score int
	Lives int
	Bombs int

	fontFace font.Face
	color    color.RGBA
}

// NewHUD создаёт HUD и подписывает его на изменения счётчиков.
func NewHUD(face font.Face, dispatcher *event.Dispatcher) *HUD {
	h := &HUD{fontFace: face, color: config.TextLightColor}
	if dispatcher != nil {
		dispatcher.Subscribe(event.ScoreChanged, h)
		dispatcher.Subscribe(event.HpChanged, h)
		dispatcher.Subscribe(event.BombChanged, h)
	}
	return h
}

// OnEvent реализует интерфейс event.Listener.
func (h *HUD) OnEvent(e event.Event) {
	value, ok := e.Data.(int)
	if !ok {
		return
	}
	switch e.Type {
	case event.ScoreChanged:
		h.Score = value
	case event.HpChanged:
		h.Lives = value
	case event.BombChanged:
		h.Bombs = value
	}
}

// Labels - строки, которые выводит HUD.
func (h *HUD) Labels() (score, lives, bombs string) {
	return fmt.Sprintf("Score: %d", h.Score),
		fmt.Sprintf("HP: %d", h.Lives),
		fmt.Sprintf("Bomb: %d", h.Bombs)
}

func (h *HUD) Draw(screen *ebiten.Image) {
	if h.fontFace == nil {
		return
	}
	score, lives, bombs := h.Labels()
	lineHeight := h.fontFace.Metrics().Height.Ceil()
	x := config.HUDMargin
	y := config.HUDMargin + lineHeight

	text.Draw(screen, score, h.fontFace, x, y, h.color)
	text.Draw(screen, lives, h.fontFace, x, y+lineHeight+4, h.color)

	// Бомбы в левом нижнем углу
	text.Draw(screen, bombs, h.fontFace, x, config.ScreenHeight-config.HUDMargin, h.color)
}
