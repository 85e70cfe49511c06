// internal/ui/button.go
package ui

import (
	"go-plane-war/internal/config"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// Button - прямоугольная кнопка с надписью.
type Button struct {
	Rect       image.Rectangle
	Text       string
	Color      color.RGBA
	HoverColor color.RGBA
	TextColor  color.RGBA
	fontFace   font.Face
}

// NewButton создаёт кнопку с центром в (cx, cy) экранных координат.
func NewButton(cx, cy, width, height int, label string, face font.Face) *Button {
	return &Button{
		Rect:       image.Rect(cx-width/2, cy-height/2, cx+width/2, cy+height/2),
		Text:       label,
		Color:      config.ButtonColor,
		HoverColor: config.ButtonHoverColor,
		TextColor:  config.TextLightColor,
		fontFace:   face,
	}
}

// Contains - попадает ли точка экрана в кнопку.
func (b *Button) Contains(x, y int) bool {
	return image.Pt(x, y).In(b.Rect)
}

func (b *Button) Draw(screen *ebiten.Image) {
	bg := b.Color
	if b.Contains(ebiten.CursorPosition()) {
		bg = b.HoverColor
	}
	x, y := float32(b.Rect.Min.X), float32(b.Rect.Min.Y)
	w, h := float32(b.Rect.Dx()), float32(b.Rect.Dy())
	vector.DrawFilledRect(screen, x, y, w, h, bg, true)
	vector.StrokeRect(screen, x, y, w, h, 2, config.PanelStrokeColor, true)

	if b.fontFace == nil || b.Text == "" {
		return
	}
	bounds := text.BoundString(b.fontFace, b.Text)
	tx := b.Rect.Min.X + (b.Rect.Dx()-bounds.Dx())/2
	ty := b.Rect.Min.Y + (b.Rect.Dy()-bounds.Dy())/2 - bounds.Min.Y
	text.Draw(screen, b.Text, b.fontFace, tx, ty, b.TextColor)
}
