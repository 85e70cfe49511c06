// internal/ui/pause_button.go
package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// PauseButton - квадратная кнопка в углу экрана: две полосы (пауза)
// или треугольник (продолжить).
type PauseButton struct {
	Rect     image.Rectangle
	IsPaused bool
	Color    color.RGBA
}

func NewPauseButton(x, y, size int, c color.RGBA) *PauseButton {
	return &PauseButton{
		Rect:  image.Rect(x, y, x+size, y+size),
		Color: c,
	}
}

func (b *PauseButton) Contains(x, y int) bool {
	return image.Pt(x, y).In(b.Rect)
}

func (b *PauseButton) SetPaused(paused bool) {
	b.IsPaused = paused
}

func (b *PauseButton) Draw(screen *ebiten.Image) {
	x, y := float32(b.Rect.Min.X), float32(b.Rect.Min.Y)
	size := float32(b.Rect.Dx())

	if b.IsPaused {
		// Треугольник (play)
		var path vector.Path
		path.MoveTo(x+size*0.25, y+size*0.2)
		path.LineTo(x+size*0.25, y+size*0.8)
		path.LineTo(x+size*0.8, y+size*0.5)
		path.Close()
		vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
		r, g, bl, a := b.Color.RGBA()
		for i := range vs {
			vs[i].SrcX, vs[i].SrcY = 1, 1
			vs[i].ColorR = float32(r) / 0xffff
			vs[i].ColorG = float32(g) / 0xffff
			vs[i].ColorB = float32(bl) / 0xffff
			vs[i].ColorA = float32(a) / 0xffff
		}
		screen.DrawTriangles(vs, is, fillSource(), &ebiten.DrawTrianglesOptions{AntiAlias: true})
		return
	}

	// Две полосы (pause)
	barW := size * 0.22
	barH := size * 0.6
	top := y + (size-barH)/2
	vector.DrawFilledRect(screen, x+size*0.22, top, barW, barH, b.Color, true)
	vector.DrawFilledRect(screen, x+size*0.56, top, barW, barH, b.Color, true)
}

var whiteSubImage *ebiten.Image

// fillSource - однопиксельный белый источник для DrawTriangles.
// Создаётся при первой отрисовке.
func fillSource() *ebiten.Image {
	if whiteSubImage == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whiteSubImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whiteSubImage
}
