// component/render.go
package component

import "image/color"

// Layer определяет порядок отрисовки.
type Layer int

const (
	LayerReward Layer = iota
	LayerEnemy
	LayerBullet
	LayerPlayer
)

// Renderable - компонент для отрисовки
type Renderable struct {
	Color         color.RGBA
	Width, Height float64
	Layer         Layer
}
