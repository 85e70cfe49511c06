// internal/system/render.go
package system

import (
	"go-plane-war/internal/config"
	"go-plane-war/internal/entity"
	"go-plane-war/internal/types"
	"go-plane-war/internal/utils"
	"image/color"
	"math"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// RenderSystem рисует сущности
type RenderSystem struct {
	ecs   *entity.ECS
	order []types.EntityID
	stars [][2]float32
}

func NewRenderSystem(ecs *entity.ECS) *RenderSystem {
	return &RenderSystem{ecs: ecs, stars: starField(48)}
}

// starField раскладывает звёзды по плитке фона детерминированно,
// чтобы стыки плиток совпадали.
func starField(n int) [][2]float32 {
	stars := make([][2]float32, n)
	for i := range stars {
		fx := math.Mod(float64(i)*0.618034, 1)
		fy := math.Mod(float64(i)*0.381966*7, 1)
		stars[i] = [2]float32{float32(fx * config.ScreenWidth), float32(fy * config.BackgroundTileHeight)}
	}
	return stars
}

func (s *RenderSystem) Draw(screen *ebiten.Image) {
	s.drawBackground(screen)

	s.order = s.order[:0]
	for id := range s.ecs.Renderables {
		if _, hasPos := s.ecs.Positions[id]; hasPos {
			s.order = append(s.order, id)
		}
	}
	sort.Slice(s.order, func(i, j int) bool {
		a, b := s.ecs.Renderables[s.order[i]], s.ecs.Renderables[s.order[j]]
		if a.Layer != b.Layer {
			return a.Layer < b.Layer
		}
		return s.order[i] < s.order[j]
	})

	for _, id := range s.order {
		s.drawEntity(screen, id)
	}
}

func (s *RenderSystem) drawBackground(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	bg := s.ecs.Background
	if bg == nil {
		return
	}
	for i, tileY := range bg.TileY {
		_, top := utils.WorldToScreen(0, tileY+config.BackgroundTileHeight/2, config.ScreenWidth, config.ScreenHeight)
		if i == 1 {
			vector.DrawFilledRect(screen, 0, float32(top), config.ScreenWidth, config.BackgroundTileHeight, config.BackgroundAltColor, false)
		}
		for _, star := range s.stars {
			vector.DrawFilledRect(screen, star[0], float32(top)+star[1], 2, 2, config.StarColor, false)
		}
	}
}

func (s *RenderSystem) drawEntity(screen *ebiten.Image, id types.EntityID) {
	r := s.ecs.Renderables[id]
	pos := s.ecs.Positions[id]

	alpha := 1.0
	if fade, ok := s.ecs.DeathFades[id]; ok {
		alpha = fade.Alpha
	}
	if player, ok := s.ecs.Players[id]; ok && player.Invincible() {
		// Мигание во время неуязвимости
		if int(s.ecs.GameTime*10)%2 == 0 {
			alpha *= 0.3
		}
	}
	if alpha <= 0 {
		return
	}

	cx, cy := utils.WorldToScreen(pos.X, pos.Y, config.ScreenWidth, config.ScreenHeight)
	x := float32(cx - r.Width/2)
	y := float32(cy - r.Height/2)
	w, h := float32(r.Width), float32(r.Height)

	vector.DrawFilledRect(screen, x, y, w, h, withAlpha(r.Color, alpha), true)

	if _, ok := s.ecs.Players[id]; ok {
		vector.DrawFilledRect(screen, float32(cx)-w/8, y+h/6, w/4, h/4, withAlpha(config.PlayerCockpitColor, alpha), true)
	}
	if health, ok := s.ecs.Healths[id]; ok && health.Max > 1 && health.Value > 0 {
		ratio := float32(health.Value) / float32(health.Max)
		vector.DrawFilledRect(screen, x, y-6, w*ratio, 3, withAlpha(color.RGBA{90, 230, 90, 255}, alpha), false)
	}
	if flash, ok := s.ecs.DamageFlashes[id]; ok && flash.Alpha > 0 {
		vector.DrawFilledRect(screen, x, y, w, h, withAlpha(config.FlashColor, flash.Alpha*0.8), true)
	}
}

// withAlpha умножает цвет на alpha. ebiten ожидает premultiplied alpha.
func withAlpha(c color.RGBA, alpha float64) color.RGBA {
	if alpha >= 1 {
		return c
	}
	if alpha < 0 {
		alpha = 0
	}
	return color.RGBA{
		R: uint8(float64(c.R) * alpha),
		G: uint8(float64(c.G) * alpha),
		B: uint8(float64(c.B) * alpha),
		A: uint8(float64(c.A) * alpha),
	}
}
