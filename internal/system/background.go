package system

import (
	"go-plane-war/internal/config"
	"go-plane-war/internal/entity"
)

// BackgroundSystem прокручивает две плитки фона. Плитка, ушедшая ниже
// экрана, переставляется над соседней.
type BackgroundSystem struct {
	ecs *entity.ECS
}

func NewBackgroundSystem(ecs *entity.ECS) *BackgroundSystem {
	return &BackgroundSystem{ecs: ecs}
}

func (s *BackgroundSystem) Update(deltaTime float64) {
	bg := s.ecs.Background
	if bg == nil {
		return
	}
	bg.TileY[0] -= config.BackgroundSpeed * deltaTime
	bg.TileY[1] -= config.BackgroundSpeed * deltaTime

	if bg.TileY[0] < -config.BackgroundTileHeight {
		bg.TileY[0] = bg.TileY[1] + config.BackgroundTileHeight
	}
	if bg.TileY[1] < -config.BackgroundTileHeight {
		bg.TileY[1] = bg.TileY[0] + config.BackgroundTileHeight
	}
}
