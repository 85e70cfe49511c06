// internal/system/movement.go
package system

import (
	"go-plane-war/internal/entity"
)

// MovementSystem обновляет позиции сущностей со скоростью.
// Босс и игрок двигаются своими системами и Velocity не имеют.
type MovementSystem struct {
	ecs *entity.ECS
}

func NewMovementSystem(ecs *entity.ECS) *MovementSystem {
	return &MovementSystem{ecs: ecs}
}

func (s *MovementSystem) Update(deltaTime float64) {
	for id, vel := range s.ecs.Velocities {
		pos, hasPos := s.ecs.Positions[id]
		if !hasPos {
			delete(s.ecs.Velocities, id)
			continue
		}
		pos.X += vel.DX * deltaTime
		pos.Y += vel.DY * deltaTime
	}
}
