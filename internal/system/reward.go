package system

import (
	"go-plane-war/internal/component"
	"go-plane-war/internal/config"
	"go-plane-war/internal/defs"
	"go-plane-war/internal/entity"
	"go-plane-war/internal/types"
)

// RewardSystem - падающие бонусы.
type RewardSystem struct {
	ecs *entity.ECS
}

func NewRewardSystem(ecs *entity.ECS) *RewardSystem {
	return &RewardSystem{ecs: ecs}
}

func (s *RewardSystem) Spawn(kind defs.RewardKind, x, y float64) (types.EntityID, bool) {
	def, ok := defs.RewardLibrary[kind]
	if !ok {
		return 0, false
	}
	w, h := def.Visuals.ScaledSize()
	id := s.ecs.NewEntity()
	s.ecs.Positions[id] = &component.Position{X: x, Y: y}
	s.ecs.Velocities[id] = &component.Velocity{DY: -def.Speed}
	s.ecs.Colliders[id] = &component.Collider{HalfWidth: w / 2, HalfHeight: h / 2, Enabled: true}
	s.ecs.Renderables[id] = &component.Renderable{
		Color:  def.Visuals.Color,
		Width:  w,
		Height: h,
		Layer:  component.LayerReward,
	}
	s.ecs.Rewards[id] = &component.Reward{Kind: kind}
	return id, true
}

func (s *RewardSystem) Update(deltaTime float64) {
	for id := range s.ecs.Rewards {
		pos := s.ecs.Positions[id]
		if pos == nil || pos.Y < config.RewardEscapeY {
			s.ecs.RemoveEntity(id)
		}
	}
}

// Remove убирает бонус после подбора.
func (s *RewardSystem) Remove(id types.EntityID) {
	if _, ok := s.ecs.Rewards[id]; ok {
		s.ecs.RemoveEntity(id)
	}
}
