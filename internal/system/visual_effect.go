// internal/system/visual_effect.go
package system

import (
	"go-plane-war/internal/component"
	"go-plane-war/internal/entity"
	"go-plane-war/internal/types"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// VisualEffectSystem управляет визуальными эффектами, такими как вспышки урона.
type VisualEffectSystem struct {
	ecs *entity.ECS
}

// NewVisualEffectSystem создает новую систему визуальных эффектов.
func NewVisualEffectSystem(ecs *entity.ECS) *VisualEffectSystem {
	return &VisualEffectSystem{ecs: ecs}
}

// Flash запускает (или перезапускает) вспышку попадания.
func (s *VisualEffectSystem) Flash(id types.EntityID, duration float64) {
	s.ecs.DamageFlashes[id] = &component.DamageFlash{
		Tween: gween.New(1, 0, float32(duration), ease.OutQuad),
		Alpha: 1,
	}
}

// Fade запускает затухание сущности за duration секунд.
func (s *VisualEffectSystem) Fade(id types.EntityID, duration float64) {
	delete(s.ecs.DamageFlashes, id)
	s.ecs.DeathFades[id] = &component.DeathFade{
		Tween: gween.New(1, 0, float32(duration), ease.InQuad),
		Alpha: 1,
	}
}

// Update обновляет все активные визуальные эффекты.
func (s *VisualEffectSystem) Update(deltaTime float64) {
	dt := float32(deltaTime)

	for id, flash := range s.ecs.DamageFlashes {
		alpha, finished := flash.Tween.Update(dt)
		flash.Alpha = float64(alpha)
		if finished {
			delete(s.ecs.DamageFlashes, id)
		}
	}

	// Затухание держится до удаления сущности, даже когда твин закончен
	for _, fade := range s.ecs.DeathFades {
		alpha, _ := fade.Tween.Update(dt)
		fade.Alpha = float64(alpha)
	}
}
