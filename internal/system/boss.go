// internal/system/boss.go
package system

import (
	"go-plane-war/internal/component"
	"go-plane-war/internal/defs"
	"go-plane-war/internal/entity"
	"go-plane-war/internal/types"
	"math"
)

// BossSystem ведёт сценарий движения босса:
// снижение → патруль ⇄ рывок вниз → возврат → патруль.
// Попадания и смерть обрабатывает EnemySystem.
type BossSystem struct {
	ecs     *entity.ECS
	enemies *EnemySystem
	params  defs.BossDefinition
}

func NewBossSystem(ecs *entity.ECS, enemies *EnemySystem, params defs.BossDefinition) *BossSystem {
	return &BossSystem{ecs: ecs, enemies: enemies, params: params}
}

// Spawn создаёт босса в точке (x, y). Босс начинает со снижения.
func (s *BossSystem) Spawn(defID string, x, y float64) (types.EntityID, bool) {
	id, ok := s.enemies.Spawn(defID, x, y)
	if !ok {
		return 0, false
	}
	s.ecs.Bosses[id] = &component.Boss{
		Phase:        component.BossDescending,
		DescendSpeed: defs.EnemyLibrary[defID].Speed,
		PatrolSpeed:  s.params.PatrolSpeed,
	}
	return id, true
}

func (s *BossSystem) Update(deltaTime float64) {
	for id, boss := range s.ecs.Bosses {
		enemy, isEnemy := s.ecs.Enemies[id]
		pos, hasPos := s.ecs.Positions[id]
		if !isEnemy || !hasPos {
			delete(s.ecs.Bosses, id)
			continue
		}
		// Мёртвый босс стоит на месте, пока играет анимация смерти
		if enemy.State == component.EnemyDead {
			continue
		}
		s.step(boss, pos, deltaTime)
	}
}

func (s *BossSystem) step(boss *component.Boss, pos *component.Position, dt float64) {
	p := s.params
	switch boss.Phase {
	case component.BossDescending:
		if pos.Y > p.TargetY {
			pos.Y -= boss.DescendSpeed * dt
		}
		if pos.Y <= p.TargetY {
			boss.Phase = component.BossPatrolling
		}

	case component.BossPatrolling:
		pos.X += boss.PatrolSpeed * dt
		if pos.X > p.PatrolLimit {
			boss.PatrolSpeed = -math.Abs(boss.PatrolSpeed)
		} else if pos.X < -p.PatrolLimit {
			boss.PatrolSpeed = math.Abs(boss.PatrolSpeed)
		}
		boss.DashTimer += dt
		if boss.DashTimer > p.DashInterval {
			boss.Phase = component.BossDashing
			boss.DashTimer = 0
		}

	case component.BossDashing:
		pos.Y -= p.DashSpeed * dt
		if pos.Y <= p.DashBottomY {
			boss.Phase = component.BossReturning
		}

	case component.BossReturning:
		pos.Y += p.DashSpeed * p.ReturnFactor * dt
		if pos.Y >= p.TargetY {
			pos.Y = p.TargetY
			boss.Phase = component.BossPatrolling
		}
	}
}
