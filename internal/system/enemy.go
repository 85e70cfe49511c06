// internal/system/enemy.go
package system

import (
	"go-plane-war/internal/component"
	"go-plane-war/internal/config"
	"go-plane-war/internal/defs"
	"go-plane-war/internal/entity"
	"go-plane-war/internal/event"
	"go-plane-war/internal/types"
	"log"
)

// EnemySystem ведёт врагов: движение вниз, попадания, смерть, уход за нижний край.
// Босс - тоже враг, его сценарий движения ведёт BossSystem.
type EnemySystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	effects         *VisualEffectSystem
	tuning          config.Tuning
}

func NewEnemySystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, effects *VisualEffectSystem, tuning config.Tuning) *EnemySystem {
	return &EnemySystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		effects:         effects,
		tuning:          tuning,
	}
}

// Spawn создаёт врага по определению из EnemyLibrary.
func (s *EnemySystem) Spawn(defID string, x, y float64) (types.EntityID, bool) {
	def, ok := defs.EnemyLibrary[defID]
	if !ok {
		log.Printf("Error: Enemy definition not found for ID: %s", defID)
		return 0, false
	}

	w, h := def.Visuals.ScaledSize()
	id := s.ecs.NewEntity()
	s.ecs.Positions[id] = &component.Position{X: x, Y: y}
	s.ecs.Healths[id] = &component.Health{Value: def.Health, Max: def.Health}
	s.ecs.Colliders[id] = &component.Collider{HalfWidth: w / 2, HalfHeight: h / 2, Enabled: true}
	s.ecs.Renderables[id] = &component.Renderable{
		Color:  def.Visuals.Color,
		Width:  w,
		Height: h,
		Layer:  component.LayerEnemy,
	}
	s.ecs.Enemies[id] = &component.Enemy{
		DefID:  defID,
		Score:  def.Score,
		State:  component.EnemyAlive,
		IsBoss: def.IsBoss,
	}
	if !def.IsBoss {
		s.ecs.Velocities[id] = &component.Velocity{DY: -def.Speed}
	}
	return id, true
}

func (s *EnemySystem) Update(deltaTime float64) {
	for id, enemy := range s.ecs.Enemies {
		pos := s.ecs.Positions[id]
		if pos == nil {
			s.remove(id, enemy)
			continue
		}

		switch enemy.State {
		case component.EnemyHit:
			enemy.StateTimer -= deltaTime
			if enemy.StateTimer <= 0 {
				enemy.State = component.EnemyAlive
				enemy.StateTimer = 0
				s.setCollider(id, true)
			}
		case component.EnemyDead:
			enemy.StateTimer -= deltaTime
			if enemy.StateTimer <= 0 {
				s.remove(id, enemy)
				continue
			}
		}

		if pos.Y < config.EnemyEscapeY {
			// Только живой враг, прорвавшийся вниз, стоит игроку жизни
			if enemy.State != component.EnemyDead {
				s.eventDispatcher.Dispatch(event.Event{Type: event.EnemyEscaped, Data: id})
			}
			s.remove(id, enemy)
		}
	}
}

// Hit наносит урон врагу. Во время анимации попадания и после смерти
// коллайдер выключен, и удар не засчитывается.
func (s *EnemySystem) Hit(id types.EntityID, damage int) bool {
	enemy, ok := s.ecs.Enemies[id]
	if !ok || enemy.State != component.EnemyAlive {
		return false
	}
	health, ok := s.ecs.Healths[id]
	if !ok {
		return false
	}
	if damage < 0 {
		damage = 0
	}

	health.Value -= damage
	if health.Value < 0 {
		health.Value = 0
	}

	if health.Value == 0 {
		s.kill(id, enemy, enemy.Score)
		return true
	}

	enemy.State = component.EnemyHit
	enemy.StateTimer = s.tuning.HitDuration
	s.setCollider(id, false)
	s.effects.Flash(id, s.tuning.HitDuration)
	return true
}

// KillAll уничтожает всех живых врагов, кроме босса (бомба).
// Очки за это не начисляются. Возвращает число уничтоженных.
func (s *EnemySystem) KillAll() int {
	killed := 0
	for id, enemy := range s.ecs.Enemies {
		if enemy.IsBoss || enemy.State == component.EnemyDead {
			continue
		}
		if health, ok := s.ecs.Healths[id]; ok {
			health.Value = 0
		}
		s.kill(id, enemy, 0)
		killed++
	}
	return killed
}

// Clear убирает всех врагов без анимаций и событий (рестарт).
func (s *EnemySystem) Clear() {
	for id, enemy := range s.ecs.Enemies {
		s.remove(id, enemy)
	}
}

// ClearRegular убирает всех врагов, кроме босса (конец игры).
func (s *EnemySystem) ClearRegular() {
	for id, enemy := range s.ecs.Enemies {
		if !enemy.IsBoss {
			s.remove(id, enemy)
		}
	}
}

// Count - число врагов на поле, включая умирающих.
func (s *EnemySystem) Count() int {
	return len(s.ecs.Enemies)
}

func (s *EnemySystem) kill(id types.EntityID, enemy *component.Enemy, score int) {
	enemy.State = component.EnemyDead
	enemy.StateTimer = s.tuning.DeathDuration
	delete(s.ecs.Velocities, id)
	s.setCollider(id, false)
	s.effects.Fade(id, s.tuning.DeathDuration)

	s.eventDispatcher.Dispatch(event.Event{Type: event.EnemyDestroyed, Data: event.EnemyDestroyedData{
		ID:     id,
		DefID:  enemy.DefID,
		Score:  score,
		IsBoss: enemy.IsBoss,
	}})
	if enemy.IsBoss {
		s.ecs.GameState.BossActive = false
		s.eventDispatcher.Dispatch(event.Event{Type: event.BossDefeated, Data: id})
	}
}

func (s *EnemySystem) remove(id types.EntityID, enemy *component.Enemy) {
	// Босс, ушедший со сцены не через смерть, тоже освобождает место для следующего
	if enemy.IsBoss && enemy.State != component.EnemyDead {
		s.ecs.GameState.BossActive = false
	}
	s.ecs.RemoveEntity(id)
}

func (s *EnemySystem) setCollider(id types.EntityID, enabled bool) {
	if col, ok := s.ecs.Colliders[id]; ok {
		col.Enabled = enabled
	}
}
