package system

import (
	"go-plane-war/internal/config"
	"go-plane-war/internal/entity"
	"go-plane-war/internal/event"
	"log"
	"math"
)

// BombSystem распознаёт двойной тап и взрывает бомбу.
// Время берётся из ECS.GameTime, поэтому на паузе перезарядка не идёт.
type BombSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	state           *StateSystem
	enemies         *EnemySystem
	tuning          config.Tuning
	lastTapTime     float64
	lastBombTime    float64
}

func NewBombSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, state *StateSystem, enemies *EnemySystem, tuning config.Tuning) *BombSystem {
	bs := &BombSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		state:           state,
		enemies:         enemies,
		tuning:          tuning,
	}
	bs.Reset()
	return bs
}

// Reset забывает прошлые тапы и взрывы.
func (s *BombSystem) Reset() {
	s.lastTapTime = math.Inf(-1)
	s.lastBombTime = math.Inf(-1)
}

// Tap регистрирует отпускание пальца. Второй тап в пределах
// DoubleTapInterval пытается взорвать бомбу.
func (s *BombSystem) Tap() bool {
	now := s.ecs.GameTime
	used := false
	if now-s.lastTapTime < s.tuning.DoubleTapInterval {
		used = s.UseBomb()
	}
	s.lastTapTime = now
	return used
}

// UseBomb уничтожает всех врагов на поле, если есть бомба и прошла перезарядка.
func (s *BombSystem) UseBomb() bool {
	now := s.ecs.GameTime
	if now-s.lastBombTime < s.tuning.BombCooldown {
		log.Printf("Bomb on cooldown, %.0fms left", (s.tuning.BombCooldown-(now-s.lastBombTime))*1000)
		return false
	}
	if !s.state.UseBomb() {
		return false
	}
	killed := s.enemies.KillAll()
	s.lastBombTime = now
	s.eventDispatcher.Dispatch(event.Event{Type: event.BombUsed, Data: killed})
	return true
}
