package system

import (
	"go-plane-war/internal/component"
	"go-plane-war/internal/defs"
	"go-plane-war/internal/entity"
	"go-plane-war/internal/event"
)

// StateSystem ведёт счётчики партии: очки, жизни, бомбы, паузу.
// Каждое изменение рассылается событием, на которое подписан HUD.
type StateSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewStateSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *StateSystem {
	ss := &StateSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
	}
	eventDispatcher.Subscribe(event.EnemyDestroyed, ss)
	eventDispatcher.Subscribe(event.RewardPicked, ss)
	return ss
}

func (s *StateSystem) OnEvent(e event.Event) {
	switch e.Type {
	case event.EnemyDestroyed:
		if data, ok := e.Data.(event.EnemyDestroyedData); ok && data.Score > 0 {
			s.AddScore(data.Score)
		}
	case event.RewardPicked:
		if kind, ok := e.Data.(defs.RewardKind); ok && kind == defs.RewardBomb {
			s.AddBomb()
		}
	}
}

func (s *StateSystem) State() *component.GameState {
	return s.ecs.GameState
}

func (s *StateSystem) AddScore(points int) {
	s.ecs.GameState.Score += points
	s.eventDispatcher.Dispatch(event.Event{Type: event.ScoreChanged, Data: s.ecs.GameState.Score})
}

// SubHp отнимает одну жизнь и возвращает оставшиеся. Ниже нуля жизни не опускаются.
func (s *StateSystem) SubHp() int {
	gs := s.ecs.GameState
	if gs.Lives > 0 {
		gs.Lives--
	}
	s.eventDispatcher.Dispatch(event.Event{Type: event.HpChanged, Data: gs.Lives})
	return gs.Lives
}

func (s *StateSystem) AddBomb() {
	s.ecs.GameState.Bombs++
	s.eventDispatcher.Dispatch(event.Event{Type: event.BombChanged, Data: s.ecs.GameState.Bombs})
}

func (s *StateSystem) HasBomb() bool {
	return s.ecs.GameState.Bombs > 0
}

// UseBomb тратит одну бомбу. Возвращает false, если бомб нет.
func (s *StateSystem) UseBomb() bool {
	if !s.HasBomb() {
		return false
	}
	s.ecs.GameState.Bombs--
	s.eventDispatcher.Dispatch(event.Event{Type: event.BombChanged, Data: s.ecs.GameState.Bombs})
	return true
}

func (s *StateSystem) Pause() {
	if s.ecs.GameState.Paused {
		return
	}
	s.ecs.GameState.Paused = true
	s.eventDispatcher.Dispatch(event.Event{Type: event.GamePaused})
}

func (s *StateSystem) Resume() {
	if !s.ecs.GameState.Paused {
		return
	}
	s.ecs.GameState.Paused = false
	s.eventDispatcher.Dispatch(event.Event{Type: event.GameResumed})
}

func (s *StateSystem) IsPaused() bool {
	return s.ecs.GameState.Paused
}

// Reset начинает новую партию и оповещает HUD о новых значениях.
func (s *StateSystem) Reset(lives int) {
	s.ecs.GameState.Reset(lives)
	s.eventDispatcher.Dispatch(event.Event{Type: event.ScoreChanged, Data: 0})
	s.eventDispatcher.Dispatch(event.Event{Type: event.HpChanged, Data: lives})
	s.eventDispatcher.Dispatch(event.Event{Type: event.BombChanged, Data: 0})
}
