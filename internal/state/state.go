// internal/state/state.go
package state

import (
	"go-plane-war/internal/config"
	"go-plane-war/internal/interfaces"
	"go-plane-war/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
)

// State - интерфейс для всех состояний
type State interface {
	Enter()
	Update(deltaTime float64)
	Draw(screen *ebiten.Image)
	Exit()
}

// Context - зависимости, общие для всех состояний
type Context struct {
	Fonts  *ui.Fonts
	Audio  interfaces.SoundPlayer
	Scores interfaces.HighScoreStore
	Tuning config.Tuning
	Seed   int64
}

// StateMachine - структура для управления состояниями
type StateMachine struct {
	current State
}

// NewStateMachine создаёт новую машину состояний без начального состояния
func NewStateMachine() *StateMachine {
	return &StateMachine{}
}

// SetState устанавливает новое состояние
func (sm *StateMachine) SetState(newState State) {
	if sm.current != nil {
		sm.current.Exit()
	}
	sm.current = newState
	if sm.current != nil {
		sm.current.Enter()
	}
}

// Current возвращает активное состояние
func (sm *StateMachine) Current() State {
	return sm.current
}

func (sm *StateMachine) Update(deltaTime float64) {
	if sm.current != nil {
		sm.current.Update(deltaTime)
	}
}

func (sm *StateMachine) Draw(screen *ebiten.Image) {
	if sm.current != nil {
		sm.current.Draw(screen)
	}
}
