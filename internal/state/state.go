// internal/state/state.go
package state

import "github.com/hajimehoshi/ebiten/v2"

// State — экран приложения: меню, игра, пауза.
// Update возвращает ошибку наружу — так состояние может завершить
// приложение через ebiten.Termination.
type State interface {
	Enter()
	Update(deltaTime float64) error
	Draw(screen *ebiten.Image)
	Exit()
}

// StateMachine — машина состояний приложения.
type StateMachine struct {
	current State
}

// NewStateMachine создаёт машину без начального состояния.
func NewStateMachine() *StateMachine {
	return &StateMachine{}
}

// SetState переключает состояние с вызовом Exit/Enter.
func (sm *StateMachine) SetState(newState State) {
	if sm.current != nil {
		sm.current.Exit()
	}
	sm.current = newState
	if sm.current != nil {
		sm.current.Enter()
	}
}

// Update обновляет текущее состояние.
func (sm *StateMachine) Update(deltaTime float64) error {
	if sm.current != nil {
		return sm.current.Update(deltaTime)
	}
	return nil
}

// Draw отрисовывает текущее состояние.
func (sm *StateMachine) Draw(screen *ebiten.Image) {
	if sm.current != nil {
		sm.current.Draw(screen)
	}
}
