// internal/state/pause_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-tanchiki/internal/config"
)

// Убеждаемся, что PauseState соответствует интерфейсу State.
var _ State = (*PauseState)(nil)

// PauseState замораживает симуляцию: рисует предыдущий экран
// без обновления и ждёт отжатия паузы.
type PauseState struct {
	sm   *StateMachine
	prev *GameState
}

func NewPauseState(sm *StateMachine, prev *GameState) *PauseState {
	return &PauseState{sm: sm, prev: prev}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64) error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyP) {
		s.sm.SetState(s.prev)
	}
	return nil
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	s.prev.Draw(screen)
	s.prev.renderer.DrawOverlay(screen, "PAUSED", config.TitleColor, []string{
		"ESC - resume   Q - quit",
	})
}

func (s *PauseState) Exit() {}
