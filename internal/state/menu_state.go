// internal/state/menu_state.go
package state

import (
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-tanchiki/internal/config"
)

// MenuState — титульный экран поверх пустого поля.
type MenuState struct {
	sm *StateMachine
	gs *GameState
}

// NewMenuState создаёт меню. gs — игровой экран, в который уходим по Enter.
func NewMenuState(sm *StateMachine, gs *GameState) *MenuState {
	return &MenuState{sm: sm, gs: gs}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		if err := m.gs.Game().StartNewGame(); err != nil {
			log.Error("cannot start game", "err", err)
			return err
		}
		m.sm.SetState(m.gs)
	}
	return nil
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	snap := m.gs.Game().Snapshot()
	m.gs.renderer.Draw(screen, snap)
	m.gs.panel.Draw(screen, snap)
	m.gs.renderer.DrawOverlay(screen, "TANCHIKI", config.TitleColor, []string{
		"protect the base, clear the wave",
		"ENTER - start   Q - quit",
	})
}

func (m *MenuState) Exit() {}
