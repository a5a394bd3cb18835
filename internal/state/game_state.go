// internal/state/game_state.go
package state

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-tanchiki/internal/app"
	"go-tanchiki/internal/component"
	"go-tanchiki/internal/config"
	"go-tanchiki/internal/storage"
	"go-tanchiki/internal/ui"
	"go-tanchiki/pkg/render"
)

// GameState — основной экран: опрашивает клавиатуру, тикает симуляцию
// и рисует поле с панелью. Терминальные экраны (поражение/победа)
// рисуются здесь же оверлеем, фазой управляет сама симуляция.
type GameState struct {
	sm       *StateMachine
	game     *app.Game
	renderer *render.Renderer
	panel    *ui.InfoPanel
	store    *storage.Store // nil — играем без таблицы рекордов

	lastPhase component.GamePhase
}

// NewGameState собирает игровой экран вокруг готовой симуляции.
func NewGameState(sm *StateMachine, game *app.Game, store *storage.Store) *GameState {
	renderer := render.NewRenderer()
	gs := &GameState{
		sm:        sm,
		game:      game,
		renderer:  renderer,
		panel:     ui.NewInfoPanel(renderer.Font()),
		store:     store,
		lastPhase: game.Phase,
	}
	gs.refreshHighScore()
	return gs
}

// Game возвращает симуляцию (нужно меню для старта новой игры).
func (g *GameState) Game() *app.Game {
	return g.game
}

func (g *GameState) refreshHighScore() {
	if g.store == nil {
		return
	}
	best, err := g.store.HighScore()
	if err != nil {
		log.Warn("cannot read high score", "err", err)
		return
	}
	g.panel.HighScore = best
}

func (g *GameState) Enter() {}

// readInput переводит состояние клавиатуры в кадр ввода.
func readInput() app.InputFrame {
	return app.InputFrame{
		Up:      ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW),
		Down:    ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS),
		Left:    ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA),
		Right:   ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD),
		Fire:    ebiten.IsKeyPressed(ebiten.KeySpace),
		Confirm: inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace),
		Quit:    inpututil.IsKeyJustPressed(ebiten.KeyQ),
	}
}

func (g *GameState) Update(deltaTime float64) error {
	in := readInput()
	if in.Quit {
		// Выход посреди партии тоже оставляет запись в таблице.
		if g.game.Phase == component.PhasePlaying && g.game.Score > 0 && g.store != nil {
			if _, err := g.store.SaveScore(g.game.Score, g.game.Stage, "quit"); err != nil {
				log.Warn("cannot save score", "err", err)
			}
		}
		return ebiten.Termination
	}
	if g.game.Phase == component.PhasePlaying &&
		(inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyP)) {
		g.sm.SetState(NewPauseState(g.sm, g))
		return nil
	}

	g.game.Update(deltaTime, in)

	// Переход в game over — момент записи результата.
	if g.game.Phase == component.PhaseGameOver && g.lastPhase != component.PhaseGameOver {
		g.saveScore()
	}
	g.lastPhase = g.game.Phase
	return nil
}

func (g *GameState) saveScore() {
	if g.store == nil {
		return
	}
	if _, err := g.store.SaveScore(g.game.Score, g.game.Stage, g.game.GameOverCause); err != nil {
		log.Warn("cannot save score", "err", err)
		return
	}
	g.refreshHighScore()
}

func (g *GameState) Draw(screen *ebiten.Image) {
	snap := g.game.Snapshot()
	g.renderer.Draw(screen, snap)
	g.panel.Draw(screen, snap)

	switch snap.Phase {
	case component.PhaseGameOver:
		cause := "THE BASE HAS FALLEN"
		if snap.GameOverCause == component.GameOverCausePlayer {
			cause = "NO TANKS LEFT"
		}
		g.renderer.DrawOverlay(screen, "GAME OVER", config.DefeatColor, []string{
			cause,
			fmt.Sprintf("SCORE %d", snap.Score),
			"ENTER - new game   Q - quit",
		})
	case component.PhaseVictory:
		g.renderer.DrawOverlay(screen, "STAGE CLEAR", config.VictoryColor, []string{
			fmt.Sprintf("SCORE %d", snap.Score),
			fmt.Sprintf("NEXT: STAGE %d", snap.Stage+1),
			"ENTER - continue",
		})
	}
}

func (g *GameState) Exit() {}
