// cmd/game/play.go
package main

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"go-tanchiki/internal/app"
	"go-tanchiki/internal/config"
	"go-tanchiki/internal/defs"
	"go-tanchiki/internal/level"
	"go-tanchiki/internal/state"
	"go-tanchiki/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start the game window",
	RunE:  runPlay,
}

// AppGame — обёртка ebiten.Game: меряет реальное dt между кадрами
// и отдаёт его машине состояний. Кламп спасает от телепортации пуль
// после фриза окна.
type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	return a.stateMachine.Update(deltaTime)
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func runPlay(cmd *cobra.Command, args []string) error {
	tuning, err := config.LoadTuning(flagConfig)
	if err != nil {
		return err
	}

	layout, err := level.LoadLayout(flagLevel)
	if err != nil {
		return err
	}

	if flagEnemyDefs != "" {
		if err := defs.LoadEnemyDefinitions(flagEnemyDefs); err != nil {
			return err
		}
	}
	if flagPowerDefs != "" {
		if err := defs.LoadPowerUpDefinitions(flagPowerDefs); err != nil {
			return err
		}
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Info("starting game", "seed", seed)

	game, err := app.NewGame(tuning, layout, seed)
	if err != nil {
		return err
	}
	game.StartStage = flagStage

	store, err := storage.Open(flagDBPath)
	if err != nil {
		// Без базы играть можно, рекорды просто не сохранятся.
		log.Warn("scores database unavailable", "err", err)
		store = nil
	} else {
		defer store.Close()
	}

	sm := state.NewStateMachine()
	gs := state.NewGameState(sm, game, store)
	sm.SetState(state.NewMenuState(sm, gs))

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Tanchiki")
	return ebiten.RunGame(&AppGame{stateMachine: sm, lastUpdateTime: time.Now()})
}
