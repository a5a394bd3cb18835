// internal/app/snapshot.go
package app

import (
	"image/color"

	"go-tanchiki/internal/component"
	"go-tanchiki/internal/config"
	"go-tanchiki/internal/defs"
	"go-tanchiki/internal/level"
)

// TileView — тайл для отрисовки.
type TileView struct {
	GridX, GridY int
	Kind         string
	Color        color.RGBA
	Overlay      bool
}

// TankView — танк для отрисовки.
type TankView struct {
	X, Y         float64
	Dir          component.Direction
	Friendly     bool
	Variant      string
	Color        color.RGBA
	Invulnerable bool
}

// BulletView — пуля для отрисовки.
type BulletView struct {
	X, Y     float64
	Friendly bool
}

// PowerUpView — бонус на поле.
type PowerUpView struct {
	X, Y  float64
	Kind  defs.PowerUpType
	Color color.RGBA
}

// Snapshot — read-модель одного кадра: всё, что нужно рендереру и
// панели, в простых типах. Рендерер не трогает живые структуры
// симуляции и не может их случайно помутировать.
type Snapshot struct {
	Tiles    []TileView
	Tanks    []TankView
	Bullets  []BulletView
	PowerUps []PowerUpView

	Phase         component.GamePhase
	GameOverCause string

	Stage         int
	Score         int
	Lives         int
	EnemiesLeft   int // ещё не заспауненные
	EnemiesActive int
	PlayerDead    bool
	RespawnTimer  float64
	InvulnTimer   float64
	RapidTimer    float64
	SpeedTimer    float64
}

// Snapshot собирает кадр для отрисовки.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Phase:         g.Phase,
		GameOverCause: g.GameOverCause,
		Stage:         g.Stage,
		Score:         g.Score,
		Lives:         g.Player.Lives,
		EnemiesLeft:   g.SpawnSystem.Remaining,
		EnemiesActive: len(g.Enemies),
		PlayerDead:    g.Player.Dead,
		RespawnTimer:  g.Player.RespawnTimer,
		InvulnTimer:   g.Player.InvulnerableTimer,
		RapidTimer:    g.Player.RapidTimer,
		SpeedTimer:    g.Player.SpeedTimer,
	}

	g.Level.ForEachTile(func(t *level.Tile) {
		s.Tiles = append(s.Tiles, TileView{
			GridX:   t.GridX,
			GridY:   t.GridY,
			Kind:    t.Def.Type.String(),
			Color:   t.Def.Color,
			Overlay: t.Def.Overlay,
		})
	})

	if g.Player.Active {
		s.Tanks = append(s.Tanks, TankView{
			X:            g.Player.X,
			Y:            g.Player.Y,
			Dir:          g.Player.Dir,
			Friendly:     true,
			Variant:      "player",
			Color:        config.PlayerColor,
			Invulnerable: g.Player.Invulnerable(),
		})
	}
	for _, e := range g.Enemies {
		s.Tanks = append(s.Tanks, TankView{
			X:            e.X,
			Y:            e.Y,
			Dir:          e.Dir,
			Friendly:     false,
			Variant:      e.Variant,
			Color:        defs.EnemyLibrary[e.Variant].Color.ToColor(),
			Invulnerable: e.Invulnerable(),
		})
	}

	for _, b := range g.Bullets {
		s.Bullets = append(s.Bullets, BulletView{X: b.X, Y: b.Y, Friendly: b.Friendly})
	}

	for _, pu := range g.PowerUps {
		s.PowerUps = append(s.PowerUps, PowerUpView{
			X:     pu.X,
			Y:     pu.Y,
			Kind:  pu.Type,
			Color: defs.PowerUpLibrary[pu.Type].Color.ToColor(),
		})
	}

	return s
}
