// internal/app/game.go
package app

import (
	"go-tanchiki/internal/component"
	"go-tanchiki/internal/config"
	"go-tanchiki/internal/defs"
	"go-tanchiki/internal/event"
	"go-tanchiki/internal/level"
	"go-tanchiki/internal/system"
	"go-tanchiki/internal/types"
	"go-tanchiki/internal/utils"
)

// Game — сердце симуляции: владеет сеткой, танками, пулями и бонусами
// и единолично мутирует их через контракты компонентов и систем.
// Контекст этапа (счётчик врагов, флаг базы, очки) живёт здесь же,
// а не в глобальных переменных.
type Game struct {
	Level    *level.Level
	Player   *component.PlayerTank
	Enemies  []*component.EnemyTank
	Bullets  []*component.Bullet
	PowerUps []*component.PowerUp

	AISystem        *system.EnemyAISystem
	SpawnSystem     *system.SpawnSystem
	CombatSystem    *system.CombatSystem
	EventDispatcher *event.Dispatcher
	Rng             *utils.PRNGService
	Tuning          config.Tuning

	Stage         int
	StartStage    int // с какого этапа начинается новая игра
	Score         int
	Phase         component.GamePhase
	GameOverCause string

	layout []string
	nextID types.EntityID
	tanks  map[types.EntityID]*component.Tank // реестр для невладеющих ссылок пуль
}

// NewGame собирает игру: сразу строит уровень (ошибка макета — фатальна)
// и создаёт неактивного игрока; игра начинается с меню.
func NewGame(tuning config.Tuning, layout []string, seed int64) (*Game, error) {
	lvl, err := level.New(layout)
	if err != nil {
		return nil, err
	}

	dispatcher := event.NewDispatcher()
	rng := utils.NewPRNGService(seed)

	g := &Game{
		Level:           lvl,
		AISystem:        system.NewEnemyAISystem(tuning, rng),
		CombatSystem:    system.NewCombatSystem(dispatcher),
		EventDispatcher: dispatcher,
		Rng:             rng,
		Tuning:          tuning,
		Stage:           1,
		StartStage:      1,
		Phase:           component.PhaseMenu,
		layout:          layout,
		tanks:           make(map[types.EntityID]*component.Tank),
	}
	g.SpawnSystem = system.NewSpawnSystem(tuning, rng, dispatcher, g.allocID)

	g.createPlayer()
	g.Player.Active = false

	return g, nil
}

func (g *Game) allocID() types.EntityID {
	g.nextID++
	return g.nextID
}

// createPlayer ставит нового игрока на точку спауна и регистрирует его.
func (g *Game) createPlayer() {
	x := float64(config.PlayerSpawnTileX * config.TileSize)
	y := float64(config.PlayerSpawnTileY * config.TileSize)
	g.Player = component.NewPlayerTank(g.allocID(), x, y, g.Tuning)
	g.tanks[g.Player.ID] = &g.Player.Tank
}

// StartNewGame начинает игру со стартового этапа: жизни и очки
// сбрасываются.
func (g *Game) StartNewGame() error {
	g.Stage = g.StartStage
	if g.Stage < 1 {
		g.Stage = 1
	}
	g.Score = 0
	g.createPlayer()
	return g.PrepareStage(true)
}

// PrepareStage пересобирает уровень и обнуляет этапное состояние.
// Победа ведёт сюда же со следующим номером этапа: очки и жизни
// при этом сохраняются.
func (g *Game) PrepareStage(resetLives bool) error {
	lvl, err := level.New(g.layout)
	if err != nil {
		return err
	}
	g.Level = lvl

	// Чистим реестр от старых врагов, игрок остаётся.
	g.tanks = map[types.EntityID]*component.Tank{g.Player.ID: &g.Player.Tank}
	g.Enemies = nil
	g.Bullets = nil
	g.PowerUps = nil

	g.SpawnSystem.Reset(g.Stage)

	if resetLives {
		g.Player.Lives = g.Tuning.Player.Lives
	}
	x := float64(config.PlayerSpawnTileX * config.TileSize)
	y := float64(config.PlayerSpawnTileY * config.TileSize)
	g.Player.ResetPosition(x, y)

	g.Phase = component.PhasePlaying
	g.GameOverCause = ""
	return nil
}

// HandleConfirm — подтверждение с экранов меню/поражения/победы.
func (g *Game) HandleConfirm() error {
	switch g.Phase {
	case component.PhaseMenu, component.PhaseGameOver:
		return g.StartNewGame()
	case component.PhaseVictory:
		g.Stage++
		return g.PrepareStage(false)
	}
	return nil
}

// enemyTanks собирает базовые танки врагов (препятствия для игрока
// и проверка точки респауна).
func (g *Game) enemyTanks() []*component.Tank {
	out := make([]*component.Tank, 0, len(g.Enemies))
	for _, e := range g.Enemies {
		out = append(out, &e.Tank)
	}
	return out
}

// obstaclesFor собирает препятствия для одного врага: все остальные
// враги плюс живой игрок.
func (g *Game) obstaclesFor(self *component.EnemyTank) []*component.Tank {
	out := make([]*component.Tank, 0, len(g.Enemies))
	for _, e := range g.Enemies {
		if e != self {
			out = append(out, &e.Tank)
		}
	}
	if g.Player.Active {
		out = append(out, &g.Player.Tank)
	}
	return out
}

// onPlayerHit применяет попадание по игроку: минус жизнь и либо
// респаун, либо конец игры. Неуязвимого или уже мёртвого не трогаем.
func (g *Game) onPlayerHit() {
	p := g.Player
	if p.Invulnerable() || !p.Active {
		return
	}
	p.Lives--
	if p.Lives <= 0 {
		p.Lives = 0
		p.Active = false
		g.gameOver(component.GameOverCausePlayer)
	} else {
		p.StartRespawn()
	}
}

// gameOver переводит игру в конечное состояние один раз.
func (g *Game) gameOver(cause string) {
	if g.Phase != component.PhasePlaying {
		return
	}
	g.Phase = component.PhaseGameOver
	g.GameOverCause = cause
	g.EventDispatcher.Dispatch(event.Event{Type: event.GameOver, Data: cause})
}

// maybeDropPowerUp кидает кость на бонус на месте уничтоженного врага.
func (g *Game) maybeDropPowerUp(e *component.EnemyTank) {
	if g.Rng.Float64() >= g.Tuning.PowerUps.DropChance {
		return
	}
	idx := g.Rng.ChooseWeighted(defs.PowerUpWeights())
	if idx < 0 {
		return
	}
	kind := defs.PowerUpOrder[idx]
	pu := component.NewPowerUp(kind, e.X, e.Y, g.Tuning.PowerUps.Lifetime)
	g.PowerUps = append(g.PowerUps, pu)
	g.EventDispatcher.Dispatch(event.Event{Type: event.PowerUpSpawned, Data: kind})
}

// updatePowerUps тикает время жизни бонусов и подбирает их игроком.
func (g *Game) updatePowerUps(dt float64) {
	alive := g.PowerUps[:0]
	for _, pu := range g.PowerUps {
		if pu.Update(dt) {
			continue
		}
		if g.Player.Active && g.Player.Rect().Intersects(pu.Rect()) {
			g.Player.ApplyPowerUp(defs.PowerUpLibrary[pu.Type])
			g.EventDispatcher.Dispatch(event.Event{Type: event.PowerUpCollected, Data: pu.Type})
			continue
		}
		alive = append(alive, pu)
	}
	g.PowerUps = alive
}

// Update делает один кадр симуляции в фиксированном порядке:
// таймеры/бонусы игрока -> респаун либо ввод -> ИИ всех врагов ->
// боевой проход пуль -> спаунер -> бонусы -> терминальные условия.
func (g *Game) Update(dt float64, in InputFrame) {
	if g.Phase != component.PhasePlaying {
		if in.Confirm {
			// Ошибка здесь невозможна: макет уже проходил валидацию в NewGame.
			_ = g.HandleConfirm()
		}
		return
	}

	p := g.Player
	p.UpdateTimers(dt)
	p.UpdatePowerUps(dt)

	if p.Dead {
		p.UpdateRespawn(dt, g.Level, g.enemyTanks())
	} else {
		if dir, ok := in.Direction(); ok {
			p.Move(dir, dt, g.Level, g.enemyTanks())
		}
		if in.Fire {
			if b := p.Fire(); b != nil {
				g.Bullets = append(g.Bullets, b)
				g.EventDispatcher.Dispatch(event.Event{Type: event.BulletFired, Data: p.ID})
			}
		}
	}

	for _, e := range append([]*component.EnemyTank(nil), g.Enemies...) {
		if b := g.AISystem.Update(dt, e, g.Level, g.obstaclesFor(e)); b != nil {
			g.Bullets = append(g.Bullets, b)
			g.EventDispatcher.Dispatch(event.Event{Type: event.BulletFired, Data: e.ID})
		}
	}

	bf := &system.Battlefield{
		Level:       g.Level,
		Player:      g.Player,
		Enemies:     g.Enemies,
		Bullets:     g.Bullets,
		OwnerByID:   func(id types.EntityID) *component.Tank { return g.tanks[id] },
		OnPlayerHit: g.onPlayerHit,
	}
	res := g.CombatSystem.Resolve(dt, bf)
	g.Enemies = bf.Enemies
	g.Bullets = bf.Bullets
	g.Score += res.Score
	for _, dead := range res.Destroyed {
		delete(g.tanks, dead.ID)
		g.maybeDropPowerUp(dead)
	}
	if res.BaseDestroyed {
		g.gameOver(component.GameOverCauseBase)
	}

	if e := g.SpawnSystem.Update(dt, g.Level, g.Player, g.Enemies); e != nil {
		g.tanks[e.ID] = &e.Tank
		g.Enemies = append(g.Enemies, e)
	}

	g.updatePowerUps(dt)

	if !g.Level.BaseAlive {
		g.gameOver(component.GameOverCauseBase)
	}
	if g.Phase == component.PhasePlaying && g.SpawnSystem.Remaining == 0 && len(g.Enemies) == 0 {
		g.Phase = component.PhaseVictory
		g.EventDispatcher.Dispatch(event.Event{Type: event.StageCleared, Data: g.Stage})
	}
}
