// internal/system/spawn.go
package system

import (
	"go-tanchiki/internal/component"
	"go-tanchiki/internal/config"
	"go-tanchiki/internal/defs"
	"go-tanchiki/internal/event"
	"go-tanchiki/internal/level"
	"go-tanchiki/internal/types"
	"go-tanchiki/internal/utils"
)

// spawnCells — фиксированные клетки появления врагов (верх поля).
var spawnCells = [][2]int{
	{1, 1},
	{12, 1},
	{23, 1},
}

// SpawnSystem следит за численностью врагов: сколько осталось
// заспаунить на этапе и сколько может жить одновременно.
type SpawnSystem struct {
	cfg        config.Tuning
	rng        *utils.PRNGService
	dispatcher *event.Dispatcher
	alloc      func() types.EntityID

	Remaining int // сколько врагов ещё появится на этапе
	timer     float64
}

// NewSpawnSystem создаёт спаунер. alloc выдаёт ID для новых танков.
func NewSpawnSystem(cfg config.Tuning, rng *utils.PRNGService, dispatcher *event.Dispatcher, alloc func() types.EntityID) *SpawnSystem {
	return &SpawnSystem{cfg: cfg, rng: rng, dispatcher: dispatcher, alloc: alloc}
}

// Reset заряжает счётчик этапа: base + (stage-1)*inc, но не больше максимума.
func (s *SpawnSystem) Reset(stage int) {
	total := s.cfg.Enemies.BaseCount + (stage-1)*s.cfg.Enemies.PerStage
	if total > s.cfg.Enemies.MaxTotal {
		total = s.cfg.Enemies.MaxTotal
	}
	s.Remaining = total
	s.timer = config.InitialSpawnDelay
}

// Update тикает таймер спауна. После удачного спауна пауза длиннее,
// чем после неудачного — так волна растягивается во времени.
// Возвращает нового врага или nil.
func (s *SpawnSystem) Update(dt float64, lvl *level.Level, player *component.PlayerTank, enemies []*component.EnemyTank) *component.EnemyTank {
	if s.Remaining <= 0 {
		return nil
	}
	s.timer -= dt
	if s.timer > 0 {
		return nil
	}
	e := s.TrySpawn(lvl, player, enemies)
	if e != nil {
		s.timer = config.SpawnDelayOnSpawn
	} else {
		s.timer = config.SpawnDelayOnFail
	}
	return e
}

// TrySpawn пробует выставить врага: клетки перебираются в случайном
// порядке, подходит первая свободная от рельефа, игрока и врагов.
// Ни одной свободной — молчаливый отказ без декремента счётчика.
func (s *SpawnSystem) TrySpawn(lvl *level.Level, player *component.PlayerTank, enemies []*component.EnemyTank) *component.EnemyTank {
	if s.Remaining <= 0 || len(enemies) >= s.cfg.Enemies.MaxActive {
		return nil
	}

	cells := make([][2]int, len(spawnCells))
	copy(cells, spawnCells)
	s.rng.Shuffle(len(cells), func(i, j int) { cells[i], cells[j] = cells[j], cells[i] })

	for _, cell := range cells {
		x := float64(cell[0] * config.TileSize)
		y := float64(cell[1] * config.TileSize)
		rect := utils.NewRect(x, y, config.TileSize, config.TileSize)
		if lvl.IsRectBlocked(rect) {
			continue
		}
		if player != nil && player.Active && rect.Intersects(player.Rect()) {
			continue
		}
		occupied := false
		for _, e := range enemies {
			if rect.Intersects(e.Rect()) {
				occupied = true
				break
			}
		}
		if occupied {
			continue
		}

		idx := s.rng.ChooseWeighted(defs.VariantWeights())
		def := defs.EnemyLibrary[defs.EnemyVariants[idx]]
		enemy := component.NewEnemyTank(s.alloc(), x, y, def, s.cfg, s.rng)
		s.Remaining--
		s.dispatcher.Dispatch(event.Event{Type: event.EnemySpawned, Data: def.ID})
		return enemy
	}
	return nil
}
