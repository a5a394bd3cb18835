// internal/system/spawn_test.go
package system

import (
	"strings"
	"testing"

	"go-tanchiki/internal/component"
	"go-tanchiki/internal/config"
	"go-tanchiki/internal/event"
	"go-tanchiki/internal/level"
	"go-tanchiki/internal/types"
	"go-tanchiki/internal/utils"
)

func emptyLevel(t *testing.T) *level.Level {
	t.Helper()
	rows := make([]string, config.GridSize)
	for i := range rows {
		rows[i] = strings.Repeat(".", config.GridSize)
	}
	l, err := level.New(rows)
	if err != nil {
		t.Fatalf("level.New: %v", err)
	}
	return l
}

func newTestSpawner(seed int64) *SpawnSystem {
	var next types.EntityID
	alloc := func() types.EntityID {
		next++
		return next
	}
	return NewSpawnSystem(config.DefaultTuning(), utils.NewPRNGService(seed), event.NewDispatcher(), alloc)
}

func TestResetScalesWithStage(t *testing.T) {
	s := newTestSpawner(1)

	s.Reset(1)
	if s.Remaining != 16 {
		t.Errorf("stage 1: Remaining = %d, want 16", s.Remaining)
	}
	s.Reset(3)
	if s.Remaining != 24 {
		t.Errorf("stage 3: Remaining = %d, want 24", s.Remaining)
	}
	// Рост упирается в потолок.
	s.Reset(100)
	if s.Remaining != 40 {
		t.Errorf("stage 100: Remaining = %d, want cap 40", s.Remaining)
	}
}

func TestTrySpawnDecrementsRemaining(t *testing.T) {
	s := newTestSpawner(1)
	s.Reset(1)
	lvl := emptyLevel(t)

	e := s.TrySpawn(lvl, nil, nil)
	if e == nil {
		t.Fatal("spawn on an empty level must succeed")
	}
	if s.Remaining != 15 {
		t.Errorf("Remaining = %d, want 15", s.Remaining)
	}
	if !e.Invulnerable() {
		t.Error("fresh enemy must carry a spawn shield")
	}
	if e.Y != float64(config.TileSize) {
		t.Errorf("enemy spawned at Y=%v, want top row %v", e.Y, config.TileSize)
	}
}

func TestTrySpawnRespectsActiveCap(t *testing.T) {
	s := newTestSpawner(1)
	s.Reset(1)
	lvl := emptyLevel(t)
	cfg := config.DefaultTuning()

	var enemies []*component.EnemyTank
	for len(enemies) < cfg.Enemies.MaxActive {
		e := s.TrySpawn(lvl, nil, enemies)
		if e == nil {
			t.Fatal("spawn under the cap must succeed")
		}
		// Раздвигаем врагов, чтобы клетки спауна оставались свободными.
		e.Y += float64(config.TileSize * (2 + len(enemies)))
		enemies = append(enemies, e)
	}

	before := s.Remaining
	if e := s.TrySpawn(lvl, nil, enemies); e != nil {
		t.Fatal("spawn at the active cap must fail")
	}
	if s.Remaining != before {
		t.Error("failed spawn must not consume the wave counter")
	}
}

func TestTrySpawnSkipsOccupiedCells(t *testing.T) {
	s := newTestSpawner(1)
	s.Reset(1)
	lvl := emptyLevel(t)

	// Все три клетки спауна заняты врагами.
	var enemies []*component.EnemyTank
	for _, cell := range spawnCells {
		e := s.TrySpawn(lvl, nil, enemies)
		if e == nil {
			t.Fatal("setup spawn failed")
		}
		e.X = float64(cell[0] * config.TileSize)
		e.Y = float64(cell[1] * config.TileSize)
		enemies = append(enemies, e)
	}

	before := s.Remaining
	if e := s.TrySpawn(lvl, nil, enemies); e != nil {
		t.Fatal("spawn must fail when every cell is occupied")
	}
	if s.Remaining != before {
		t.Error("failed spawn must not consume the wave counter")
	}
}

func TestTrySpawnSkipsCellUnderPlayer(t *testing.T) {
	s := newTestSpawner(1)
	s.Reset(1)

	// Рельеф закрывает две клетки из трёх, игрок стоит на третьей.
	rows := make([]string, config.GridSize)
	for i := range rows {
		rows[i] = strings.Repeat(".", config.GridSize)
	}
	blockCell := func(x, y int) {
		b := []byte(rows[y])
		b[x] = 'S'
		rows[y] = string(b)
	}
	blockCell(1, 1)
	blockCell(23, 1)
	lvl, err := level.New(rows)
	if err != nil {
		t.Fatalf("level.New: %v", err)
	}

	player := component.NewPlayerTank(99, float64(12*config.TileSize), float64(1*config.TileSize), config.DefaultTuning())

	before := s.Remaining
	if e := s.TrySpawn(lvl, player, nil); e != nil {
		t.Fatal("spawn must fail when the only free cell is under the player")
	}
	if s.Remaining != before {
		t.Error("failed spawn must not consume the wave counter")
	}
}

func TestUpdatePacing(t *testing.T) {
	s := newTestSpawner(1)
	s.Reset(1)
	lvl := emptyLevel(t)

	if e := s.Update(0.1, lvl, nil, nil); e != nil {
		t.Fatal("nothing may spawn before the initial delay")
	}
	e := s.Update(config.InitialSpawnDelay, lvl, nil, nil)
	if e == nil {
		t.Fatal("spawn must fire once the initial delay elapses")
	}
	// Сразу после удачного спауна таймер заряжен заново.
	if e2 := s.Update(0.1, lvl, nil, []*component.EnemyTank{e}); e2 != nil {
		t.Fatal("no spawn may happen right after a successful one")
	}
}

func TestUpdateStopsWhenWaveExhausted(t *testing.T) {
	s := newTestSpawner(1)
	s.Reset(1)
	s.Remaining = 0
	lvl := emptyLevel(t)
	if e := s.Update(100, lvl, nil, nil); e != nil {
		t.Fatal("exhausted wave must not spawn")
	}
}
