// internal/system/combat_test.go
package system

import (
	"strings"
	"testing"

	"go-tanchiki/internal/component"
	"go-tanchiki/internal/config"
	"go-tanchiki/internal/defs"
	"go-tanchiki/internal/event"
	"go-tanchiki/internal/level"
	"go-tanchiki/internal/types"
	"go-tanchiki/internal/utils"
)

// testArena — минимальная обвязка боевого прохода.
type testArena struct {
	dispatcher *event.Dispatcher
	combat     *CombatSystem
	tanks      map[types.EntityID]*component.Tank
	bf         *Battlefield
	playerHits int
}

func newArena(t *testing.T, lvl *level.Level) *testArena {
	t.Helper()
	a := &testArena{
		dispatcher: event.NewDispatcher(),
		tanks:      make(map[types.EntityID]*component.Tank),
	}
	a.combat = NewCombatSystem(a.dispatcher)
	a.bf = &Battlefield{
		Level:     lvl,
		OwnerByID: func(id types.EntityID) *component.Tank { return a.tanks[id] },
		OnPlayerHit: func() {
			a.playerHits++
			if a.bf.Player != nil {
				a.bf.Player.Active = false
			}
		},
	}
	return a
}

func (a *testArena) addEnemy(t *testing.T, variant string, x, y float64) *component.EnemyTank {
	t.Helper()
	def, ok := defs.EnemyLibrary[variant]
	if !ok {
		t.Fatalf("unknown variant %q", variant)
	}
	id := types.EntityID(len(a.tanks) + 1)
	e := component.NewEnemyTank(id, x, y, def, config.DefaultTuning(), utils.NewPRNGService(1))
	e.InvulnerableTimer = 0 // тестам спаун-щит не нужен, если не сказано иное
	a.tanks[id] = &e.Tank
	a.bf.Enemies = append(a.bf.Enemies, e)
	return e
}

func (a *testArena) addShooter(id types.EntityID, friendly bool) *component.Tank {
	tank := component.NewTank(id, 0, 0, 96, 0.35, 360, friendly)
	a.tanks[id] = &tank
	return a.tanks[id]
}

func (a *testArena) fireAt(owner *component.Tank, x, y float64, dir component.Direction) *component.Bullet {
	b := component.NewBullet(x, y, dir, owner.BulletSpeed, owner.ID, owner.Friendly)
	owner.ActiveBullets++
	a.bf.Bullets = append(a.bf.Bullets, b)
	return b
}

func TestBulletLeavingFieldFreesOwnerSlot(t *testing.T) {
	a := newArena(t, emptyLevel(t))
	shooter := a.addShooter(1, true)
	a.fireAt(shooter, 12, 4, component.DirUp)

	a.combat.Resolve(0.1, a.bf)

	if len(a.bf.Bullets) != 0 {
		t.Fatal("bullet past the field edge must be removed")
	}
	if shooter.ActiveBullets != 0 {
		t.Errorf("ActiveBullets = %d, want 0", shooter.ActiveBullets)
	}
}

func TestBulletDestroysBrickAndStops(t *testing.T) {
	rows := make([]string, config.GridSize)
	for i := range rows {
		rows[i] = strings.Repeat(".", config.GridSize)
	}
	b := []byte(rows[5])
	b[5] = '#'
	rows[5] = string(b)
	lvl, err := level.New(rows)
	if err != nil {
		t.Fatalf("level.New: %v", err)
	}

	a := newArena(t, lvl)
	shooter := a.addShooter(1, true)
	// Пуля прямо над кирпичом, летит вниз.
	a.fireAt(shooter, 5*config.TileSize+12, 5*config.TileSize-4, component.DirDown)

	a.combat.Resolve(0.05, a.bf)

	if lvl.TileAt(5, 5) != nil {
		t.Error("brick must be destroyed")
	}
	if len(a.bf.Bullets) != 0 {
		t.Error("bullet must stop on the brick")
	}
	if shooter.ActiveBullets != 0 {
		t.Error("owner slot must be freed")
	}
}

func TestBaseHitReportsDefeat(t *testing.T) {
	rows := make([]string, config.GridSize)
	for i := range rows {
		rows[i] = strings.Repeat(".", config.GridSize)
	}
	b := []byte(rows[20])
	b[10] = 'B'
	rows[20] = string(b)
	lvl, err := level.New(rows)
	if err != nil {
		t.Fatalf("level.New: %v", err)
	}

	a := newArena(t, lvl)
	shooter := a.addShooter(1, false)
	a.fireAt(shooter, 10*config.TileSize+12, 20*config.TileSize-4, component.DirDown)

	res := a.combat.Resolve(0.05, a.bf)
	if !res.BaseDestroyed {
		t.Fatal("base hit must set BaseDestroyed")
	}
	if lvl.BaseAlive {
		t.Error("level must mark the base as dead")
	}
}

func TestFriendlyBulletKillsEnemy(t *testing.T) {
	a := newArena(t, emptyLevel(t))
	shooter := a.addShooter(100, true)
	enemy := a.addEnemy(t, "basic", 5*config.TileSize, 5*config.TileSize)

	a.fireAt(shooter, enemy.Rect().CenterX(), enemy.Rect().CenterY(), component.DirDown)
	res := a.combat.Resolve(0.001, a.bf)

	if len(a.bf.Enemies) != 0 {
		t.Fatal("basic enemy must die from one hit")
	}
	if res.Score != defs.EnemyLibrary["basic"].Score {
		t.Errorf("Score = %d, want %d", res.Score, defs.EnemyLibrary["basic"].Score)
	}
	if len(res.Destroyed) != 1 || res.Destroyed[0] != enemy {
		t.Error("destroyed enemy must be reported")
	}
	if shooter.ActiveBullets != 0 {
		t.Error("bullet slot must be freed on impact")
	}
}

func TestHeavyEnemySurvivesFirstHit(t *testing.T) {
	a := newArena(t, emptyLevel(t))
	shooter := a.addShooter(100, true)
	enemy := a.addEnemy(t, "heavy", 5*config.TileSize, 5*config.TileSize)

	a.fireAt(shooter, enemy.Rect().CenterX(), enemy.Rect().CenterY(), component.DirDown)
	res := a.combat.Resolve(0.001, a.bf)
	if len(a.bf.Enemies) != 1 {
		t.Fatal("heavy enemy must survive the first hit")
	}
	if res.Score != 0 {
		t.Error("no score for a surviving enemy")
	}
	if len(a.bf.Bullets) != 0 {
		t.Error("bullet must still be consumed by the hit")
	}

	shooter.ActiveBullets = 0
	a.fireAt(shooter, enemy.Rect().CenterX(), enemy.Rect().CenterY(), component.DirDown)
	res = a.combat.Resolve(0.001, a.bf)
	if len(a.bf.Enemies) != 0 {
		t.Fatal("second hit must kill the heavy enemy")
	}
	if res.Score != defs.EnemyLibrary["heavy"].Score {
		t.Errorf("Score = %d, want %d", res.Score, defs.EnemyLibrary["heavy"].Score)
	}
}

func TestSpawnShieldBlocksBullets(t *testing.T) {
	a := newArena(t, emptyLevel(t))
	shooter := a.addShooter(100, true)
	enemy := a.addEnemy(t, "basic", 5*config.TileSize, 5*config.TileSize)
	enemy.InvulnerableTimer = config.EnemySpawnShield

	a.fireAt(shooter, enemy.Rect().CenterX(), enemy.Rect().CenterY(), component.DirDown)
	a.combat.Resolve(0.001, a.bf)

	if len(a.bf.Enemies) != 1 {
		t.Fatal("shielded enemy must survive")
	}
	// Пуля пролетает сквозь неуязвимого, а не гасится об него.
	if len(a.bf.Bullets) != 1 {
		t.Error("bullet must pass through a shielded enemy")
	}
}

func TestEnemyBulletHitsPlayerOncePerFrame(t *testing.T) {
	a := newArena(t, emptyLevel(t))
	player := component.NewPlayerTank(1, 10*config.TileSize, 10*config.TileSize, config.DefaultTuning())
	player.InvulnerableTimer = 0
	a.bf.Player = player
	a.tanks[player.ID] = &player.Tank

	shooter := a.addShooter(50, false)
	// Две вражеские пули накрывают игрока в одном кадре.
	a.fireAt(shooter, player.Rect().CenterX(), player.Rect().CenterY(), component.DirDown)
	a.fireAt(shooter, player.Rect().CenterX(), player.Rect().CenterY()+2, component.DirDown)

	a.combat.Resolve(0.001, a.bf)

	if a.playerHits != 1 {
		t.Fatalf("playerHits = %d, want 1: the first hit deactivates the player", a.playerHits)
	}
}

func TestInvulnerablePlayerIgnoresBullets(t *testing.T) {
	a := newArena(t, emptyLevel(t))
	player := component.NewPlayerTank(1, 10*config.TileSize, 10*config.TileSize, config.DefaultTuning())
	player.InvulnerableTimer = config.RespawnGraceTime
	a.bf.Player = player
	a.tanks[player.ID] = &player.Tank

	shooter := a.addShooter(50, false)
	a.fireAt(shooter, player.Rect().CenterX(), player.Rect().CenterY(), component.DirDown)

	a.combat.Resolve(0.001, a.bf)
	if a.playerHits != 0 {
		t.Error("invulnerable player must not take hits")
	}
}

func TestOpposingBulletsAnnihilate(t *testing.T) {
	a := newArena(t, emptyLevel(t))
	friend := a.addShooter(1, true)
	foe := a.addShooter(2, false)

	x := 10.0 * config.TileSize
	y := 10.0 * config.TileSize
	a.fireAt(friend, x, y, component.DirUp)
	a.fireAt(foe, x+2, y-2, component.DirDown)

	a.combat.Resolve(0.001, a.bf)

	if len(a.bf.Bullets) != 0 {
		t.Fatal("opposing bullets must cancel each other")
	}
	if friend.ActiveBullets != 0 || foe.ActiveBullets != 0 {
		t.Error("both owners must get their slots back exactly once")
	}
}

func TestWallShieldsEnemyUntilDestroyed(t *testing.T) {
	// Одинарная кирпичная стена между стрелком и врагом: первая пуля
	// сносит стену, вторая достаёт врага.
	rows := make([]string, config.GridSize)
	for i := range rows {
		rows[i] = strings.Repeat(".", config.GridSize)
	}
	b := []byte(rows[5])
	b[6] = '#'
	rows[5] = string(b)
	lvl, err := level.New(rows)
	if err != nil {
		t.Fatalf("level.New: %v", err)
	}

	a := newArena(t, lvl)
	shooter := a.addShooter(100, true)
	a.addEnemy(t, "basic", 8*config.TileSize, 5*config.TileSize)

	// Пуля летит вправо сквозь клетку (6,5) на высоте врага.
	fire := func() {
		a.fireAt(shooter, 5*config.TileSize+12, 5*config.TileSize+12, component.DirRight)
	}

	fire()
	for i := 0; i < 60 && len(a.bf.Bullets) > 0; i++ {
		a.combat.Resolve(0.016, a.bf)
	}
	if lvl.TileAt(6, 5) != nil {
		t.Fatal("first bullet must destroy the wall")
	}
	if len(a.bf.Enemies) != 1 {
		t.Fatal("the wall must shield the enemy from the first bullet")
	}

	shooter.ActiveBullets = 0
	fire()
	for i := 0; i < 60 && len(a.bf.Bullets) > 0; i++ {
		a.combat.Resolve(0.016, a.bf)
	}
	if len(a.bf.Enemies) != 0 {
		t.Fatal("second bullet must reach and destroy the enemy")
	}
}

func TestSameFactionBulletsDoNotAnnihilate(t *testing.T) {
	a := newArena(t, emptyLevel(t))
	one := a.addShooter(1, true)
	two := a.addShooter(2, true)

	x := 10.0 * config.TileSize
	y := 10.0 * config.TileSize
	a.fireAt(one, x, y, component.DirUp)
	a.fireAt(two, x+2, y, component.DirUp)

	a.combat.Resolve(0.001, a.bf)
	if len(a.bf.Bullets) != 2 {
		t.Error("same-faction bullets must fly through each other")
	}
}
