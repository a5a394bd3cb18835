// internal/component/enemy.go
package component

import (
	"go-tanchiki/internal/config"
	"go-tanchiki/internal/defs"
	"go-tanchiki/internal/types"
	"go-tanchiki/internal/utils"
)

// EnemyTank — вражеский танк. Решения (куда ехать, когда стрелять)
// принимает system.EnemyAISystem, здесь только данные.
type EnemyTank struct {
	Tank

	Variant    string
	ScoreValue int

	ChangeDirTimer float64 // до следующей смены направления
	FireTimer      float64 // до следующей попытки выстрела
}

// NewEnemyTank создаёт врага по определению варианта. Короткая
// неуязвимость на спауне защищает от пули, уже летящей в эту клетку.
func NewEnemyTank(id types.EntityID, x, y float64, def defs.EnemyDefinition, cfg config.Tuning, rng *utils.PRNGService) *EnemyTank {
	t := NewTank(id, x, y, def.Speed, def.FireDelay, def.BulletSpeed, false)
	t.Health = def.Health
	t.InvulnerableTimer = config.EnemySpawnShield
	return &EnemyTank{
		Tank:           t,
		Variant:        def.ID,
		ScoreValue:     def.Score,
		ChangeDirTimer: rng.Range(cfg.Enemies.DirectionDelayMin, cfg.Enemies.DirectionDelayMax),
		FireTimer:      rng.Range(cfg.Enemies.FireDelayMin, cfg.Enemies.FireDelayMax),
	}
}
