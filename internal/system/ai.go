// internal/system/ai.go
package system

import (
	"go-tanchiki/internal/component"
	"go-tanchiki/internal/config"
	"go-tanchiki/internal/level"
	"go-tanchiki/internal/utils"
)

// EnemyAISystem — контроллер врагов: случайное блуждание по таймеру
// и стрельба по независимому таймеру.
type EnemyAISystem struct {
	cfg config.Tuning
	rng *utils.PRNGService
}

// NewEnemyAISystem создаёт систему ИИ.
func NewEnemyAISystem(cfg config.Tuning, rng *utils.PRNGService) *EnemyAISystem {
	return &EnemyAISystem{cfg: cfg, rng: rng}
}

// Update делает один шаг ИИ для одного врага. obstacles — все остальные
// танки (враги без самого e, плюс живой игрок). Возвращает пулю,
// если враг выстрелил в этом кадре.
func (s *EnemyAISystem) Update(dt float64, e *component.EnemyTank, lvl *level.Level, obstacles []*component.Tank) *component.Bullet {
	e.UpdateTimers(dt)

	e.ChangeDirTimer -= dt
	if e.ChangeDirTimer <= 0 {
		e.Dir = component.Direction(s.rng.Intn(component.DirectionCount))
		e.ChangeDirTimer = s.rng.Range(s.cfg.Enemies.DirectionDelayMin, s.cfg.Enemies.DirectionDelayMax)
	}

	moved := e.Move(e.Dir, dt, lvl, obstacles)
	if !moved {
		// Обе оси упёрлись — немедленный переворот с коротким интервалом,
		// иначе враг будет колотиться в стену до конца таймера.
		e.Dir = component.Direction(s.rng.Intn(component.DirectionCount))
		e.ChangeDirTimer = s.rng.Range(s.cfg.Enemies.RetryDelayMin, s.cfg.Enemies.RetryDelayMax)
	}

	e.FireTimer -= dt
	if e.FireTimer <= 0 {
		e.FireTimer = s.rng.Range(s.cfg.Enemies.FireDelayMin, s.cfg.Enemies.FireDelayMax)
		return e.Fire() // nil, если перезарядка или лимит пуль
	}
	return nil
}
