// internal/component/player.go
package component

import (
	"go-tanchiki/internal/config"
	"go-tanchiki/internal/defs"
	"go-tanchiki/internal/level"
	"go-tanchiki/internal/types"
	"go-tanchiki/internal/utils"
)

// PlayerTank — танк игрока: жизни, машина состояний респауна и
// таймеры бонусов. Базовые характеристики хранятся отдельно, чтобы
// истёкший бонус возвращал ровно их, а не пересчитанное значение.
type PlayerTank struct {
	Tank

	SpawnX, SpawnY float64
	Lives          int
	Dead           bool
	RespawnTimer   float64

	baseSpeed       float64
	baseFireDelay   float64
	baseBulletSpeed float64
	baseMaxBullets  int

	RapidTimer float64
	SpeedTimer float64
}

// NewPlayerTank создаёт танк игрока в точке спауна.
func NewPlayerTank(id types.EntityID, x, y float64, cfg config.Tuning) *PlayerTank {
	t := NewTank(id, x, y, cfg.Player.Speed, cfg.Player.FireDelay, cfg.Player.BulletSpeed, true)
	t.MaxBullets = cfg.Player.MaxBullets
	p := &PlayerTank{
		Tank:            t,
		SpawnX:          x,
		SpawnY:          y,
		Lives:           cfg.Player.Lives,
		baseSpeed:       cfg.Player.Speed,
		baseFireDelay:   cfg.Player.FireDelay,
		baseBulletSpeed: cfg.Player.BulletSpeed,
		baseMaxBullets:  cfg.Player.MaxBullets,
	}
	return p
}

// ResetPosition ставит игрока на точку спауна с чистым состоянием:
// ствол вверх, перезарядка и слоты пуль сброшены, бонусы сняты.
func (p *PlayerTank) ResetPosition(x, y float64) {
	p.SpawnX, p.SpawnY = x, y
	p.X, p.Y = x, y
	p.Dir = DirUp
	p.CooldownTimer = 0
	p.InvulnerableTimer = config.RespawnGraceTime
	p.ActiveBullets = 0
	p.Health = 1
	p.Active = true
	p.Dead = false
	p.RespawnTimer = 0
	p.ResetModifiers()
}

// ResetModifiers снимает все временные бонусы, возвращая базовые статы.
func (p *PlayerTank) ResetModifiers() {
	p.RapidTimer = 0
	p.SpeedTimer = 0
	p.Speed = p.baseSpeed
	p.FireDelay = p.baseFireDelay
	p.BulletSpeed = p.baseBulletSpeed
	p.MaxBullets = p.baseMaxBullets
}

// StartRespawn переводит игрока в состояние "мёртв, ждёт респауна".
// Ввод в этом состоянии игнорируется.
func (p *PlayerTank) StartRespawn() {
	p.Dead = true
	p.Active = false
	p.RespawnTimer = config.RespawnDelay
	p.InvulnerableTimer = 0
}

// UpdateRespawn отсчитывает респаун. Возродиться можно только когда
// таймер дошёл до нуля И точка спауна свободна от рельефа и врагов;
// занятая точка сдвигает таймер на короткую повторную попытку —
// это опрос с повтором, а не разовая проверка.
// Возвращает true в кадр завершения респауна.
func (p *PlayerTank) UpdateRespawn(dt float64, lvl *level.Level, enemies []*Tank) bool {
	if !p.Dead {
		return false
	}
	p.RespawnTimer -= dt
	if p.RespawnTimer > 0 {
		return false
	}
	p.RespawnTimer = 0
	spawnRect := utils.NewRect(p.SpawnX, p.SpawnY, config.TileSize, config.TileSize)
	if lvl.IsRectBlocked(spawnRect) {
		p.RespawnTimer = config.RespawnRetryDelay
		return false
	}
	for _, e := range enemies {
		if e != nil && e.Active && spawnRect.Intersects(e.Rect()) {
			p.RespawnTimer = config.RespawnRetryDelay
			return false
		}
	}
	p.ResetPosition(p.SpawnX, p.SpawnY)
	return true
}

// ApplyPowerUp применяет бонус. Временные эффекты ставят таймер;
// щит просто продлевает неуязвимость, жизнь — постоянная.
func (p *PlayerTank) ApplyPowerUp(def defs.PowerUpDefinition) {
	switch def.ID {
	case defs.PowerShield:
		if p.InvulnerableTimer < def.ShieldTime {
			p.InvulnerableTimer = def.ShieldTime
		}
	case defs.PowerRapid:
		p.FireDelay = def.FireDelay
		p.BulletSpeed = def.BulletSpeed
		p.MaxBullets = def.MaxBullets
		p.RapidTimer = def.Duration
	case defs.PowerSpeed:
		p.Speed = p.baseSpeed * def.SpeedFactor
		p.SpeedTimer = def.Duration
	case defs.PowerLife:
		p.Lives++
	}
}

// UpdatePowerUps отсчитывает таймеры бонусов и по истечении
// возвращает изменённые статы к базовым значениям.
func (p *PlayerTank) UpdatePowerUps(dt float64) {
	if p.RapidTimer > 0 {
		p.RapidTimer -= dt
		if p.RapidTimer <= 0 {
			p.RapidTimer = 0
			p.FireDelay = p.baseFireDelay
			p.BulletSpeed = p.baseBulletSpeed
			p.MaxBullets = p.baseMaxBullets
		}
	}
	if p.SpeedTimer > 0 {
		p.SpeedTimer -= dt
		if p.SpeedTimer <= 0 {
			p.SpeedTimer = 0
			p.Speed = p.baseSpeed
		}
	}
}

// BaseStats возвращает базовые характеристики (для снапшота/тестов).
func (p *PlayerTank) BaseStats() (speed, fireDelay, bulletSpeed float64, maxBullets int) {
	return p.baseSpeed, p.baseFireDelay, p.baseBulletSpeed, p.baseMaxBullets
}
