// internal/system/combat.go
package system

import (
	"go-tanchiki/internal/component"
	"go-tanchiki/internal/config"
	"go-tanchiki/internal/event"
	"go-tanchiki/internal/level"
	"go-tanchiki/internal/types"
	"go-tanchiki/internal/utils"
)

// Battlefield — всё, что нужно боевому проходу за один кадр.
// Слайсы правятся на месте, Game забирает их обратно из полей.
type Battlefield struct {
	Level   *level.Level
	Player  *component.PlayerTank
	Enemies []*component.EnemyTank
	Bullets []*component.Bullet

	// OwnerByID разыменовывает невладеющую ссылку пули на хозяина.
	// nil — хозяин уже уничтожен, уведомление теряется.
	OwnerByID func(types.EntityID) *component.Tank

	// OnPlayerHit применяет попадание по игроку сразу: игрок уходит
	// в респаун (Active=false), и остальные пули этого кадра
	// уже не могут попасть по нему второй раз.
	OnPlayerHit func()
}

// CombatResult — итог боевого прохода за кадр.
type CombatResult struct {
	BaseDestroyed bool
	Score         int
	Destroyed     []*component.EnemyTank // убитые в этом кадре враги
}

// CombatSystem — жизненный цикл пуль: полёт, тайлы, танки,
// взаимная аннигиляция.
type CombatSystem struct {
	dispatcher *event.Dispatcher
	playRect   utils.Rect
}

// NewCombatSystem создаёт систему боя.
func NewCombatSystem(dispatcher *event.Dispatcher) *CombatSystem {
	return &CombatSystem{
		dispatcher: dispatcher,
		playRect:   utils.NewRect(0, 0, config.PlayAreaWidth, config.PlayAreaHeight),
	}
}

// destroyBullet возвращает хозяину слот пули, если хозяин ещё жив.
func (s *CombatSystem) destroyBullet(b *component.Bullet, bf *Battlefield) {
	if owner := bf.OwnerByID(b.Owner); owner != nil {
		owner.OnBulletDestroyed()
	}
}

// removeEnemy вырезает врага из списка живых.
func removeEnemy(bf *Battlefield, target *component.EnemyTank) {
	for i, e := range bf.Enemies {
		if e == target {
			bf.Enemies = append(bf.Enemies[:i], bf.Enemies[i+1:]...)
			return
		}
	}
}

// Resolve выполняет боевой проход кадра. Сначала каждая пуля
// продвигается и проверяется против границ, тайлов и танков; затем —
// отдельным проходом — попарная аннигиляция выживших пуль
// противоположных фракций по уже продвинутым позициям. Поэтому пуля
// уничтожается максимум один раз за кадр, а увернувшаяся от тайла
// пуля всё ещё может быть погашена встречной.
func (s *CombatSystem) Resolve(dt float64, bf *Battlefield) CombatResult {
	var res CombatResult

	survivors := bf.Bullets[:0]
	for _, b := range bf.Bullets {
		b.Update(dt)
		r := b.Rect()

		if !s.playRect.Contains(r) {
			s.destroyBullet(b, bf)
			continue
		}

		impact := bf.Level.HandleBulletCollision(r)
		if impact != level.ImpactNone {
			s.destroyBullet(b, bf)
			switch impact {
			case level.ImpactBase:
				res.BaseDestroyed = true
				s.dispatcher.Dispatch(event.Event{Type: event.BaseDestroyed})
			case level.ImpactBrick:
				s.dispatcher.Dispatch(event.Event{Type: event.BrickDestroyed, Data: [2]float64{b.X, b.Y}})
			default:
				s.dispatcher.Dispatch(event.Event{Type: event.BlockImpact, Data: [2]float64{b.X, b.Y}})
			}
			continue
		}

		if b.Friendly {
			var target *component.EnemyTank
			for _, e := range bf.Enemies {
				if e.Invulnerable() {
					continue
				}
				if r.Intersects(e.Rect()) {
					target = e
					break
				}
			}
			if target != nil {
				if target.TakeDamage(1) {
					removeEnemy(bf, target)
					res.Score += target.ScoreValue
					res.Destroyed = append(res.Destroyed, target)
					s.dispatcher.Dispatch(event.Event{Type: event.TankDestroyed, Data: target.Variant})
				}
				s.destroyBullet(b, bf)
				continue
			}
		} else {
			p := bf.Player
			if p != nil && p.Active && !p.Invulnerable() && r.Intersects(p.Rect()) {
				s.destroyBullet(b, bf)
				s.dispatcher.Dispatch(event.Event{Type: event.PlayerHit})
				if bf.OnPlayerHit != nil {
					bf.OnPlayerHit()
				}
				continue
			}
		}

		survivors = append(survivors, b)
	}

	// Аннигиляция: гаснут обе пули пары, слот у каждого хозяина
	// освобождается ровно один раз.
	cancelled := make(map[*component.Bullet]bool)
	for i, a := range survivors {
		for _, b := range survivors[i+1:] {
			if a.Friendly == b.Friendly {
				continue
			}
			if a.Rect().Intersects(b.Rect()) {
				cancelled[a] = true
				cancelled[b] = true
			}
		}
	}
	if len(cancelled) > 0 {
		alive := survivors[:0]
		for _, b := range survivors {
			if cancelled[b] {
				s.destroyBullet(b, bf)
			} else {
				alive = append(alive, b)
			}
		}
		survivors = alive
		s.dispatcher.Dispatch(event.Event{Type: event.BulletsCancelled, Data: len(cancelled)})
	}

	bf.Bullets = survivors
	return res
}
