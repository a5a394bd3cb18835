// internal/component/tank.go
package component

import (
	"go-tanchiki/internal/config"
	"go-tanchiki/internal/level"
	"go-tanchiki/internal/types"
	"go-tanchiki/internal/utils"
)

// Tank — общая часть игрока и врагов: движение, перезарядка, здоровье.
// Кто решает куда ехать и когда стрелять — забота контроллеров
// (ввод для игрока, таймеры ИИ для врагов).
type Tank struct {
	ID       types.EntityID
	X, Y     float64 // левый верхний угол, непрерывные координаты
	Dir      Direction
	Friendly bool
	Active   bool

	Speed       float64
	FireDelay   float64
	BulletSpeed float64

	CooldownTimer     float64
	InvulnerableTimer float64

	MaxBullets    int
	ActiveBullets int // инвариант: ActiveBullets <= MaxBullets
	Health        int
}

// NewTank создаёт танк размером в тайл.
func NewTank(id types.EntityID, x, y, speed, fireDelay, bulletSpeed float64, friendly bool) Tank {
	return Tank{
		ID:          id,
		X:           x,
		Y:           y,
		Dir:         DirUp,
		Friendly:    friendly,
		Active:      true,
		Speed:       speed,
		FireDelay:   fireDelay,
		BulletSpeed: bulletSpeed,
		MaxBullets:  1,
		Health:      1,
	}
}

// Rect возвращает текущий прямоугольник танка.
func (t *Tank) Rect() utils.Rect {
	return utils.NewRect(t.X, t.Y, config.TileSize, config.TileSize)
}

// Invulnerable сообщает, действует ли ещё неуязвимость.
func (t *Tank) Invulnerable() bool {
	return t.InvulnerableTimer > 0
}

// UpdateTimers отсчитывает перезарядку и неуязвимость.
func (t *Tank) UpdateTimers(dt float64) {
	if t.CooldownTimer > 0 {
		t.CooldownTimer -= dt
		if t.CooldownTimer < 0 {
			t.CooldownTimer = 0
		}
	}
	if t.InvulnerableTimer > 0 {
		t.InvulnerableTimer -= dt
		if t.InvulnerableTimer < 0 {
			t.InvulnerableTimer = 0
		}
	}
}

// collidesWithOthers проверяет пересечение с другими активными танками.
func collidesWithOthers(r utils.Rect, others []*Tank) bool {
	for _, o := range others {
		if o != nil && o.Active && r.Intersects(o.Rect()) {
			return true
		}
	}
	return false
}

// Move двигает танк в направлении dir на скорость за кадр.
// Возвращает true, если танк сдвинулся — ИИ по этому признаку
// понимает, что застрял.
func (t *Tank) Move(dir Direction, dt float64, lvl *level.Level, others []*Tank) bool {
	t.Dir = dir
	dx, dy := dir.Vector()
	return t.MoveBy(dx*t.Speed*dt, dy*t.Speed*dt, lvl, others)
}

// MoveBy двигает танк на (dx, dy), разрешая оси независимо: сначала
// сдвиг по X с проверкой сетки и чужих танков, затем по Y уже от
// нового положения. Так танк, упёршийся в угол по диагонали,
// продолжает скользить вдоль свободной оси, а не встаёт намертво.
func (t *Tank) MoveBy(dx, dy float64, lvl *level.Level, others []*Tank) bool {
	moved := false
	if dx != 0 {
		test := utils.NewRect(t.X+dx, t.Y, config.TileSize, config.TileSize)
		if !lvl.IsRectBlocked(test) && !collidesWithOthers(test, others) {
			t.X += dx
			moved = true
		}
	}
	if dy != 0 {
		test := utils.NewRect(t.X, t.Y+dy, config.TileSize, config.TileSize)
		if !lvl.IsRectBlocked(test) && !collidesWithOthers(test, others) {
			t.Y += dy
			moved = true
		}
	}
	return moved
}

// CanFire — перезарядка прошла и лимит живых пуль не выбран.
func (t *Tank) CanFire() bool {
	return t.CooldownTimer <= 0 && t.ActiveBullets < t.MaxBullets
}

// Fire выпускает пулю из дула в текущем направлении.
// Возвращает nil, если стрелять нельзя — запрос молча отклоняется.
func (t *Tank) Fire() *Bullet {
	if !t.CanFire() {
		return nil
	}
	r := t.Rect()
	dx, dy := t.Dir.Vector()
	muzzleX := r.CenterX() + dx*(config.TileSize/2+config.BulletSize/2)
	muzzleY := r.CenterY() + dy*(config.TileSize/2+config.BulletSize/2)
	t.CooldownTimer = t.FireDelay
	t.ActiveBullets++
	return NewBullet(muzzleX, muzzleY, t.Dir, t.BulletSpeed, t.ID, t.Friendly)
}

// OnBulletDestroyed освобождает слот пули. Вызывается при любом
// исчезновении пули: вылет за поле, тайл, танк, встречная пуля.
func (t *Tank) OnBulletDestroyed() {
	if t.ActiveBullets > 0 {
		t.ActiveBullets--
	}
}

// TakeDamage снимает здоровье и сообщает, уничтожен ли танк.
func (t *Tank) TakeDamage(amount int) bool {
	t.Health -= amount
	return t.Health <= 0
}
