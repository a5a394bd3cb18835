// internal/component/bullet.go
package component

import (
	"go-tanchiki/internal/config"
	"go-tanchiki/internal/types"
	"go-tanchiki/internal/utils"
)

// Bullet — снаряд, летящий по прямой. Owner — невладеющая ссылка на
// хозяина, нужна только чтобы вернуть ему слот пули при уничтожении.
type Bullet struct {
	X, Y     float64 // центр пули
	Dir      Direction
	Speed    float64
	Owner    types.EntityID
	Friendly bool
}

// NewBullet создаёт пулю с центром в точке дула.
func NewBullet(x, y float64, dir Direction, speed float64, owner types.EntityID, friendly bool) *Bullet {
	return &Bullet{
		X:        x,
		Y:        y,
		Dir:      dir,
		Speed:    speed,
		Owner:    owner,
		Friendly: friendly,
	}
}

// Update продвигает пулю на direction * speed * dt.
func (b *Bullet) Update(dt float64) {
	dx, dy := b.Dir.Vector()
	b.X += dx * b.Speed * dt
	b.Y += dy * b.Speed * dt
}

// Rect возвращает прямоугольник пули.
func (b *Bullet) Rect() utils.Rect {
	return utils.NewRect(
		b.X-config.BulletSize/2,
		b.Y-config.BulletSize/2,
		config.BulletSize,
		config.BulletSize,
	)
}
