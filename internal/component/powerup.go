// internal/component/powerup.go
package component

import (
	"go-tanchiki/internal/config"
	"go-tanchiki/internal/defs"
	"go-tanchiki/internal/utils"
)

// PowerUp — бонус, лежащий на поле. Появляется на месте уничтоженного
// врага, исчезает по таймеру или при подборе игроком.
type PowerUp struct {
	Type     defs.PowerUpType
	X, Y     float64 // левый верхний угол, размер в тайл
	Lifetime float64
}

// NewPowerUp создаёт бонус в указанной точке.
func NewPowerUp(kind defs.PowerUpType, x, y, lifetime float64) *PowerUp {
	return &PowerUp{Type: kind, X: x, Y: y, Lifetime: lifetime}
}

// Rect возвращает прямоугольник подбора.
func (p *PowerUp) Rect() utils.Rect {
	return utils.NewRect(p.X, p.Y, config.TileSize, config.TileSize)
}

// Update отсчитывает время жизни; true — бонус истёк.
func (p *PowerUp) Update(dt float64) bool {
	p.Lifetime -= dt
	return p.Lifetime <= 0
}
