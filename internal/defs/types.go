// internal/defs/types.go
package defs

import "image/color"

// RGB — цвет в JSON-описаниях ([r,g,b]).
type RGB [3]uint8

// ToColor конвертирует в непрозрачный color.RGBA.
func (c RGB) ToColor() color.RGBA {
	return color.RGBA{c[0], c[1], c[2], 255}
}

// EnemyDefinition — статические данные варианта вражеского танка.
type EnemyDefinition struct {
	ID          string  `json:"id"`
	Health      int     `json:"health"`
	Speed       float64 `json:"speed"`
	FireDelay   float64 `json:"fire_delay"`
	BulletSpeed float64 `json:"bullet_speed"`
	Score       int     `json:"score"`
	Weight      float64 `json:"weight"` // вес при случайном выборе варианта
	Color       RGB     `json:"color"`
}

// PowerUpType — вид бонуса.
type PowerUpType string

const (
	PowerShield PowerUpType = "shield" // продлевает неуязвимость
	PowerRapid  PowerUpType = "rapid"  // скорострельность на время
	PowerSpeed  PowerUpType = "speed"  // ускорение на время
	PowerLife   PowerUpType = "life"   // дополнительная жизнь, навсегда
)

// PowerUpDefinition — статические данные бонуса. Временные эффекты
// по истечении возвращают именно базовые значения характеристик.
type PowerUpDefinition struct {
	ID       PowerUpType `json:"id"`
	Duration float64     `json:"duration"` // 0 — эффект постоянный
	Weight   float64     `json:"weight"`
	Color    RGB         `json:"color"`

	// rapid
	FireDelay   float64 `json:"fire_delay,omitempty"`
	BulletSpeed float64 `json:"bullet_speed,omitempty"`
	MaxBullets  int     `json:"max_bullets,omitempty"`
	// speed
	SpeedFactor float64 `json:"speed_factor,omitempty"`
	// shield
	ShieldTime float64 `json:"shield_time,omitempty"`
}
