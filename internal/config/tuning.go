// internal/config/tuning.go
package config

// Tuning — игровые числа, которые можно переопределить yaml-файлом.
// Геометрия поля и цвета остаются константами: от них зависит макет уровня.
type Tuning struct {
	Player struct {
		Lives       int     `yaml:"lives"`
		Speed       float64 `yaml:"speed"`
		FireDelay   float64 `yaml:"fire_delay"`
		BulletSpeed float64 `yaml:"bullet_speed"`
		MaxBullets  int     `yaml:"max_bullets"`
	} `yaml:"player"`

	Enemies struct {
		BaseCount         int     `yaml:"base_count"`
		PerStage          int     `yaml:"per_stage"`
		MaxTotal          int     `yaml:"max_total"`
		MaxActive         int     `yaml:"max_active"`
		FireDelayMin      float64 `yaml:"fire_delay_min"`
		FireDelayMax      float64 `yaml:"fire_delay_max"`
		DirectionDelayMin float64 `yaml:"direction_delay_min"`
		DirectionDelayMax float64 `yaml:"direction_delay_max"`
		RetryDelayMin     float64 `yaml:"retry_delay_min"`
		RetryDelayMax     float64 `yaml:"retry_delay_max"`
	} `yaml:"enemies"`

	PowerUps struct {
		DropChance float64 `yaml:"drop_chance"` // шанс выпадения при уничтожении врага
		Lifetime   float64 `yaml:"lifetime"`    // сколько секунд бонус лежит на поле
	} `yaml:"powerups"`
}

// DefaultTuning возвращает баланс по умолчанию.
func DefaultTuning() Tuning {
	var t Tuning

	t.Player.Lives = 3
	t.Player.Speed = 96.0
	t.Player.FireDelay = 0.35
	t.Player.BulletSpeed = 360.0
	t.Player.MaxBullets = 1

	t.Enemies.BaseCount = 16
	t.Enemies.PerStage = 4
	t.Enemies.MaxTotal = 40
	t.Enemies.MaxActive = 4
	t.Enemies.FireDelayMin = 1.1
	t.Enemies.FireDelayMax = 2.2
	t.Enemies.DirectionDelayMin = 1.4
	t.Enemies.DirectionDelayMax = 3.0
	t.Enemies.RetryDelayMin = 0.4
	t.Enemies.RetryDelayMax = 1.0

	t.PowerUps.DropChance = 0.18
	t.PowerUps.Lifetime = 10.0

	return t
}
