// internal/defs/enemies.go
package defs

// EnemyVariants — порядок вариантов для взвешенного выбора.
var EnemyVariants = []string{"basic", "fast", "heavy"}

// EnemyLibrary — библиотека вариантов врагов по ID.
// Заполняется значениями по умолчанию, может быть переопределена JSON-файлом.
var EnemyLibrary = defaultEnemies()

func defaultEnemies() map[string]EnemyDefinition {
	return map[string]EnemyDefinition{
		"basic": {
			ID:          "basic",
			Health:      1,
			Speed:       84.0,
			FireDelay:   0.55,
			BulletSpeed: 280.0,
			Score:       100,
			Weight:      0.6,
			Color:       RGB{206, 74, 74},
		},
		"fast": {
			ID:          "fast",
			Health:      1,
			Speed:       112.0,
			FireDelay:   0.42,
			BulletSpeed: 320.0,
			Score:       150,
			Weight:      0.25,
			Color:       RGB{212, 160, 70},
		},
		"heavy": {
			// Единственный вариант, переживающий одно попадание.
			ID:          "heavy",
			Health:      2,
			Speed:       72.0,
			FireDelay:   0.65,
			BulletSpeed: 300.0,
			Score:       300,
			Weight:      0.15,
			Color:       RGB{128, 192, 200},
		},
	}
}

// VariantWeights возвращает веса в порядке EnemyVariants.
func VariantWeights() []float64 {
	weights := make([]float64, len(EnemyVariants))
	for i, id := range EnemyVariants {
		weights[i] = EnemyLibrary[id].Weight
	}
	return weights
}
