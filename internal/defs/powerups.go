// internal/defs/powerups.go
package defs

// PowerUpOrder — порядок бонусов для взвешенного выбора.
var PowerUpOrder = []PowerUpType{PowerShield, PowerRapid, PowerSpeed, PowerLife}

// PowerUpLibrary — библиотека бонусов по ID.
var PowerUpLibrary = defaultPowerUps()

func defaultPowerUps() map[PowerUpType]PowerUpDefinition {
	return map[PowerUpType]PowerUpDefinition{
		PowerShield: {
			ID:         PowerShield,
			Weight:     0.3,
			Color:      RGB{96, 160, 240},
			ShieldTime: 10.0,
		},
		PowerRapid: {
			ID:          PowerRapid,
			Duration:    8.0,
			Weight:      0.3,
			Color:       RGB{255, 184, 64},
			FireDelay:   0.15,
			BulletSpeed: 420.0,
			MaxBullets:  2,
		},
		PowerSpeed: {
			ID:          PowerSpeed,
			Duration:    8.0,
			Weight:      0.25,
			Color:       RGB{130, 220, 130},
			SpeedFactor: 1.5,
		},
		PowerLife: {
			ID:     PowerLife,
			Weight: 0.15,
			Color:  RGB{224, 224, 64},
		},
	}
}

// PowerUpWeights возвращает веса в порядке PowerUpOrder.
func PowerUpWeights() []float64 {
	weights := make([]float64, len(PowerUpOrder))
	for i, id := range PowerUpOrder {
		weights[i] = PowerUpLibrary[id].Weight
	}
	return weights
}
