// internal/config/config.go
package config

import "image/color"

const (
	TileSize = 24
	GridSize = 26 // поле всегда 26x26, макеты другого размера не принимаются

	PlayAreaWidth  = GridSize * TileSize
	PlayAreaHeight = GridSize * TileSize
	PanelWidth     = 200
	ScreenWidth    = PlayAreaWidth + PanelWidth
	ScreenHeight   = PlayAreaHeight

	MaxDeltaTime = 0.06 // кламп реального dt, чтобы фриз окна не телепортировал пули

	BulletSize = 6.0
)

const (
	// Стартовая позиция игрока и задержки респауна.
	PlayerSpawnTileX  = 12
	PlayerSpawnTileY  = 23
	RespawnDelay      = 1.6
	RespawnRetryDelay = 0.25 // точка занята — ждём и пробуем снова
	RespawnGraceTime  = 2.5

	EnemySpawnShield = 1.0 // защита от пули, уже летящей в точку спауна

	InitialSpawnDelay = 2.0
	SpawnDelayOnSpawn = 1.5
	SpawnDelayOnFail  = 0.5
)

var (
	BGColor     = color.RGBA{18, 20, 26, 255}
	FieldColor  = color.RGBA{28, 32, 44, 255}
	PanelBG     = color.RGBA{26, 28, 36, 255}
	PanelAccent = color.RGBA{96, 160, 240, 255}
	PanelText   = color.RGBA{220, 220, 220, 255}
	HintText    = color.RGBA{180, 180, 200, 255}

	PlayerColor  = color.RGBA{224, 224, 64, 255}
	PlayerShadow = color.RGBA{140, 140, 40, 255}
	BulletColor  = color.RGBA{255, 184, 64, 255}
	FlashColor   = color.RGBA{240, 240, 240, 255}

	TitleColor    = color.RGBA{255, 220, 120, 255}
	DefeatColor   = color.RGBA{255, 100, 100, 255}
	VictoryColor  = color.RGBA{130, 220, 130, 255}
	OverlayScreen = color.RGBA{0, 0, 0, 150}
)
