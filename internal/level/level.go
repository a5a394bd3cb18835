// internal/level/level.go
package level

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"go-tanchiki/internal/config"
	"go-tanchiki/internal/utils"
)

// TileType — тип тайла уровня.
type TileType int

const (
	TileBrick TileType = iota
	TileSteel
	TileWater
	TileForest
	TileIce
	TileBase
	TileBaseRuin
)

// String возвращает имя типа для снапшота/логов.
func (t TileType) String() string {
	switch t {
	case TileBrick:
		return "brick"
	case TileSteel:
		return "steel"
	case TileWater:
		return "water"
	case TileForest:
		return "forest"
	case TileIce:
		return "ice"
	case TileBase:
		return "base"
	case TileBaseRuin:
		return "base_ruin"
	default:
		return "?"
	}
}

// TileDefinition — физические свойства тайла. Цвет нужен только рендереру.
type TileDefinition struct {
	Type         TileType
	Color        color.RGBA
	Passable     bool // можно ли проехать танком
	BulletBlock  bool // останавливает ли пулю
	Destructible bool // разрушается ли пулей
	Overlay      bool // рисуется поверх танков (лес)
}

// Definitions — библиотека свойств по типу тайла.
var Definitions = map[TileType]TileDefinition{
	TileBrick:    {TileBrick, color.RGBA{198, 92, 42, 255}, false, true, true, false},
	TileSteel:    {TileSteel, color.RGBA{150, 150, 160, 255}, false, true, false, false},
	TileWater:    {TileWater, color.RGBA{54, 120, 206, 255}, false, true, false, false},
	TileForest:   {TileForest, color.RGBA{54, 140, 66, 255}, true, false, false, true},
	TileIce:      {TileIce, color.RGBA{180, 200, 220, 255}, true, false, false, false},
	TileBase:     {TileBase, color.RGBA{210, 200, 120, 255}, false, true, false, false},
	TileBaseRuin: {TileBaseRuin, color.RGBA{110, 60, 60, 255}, false, true, false, false},
}

// charToTile — алфавит символьной карты. '.' — пустая клетка.
var charToTile = map[byte]TileType{
	'#': TileBrick,
	'S': TileSteel,
	'W': TileWater,
	'F': TileForest,
	'I': TileIce,
	'B': TileBase,
}

// Tile — один занятый тайл сетки. Пустые клетки в карте не хранятся.
type Tile struct {
	GridX, GridY int
	Def          TileDefinition
}

// Rect возвращает пиксельный прямоугольник тайла.
func (t *Tile) Rect() utils.Rect {
	return utils.NewRect(
		float64(t.GridX*config.TileSize),
		float64(t.GridY*config.TileSize),
		config.TileSize,
		config.TileSize,
	)
}

// Impact — результат столкновения пули с сеткой.
type Impact int

const (
	ImpactNone  Impact = iota // пуля летит дальше
	ImpactBlock               // пуля гасится, тайл цел
	ImpactBrick               // кирпич разрушен
	ImpactBase                // база уничтожена — немедленный game over
)

// Level — сетка тайлов этапа. Владеет состоянием базы.
type Level struct {
	Width, Height int
	PixelWidth    float64
	PixelHeight   float64
	BaseAlive     bool

	tiles     map[[2]int]*Tile
	baseTiles []*Tile
}

// ParseLayout нормализует символьную карту: убирает пустые края
// и добивает короткие строки точками.
func ParseLayout(raw string) []string {
	rows := strings.Split(strings.TrimSpace(raw), "\n")
	width := 0
	for i, row := range rows {
		rows[i] = strings.TrimRight(row, " \r")
		if len(rows[i]) > width {
			width = len(rows[i])
		}
	}
	for i, row := range rows {
		if len(row) < width {
			rows[i] = row + strings.Repeat(".", width-len(row))
		}
	}
	return rows
}

// New строит уровень из готовых строк карты.
// Неверные размеры — фатальная ошибка конструирования этапа.
func New(layout []string) (*Level, error) {
	if len(layout) == 0 {
		return nil, fmt.Errorf("level: empty layout")
	}
	height := len(layout)
	width := len(layout[0])
	if width != config.GridSize || height != config.GridSize {
		return nil, fmt.Errorf("level: layout must be %dx%d, got %dx%d",
			config.GridSize, config.GridSize, width, height)
	}

	l := &Level{
		Width:       width,
		Height:      height,
		PixelWidth:  float64(width * config.TileSize),
		PixelHeight: float64(height * config.TileSize),
		BaseAlive:   true,
		tiles:       make(map[[2]int]*Tile),
	}

	for y, row := range layout {
		for x := 0; x < len(row); x++ {
			tt, ok := charToTile[row[x]]
			if !ok {
				continue // '.' и любой незнакомый символ — пустая клетка
			}
			tile := &Tile{GridX: x, GridY: y, Def: Definitions[tt]}
			l.tiles[[2]int{x, y}] = tile
			if tt == TileBase {
				l.baseTiles = append(l.baseTiles, tile)
			}
		}
	}
	return l, nil
}

// TileAt возвращает тайл клетки или nil.
func (l *Level) TileAt(gx, gy int) *Tile {
	return l.tiles[[2]int{gx, gy}]
}

// ForEachTile обходит все занятые тайлы (порядок не гарантируется,
// используется снапшотом).
func (l *Level) ForEachTile(fn func(t *Tile)) {
	for _, t := range l.tiles {
		fn(t)
	}
}

// coveredCells возвращает диапазон клеток, накрытых прямоугольником,
// обрезанный по границам поля. right < left означает пустой диапазон.
func (l *Level) coveredCells(r utils.Rect) (left, right, top, bottom int) {
	left = int(math.Floor(r.X / config.TileSize))
	right = int(math.Floor((r.Right() - 1) / config.TileSize))
	top = int(math.Floor(r.Y / config.TileSize))
	bottom = int(math.Floor((r.Bottom() - 1) / config.TileSize))
	if left < 0 {
		left = 0
	}
	if top < 0 {
		top = 0
	}
	if right > l.Width-1 {
		right = l.Width - 1
	}
	if bottom > l.Height-1 {
		bottom = l.Height - 1
	}
	return left, right, top, bottom
}

// IsRectBlocked сообщает, упирается ли прямоугольник в границу поля
// или в непроходимый тайл.
func (l *Level) IsRectBlocked(r utils.Rect) bool {
	if r.X < 0 || r.Y < 0 {
		return true
	}
	if r.Right() > l.PixelWidth || r.Bottom() > l.PixelHeight {
		return true
	}
	left, right, top, bottom := l.coveredCells(r)
	for gy := top; gy <= bottom; gy++ {
		for gx := left; gx <= right; gx++ {
			if tile := l.tiles[[2]int{gx, gy}]; tile != nil && !tile.Def.Passable {
				return true
			}
		}
	}
	return false
}

// HandleBulletCollision разрешает столкновение пули с сеткой.
// Клетки сканируются построчно; срабатывает первый блокирующий тайл —
// даже если прямоугольник накрыл несколько, за вызов разрушается максимум
// один (важно для тонких быстрых пуль, цепляющих угол).
// Лес и лёд пули не останавливают.
func (l *Level) HandleBulletCollision(r utils.Rect) Impact {
	left, right, top, bottom := l.coveredCells(r)
	for gy := top; gy <= bottom; gy++ {
		for gx := left; gx <= right; gx++ {
			tile := l.tiles[[2]int{gx, gy}]
			if tile == nil {
				continue
			}
			switch tile.Def.Type {
			case TileForest, TileIce:
				continue
			}
			if !tile.Def.BulletBlock {
				continue
			}
			if tile.Def.Type == TileBase && l.BaseAlive {
				// База рушится один раз и не восстанавливается до конца этапа.
				l.BaseAlive = false
				for _, bt := range l.baseTiles {
					bt.Def = Definitions[TileBaseRuin]
				}
				return ImpactBase
			}
			if tile.Def.Destructible {
				delete(l.tiles, [2]int{gx, gy})
				return ImpactBrick
			}
			return ImpactBlock
		}
	}
	return ImpactNone
}
