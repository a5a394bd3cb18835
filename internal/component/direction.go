// internal/component/direction.go
package component

// Direction — одно из четырёх направлений движения/ствола.
type Direction int

const (
	DirUp Direction = iota
	DirRight
	DirDown
	DirLeft
)

// DirectionCount — количество направлений, для случайного выбора ИИ.
const DirectionCount = 4

// Vector возвращает единичный вектор направления.
func (d Direction) Vector() (dx, dy float64) {
	switch d {
	case DirUp:
		return 0, -1
	case DirRight:
		return 1, 0
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	}
	return 0, 0
}

// String возвращает имя направления.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirRight:
		return "right"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	default:
		return "?"
	}
}
