// internal/app/input.go
package app

import "go-tanchiki/internal/component"

// InputFrame — состояние ввода на один кадр симуляции. Ядро не знает,
// с какого устройства пришли сигналы: состояние игры опрашивает
// клавиатуру ebiten и заполняет эти булевы поля.
type InputFrame struct {
	Up, Down, Left, Right bool
	Fire                  bool
	Confirm               bool
	Quit                  bool
}

// Direction возвращает нажатое направление. Приоритет фиксированный
// (вверх-вниз-влево-вправо): одновременные нажатия не складываются
// в диагональ.
func (f InputFrame) Direction() (component.Direction, bool) {
	switch {
	case f.Up:
		return component.DirUp, true
	case f.Down:
		return component.DirDown, true
	case f.Left:
		return component.DirLeft, true
	case f.Right:
		return component.DirRight, true
	}
	return component.DirUp, false
}
