// internal/utils/geom.go
package utils

// Rect — осевой прямоугольник в пиксельных координатах поля.
// Правый и нижний края исключаются, как у image.Rectangle.
type Rect struct {
	X, Y float64
	W, H float64
}

// NewRect создаёт прямоугольник по левому верхнему углу и размерам.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right возвращает координату правого края.
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom возвращает координату нижнего края.
func (r Rect) Bottom() float64 { return r.Y + r.H }

// CenterX возвращает X центра.
func (r Rect) CenterX() float64 { return r.X + r.W/2 }

// CenterY возвращает Y центра.
func (r Rect) CenterY() float64 { return r.Y + r.H/2 }

// Intersects сообщает, пересекаются ли прямоугольники.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.Right() && o.X < r.Right() &&
		r.Y < o.Bottom() && o.Y < r.Bottom()
}

// Contains сообщает, лежит ли o целиком внутри r.
func (r Rect) Contains(o Rect) bool {
	return o.X >= r.X && o.Y >= r.Y &&
		o.Right() <= r.Right() && o.Bottom() <= r.Bottom()
}
