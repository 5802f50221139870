// component/movement.go
package component

// Position — компонент позиции
type Position struct {
	X, Y float64
}

// Velocity — компонент скорости, пикселей в секунду по каждой оси
type Velocity struct {
	X, Y float64
}

// IsZero сообщает, стоит ли сущность на месте.
func (v Velocity) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Bounds — размеры игрового поля
type Bounds struct {
	Width, Height float64
}

// Min возвращает меньшую из сторон поля.
func (b Bounds) Min() float64 {
	if b.Width < b.Height {
		return b.Width
	}
	return b.Height
}
