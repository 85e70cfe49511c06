// internal/component/movement.go
package component

// Position - компонент позиции (мировые координаты, Y вверх)
type Position struct {
	X, Y float64
}

// Velocity - компонент скорости, пикселей в секунду
type Velocity struct {
	DX, DY float64
}

// Collider - прямоугольный коллайдер с центром в Position
type Collider struct {
	HalfWidth, HalfHeight float64
	Enabled               bool
}
