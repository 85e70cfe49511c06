// internal/defs/types.go
package defs

import "image/color"

// Visuals описывает, как сущность выглядит на экране.
// Width и Height задают и размер прямоугольника, и размер коллайдера.
type Visuals struct {
	Color  color.RGBA `json:"color"`
	Width  float64    `json:"width"`
	Height float64    `json:"height"`
	Scale  float64    `json:"scale,omitempty"`
}

// ScaledSize возвращает размер с учётом масштаба.
func (v Visuals) ScaledSize() (float64, float64) {
	scale := v.Scale
	if scale <= 0 {
		scale = 1
	}
	return v.Width * scale, v.Height * scale
}

// BulletKind - вариант пули. Для каждого варианта свой пул.
type BulletKind string

const (
	BulletSingle BulletKind = "BULLET_1" // Одиночный выстрел из носа
	BulletDouble BulletKind = "BULLET_2" // Двойной выстрел с крыльев
)

// RewardKind - тип бонуса.
type RewardKind string

const (
	RewardTwoShoot RewardKind = "TWO_SHOOT"
	RewardBomb     RewardKind = "BOMB"
)
