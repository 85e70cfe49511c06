package component

import "github.com/tanema/gween"

// DamageFlash указывает, что сущность должна быть отрисована цветом урона.
// Alpha вспышки ведёт твин от 1 к 0.
type DamageFlash struct {
	Tween *gween.Tween
	Alpha float64
}

// DeathFade - затухание сущности во время анимации смерти.
type DeathFade struct {
	Tween *gween.Tween
	Alpha float64
}
