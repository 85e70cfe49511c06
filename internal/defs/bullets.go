// internal/defs/bullets.go
package defs

import "image/color"

// BulletDefinition - статические данные варианта пули.
type BulletDefinition struct {
	Kind    BulletKind `json:"kind"`
	Speed   float64    `json:"speed"`
	Damage  int        `json:"damage"`
	Visuals Visuals    `json:"visuals"`
}

var BulletLibrary = map[BulletKind]BulletDefinition{
	BulletSingle: {
		Kind: BulletSingle, Speed: 500, Damage: 1,
		Visuals: Visuals{Color: color.RGBA{255, 230, 90, 255}, Width: 5, Height: 11},
	},
	BulletDouble: {
		Kind: BulletDouble, Speed: 500, Damage: 1,
		Visuals: Visuals{Color: color.RGBA{120, 200, 255, 255}, Width: 5, Height: 11},
	},
}

// BulletKinds - все варианты в фиксированном порядке.
var BulletKinds = []BulletKind{BulletSingle, BulletDouble}
