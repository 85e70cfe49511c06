// internal/defs/rewards.go
package defs

import "image/color"

// RewardEntry - одна запись в таблице выпадения бонусов.
// Weight - относительный шанс выпадения.
type RewardEntry struct {
	Kind   RewardKind `json:"kind"`
	Weight int        `json:"weight"`
}

// RewardDefinition описывает падающий бонус.
type RewardDefinition struct {
	Kind    RewardKind `json:"kind"`
	Speed   float64    `json:"speed"`
	Visuals Visuals    `json:"visuals"`
}

// RewardLibrary - все бонусы по типу.
var RewardLibrary = map[RewardKind]RewardDefinition{
	RewardTwoShoot: {
		Kind: RewardTwoShoot, Speed: 80,
		Visuals: Visuals{Color: color.RGBA{60, 220, 90, 255}, Width: 50, Height: 60},
	},
	RewardBomb: {
		Kind: RewardBomb, Speed: 80,
		Visuals: Visuals{Color: color.RGBA{250, 70, 70, 255}, Width: 50, Height: 60},
	},
}

// RewardTable - бонусы выпадают с равной вероятностью.
var RewardTable = []RewardEntry{
	{Kind: RewardTwoShoot, Weight: 1},
	{Kind: RewardBomb, Weight: 1},
}
