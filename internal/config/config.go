// internal/config/config.go
package config

import "image/color"

// Игровое поле: начало координат в центре, ось Y направлена вверх.
// RenderSystem переводит мировые координаты в экранные.
const (
	ScreenWidth  = 480
	ScreenHeight = 852
	MaxDeltaTime = 0.06

	// Прямоугольник, внутри которого может находиться игрок
	PlayerMinX = -230.0
	PlayerMaxX = 230.0
	PlayerMinY = -400.0
	PlayerMaxY = 380.0

	PlayerStartX = 0.0
	PlayerStartY = -300.0
	PlayerWidth  = 100.0
	PlayerHeight = 124.0

	// Линии, за которыми объекты покидают игру
	EnemyEscapeY  = -470.0
	RewardEscapeY = -580.0
	BulletEscapeY = 700.0

	BackgroundTileHeight = 852.0
	BackgroundSpeed      = 100.0

	BulletPoolPrewarm = 10

	// Точки вылета пуль относительно центра игрока
	NoseOffsetY = 70.0
	WingOffsetX = 35.0
	WingOffsetY = 30.0

	RewardMinX = -210
	RewardMaxX = 210
	RewardY    = 470.0
	RewardSize = 50.0

	PlayerDeathDuration = 0.8

	ButtonWidth     = 160
	ButtonHeight    = 48
	PauseButtonSize = 40
	HUDMargin       = 12
	FontSize        = 18
	TitleFontSize   = 36
)

// Цвета. Спрайтов нет, всё рисуется прямоугольниками.
var (
	BackgroundColor     = color.RGBA{18, 22, 40, 255}
	BackgroundAltColor  = color.RGBA{26, 32, 56, 255}
	StarColor           = color.RGBA{200, 210, 255, 160}
	PlayerColor         = color.RGBA{80, 200, 255, 255}
	PlayerCockpitColor  = color.RGBA{230, 250, 255, 255}
	FlashColor          = color.RGBA{255, 255, 255, 255}
	TextLightColor      = color.RGBA{240, 240, 240, 255}
	TextDarkColor       = color.RGBA{20, 20, 30, 255}
	ButtonColor         = color.RGBA{70, 130, 180, 230}
	ButtonHoverColor    = color.RGBA{100, 160, 210, 240}
	OverlayColor        = color.RGBA{0, 0, 0, 150}
	PanelColor          = color.RGBA{30, 36, 60, 240}
	PanelStrokeColor    = color.RGBA{240, 240, 240, 255}
	TwoShootRewardColor = color.RGBA{60, 220, 90, 255}
	BombRewardColor     = color.RGBA{250, 70, 70, 255}
)
