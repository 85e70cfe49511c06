// internal/defs/enemies.go
package defs

import "image/color"

const (
	EnemySmall  = "ENEMY_0"
	EnemyMedium = "ENEMY_1"
	EnemyBoss   = "ENEMY_BOSS"
)

// EnemyDefinition holds all the static data for a specific type of enemy.
type EnemyDefinition struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Health    int     `json:"health"`
	Speed     float64 `json:"speed"`
	Score     int     `json:"score"`
	SpawnRate float64 `json:"spawn_rate"` // Интервал появления, сек
	SpawnMinX int     `json:"spawn_min_x"`
	SpawnMaxX int     `json:"spawn_max_x"` // Не включительно
	SpawnY    float64 `json:"spawn_y"`
	IsBoss    bool    `json:"is_boss"`
	Visuals   Visuals `json:"visuals"`
}

// BossDefinition - параметры сценария движения босса.
type BossDefinition struct {
	TargetY      float64 `json:"target_y"`      // Высота, на которой босс патрулирует
	PatrolSpeed  float64 `json:"patrol_speed"`  // Горизонтальная скорость
	PatrolLimit  float64 `json:"patrol_limit"`  // |x|, после которого босс разворачивается
	DashSpeed    float64 `json:"dash_speed"`    // Скорость рывка вниз
	ReturnFactor float64 `json:"return_factor"` // Во сколько раз возврат быстрее рывка
	DashBottomY  float64 `json:"dash_bottom_y"` // Нижняя точка рывка
	DashInterval float64 `json:"dash_interval"` // Пауза между рывками, сек
}

// EnemyLibrary is a map to hold all enemy definitions, keyed by their ID.
var EnemyLibrary = map[string]EnemyDefinition{
	EnemySmall: {
		ID: EnemySmall, Name: "Scout", Health: 1, Speed: 300, Score: 100,
		SpawnRate: 1, SpawnMinX: -212, SpawnMaxX: 212, SpawnY: 450,
		Visuals: Visuals{Color: color.RGBA{230, 230, 230, 255}, Width: 57, Height: 43},
	},
	EnemyMedium: {
		ID: EnemyMedium, Name: "Fighter", Health: 3, Speed: 200, Score: 500,
		SpawnRate: 2, SpawnMinX: -200, SpawnMaxX: 200, SpawnY: 475,
		Visuals: Visuals{Color: color.RGBA{240, 180, 60, 255}, Width: 69, Height: 89},
	},
	EnemyBoss: {
		ID: EnemyBoss, Name: "Mothership", Health: 100, Speed: 150, Score: 20000,
		SpawnRate: 4, SpawnMinX: 0, SpawnMaxX: 0, SpawnY: 600, IsBoss: true,
		Visuals: Visuals{Color: color.RGBA{200, 60, 200, 255}, Width: 165, Height: 256, Scale: 1.3},
	},
}

// EnemySpawnOrder - порядок, в котором SpawnSystem обходит библиотеку.
// Обход map в Go случаен, а порядок нужен детерминированный.
var EnemySpawnOrder = []string{EnemySmall, EnemyMedium, EnemyBoss}

// BossParams - сценарий босса.
var BossParams = BossDefinition{
	TargetY:      240,
	PatrolSpeed:  20,
	PatrolLimit:  115,
	DashSpeed:    300,
	ReturnFactor: 2,
	DashBottomY:  -180,
	DashInterval: 8,
}
