// internal/event/types.go
package event

import "go-plane-war/internal/types"

const (
	ScoreChanged   EventType = "ScoreChanged"   // Data: int, новый счёт
	HpChanged      EventType = "HpChanged"      // Data: int, оставшиеся жизни
	BombChanged    EventType = "BombChanged"    // Data: int, число бомб
	EnemyDestroyed EventType = "EnemyDestroyed" // Data: EnemyDestroyedData
	EnemyEscaped   EventType = "EnemyEscaped"   // Data: types.EntityID
	BossSpawned    EventType = "BossSpawned"    // Data: types.EntityID
	BossDefeated   EventType = "BossDefeated"   // Data: types.EntityID
	PlayerHit      EventType = "PlayerHit"      // Data: int, оставшиеся жизни
	PlayerDied     EventType = "PlayerDied"     // Анимация смерти игрока закончилась
	RewardPicked   EventType = "RewardPicked"   // Data: defs.RewardKind
	BombUsed       EventType = "BombUsed"       // Data: int, сколько врагов уничтожено
	BulletFired    EventType = "BulletFired"    // Data: defs.BulletKind
	GameOver       EventType = "GameOver"       // Data: GameOverData
	GamePaused     EventType = "GamePaused"
	GameResumed    EventType = "GameResumed"
	GameRestarted  EventType = "GameRestarted"
)

// EnemyDestroyedData - данные события EnemyDestroyed.
// Score равен нулю, если враг уничтожен бомбой.
type EnemyDestroyedData struct {
	ID     types.EntityID
	DefID  string
	Score  int
	IsBoss bool
}

// GameOverData - итог партии.
type GameOverData struct {
	Score     int
	HighScore int // Рекорд до этой партии
}
