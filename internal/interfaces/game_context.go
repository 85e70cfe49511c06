// internal/interfaces/game_context.go
package interfaces

// HighScoreStore хранит лучший результат между запусками.
type HighScoreStore interface {
	Load() (int, error)
	Save(score int) error
}
