package component

// GameState - глобальное состояние партии: счёт, жизни, бомбы, счётчики босса.
type GameState struct {
	Score       int
	Lives       int
	Bombs       int
	BossCounter int  // Сколько порогов очков уже «потрачено» на боссов
	BossActive  bool // Босс сейчас на поле
	Paused      bool
	Over        bool
}

// Reset возвращает состояние к началу партии.
func (s *GameState) Reset(lives int) {
	*s = GameState{Lives: lives}
}
