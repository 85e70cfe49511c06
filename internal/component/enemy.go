package component

// EnemyState - состояние врага.
type EnemyState int

const (
	EnemyAlive EnemyState = iota
	EnemyHit              // Короткая неуязвимость, пока играет анимация попадания
	EnemyDead             // Играет анимация смерти, затем сущность удаляется
)

func (s EnemyState) String() string {
	switch s {
	case EnemyAlive:
		return "alive"
	case EnemyHit:
		return "hit"
	case EnemyDead:
		return "dead"
	}
	return "unknown"
}

// Enemy представляет вражескую сущность.
type Enemy struct {
	DefID      string  // ID из EnemyLibrary
	Score      int     // Очки за уничтожение
	State      EnemyState
	StateTimer float64 // Сколько осталось до конца Hit или Dead
	IsBoss     bool
}
