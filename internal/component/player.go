// internal/component/player.go
package component

import "go-plane-war/internal/types"

// ShootMode - режим стрельбы игрока.
type ShootMode int

const (
	ShootNone ShootMode = iota
	ShootOne
	ShootTwo
)

func (m ShootMode) String() string {
	switch m {
	case ShootNone:
		return "none"
	case ShootOne:
		return "one"
	case ShootTwo:
		return "two"
	}
	return "unknown"
}

// Player хранит состояние самолёта игрока.
// Жизни хранятся в GameState, здесь только то, что относится к самолёту.
type Player struct {
	Mode            ShootMode
	ShootTimer      float64
	TwoShootTimer   float64
	InvincibleTimer float64 // > 0, пока игрок неуязвим
	Dead            bool
	DeathTimer      float64
	LastReward      types.EntityID // Защита от повторного подбора того же бонуса
}

// Invincible сообщает, действует ли окно неуязвимости.
func (p *Player) Invincible() bool {
	return p.InvincibleTimer > 0
}
