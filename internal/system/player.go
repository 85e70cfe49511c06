// internal/system/player.go
package system

import (
	"go-plane-war/internal/component"
	"go-plane-war/internal/config"
	"go-plane-war/internal/defs"
	"go-plane-war/internal/entity"
	"go-plane-war/internal/event"
	"go-plane-war/internal/types"
	"go-plane-war/internal/utils"
)

// PlayerSystem отвечает за самолёт игрока: перемещение, режимы стрельбы,
// урон и окно неуязвимости.
type PlayerSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	state           *StateSystem
	bullets         *BulletSystem
	effects         *VisualEffectSystem
	tuning          config.Tuning
	playerID        types.EntityID
	diedNotified    bool
}

func NewPlayerSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, state *StateSystem, bullets *BulletSystem, effects *VisualEffectSystem, tuning config.Tuning) *PlayerSystem {
	ps := &PlayerSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		state:           state,
		bullets:         bullets,
		effects:         effects,
		tuning:          tuning,
	}
	eventDispatcher.Subscribe(event.EnemyEscaped, ps)
	return ps
}

// OnEvent обрабатывает события, на которые подписана система.
func (s *PlayerSystem) OnEvent(e event.Event) {
	if e.Type == event.EnemyEscaped {
		s.LoseLife()
	}
}

// Spawn создаёт самолёт игрока в стартовой точке, убирая прежний.
func (s *PlayerSystem) Spawn() types.EntityID {
	if s.playerID != 0 {
		s.ecs.RemoveEntity(s.playerID)
	}
	id := s.ecs.NewEntity()
	s.ecs.Positions[id] = &component.Position{X: config.PlayerStartX, Y: config.PlayerStartY}
	s.ecs.Colliders[id] = &component.Collider{
		HalfWidth:  config.PlayerWidth * 0.3,
		HalfHeight: config.PlayerHeight * 0.35,
		Enabled:    true,
	}
	s.ecs.Renderables[id] = &component.Renderable{
		Color:  config.PlayerColor,
		Width:  config.PlayerWidth,
		Height: config.PlayerHeight,
		Layer:  component.LayerPlayer,
	}
	s.ecs.Players[id] = &component.Player{Mode: component.ShootOne}
	s.playerID = id
	s.diedNotified = false
	return id
}

func (s *PlayerSystem) ID() types.EntityID {
	return s.playerID
}

// Player возвращает компонент игрока или nil, если самолёта нет.
func (s *PlayerSystem) Player() *component.Player {
	return s.ecs.Players[s.playerID]
}

// Position возвращает позицию игрока или nil.
func (s *PlayerSystem) Position() *component.Position {
	return s.ecs.Positions[s.playerID]
}

// Drag сдвигает самолёт на (dx, dy) и зажимает его в допустимом прямоугольнике.
// На паузе и после смерти перетаскивание игнорируется.
func (s *PlayerSystem) Drag(dx, dy float64) bool {
	player := s.Player()
	pos := s.Position()
	if player == nil || pos == nil || player.Dead || s.ecs.GameState.Paused {
		return false
	}
	pos.X = utils.Clamp(pos.X+dx, config.PlayerMinX, config.PlayerMaxX)
	pos.Y = utils.Clamp(pos.Y+dy, config.PlayerMinY, config.PlayerMaxY)
	return true
}

func (s *PlayerSystem) Update(deltaTime float64) {
	player := s.Player()
	if player == nil {
		return
	}

	if player.Dead {
		player.DeathTimer -= deltaTime
		if player.DeathTimer <= 0 && !s.diedNotified {
			s.diedNotified = true
			s.ecs.RemoveEntity(s.playerID)
			s.eventDispatcher.Dispatch(event.Event{Type: event.PlayerDied})
		}
		return
	}

	if player.InvincibleTimer > 0 {
		player.InvincibleTimer -= deltaTime
		if player.InvincibleTimer < 0 {
			player.InvincibleTimer = 0
		}
	}

	switch player.Mode {
	case component.ShootOne:
		s.oneShoot(player, deltaTime)
	case component.ShootTwo:
		s.twoShoot(player, deltaTime)
	}
}

func (s *PlayerSystem) oneShoot(player *component.Player, dt float64) {
	player.ShootTimer += dt
	if player.ShootTimer > s.tuning.ShootRate {
		player.ShootTimer = 0
		pos := s.Position()
		s.bullets.Fire(defs.BulletSingle, pos.X, pos.Y+config.NoseOffsetY)
	}
}

func (s *PlayerSystem) twoShoot(player *component.Player, dt float64) {
	player.TwoShootTimer += dt
	if player.TwoShootTimer >= s.tuning.TwoShootTime {
		s.TransitionToOneShoot()
		return
	}

	player.ShootTimer += dt
	if player.ShootTimer > s.tuning.ShootRate {
		player.ShootTimer = 0
		pos := s.Position()
		s.bullets.Fire(defs.BulletDouble, pos.X-config.WingOffsetX, pos.Y+config.WingOffsetY)
		s.bullets.Fire(defs.BulletDouble, pos.X+config.WingOffsetX, pos.Y+config.WingOffsetY)
	}
}

// TransitionToTwoShoot включает двойной выстрел и перезапускает его таймер.
func (s *PlayerSystem) TransitionToTwoShoot() {
	if player := s.Player(); player != nil && !player.Dead {
		player.Mode = component.ShootTwo
		player.TwoShootTimer = 0
	}
}

// TransitionToOneShoot возвращает одиночный выстрел.
func (s *PlayerSystem) TransitionToOneShoot() {
	if player := s.Player(); player != nil && !player.Dead {
		player.Mode = component.ShootOne
		player.TwoShootTimer = 0
	}
}

// PickReward применяет бонус. Бонусы подбираются и во время неуязвимости,
// но один и тот же бонус засчитывается только один раз.
func (s *PlayerSystem) PickReward(rewardID types.EntityID, kind defs.RewardKind) bool {
	player := s.Player()
	if player == nil || player.Dead || rewardID == player.LastReward {
		return false
	}
	player.LastReward = rewardID

	if kind == defs.RewardTwoShoot {
		s.TransitionToTwoShoot()
	}
	s.eventDispatcher.Dispatch(event.Event{Type: event.RewardPicked, Data: kind})
	return true
}

// Damage - столкновение с врагом. Во время неуязвимости игнорируется.
func (s *PlayerSystem) Damage() bool {
	player := s.Player()
	if player == nil || player.Dead || player.Invincible() {
		return false
	}
	s.hurt(player)
	return true
}

// LoseLife отнимает жизнь без учёта неуязвимости (враг прорвался вниз).
func (s *PlayerSystem) LoseLife() {
	player := s.Player()
	if player == nil || player.Dead {
		return
	}
	s.hurt(player)
}

func (s *PlayerSystem) hurt(player *component.Player) {
	lives := s.state.SubHp()
	s.eventDispatcher.Dispatch(event.Event{Type: event.PlayerHit, Data: lives})

	if lives <= 0 {
		player.Dead = true
		player.Mode = component.ShootNone
		player.DeathTimer = config.PlayerDeathDuration
		if col, ok := s.ecs.Colliders[s.playerID]; ok {
			col.Enabled = false
		}
		s.effects.Fade(s.playerID, config.PlayerDeathDuration)
		return
	}

	player.InvincibleTimer = s.tuning.InvincibleTime
	s.effects.Flash(s.playerID, s.tuning.HitDuration)
}
