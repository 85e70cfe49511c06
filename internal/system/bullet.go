// internal/system/bullet.go
package system

import (
	"go-plane-war/internal/component"
	"go-plane-war/internal/config"
	"go-plane-war/internal/defs"
	"go-plane-war/internal/entity"
	"go-plane-war/internal/event"
	"go-plane-war/internal/pool"
	"go-plane-war/internal/types"
)

// BulletSystem выпускает пули из пулов и возвращает их обратно,
// когда пуля улетает за экран или попадает во врага.
type BulletSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	pools           *pool.Keyed[defs.BulletKind, *component.Bullet]
}

func NewBulletSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *BulletSystem {
	pools := pool.NewKeyed(newBullet, func(b *component.Bullet) {
		b.Active = false
	})
	for _, kind := range defs.BulletKinds {
		pools.Prewarm(kind, config.BulletPoolPrewarm)
	}
	return &BulletSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		pools:           pools,
	}
}

func newBullet(kind defs.BulletKind) *component.Bullet {
	def := defs.BulletLibrary[kind]
	return &component.Bullet{Kind: kind, Speed: def.Speed, Damage: def.Damage}
}

// Fire берёт пулю из пула и размещает её в точке (x, y).
func (s *BulletSystem) Fire(kind defs.BulletKind, x, y float64) types.EntityID {
	bullet := s.pools.Get(kind)
	bullet.Active = true

	def := defs.BulletLibrary[kind]
	w, h := def.Visuals.ScaledSize()

	id := s.ecs.NewEntity()
	s.ecs.Bullets[id] = bullet
	s.ecs.Positions[id] = &component.Position{X: x, Y: y}
	s.ecs.Velocities[id] = &component.Velocity{DY: bullet.Speed}
	s.ecs.Colliders[id] = &component.Collider{HalfWidth: w / 2, HalfHeight: h / 2, Enabled: true}
	s.ecs.Renderables[id] = &component.Renderable{
		Color:  def.Visuals.Color,
		Width:  w,
		Height: h,
		Layer:  component.LayerBullet,
	}
	s.eventDispatcher.Dispatch(event.Event{Type: event.BulletFired, Data: kind})
	return id
}

// Update возвращает в пул пули, улетевшие за верхний край.
func (s *BulletSystem) Update(deltaTime float64) {
	for id := range s.ecs.Bullets {
		pos := s.ecs.Positions[id]
		if pos == nil || pos.Y > config.BulletEscapeY {
			s.Release(id)
		}
	}
}

// Release убирает пулю из сцены и возвращает её в пул того варианта,
// из которого она была взята. Для неизвестного id ничего не делает.
func (s *BulletSystem) Release(id types.EntityID) bool {
	bullet, ok := s.ecs.Bullets[id]
	if !ok {
		return false
	}
	s.ecs.RemoveEntity(id)
	return s.pools.Put(bullet.Kind, bullet)
}

// ReleaseAll возвращает в пулы все активные пули.
func (s *BulletSystem) ReleaseAll() {
	for id := range s.ecs.Bullets {
		s.Release(id)
	}
}

// Pooled - сколько свободных пуль данного варианта лежит в пуле.
func (s *BulletSystem) Pooled(kind defs.BulletKind) int {
	return s.pools.Len(kind)
}

// IsPooled сообщает, лежит ли объект пули сейчас в пуле.
func (s *BulletSystem) IsPooled(b *component.Bullet) bool {
	return s.pools.Pool(b.Kind).Contains(b)
}

// Active - число пуль в сцене.
func (s *BulletSystem) Active() int {
	return len(s.ecs.Bullets)
}
