// internal/entity/ecs.go
package entity

import (
	"go-plane-war/internal/component"
	"go-plane-war/internal/types"
)

type ECS struct {
	GameTime      float64
	NextID        types.EntityID
	Positions     map[types.EntityID]*component.Position
	Velocities    map[types.EntityID]*component.Velocity
	Colliders     map[types.EntityID]*component.Collider
	Healths       map[types.EntityID]*component.Health
	Renderables   map[types.EntityID]*component.Renderable
	Enemies       map[types.EntityID]*component.Enemy
	Bosses        map[types.EntityID]*component.Boss
	Bullets       map[types.EntityID]*component.Bullet
	Rewards       map[types.EntityID]*component.Reward
	Players       map[types.EntityID]*component.Player
	DamageFlashes map[types.EntityID]*component.DamageFlash
	DeathFades    map[types.EntityID]*component.DeathFade
	Background    *component.Background
	GameState     *component.GameState
}

func NewECS() *ECS {
	return &ECS{
		NextID:        1,
		Positions:     make(map[types.EntityID]*component.Position),
		Velocities:    make(map[types.EntityID]*component.Velocity),
		Colliders:     make(map[types.EntityID]*component.Collider),
		Healths:       make(map[types.EntityID]*component.Health),
		Renderables:   make(map[types.EntityID]*component.Renderable),
		Enemies:       make(map[types.EntityID]*component.Enemy),
		Bosses:        make(map[types.EntityID]*component.Boss),
		Bullets:       make(map[types.EntityID]*component.Bullet),
		Rewards:       make(map[types.EntityID]*component.Reward),
		Players:       make(map[types.EntityID]*component.Player),
		DamageFlashes: make(map[types.EntityID]*component.DamageFlash),
		DeathFades:    make(map[types.EntityID]*component.DeathFade),
		Background:    &component.Background{TileY: [2]float64{0, 852}},
		GameState:     &component.GameState{},
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// Exists сообщает, есть ли у сущности позиция, то есть находится ли она в сцене.
func (ecs *ECS) Exists(id types.EntityID) bool {
	_, ok := ecs.Positions[id]
	return ok
}

// RemoveEntity удаляет все компоненты сущности. Повторный вызов безопасен.
func (ecs *ECS) RemoveEntity(id types.EntityID) {
	delete(ecs.Positions, id)
	delete(ecs.Velocities, id)
	delete(ecs.Colliders, id)
	delete(ecs.Healths, id)
	delete(ecs.Renderables, id)
	delete(ecs.Enemies, id)
	delete(ecs.Bosses, id)
	delete(ecs.Bullets, id)
	delete(ecs.Rewards, id)
	delete(ecs.Players, id)
	delete(ecs.DamageFlashes, id)
	delete(ecs.DeathFades, id)
}

// Clear удаляет все сущности. GameState и фон не трогаются.
func (ecs *ECS) Clear() {
	for id := range ecs.Positions {
		ecs.RemoveEntity(id)
	}
}
