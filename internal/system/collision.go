// internal/system/collision.go
package system

import (
	"go-plane-war/internal/component"
	"go-plane-war/internal/entity"
	"go-plane-war/internal/types"
	"go-plane-war/internal/utils"
	"sort"
)

// CollisionSystem проверяет пересечения коллайдеров и раздаёт последствия:
// пуля попадает во врага, игрок подбирает бонус или сталкивается с врагом.
type CollisionSystem struct {
	ecs     *entity.ECS
	enemies *EnemySystem
	bullets *BulletSystem
	rewards *RewardSystem
	player  *PlayerSystem
	ids     []types.EntityID
}

func NewCollisionSystem(ecs *entity.ECS, enemies *EnemySystem, bullets *BulletSystem, rewards *RewardSystem, player *PlayerSystem) *CollisionSystem {
	return &CollisionSystem{
		ecs:     ecs,
		enemies: enemies,
		bullets: bullets,
		rewards: rewards,
		player:  player,
	}
}

func (s *CollisionSystem) Update() {
	s.bulletsVsEnemies()
	s.playerVsRewards()
	s.playerVsEnemies()
}

func (s *CollisionSystem) bulletsVsEnemies() {
	enemyIDs := s.sortedEnemyIDs()
	for bulletID, bullet := range s.ecs.Bullets {
		for _, enemyID := range enemyIDs {
			if !s.overlap(bulletID, enemyID) {
				continue
			}
			// Пуля не уничтожается, а возвращается в свой пул
			s.enemies.Hit(enemyID, bullet.Damage)
			s.bullets.Release(bulletID)
			break
		}
	}
}

func (s *CollisionSystem) playerVsRewards() {
	playerID := s.player.ID()
	for rewardID, reward := range s.ecs.Rewards {
		if !s.overlap(playerID, rewardID) {
			continue
		}
		s.player.PickReward(rewardID, reward.Kind)
		s.rewards.Remove(rewardID)
	}
}

func (s *CollisionSystem) playerVsEnemies() {
	player := s.player.Player()
	if player == nil || player.Dead || player.Invincible() {
		return
	}
	playerID := s.player.ID()
	for _, enemyID := range s.sortedEnemyIDs() {
		if s.overlap(playerID, enemyID) {
			s.player.Damage()
			return
		}
	}
}

// overlap учитывает только включённые коллайдеры.
func (s *CollisionSystem) overlap(a, b types.EntityID) bool {
	ca, pa := s.collider(a)
	cb, pb := s.collider(b)
	if ca == nil || cb == nil {
		return false
	}
	return utils.Overlap(pa.X, pa.Y, ca.HalfWidth, ca.HalfHeight, pb.X, pb.Y, cb.HalfWidth, cb.HalfHeight)
}

func (s *CollisionSystem) collider(id types.EntityID) (*component.Collider, *component.Position) {
	col, ok := s.ecs.Colliders[id]
	if !ok || !col.Enabled {
		return nil, nil
	}
	pos, ok := s.ecs.Positions[id]
	if !ok {
		return nil, nil
	}
	return col, pos
}

// sortedEnemyIDs даёт стабильный порядок обхода, чтобы пуля всегда
// попадала в самого старого из перекрывающихся врагов.
func (s *CollisionSystem) sortedEnemyIDs() []types.EntityID {
	s.ids = s.ids[:0]
	for id := range s.ecs.Enemies {
		s.ids = append(s.ids, id)
	}
	sort.Slice(s.ids, func(i, j int) bool { return s.ids[i] < s.ids[j] })
	return s.ids
}
