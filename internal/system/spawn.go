// internal/system/spawn.go
package system

import (
	"go-plane-war/internal/config"
	"go-plane-war/internal/defs"
	"go-plane-war/internal/entity"
	"go-plane-war/internal/event"
	"go-plane-war/internal/utils"
	"log"
)

// SpawnSystem по таймерам выпускает врагов и бонусы.
// У каждого вида врага свой таймер; босс дополнительно ждёт порога очков.
type SpawnSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	enemies         *EnemySystem
	bosses          *BossSystem
	rewards         *RewardSystem
	rng             *utils.PRNGService
	tuning          config.Tuning
	timers          map[string]float64
	rewardTimer     float64
}

func NewSpawnSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, enemies *EnemySystem, bosses *BossSystem, rewards *RewardSystem, rng *utils.PRNGService, tuning config.Tuning) *SpawnSystem {
	return &SpawnSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		enemies:         enemies,
		bosses:          bosses,
		rewards:         rewards,
		rng:             rng,
		tuning:          tuning,
		timers:          make(map[string]float64),
	}
}

func (s *SpawnSystem) Update(deltaTime float64) {
	for _, defID := range defs.EnemySpawnOrder {
		def, ok := defs.EnemyLibrary[defID]
		if !ok {
			continue
		}
		s.timers[defID] += deltaTime
		if s.timers[defID] >= def.SpawnRate {
			s.timers[defID] = 0
			if def.IsBoss {
				s.TrySpawnBoss()
			} else {
				s.spawnEnemy(def)
			}
		}
	}

	s.rewardTimer += deltaTime
	if s.rewardTimer >= s.tuning.RewardSpawnRate {
		s.rewardTimer = 0
		s.spawnReward()
	}
}

// Reset обнуляет таймеры (рестарт).
func (s *SpawnSystem) Reset() {
	clear(s.timers)
	s.rewardTimer = 0
}

func (s *SpawnSystem) spawnEnemy(def defs.EnemyDefinition) {
	x := s.rng.RangeInt(def.SpawnMinX, def.SpawnMaxX)
	s.enemies.Spawn(def.ID, float64(x), def.SpawnY)
}

// TrySpawnBoss выпускает босса, если счёт перешёл очередной порог
// и другого босса на поле нет. Каждый порог срабатывает не больше одного раза.
func (s *SpawnSystem) TrySpawnBoss() bool {
	gs := s.ecs.GameState
	step := s.tuning.BossScoreStep
	if gs.Score-gs.BossCounter*step < step || gs.BossActive {
		return false
	}

	var bossDef defs.EnemyDefinition
	found := false
	for _, defID := range defs.EnemySpawnOrder {
		if def := defs.EnemyLibrary[defID]; def.IsBoss {
			bossDef, found = def, true
			break
		}
	}
	if !found {
		return false
	}

	x := s.rng.RangeInt(bossDef.SpawnMinX, bossDef.SpawnMaxX)
	id, ok := s.bosses.Spawn(bossDef.ID, float64(x), bossDef.SpawnY)
	if !ok {
		return false
	}
	gs.BossCounter++
	gs.BossActive = true
	log.Printf("Boss spawned at score %d (threshold #%d)", gs.Score, gs.BossCounter)
	s.eventDispatcher.Dispatch(event.Event{Type: event.BossSpawned, Data: id})
	return true
}

func (s *SpawnSystem) spawnReward() {
	kind := s.rng.ChooseWeighted(defs.RewardTable)
	if kind == "" {
		return
	}
	x := s.rng.RangeInt(config.RewardMinX, config.RewardMaxX)
	s.rewards.Spawn(kind, float64(x), config.RewardY)
}
