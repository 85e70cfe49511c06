package system

import (
	"go-plane-war/internal/config"
	"go-plane-war/internal/defs"
	"go-plane-war/internal/entity"
	"go-plane-war/internal/event"
	"go-plane-war/internal/utils"
	"testing"
)

// world собирает все системы так же, как app.Game, но без рендера и звука.
type world struct {
	ecs    *entity.ECS
	disp   *event.Dispatcher
	tuning config.Tuning

	state     *StateSystem
	movement  *MovementSystem
	effects   *VisualEffectSystem
	bullets   *BulletSystem
	enemies   *EnemySystem
	bosses    *BossSystem
	rewards   *RewardSystem
	spawn     *SpawnSystem
	player    *PlayerSystem
	collision *CollisionSystem
	bomb      *BombSystem

	events []event.Event
}

var recordedEvents = []event.EventType{
	event.ScoreChanged,
	event.HpChanged,
	event.BombChanged,
	event.EnemyDestroyed,
	event.EnemyEscaped,
	event.BossSpawned,
	event.BossDefeated,
	event.PlayerHit,
	event.PlayerDied,
	event.RewardPicked,
	event.BombUsed,
	event.BulletFired,
}

func newWorld(t *testing.T) *world {
	t.Helper()
	w := &world{
		ecs:    entity.NewECS(),
		disp:   event.NewDispatcher(),
		tuning: config.DefaultTuning(),
	}
	for _, et := range recordedEvents {
		w.disp.Subscribe(et, event.ListenerFunc(func(e event.Event) {
			w.events = append(w.events, e)
		}))
	}

	w.state = NewStateSystem(w.ecs, w.disp)
	w.movement = NewMovementSystem(w.ecs)
	w.effects = NewVisualEffectSystem(w.ecs)
	w.bullets = NewBulletSystem(w.ecs, w.disp)
	w.enemies = NewEnemySystem(w.ecs, w.disp, w.effects, w.tuning)
	w.bosses = NewBossSystem(w.ecs, w.enemies, defs.BossParams)
	w.rewards = NewRewardSystem(w.ecs)
	w.spawn = NewSpawnSystem(w.ecs, w.disp, w.enemies, w.bosses, w.rewards, utils.NewPRNGService(1), w.tuning)
	w.player = NewPlayerSystem(w.ecs, w.disp, w.state, w.bullets, w.effects, w.tuning)
	w.collision = NewCollisionSystem(w.ecs, w.enemies, w.bullets, w.rewards, w.player)
	w.bomb = NewBombSystem(w.ecs, w.disp, w.state, w.enemies, w.tuning)

	w.state.Reset(w.tuning.InitialLives)
	w.events = w.events[:0]
	return w
}

// count - сколько событий данного типа пришло.
func (w *world) count(et event.EventType) int {
	n := 0
	for _, e := range w.events {
		if e.Type == et {
			n++
		}
	}
	return n
}

// tick продвигает мир тем же порядком систем, что и app.Game.
func (w *world) tick(dt float64) {
	w.ecs.GameTime += dt
	w.spawn.Update(dt)
	w.movement.Update(dt)
	w.bosses.Update(dt)
	w.enemies.Update(dt)
	w.bullets.Update(dt)
	w.rewards.Update(dt)
	w.collision.Update()
	w.player.Update(dt)
	w.effects.Update(dt)
}
