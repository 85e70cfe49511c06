package system

import (
	"go-plane-war/internal/component"
	"go-plane-war/internal/defs"
	"go-plane-war/internal/event"
	"go-plane-war/internal/types"
	"testing"
)

func TestBossSpawnOncePerThreshold(t *testing.T) {
	w := newWorld(t)
	gs := w.state.State()

	if w.spawn.TrySpawnBoss() {
		t.Fatal("boss spawned at score 0")
	}

	w.state.AddScore(10000)
	if !w.spawn.TrySpawnBoss() {
		t.Fatal("boss not spawned at 10000")
	}
	if !gs.BossActive || gs.BossCounter != 1 {
		t.Fatalf("BossActive=%v BossCounter=%d, want true 1", gs.BossActive, gs.BossCounter)
	}
	if w.spawn.TrySpawnBoss() {
		t.Error("second boss spawned while the first is active")
	}

	w.enemies.Clear()
	if w.spawn.TrySpawnBoss() {
		t.Error("boss spawned twice for the same threshold")
	}

	w.state.AddScore(10000)
	if !w.spawn.TrySpawnBoss() {
		t.Error("boss not spawned at the next threshold")
	}
	if got := w.count(event.BossSpawned); got != 2 {
		t.Errorf("BossSpawned dispatched %d times, want 2", got)
	}
}

func TestBossSpawnsNeverExceedThresholds(t *testing.T) {
	w := newWorld(t)
	step := w.tuning.BossScoreStep

	for i := 0; i < 50; i++ {
		w.state.AddScore(1700)
		w.spawn.TrySpawnBoss()
		w.spawn.TrySpawnBoss()
		w.enemies.Clear()

		gs := w.state.State()
		if limit := gs.Score / step; gs.BossCounter > limit {
			t.Fatalf("score %d: %d bosses, at most %d allowed", gs.Score, gs.BossCounter, limit)
		}
	}
}

func TestBossRemovedWithoutDeathFreesSlot(t *testing.T) {
	w := newWorld(t)
	w.state.AddScore(10000)
	w.spawn.TrySpawnBoss()

	w.enemies.Clear()
	if w.state.State().BossActive {
		t.Error("BossActive still set after boss removal")
	}
}

func TestBossPhases(t *testing.T) {
	w := newWorld(t)
	p := defs.BossParams
	id, ok := w.bosses.Spawn(defs.EnemyBoss, 0, 600)
	if !ok {
		t.Fatal("boss spawn failed")
	}
	boss := w.ecs.Bosses[id]
	pos := w.ecs.Positions[id]
	const dt = 0.05

	run := func(want component.BossPhase, limit int) {
		t.Helper()
		for i := 0; i < limit && boss.Phase != want; i++ {
			w.bosses.Update(dt)
		}
		if boss.Phase != want {
			t.Fatalf("phase = %v, want %v (pos %.1f, %.1f)", boss.Phase, want, pos.X, pos.Y)
		}
	}

	if boss.Phase != component.BossDescending {
		t.Fatalf("initial phase = %v, want descending", boss.Phase)
	}
	run(component.BossPatrolling, 1000)
	if pos.Y > p.TargetY {
		t.Errorf("patrol started above target: y = %.1f", pos.Y)
	}

	x := pos.X
	w.bosses.Update(dt)
	if pos.X <= x {
		t.Errorf("patrol did not move right: %.2f -> %.2f", x, pos.X)
	}

	run(component.BossDashing, 1000)
	run(component.BossReturning, 1000)
	if pos.Y > p.DashBottomY {
		t.Errorf("dash turned back above the bottom: y = %.1f", pos.Y)
	}
	run(component.BossPatrolling, 1000)
	if pos.Y != p.TargetY {
		t.Errorf("return ended at y = %.1f, want %.1f", pos.Y, p.TargetY)
	}
}

func TestBossPatrolBounces(t *testing.T) {
	w := newWorld(t)
	p := defs.BossParams
	id, _ := w.bosses.Spawn(defs.EnemyBoss, 0, p.TargetY)
	boss := w.ecs.Bosses[id]
	pos := w.ecs.Positions[id]
	boss.Phase = component.BossPatrolling

	pos.X = p.PatrolLimit + 1
	w.bosses.Update(0.01)
	if boss.PatrolSpeed >= 0 {
		t.Errorf("past the right limit speed = %v, want negative", boss.PatrolSpeed)
	}
	// Повторный кадр за границей не должен развернуть обратно
	w.bosses.Update(0.01)
	if boss.PatrolSpeed >= 0 {
		t.Errorf("speed flipped back to %v", boss.PatrolSpeed)
	}

	pos.X = -p.PatrolLimit - 1
	w.bosses.Update(0.01)
	if boss.PatrolSpeed <= 0 {
		t.Errorf("past the left limit speed = %v, want positive", boss.PatrolSpeed)
	}
}

func TestBossKilledByBullets(t *testing.T) {
	w := newWorld(t)
	w.state.AddScore(10000)
	w.spawn.TrySpawnBoss()
	var id types.EntityID
	for bossID := range w.ecs.Bosses {
		id = bossID
	}

	hp := defs.EnemyLibrary[defs.EnemyBoss].Health
	if !w.enemies.Hit(id, hp) {
		t.Fatal("Hit on the boss was ignored")
	}
	if got := w.ecs.Enemies[id].State; got != component.EnemyDead {
		t.Errorf("boss state = %v, want dead", got)
	}
	if w.state.State().BossActive {
		t.Error("BossActive still set after boss death")
	}
	if got := w.count(event.BossDefeated); got != 1 {
		t.Errorf("BossDefeated dispatched %d times, want 1", got)
	}
	if want := 10000 + defs.EnemyLibrary[defs.EnemyBoss].Score; w.state.State().Score != want {
		t.Errorf("score = %d, want %d", w.state.State().Score, want)
	}
}

func TestBombSparesBoss(t *testing.T) {
	w := newWorld(t)
	w.state.AddScore(10000)
	w.spawn.TrySpawnBoss()
	w.enemies.Spawn(defs.EnemySmall, 0, 300)

	if got := w.enemies.KillAll(); got != 1 {
		t.Errorf("KillAll = %d, want 1", got)
	}
	for id, enemy := range w.ecs.Enemies {
		if !enemy.IsBoss {
			continue
		}
		if enemy.State == component.EnemyDead {
			t.Error("bomb killed the boss")
		}
		if hp := w.ecs.Healths[id].Value; hp != defs.EnemyLibrary[defs.EnemyBoss].Health {
			t.Errorf("boss hp = %d after bomb", hp)
		}
	}
	if !w.state.State().BossActive {
		t.Error("BossActive cleared by bomb")
	}
	if w.count(event.BossDefeated) != 0 {
		t.Error("BossDefeated dispatched for a bomb")
	}
}

func TestDeadBossStandsStill(t *testing.T) {
	w := newWorld(t)
	id, _ := w.bosses.Spawn(defs.EnemyBoss, 0, 600)
	w.enemies.Hit(id, defs.EnemyLibrary[defs.EnemyBoss].Health)
	y := w.ecs.Positions[id].Y

	w.bosses.Update(0.1)
	if got := w.ecs.Positions[id].Y; got != y {
		t.Errorf("dead boss moved: %.1f -> %.1f", y, got)
	}
}
