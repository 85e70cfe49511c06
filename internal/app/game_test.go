package app

import (
	"errors"
	"go-plane-war/internal/audio"
	"go-plane-war/internal/config"
	"go-plane-war/internal/defs"
	"go-plane-war/internal/event"
	"go-plane-war/internal/storage"
	"testing"
)

type fakeSound struct{ played []string }

func (f *fakeSound) Play(name string, volume float64) { f.played = append(f.played, name) }

func (f *fakeSound) count(name string) int {
	n := 0
	for _, p := range f.played {
		if p == name {
			n++
		}
	}
	return n
}

type failingStore struct{}

func (failingStore) Load() (int, error) { return 0, errors.New("disk gone") }
func (failingStore) Save(int) error     { return errors.New("disk gone") }

func newTestGame(t *testing.T) (*Game, *fakeSound, *storage.MemoryStore) {
	t.Helper()
	sound := &fakeSound{}
	scores := &storage.MemoryStore{}
	g := NewGame(Options{Seed: 7, Audio: sound, Scores: scores})
	return g, sound, scores
}

func TestNewGameStartsWithPlayer(t *testing.T) {
	g, _, _ := newTestGame(t)
	gs := g.State()
	if gs.Lives != config.DefaultTuning().InitialLives || gs.Score != 0 || gs.Bombs != 0 {
		t.Errorf("initial state %+v", *gs)
	}
	if g.PlayerSystem.Player() == nil {
		t.Fatal("no player")
	}
}

func TestPausedGameDoesNotAdvance(t *testing.T) {
	g, _, _ := newTestGame(t)
	g.Pause()
	g.Update(1)
	if g.ECS.GameTime != 0 {
		t.Errorf("GameTime = %v while paused", g.ECS.GameTime)
	}
	if g.EnemySystem.Count() != 0 {
		t.Error("enemies spawned while paused")
	}
	if g.Tap() {
		t.Error("tap accepted while paused")
	}

	g.Resume()
	g.Update(1)
	if g.ECS.GameTime != 1 {
		t.Errorf("GameTime = %v, want 1", g.ECS.GameTime)
	}
}

func TestCountersAndSounds(t *testing.T) {
	g, sound, _ := newTestGame(t)

	g.AddScore(500)
	g.AddBomb()
	if !g.HasBomb() || g.State().Score != 500 {
		t.Errorf("state %+v", *g.State())
	}
	if lives := g.SubHp(); lives != config.DefaultTuning().InitialLives-1 {
		t.Errorf("SubHp = %d", lives)
	}

	g.EnemySystem.Spawn(defs.EnemySmall, 0, 300)
	g.ECS.GameTime = 2
	g.Tap()
	g.ECS.GameTime += 0.1
	if !g.Tap() {
		t.Fatal("double tap did not bomb")
	}
	if sound.count(audio.SoundUseBomb) != 1 || sound.count(audio.SoundEnemyDown) != 1 {
		t.Errorf("sounds played: %v", sound.played)
	}
}

func TestGameOverStoresHighScore(t *testing.T) {
	g, sound, scores := newTestGame(t)
	scores.Save(1000)

	var over []event.GameOverData
	g.EventDispatcher.Subscribe(event.GameOver, event.ListenerFunc(func(e event.Event) {
		over = append(over, e.Data.(event.GameOverData))
	}))

	g.AddScore(2500)
	g.EnemySystem.Spawn(defs.EnemyMedium, 0, 300)
	g.GameOver()
	g.GameOver()

	if !g.IsOver() || !g.IsPaused() {
		t.Error("game not stopped")
	}
	if g.EnemySystem.Count() != 0 {
		t.Error("enemies left after game over")
	}
	if len(over) != 1 {
		t.Fatalf("GameOver dispatched %d times, want 1", len(over))
	}
	if over[0].Score != 2500 || over[0].HighScore != 1000 {
		t.Errorf("GameOverData = %+v", over[0])
	}
	if best, _ := scores.Load(); best != 2500 {
		t.Errorf("stored best = %d, want 2500", best)
	}
	if score, best := g.Result(); score != 2500 || best != 1000 {
		t.Errorf("Result = %d, %d", score, best)
	}
	if sound.count(audio.SoundGameOver) != 1 {
		t.Error("game over sound not played")
	}

	g.Resume()
	if !g.IsPaused() {
		t.Error("finished game resumed")
	}
}

func TestGameOverKeepsBoss(t *testing.T) {
	g, _, _ := newTestGame(t)
	g.AddScore(10000)
	if !g.SpawnSystem.TrySpawnBoss() {
		t.Fatal("boss not spawned")
	}
	g.EnemySystem.Spawn(defs.EnemySmall, 0, 300)

	g.GameOver()
	if got := g.EnemySystem.Count(); got != 1 {
		t.Fatalf("%d enemies after game over, want only the boss", got)
	}
	for _, enemy := range g.ECS.Enemies {
		if !enemy.IsBoss {
			t.Errorf("regular enemy %s left after game over", enemy.DefID)
		}
	}
	if !g.State().BossActive {
		t.Error("BossActive cleared at game over")
	}
}

func TestGameOverWithBrokenStore(t *testing.T) {
	g := NewGame(Options{Scores: failingStore{}})
	g.AddScore(300)
	g.GameOver()
	if score, best := g.Result(); score != 300 || best != 0 {
		t.Errorf("Result = %d, %d, want 300, 0", score, best)
	}
}

func TestPlayerDeathEndsGame(t *testing.T) {
	g, _, _ := newTestGame(t)
	for i := 0; i < g.Tuning.InitialLives; i++ {
		g.PlayerSystem.LoseLife()
	}
	for i := 0; i < 120 && !g.IsOver(); i++ {
		g.Update(1.0 / 60)
	}
	if !g.IsOver() {
		t.Fatal("game did not end after the player died")
	}
}

func TestRestart(t *testing.T) {
	g, _, _ := newTestGame(t)
	for i := 0; i < 300; i++ {
		g.Update(1.0 / 60)
	}
	g.AddScore(12000)
	g.AddBomb()
	g.GameOver()

	active := g.BulletSystem.Active()
	pooledBefore := g.BulletSystem.Pooled(defs.BulletSingle)
	g.Restart()

	gs := g.State()
	if gs.Over || gs.Paused || gs.Score != 0 || gs.Bombs != 0 || gs.BossCounter != 0 || gs.Lives != g.Tuning.InitialLives {
		t.Errorf("state after restart %+v", *gs)
	}
	if g.BulletSystem.Active() != 0 {
		t.Error("bullets left in scene")
	}
	if got := g.BulletSystem.Pooled(defs.BulletSingle); got != pooledBefore+active {
		t.Errorf("pooled single bullets = %d, want %d", got, pooledBefore+active)
	}
	if len(g.ECS.Rewards) != 0 || g.EnemySystem.Count() != 0 {
		t.Error("scene not cleared")
	}
	if g.PlayerSystem.Player() == nil {
		t.Error("no player after restart")
	}
}

func TestWithoutAudio(t *testing.T) {
	g := NewGame(Options{})
	for i := 0; i < 120; i++ {
		g.Update(1.0 / 60)
	}
	g.GameOver()
}
