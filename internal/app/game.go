// internal/app/game.go
package app

import (
	"go-plane-war/internal/audio"
	"go-plane-war/internal/component"
	"go-plane-war/internal/config"
	"go-plane-war/internal/defs"
	"go-plane-war/internal/entity"
	"go-plane-war/internal/event"
	"go-plane-war/internal/interfaces"
	"go-plane-war/internal/system"
	"go-plane-war/internal/utils"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// Options - параметры новой игры. Нулевые поля заменяются значениями по умолчанию.
type Options struct {
	Tuning *config.Tuning
	Seed   int64
	Audio  interfaces.SoundPlayer
	Scores interfaces.HighScoreStore
}

// Game holds the main game state and logic.
type Game struct {
	ECS             *entity.ECS
	EventDispatcher *event.Dispatcher
	Rng             *utils.PRNGService
	Tuning          config.Tuning

	StateSystem        *system.StateSystem
	MovementSystem     *system.MovementSystem
	BackgroundSystem   *system.BackgroundSystem
	VisualEffectSystem *system.VisualEffectSystem
	BulletSystem       *system.BulletSystem
	EnemySystem        *system.EnemySystem
	BossSystem         *system.BossSystem
	RewardSystem       *system.RewardSystem
	SpawnSystem        *system.SpawnSystem
	PlayerSystem       *system.PlayerSystem
	CollisionSystem    *system.CollisionSystem
	BombSystem         *system.BombSystem
	RenderSystem       *system.RenderSystem

	sound  interfaces.SoundPlayer
	scores interfaces.HighScoreStore

	// Итог последней партии для панели Game Over
	lastScore     int
	lastHighScore int
}

// NewGame initializes a new game instance.
func NewGame(opts Options) *Game {
	tuning := config.DefaultTuning()
	if opts.Tuning != nil {
		tuning = *opts.Tuning
	}

	ecs := entity.NewECS()
	eventDispatcher := event.NewDispatcher()
	g := &Game{
		ECS:             ecs,
		EventDispatcher: eventDispatcher,
		Rng:             utils.NewPRNGService(opts.Seed),
		Tuning:          tuning,
		sound:           opts.Audio,
		scores:          opts.Scores,
	}

	g.StateSystem = system.NewStateSystem(ecs, eventDispatcher)
	g.MovementSystem = system.NewMovementSystem(ecs)
	g.BackgroundSystem = system.NewBackgroundSystem(ecs)
	g.VisualEffectSystem = system.NewVisualEffectSystem(ecs)
	g.BulletSystem = system.NewBulletSystem(ecs, eventDispatcher)
	g.EnemySystem = system.NewEnemySystem(ecs, eventDispatcher, g.VisualEffectSystem, tuning)
	g.BossSystem = system.NewBossSystem(ecs, g.EnemySystem, defs.BossParams)
	g.RewardSystem = system.NewRewardSystem(ecs)
	g.SpawnSystem = system.NewSpawnSystem(ecs, eventDispatcher, g.EnemySystem, g.BossSystem, g.RewardSystem, g.Rng, tuning)
	g.PlayerSystem = system.NewPlayerSystem(ecs, eventDispatcher, g.StateSystem, g.BulletSystem, g.VisualEffectSystem, tuning)
	g.CollisionSystem = system.NewCollisionSystem(ecs, g.EnemySystem, g.BulletSystem, g.RewardSystem, g.PlayerSystem)
	g.BombSystem = system.NewBombSystem(ecs, eventDispatcher, g.StateSystem, g.EnemySystem, tuning)
	g.RenderSystem = system.NewRenderSystem(ecs)

	listener := &GameEventListener{game: g}
	for _, t := range []event.EventType{
		event.BulletFired,
		event.EnemyDestroyed,
		event.RewardPicked,
		event.BombUsed,
		event.PlayerHit,
		event.PlayerDied,
		event.GameOver,
	} {
		eventDispatcher.Subscribe(t, listener)
	}

	g.StateSystem.Reset(tuning.InitialLives)
	g.PlayerSystem.Spawn()
	return g
}

// Update продвигает игру на deltaTime секунд. На паузе и после
// окончания партии мир стоит.
func (g *Game) Update(deltaTime float64) {
	gs := g.ECS.GameState
	if gs.Paused || gs.Over {
		return
	}
	g.ECS.GameTime += deltaTime

	g.BackgroundSystem.Update(deltaTime)
	g.SpawnSystem.Update(deltaTime)
	g.MovementSystem.Update(deltaTime)
	g.BossSystem.Update(deltaTime)
	g.EnemySystem.Update(deltaTime)
	g.BulletSystem.Update(deltaTime)
	g.RewardSystem.Update(deltaTime)
	g.CollisionSystem.Update()
	g.PlayerSystem.Update(deltaTime)
	g.VisualEffectSystem.Update(deltaTime)
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.RenderSystem.Draw(screen)
}

// Drag передаёт смещение пальца/мыши самолёту (мировые координаты).
func (g *Game) Drag(dx, dy float64) {
	if g.ECS.GameState.Over {
		return
	}
	g.PlayerSystem.Drag(dx, dy)
}

// Tap - отпускание касания. Двойной тап взрывает бомбу.
func (g *Game) Tap() bool {
	gs := g.ECS.GameState
	if gs.Paused || gs.Over {
		return false
	}
	return g.BombSystem.Tap()
}

func (g *Game) AddScore(points int) { g.StateSystem.AddScore(points) }

func (g *Game) SubHp() int { return g.StateSystem.SubHp() }

func (g *Game) AddBomb() { g.StateSystem.AddBomb() }

func (g *Game) HasBomb() bool { return g.StateSystem.HasBomb() }

func (g *Game) Pause() { g.StateSystem.Pause() }

func (g *Game) Resume() {
	if g.ECS.GameState.Over {
		return
	}
	g.StateSystem.Resume()
}

func (g *Game) IsPaused() bool { return g.StateSystem.IsPaused() }

func (g *Game) IsOver() bool { return g.ECS.GameState.Over }

func (g *Game) State() *component.GameState { return g.ECS.GameState }

// Result возвращает счёт последней партии и рекорд, действовавший до неё.
func (g *Game) Result() (score, highScore int) {
	return g.lastScore, g.lastHighScore
}

// GameOver завершает партию: убирает обычных врагов, ставит паузу и сохраняет рекорд.
// Босс остаётся на месте за панелью.
func (g *Game) GameOver() {
	gs := g.ECS.GameState
	if gs.Over {
		return
	}
	g.EnemySystem.ClearRegular()
	g.StateSystem.Pause()
	gs.Over = true

	g.lastScore = gs.Score
	g.lastHighScore = 0
	if g.scores != nil {
		best, err := g.scores.Load()
		if err != nil {
			log.Printf("Failed to load high score: %v", err)
		}
		g.lastHighScore = best
		if err := g.scores.Save(gs.Score); err != nil {
			log.Printf("Failed to save high score: %v", err)
		}
	}
	log.Printf("Game over: score %d, best %d", g.lastScore, g.lastHighScore)

	g.EventDispatcher.Dispatch(event.Event{
		Type: event.GameOver,
		Data: event.GameOverData{Score: g.lastScore, HighScore: g.lastHighScore},
	})
}

// Restart начинает новую партию: пули возвращаются в пулы, сцена очищается,
// счётчики сбрасываются, создаётся новый самолёт.
func (g *Game) Restart() {
	g.BulletSystem.ReleaseAll()
	g.ECS.Clear()
	g.StateSystem.Reset(g.Tuning.InitialLives)
	g.SpawnSystem.Reset()
	g.BombSystem.Reset()
	g.PlayerSystem.Spawn()
	g.EventDispatcher.Dispatch(event.Event{Type: event.GameRestarted})
}

// PlaySound проигрывает звук, если аудио подключено.
func (g *Game) PlaySound(name string, volume float64) {
	if g.sound != nil {
		g.sound.Play(name, volume)
	}
}

// GameEventListener обрабатывает события, важные для основного игрового цикла.
type GameEventListener struct {
	game *Game
}

// OnEvent реализует интерфейс event.Listener.
func (l *GameEventListener) OnEvent(e event.Event) {
	switch e.Type {
	case event.BulletFired:
		l.game.PlaySound(audio.SoundShoot, 0.3)
	case event.EnemyDestroyed:
		l.game.PlaySound(audio.SoundEnemyDown, 0.6)
	case event.RewardPicked:
		switch e.Data {
		case defs.RewardBomb:
			l.game.PlaySound(audio.SoundPickBomb, 1)
		case defs.RewardTwoShoot:
			l.game.PlaySound(audio.SoundPickTwoShoot, 1)
		}
	case event.BombUsed:
		l.game.PlaySound(audio.SoundUseBomb, 1)
	case event.PlayerHit:
		l.game.PlaySound(audio.SoundPlayerHit, 0.8)
	case event.PlayerDied:
		l.game.GameOver()
	case event.GameOver:
		l.game.PlaySound(audio.SoundGameOver, 1)
	}
}
