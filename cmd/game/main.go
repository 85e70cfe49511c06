// cmd/game/main.go
package main

import (
	"flag"
	"go-plane-war/internal/audio"
	"go-plane-war/internal/config"
	"go-plane-war/internal/defs"
	"go-plane-war/internal/interfaces"
	"go-plane-war/internal/state"
	"go-plane-war/internal/storage"
	"go-plane-war/internal/ui"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"path/filepath"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func defaultSavePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "go-plane-war", "score.msgpack")
}

func main() {
	tuningPath := flag.String("tuning", "", "JSON file with gameplay overrides")
	enemiesPath := flag.String("enemies", "", "JSON file with enemy definitions")
	savePath := flag.String("save", defaultSavePath(), "high score file (empty keeps it in memory)")
	seed := flag.Int64("seed", 0, "random seed (0 = current time)")
	startFromMenu := flag.Bool("menu", true, "start from the title screen")
	mute := flag.Bool("mute", false, "disable sound")
	pprofAddr := flag.String("pprof", "", "address for net/http/pprof, e.g. localhost:6060")
	flag.Parse()

	if *pprofAddr != "" {
		go func() {
			log.Println(http.ListenAndServe(*pprofAddr, nil))
		}()
	}

	tuning := config.DefaultTuning()
	if *tuningPath != "" {
		t, err := config.LoadTuning(*tuningPath)
		if err != nil {
			log.Fatal(err)
		}
		tuning = t
	}
	if *enemiesPath != "" {
		if err := defs.LoadEnemyDefinitions(*enemiesPath); err != nil {
			log.Fatal(err)
		}
	}
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	var scores interfaces.HighScoreStore = &storage.MemoryStore{}
	if *savePath != "" {
		scores = storage.NewScoreStore(*savePath)
	}

	fonts, err := ui.LoadFonts(config.FontSize, config.TitleFontSize)
	if err != nil {
		log.Fatal(err)
	}

	ctx := &state.Context{
		Fonts:  fonts,
		Audio:  audio.NewManager(*mute),
		Scores: scores,
		Tuning: tuning,
		Seed:   *seed,
	}

	sm := state.NewStateMachine()
	if *startFromMenu {
		sm.SetState(state.NewMenuState(sm, ctx))
	} else {
		sm.SetState(state.NewGameState(sm, ctx))
	}
	app := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Plane War")
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
