// cmd/game/main.go
package main

import (
	"log"
	"net/http"
	_ "net/http/pprof"

	"go-target-rush/internal/app"
	"go-target-rush/internal/assets"
	"go-target-rush/internal/audio"
	"go-target-rush/internal/component"
	"go-target-rush/internal/config"
	"go-target-rush/internal/defs"
	"go-target-rush/internal/music"
	"go-target-rush/internal/state"
	"go-target-rush/internal/storage"
	"go-target-rush/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type AppGame struct {
	stateMachine *state.StateMachine
	renderer     *render.Renderer
	clock        *app.FrameClock
	width        int
	height       int
}

func (a *AppGame) Update() error {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		a.stateMachine.HandlePointerDown(float64(x), float64(y))
	}
	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		x, y := ebiten.TouchPosition(id)
		a.stateMachine.HandlePointerDown(float64(x), float64(y))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		a.stateMachine.ToggleMute()
	}

	a.stateMachine.Update(a.clock.Tick())
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.renderer.Draw(screen, a.stateMachine.Snapshot())
}

// Layout следует за размером окна: холст всегда равен окну.
func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != a.width || outsideHeight != a.height {
		if err := a.stateMachine.HandleResize(float64(outsideWidth), float64(outsideHeight)); err != nil {
			log.Printf("ignoring resize to %dx%d: %v", outsideWidth, outsideHeight, err)
			return max(a.width, 1), max(a.height, 1)
		}
		a.width, a.height = outsideWidth, outsideHeight
	}
	return a.width, a.height
}

func main() {
	if err := config.LoadEnvFile(".env"); err != nil {
		log.Fatal(err)
	}
	settings, err := config.LoadSettings()
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("settings: seed=%d save=%s tuning=%s window=%dx%d muted=%v",
		settings.Seed, settings.SavePath, settings.TuningPath, settings.WindowWidth, settings.WindowHeight, settings.Muted)

	if settings.PprofAddr != "" {
		go func() {
			log.Println(http.ListenAndServe(settings.PprofAddr, nil))
		}()
	}

	tuning, err := defs.LoadTuning(settings.TuningPath)
	if err != nil {
		log.Printf("using default tuning: %v", err)
	}

	store, err := storage.OpenFileStore(settings.SavePath)
	if err != nil {
		log.Printf("save file unavailable, high score will not persist: %v", err)
	}

	game := app.NewGame(app.Options{
		Seed:   settings.Seed,
		Tuning: tuning,
		Bounds: component.Bounds{Width: float64(settings.WindowWidth), Height: float64(settings.WindowHeight)},
		Store:  storeOrNil(store),
		Muted:  settings.Muted,
	})

	bgm := music.New(music.DefaultPlaylist(), 0.3)
	bgm.SetMuted(settings.Muted)
	sound, err := audio.NewService(bgm)
	if err != nil {
		log.Printf("audio disabled: %v", err)
	} else {
		sound.Subscribe(game.EventDispatcher)
		defer sound.Close()
	}

	fonts, err := assets.NewFontManager("")
	if err != nil {
		log.Fatal(err)
	}
	defer fonts.Close()

	sm := state.NewStateMachine(game) // Создаём машину состояний
	appGame := &AppGame{
		stateMachine: sm,
		renderer:     render.NewRenderer(fonts, render.DefaultPalette()),
		clock:        app.NewFrameClock(),
		width:        settings.WindowWidth,
		height:       settings.WindowHeight,
	}

	ebiten.SetWindowSize(settings.WindowWidth, settings.WindowHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(appGame); err != nil {
		log.Fatal(err)
	}
}

// storeOrNil избавляет от typed-nil интерфейса, когда файл сохранения не открылся.
func storeOrNil(s *storage.FileStore) storage.Store {
	if s == nil {
		return nil
	}
	return s
}
