package main

import (
	"image"
	"math"
	"os"

	"github.com/automoto/tilewalk/assets"
	"github.com/automoto/tilewalk/config"
	"github.com/automoto/tilewalk/fonts"
	"github.com/automoto/tilewalk/scenes"
	"github.com/automoto/tilewalk/systems"
	"github.com/hajimehoshi/ebiten/v2"
	log "github.com/sirupsen/logrus"
)

type Game struct {
	bounds image.Rectangle
	scene  scenes.Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(scenes.Scene)
	if r, ok := g.scene.(scenes.Resizer); ok && !g.bounds.Empty() {
		r.Resize(float64(g.bounds.Dx()), float64(g.bounds.Dy()))
	}
}

func NewGame(store *systems.SettingsStore) *Game {
	if err := fonts.LoadDefaults(); err != nil {
		log.WithError(err).Fatal("could not load fonts")
	}

	assetFS := os.DirFS(config.C.AssetDir)
	timers := systems.NewTimers()
	audio := systems.NewEbitenAudio(assetFS, timers)
	audio.Preload()

	music := systems.NewMusic(audio, store.Load().MusicMuted)
	music.Start()

	opts := []scenes.Option{
		scenes.WithImages(assets.NewImageLoader(assetFS)),
		scenes.WithSystems(systems.NewMusicToggleSystem(music, store)),
	}
	if config.Debug.HotReloadMaps {
		opts = append(opts, scenes.WithMapSource(assets.NewMapLoader(os.DirFS(config.Debug.MapDir))))
	}
	coordinator := scenes.NewCoordinator(audio, timers, opts...)

	g := &Game{
		bounds: image.Rectangle{},
	}
	g.scene = scenes.NewExploreScene(g, coordinator, config.Scenes.Start)
	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	bounds := image.Rect(0, 0, width, height)
	if bounds != g.bounds {
		g.bounds = bounds
		if r, ok := g.scene.(scenes.Resizer); ok {
			r.Resize(float64(width), float64(height))
		}
	}
	return width, height
}

func main() {
	level, err := log.ParseLevel(config.Debug.LogLevel)
	if err != nil {
		log.WithError(err).Warn("unknown log level, using info")
		level = log.InfoLevel
	}
	log.SetLevel(level)

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.AppName)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(int(math.Round(1 / config.C.TickSeconds)))

	// Initialize persistence and load saved settings
	store, err := systems.OpenSettingsStore(config.C.AppName)
	if err != nil {
		log.WithError(err).Warn("could not initialize persistence")
	}

	if err := ebiten.RunGame(NewGame(store)); err != nil {
		log.Fatal(err)
	}
}
