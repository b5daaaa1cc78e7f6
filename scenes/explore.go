package scenes

import (
	"image/color"
	"path"
	"sync"

	"github.com/automoto/tilewalk/assets"
	cfg "github.com/automoto/tilewalk/config"
	"github.com/automoto/tilewalk/fonts"
	"github.com/automoto/tilewalk/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	log "github.com/sirupsen/logrus"
)

// ExploreScene runs the explorable maps through a Coordinator and shows
// the dialogue box on top.
type ExploreScene struct {
	sceneChanger SceneChanger
	coordinator  *Coordinator
	start        string

	dialogueUI *ui.DialogueUI
	watcher    *assets.MapWatcher
	once       sync.Once
}

func NewExploreScene(sc SceneChanger, coordinator *Coordinator, start string) *ExploreScene {
	return &ExploreScene{sceneChanger: sc, coordinator: coordinator, start: start}
}

func (es *ExploreScene) configure() {
	es.dialogueUI = ui.NewDialogueUI(func() {
		if gate := es.coordinator.Gate(); gate != nil {
			gate.Close()
		}
	})

	if cfg.Debug.HotReloadMaps {
		w, err := assets.NewMapWatcher(cfg.Debug.MapDir)
		if err != nil {
			log.WithField("ref", cfg.Debug.MapDir).WithError(err).Warn("map hot reload disabled")
		} else {
			es.watcher = w
		}
	}

	if err := es.coordinator.EnterScene(es.start); err != nil {
		es.fail(err)
	}
}

func (es *ExploreScene) Update() {
	es.once.Do(es.configure)
	es.pollWatcher()

	es.coordinator.Update()
	if es.coordinator.State() == StateFailed {
		es.fail(es.coordinator.Err())
		return
	}

	if gate := es.coordinator.Gate(); gate != nil {
		_, shown := gate.Text()
		es.dialogueUI.Show(shown, gate.IsOpen())
	} else {
		es.dialogueUI.Show("", false)
	}
	es.dialogueUI.Update()
}

func (es *ExploreScene) pollWatcher() {
	if es.watcher == nil {
		return
	}
	for {
		select {
		case name, ok := <-es.watcher.Events:
			if !ok {
				es.watcher = nil
				return
			}
			if name != path.Base(es.coordinator.MapRef()) {
				continue
			}
			log.WithField("ref", name).Info("map changed, reloading scene")
			if err := es.coordinator.Reload(); err != nil {
				log.WithField("ref", name).WithError(err).Warn("reload failed")
			}
		case err, ok := <-es.watcher.Errors:
			if ok {
				log.WithError(err).Warn("map watcher error")
			}
		default:
			return
		}
	}
}

func (es *ExploreScene) fail(err error) {
	if es.watcher != nil {
		_ = es.watcher.Close()
		es.watcher = nil
	}
	es.sceneChanger.ChangeScene(NewFailureScene(es.sceneChanger, err))
}

func (es *ExploreScene) Resize(width, height float64) {
	es.coordinator.Resize(width, height)
}

func (es *ExploreScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(cfg.Background)

	if es.coordinator.ECS() == nil {
		if es.coordinator.State() == StateLoading {
			text.Draw(screen, "Loading...", fonts.Regular.Get(), 24, cfg.C.Height-24, color.White)
		}
		return
	}
	es.coordinator.Draw(screen)

	if es.dialogueUI != nil {
		es.dialogueUI.Draw(screen)
	}
}
