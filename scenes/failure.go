package scenes

import (
	"errors"

	"github.com/automoto/tilewalk/assets"
	cfg "github.com/automoto/tilewalk/config"
	"github.com/automoto/tilewalk/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
)

// FailureScene shows why a scene could not be entered. There is no retry.
type FailureScene struct {
	sceneChanger SceneChanger
	err          error
}

func NewFailureScene(sc SceneChanger, err error) *FailureScene {
	return &FailureScene{sceneChanger: sc, err: err}
}

func (fs *FailureScene) Update() {}

// Message returns the text shown for the failure.
func (fs *FailureScene) Message() string {
	if fs.err == nil {
		return "Something went wrong."
	}

	var parseErr *assets.MapParseError
	if errors.As(fs.err, &parseErr) {
		switch parseErr.Kind {
		case assets.ParseUnresolvable:
			return "Map not found: " + parseErr.Ref
		case assets.ParseMalformed:
			return "Map is damaged: " + parseErr.Ref
		}
	}
	if errors.Is(fs.err, ErrUnknownScene) {
		return "Unknown scene."
	}
	return fs.err.Error()
}

func (fs *FailureScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.Black)
	text.Draw(screen, "Could not load the scene", fonts.Title.Get(), 48, 96, cfg.LightRed)
	text.Draw(screen, fs.Message(), fonts.Regular.Get(), 48, 140, cfg.White)
	if fs.err != nil {
		text.Draw(screen, fs.err.Error(), fonts.Small.Get(), 48, 172, cfg.White)
	}
}
