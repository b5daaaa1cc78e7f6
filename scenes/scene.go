package scenes

import "github.com/hajimehoshi/ebiten/v2"

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

// SceneChanger swaps the scene the game runs.
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// Resizer is implemented by scenes that follow the window size.
type Resizer interface {
	Resize(width, height float64)
}
