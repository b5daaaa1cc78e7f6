package ui

import (
	"bytes"
	"image/color"

	cfg "github.com/automoto/tilewalk/config"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// DialogueUI is the dialogue box shown along the bottom of the screen.
type DialogueUI struct {
	UI *ebitenui.UI

	// OnClose runs when the close button is clicked
	OnClose func()

	text    *widget.Text
	visible bool

	textFace   text.Face
	buttonFace text.Face
}

func NewDialogueUI(onClose func()) *DialogueUI {
	dui := &DialogueUI{OnClose: onClose}
	dui.loadFonts()
	dui.buildUI()
	return dui
}

func (dui *DialogueUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}
	dui.textFace = &text.GoTextFace{
		Source: fontSource,
		Size:   20,
	}
	dui.buttonFace = &text.GoTextFace{
		Source: fontSource,
		Size:   16,
	}
}

func (dui *DialogueUI) buildUI() {
	box := cfg.DialogueBox
	padding := widget.NewInsetsSimple(box.Padding)

	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	boxContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(box.BoxColor)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(padding),
			widget.RowLayoutOpts.Spacing(8),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(cfg.C.Width, box.BoxHeight),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionEnd,
				StretchHorizontal:  true,
			}),
		),
	)

	dui.text = widget.NewText(
		widget.TextOpts.Text("", &dui.textFace, box.TextColor),
		widget.TextOpts.MaxWidth(float64(cfg.C.Width-2*box.Padding)),
	)
	boxContainer.AddChild(dui.text)

	closeButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(100, 32),
		),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:    image.NewNineSliceColor(box.ButtonColor),
			Hover:   image.NewNineSliceColor(box.ButtonHover),
			Pressed: image.NewNineSliceColor(box.ButtonHover),
		}),
		widget.ButtonOpts.Text(box.CloseButtonText, &dui.buttonFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if dui.OnClose != nil {
				dui.OnClose()
			}
		}),
	)
	boxContainer.AddChild(closeButton)

	rootContainer.AddChild(boxContainer)

	dui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

// Show sets the revealed text. An open of false hides the box.
func (dui *DialogueUI) Show(shown string, open bool) {
	dui.visible = open
	dui.text.Label = shown
}

func (dui *DialogueUI) Visible() bool {
	return dui.visible
}

func (dui *DialogueUI) Update() {
	if !dui.visible {
		return
	}
	dui.UI.Update()
}

func (dui *DialogueUI) Draw(screen *ebiten.Image) {
	if !dui.visible {
		return
	}
	dui.UI.Draw(screen)
}
