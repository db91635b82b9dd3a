package main

import (
	"image/color"
	"os"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/timberjack/common"
	"golang.org/x/image/font/basicfont"
)

var (
	uiTextColor     = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	uiDisabledColor = color.NRGBA{R: 0x88, G: 0x88, B: 0x88, A: 0xff}
)

func uiFace() *ebtext.Face {
	var face ebtext.Face = ebtext.NewGoXFace(basicfont.Face7x13)
	return &face
}

func uiButtonImage() *widget.ButtonImage {
	idle := imageui.NewNineSliceColor(color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 255})
	hover := imageui.NewNineSliceColor(color.NRGBA{R: 0x4a, G: 0x4a, B: 0x4a, A: 255})
	disabled := imageui.NewNineSliceColor(color.NRGBA{R: 0x22, G: 0x22, B: 0x22, A: 255})
	return &widget.ButtonImage{Idle: idle, Hover: hover, Pressed: idle, Disabled: disabled}
}

// uiPanel is a centered, semi-transparent vertical panel.
func uiPanel(minW, minH int) *widget.Container {
	return widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(imageui.NewNineSliceColor(color.NRGBA{A: 200})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(10),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 20, Bottom: 20, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(minW, minH),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionCenter, VerticalPosition: widget.AnchorLayoutPositionCenter}),
		),
	)
}

func uiRoot(panel *widget.Container) *ebitenui.UI {
	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	root.AddChild(panel)
	return &ebitenui.UI{Container: root}
}

func uiCentered() widget.WidgetOpt {
	return widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})
}

// NewPauseUI builds the pause menu with Resume and Quit buttons.
func NewPauseUI(g *Game) *ebitenui.UI {
	face := uiFace()
	btnTextColor := &widget.ButtonTextColor{Idle: uiTextColor, Disabled: uiDisabledColor}

	title := widget.NewText(
		widget.TextOpts.Text("Paused", face, uiTextColor),
		widget.TextOpts.WidgetOpts(uiCentered()),
	)
	resumeBtn := widget.NewButton(
		widget.ButtonOpts.Image(uiButtonImage()),
		widget.ButtonOpts.Text("Resume", face, btnTextColor),
		widget.ButtonOpts.WidgetOpts(uiCentered()),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			g.paused = false
		}),
	)
	copyBtn := widget.NewButton(
		widget.ButtonOpts.Image(uiButtonImage()),
		widget.ButtonOpts.Text("Copy snapshot", face, btnTextColor),
		widget.ButtonOpts.WidgetOpts(uiCentered()),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			g.copySnapshot()
		}),
	)
	quitBtn := widget.NewButton(
		widget.ButtonOpts.Image(uiButtonImage()),
		widget.ButtonOpts.Text("Quit", face, btnTextColor),
		widget.ButtonOpts.WidgetOpts(uiCentered()),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			g.Close()
			os.Exit(0)
		}),
	)

	panel := uiPanel(common.BaseWidth/2, common.BaseHeight/2)
	panel.AddChild(title)
	panel.AddChild(resumeBtn)
	panel.AddChild(copyBtn)
	panel.AddChild(quitBtn)
	return uiRoot(panel)
}
