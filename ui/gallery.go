// Package ui assembles the demo gallery window for the decoration library.
package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"fyne-decor/glow"
	"fyne-decor/icons"
	"fyne-decor/internal/logger"
)

// BuildGallery returns the demo content: the icon catalog rendered in both
// result kinds and a pair of glow-decorated cards to hover over.
func BuildGallery() fyne.CanvasObject {
	return container.NewBorder(
		widget.NewLabelWithStyle("fyne-decor gallery", fyne.TextAlignCenter, fyne.TextStyle{Bold: true}),
		nil, nil, nil,
		container.NewVScroll(container.NewVBox(
			widget.NewLabel("Icon handles, restyled by the active theme"),
			iconGrid(),
			widget.NewLabel("Raster snapshots with explicit color, rotation and mode"),
			rasterRow(),
			widget.NewLabel("Hover glow"),
			glowCards(),
		)),
	)
}

func iconGrid() fyne.CanvasObject {
	grid := container.NewGridWithColumns(6)
	for _, name := range icons.Names() {
		res, err := icons.Render(icons.Request{Name: name, Kind: icons.KindHandle})
		if err != nil {
			logger.Warnf("gallery: %v", err)
			continue
		}
		grid.Add(container.NewVBox(
			widget.NewIcon(res.Handle),
			widget.NewLabelWithStyle(name, fyne.TextAlignCenter, fyne.TextStyle{}),
		))
	}
	return grid
}

func rasterRow() fyne.CanvasObject {
	requests := []icons.Request{
		{Name: "refresh", Rotation: 45, Color: icons.Hex("#3b82f6")},
		{Name: "star", Filled: true, Color: icons.Hex("#ffc107")},
		{Name: "favorite", Filled: true, Color: icons.RGBA{R: 244, G: 67, B: 54, A: 255}},
		{Name: "settings", Mode: icons.ModeDisabled},
	}

	row := container.NewHBox()
	for _, req := range requests {
		req.Width, req.Height = 40, 40
		res, err := icons.Render(req)
		if err != nil {
			logger.Warnf("gallery: %v", err)
			continue
		}
		img := canvas.NewImageFromImage(res.Image)
		img.FillMode = canvas.ImageFillOriginal
		img.SetMinSize(fyne.NewSize(40, 40))
		row.Add(img)
	}
	return row
}

func glowCards() fyne.CanvasObject {
	plum := color.NRGBA{R: 125, G: 90, B: 121, A: 255}
	sky := color.NRGBA{R: 59, G: 130, B: 246, A: 255}
	skyEdge := color.NRGBA{R: 59, G: 130, B: 246, A: 40}

	single := glow.Enable(card("single stop"), []color.Color{plum}, 0.9)
	single.SetStyle("border-radius: 12")

	double := glow.Enable(card("two stops"), []color.Color{sky, skyEdge}, 0.7)
	double.SetStyle("border-radius: 12")

	return container.NewGridWithColumns(2, single, double)
}

func card(title string) fyne.CanvasObject {
	bg := canvas.NewRectangle(color.NRGBA{R: 40, G: 40, B: 40, A: 255})
	bg.CornerRadius = 12
	label := widget.NewLabelWithStyle(title, fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	return container.NewStack(bg, container.NewPadded(label))
}
