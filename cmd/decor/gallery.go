package main

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/spf13/cobra"

	"fyne-decor/ui"
)

func newGalleryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "gallery",
		Short: "Open a window showcasing the hover glow and the icon catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			a := app.New()
			a.Settings().SetTheme(&ui.GalleryTheme{})

			w := a.NewWindow("fyne-decor gallery")
			w.Resize(fyne.NewSize(760, 560))
			w.SetContent(ui.BuildGallery())
			w.ShowAndRun()
			return nil
		},
	}
}
