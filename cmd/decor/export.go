package main

import (
	"errors"
	"fmt"
	"image/color"
	"image/png"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"fyne-decor/icons"
	"fyne-decor/internal/logger"
	"fyne-decor/internal/worker"
)

// exportPalette stands in for the toolkit palette when rendering headless,
// where no fyne app exists to ask for theme colors.
type exportPalette struct{}

func (exportPalette) Foreground() color.Color { return color.NRGBA{R: 20, G: 20, B: 20, A: 255} }
func (exportPalette) Disabled() color.Color   { return color.NRGBA{R: 97, G: 97, B: 97, A: 255} }

func newExportCmd() *cobra.Command {
	var (
		outDir   string
		size     int
		hex      string
		filled   bool
		rotation int
		all      bool
		workers  int
	)

	cmd := &cobra.Command{
		Use:   "export [icon...]",
		Short: "Rasterize catalog icons to PNG files",
		RunE: func(cmd *cobra.Command, args []string) error {
			names := args
			if all {
				names = icons.Names()
			}
			if len(names) == 0 {
				return errors.New("no icons requested: pass names or --all")
			}
			if err := os.MkdirAll(outDir, 0o755); err != nil {
				return fmt.Errorf("create output dir: %w", err)
			}

			log := logger.With("batch", uuid.NewString()[:8])
			log.Infof("exporting %d icon(s) to %s", len(names), outDir)

			var spec icons.ColorSpec
			if hex != "" {
				spec = icons.Hex(hex)
			}

			_, err := worker.Process(names, workers, func(job worker.Job[string]) (string, error) {
				res, err := icons.Render(icons.Request{
					Name:     job.Data,
					Filled:   filled,
					Width:    size,
					Height:   size,
					Color:    spec,
					Rotation: rotation,
					Kind:     icons.KindImage,
					Palette:  exportPalette{},
				})
				if err != nil {
					return "", err
				}

				path := filepath.Join(outDir, job.Data+".png")
				f, err := os.Create(path)
				if err != nil {
					return "", err
				}
				if err := png.Encode(f, res.Image); err != nil {
					f.Close()
					return "", fmt.Errorf("encode %s: %w", path, err)
				}
				return path, f.Close()
			}, func(completed, total int) {
				log.Debugf("rendered %d/%d", completed, total)
			})
			if err != nil {
				return err
			}

			log.Infof("done")
			return nil
		},
	}

	cmd.Flags().StringVarP(&outDir, "out", "o", "icons-out", "Output directory")
	cmd.Flags().IntVar(&size, "size", 0, "Pixel size (0 uses the 50x50 default)")
	cmd.Flags().StringVar(&hex, "color", "", "Fill color as a hex string, e.g. #3b82f6")
	cmd.Flags().BoolVar(&filled, "filled", false, "Prefer the filled icon variant")
	cmd.Flags().IntVar(&rotation, "rotate", 0, "Rotation in degrees")
	cmd.Flags().BoolVar(&all, "all", false, "Export the whole catalog")
	cmd.Flags().IntVar(&workers, "workers", 4, "Concurrent render workers")

	return cmd
}
