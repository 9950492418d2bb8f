package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/OpenPlace/internal/config"
	appui "github.com/OpenTraceLab/OpenPlace/internal/ui"
	"github.com/OpenTraceLab/OpenPlace/pkg/canvas"
	"github.com/OpenTraceLab/OpenPlace/pkg/feed"
)

var (
	viewFeed string
	viewOut  string
)

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Open the canvas window",
	Long: `Opens the canvas in an interactive Gio window.

Controls:
  Tap              - Zoom in on the tapped point / zoom back out
  Tap (zoomed)     - Paint the selected color
  Drag             - Pan
  + / -            - Zoom in / out at the window center
  P                - Show or hide the palette
  S                - Save a snapshot
  Escape           - Clear the color selection`,
	Args: cobra.NoArgs,
	RunE: runView,
}

func init() {
	rootCmd.AddCommand(viewCmd)
	viewCmd.Flags().StringVar(&viewFeed, "feed", "", "feed file to replay as remote paints (- for stdin)")
	viewCmd.Flags().StringVarP(&viewOut, "out", "o", "", "append local paints to this file in feed format")
}

func runView(cmd *cobra.Command, args []string) error {
	log := logger()
	cfg, cc, err := loadCanvasConfig()
	if err != nil {
		return err
	}

	var submitter canvas.Submitter = feed.LogSubmitter(log)
	if viewOut != "" {
		f, err := os.OpenFile(viewOut, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			return fmt.Errorf("failed to open output: %w", err)
		}
		defer f.Close()
		submitter = feed.NewWriter(f)
	}

	opts := appui.Options{
		Width:  cfg.WindowWidth,
		Height: cfg.WindowHeight,
		Logger: log,
		OnClose: func(width, height int) {
			if width <= 0 || height <= 0 {
				return
			}
			cfg.WindowWidth, cfg.WindowHeight = width, height
			if err := config.Save(configPath, cfg); err != nil {
				log.Warn("saving config", "err", err)
			}
		},
	}
	if viewFeed != "" {
		src, err := openInput(viewFeed)
		if err != nil {
			return err
		}
		defer src.Close()
		opts.Feed = src
	}

	return appui.Run(cc, opts, canvas.WithSubmitter(submitter))
}
