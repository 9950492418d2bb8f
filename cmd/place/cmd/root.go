package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/gogpu/gg"
	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/OpenPlace/internal/config"
	"github.com/OpenTraceLab/OpenPlace/pkg/canvas"
)

var (
	// Global flags
	verbose    bool
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "place",
	Short: "OpenPlace - a shared pixel canvas",
	Long: `OpenPlace (place) is a zoomable, pannable pixel canvas.

Examples:
  place view                               # Open the canvas window
  place view --feed updates.txt            # Replay a feed while you paint
  place snapshot --feed updates.txt -o out.png
  place feed check updates.txt             # Validate a feed
  place palette                            # Show the configured palette`,
	Version: "0.1.0",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		gg.SetLogger(logger())
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default is the platform config directory)")
}

func logger() *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// loadCanvasConfig reads the config file and converts it.
func loadCanvasConfig() (*config.Config, canvas.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, canvas.Config{}, fmt.Errorf("loading config: %w", err)
	}
	cc, err := cfg.Canvas()
	if err != nil {
		return nil, canvas.Config{}, fmt.Errorf("config: %w", err)
	}
	return cfg, cc, nil
}

// openInput opens path for reading; "-" is stdin.
func openInput(path string) (*os.File, error) {
	if path == "-" {
		return os.Stdin, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	return f, nil
}
