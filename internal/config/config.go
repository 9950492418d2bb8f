// Package config stores persistent application settings.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/OpenTraceLab/OpenPlace/pkg/canvas"
)

// Config stores persistent application settings
type Config struct {
	GridWidth     int      `json:"grid_width"`
	GridHeight    int      `json:"grid_height"`
	SquareSize    int      `json:"square_size"`
	ZoomLevel     float64  `json:"zoom_level"`
	Background    string   `json:"background"`
	Backdrop      string   `json:"backdrop"`
	GridLineColor string   `json:"gridline_color"`
	GridLineWidth float64  `json:"gridline_width"`
	Palette       []string `json:"palette,omitempty"`
	WindowWidth   int      `json:"window_width"`
	WindowHeight  int      `json:"window_height"`
}

// Default returns the stock settings.
func Default() *Config {
	d := canvas.DefaultConfig()
	return &Config{
		GridWidth:     d.GridSize.W,
		GridHeight:    d.GridSize.H,
		SquareSize:    d.SquareSize.W,
		ZoomLevel:     d.ZoomLevel,
		Background:    d.Background.Hex(),
		Backdrop:      d.Backdrop.Hex(),
		GridLineColor: d.GridLine.Color.Hex(),
		GridLineWidth: d.GridLine.Width,
		WindowWidth:   1280,
		WindowHeight:  800,
	}
}

// Path returns the path to the config file, creating its directory.
func Path() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	var configDir string
	if os.Getenv("APPDATA") != "" {
		// Windows: %APPDATA%\OpenPlace
		configDir = filepath.Join(os.Getenv("APPDATA"), "OpenPlace")
	} else {
		configDir = filepath.Join(homeDir, ".config", "openplace")
	}

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return "", err
	}

	return filepath.Join(configDir, "config.json"), nil
}

// Load reads the config at path, or at Path() when path is empty. A missing
// file yields Default(); fields absent from the file keep their defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		p, err := Path()
		if err != nil {
			return Default(), err
		}
		path = p
	}

	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg to path, or to Path() when path is empty.
func Save(path string, cfg *Config) error {
	if path == "" {
		p, err := Path()
		if err != nil {
			return err
		}
		path = p
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Canvas validates the settings and converts them for canvas.New.
func (c *Config) Canvas() (canvas.Config, error) {
	out := canvas.DefaultConfig()
	out.GridSize = canvas.Size{W: c.GridWidth, H: c.GridHeight}
	out.SquareSize = canvas.Size{W: c.SquareSize, H: c.SquareSize}
	if c.ZoomLevel > 0 {
		out.ZoomLevel = c.ZoomLevel
	}
	out.Palette = c.Palette

	var err error
	if out.Background, err = canvas.ParseColor(c.Background); err != nil {
		return out, fmt.Errorf("background: %w", err)
	}
	if out.Backdrop, err = canvas.ParseColor(c.Backdrop); err != nil {
		return out, fmt.Errorf("backdrop: %w", err)
	}
	if out.GridLine.Color, err = canvas.ParseColor(c.GridLineColor); err != nil {
		return out, fmt.Errorf("gridline: %w", err)
	}
	if c.GridLineWidth > 0 {
		out.GridLine.Width = c.GridLineWidth
	}
	return out, nil
}
