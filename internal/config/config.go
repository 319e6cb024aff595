// Package config loads the clippath command configuration from TOML.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/gogpu/clippath"
	"github.com/gogpu/clippath/canvas"
	"github.com/gogpu/gg"
	"github.com/pelletier/go-toml/v2"
)

// Config is the command configuration.
//
//	[canvas]
//	width = 400
//	height = 300
//	background = "#ffffff"
//	stroke = "#000000"
//	line_width = 2
//	label_size = 12
//
//	[editor]
//	anchor_radius = 8
//	seed = 1
//
//	[server]
//	addr = ":8080"
type Config struct {
	Canvas Canvas `toml:"canvas"`
	Editor Editor `toml:"editor"`
	Server Server `toml:"server"`
}

// Canvas configures the drawing surface.
type Canvas struct {
	Width      int     `toml:"width"`
	Height     int     `toml:"height"`
	Background string  `toml:"background"`
	Stroke     string  `toml:"stroke"`
	LineWidth  float64 `toml:"line_width"`
	LabelSize  float64 `toml:"label_size"`
}

// Editor configures sessions.
type Editor struct {
	AnchorRadius float64 `toml:"anchor_radius"`
	Seed         uint64  `toml:"seed"`
}

// Server configures the live editing server.
type Server struct {
	Addr string `toml:"addr"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Canvas: Canvas{
			Width:      400,
			Height:     300,
			Background: "#ffffff",
			Stroke:     "#000000",
			LineWidth:  2,
			LabelSize:  12,
		},
		Editor: Editor{
			AnchorRadius: clippath.DefaultAnchorRadius,
			Seed:         1,
		},
		Server: Server{Addr: ":8080"},
	}
}

// Load reads a TOML file over the defaults. An empty path yields Default.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	return Parse(data)
}

// Parse decodes TOML over the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks sizes and colors.
func (c Config) Validate() error {
	var errs []error
	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		errs = append(errs, fmt.Errorf("canvas %dx%d: %w", c.Canvas.Width, c.Canvas.Height, clippath.ErrInvalidDimensions))
	}
	for name, hex := range map[string]string{"background": c.Canvas.Background, "stroke": c.Canvas.Stroke} {
		if !validHex(hex) {
			errs = append(errs, fmt.Errorf("canvas.%s: invalid color %q", name, hex))
		}
	}
	if c.Editor.AnchorRadius <= 0 {
		errs = append(errs, fmt.Errorf("editor.anchor_radius must be positive, got %v", c.Editor.AnchorRadius))
	}
	return errors.Join(errs...)
}

// SessionOptions returns the session options this configuration implies.
func (c Config) SessionOptions() []clippath.SessionOption {
	return []clippath.SessionOption{
		clippath.WithAnchorRadius(c.Editor.AnchorRadius),
		clippath.WithSeed(c.Editor.Seed),
	}
}

// CanvasOptions returns the raster canvas options this configuration implies.
func (c Config) CanvasOptions() []canvas.Option {
	return []canvas.Option{
		canvas.WithBackground(gg.Hex(c.Canvas.Background)),
		canvas.WithStrokeColor(gg.Hex(c.Canvas.Stroke)),
		canvas.WithLineWidth(c.Canvas.LineWidth),
		canvas.WithLabelSize(c.Canvas.LabelSize),
	}
}

// validHex accepts the forms gg.Hex parses: RGB, RGBA, RRGGBB, RRGGBBAA,
// with an optional leading '#'.
func validHex(s string) bool {
	if s != "" && s[0] == '#' {
		s = s[1:]
	}
	switch len(s) {
	case 3, 4, 6, 8:
	default:
		return false
	}
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'f', r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}
