// Package config handles configuration loading, validation and live reload.
package config

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalid is returned by Validate for out-of-range settings.
var ErrInvalid = errors.New("config: invalid value")

// Config holds all settings.
type Config struct {
	Graphics  GraphicsConfig  `yaml:"graphics"`
	Camera    CameraConfig    `yaml:"camera"`
	Animation AnimationConfig `yaml:"animation"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`
	Background string `yaml:"background"` // "#rrggbb"
}

// CameraConfig holds the fixed perspective camera.
type CameraConfig struct {
	FOV      float32 `yaml:"fov"` // vertical, degrees
	Near     float32 `yaml:"near"`
	Far      float32 `yaml:"far"`
	Distance float32 `yaml:"distance"`
}

// AnimationConfig holds scene construction settings.
type AnimationConfig struct {
	// Seed drives the mane sway table. 0 picks a time-based seed.
	Seed      uint64     `yaml:"seed"`
	FanDepth  float32    `yaml:"fan_depth"`
	FanLookAt [3]float32 `yaml:"fan_look_at"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
			Background: "#d4d4d8",
		},
		Camera: CameraConfig{
			FOV:      60,
			Near:     1,
			Far:      2000,
			Distance: 800,
		},
		Animation: AnimationConfig{
			Seed:      0,
			FanDepth:  350,
			FanLookAt: [3]float32{0, 80, 60},
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// BackgroundRGB parses Graphics.Background as 0xRRGGBB.
func (g GraphicsConfig) BackgroundRGB() (uint32, error) {
	s := strings.TrimPrefix(strings.TrimSpace(g.Background), "#")
	if len(s) != 6 {
		return 0, fmt.Errorf("background %q: %w", g.Background, ErrInvalid)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("background %q: %w", g.Background, ErrInvalid)
	}
	return uint32(v), nil
}

// Validate reports the first out-of-range setting, wrapping ErrInvalid.
func (c *Config) Validate() error {
	if c.Graphics.Width <= 0 || c.Graphics.Height <= 0 {
		return fmt.Errorf("window size %dx%d: %w", c.Graphics.Width, c.Graphics.Height, ErrInvalid)
	}
	if _, err := c.Graphics.BackgroundRGB(); err != nil {
		return err
	}

	cam := c.Camera
	if !(cam.FOV > 0 && cam.FOV < 180) {
		return fmt.Errorf("camera fov %v: %w", cam.FOV, ErrInvalid)
	}
	if !(cam.Near > 0 && cam.Far > cam.Near) {
		return fmt.Errorf("camera clip planes %v..%v: %w", cam.Near, cam.Far, ErrInvalid)
	}
	if !(cam.Distance > cam.Near && cam.Distance < cam.Far) {
		return fmt.Errorf("camera distance %v outside clip planes: %w", cam.Distance, ErrInvalid)
	}

	if !finite(c.Animation.FanDepth) {
		return fmt.Errorf("fan depth %v: %w", c.Animation.FanDepth, ErrInvalid)
	}
	for _, v := range c.Animation.FanLookAt {
		if !finite(v) {
			return fmt.Errorf("fan look-at %v: %w", c.Animation.FanLookAt, ErrInvalid)
		}
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log level %q: %w", c.Logging.Level, ErrInvalid)
	}
	return nil
}

func finite(v float32) bool {
	f := float64(v)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
