// Package game implements the window loop that drives the stage from display
// refreshes.
package game

import (
	"context"
	"fmt"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/lionfan/internal/config"
	"github.com/Faultbox/lionfan/internal/engine/camera"
	"github.com/Faultbox/lionfan/internal/engine/debug"
	"github.com/Faultbox/lionfan/internal/engine/input"
	"github.com/Faultbox/lionfan/internal/engine/lighting"
	"github.com/Faultbox/lionfan/internal/engine/renderer"
	"github.com/Faultbox/lionfan/internal/engine/window"
	"github.com/Faultbox/lionfan/internal/game/control"
	"github.com/Faultbox/lionfan/internal/game/frame"
	"github.com/Faultbox/lionfan/internal/game/stage"
	"github.com/Faultbox/lionfan/internal/logger"
)

const title = "Lion & Fan"

// Game is the running application.
type Game struct {
	config     *config.Config
	configPath string

	window   *window.Window
	renderer *renderer.Renderer
	camera   *camera.Camera
	input    *input.Input
	frames   frame.Source
	stage    *stage.Stage
	tracker  *control.Tracker
	shots    *debug.Screenshots
	capture  bool

	log *zap.Logger
}

// New creates the window, the renderer and the stage. configPath may be
// empty, in which case the config is not watched for changes.
func New(cfg *config.Config, configPath string) (*Game, error) {
	g := &Game{
		config:     cfg,
		configPath: configPath,
		log:        logger.Named("game"),
	}
	g.log.Info("initializing",
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
		zap.String("config", configPath),
	)

	background, err := cfg.Graphics.BackgroundRGB()
	if err != nil {
		return nil, err
	}

	st, err := stage.New(cfg.Animation)
	if err != nil {
		return nil, err
	}
	g.stage = st

	// Window before renderer: the OpenGL context must exist first.
	g.window, err = window.New(window.Config{
		Title:      title,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	dw, dh := g.window.DrawableSize()
	g.renderer, err = renderer.New(renderer.Config{
		Width:      dw,
		Height:     dh,
		Background: background,
	}, lighting.Default())
	if err != nil {
		g.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	c := cfg.Camera
	g.camera = camera.New(c.FOV, c.Near, c.Far, c.Distance)
	g.camera.SetAspect(dw, dh)

	w, h := g.window.GetSize()
	g.tracker = control.NewTracker(g.stage, w, h)
	g.input = input.New()
	g.shots = debug.NewScreenshots("screenshots", "lionfan")
	g.stage.Attach(&g.frames)

	g.log.Info("initialized")
	return g, nil
}

// Run presents frames until ctx is done, the window is closed or Escape is
// pressed. Every presented frame ticks the stage exactly once. F12 saves the
// next frame as a PNG under screenshots/.
func (g *Game) Run(ctx context.Context) error {
	var updates <-chan *config.Config
	if g.configPath != "" {
		ch, err := config.Watch(ctx, g.configPath)
		if err != nil {
			g.log.Warn("config hot reload disabled", zap.Error(err))
		} else {
			updates = ch
		}
	}

	frameCount := 0
	fpsTimer := time.Now()
	g.log.Info("starting frame loop")

	for {
		select {
		case <-ctx.Done():
			g.log.Info("frame loop stopped", zap.Error(ctx.Err()))
			return nil
		case cfg, ok := <-updates:
			if !ok {
				updates = nil
				break
			}
			g.applyConfig(cfg)
		default:
		}

		if g.input.Update() {
			return nil
		}
		if g.handleEvents() {
			return nil
		}

		g.frames.Dispatch()
		g.renderer.Render(g.stage.Root(), g.camera)
		if g.capture {
			g.capture = false
			g.screenshot()
		}
		g.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			g.log.Debug("fps",
				zap.Int("count", frameCount),
				zap.Stringer("mode", g.stage.Mode()),
				zap.Uint64("frames", g.stage.Frames()),
			)
			frameCount = 0
			fpsTimer = time.Now()
		}
	}
}

// handleEvents routes this frame's input to the tracker. It reports whether
// the user asked to quit.
func (g *Game) handleEvents() bool {
	for _, ev := range g.input.Events() {
		switch ev.Type {
		case input.EventWindowResize:
			g.tracker.Resize(ev.Width, ev.Height)
			dw, dh := g.window.DrawableSize()
			g.camera.SetAspect(dw, dh)
			g.renderer.Resize(dw, dh)
		case input.EventKeyDown:
			switch ev.Key {
			case sdl.SCANCODE_ESCAPE:
				return true
			case sdl.SCANCODE_F12:
				g.capture = true
			}
		case input.EventMouseMove:
			g.tracker.MouseMove(float32(ev.MouseX), float32(ev.MouseY))
		case input.EventMouseDown:
			g.tracker.MouseMove(float32(ev.MouseX), float32(ev.MouseY))
			g.tracker.MouseDown()
		case input.EventMouseUp:
			g.tracker.MouseUp()
		case input.EventTouchDown, input.EventTouchMove:
			w, h := g.window.GetSize()
			x, y := ev.TouchX*float32(w), ev.TouchY*float32(h)
			if ev.Type == input.EventTouchDown {
				g.tracker.TouchStart(x, y, ev.Fingers)
			} else {
				g.tracker.TouchMove(x, y, ev.Fingers)
			}
		case input.EventTouchUp:
			g.tracker.TouchEnd()
		}
	}
	return false
}

// screenshot saves the frame just drawn, before it is presented.
func (g *Game) screenshot() {
	pixels, w, h := g.renderer.ReadPixels()
	path, err := g.shots.Save(pixels, w, h)
	if err != nil {
		g.log.Warn("screenshot failed", zap.Error(err))
		return
	}
	g.log.Info("screenshot saved", zap.String("path", path))
}

// applyConfig applies the settings that can change without a restart.
// Window size and scene construction settings need one.
func (g *Game) applyConfig(cfg *config.Config) {
	bg, err := cfg.Graphics.BackgroundRGB()
	if err == nil {
		g.renderer.SetBackground(bg)
	}
	logger.SetLevel(cfg.Logging.Level)

	c := cfg.Camera
	g.camera.FOV, g.camera.Near, g.camera.Far = c.FOV, c.Near, c.Far
	g.camera.Position.Z = c.Distance

	if cfg.Animation != g.config.Animation {
		g.log.Info("animation settings changed, restart to apply")
	}
	g.config = cfg
	g.log.Info("config reloaded", zap.String("path", g.configPath))
}

// Close releases the stage, the renderer and the window.
func (g *Game) Close() {
	g.log.Info("closing")
	if g.stage != nil {
		g.stage.Detach()
	}
	if g.renderer != nil {
		g.renderer.Close()
	}
	if g.window != nil {
		g.window.Close()
	}
}
