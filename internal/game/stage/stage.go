// Package stage owns the animated scene and advances it once per display
// frame in a fixed order.
package stage

import (
	"fmt"
	"math/rand/v2"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/lionfan/internal/anim"
	"github.com/Faultbox/lionfan/internal/config"
	"github.com/Faultbox/lionfan/internal/engine/scene"
	"github.com/Faultbox/lionfan/internal/game/lion"
	"github.com/Faultbox/lionfan/internal/logger"
	"github.com/Faultbox/lionfan/pkg/math"
)

// FrameSource calls registered callbacks once per display refresh.
// Subscribe returns a function that removes the callback again.
type FrameSource interface {
	Subscribe(fn func()) (unsubscribe func())
}

// Stage is the lion, the fan and the behavior machine that switches between
// them. It is not safe for concurrent use: input, Tick and rendering must run
// on one goroutine.
type Stage struct {
	root *scene.Node
	lion *lion.Lion
	fan  *lion.Fan

	machine anim.Machine
	pointer math.Vec2
	mode    anim.Mode
	frames  uint64
	seed    uint64

	unsubscribe func()
	log         *zap.Logger
}

// New builds the scene. A zero seed is replaced with a time-based one.
func New(cfg config.AnimationConfig) (*Stage, error) {
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	l, err := lion.New(rand.New(rand.NewPCG(seed, seed>>1|1)))
	if err != nil {
		return nil, fmt.Errorf("stage: %w", err)
	}
	lookAt := math.Vec3{X: cfg.FanLookAt[0], Y: cfg.FanLookAt[1], Z: cfg.FanLookAt[2]}
	f := lion.NewFan(cfg.FanDepth, lookAt)

	s := &Stage{
		root: scene.NewGroup("stage"),
		lion: l,
		fan:  f,
		mode: anim.Look,
		seed: seed,
		log:  logger.Named("stage"),
	}
	s.root.Add(l.Root, f.Root)

	s.log.Info("stage built",
		zap.Uint64("seed", seed),
		zap.Int("nodes", s.root.Count()))
	return s, nil
}

// SetPointer records the pointer as an offset from the viewport center.
// Non-finite input is ignored.
func (s *Stage) SetPointer(x, y float32) {
	p := math.Vec2{X: x, Y: y}
	if !p.IsFinite() {
		return
	}
	s.pointer = p
}

// Pointer returns the last accepted pointer offset.
func (s *Stage) Pointer() math.Vec2 {
	return s.pointer
}

// Engage switches to Cool from the next tick.
func (s *Stage) Engage() {
	s.machine.Engage()
}

// Release switches to Look from the next tick.
func (s *Stage) Release() {
	s.machine.Release()
}

// Tick advances one frame. Order: mode dispatch, lion pose and sway, body
// deformation, then fan dynamics.
func (s *Stage) Tick() {
	mode := s.machine.Mode()
	if mode != s.mode {
		s.log.Debug("mode changed",
			zap.Stringer("from", s.mode),
			zap.Stringer("to", mode),
			zap.Uint64("frame", s.frames+1))
		s.mode = mode
	}

	s.fan.SetBlowing(mode == anim.Cool)
	s.lion.Update(mode, s.pointer)
	s.fan.Update(s.pointer)
	s.frames++
}

// Mode returns the mode the last tick ran in.
func (s *Stage) Mode() anim.Mode {
	return s.mode
}

// Frames returns the number of ticks run.
func (s *Stage) Frames() uint64 {
	return s.frames
}

// Seed returns the seed the mane was built from.
func (s *Stage) Seed() uint64 {
	return s.seed
}

// Root returns the scene tree holding the lion and the fan.
func (s *Stage) Root() *scene.Node {
	return s.root
}

// Lion returns the lion.
func (s *Stage) Lion() *lion.Lion {
	return s.lion
}

// Fan returns the fan.
func (s *Stage) Fan() *lion.Fan {
	return s.fan
}

// Attach registers Tick with src. Attaching again first detaches from the
// previous source.
func (s *Stage) Attach(src FrameSource) {
	s.Detach()
	s.unsubscribe = src.Subscribe(s.Tick)
	s.log.Debug("attached to frame source")
}

// Detach removes Tick from the frame source. It is a no-op when not attached.
func (s *Stage) Detach() {
	if s.unsubscribe == nil {
		return
	}
	s.unsubscribe()
	s.unsubscribe = nil
	s.log.Debug("detached from frame source", zap.Uint64("frames", s.frames))
}
