package anim

import (
	"github.com/Faultbox/lionfan/pkg/math"
)

// Wind step parameters. The step shrinks as the pointer moves away from the
// center and is clamped to [WindStepMin, WindStepMax].
const (
	WindGain    float32 = 20000
	WindStepMin float32 = 0.5
	WindStepMax float32 = 1.0
	// WindEpsilon is the squared pointer distance under which the step is
	// pinned to WindStepMax instead of dividing by (almost) zero.
	WindEpsilon float32 = 1e-6

	// ManeFollow is how much the mane counter-rotates against the head.
	ManeFollow float32 = -0.8
	// EarSwing is the peak ear rotation at a full step.
	EarSwing float32 = math.Pi / 16
)

// WindStep returns the phase step for a pointer offset from the center.
func WindStep(pointer math.Vec2) float32 {
	d2 := pointer.LengthSq()
	switch {
	case d2 < WindEpsilon:
		return WindStepMax
	case !math.IsFinite(d2):
		return WindStepMin
	}
	return math.Clamp(WindGain/d2, WindStepMin, WindStepMax)
}

// Sway is one frame of secondary motion. ManeZ and ManeRotY are indexed like
// the mane table.
type Sway struct {
	Step         float32
	LeftEarRotX  float32
	RightEarRotX float32
	ManeRot      math.Vec2
	ManeZ        []float32
	ManeRotY     []float32
	MustacheRotY [MustacheCount]float32
}

// Oscillator drives the wind-phase sway of the ears, mane and mustaches.
type Oscillator struct {
	phase     float32
	mane      []ManeSegment
	mustaches [MustacheCount]MustacheEntry
	sway      Sway
}

// NewOscillator returns an oscillator over the given mane table.
func NewOscillator(mane []ManeSegment) *Oscillator {
	return &Oscillator{
		mane:      mane,
		mustaches: Mustaches(),
		sway: Sway{
			ManeZ:    make([]float32, len(mane)),
			ManeRotY: make([]float32, len(mane)),
		},
	}
}

// Phase returns the accumulated wind phase.
func (o *Oscillator) Phase() float32 {
	return o.phase
}

// Mane returns the segment table.
func (o *Oscillator) Mane() []ManeSegment {
	return o.mane
}

// Update computes this frame's sway. In Look every output returns to rest and
// the phase does not advance. headRot is the current (x, y) head rotation.
//
// The returned Sway shares its slices with the oscillator and is only valid
// until the next Update.
func (o *Oscillator) Update(mode Mode, pointer, headRot math.Vec2) Sway {
	if mode != Cool {
		o.rest()
		return o.sway
	}

	dt := WindStep(pointer)
	o.phase += dt
	s := &o.sway
	s.Step = dt

	ear := math.Cos(o.phase) * EarSwing * dt
	s.LeftEarRotX = ear
	s.RightEarRotX = -ear

	s.ManeRot = headRot.Scale(ManeFollow)

	for i, seg := range o.mane {
		s.ManeZ[i] = seg.Displacement(o.phase, dt)
		s.ManeRotY[i] = 0
	}
	for i, m := range o.mustaches {
		s.MustacheRotY[i] = m.Yaw(o.phase, dt)
	}
	return o.sway
}

func (o *Oscillator) rest() {
	s := &o.sway
	s.Step = 0
	s.LeftEarRotX, s.RightEarRotX = 0, 0
	s.ManeRot = math.Vec2{}
	for i := range s.ManeZ {
		s.ManeZ[i] = 0
		s.ManeRotY[i] = 0
	}
	s.MustacheRotY = [MustacheCount]float32{}
}
