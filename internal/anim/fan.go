package anim

import (
	"github.com/Faultbox/lionfan/pkg/math"
)

// Fan dynamics constants.
const (
	FanMaxSpeed     float32 = 0.5
	FanAcceleration float32 = 0.001
	FanDecay        float32 = 0.98
	// FanTravel is how far the fan moves for a full pointer deflection.
	FanTravel float32 = 250
)

// FanState is the spin state of the fan.
type FanState struct {
	Blowing      bool
	Speed        float32
	Acceleration float32
	Target       math.Vec2
}

// Fan is the fan prop's dynamics: it trails the pointer and spins up while
// blowing, then coasts down.
type Fan struct {
	State         FanState
	PosX, PosY    Channel
	PropellerRotZ float32
}

// NewFan returns an idle fan at the origin of its travel plane.
func NewFan() *Fan {
	return &Fan{}
}

// SetBlowing toggles the fan. Stopping zeroes the acceleration immediately.
func (f *Fan) SetBlowing(on bool) {
	if f.State.Blowing && !on {
		f.State.Acceleration = 0
	}
	f.State.Blowing = on
}

// Position returns the current (x, y) of the fan.
func (f *Fan) Position() math.Vec2 {
	return math.Vec2{X: f.PosX.Current, Y: f.PosY.Current}
}

// Update advances the fan one frame toward the pointer and steps its speed.
func (f *Fan) Update(pointer math.Vec2) {
	s := &f.State
	s.Target = math.Vec2{
		X: math.MapRange(pointer.X, -PointerRange, PointerRange, -FanTravel, FanTravel),
		Y: math.MapRange(pointer.Y, -PointerRange, PointerRange, FanTravel, -FanTravel),
	}
	f.PosX.Target, f.PosY.Target = s.Target.X, s.Target.Y
	f.PosX.Advance(RateBody)
	f.PosY.Advance(RateBody)

	if s.Blowing {
		if s.Speed < FanMaxSpeed {
			s.Acceleration += FanAcceleration
			s.Speed += s.Acceleration
		}
	} else {
		s.Acceleration = 0
		s.Speed *= FanDecay
	}
	s.Speed = math.Clamp(s.Speed, 0, FanMaxSpeed)

	// Kept within [0, 2π].
	f.PropellerRotZ += s.Speed
	if f.PropellerRotZ > 2*math.Pi {
		f.PropellerRotZ -= 2 * math.Pi
	}
}
