package anim

import (
	"github.com/Faultbox/lionfan/pkg/math"
)

// Approach rates, in frames. Larger is slower.
const (
	RateBody float32 = 10
	RateEye  float32 = 20
)

// PointerRange is the half-extent of the pointer domain most mappings use.
const PointerRange float32 = 200

// Rest transform values of the constructed lion that the pose channels start
// from.
const (
	HeadRestY    float32 = 60
	IrisRestY    float32 = 25
	IrisRestZ    float32 = 120
	KneeRestRotZ float32 = 0.3
	LipsRestY    float32 = -45
	SmileRestY   float32 = -15
	SmileRestZ   float32 = 173
	SmileRestRot float32 = -math.Pi
	MouthRestZ   float32 = 171
)

// Channel is one animated scalar: the value shown this frame and the value it
// is converging on.
type Channel struct {
	Current float32
	Target  float32
}

// Rest returns a channel at rest on v.
func Rest(v float32) Channel {
	return Channel{Current: v, Target: v}
}

// Advance moves Current toward Target by 1/rate of the gap.
func (c *Channel) Advance(rate float32) {
	c.Current = math.Approach(c.Current, c.Target, rate)
}

// Pose is the full set of pointer-driven channels of the lion.
//
// The eyes share one eyelid channel and one iris scale; the right iris shares
// the left iris height and only its depth is separate.
type Pose struct {
	HeadRotX, HeadRotY           Channel
	HeadPosX, HeadPosY, HeadPosZ Channel

	EyeScale       Channel
	IrisScaleY     Channel
	IrisScaleZ     Channel
	IrisPosY       Channel
	LeftIrisPosZ   Channel
	RightIrisPosZ  Channel
	RightKneeRotZ  Channel
	LeftKneeRotZ   Channel
	LipsPosX       Channel
	LipsPosY       Channel
	SmilePosX      Channel
	SmilePosY      Channel
	SmilePosZ      Channel
	SmileRotZ      Channel
	MouthPosZ      Channel
}

// NewPose returns a pose resting on the constructed lion's transforms.
func NewPose() *Pose {
	return &Pose{
		HeadPosY:      Rest(HeadRestY),
		EyeScale:      Rest(1),
		IrisScaleY:    Rest(1),
		IrisScaleZ:    Rest(1),
		IrisPosY:      Rest(IrisRestY),
		LeftIrisPosZ:  Rest(IrisRestZ),
		RightIrisPosZ: Rest(IrisRestZ),
		RightKneeRotZ: Rest(KneeRestRotZ),
		LeftKneeRotZ:  Rest(-KneeRestRotZ),
		LipsPosY:      Rest(LipsRestY),
		SmilePosY:     Rest(SmileRestY),
		SmilePosZ:     Rest(SmileRestZ),
		SmileRotZ:     Rest(SmileRestRot),
		MouthPosZ:     Rest(MouthRestZ),
	}
}

// Update sets every target from the pointer for the given mode, then advances
// every channel one frame. Targets are never shown directly.
func (p *Pose) Update(mode Mode, pointer math.Vec2) {
	if mode == Cool {
		p.CoolTargets(pointer)
	} else {
		p.LookTargets(pointer)
	}
	p.advance()
}

// HeadRotation returns the current head rotation as (x, y).
func (p *Pose) HeadRotation() math.Vec2 {
	return math.Vec2{X: p.HeadRotX.Current, Y: p.HeadRotY.Current}
}

// HeadPosition returns the current head offset.
func (p *Pose) HeadPosition() math.Vec3 {
	return math.Vec3{X: p.HeadPosX.Current, Y: p.HeadPosY.Current, Z: p.HeadPosZ.Current}
}

// channels lists every channel with its rate.
func (p *Pose) channels() []struct {
	c    *Channel
	rate float32
} {
	return []struct {
		c    *Channel
		rate float32
	}{
		{&p.HeadRotY, RateBody}, {&p.HeadRotX, RateBody},
		{&p.HeadPosX, RateBody}, {&p.HeadPosY, RateBody}, {&p.HeadPosZ, RateBody},
		{&p.EyeScale, RateEye},
		{&p.IrisScaleY, RateEye}, {&p.IrisScaleZ, RateEye},
		{&p.IrisPosY, RateBody},
		{&p.LeftIrisPosZ, RateBody}, {&p.RightIrisPosZ, RateBody},
		{&p.RightKneeRotZ, RateBody}, {&p.LeftKneeRotZ, RateBody},
		{&p.LipsPosX, RateBody}, {&p.LipsPosY, RateBody},
		{&p.SmilePosX, RateBody}, {&p.SmilePosY, RateBody}, {&p.SmilePosZ, RateBody},
		{&p.SmileRotZ, RateBody},
		{&p.MouthPosZ, RateBody},
	}
}

func (p *Pose) advance() {
	for _, ch := range p.channels() {
		ch.c.Advance(ch.rate)
	}
}

// Finite reports whether every current value is finite.
func (p *Pose) Finite() bool {
	for _, ch := range p.channels() {
		if !math.IsFinite(ch.c.Current) {
			return false
		}
	}
	return true
}

// span maps v from [-PointerRange, PointerRange] onto [from, to].
func span(v, from, to float32) float32 {
	return math.MapRange(v, -PointerRange, PointerRange, from, to)
}

// headHeight maps the pointer y onto the head height. The domain is shifted
// down so the head sits higher at rest.
func headHeight(y, from, to float32) float32 {
	return math.MapRange(y, -140, 260, from, to)
}

// LookTargets sets every target for Look mode without advancing.
func (p *Pose) LookTargets(ptr math.Vec2) {
	x, y := ptr.X, ptr.Y

	p.HeadRotY.Target = span(x, -math.Pi/4, math.Pi/4)
	p.HeadRotX.Target = span(y, -math.Pi/4, math.Pi/4)
	p.HeadPosX.Target = span(x, 70, -70)
	p.HeadPosY.Target = headHeight(y, 20, 100)
	p.HeadPosZ.Target = 0

	p.EyeScale.Target = 1
	p.IrisScaleY.Target = 1
	p.IrisScaleZ.Target = 1
	p.IrisPosY.Target = span(y, 35, 15)
	p.LeftIrisPosZ.Target = span(x, 130, 110)
	p.RightIrisPosZ.Target = span(x, 110, 130)

	p.LipsPosX.Target = 0
	p.LipsPosY.Target = -45

	p.SmilePosX.Target = 0
	p.SmilePosZ.Target = 173
	p.SmilePosY.Target = -15
	p.SmileRotZ.Target = -math.Pi

	p.MouthPosZ.Target = 174

	p.RightKneeRotZ.Target = span(x, KneeRestRotZ-math.Pi/8, KneeRestRotZ+math.Pi/8)
	p.LeftKneeRotZ.Target = span(x, -KneeRestRotZ-math.Pi/8, -KneeRestRotZ+math.Pi/8)
}

// CoolTargets sets every target for Cool mode without advancing.
func (p *Pose) CoolTargets(ptr math.Vec2) {
	x, y := ptr.X, ptr.Y

	p.HeadRotY.Target = span(x, math.Pi/4, -math.Pi/4)
	p.HeadRotX.Target = span(y, math.Pi/4, -math.Pi/4)
	p.HeadPosX.Target = span(x, -70, 70)
	p.HeadPosY.Target = headHeight(y, 100, 20)
	p.HeadPosZ.Target = 100

	p.EyeScale.Target = 0.1
	p.IrisScaleY.Target = 0.1
	p.IrisScaleZ.Target = 3
	p.IrisPosY.Target = 20
	p.LeftIrisPosZ.Target = 120
	p.RightIrisPosZ.Target = 120

	p.LipsPosX.Target = span(x, -15, 15)
	p.LipsPosY.Target = span(y, -45, -40)

	p.MouthPosZ.Target = 168

	p.SmilePosX.Target = span(x, -15, 15)
	p.SmilePosY.Target = span(y, -20, -8)
	p.SmilePosZ.Target = 176
	p.SmileRotZ.Target = span(x, -math.Pi-0.3, -math.Pi+0.3)

	p.RightKneeRotZ.Target = span(x, KneeRestRotZ+math.Pi/8, KneeRestRotZ-math.Pi/8)
	p.LeftKneeRotZ.Target = span(x, -KneeRestRotZ+math.Pi/8, -KneeRestRotZ-math.Pi/8)
}
