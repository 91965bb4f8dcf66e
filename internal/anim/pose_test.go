package anim

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Faultbox/lionfan/pkg/math"
)

func TestNewPoseRestsOnConstructedLion(t *testing.T) {
	p := NewPose()
	assert.True(t, p.Finite())
	assert.Equal(t, HeadRestY, p.HeadPosY.Current)
	assert.Equal(t, float32(1), p.EyeScale.Current)
	assert.Equal(t, -KneeRestRotZ, p.LeftKneeRotZ.Current)
	assert.Equal(t, MouthRestZ, p.MouthPosZ.Current)
}

func TestLookAtCenterKeepsHeadStraight(t *testing.T) {
	p := NewPose()
	for i := 0; i < 100; i++ {
		p.Update(Look, math.Vec2{})
		assert.InDelta(t, 0, p.HeadRotX.Target, 1e-6)
		assert.InDelta(t, 0, p.HeadRotY.Target, 1e-6)
		assert.Equal(t, float32(1), p.EyeScale.Target)
	}
}

func TestModesMirrorHeadRotation(t *testing.T) {
	tests := []struct {
		name    string
		mode    Mode
		pointer math.Vec2
		rotY    float32
		rotX    float32
		eye     float32
		headZ   float32
	}{
		{"look right", Look, math.Vec2{X: 200}, math.Pi / 4, 0, 1, 0},
		{"cool right", Cool, math.Vec2{X: 200}, -math.Pi / 4, 0, 0.1, 100},
		{"look down", Look, math.Vec2{Y: 200}, 0, math.Pi / 4, 1, 0},
		{"cool down", Cool, math.Vec2{Y: 200}, 0, -math.Pi / 4, 0.1, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPose()
			p.Update(tt.mode, tt.pointer)
			assert.InDelta(t, tt.rotY, p.HeadRotY.Target, 1e-6)
			assert.InDelta(t, tt.rotX, p.HeadRotX.Target, 1e-6)
			assert.Equal(t, tt.eye, p.EyeScale.Target)
			assert.Equal(t, tt.headZ, p.HeadPosZ.Target)
		})
	}
}

func TestUpdateAdvancesWithChannelRates(t *testing.T) {
	p := NewPose()
	p.Update(Cool, math.Vec2{})

	// body channels move 1/10 of the gap, eye scales 1/20
	assert.InDelta(t, 10, p.HeadPosZ.Current, 1e-5)
	assert.InDelta(t, 1+(0.1-1)/20.0, p.EyeScale.Current, 1e-6)
	assert.InDelta(t, 1+(3-1)/20.0, p.IrisScaleZ.Current, 1e-6)
	assert.InDelta(t, MouthRestZ+(168-MouthRestZ)/10, p.MouthPosZ.Current, 1e-4)
}

func TestPoseConvergesWithoutOvershoot(t *testing.T) {
	p := NewPose()
	ptr := math.Vec2{X: 120, Y: -80}
	p.Update(Cool, ptr)
	target := p.HeadPosX.Target
	prev := target - p.HeadPosX.Current
	for i := 0; i < 400; i++ {
		p.Update(Cool, ptr)
		gap := target - p.HeadPosX.Current
		assert.LessOrEqual(t, abs(gap), abs(prev)+1e-6)
		assert.GreaterOrEqual(t, gap*sign(prev), float32(-1e-6), "overshoot at frame %d", i)
		prev = gap
	}
	assert.InDelta(t, target, p.HeadPosX.Current, 1e-3)
}

func TestPoseStaysFiniteForExtremePointers(t *testing.T) {
	p := NewPose()
	for _, ptr := range []math.Vec2{{X: 1e6, Y: -1e6}, {}, {X: -5000, Y: 3}} {
		for _, mode := range []Mode{Look, Cool} {
			for i := 0; i < 50; i++ {
				p.Update(mode, ptr)
			}
			assert.True(t, p.Finite())
		}
	}
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v float32) float32 {
	if v < 0 {
		return -1
	}
	return 1
}
