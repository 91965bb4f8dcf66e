package anim

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/lionfan/pkg/math"
)

func seeded(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func segmentAt(t *testing.T, mane []ManeSegment, col, row int) ManeSegment {
	t.Helper()
	for _, s := range mane {
		if s.Col == col && s.Row == row {
			return s
		}
	}
	t.Fatalf("no segment at (%d, %d)", col, row)
	return ManeSegment{}
}

func TestClassAt(t *testing.T) {
	assert.Equal(t, Corner, ClassAt(0, 0))
	assert.Equal(t, Corner, ClassAt(3, 0))
	assert.Equal(t, Corner, ClassAt(3, 3))
	assert.Equal(t, Edge, ClassAt(0, 2))
	assert.Equal(t, Edge, ClassAt(1, 3))
	assert.Equal(t, Interior, ClassAt(1, 1))
	assert.Equal(t, Interior, ClassAt(2, 1))
}

func TestNewManeCoefficients(t *testing.T) {
	for seed := uint64(0); seed < 20; seed++ {
		mane := NewMane(seeded(seed))
		require.Len(t, mane, ManeGrid*ManeGrid)

		for _, s := range mane {
			assert.GreaterOrEqual(t, s.PhaseOffset, float32(0))
			assert.Less(t, s.PhaseOffset, 2*math.Pi)
			switch s.Class {
			case Corner:
				assert.True(t, s.Amplitude <= -10 && s.Amplitude >= -14, "corner amplitude %v", s.Amplitude)
				assert.Equal(t, float32(-5), s.ZOffset)
			case Edge:
				assert.True(t, s.Amplitude <= -5 && s.Amplitude >= -9, "edge amplitude %v", s.Amplitude)
				assert.Zero(t, s.ZOffset)
			case Interior:
				assert.Zero(t, s.Amplitude)
				assert.Zero(t, s.ZOffset)
			}
		}
	}
}

func TestCornerAndInteriorSway(t *testing.T) {
	mane := NewMane(seeded(7))
	corner := segmentAt(t, mane, 0, 0)
	assert.Less(t, corner.Amplitude, float32(0))

	for _, cell := range [][2]int{{1, 1}, {1, 2}, {2, 1}, {2, 2}} {
		s := segmentAt(t, mane, cell[0], cell[1])
		assert.Zero(t, s.Amplitude)
		for phase := float32(0); phase < 50; phase += 0.37 {
			assert.Zero(t, s.Displacement(phase, 1))
			assert.Zero(t, s.Displacement(phase, 0.5))
		}
	}
}

func TestManeLayout(t *testing.T) {
	mane := NewMane(seeded(1))
	assert.Equal(t, math.Vec2{X: -60, Y: -60}, segmentAt(t, mane, 0, 0).Rest)
	assert.Equal(t, math.Vec2{X: 60, Y: 20}, segmentAt(t, mane, 3, 2).Rest)
}

func TestNewManeIsReproducible(t *testing.T) {
	assert.Equal(t, NewMane(seeded(42)), NewMane(seeded(42)))
	assert.NotEqual(t, NewMane(seeded(42)), NewMane(seeded(43)))
}

func TestMustaches(t *testing.T) {
	ms := Mustaches()
	for i, m := range ms {
		assert.Equal(t, i, m.Index)
		if i < 3 {
			assert.Equal(t, -math.Pi/8, m.BaseAmplitude())
		} else {
			assert.Equal(t, math.Pi/8, m.BaseAmplitude())
		}
	}
	// Zero step leaves the whisker at its base amplitude.
	assert.Equal(t, ms[4].BaseAmplitude(), ms[4].Yaw(3.1, 0))
}
