package anim

import (
	"math/rand/v2"

	"github.com/Faultbox/lionfan/pkg/math"
)

// ManeGrid is the side length of the square mane grid.
const ManeGrid = 4

// ManeSpacing is the distance between neighbouring mane segments.
const ManeSpacing float32 = 40

// SegmentClass categorises a mane segment by its grid position.
type SegmentClass int

const (
	Interior SegmentClass = iota
	Edge
	Corner
)

func (c SegmentClass) String() string {
	switch c {
	case Corner:
		return "corner"
	case Edge:
		return "edge"
	default:
		return "interior"
	}
}

// ClassAt classifies grid cell (col, row) of the mane.
func ClassAt(col, row int) SegmentClass {
	last := ManeGrid - 1
	onCol := col == 0 || col == last
	onRow := row == 0 || row == last
	switch {
	case onCol && onRow:
		return Corner
	case onCol || onRow:
		return Edge
	default:
		return Interior
	}
}

// ManeSegment is the immutable sway record of one mane block.
type ManeSegment struct {
	Col, Row int
	Class    SegmentClass

	// Amplitude is the z sway in world units. It is negative so segments
	// flap backwards, and zero for interior segments.
	Amplitude float32
	// ZOffset is the resting z displacement while swaying.
	ZOffset     float32
	PhaseOffset float32

	// Rest is the segment position inside the mane group.
	Rest math.Vec2
}

// NewMane builds the ManeGrid x ManeGrid segment table, column-major. The
// random draws come from r, so a seeded generator reproduces the same mane.
func NewMane(r *rand.Rand) []ManeSegment {
	segments := make([]ManeSegment, 0, ManeGrid*ManeGrid)
	offset := ManeSpacing * (ManeGrid - 1) / 2
	for col := 0; col < ManeGrid; col++ {
		for row := 0; row < ManeGrid; row++ {
			s := ManeSegment{
				Col:         col,
				Row:         row,
				Class:       ClassAt(col, row),
				PhaseOffset: r.Float32() * 2 * math.Pi,
				Rest: math.Vec2{
					X: float32(col)*ManeSpacing - offset,
					Y: float32(row)*ManeSpacing - offset,
				},
			}
			switch s.Class {
			case Corner:
				s.Amplitude = -10 - float32(r.IntN(5))
				s.ZOffset = -5
			case Edge:
				s.Amplitude = -5 - float32(r.IntN(5))
			}
			segments = append(segments, s)
		}
	}
	return segments
}

// Displacement returns the segment z for the given wind phase and step.
func (s ManeSegment) Displacement(phase, dt float32) float32 {
	return s.ZOffset + math.Sin(phase+s.PhaseOffset)*s.Amplitude*dt*2
}

// MustacheCount is the number of mustache whiskers, three per side.
const MustacheCount = 6

// MustacheEntry is one whisker. Sign is -1 for the left group, +1 for the
// right.
type MustacheEntry struct {
	Index int
	Sign  float32
}

// BaseAmplitude is the resting yaw of the whisker while swaying.
func (m MustacheEntry) BaseAmplitude() float32 {
	return m.Sign * math.Pi / 8
}

// Yaw returns the whisker rotation about Y for the given phase and step.
func (m MustacheEntry) Yaw(phase, dt float32) float32 {
	amp := m.BaseAmplitude()
	return amp + math.Cos(phase+float32(m.Index))*dt*amp
}

// Mustaches returns the fixed whisker table.
func Mustaches() [MustacheCount]MustacheEntry {
	var out [MustacheCount]MustacheEntry
	for i := range out {
		out[i] = MustacheEntry{Index: i, Sign: 1}
		if i < MustacheCount/2 {
			out[i].Sign = -1
		}
	}
	return out
}
