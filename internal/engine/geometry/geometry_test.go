package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/lionfan/pkg/math"
)

func TestNewBox(t *testing.T) {
	m := NewBox(40, 20, 10)
	assert.Equal(t, 8, m.VertexCount())
	assert.Len(t, m.Indices, 36)

	min, max := m.Bounds()
	assert.Equal(t, math.Vec3{X: -20, Y: -10, Z: -5}, min)
	assert.Equal(t, math.Vec3{X: 20, Y: 10, Z: 5}, max)
	for _, idx := range m.Indices {
		assert.Less(t, int(idx), m.VertexCount())
	}
}

func TestMeshTranslate(t *testing.T) {
	m := NewBox(25, 80, 80).Translate(0, 50, 0)
	min, max := m.Bounds()
	assert.Equal(t, float32(10), min.Y)
	assert.Equal(t, float32(90), max.Y)
	assert.True(t, m.Dirty())

	m.ClearDirty()
	assert.False(t, m.Dirty())
}

func TestNewCylinderLayout(t *testing.T) {
	m, err := NewCylinder(30, 80, 140, 4)
	require.NoError(t, err)

	// side rings 2*(4+1), caps 2*(4+5)
	assert.Equal(t, 28, m.VertexCount())
	assert.Len(t, m.Indices, 4*6+2*4*3)

	for i := 0; i <= 4; i++ {
		p := m.Positions[i]
		assert.InDelta(t, 70, p.Y, 1e-5, "vertex %d should be on the top ring", i)
		assert.InDelta(t, 30, math.Vec2{X: p.X, Y: p.Z}.Length(), 1e-4, "vertex %d radius", i)
	}
	assert.InDelta(t, 30, m.Positions[0].Z, 1e-5)
	assert.InDelta(t, 30, m.Positions[1].X, 1e-5)
	assert.InDelta(t, -70, m.Positions[5].Y, 1e-5)

	for _, idx := range m.Indices {
		assert.Less(t, int(idx), m.VertexCount())
	}
}

func TestNewCylinderRejectsFewSegments(t *testing.T) {
	_, err := NewCylinder(1, 1, 1, 2)
	assert.ErrorIs(t, err, ErrSegments)
}

func TestNewTorusArc(t *testing.T) {
	m, err := NewTorus(12, 4, 2, 10, math.Pi)
	require.NoError(t, err)
	assert.Equal(t, 3*11, m.VertexCount())
	assert.Len(t, m.Indices, 2*10*6)

	// Half arc: nothing below y = 0 beyond float noise.
	min, _ := m.Bounds()
	assert.Greater(t, min.Y, float32(-1e-4))

	_, err = NewTorus(12, 4, 1, 10, math.Pi)
	assert.ErrorIs(t, err, ErrSegments)
}

func TestMaterialColors(t *testing.T) {
	assert.Equal(t, uint32(0xfdd276), Yellow.Hex())
	assert.Equal(t, [3]float32{1, 1, 1}, White.Color())
	assert.Equal(t, "black", Black.String())
	assert.Equal(t, "unknown", Material(42).String())

	c := HexColor(0xd4d4d8)
	assert.InDelta(t, 212.0/255, c[0], 1e-6)
}
