package anim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/lionfan/pkg/math"
)

func TestBodyDeformerApply(t *testing.T) {
	positions := []math.Vec3{
		{X: 1, Y: 2, Z: 70}, {X: -1, Y: 2, Z: 70}, {X: 5, Y: 5, Z: 5},
	}
	d, err := NewBodyDeformer(positions, []int{0, 1})
	require.NoError(t, err)

	for _, headX := range []float32{30, -12.5, 0} {
		d.Apply(positions, headX)
		assert.Equal(t, math.Vec3{X: 1 + headX, Y: 2, Z: 70}, positions[0])
		assert.Equal(t, math.Vec3{X: -1 + headX, Y: 2, Z: 70}, positions[1])
		assert.Equal(t, math.Vec3{X: 5, Y: 5, Z: 5}, positions[2], "untracked vertex moved")
	}
}

func TestBodyDeformerSnapshotIsStable(t *testing.T) {
	positions := []math.Vec3{{X: 3}, {X: 4}}
	d, err := NewBodyDeformer(positions, []int{1})
	require.NoError(t, err)

	d.Apply(positions, 10)
	d.Apply(positions, 10)
	assert.Equal(t, float32(14), positions[1].X, "offset must not accumulate")

	snap := d.Snapshot()
	snap[0].X = 99
	assert.Equal(t, float32(4), d.Snapshot()[0].X)
	assert.Equal(t, []int{1}, d.Indices())
}

func TestBodyDeformerRejectsBadIndex(t *testing.T) {
	positions := make([]math.Vec3, 3)
	for _, idx := range []int{3, -1} {
		_, err := NewBodyDeformer(positions, []int{0, idx})
		assert.ErrorIs(t, err, ErrVertexIndex)
	}
}
