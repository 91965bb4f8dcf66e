package anim

import (
	"errors"
	"fmt"

	"github.com/Faultbox/lionfan/pkg/math"
)

// ErrVertexIndex is returned when a tracked vertex is outside the mesh.
var ErrVertexIndex = errors.New("anim: vertex index out of range")

// BodyVertices are the body-mesh vertices that follow the head: the top ring
// of the body cylinder.
var BodyVertices = []int{0, 1, 2, 3, 4}

// BodyDeformer shifts a fixed set of body vertices sideways with the head so
// the silhouette leans without re-meshing.
type BodyDeformer struct {
	indices  []int
	snapshot []math.Vec3
}

// NewBodyDeformer snapshots the current positions of the given vertex indices.
// The snapshot is the baseline for every later Apply.
func NewBodyDeformer(positions []math.Vec3, indices []int) (*BodyDeformer, error) {
	d := &BodyDeformer{
		indices:  append([]int(nil), indices...),
		snapshot: make([]math.Vec3, len(indices)),
	}
	for i, idx := range indices {
		if idx < 0 || idx >= len(positions) {
			return nil, fmt.Errorf("body vertex %d of %d: %w", idx, len(positions), ErrVertexIndex)
		}
		d.snapshot[i] = positions[idx]
	}
	return d, nil
}

// Apply rewrites the x coordinate of every tracked vertex to its snapshot x
// plus headX. y and z are left untouched.
func (d *BodyDeformer) Apply(positions []math.Vec3, headX float32) {
	for i, idx := range d.indices {
		positions[idx].X = d.snapshot[i].X + headX
	}
}

// Snapshot returns a copy of the baseline positions.
func (d *BodyDeformer) Snapshot() []math.Vec3 {
	return append([]math.Vec3(nil), d.snapshot...)
}

// Indices returns a copy of the tracked vertex indices.
func (d *BodyDeformer) Indices() []int {
	return append([]int(nil), d.indices...)
}
