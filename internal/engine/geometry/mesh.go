// Package geometry builds the low-poly meshes the scene nodes reference and
// tracks when a mesh's vertex data must be re-uploaded.
package geometry

import (
	"errors"

	"github.com/Faultbox/lionfan/pkg/math"
)

// ErrSegments is returned when a builder is asked for too few segments.
var ErrSegments = errors.New("geometry: not enough segments")

// Mesh is an indexed triangle list. Meshes are shared between nodes; only the
// body mesh is ever mutated after construction.
type Mesh struct {
	Name      string
	Positions []math.Vec3
	Indices   []uint32

	dirty bool
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Positions)
}

// Translate moves every vertex by (x, y, z) and returns the mesh. It bakes an
// offset pivot into the geometry, like the knee and propeller blades use.
func (m *Mesh) Translate(x, y, z float32) *Mesh {
	d := math.Vec3{X: x, Y: y, Z: z}
	for i := range m.Positions {
		m.Positions[i] = m.Positions[i].Add(d)
	}
	m.dirty = true
	return m
}

// MarkDirty flags the vertex data as changed since the last upload.
func (m *Mesh) MarkDirty() {
	m.dirty = true
}

// Dirty reports whether the vertex data changed since the last ClearDirty.
func (m *Mesh) Dirty() bool {
	return m.dirty
}

// ClearDirty is called by the renderer after uploading the vertex data.
func (m *Mesh) ClearDirty() {
	m.dirty = false
}

// Flatten returns positions as a tightly packed xyz slice for GPU upload.
func (m *Mesh) Flatten() []float32 {
	out := make([]float32, 0, len(m.Positions)*3)
	for _, p := range m.Positions {
		out = append(out, p.X, p.Y, p.Z)
	}
	return out
}

// Bounds returns the axis-aligned bounding box of the mesh.
func (m *Mesh) Bounds() (min, max math.Vec3) {
	if len(m.Positions) == 0 {
		return
	}
	min, max = m.Positions[0], m.Positions[0]
	for _, p := range m.Positions[1:] {
		min.X, max.X = minf(min.X, p.X), maxf(max.X, p.X)
		min.Y, max.Y = minf(min.Y, p.Y), maxf(max.Y, p.Y)
		min.Z, max.Z = minf(min.Z, p.Z), maxf(max.Z, p.Z)
	}
	return min, max
}

func minf(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
