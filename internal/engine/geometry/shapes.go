package geometry

import (
	"fmt"

	"github.com/Faultbox/lionfan/pkg/math"
)

// boxFaces lists the 12 triangles of a box over its 8 corners.
// Corner bit 0 is +X, bit 1 is +Y, bit 2 is +Z.
var boxFaces = []uint32{
	1, 3, 7, 1, 7, 5, // +X
	0, 4, 6, 0, 6, 2, // -X
	2, 6, 7, 2, 7, 3, // +Y
	0, 1, 5, 0, 5, 4, // -Y
	4, 5, 7, 4, 7, 6, // +Z
	0, 2, 3, 0, 3, 1, // -Z
}

// NewBox returns an axis-aligned box of the given size centered on the origin.
func NewBox(width, height, depth float32) *Mesh {
	hw, hh, hd := width/2, height/2, depth/2
	m := &Mesh{
		Name:      fmt.Sprintf("box(%g,%g,%g)", width, height, depth),
		Positions: make([]math.Vec3, 8),
		Indices:   append([]uint32(nil), boxFaces...),
	}
	for i := range m.Positions {
		p := math.Vec3{X: -hw, Y: -hh, Z: -hd}
		if i&1 != 0 {
			p.X = hw
		}
		if i&2 != 0 {
			p.Y = hh
		}
		if i&4 != 0 {
			p.Z = hd
		}
		m.Positions[i] = p
	}
	return m
}

// NewCylinder returns a capped cylinder along Y with one height segment.
//
// Vertex layout: the side ring at the top (radialSegments+1 vertices, seam
// duplicated) comes first, then the bottom side ring, then the top and bottom
// caps. Indices 0..radialSegments are therefore the top ring, starting at
// angle 0 on +Z and winding toward +X.
func NewCylinder(radiusTop, radiusBottom, height float32, radialSegments int) (*Mesh, error) {
	if radialSegments < 3 {
		return nil, fmt.Errorf("cylinder with %d radial segments: %w", radialSegments, ErrSegments)
	}

	m := &Mesh{Name: fmt.Sprintf("cylinder(%g,%g,%g,%d)", radiusTop, radiusBottom, height, radialSegments)}
	half := height / 2
	ring := uint32(radialSegments + 1)

	for row, r := range []float32{radiusTop, radiusBottom} {
		y := half
		if row == 1 {
			y = -half
		}
		for x := 0; x <= radialSegments; x++ {
			theta := float32(x) / float32(radialSegments) * 2 * math.Pi
			m.Positions = append(m.Positions, math.Vec3{X: r * math.Sin(theta), Y: y, Z: r * math.Cos(theta)})
		}
	}
	for x := uint32(0); x < uint32(radialSegments); x++ {
		a, b, c, d := x, ring+x, ring+x+1, x+1
		m.Indices = append(m.Indices, a, b, d, b, c, d)
	}

	m.addCap(radiusTop, half, radialSegments, true)
	m.addCap(radiusBottom, -half, radialSegments, false)
	return m, nil
}

func (m *Mesh) addCap(radius, y float32, radialSegments int, top bool) {
	centerStart := uint32(len(m.Positions))
	for x := 0; x < radialSegments; x++ {
		m.Positions = append(m.Positions, math.Vec3{Y: y})
	}
	ringStart := uint32(len(m.Positions))
	for x := 0; x <= radialSegments; x++ {
		theta := float32(x) / float32(radialSegments) * 2 * math.Pi
		m.Positions = append(m.Positions, math.Vec3{X: radius * math.Sin(theta), Y: y, Z: radius * math.Cos(theta)})
	}
	for x := uint32(0); x < uint32(radialSegments); x++ {
		c, i := centerStart+x, ringStart+x
		if top {
			m.Indices = append(m.Indices, i, i+1, c)
		} else {
			m.Indices = append(m.Indices, i+1, i, c)
		}
	}
}

// NewTorus returns a torus (or a torus arc when arc < 2π) in the XY plane.
func NewTorus(radius, tube float32, radialSegments, tubularSegments int, arc float32) (*Mesh, error) {
	if radialSegments < 2 || tubularSegments < 1 {
		return nil, fmt.Errorf("torus with %d/%d segments: %w", radialSegments, tubularSegments, ErrSegments)
	}

	m := &Mesh{Name: fmt.Sprintf("torus(%g,%g,%d,%d)", radius, tube, radialSegments, tubularSegments)}
	for j := 0; j <= radialSegments; j++ {
		v := float32(j) / float32(radialSegments) * 2 * math.Pi
		for i := 0; i <= tubularSegments; i++ {
			u := float32(i) / float32(tubularSegments) * arc
			r := radius + tube*math.Cos(v)
			m.Positions = append(m.Positions, math.Vec3{
				X: r * math.Cos(u),
				Y: r * math.Sin(u),
				Z: tube * math.Sin(v),
			})
		}
	}

	stride := uint32(tubularSegments + 1)
	for j := uint32(1); j <= uint32(radialSegments); j++ {
		for i := uint32(1); i <= uint32(tubularSegments); i++ {
			a := stride*j + i - 1
			b := stride*(j-1) + i - 1
			c := stride*(j-1) + i
			d := stride*j + i
			m.Indices = append(m.Indices, a, b, d, b, c, d)
		}
	}
	return m, nil
}
