// Package camera provides the fixed perspective camera the scene is viewed
// through.
package camera

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/lionfan/pkg/math"
)

// Camera is a perspective camera on the +Z axis looking at Target.
type Camera struct {
	FOV       float32 // vertical, degrees
	Near, Far float32

	Position math.Vec3
	Target   math.Vec3

	aspect float32
}

// New returns a camera distance units in front of the origin, looking at it.
func New(fov, near, far, distance float32) *Camera {
	return &Camera{
		FOV:      fov,
		Near:     near,
		Far:      far,
		Position: math.Vec3{Z: distance},
		aspect:   1,
	}
}

// SetAspect updates the aspect ratio from the viewport size.
func (c *Camera) SetAspect(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	c.aspect = float32(width) / float32(height)
}

// Aspect returns the current width/height ratio.
func (c *Camera) Aspect() float32 {
	return c.aspect
}

// ViewMatrix returns the world-to-camera transform.
func (c *Camera) ViewMatrix() math.Mat4 {
	return math.Mat4(mgl32.LookAtV(vec(c.Position), vec(c.Target), mgl32.Vec3{0, 1, 0}))
}

// ProjectionMatrix returns the perspective projection.
func (c *Camera) ProjectionMatrix() math.Mat4 {
	return math.Mat4(mgl32.Perspective(mgl32.DegToRad(c.FOV), c.aspect, c.Near, c.Far))
}

// ViewProjection returns projection * view.
func (c *Camera) ViewProjection() math.Mat4 {
	return c.ProjectionMatrix().Mul(c.ViewMatrix())
}

// Project maps a world point to normalized device coordinates.
func (c *Camera) Project(p math.Vec3) math.Vec3 {
	return c.ViewProjection().TransformVec3(p)
}

func vec(v math.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{v.X, v.Y, v.Z}
}
