package lion

import (
	"fmt"

	"github.com/Faultbox/lionfan/internal/anim"
	"github.com/Faultbox/lionfan/internal/engine/geometry"
	"github.com/Faultbox/lionfan/internal/engine/scene"
	"github.com/Faultbox/lionfan/pkg/math"
)

// FanDepth is the default z of the plane the fan moves in.
const FanDepth float32 = 350

// FanLookAt is the default point the fan faces.
var FanLookAt = math.Vec3{Y: 80, Z: 60}

// Fan is the fan prop's scene graph plus its dynamics.
type Fan struct {
	Root     *scene.Node
	Dynamics *anim.Fan

	propeller *scene.Node
	depth     float32
	lookAt    math.Vec3
}

// NewFan builds a fan that moves in the plane z = depth and always faces
// lookAt.
func NewFan(depth float32, lookAt math.Vec3) *Fan {
	f := &Fan{
		Root:     scene.NewGroup("fan"),
		Dynamics: anim.NewFan(),
		depth:    depth,
		lookAt:   lookAt,
	}
	f.Root.Position.Z = depth

	core := scene.NewMesh("fan-core", geometry.NewBox(10, 10, 20), geometry.Grey)

	f.propeller = scene.NewGroup("propeller")
	blade := geometry.NewBox(10, 30, 2).Translate(0, 25, 0)
	for i, rot := range []float32{0, math.Pi / 2, math.Pi, -math.Pi / 2} {
		n := scene.NewMesh(fmt.Sprintf("blade-%d", i), blade, geometry.Red)
		n.Position.Z = 15
		n.Rotation.Z = rot
		f.propeller.Add(n)
	}

	hub := scene.NewMesh("fan-hub", geometry.NewBox(10, 10, 3), geometry.Yellow)
	hub.Position.Z = 15

	f.Root.Add(core, f.propeller, hub)
	f.Root.LookAt(lookAt)
	return f
}

// SetBlowing switches the fan on or off.
func (f *Fan) SetBlowing(on bool) {
	f.Dynamics.SetBlowing(on)
}

// Update advances the fan one frame: it trails the pointer, turns to face
// its look-at point and spins the propeller.
func (f *Fan) Update(pointer math.Vec2) {
	f.Dynamics.Update(pointer)

	pos := f.Dynamics.Position()
	f.Root.Position = math.Vec3{X: pos.X, Y: pos.Y, Z: f.depth}
	f.Root.LookAt(f.lookAt)
	f.propeller.Rotation.Z = f.Dynamics.PropellerRotZ
}

// Propeller returns the propeller group.
func (f *Fan) Propeller() *scene.Node {
	return f.propeller
}
