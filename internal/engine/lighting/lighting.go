// Package lighting describes the scene's light rig and uploads it as shader
// uniforms.
package lighting

import (
	"github.com/Faultbox/lionfan/pkg/math"
)

// Hemisphere is an ambient light blending a sky and a ground colour by the
// surface normal's Y.
type Hemisphere struct {
	Sky, Ground [3]float32
	Intensity   float32
}

// Directional is a light arriving from Position toward the origin.
type Directional struct {
	Position  math.Vec3
	Color     [3]float32
	Intensity float32
}

// Direction returns the unit vector from the surface toward the light.
func (d Directional) Direction() math.Vec3 {
	return d.Position.Normalize()
}

// Rig is the complete light setup.
type Rig struct {
	Ambient Hemisphere
	// Key is the main light, Back the dimmer rim light.
	Key, Back Directional
}

var white = [3]float32{1, 1, 1}

// Default returns white hemisphere light at 0.5, a key light at 0.8 from
// (200, 200, 200) and a back light at 0.4 from (-100, 200, 50).
//
// The key light is a spot in the original scene setup. Its cone is wide
// enough to cover the whole lion, so it is modelled as directional.
func Default() Rig {
	return Rig{
		Ambient: Hemisphere{Sky: white, Ground: white, Intensity: 0.5},
		Key:     Directional{Position: math.Vec3{X: 200, Y: 200, Z: 200}, Color: white, Intensity: 0.8},
		Back:    Directional{Position: math.Vec3{X: -100, Y: 200, Z: 50}, Color: white, Intensity: 0.4},
	}
}

// Shade returns the light reaching a surface with the given unit normal,
// per channel. It mirrors the fragment shader and is used to check it.
func (r Rig) Shade(normal math.Vec3) [3]float32 {
	t := (normal.Y + 1) / 2
	var out [3]float32
	for i := range out {
		amb := (r.Ambient.Ground[i] + (r.Ambient.Sky[i]-r.Ambient.Ground[i])*t) * r.Ambient.Intensity
		key := math.Clamp(normal.Dot(r.Key.Direction()), 0, 1) * r.Key.Intensity * r.Key.Color[i]
		back := math.Clamp(normal.Dot(r.Back.Direction()), 0, 1) * r.Back.Intensity * r.Back.Color[i]
		out[i] = amb + key + back
	}
	return out
}
