package math

import "math"

// RotateEuler returns the rotation for Euler angles in XYZ order: the
// product Rx(r.X) * Ry(r.Y) * Rz(r.Z).
func RotateEuler(r Vec3) Mat4 {
	a, b := Cos(r.X), Sin(r.X)
	c, d := Cos(r.Y), Sin(r.Y)
	e, f := Cos(r.Z), Sin(r.Z)
	ae, af, be, bf := a*e, a*f, b*e, b*f

	return Mat4{
		c * e, af + be*d, bf - ae*d, 0,
		-c * f, ae - bf*d, be + af*d, 0,
		d, -b * c, a * c, 0,
		0, 0, 0, 1,
	}
}

// Compose builds a local transform from position, XYZ Euler rotation and scale
// (T * R * S).
func Compose(position, rotation, scale Vec3) Mat4 {
	m := RotateEuler(rotation)
	for i, s := range [3]float32{scale.X, scale.Y, scale.Z} {
		m[i*4] *= s
		m[i*4+1] *= s
		m[i*4+2] *= s
	}
	m[12], m[13], m[14] = position.X, position.Y, position.Z
	return m
}

// Col returns the first three components of column i.
func (m Mat4) Col(i int) Vec3 {
	return Vec3{m[i*4], m[i*4+1], m[i*4+2]}
}

// Position returns the translation part of the matrix.
func (m Mat4) Position() Vec3 {
	return m.Col(3)
}

// EulerFromMat4 extracts XYZ Euler angles from the rotation part of m.
// The upper 3x3 block must be unscaled.
func EulerFromMat4(m Mat4) Vec3 {
	m11, m12, m13 := float64(m[0]), float64(m[4]), float64(m[8])
	m22, m23 := float64(m[5]), float64(m[9])
	m32, m33 := float64(m[6]), float64(m[10])

	var e Vec3
	e.Y = float32(math.Asin(math.Max(-1, math.Min(1, m13))))
	if math.Abs(m13) < 0.9999999 {
		e.X = float32(math.Atan2(-m23, m33))
		e.Z = float32(math.Atan2(-m12, m11))
	} else {
		// Gimbal lock: fold Z into X.
		e.X = float32(math.Atan2(m32, m22))
	}
	return e
}

// FaceTowards returns a rotation matrix whose +Z axis points from eye to
// target, keeping +Y as close to up as possible. Coincident points face +Z.
func FaceTowards(eye, target, up Vec3) Mat4 {
	z := target.Sub(eye)
	if z.LengthSq() == 0 {
		z.Z = 1
	}
	z = z.Normalize()

	x := up.Cross(z)
	if x.LengthSq() == 0 {
		// up is parallel to z; nudge z off the axis.
		if up.Z == 1 || up.Z == -1 {
			z.X += 0.0001
		} else {
			z.Z += 0.0001
		}
		z = z.Normalize()
		x = up.Cross(z)
	}
	x = x.Normalize()
	y := z.Cross(x)

	return Mat4{
		x.X, x.Y, x.Z, 0,
		y.X, y.Y, y.Z, 0,
		z.X, z.Y, z.Z, 0,
		0, 0, 0, 1,
	}
}

// Transpose returns the transposed matrix. For a pure rotation this is its
// inverse.
func (m Mat4) Transpose() Mat4 {
	var t Mat4
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			t[row*4+col] = m[col*4+row]
		}
	}
	return t
}

// Rotation returns the rotation part of m with any scale removed.
func (m Mat4) Rotation() Mat4 {
	x, y, z := m.Col(0).Normalize(), m.Col(1).Normalize(), m.Col(2).Normalize()
	return Mat4{
		x.X, x.Y, x.Z, 0,
		y.X, y.Y, y.Z, 0,
		z.X, z.Y, z.Z, 0,
		0, 0, 0, 1,
	}
}
