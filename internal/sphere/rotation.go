package sphere

import "math"

// RotationFromAxial builds the rotation matrix described by an axial
// vector: the axis direction is the rotation axis and the magnitude is the
// rotation angle in radians. The rotation sense is clockwise as seen from
// the origin looking along the axis, so the transpose expresses the
// inverse rotation. The zero vector yields the identity matrix; the axis
// direction is meaningless at zero angle and no normalization is
// attempted.
func RotationFromAxial(axis Vec3) Mat3 {
	x, y, z := axis.X, axis.Y, axis.Z
	phi := math.Sqrt(x*x + y*y + z*z)
	s := math.Sin(phi)
	c := math.Cos(phi)
	w := 1 - c

	if phi != 0 {
		x /= phi
		y /= phi
		z /= phi
	}

	return Mat3{
		{x*x*w + c, x*y*w + z*s, x*z*w - y*s},
		{x*y*w - z*s, y*y*w + c, y*z*w + x*s},
		{x*z*w + y*s, y*z*w - x*s, z*z*w + c},
	}
}
