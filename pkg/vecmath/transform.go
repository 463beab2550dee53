package vecmath

import "math"

// Translation returns a matrix translating by v.
func Translation(v Vec3) Mat4 {
	m := Identity()
	m[12] = v[0]
	m[13] = v[1]
	m[14] = v[2]
	return m
}

// TranslationScalar translates by s along every axis.
func TranslationScalar(s float64) Mat4 {
	return Translation(Vec3{s, s, s})
}

// Scaling returns a matrix scaling by v.
func Scaling(v Vec3) Mat4 {
	m := Identity()
	m[0] = v[0]
	m[5] = v[1]
	m[10] = v[2]
	return m
}

// ScalingScalar scales uniformly by s.
func ScalingScalar(s float64) Mat4 {
	return Scaling(Vec3{s, s, s})
}

// Rotation returns a rotation of angle radians about axis, which need not be
// unit length.
func Rotation(angle float64, axis Vec3) Mat4 {
	ax := axis.Vec4(0).Normalize()
	s, c := math.Sincos(angle)
	q := 1.0 - c

	x, y, z := ax[0], ax[1], ax[2]
	xy, yz, zx := x*y, y*z, z*x
	xs, ys, zs := x*s, y*s, z*s

	return Mat4{
		q*x*x + c, q*xy + zs, q*zx - ys, 0,
		q*xy - zs, q*y*y + c, q*yz + xs, 0,
		q*zx + ys, q*yz - xs, q*z*z + c, 0,
		0, 0, 0, 1,
	}
}

// LookAt returns a view matrix for an eye at eye looking at target.
func LookAt(eye, target, up Vec3) Mat4 {
	var m Mat4
	m.SetLookAt(eye, target, up)
	return m
}

// SetLookAt stores the view matrix for eye, target and up in d and returns d.
//
// If eye equals target exactly, d becomes the identity. If up is parallel to
// the view direction the right and up axes come out as zero vectors; no
// attempt is made to pick another up.
func (d *Mat4) SetLookAt(eye, target, up Vec3) *Mat4 {
	if eye == target {
		*d = Identity()
		return d
	}

	z := eye.Sub(target)
	z = z.MulScalar(1 / z.Len())

	x := up.Cross(z)
	if l := x.Len(); l == 0 {
		x = Vec3{}
	} else {
		x = x.MulScalar(1 / l)
	}

	y := z.Cross(x)
	if l := y.Len(); l == 0 {
		y = Vec3{}
	} else {
		y = y.MulScalar(1 / l)
	}

	*d = Mat4{
		x[0], y[0], z[0], 0,
		x[1], y[1], z[1], 0,
		x[2], y[2], z[2], 0,
		-x.Dot(eye), -y.Dot(eye), -z.Dot(eye), 1,
	}
	return d
}

// Ortho returns an orthographic projection mapping the given box to NDC.
func Ortho(left, right, bottom, top, near, far float64) Mat4 {
	rl := right - left
	tb := top - bottom
	fn := far - near
	return Mat4{
		2 / rl, 0, 0, 0,
		0, 2 / tb, 0, 0,
		0, 0, -2 / fn, 0,
		-(left + right) / rl, -(top + bottom) / tb, -(far + near) / fn, 1,
	}
}

// Frustum returns a perspective projection for the given clip planes.
func Frustum(left, right, bottom, top, near, far float64) Mat4 {
	rl := right - left
	tb := top - bottom
	fn := far - near
	return Mat4{
		near * 2 / rl, 0, 0, 0,
		0, near * 2 / tb, 0, 0,
		(right + left) / rl, (top + bottom) / tb, -(far + near) / fn, -1,
		0, 0, -(far * near * 2) / fn, 0,
	}
}

// FrustumExtents is Frustum with the near-plane corner extents packed into
// min and max: x and y bound the near plane, z holds near and far.
func FrustumExtents(min, max Vec3) Mat4 {
	return Frustum(min[0], max[0], min[1], max[1], min[2], max[2])
}

// Perspective returns a projection for a vertical field of view fovy in
// radians.
func Perspective(fovy, aspect, near, far float64) Mat4 {
	top := near * math.Tan(fovy/2)
	right := top * aspect
	return FrustumExtents(Vec3{-right, -top, near}, Vec3{right, top, far})
}
