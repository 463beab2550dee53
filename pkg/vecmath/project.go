package vecmath

// TransformPoint applies m to p as a homogeneous point with w=1. The w of
// the result is kept so callers can perform a perspective divide.
func (m Mat4) TransformPoint(p Vec3) Vec4 {
	p0, p1, p2 := p[0], p[1], p[2]
	return Vec4{
		m[0]*p0 + m[4]*p1 + m[8]*p2 + m[12],
		m[1]*p0 + m[5]*p1 + m[9]*p2 + m[13],
		m[2]*p0 + m[6]*p1 + m[10]*p2 + m[14],
		m[3]*p0 + m[7]*p1 + m[11]*p2 + m[15],
	}
}

// TransformVec3 applies the upper-left 3x3 of m to the direction v,
// ignoring translation.
func (m Mat4) TransformVec3(v Vec3) Vec3 {
	v0, v1, v2 := v[0], v[1], v[2]
	return Vec3{
		m[0]*v0 + m[4]*v1 + m[8]*v2,
		m[1]*v0 + m[5]*v1 + m[9]*v2,
		m[2]*v0 + m[6]*v1 + m[10]*v2,
	}
}

// TransformVec4 returns m·v.
func (m Mat4) TransformVec4(v Vec4) Vec4 {
	v0, v1, v2, v3 := v[0], v[1], v[2], v[3]
	return Vec4{
		m[0]*v0 + m[4]*v1 + m[8]*v2 + m[12]*v3,
		m[1]*v0 + m[5]*v1 + m[9]*v2 + m[13]*v3,
		m[2]*v0 + m[6]*v1 + m[10]*v2 + m[14]*v3,
		m[3]*v0 + m[7]*v1 + m[11]*v2 + m[15]*v3,
	}
}

// TransformPoints applies m to every point and returns the homogeneous
// results in the same order.
func (m Mat4) TransformPoints(points []Vec3) []Vec4 {
	return TransformPointsInto(make([]Vec4, len(points)), m, points)
}

// TransformPointsInto writes m applied to points into dst and returns
// dst[:len(points)]. dst must have at least len(points) elements.
func TransformPointsInto(dst []Vec4, m Mat4, points []Vec3) []Vec4 {
	m0, m1, m2, m3 := m[0], m[1], m[2], m[3]
	m4, m5, m6, m7 := m[4], m[5], m[6], m[7]
	m8, m9, m10, m11 := m[8], m[9], m[10], m[11]
	m12, m13, m14, m15 := m[12], m[13], m[14], m[15]

	dst = dst[:len(points)]
	for i, p := range points {
		p0, p1, p2 := p[0], p[1], p[2]
		dst[i] = Vec4{
			m0*p0 + m4*p1 + m8*p2 + m12,
			m1*p0 + m5*p1 + m9*p2 + m13,
			m2*p0 + m6*p1 + m10*p2 + m14,
			m3*p0 + m7*p1 + m11*p2 + m15,
		}
	}
	return dst
}

// Project performs the perspective divide, returning (x/w, y/w, z/w, 1).
// A zero w produces non-finite components.
func (v Vec4) Project() Vec4 {
	f := 1.0 / v[3]
	return Vec4{v[0] * f, v[1] * f, v[2] * f, 1}
}
