package vecmath

import "math"

// Mat4 is a 4x4 matrix stored in column-major order.
//
//	| 0  4  8  12 |
//	| 1  5  9  13 |
//	| 2  6  10 14 |
//	| 3  7  11 15 |
type Mat4 [16]float64

// Identity returns the identity matrix.
func Identity() Mat4 {
	return Diagonal(Vec4{1, 1, 1, 1})
}

// Diagonal returns a matrix with v on the diagonal and zeros elsewhere.
func Diagonal(v Vec4) Mat4 {
	return Mat4{
		v[0], 0, 0, 0,
		0, v[1], 0, 0,
		0, 0, v[2], 0,
		0, 0, 0, v[3],
	}
}

// DiagonalScalar returns s times the identity matrix.
func DiagonalScalar(s float64) Mat4 {
	return Diagonal(Vec4{s, s, s, s})
}

// Fill returns a matrix with every entry set to s.
func Fill(s float64) Mat4 {
	var m Mat4
	for i := range m {
		m[i] = s
	}
	return m
}

// Zeros returns the all-zero matrix.
func Zeros() Mat4 {
	return Mat4{}
}

// Ones returns the all-ones matrix.
func Ones() Mat4 {
	return Fill(1)
}

// Mat3 returns the upper-left 3x3 submatrix, column-major.
func (m Mat4) Mat3() [9]float64 {
	return [9]float64{
		m[0], m[1], m[2],
		m[4], m[5], m[6],
		m[8], m[9], m[10],
	}
}

// IsIdentity reports whether m is exactly the identity matrix.
func (m Mat4) IsIdentity() bool {
	return m == Identity()
}

// IsFinite reports whether no entry of m is NaN or Inf.
func (m Mat4) IsFinite() bool {
	for _, c := range m {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}

// Negate returns -m.
func (m Mat4) Negate() Mat4 {
	for i := range m {
		m[i] = -m[i]
	}
	return m
}

// Add returns m + n.
func (m Mat4) Add(n Mat4) Mat4 {
	for i := range m {
		m[i] += n[i]
	}
	return m
}

// AddScalar adds s to every entry of m.
func (m Mat4) AddScalar(s float64) Mat4 {
	for i := range m {
		m[i] += s
	}
	return m
}

// Sub returns m - n.
func (m Mat4) Sub(n Mat4) Mat4 {
	for i := range m {
		m[i] -= n[i]
	}
	return m
}

// SubScalar subtracts s from every entry of m.
func (m Mat4) SubScalar(s float64) Mat4 {
	for i := range m {
		m[i] -= s
	}
	return m
}

// ScalarSub returns s - m per entry.
func (m Mat4) ScalarSub(s float64) Mat4 {
	for i := range m {
		m[i] = s - m[i]
	}
	return m
}

// MulScalar returns m scaled by s.
func (m Mat4) MulScalar(s float64) Mat4 {
	for i := range m {
		m[i] *= s
	}
	return m
}

// Mul returns the product m·n. Applied to a point, n acts first.
func (m Mat4) Mul(n Mat4) Mat4 {
	var d Mat4
	d.SetMul(&m, &n)
	return d
}

// SetMul stores a·b in d and returns d. d may alias a or b.
func (d *Mat4) SetMul(a, b *Mat4) *Mat4 {
	a00, a01, a02, a03 := a[0], a[1], a[2], a[3]
	a10, a11, a12, a13 := a[4], a[5], a[6], a[7]
	a20, a21, a22, a23 := a[8], a[9], a[10], a[11]
	a30, a31, a32, a33 := a[12], a[13], a[14], a[15]

	b00, b01, b02, b03 := b[0], b[1], b[2], b[3]
	b10, b11, b12, b13 := b[4], b[5], b[6], b[7]
	b20, b21, b22, b23 := b[8], b[9], b[10], b[11]
	b30, b31, b32, b33 := b[12], b[13], b[14], b[15]

	d[0] = b00*a00 + b01*a10 + b02*a20 + b03*a30
	d[1] = b00*a01 + b01*a11 + b02*a21 + b03*a31
	d[2] = b00*a02 + b01*a12 + b02*a22 + b03*a32
	d[3] = b00*a03 + b01*a13 + b02*a23 + b03*a33
	d[4] = b10*a00 + b11*a10 + b12*a20 + b13*a30
	d[5] = b10*a01 + b11*a11 + b12*a21 + b13*a31
	d[6] = b10*a02 + b11*a12 + b12*a22 + b13*a32
	d[7] = b10*a03 + b11*a13 + b12*a23 + b13*a33
	d[8] = b20*a00 + b21*a10 + b22*a20 + b23*a30
	d[9] = b20*a01 + b21*a11 + b22*a21 + b23*a31
	d[10] = b20*a02 + b21*a12 + b22*a22 + b23*a32
	d[11] = b20*a03 + b21*a13 + b22*a23 + b23*a33
	d[12] = b30*a00 + b31*a10 + b32*a20 + b33*a30
	d[13] = b30*a01 + b31*a11 + b32*a21 + b33*a31
	d[14] = b30*a02 + b31*a12 + b32*a22 + b33*a32
	d[15] = b30*a03 + b31*a13 + b32*a23 + b33*a33
	return d
}

// MulVec4 returns m·v.
func (m Mat4) MulVec4(v Vec4) Vec4 {
	return m.TransformVec4(v)
}

// Transpose returns the transpose of m.
func (m Mat4) Transpose() Mat4 {
	var d Mat4
	d.SetTranspose(&m)
	return d
}

// SetTranspose stores the transpose of n in d and returns d.
// When n and d are the same matrix it is transposed in place.
func (d *Mat4) SetTranspose(n *Mat4) *Mat4 {
	m4, m14, m8 := n[4], n[14], n[8]
	m13, m12, m9 := n[13], n[12], n[9]
	if d == n {
		a01, a02, a03 := d[1], d[2], d[3]
		a12, a13 := d[6], d[7]
		a23 := d[11]
		d[1] = m4
		d[2] = m8
		d[3] = m12
		d[4] = a01
		d[6] = m9
		d[7] = m13
		d[8] = a02
		d[9] = a12
		d[11] = m14
		d[12] = a03
		d[13] = a13
		d[14] = a23
		return d
	}
	d[0] = n[0]
	d[1] = m4
	d[2] = m8
	d[3] = m12
	d[4] = n[1]
	d[5] = n[5]
	d[6] = m9
	d[7] = m13
	d[8] = n[2]
	d[9] = n[6]
	d[10] = n[10]
	d[11] = m14
	d[12] = n[3]
	d[13] = n[7]
	d[14] = n[11]
	d[15] = n[15]
	return d
}

// Trace returns the sum of the diagonal entries.
func (m Mat4) Trace() float64 {
	return m[0] + m[5] + m[10] + m[15]
}

// Determinant returns det(m) by full cofactor expansion.
func (m Mat4) Determinant() float64 {
	a00, a01, a02, a03 := m[0], m[1], m[2], m[3]
	a10, a11, a12, a13 := m[4], m[5], m[6], m[7]
	a20, a21, a22, a23 := m[8], m[9], m[10], m[11]
	a30, a31, a32, a33 := m[12], m[13], m[14], m[15]
	return a30*a21*a12*a03 - a20*a31*a12*a03 - a30*a11*a22*a03 + a10*a31*a22*a03 +
		a20*a11*a32*a03 - a10*a21*a32*a03 - a30*a21*a02*a13 + a20*a31*a02*a13 +
		a30*a01*a22*a13 - a00*a31*a22*a13 - a20*a01*a32*a13 + a00*a21*a32*a13 +
		a30*a11*a02*a23 - a10*a31*a02*a23 - a30*a01*a12*a23 + a00*a31*a12*a23 +
		a10*a01*a32*a23 - a00*a11*a32*a23 - a20*a11*a02*a33 + a10*a21*a02*a33 +
		a20*a01*a12*a33 - a00*a21*a12*a33 - a10*a01*a22*a33 + a00*a11*a22*a33
}

// Inverse returns the inverse of m. Whenever Determinant reports exactly 0
// every entry is non-finite. A nearly singular m whose rounded determinant
// is not 0 yields finite but meaningless entries; check Invertible first.
func (m Mat4) Inverse() Mat4 {
	var d Mat4
	d.SetInverse(&m)
	return d
}

// SetInverse stores the inverse of n in d and returns d. d may alias n.
func (d *Mat4) SetInverse(n *Mat4) *Mat4 {
	a00, a01, a02, a03 := n[0], n[1], n[2], n[3]
	a10, a11, a12, a13 := n[4], n[5], n[6], n[7]
	a20, a21, a22, a23 := n[8], n[9], n[10], n[11]
	a30, a31, a32, a33 := n[12], n[13], n[14], n[15]

	b00 := a00*a11 - a01*a10
	b01 := a00*a12 - a02*a10
	b02 := a00*a13 - a03*a10
	b03 := a01*a12 - a02*a11
	b04 := a01*a13 - a03*a11
	b05 := a02*a13 - a03*a12
	b06 := a20*a31 - a21*a30
	b07 := a20*a32 - a22*a30
	b08 := a20*a33 - a23*a30
	b09 := a21*a32 - a22*a31
	b10 := a21*a33 - a23*a31
	b11 := a22*a33 - a23*a32

	// Same rounding as Determinant, so det == 0 there means Inf here.
	invDet := 1 / n.Determinant()

	d[0] = (a11*b11 - a12*b10 + a13*b09) * invDet
	d[1] = (-a01*b11 + a02*b10 - a03*b09) * invDet
	d[2] = (a31*b05 - a32*b04 + a33*b03) * invDet
	d[3] = (-a21*b05 + a22*b04 - a23*b03) * invDet
	d[4] = (-a10*b11 + a12*b08 - a13*b07) * invDet
	d[5] = (a00*b11 - a02*b08 + a03*b07) * invDet
	d[6] = (-a30*b05 + a32*b02 - a33*b01) * invDet
	d[7] = (a20*b05 - a22*b02 + a23*b01) * invDet
	d[8] = (a10*b10 - a11*b08 + a13*b06) * invDet
	d[9] = (-a00*b10 + a01*b08 - a03*b06) * invDet
	d[10] = (a30*b04 - a31*b02 + a33*b00) * invDet
	d[11] = (-a20*b04 + a21*b02 - a23*b00) * invDet
	d[12] = (-a10*b09 + a11*b07 - a12*b06) * invDet
	d[13] = (a00*b09 - a01*b07 + a02*b06) * invDet
	d[14] = (-a30*b03 + a31*b01 - a32*b00) * invDet
	d[15] = (a20*b03 - a21*b01 + a22*b00) * invDet
	return d
}

// Invertible reports whether |det(m)| exceeds eps. It is a diagnostic for
// callers that want to avoid non-finite output from Inverse.
func (m Mat4) Invertible(eps float64) bool {
	det := m.Determinant()
	return !math.IsNaN(det) && math.Abs(det) > eps
}
