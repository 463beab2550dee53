// Package vecmath provides fixed-size vector and 4x4 matrix math for view
// and projection transforms.
//
// All types are value arrays of float64. Methods never mutate their receiver;
// the Set* methods on *Mat4 write into a caller-owned destination instead.
// Degenerate input (zero-length vectors, singular matrices, zero w) is not
// reported as an error: results simply contain NaN or Inf.
package vecmath

import "math"

// Vec2 is a two-component vector.
type Vec2 [2]float64

// Vec3 is a three-component vector or point.
type Vec3 [3]float64

// Vec4 is a four-component vector, usually a homogeneous point or direction.
type Vec4 [4]float64

// Add returns v + w.
func (v Vec2) Add(w Vec2) Vec2 {
	return Vec2{v[0] + w[0], v[1] + w[1]}
}

// Sub returns v - w.
func (v Vec2) Sub(w Vec2) Vec2 {
	return Vec2{v[0] - w[0], v[1] - w[1]}
}

// Mul returns the element-wise product of v and w.
func (v Vec2) Mul(w Vec2) Vec2 {
	return Vec2{v[0] * w[0], v[1] * w[1]}
}

// Div returns the element-wise quotient of v and w.
func (v Vec2) Div(w Vec2) Vec2 {
	return Vec2{v[0] / w[0], v[1] / w[1]}
}

// MulScalar returns v scaled by s.
func (v Vec2) MulScalar(s float64) Vec2 {
	return Vec2{v[0] * s, v[1] * s}
}

// DivScalar returns v divided by s.
func (v Vec2) DivScalar(s float64) Vec2 {
	return Vec2{v[0] / s, v[1] / s}
}

// AddScalar adds s to every component of v.
func (v Vec2) AddScalar(s float64) Vec2 {
	return Vec2{v[0] + s, v[1] + s}
}

// SubScalar subtracts s from every component of v.
func (v Vec2) SubScalar(s float64) Vec2 {
	return Vec2{v[0] - s, v[1] - s}
}

// ScalarSub returns s - v per component.
func (v Vec2) ScalarSub(s float64) Vec2 {
	return Vec2{s - v[0], s - v[1]}
}

// ScalarDiv returns s / v per component.
func (v Vec2) ScalarDiv(s float64) Vec2 {
	return Vec2{s / v[0], s / v[1]}
}

// Negate returns -v.
func (v Vec2) Negate() Vec2 {
	return Vec2{-v[0], -v[1]}
}

// Dot returns the dot product of v and w.
func (v Vec2) Dot(w Vec2) float64 {
	return v[0]*w[0] + v[1]*w[1]
}

// SqLen returns the squared length of v.
func (v Vec2) SqLen() float64 {
	return v.Dot(v)
}

// Len returns the length of v.
func (v Vec2) Len() float64 {
	return math.Sqrt(v.SqLen())
}

// Normalize returns v scaled to unit length.
func (v Vec2) Normalize() Vec2 {
	return v.MulScalar(1.0 / v.Len())
}

// Add returns v + w.
func (v Vec3) Add(w Vec3) Vec3 {
	return Vec3{v[0] + w[0], v[1] + w[1], v[2] + w[2]}
}

// AddScalar adds s to every component of v.
func (v Vec3) AddScalar(s float64) Vec3 {
	return Vec3{v[0] + s, v[1] + s, v[2] + s}
}

// Sub returns v - w.
func (v Vec3) Sub(w Vec3) Vec3 {
	return Vec3{v[0] - w[0], v[1] - w[1], v[2] - w[2]}
}

// SubScalar subtracts s from every component of v.
func (v Vec3) SubScalar(s float64) Vec3 {
	return Vec3{v[0] - s, v[1] - s, v[2] - s}
}

// ScalarSub returns s - v per component.
func (v Vec3) ScalarSub(s float64) Vec3 {
	return Vec3{s - v[0], s - v[1], s - v[2]}
}

// Mul returns the element-wise product of v and w.
func (v Vec3) Mul(w Vec3) Vec3 {
	return Vec3{v[0] * w[0], v[1] * w[1], v[2] * w[2]}
}

// MulScalar returns v scaled by s.
func (v Vec3) MulScalar(s float64) Vec3 {
	return Vec3{v[0] * s, v[1] * s, v[2] * s}
}

// Div returns the element-wise quotient of v and w.
func (v Vec3) Div(w Vec3) Vec3 {
	return Vec3{v[0] / w[0], v[1] / w[1], v[2] / w[2]}
}

// DivScalar returns v divided by s.
func (v Vec3) DivScalar(s float64) Vec3 {
	return Vec3{v[0] / s, v[1] / s, v[2] / s}
}

// ScalarDiv returns s / v per component.
func (v Vec3) ScalarDiv(s float64) Vec3 {
	return Vec3{s / v[0], s / v[1], s / v[2]}
}

// Rcp returns the per-component reciprocal of v.
func (v Vec3) Rcp() Vec3 {
	return v.ScalarDiv(1.0)
}

// Negate returns -v.
func (v Vec3) Negate() Vec3 {
	return Vec3{-v[0], -v[1], -v[2]}
}

// Dot returns the dot product of v and w.
func (v Vec3) Dot(w Vec3) float64 {
	return v[0]*w[0] + v[1]*w[1] + v[2]*w[2]
}

// Cross returns v × w.
func (v Vec3) Cross(w Vec3) Vec3 {
	return Vec3{
		v[1]*w[2] - v[2]*w[1],
		v[2]*w[0] - v[0]*w[2],
		v[0]*w[1] - v[1]*w[0],
	}
}

// SqLen returns the squared length of v.
func (v Vec3) SqLen() float64 {
	return v.Dot(v)
}

// Len returns the length of v.
func (v Vec3) Len() float64 {
	return math.Sqrt(v.SqLen())
}

// Normalize returns v scaled to unit length. A zero vector yields NaN
// components; check Len first when that matters.
func (v Vec3) Normalize() Vec3 {
	return v.MulScalar(1.0 / v.Len())
}

// Vec4 extends v with the given w.
func (v Vec3) Vec4(w float64) Vec4 {
	return Vec4{v[0], v[1], v[2], w}
}

// Add returns v + w.
func (v Vec4) Add(w Vec4) Vec4 {
	return Vec4{v[0] + w[0], v[1] + w[1], v[2] + w[2], v[3] + w[3]}
}

// AddScalar adds s to every component of v.
func (v Vec4) AddScalar(s float64) Vec4 {
	return Vec4{v[0] + s, v[1] + s, v[2] + s, v[3] + s}
}

// Sub returns v - w.
func (v Vec4) Sub(w Vec4) Vec4 {
	return Vec4{v[0] - w[0], v[1] - w[1], v[2] - w[2], v[3] - w[3]}
}

// SubScalar subtracts s from every component of v.
func (v Vec4) SubScalar(s float64) Vec4 {
	return Vec4{v[0] - s, v[1] - s, v[2] - s, v[3] - s}
}

// ScalarSub returns s - v per component.
func (v Vec4) ScalarSub(s float64) Vec4 {
	return Vec4{s - v[0], s - v[1], s - v[2], s - v[3]}
}

// Mul returns the element-wise product of v and w.
func (v Vec4) Mul(w Vec4) Vec4 {
	return Vec4{v[0] * w[0], v[1] * w[1], v[2] * w[2], v[3] * w[3]}
}

// MulScalar returns v scaled by s.
func (v Vec4) MulScalar(s float64) Vec4 {
	return Vec4{v[0] * s, v[1] * s, v[2] * s, v[3] * s}
}

// Div returns the element-wise quotient of v and w.
func (v Vec4) Div(w Vec4) Vec4 {
	return Vec4{v[0] / w[0], v[1] / w[1], v[2] / w[2], v[3] / w[3]}
}

// DivScalar returns v divided by s.
func (v Vec4) DivScalar(s float64) Vec4 {
	return Vec4{v[0] / s, v[1] / s, v[2] / s, v[3] / s}
}

// ScalarDiv returns s / v per component.
func (v Vec4) ScalarDiv(s float64) Vec4 {
	return Vec4{s / v[0], s / v[1], s / v[2], s / v[3]}
}

// Negate returns -v.
func (v Vec4) Negate() Vec4 {
	return Vec4{-v[0], -v[1], -v[2], -v[3]}
}

// Dot returns the four-component dot product of v and w.
func (v Vec4) Dot(w Vec4) float64 {
	return v[0]*w[0] + v[1]*w[1] + v[2]*w[2] + v[3]*w[3]
}

// Cross3 returns the cross product of the xyz parts of v and w with w=0.
func (v Vec4) Cross3(w Vec4) Vec4 {
	return Vec4{
		v[1]*w[2] - v[2]*w[1],
		v[2]*w[0] - v[0]*w[2],
		v[0]*w[1] - v[1]*w[0],
		0,
	}
}

// SqLen returns the squared length of v.
func (v Vec4) SqLen() float64 {
	return v.Dot(v)
}

// Len returns the length of v.
func (v Vec4) Len() float64 {
	return math.Sqrt(v.SqLen())
}

// Normalize returns v scaled to unit length.
func (v Vec4) Normalize() Vec4 {
	return v.MulScalar(1.0 / v.Len())
}

// Vec3 drops the w component.
func (v Vec4) Vec3() Vec3 {
	return Vec3{v[0], v[1], v[2]}
}

// LerpVec3 interpolates between p1 at time t1 and p2 at time t2.
func LerpVec3(t, t1, t2 float64, p1, p2 Vec3) Vec3 {
	f := (t - t1) / (t2 - t1)
	return Vec3{
		p1[0] + f*(p2[0]-p1[0]),
		p1[1] + f*(p2[1]-p1[1]),
		p1[2] + f*(p2[2]-p1[2]),
	}
}

// IsFinite reports whether every component of v is neither NaN nor Inf.
func (v Vec4) IsFinite() bool {
	for _, c := range v {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}
