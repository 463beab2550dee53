package geometry

import (
	"math"

	"github.com/philipparndt/viewmath/pkg/vecmath"
)

// Boundary is an axis-aligned box given by its per-axis extents.
// Callers keep min <= max on every axis; nothing here checks it.
type Boundary struct {
	XMin float64 `json:"xmin" yaml:"xmin" toml:"xmin"`
	XMax float64 `json:"xmax" yaml:"xmax" toml:"xmax"`
	YMin float64 `json:"ymin" yaml:"ymin" toml:"ymin"`
	YMax float64 `json:"ymax" yaml:"ymax" toml:"ymax"`
	ZMin float64 `json:"zmin" yaml:"zmin" toml:"zmin"`
	ZMax float64 `json:"zmax" yaml:"zmax" toml:"zmax"`
}

// NewBoundary returns an empty boundary that any call to Extend will replace.
func NewBoundary() Boundary {
	return Boundary{
		XMin: math.MaxFloat64, XMax: -math.MaxFloat64,
		YMin: math.MaxFloat64, YMax: -math.MaxFloat64,
		ZMin: math.MaxFloat64, ZMax: -math.MaxFloat64,
	}
}

// BoundaryFromMinMax builds a boundary from its two corners.
func BoundaryFromMinMax(min, max vecmath.Vec3) Boundary {
	return Boundary{
		XMin: min[0], XMax: max[0],
		YMin: min[1], YMax: max[1],
		ZMin: min[2], ZMax: max[2],
	}
}

// BoundaryFromPositions computes the boundary of a flat x,y,z position array.
// Trailing values that do not form a full triple are ignored.
func BoundaryFromPositions(positions []float64) Boundary {
	b := NewBoundary()
	for i := 0; i+2 < len(positions); i += 3 {
		b.Extend(vecmath.Vec3{positions[i], positions[i+1], positions[i+2]})
	}
	return b
}

// Extend expands the boundary to include a point
func (b *Boundary) Extend(p vecmath.Vec3) {
	b.XMin = math.Min(b.XMin, p[0])
	b.XMax = math.Max(b.XMax, p[0])
	b.YMin = math.Min(b.YMin, p[1])
	b.YMax = math.Max(b.YMax, p[1])
	b.ZMin = math.Min(b.ZMin, p[2])
	b.ZMax = math.Max(b.ZMax, p[2])
}

// Min returns the minimum corner.
func (b Boundary) Min() vecmath.Vec3 {
	return vecmath.Vec3{b.XMin, b.YMin, b.ZMin}
}

// Max returns the maximum corner.
func (b Boundary) Max() vecmath.Vec3 {
	return vecmath.Vec3{b.XMax, b.YMax, b.ZMax}
}

// Size returns the dimensions of the boundary
func (b Boundary) Size() vecmath.Vec3 {
	return b.Max().Sub(b.Min())
}

// Center returns the component-wise midpoint of the boundary.
func (b Boundary) Center() vecmath.Vec3 {
	return vecmath.Vec3{
		(b.XMax + b.XMin) * 0.5,
		(b.YMax + b.YMin) * 0.5,
		(b.ZMax + b.ZMin) * 0.5,
	}
}

// Diagonal returns the length of the boundary diagonal
func (b Boundary) Diagonal() float64 {
	return math.Abs(b.Size().Len())
}

// Volume returns the volume of the boundary
func (b Boundary) Volume() float64 {
	size := b.Size()
	return size[0] * size[1] * size[2]
}

// AxisBox returns the eight corners of the boundary.
func (b Boundary) AxisBox() AxisBox3 {
	return NewAxisBox3(b.Min(), b.Max())
}

// AxisBox3 holds the eight corners of an axis-aligned box. Corners 0-3 walk
// the min-z face counter-clockwise in x/y starting at min; corners 4-7
// repeat that walk on the max-z face.
type AxisBox3 [8]vecmath.Vec3

// NewAxisBox3 returns the corners of the box spanned by min and max.
func NewAxisBox3(min, max vecmath.Vec3) AxisBox3 {
	return AxisBox3{
		{min[0], min[1], min[2]},
		{max[0], min[1], min[2]},
		{max[0], max[1], min[2]},
		{min[0], max[1], min[2]},

		{min[0], min[1], max[2]},
		{max[0], min[1], max[2]},
		{max[0], max[1], max[2]},
		{min[0], max[1], max[2]},
	}
}

// Boundary recomputes the extents covered by the corners. It is useful
// after the corners have been transformed.
func (a AxisBox3) Boundary() Boundary {
	b := NewBoundary()
	for _, v := range a {
		b.Extend(v)
	}
	return b
}

// Transform applies m to every corner, dividing by w.
func (a AxisBox3) Transform(m vecmath.Mat4) AxisBox3 {
	var out AxisBox3
	for i, h := range m.TransformPoints(a[:]) {
		out[i] = h.Project().Vec3()
	}
	return out
}
