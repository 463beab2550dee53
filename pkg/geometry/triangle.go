package geometry

import "github.com/philipparndt/viewmath/pkg/vecmath"

// Triangle represents a triangular facet in 3D space
type Triangle struct {
	V1, V2, V3 vecmath.Vec3
}

// Normal computes the unit face normal, wound V1, V2, V3.
func (t Triangle) Normal() vecmath.Vec3 {
	edge1 := t.V2.Sub(t.V1)
	edge2 := t.V3.Sub(t.V1)
	return edge1.Cross(edge2).Normalize()
}

// Area returns the surface area of the triangle
func (t Triangle) Area() float64 {
	edge1 := t.V2.Sub(t.V1)
	edge2 := t.V3.Sub(t.V1)
	return edge1.Cross(edge2).Len() / 2.0
}

// EdgeLengths returns the lengths of all three edges
func (t Triangle) EdgeLengths() [3]float64 {
	return [3]float64{
		t.V2.Sub(t.V1).Len(),
		t.V3.Sub(t.V2).Len(),
		t.V1.Sub(t.V3).Len(),
	}
}

// Perimeter returns the total length of all edges
func (t Triangle) Perimeter() float64 {
	lengths := t.EdgeLengths()
	return lengths[0] + lengths[1] + lengths[2]
}

// Center returns the centroid of the triangle
func (t Triangle) Center() vecmath.Vec3 {
	return t.V1.Add(t.V2).Add(t.V3).DivScalar(3.0)
}

// Transform returns the triangle with m applied to each vertex.
func (t Triangle) Transform(m vecmath.Mat4) Triangle {
	return Triangle{
		V1: m.TransformPoint(t.V1).Project().Vec3(),
		V2: m.TransformPoint(t.V2).Project().Vec3(),
		V3: m.TransformPoint(t.V3).Project().Vec3(),
	}
}
