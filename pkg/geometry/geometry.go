package geometry

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/philipparndt/viewmath/pkg/vecmath"
)

// Primitive names accepted by Geometry.
const (
	PrimitivePoints        = "points"
	PrimitiveLines         = "lines"
	PrimitiveLineLoop      = "line-loop"
	PrimitiveLineStrip     = "line-strip"
	PrimitiveTriangles     = "triangles"
	PrimitiveTriangleStrip = "triangle-strip"
	PrimitiveTriangleFan   = "triangle-fan"
)

var primitives = map[string]bool{
	PrimitivePoints:        true,
	PrimitiveLines:         true,
	PrimitiveLineLoop:      true,
	PrimitiveLineStrip:     true,
	PrimitiveTriangles:     true,
	PrimitiveTriangleStrip: true,
	PrimitiveTriangleFan:   true,
}

// Geometry is a flat vertex-array mesh together with its boundary.
type Geometry struct {
	ID        string
	Primitive string
	Positions []float64
	Normals   []float64
	UV        []float64
	Indices   []uint32
	Boundary  Boundary
}

// NewGeometry validates g, fills in defaults and computes its boundary.
// An empty ID is replaced by a random UUID, an empty primitive defaults to
// triangles, and a geometry without positions or indices becomes the
// default box.
func NewGeometry(g Geometry) (*Geometry, error) {
	if g.ID == "" {
		g.ID = uuid.NewString()
	}
	if g.Primitive == "" {
		g.Primitive = PrimitiveTriangles
	}
	if !primitives[g.Primitive] {
		return nil, fmt.Errorf("unknown primitive %q", g.Primitive)
	}

	if len(g.Positions) == 0 || len(g.Indices) == 0 {
		box := DefaultBox()
		box.ID = g.ID
		g = *box
	}

	if len(g.Positions)%3 != 0 {
		return nil, fmt.Errorf("positions length %d is not a multiple of 3", len(g.Positions))
	}
	vertexCount := uint32(len(g.Positions) / 3)
	for i, idx := range g.Indices {
		if idx >= vertexCount {
			return nil, fmt.Errorf("index %d at %d out of range for %d vertices", idx, i, vertexCount)
		}
	}

	g.Boundary = BoundaryFromPositions(g.Positions)
	return &g, nil
}

// VertexCount returns the number of vertices in the geometry.
func (g *Geometry) VertexCount() int {
	return len(g.Positions) / 3
}

// Triangles returns the indexed triangles of a triangles-primitive geometry.
// Other primitives yield nil.
func (g *Geometry) Triangles() []Triangle {
	if g.Primitive != PrimitiveTriangles {
		return nil
	}
	tris := make([]Triangle, 0, len(g.Indices)/3)
	for i := 0; i+2 < len(g.Indices); i += 3 {
		tris = append(tris, Triangle{
			V1: g.vertex(g.Indices[i]),
			V2: g.vertex(g.Indices[i+1]),
			V3: g.vertex(g.Indices[i+2]),
		})
	}
	return tris
}

// SurfaceArea sums the area of all triangles.
func (g *Geometry) SurfaceArea() float64 {
	total := 0.0
	for _, tri := range g.Triangles() {
		total += tri.Area()
	}
	return total
}

// DefaultBox returns a 10x10x10 cube centered on the origin, four vertices
// per face so each face carries its own normal.
func DefaultBox() *Geometry {
	return &Geometry{
		ID:        uuid.NewString(),
		Primitive: PrimitiveTriangles,
		Positions: []float64{
			5, 5, 5, -5, 5, 5, -5, -5, 5, 5, -5, 5, // v0-v1-v2-v3 front
			5, 5, 5, 5, -5, 5, 5, -5, -5, 5, 5, -5, // v0-v3-v4-v5 right
			5, 5, 5, 5, 5, -5, -5, 5, -5, -5, 5, 5, // v0-v5-v6-v1 top
			-5, 5, 5, -5, 5, -5, -5, -5, -5, -5, -5, 5, // v1-v6-v7-v2 left
			-5, -5, -5, 5, -5, -5, 5, -5, 5, -5, -5, 5, // v7-v4-v3-v2 bottom
			5, -5, -5, -5, -5, -5, -5, 5, -5, 5, 5, -5, // v4-v7-v6-v5 back
		},
		Normals: []float64{
			0, 0, 1, 0, 0, 1, 0, 0, 1, 0, 0, 1,
			1, 0, 0, 1, 0, 0, 1, 0, 0, 1, 0, 0,
			0, 1, 0, 0, 1, 0, 0, 1, 0, 0, 1, 0,
			-1, 0, 0, -1, 0, 0, -1, 0, 0, -1, 0, 0,
			0, -1, 0, 0, -1, 0, 0, -1, 0, 0, -1, 0,
			0, 0, -1, 0, 0, -1, 0, 0, -1, 0, 0, -1,
		},
		UV: []float64{
			5, 5, 0, 5, 0, 0, 5, 0,
			0, 5, 0, 0, 5, 0, 5, 5,
			5, 0, 5, 5, 0, 5, 0, 0,
			5, 5, 0, 5, 0, 0, 5, 0,
			0, 0, 5, 0, 5, 5, 0, 5,
			0, 0, 5, 0, 5, 5, 0, 5,
		},
		Indices: []uint32{
			0, 1, 2, 0, 2, 3,
			4, 5, 6, 4, 6, 7,
			8, 9, 10, 8, 10, 11,
			12, 13, 14, 12, 14, 15,
			16, 17, 18, 16, 18, 19,
			20, 21, 22, 20, 22, 23,
		},
		Boundary: Boundary{XMin: -5, XMax: 5, YMin: -5, YMax: 5, ZMin: -5, ZMax: 5},
	}
}

func (g *Geometry) vertex(i uint32) vecmath.Vec3 {
	p := g.Positions[3*i : 3*i+3]
	return vecmath.Vec3{p[0], p[1], p[2]}
}
