package geometry

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGeometryDefaultsToBox(t *testing.T) {
	g, err := NewGeometry(Geometry{})
	require.NoError(t, err)

	_, err = uuid.Parse(g.ID)
	assert.NoError(t, err)
	assert.Equal(t, PrimitiveTriangles, g.Primitive)
	assert.Equal(t, 24, g.VertexCount())
	assert.Len(t, g.Triangles(), 12)
	assert.InDelta(t, 600.0, g.SurfaceArea(), 1e-9)
	assert.Equal(t, Boundary{XMin: -5, XMax: 5, YMin: -5, YMax: 5, ZMin: -5, ZMax: 5}, g.Boundary)
	assert.Equal(t, 0.0, g.Boundary.Center().Len())
}

func TestNewGeometryKeepsID(t *testing.T) {
	g, err := NewGeometry(Geometry{ID: "wall-1"})
	require.NoError(t, err)
	assert.Equal(t, "wall-1", g.ID)
}

func TestNewGeometryComputesBoundary(t *testing.T) {
	g, err := NewGeometry(Geometry{
		Positions: []float64{0, 0, 0, 3, 0, 0, 0, 4, 1},
		Indices:   []uint32{0, 1, 2},
	})
	require.NoError(t, err)

	assert.Equal(t, Boundary{XMin: 0, XMax: 3, YMin: 0, YMax: 4, ZMin: 0, ZMax: 1}, g.Boundary)
	require.Len(t, g.Triangles(), 1)
	assert.Equal(t, 3, g.VertexCount())
}

func TestNewGeometryRejectsBadInput(t *testing.T) {
	_, err := NewGeometry(Geometry{Primitive: "quads"})
	assert.ErrorContains(t, err, "unknown primitive")

	_, err = NewGeometry(Geometry{Positions: []float64{0, 0, 0, 1}, Indices: []uint32{0}})
	assert.ErrorContains(t, err, "not a multiple of 3")

	_, err = NewGeometry(Geometry{Positions: []float64{0, 0, 0}, Indices: []uint32{0, 1, 0}})
	assert.ErrorContains(t, err, "out of range")
}

func TestTrianglesOnlyForTrianglePrimitive(t *testing.T) {
	g, err := NewGeometry(Geometry{
		Primitive: PrimitiveLines,
		Positions: []float64{0, 0, 0, 1, 1, 1},
		Indices:   []uint32{0, 1},
	})
	require.NoError(t, err)
	assert.Nil(t, g.Triangles())
	assert.Equal(t, 0.0, g.SurfaceArea())
}
