package analysis

import (
	"math"
	"sort"

	"github.com/philipparndt/viewmath/pkg/geometry"
	"github.com/philipparndt/viewmath/pkg/vecmath"
)

// EdgeInfo contains information about an edge in a geometry
type EdgeInfo struct {
	Start      vecmath.Vec3 `json:"start" yaml:"start"`
	End        vecmath.Vec3 `json:"end" yaml:"end"`
	Length     float64      `json:"length" yaml:"length"`
	TriangleID int          `json:"triangle" yaml:"triangle"`
}

// BoundaryReport summarizes an axis-aligned boundary.
type BoundaryReport struct {
	Boundary geometry.Boundary `json:"boundary" yaml:"boundary"`
	Center   vecmath.Vec3      `json:"center" yaml:"center"`
	Size     vecmath.Vec3      `json:"size" yaml:"size"`
	Diagonal float64           `json:"diagonal" yaml:"diagonal"`
	Volume   float64           `json:"volume" yaml:"volume"`
	Corners  geometry.AxisBox3 `json:"corners" yaml:"corners"`
}

// AnalyzeBoundary computes the derived measurements of a boundary.
func AnalyzeBoundary(b geometry.Boundary) *BoundaryReport {
	return &BoundaryReport{
		Boundary: b,
		Center:   b.Center(),
		Size:     b.Size(),
		Diagonal: b.Diagonal(),
		Volume:   b.Volume(),
		Corners:  b.AxisBox(),
	}
}

// MeasurementResult contains various measurements of a geometry
type MeasurementResult struct {
	ID            string          `json:"id" yaml:"id"`
	Bounds        *BoundaryReport `json:"bounds" yaml:"bounds"`
	SurfaceArea   float64         `json:"surface_area" yaml:"surface_area"`
	VertexCount   int             `json:"vertices" yaml:"vertices"`
	TriangleCount int             `json:"triangles" yaml:"triangles"`
	EdgeCount     int             `json:"edges" yaml:"edges"`
	MinEdgeLength float64         `json:"min_edge" yaml:"min_edge"`
	MaxEdgeLength float64         `json:"max_edge" yaml:"max_edge"`
	AvgEdgeLength float64         `json:"avg_edge" yaml:"avg_edge"`
	AllEdges      []EdgeInfo      `json:"-" yaml:"-"`
}

// AnalyzeGeometry performs comprehensive analysis on a geometry
func AnalyzeGeometry(g *geometry.Geometry) *MeasurementResult {
	triangles := g.Triangles()
	result := &MeasurementResult{
		ID:            g.ID,
		Bounds:        AnalyzeBoundary(g.Boundary),
		SurfaceArea:   g.SurfaceArea(),
		VertexCount:   g.VertexCount(),
		TriangleCount: len(triangles),
		AllEdges:      make([]EdgeInfo, 0, len(triangles)*3),
	}

	minLength := math.MaxFloat64
	maxLength := 0.0
	totalLength := 0.0

	for i, triangle := range triangles {
		edges := [3][2]vecmath.Vec3{
			{triangle.V1, triangle.V2},
			{triangle.V2, triangle.V3},
			{triangle.V3, triangle.V1},
		}

		for _, edge := range edges {
			length := edge[1].Sub(edge[0]).Len()

			result.AllEdges = append(result.AllEdges, EdgeInfo{
				Start:      edge[0],
				End:        edge[1],
				Length:     length,
				TriangleID: i,
			})

			totalLength += length
			minLength = math.Min(minLength, length)
			maxLength = math.Max(maxLength, length)
		}
	}

	result.EdgeCount = len(result.AllEdges)
	if result.EdgeCount > 0 {
		result.MinEdgeLength = minLength
		result.MaxEdgeLength = maxLength
		result.AvgEdgeLength = totalLength / float64(result.EdgeCount)
	}

	return result
}

// FindLongestEdges returns the N longest edges. A negative N returns none.
func FindLongestEdges(result *MeasurementResult, count int) []EdgeInfo {
	return sortedEdges(result, count, func(a, b EdgeInfo) bool { return a.Length > b.Length })
}

// FindShortestEdges returns the N shortest edges
func FindShortestEdges(result *MeasurementResult, count int) []EdgeInfo {
	return sortedEdges(result, count, func(a, b EdgeInfo) bool { return a.Length < b.Length })
}

func sortedEdges(result *MeasurementResult, count int, less func(a, b EdgeInfo) bool) []EdgeInfo {
	edges := make([]EdgeInfo, len(result.AllEdges))
	copy(edges, result.AllEdges)

	sort.SliceStable(edges, func(i, j int) bool {
		return less(edges[i], edges[j])
	})

	if count > len(edges) {
		count = len(edges)
	}
	if count < 0 {
		count = 0
	}
	return edges[:count]
}
