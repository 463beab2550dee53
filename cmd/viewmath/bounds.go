package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/philipparndt/viewmath/pkg/analysis"
	"github.com/philipparndt/viewmath/pkg/geometry"
	"github.com/philipparndt/viewmath/pkg/vecmath"
	"github.com/spf13/cobra"
)

func writeBoundary(w io.Writer, r *analysis.BoundaryReport) {
	fmt.Fprintln(w, "Bounding Box:")
	fmt.Fprintf(w, "  Min: %s\n", analysis.FormatVector(r.Boundary.Min()))
	fmt.Fprintf(w, "  Max: %s\n", analysis.FormatVector(r.Boundary.Max()))
	fmt.Fprintf(w, "  Center: %s\n\n", analysis.FormatVector(r.Center))

	fmt.Fprintln(w, "Dimensions:")
	fmt.Fprintf(w, "  Width (X): %s\n", analysis.FormatMeasurement(r.Size[0], ""))
	fmt.Fprintf(w, "  Height (Y): %s\n", analysis.FormatMeasurement(r.Size[1], ""))
	fmt.Fprintf(w, "  Depth (Z): %s\n", analysis.FormatMeasurement(r.Size[2], ""))
	fmt.Fprintf(w, "  Diagonal: %s\n", analysis.FormatMeasurement(r.Diagonal, ""))
	fmt.Fprintf(w, "  Volume: %s\n", analysis.FormatMeasurement(r.Volume, "cubic units"))
}

func newBoundsCmd(opts *rootOptions) *cobra.Command {
	var (
		boxMin, boxMax vecmath.Vec3
		points         pointsValue
		matrix         vecmath.Mat4
	)

	cmd := &cobra.Command{
		Use:   "bounds",
		Short: "Measure an axis-aligned bounding box",
		Long: `Measure the box given by --min and --max, or the box around --points.
With --matrix the eight corners are transformed (including the perspective
divide) and the box around them is measured instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var b geometry.Boundary
			switch {
			case len(points) > 0:
				b = geometry.NewBoundary()
				for _, p := range points {
					b.Extend(p)
				}
			case cmd.Flags().Changed("min"):
				b = geometry.BoundaryFromMinMax(boxMin, boxMax)
			default:
				return errors.New("give either --min and --max or --points")
			}

			if cmd.Flags().Changed("matrix") {
				b = b.AxisBox().Transform(matrix).Boundary()
			}

			report := analysis.AnalyzeBoundary(b)
			return opts.printer(cmd).print(report, func(w io.Writer) {
				heading(w, "Bounds")
				writeBoundary(w, report)
				fmt.Fprintln(w, "\nCorners:")
				for i, c := range report.Corners {
					fmt.Fprintf(w, "  %d: %s\n", i, analysis.FormatVector(c))
				}
			})
		},
	}

	cmd.Flags().Var(newVec3Value(vecmath.Vec3{}, &boxMin), "min", "Minimum corner")
	cmd.Flags().Var(newVec3Value(vecmath.Vec3{}, &boxMax), "max", "Maximum corner")
	cmd.Flags().VarP(&points, "points", "p", "Points as x,y,z;x,y,z")
	cmd.Flags().Var(newMat4Value(vecmath.Identity(), &matrix), "matrix", "Transform the corners by this matrix, 16 values column-major")
	cmd.MarkFlagsRequiredTogether("min", "max")
	cmd.MarkFlagsMutuallyExclusive("min", "points")
	return cmd
}

// parseFloatList reads any number of comma separated values.
func parseFloatList(s string) ([]float64, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	out := make([]float64, len(parts))
	for i, part := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, fmt.Errorf("value %d: %w", i+1, err)
		}
		out[i] = f
	}
	return out, nil
}

type meshResult struct {
	analysis.MeasurementResult `yaml:",inline"`
	Primitive                  string              `json:"primitive" yaml:"primitive"`
	Longest                    []analysis.EdgeInfo `json:"longest,omitempty" yaml:"longest,omitempty"`
	Shortest                   []analysis.EdgeInfo `json:"shortest,omitempty" yaml:"shortest,omitempty"`
}

func newMeshCmd(opts *rootOptions) *cobra.Command {
	var (
		positions string
		indices   string
		primitive string
		longest   int
		shortest  int
	)

	cmd := &cobra.Command{
		Use:   "mesh",
		Short: "Measure an indexed mesh",
		Long: `Measure a mesh given as flat --positions and --indices lists: bounds,
surface area and edge lengths. Without positions the default 10x10x10 box
is measured.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pos, err := parseFloatList(positions)
			if err != nil {
				return fmt.Errorf("invalid --positions: %w", err)
			}
			idx, err := parseIndices(indices)
			if err != nil {
				return fmt.Errorf("invalid --indices: %w", err)
			}

			g, err := geometry.NewGeometry(geometry.Geometry{
				Primitive: primitive,
				Positions: pos,
				Indices:   idx,
			})
			if err != nil {
				return fmt.Errorf("invalid mesh: %w", err)
			}

			result := meshResult{
				MeasurementResult: *analysis.AnalyzeGeometry(g),
				Primitive:         g.Primitive,
			}
			if longest > 0 {
				result.Longest = analysis.FindLongestEdges(&result.MeasurementResult, longest)
			}
			if shortest > 0 {
				result.Shortest = analysis.FindShortestEdges(&result.MeasurementResult, shortest)
			}

			return opts.printer(cmd).print(result, func(w io.Writer) {
				heading(w, "Mesh Information")
				fmt.Fprintf(w, "ID: %s\n", result.ID)
				fmt.Fprintf(w, "Primitive: %s\n\n", result.Primitive)

				fmt.Fprintln(w, "Mesh Statistics:")
				fmt.Fprintf(w, "  Vertices: %d\n", result.VertexCount)
				fmt.Fprintf(w, "  Triangles: %d\n", result.TriangleCount)
				fmt.Fprintf(w, "  Edges: %d\n", result.EdgeCount)
				fmt.Fprintf(w, "  Surface Area: %s\n\n", analysis.FormatMeasurement(result.SurfaceArea, "square units"))

				writeBoundary(w, result.Bounds)

				if result.EdgeCount > 0 {
					fmt.Fprintln(w, "\nEdge Lengths:")
					fmt.Fprintf(w, "  Minimum: %s\n", analysis.FormatMeasurement(result.MinEdgeLength, ""))
					fmt.Fprintf(w, "  Maximum: %s\n", analysis.FormatMeasurement(result.MaxEdgeLength, ""))
					fmt.Fprintf(w, "  Average: %s\n", analysis.FormatMeasurement(result.AvgEdgeLength, ""))
				}
				writeEdges(w, fmt.Sprintf("Top %d Longest Edges", len(result.Longest)), result.Longest)
				writeEdges(w, fmt.Sprintf("Top %d Shortest Edges", len(result.Shortest)), result.Shortest)
			})
		},
	}

	cmd.Flags().StringVar(&positions, "positions", "", "Vertex positions as x,y,z,x,y,z,...")
	cmd.Flags().StringVar(&indices, "indices", "", "Vertex indices as i,j,k,...")
	cmd.Flags().StringVar(&primitive, "primitive", geometry.PrimitiveTriangles, "Primitive type")
	cmd.Flags().IntVarP(&longest, "longest", "l", 0, "Show the n longest edges")
	cmd.Flags().IntVarP(&shortest, "shortest", "s", 0, "Show the n shortest edges")
	cmd.MarkFlagsRequiredTogether("positions", "indices")
	return cmd
}

func writeEdges(w io.Writer, title string, edges []analysis.EdgeInfo) {
	if len(edges) == 0 {
		return
	}
	fmt.Fprintf(w, "\n%s\n", title)
	fmt.Fprintf(w, "%-6s %-35s %-35s %-15s\n", "Index", "Start", "End", "Length")
	fmt.Fprintln(w, "-----------------------------------------------------------------------------------------------------------")
	for i, edge := range edges {
		fmt.Fprintf(w, "%-6d %-35s %-35s %-15.6f\n",
			i+1,
			analysis.FormatVector(edge.Start),
			analysis.FormatVector(edge.End),
			edge.Length)
	}
}
