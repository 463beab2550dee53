package main

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/philipparndt/viewmath/pkg/analysis"
	"github.com/philipparndt/viewmath/pkg/vecmath"
	"github.com/spf13/cobra"
)

type transformedPoint struct {
	Input  vecmath.Vec3 `json:"input" yaml:"input"`
	Output vecmath.Vec4 `json:"output" yaml:"output"`
}

type transformResult struct {
	Matrix vecmath.Mat4       `json:"matrix" yaml:"matrix"`
	Points []transformedPoint `json:"points" yaml:"points"`
}

func newTransformCmd(opts *rootOptions) *cobra.Command {
	var (
		matrix    vecmath.Mat4
		translate vecmath.Vec3
		scale     vecmath.Vec3
		axis      vecmath.Vec3
		angle     float64
		points    pointsValue
		vector    bool
		project   bool
	)

	cmd := &cobra.Command{
		Use:   "transform",
		Short: "Transform points by a matrix",
		Long: `Transform points by a matrix built from --matrix and the optional
--scale, --rotate and --translate steps. Scaling is applied first, then the
rotation, then the translation and finally --matrix.

With --vector the points are directions: only the upper 3x3 block applies.
With --project the results are divided by w.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(points) == 0 {
				return errors.New("no points given, use --points")
			}
			if vector && project {
				return errors.New("--vector and --project cannot be combined")
			}

			m := matrix
			if cmd.Flags().Changed("translate") {
				m = m.Mul(vecmath.Translation(translate))
			}
			if cmd.Flags().Changed("rotate") {
				m = m.Mul(vecmath.Rotation(angle*math.Pi/180, axis))
			}
			if cmd.Flags().Changed("scale") {
				m = m.Mul(vecmath.Scaling(scale))
			}

			result := transformResult{Matrix: m, Points: make([]transformedPoint, len(points))}
			var out []vecmath.Vec4
			if vector {
				out = make([]vecmath.Vec4, len(points))
				for i, p := range points {
					out[i] = m.TransformVec3(p).Vec4(0)
				}
			} else {
				out = m.TransformPoints(points)
			}
			for i, p := range points {
				if project {
					out[i] = out[i].Project()
				}
				result.Points[i] = transformedPoint{Input: p, Output: out[i]}
			}

			return opts.printer(cmd).print(result, func(w io.Writer) {
				heading(w, "Point Transform")
				fmt.Fprint(w, analysis.FormatMatrix(m, "  "))
				fmt.Fprintln(w)
				fmt.Fprintf(w, "%-6s %-35s %-45s\n", "Index", "Input", "Output")
				fmt.Fprintln(w, "------------------------------------------------------------------------------------------")
				for i, p := range result.Points {
					fmt.Fprintf(w, "%-6d %-35s %-45s\n", i+1, analysis.FormatVector(p.Input), analysis.FormatVec4(p.Output))
				}
			})
		},
	}

	cmd.Flags().Var(newMat4Value(vecmath.Identity(), &matrix), "matrix", "Matrix, 16 values column-major")
	cmd.Flags().Var(newVec3Value(vecmath.Vec3{}, &translate), "translate", "Translation")
	cmd.Flags().Var(newVec3Value(vecmath.Vec3{1, 1, 1}, &scale), "scale", "Per-axis scale")
	cmd.Flags().Var(newVec3Value(vecmath.Vec3{0, 0, 1}, &axis), "rotate", "Rotation axis")
	cmd.Flags().Float64Var(&angle, "angle", 0, "Rotation angle in degrees")
	cmd.Flags().VarP(&points, "points", "p", "Points as x,y,z;x,y,z")
	cmd.Flags().BoolVar(&vector, "vector", false, "Treat points as directions")
	cmd.Flags().BoolVar(&project, "project", false, "Divide results by w")
	cmd.MarkFlagsRequiredTogether("rotate", "angle")
	return cmd
}
