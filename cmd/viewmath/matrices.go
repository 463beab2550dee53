package main

import (
	"fmt"
	"io"
	"math"

	"github.com/philipparndt/viewmath/pkg/analysis"
	"github.com/philipparndt/viewmath/pkg/vecmath"
	"github.com/spf13/cobra"
)

type matrixResult struct {
	Name        string       `json:"name" yaml:"name"`
	Matrix      vecmath.Mat4 `json:"matrix" yaml:"matrix"`
	Determinant float64      `json:"determinant" yaml:"determinant"`
}

func printMatrix(p *printer, name string, m vecmath.Mat4) error {
	result := matrixResult{Name: name, Matrix: m, Determinant: m.Determinant()}
	return p.print(result, func(w io.Writer) {
		heading(w, name)
		fmt.Fprint(w, analysis.FormatMatrix(m, "  "))
		fmt.Fprintf(w, "\nDeterminant: %.6f\n", result.Determinant)
	})
}

func newLookAtCmd(opts *rootOptions) *cobra.Command {
	var eye, target, up vecmath.Vec3

	cmd := &cobra.Command{
		Use:   "lookat",
		Short: "Build a world-to-view matrix",
		Long:  "Build the view matrix of a camera at --eye looking at --target with --up as the approximate up direction.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printMatrix(opts.printer(cmd), "Look-At View Matrix", vecmath.LookAt(eye, target, up))
		},
	}

	cmd.Flags().Var(newVec3Value(vecmath.Vec3{0, 0, 1}, &eye), "eye", "Camera position")
	cmd.Flags().Var(newVec3Value(vecmath.Vec3{}, &target), "target", "Point looked at")
	cmd.Flags().Var(newVec3Value(vecmath.Vec3{0, 1, 0}, &up), "up", "Approximate up direction")
	return cmd
}

func newPerspectiveCmd(opts *rootOptions) *cobra.Command {
	var fov, aspect, near, far float64

	cmd := &cobra.Command{
		Use:   "perspective",
		Short: "Build a perspective projection matrix",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m := vecmath.Perspective(fov*math.Pi/180, aspect, near, far)
			return printMatrix(opts.printer(cmd), "Perspective Projection", m)
		},
	}

	cmd.Flags().Float64Var(&fov, "fov", 45, "Vertical field of view in degrees")
	cmd.Flags().Float64Var(&aspect, "aspect", 1, "Width to height ratio")
	cmd.Flags().Float64Var(&near, "near", 0.1, "Near clip distance")
	cmd.Flags().Float64Var(&far, "far", 100, "Far clip distance")
	return cmd
}

// planes holds the six clip plane flags shared by ortho and frustum.
type planes struct {
	left, right, bottom, top, near, far float64
}

func (p *planes) register(cmd *cobra.Command, near float64) {
	cmd.Flags().Float64Var(&p.left, "left", -1, "Left clip plane")
	cmd.Flags().Float64Var(&p.right, "right", 1, "Right clip plane")
	cmd.Flags().Float64Var(&p.bottom, "bottom", -1, "Bottom clip plane")
	cmd.Flags().Float64Var(&p.top, "top", 1, "Top clip plane")
	cmd.Flags().Float64Var(&p.near, "near", near, "Near clip distance")
	cmd.Flags().Float64Var(&p.far, "far", 100, "Far clip distance")
}

func newOrthoCmd(opts *rootOptions) *cobra.Command {
	var p planes

	cmd := &cobra.Command{
		Use:   "ortho",
		Short: "Build an orthographic projection matrix",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m := vecmath.Ortho(p.left, p.right, p.bottom, p.top, p.near, p.far)
			return printMatrix(opts.printer(cmd), "Orthographic Projection", m)
		},
	}

	p.register(cmd, 0.1)
	return cmd
}

func newFrustumCmd(opts *rootOptions) *cobra.Command {
	var p planes
	var nearMin, farMax vecmath.Vec3

	cmd := &cobra.Command{
		Use:   "frustum",
		Short: "Build a perspective frustum matrix",
		Long: `Build a perspective frustum from its six clip planes, or from the
near-plane rectangle and depth range given as --min left,bottom,near and
--max right,top,far.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var m vecmath.Mat4
			if cmd.Flags().Changed("min") {
				m = vecmath.FrustumExtents(nearMin, farMax)
			} else {
				m = vecmath.Frustum(p.left, p.right, p.bottom, p.top, p.near, p.far)
			}
			return printMatrix(opts.printer(cmd), "Frustum Projection", m)
		},
	}

	p.register(cmd, 1)
	cmd.Flags().Var(newVec3Value(vecmath.Vec3{-1, -1, 1}, &nearMin), "min", "left,bottom,near")
	cmd.Flags().Var(newVec3Value(vecmath.Vec3{1, 1, 100}, &farMax), "max", "right,top,far")
	cmd.MarkFlagsRequiredTogether("min", "max")
	for _, plane := range []string{"left", "right", "bottom", "top", "near", "far"} {
		cmd.MarkFlagsMutuallyExclusive("min", plane)
	}
	return cmd
}

type inverseResult struct {
	Report  *analysis.MatrixReport `json:"report" yaml:"report"`
	Inverse *vecmath.Mat4          `json:"inverse,omitempty" yaml:"inverse,omitempty"`
}

func newInvertCmd(opts *rootOptions) *cobra.Command {
	var m vecmath.Mat4
	var eps float64

	cmd := &cobra.Command{
		Use:   "invert",
		Short: "Invert a matrix and report its properties",
		Long: `Invert --matrix and report its determinant, trace and condition number.
A singular matrix has no finite inverse; only the report is printed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result := inverseResult{Report: analysis.AnalyzeMatrix(m, eps)}
			if inv := m.Inverse(); inv.IsFinite() {
				result.Inverse = &inv
			}

			return opts.printer(cmd).print(result, func(w io.Writer) {
				heading(w, "Matrix Inversion")
				fmt.Fprint(w, analysis.FormatMatrix(m, "  "))
				fmt.Fprintln(w)
				fmt.Fprintf(w, "Determinant: %.6f\n", result.Report.Determinant)
				fmt.Fprintf(w, "Trace: %.6f\n", result.Report.Trace)
				fmt.Fprintf(w, "Identity: %t\n", result.Report.Identity)
				fmt.Fprintf(w, "Affine: %t\n", result.Report.Affine)
				fmt.Fprintf(w, "Invertible: %t\n", result.Report.Invertible)
				if result.Report.Invertible {
					fmt.Fprintf(w, "Condition: %.6f\n", result.Report.Condition)
				}
				if result.Inverse != nil {
					fmt.Fprintln(w, "\nInverse:")
					fmt.Fprint(w, analysis.FormatMatrix(*result.Inverse, "  "))
				} else {
					fmt.Fprintln(w, "\nInverse: not finite")
				}
			})
		},
	}

	cmd.Flags().Var(newMat4Value(vecmath.Identity(), &m), "matrix", "Matrix, 16 values column-major")
	cmd.Flags().Float64Var(&eps, "epsilon", analysis.DefaultEpsilon, "Determinant magnitude below which the matrix counts as singular")
	_ = cmd.MarkFlagRequired("matrix")
	return cmd
}
