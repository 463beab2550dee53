package analysis

import (
	"math"

	"github.com/philipparndt/viewmath/pkg/vecmath"
)

// DefaultEpsilon is the determinant magnitude below which a matrix is
// reported as not invertible.
const DefaultEpsilon = 1e-12

// MatrixReport is an opt-in diagnostic for a matrix. Nothing in vecmath
// computes it on the transform path.
type MatrixReport struct {
	Matrix      vecmath.Mat4 `json:"matrix" yaml:"matrix"`
	Determinant float64      `json:"determinant" yaml:"determinant"`
	Trace       float64      `json:"trace" yaml:"trace"`
	Identity    bool         `json:"identity" yaml:"identity"`
	Affine      bool         `json:"affine" yaml:"affine"`
	Finite      bool         `json:"finite" yaml:"finite"`
	Invertible  bool         `json:"invertible" yaml:"invertible"`
	Condition   float64      `json:"condition,omitempty" yaml:"condition,omitempty"`
}

// AnalyzeMatrix reports the properties of m. Condition is the 1-norm
// condition number, filled in only for invertible matrices.
func AnalyzeMatrix(m vecmath.Mat4, eps float64) *MatrixReport {
	r := &MatrixReport{
		Matrix:      m,
		Determinant: m.Determinant(),
		Trace:       m.Trace(),
		Identity:    m.IsIdentity(),
		Affine:      m[3] == 0 && m[7] == 0 && m[11] == 0 && m[15] == 1,
		Finite:      m.IsFinite(),
		Invertible:  m.Invertible(eps),
	}
	if r.Invertible {
		r.Condition = norm1(m) * norm1(m.Inverse())
	}
	return r
}

// norm1 returns the maximum absolute column sum.
func norm1(m vecmath.Mat4) float64 {
	max := 0.0
	for col := 0; col < 4; col++ {
		sum := 0.0
		for row := 0; row < 4; row++ {
			sum += math.Abs(m[col*4+row])
		}
		max = math.Max(max, sum)
	}
	return max
}
