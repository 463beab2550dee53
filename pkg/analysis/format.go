package analysis

import (
	"fmt"
	"strings"

	"github.com/philipparndt/viewmath/pkg/vecmath"
)

// FormatMeasurement formats a measurement with appropriate units
func FormatMeasurement(value float64, unit string) string {
	if unit == "" {
		unit = "units"
	}
	return fmt.Sprintf("%.6f %s", value, unit)
}

// FormatVector formats a 3D vector
func FormatVector(v vecmath.Vec3) string {
	return fmt.Sprintf("(%.6f, %.6f, %.6f)", v[0], v[1], v[2])
}

// FormatVec4 formats a homogeneous vector
func FormatVec4(v vecmath.Vec4) string {
	return fmt.Sprintf("(%.6f, %.6f, %.6f, %.6f)", v[0], v[1], v[2], v[3])
}

// FormatMatrix lays m out in rows, the way it is written on paper, with the
// given indent before each row.
func FormatMatrix(m vecmath.Mat4, indent string) string {
	var sb strings.Builder
	for row := 0; row < 4; row++ {
		sb.WriteString(indent)
		for col := 0; col < 4; col++ {
			if col > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%12.6f", m[col*4+row])
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
