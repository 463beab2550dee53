package viewer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/philipparndt/viewmath/pkg/vecmath"
)

// Pose is a camera position: where the eye is, what it looks at, and which
// way is up.
type Pose struct {
	Eye  vecmath.Vec3 `json:"eye" yaml:"eye" toml:"eye"`
	Look vecmath.Vec3 `json:"look" yaml:"look" toml:"look"`
	Up   vecmath.Vec3 `json:"up" yaml:"up" toml:"up"`
}

// View returns the world-to-view matrix for the pose.
func (p Pose) View() vecmath.Mat4 {
	return vecmath.LookAt(p.Eye, p.Look, p.Up)
}

// LerpPose interpolates between two poses, t in [0, 1]. The up vector is
// renormalized unless it passes through zero.
func LerpPose(a, b Pose, t float64) Pose {
	p := Pose{
		Eye:  vecmath.LerpVec3(t, 0, 1, a.Eye, b.Eye),
		Look: vecmath.LerpVec3(t, 0, 1, a.Look, b.Look),
		Up:   vecmath.LerpVec3(t, 0, 1, a.Up, b.Up),
	}
	if p.Up.SqLen() > 0 {
		p.Up = p.Up.Normalize()
	}
	return p
}

// FlightPath samples steps+1 poses from a to b inclusive.
func FlightPath(a, b Pose, steps int) []Pose {
	if steps < 1 {
		return []Pose{b}
	}
	path := make([]Pose, steps+1)
	for i := range path {
		path[i] = LerpPose(a, b, float64(i)/float64(steps))
	}
	path[steps] = b
	return path
}

// AxisView is one of the six preset views along the world axes.
type AxisView int

const (
	ViewRight AxisView = iota + 1
	ViewLeft
	ViewFront
	ViewBack
	ViewTop
	ViewBottom
)

var axisViewNames = map[AxisView]string{
	ViewRight:  "right",
	ViewLeft:   "left",
	ViewFront:  "front",
	ViewBack:   "back",
	ViewTop:    "top",
	ViewBottom: "bottom",
}

// String returns the preset's name.
func (v AxisView) String() string {
	if name, ok := axisViewNames[v]; ok {
		return name
	}
	return fmt.Sprintf("AxisView(%d)", int(v))
}

// ParseAxisView accepts a preset name or its number 1-6.
func ParseAxisView(s string) (AxisView, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if n, err := strconv.Atoi(s); err == nil {
		if _, ok := axisViewNames[AxisView(n)]; ok {
			return AxisView(n), nil
		}
		return 0, fmt.Errorf("axis view %d out of range 1-6", n)
	}
	for v, name := range axisViewNames {
		if name == s {
			return v, nil
		}
	}
	return 0, fmt.Errorf("unknown axis view %q", s)
}

// Pose returns the preset pose looking at center from dist away.
func (v AxisView) Pose(center vecmath.Vec3, dist float64) (Pose, error) {
	var offset, up vecmath.Vec3
	switch v {
	case ViewRight:
		offset, up = vecmath.Vec3{-dist, 0, 0}, vecmath.Vec3{0, 1, 0}
	case ViewLeft:
		offset, up = vecmath.Vec3{dist, 0, 0}, vecmath.Vec3{0, 1, 0}
	case ViewFront:
		offset, up = vecmath.Vec3{0, 0, -dist}, vecmath.Vec3{0, 1, 0}
	case ViewBack:
		offset, up = vecmath.Vec3{0, 0, dist}, vecmath.Vec3{0, 1, 0}
	case ViewTop:
		offset, up = vecmath.Vec3{0, -dist, 0}, vecmath.Vec3{0, 0, 1}
	case ViewBottom:
		offset, up = vecmath.Vec3{0, dist, 0}, vecmath.Vec3{0, 0, -1}
	default:
		return Pose{}, fmt.Errorf("unknown axis view %d", int(v))
	}
	return Pose{Eye: center.Add(offset), Look: center, Up: up}, nil
}
