package viewer

import (
	"math"

	"github.com/philipparndt/viewmath/pkg/geometry"
	"github.com/philipparndt/viewmath/pkg/vecmath"
)

// Projection selects how a Camera maps view space to clip space.
type Projection string

const (
	Perspective  Projection = "perspective"
	Orthographic Projection = "ortho"
)

// Camera represents a 3D camera for viewing a scene
type Camera struct {
	Eye        vecmath.Vec3
	Look       vecmath.Vec3
	Up         vecmath.Vec3
	FOV        float64 // Vertical field of view in radians
	Near       float64
	Far        float64
	Aspect     float64
	Projection Projection
	OrthoScale float64 // Half-height of the orthographic view volume
}

// NewCamera creates a new camera positioned to view a boundary
func NewCamera(b geometry.Boundary) *Camera {
	c := &Camera{
		Eye:        vecmath.Vec3{0, 0, 1},
		Up:         vecmath.Vec3{0, 1, 0},
		FOV:        math.Pi / 4, // 45 degrees
		Aspect:     1,
		Projection: Perspective,
	}
	c.Fit(b)
	return c
}

// Fit moves the eye along its current view direction so the boundary's
// bounding sphere fills the field of view, and sets the clip planes around it.
func (c *Camera) Fit(b geometry.Boundary) {
	center := b.Center()
	radius := b.Diagonal() / 2
	if radius == 0 {
		radius = 1
	}

	dir := c.Eye.Sub(c.Look)
	if dir.SqLen() == 0 {
		dir = vecmath.Vec3{0, 0, 1}
	}
	dir = dir.Normalize()

	distance := radius/math.Tan(c.FOV/2) + radius
	c.Look = center
	c.Eye = center.Add(dir.MulScalar(distance))
	c.Near = radius * 0.01
	c.Far = distance + radius*2
	c.OrthoScale = radius
}

// View returns the world-to-view matrix.
func (c *Camera) View() vecmath.Mat4 {
	return vecmath.LookAt(c.Eye, c.Look, c.Up)
}

// ProjectionMatrix returns the view-to-clip matrix.
func (c *Camera) ProjectionMatrix() vecmath.Mat4 {
	if c.Projection == Orthographic {
		h := c.OrthoScale
		w := h * c.Aspect
		return vecmath.Ortho(-w, w, -h, h, c.Near, c.Far)
	}
	return vecmath.Perspective(c.FOV, c.Aspect, c.Near, c.Far)
}

// ViewProjection returns projection·view.
func (c *Camera) ViewProjection() vecmath.Mat4 {
	return c.ProjectionMatrix().Mul(c.View())
}

// Distance returns the distance from eye to look.
func (c *Camera) Distance() float64 {
	return c.Eye.Sub(c.Look).Len()
}

// Orbit rotates the eye around the look point: yaw about the up vector,
// then pitch about the camera's right axis.
func (c *Camera) Orbit(yaw, pitch float64) {
	offset := c.Eye.Sub(c.Look)

	offset = vecmath.Rotation(yaw, c.Up).TransformVec3(offset)

	right := c.Up.Cross(offset)
	if right.SqLen() > 0 {
		rot := vecmath.Rotation(pitch, right)
		offset = rot.TransformVec3(offset)
		c.Up = rot.TransformVec3(c.Up)
	}

	c.Eye = c.Look.Add(offset)
}

// Zoom changes the camera distance
func (c *Camera) Zoom(delta float64) {
	offset := c.Eye.Sub(c.Look)
	length := offset.Len()
	if length == 0 {
		return
	}
	scale := 1.0 + delta
	if length*scale < 0.1 {
		scale = 0.1 / length
	}
	c.Eye = c.Look.Add(offset.MulScalar(scale))
}

// Project projects a 3D point to screen coordinates. depth is the NDC z in
// [-1, 1] for points between the clip planes. Points in the eye plane of a
// perspective camera come out non-finite.
func (c *Camera) Project(point vecmath.Vec3, width, height float64) (x, y, depth float64) {
	ndc := c.ViewProjection().TransformPoint(point).Project()

	x = (ndc[0] + 1) / 2 * width
	y = (1 - ndc[1]) / 2 * height
	return x, y, ndc[2]
}

// Unproject converts screen coordinates back to a world-space ray starting
// on the near plane.
func (c *Camera) Unproject(screenX, screenY, width, height float64) (origin, direction vecmath.Vec3) {
	ndcX := (2.0 * screenX / width) - 1.0
	ndcY := 1.0 - (2.0 * screenY / height)

	inv := c.ViewProjection().Inverse()
	near := inv.TransformVec4(vecmath.Vec4{ndcX, ndcY, -1, 1}).Project().Vec3()
	far := inv.TransformVec4(vecmath.Vec4{ndcX, ndcY, 1, 1}).Project().Vec3()

	return near, far.Sub(near).Normalize()
}

// Pose returns the camera's eye, look and up.
func (c *Camera) Pose() Pose {
	return Pose{Eye: c.Eye, Look: c.Look, Up: c.Up}
}

// SetPose moves the camera to p.
func (c *Camera) SetPose(p Pose) {
	c.Eye, c.Look, c.Up = p.Eye, p.Look, p.Up
}
