package geometry

import (
	"math"
	"testing"

	"github.com/philipparndt/viewmath/pkg/vecmath"
)

func TestBoundaryCenter(t *testing.T) {
	b := Boundary{XMin: 0, XMax: 4, YMin: 0, YMax: 2, ZMin: 0, ZMax: 6}

	center := b.Center()
	expected := vecmath.Vec3{2, 1, 3}

	if center != expected {
		t.Errorf("Center failed: expected %v, got %v", expected, center)
	}
}

func TestBoundaryDiagonal(t *testing.T) {
	b := Boundary{XMin: 0, XMax: 4, YMin: 0, YMax: 2, ZMin: 0, ZMax: 6}

	diagonal := b.Diagonal()
	expected := math.Sqrt(4*4 + 2*2 + 6*6)

	if math.Abs(diagonal-expected) > 1e-10 {
		t.Errorf("Diagonal failed: expected %v, got %v", expected, diagonal)
	}
}

func TestBoundaryExtend(t *testing.T) {
	b := NewBoundary()

	b.Extend(vecmath.Vec3{1, 2, 3})
	b.Extend(vecmath.Vec3{4, 5, 6})
	b.Extend(vecmath.Vec3{-1, 0, 2})

	expectedMin := vecmath.Vec3{-1, 0, 2}
	expectedMax := vecmath.Vec3{4, 5, 6}

	if b.Min() != expectedMin {
		t.Errorf("Min failed: expected %v, got %v", expectedMin, b.Min())
	}
	if b.Max() != expectedMax {
		t.Errorf("Max failed: expected %v, got %v", expectedMax, b.Max())
	}
}

func TestBoundarySizeAndVolume(t *testing.T) {
	b := BoundaryFromMinMax(vecmath.Vec3{0, 0, 0}, vecmath.Vec3{2, 3, 4})

	if size := b.Size(); size != (vecmath.Vec3{2, 3, 4}) {
		t.Errorf("Size failed: expected [2 3 4], got %v", size)
	}
	if math.Abs(b.Volume()-24.0) > 1e-10 {
		t.Errorf("Volume failed: expected 24, got %v", b.Volume())
	}
}

func TestBoundaryFromPositions(t *testing.T) {
	b := BoundaryFromPositions([]float64{1, 2, 3, -1, 5, 0, 2, 2, 2, 99})

	expected := Boundary{XMin: -1, XMax: 2, YMin: 2, YMax: 5, ZMin: 0, ZMax: 3}
	if b != expected {
		t.Errorf("BoundaryFromPositions failed: expected %+v, got %+v", expected, b)
	}
}

func TestAxisBoxCornerOrder(t *testing.T) {
	box := NewAxisBox3(vecmath.Vec3{0, 0, 0}, vecmath.Vec3{1, 2, 3})

	expected := AxisBox3{
		{0, 0, 0}, {1, 0, 0}, {1, 2, 0}, {0, 2, 0},
		{0, 0, 3}, {1, 0, 3}, {1, 2, 3}, {0, 2, 3},
	}
	if box != expected {
		t.Errorf("corner order failed: expected %v, got %v", expected, box)
	}
}

func TestAxisBoxRoundTrip(t *testing.T) {
	b := Boundary{XMin: -1, XMax: 4, YMin: 0.5, YMax: 2, ZMin: -3, ZMax: 6}

	if got := b.AxisBox().Boundary(); got != b {
		t.Errorf("round trip failed: expected %+v, got %+v", b, got)
	}
}

func TestAxisBoxTransform(t *testing.T) {
	box := NewAxisBox3(vecmath.Vec3{-1, -1, -1}, vecmath.Vec3{1, 1, 1})
	rotated := box.Transform(vecmath.Rotation(math.Pi/4, vecmath.Vec3{0, 0, 1}))

	got := rotated.Boundary()
	if math.Abs(got.XMax-math.Sqrt2) > 1e-10 || math.Abs(got.YMin+math.Sqrt2) > 1e-10 {
		t.Errorf("rotated extents wrong: %+v", got)
	}
	if math.Abs(got.ZMax-1) > 1e-10 {
		t.Errorf("z extent changed: %+v", got)
	}
}
