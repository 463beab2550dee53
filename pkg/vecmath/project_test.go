package vecmath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransformVec3IgnoresTranslation(t *testing.T) {
	m := Translation(Vec3{5, 5, 5})
	assert.Equal(t, Vec3{1, 2, 3}, m.TransformVec3(Vec3{1, 2, 3}))

	s := Scaling(Vec3{2, 3, 4}).Mul(m)
	assert.Equal(t, Vec3{2, 6, 12}, s.TransformVec3(Vec3{1, 2, 3}))
}

func TestTransformVec4(t *testing.T) {
	m := Translation(Vec3{1, 2, 3})
	assert.Equal(t, Vec4{1, 1, 1, 0}, m.TransformVec4(Vec4{1, 1, 1, 0}))
	assert.Equal(t, Vec4{2, 3, 4, 1}, m.MulVec4(Vec4{1, 1, 1, 1}))
}

func TestTransformPointsMatchesSinglePoint(t *testing.T) {
	m := Perspective(math.Pi/4, 1.5, 0.1, 50).Mul(LookAt(Vec3{3, 4, 5}, Vec3{}, Vec3{0, 1, 0}))
	points := []Vec3{{0, 0, 0}, {1, -1, 2}, {-4, 0.5, 3}, {10, 10, 10}}

	got := m.TransformPoints(points)
	require.Len(t, got, len(points))
	for i, p := range points {
		assert.Equal(t, m.TransformPoint(p), got[i])
	}
}

func TestTransformPointsEmpty(t *testing.T) {
	got := Identity().TransformPoints(nil)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestTransformPointsInto(t *testing.T) {
	dst := make([]Vec4, 8)
	points := []Vec3{{1, 0, 0}, {0, 1, 0}}

	got := TransformPointsInto(dst, Translation(Vec3{0, 0, 1}), points)
	require.Len(t, got, 2)
	assert.Equal(t, Vec4{1, 0, 1, 1}, got[0])
	assert.Equal(t, Vec4{0, 1, 1, 1}, dst[1])
	assert.Equal(t, Vec4{}, dst[2])
}

func TestProject(t *testing.T) {
	assert.Equal(t, Vec4{1, 2, 3, 1}, Vec4{2, 4, 6, 2}.Project())
	assert.False(t, Vec4{1, 0, 0, 0}.Project().IsFinite())
	assert.False(t, Vec4{0, 0, 0, 0}.Project().IsFinite())
}
