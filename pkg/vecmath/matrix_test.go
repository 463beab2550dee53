package vecmath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tolerance = 1e-9

// sample is an arbitrary, well-conditioned matrix with no special structure.
var sample = Mat4{
	2, 0.5, -1, 0.1,
	0.3, 3, 0.7, -0.2,
	-0.4, 1.1, 4, 0.6,
	1.5, -2, 0.9, 1,
}

func assertMatInDelta(t *testing.T, want, got Mat4, delta float64) {
	t.Helper()
	assert.InDeltaSlice(t, want[:], got[:], delta)
}

func TestIdentityIsNeutral(t *testing.T) {
	i := Identity()
	assert.Equal(t, sample, i.Mul(sample))
	assert.Equal(t, sample, sample.Mul(i))
}

func TestBuilders(t *testing.T) {
	assert.True(t, Identity().IsIdentity())
	assert.Equal(t, Mat4{}, Zeros())
	assert.Equal(t, Fill(1), Ones())
	assert.Equal(t, Identity().MulScalar(3), DiagonalScalar(3))

	d := Diagonal(Vec4{1, 2, 3, 4})
	assert.Equal(t, 10.0, d.Trace())
	assert.Equal(t, 24.0, d.Determinant())
	assert.False(t, d.IsIdentity())

	assert.Equal(t, [9]float64{2, 0.5, -1, 0.3, 3, 0.7, -0.4, 1.1, 4}, sample.Mat3())
}

func TestIsIdentityIsExact(t *testing.T) {
	m := Identity()
	m[12] = 1e-300
	assert.False(t, m.IsIdentity())
}

func TestElementwise(t *testing.T) {
	a := Fill(3)
	b := Identity()

	sum := a.Add(b)
	assert.Equal(t, 4.0, sum[0])
	assert.Equal(t, 3.0, sum[1])
	assert.Equal(t, a, sum.Sub(b))

	assert.Equal(t, Fill(5), a.AddScalar(2))
	assert.Equal(t, Fill(1), a.SubScalar(2))
	assert.Equal(t, Fill(7), a.ScalarSub(10))
	assert.Equal(t, Fill(-3), a.Negate())
	assert.Equal(t, Fill(1.5), a.MulScalar(0.5))
}

func TestMulOrder(t *testing.T) {
	m := Translation(Vec3{1, 2, 3}).Mul(Scaling(Vec3{2, 2, 2}))

	// Scaling applies first, then the translation.
	assert.Equal(t, Vec4{3, 4, 5, 1}, m.TransformPoint(Vec3{1, 1, 1}))
}

func TestSetMulAliasing(t *testing.T) {
	other := Rotation(0.7, Vec3{1, 2, 3})
	want := sample.Mul(other)

	d := sample
	d.SetMul(&d, &other)
	assert.Equal(t, want, d)

	d = other
	d.SetMul(&sample, &d)
	assert.Equal(t, want, d)
}

func TestTransposeTwice(t *testing.T) {
	assert.Equal(t, sample, sample.Transpose().Transpose())

	tr := sample.Transpose()
	assert.Equal(t, sample[1], tr[4])
	assert.Equal(t, sample[14], tr[11])
}

func TestSetTransposeInPlace(t *testing.T) {
	want := sample.Transpose()

	m := sample
	got := m.SetTranspose(&m)
	assert.Same(t, &m, got)
	assert.Equal(t, want, m)

	var d Mat4
	d.SetTranspose(&sample)
	assert.Equal(t, want, d)
}

func TestDeterminant(t *testing.T) {
	assert.Equal(t, 1.0, Identity().Determinant())
	assert.InDelta(t, 24.0, Scaling(Vec3{2, 3, 4}).Determinant(), tolerance)
	assert.InDelta(t, 1.0, Rotation(1.2, Vec3{0, 1, 1}).Determinant(), tolerance)

	other := Translation(Vec3{4, -1, 2}).Mul(Scaling(Vec3{1, 2, 0.5}))
	assert.InDelta(t, sample.Determinant()*other.Determinant(), sample.Mul(other).Determinant(), tolerance)
}

func TestInverse(t *testing.T) {
	inv := sample.Inverse()
	require.True(t, inv.IsFinite())

	assertMatInDelta(t, Identity(), inv.Mul(sample), tolerance)
	assertMatInDelta(t, Identity(), sample.Mul(inv), tolerance)
}

func TestInverseOfComposite(t *testing.T) {
	m := Translation(Vec3{1, 2, 3}).
		Mul(Rotation(math.Pi/3, Vec3{1, 1, 0})).
		Mul(Scaling(Vec3{2, 0.5, 4}))

	assertMatInDelta(t, Identity(), m.Inverse().Mul(m), tolerance)

	p := Vec3{-3, 7, 0.5}
	back := m.Inverse().TransformPoint(m.TransformPoint(p).Vec3())
	want := p.Vec4(1)
	assert.InDeltaSlice(t, want[:], back[:], tolerance)
}

func TestSetInverseAliasing(t *testing.T) {
	want := sample.Inverse()

	m := sample
	m.SetInverse(&m)
	assert.Equal(t, want, m)
}

func TestSingularInverseIsNotFinite(t *testing.T) {
	singular := []Mat4{
		Zeros(),
		Ones(),
		Scaling(Vec3{1, 0, 1}),
		{1, 2, 3, 4, 2, 4, 6, 8, 0, 1, 0, 1, 5, 5, 5, 5},
	}
	for _, m := range singular {
		require.Equal(t, 0.0, m.Determinant())
		assert.False(t, m.Inverse().IsFinite(), "inverse of %v", m)
		assert.False(t, m.Invertible(1e-12))
	}
	assert.True(t, sample.Invertible(1e-12))
}

func TestZeroDeterminantInverseIsNotFinite(t *testing.T) {
	// Non-integer entries where the columns are linearly dependent.
	zeroColumn := Mat4{
		0.1, 0.7, -1.3, 2.9,
		0, 0, 0, 0,
		0.35, -0.2, 1.15, 0.45,
		0.6, 0.25, -0.75, 1.05,
	}
	require.Equal(t, 0.0, zeroColumn.Determinant())
	assert.False(t, zeroColumn.Inverse().IsFinite())

	for i := 1; i <= 50; i++ {
		s := float64(i) / 7
		m := Mat4{
			0.1 * s, 0.7, -1.3, 2.9 / s,
			0.35, -0.2 * s, 1.15, 0.45,
			0.6, 0.25, -0.75 * s, 1.05,
		}
		for r := 0; r < 4; r++ {
			m[12+r] = 0.3*m[r] - 1.7*m[4+r]
		}
		if m.Determinant() == 0 {
			assert.False(t, m.Inverse().IsFinite(), "inverse of %v", m)
		} else {
			assert.False(t, m.Invertible(1e-9), "%v", m)
		}
	}
}
