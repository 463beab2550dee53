package vecmath

import (
	"bytes"
	"log"
	"math"
	"strings"
	"testing"
	"time"
)

func TestVec3Add(t *testing.T) {
	v1 := Vec3{1, 2, 3}
	v2 := Vec3{4, 5, 6}
	result := v1.Add(v2)

	expected := Vec3{5, 7, 9}
	if result != expected {
		t.Errorf("Add failed: expected %v, got %v", expected, result)
	}
}

func TestVec3Sub(t *testing.T) {
	v1 := Vec3{5, 7, 9}
	v2 := Vec3{1, 2, 3}
	result := v1.Sub(v2)

	expected := Vec3{4, 5, 6}
	if result != expected {
		t.Errorf("Sub failed: expected %v, got %v", expected, result)
	}
}

func TestVec3ScalarForms(t *testing.T) {
	v := Vec3{1, 2, 4}

	if got, want := v.ScalarSub(10), (Vec3{9, 8, 6}); got != want {
		t.Errorf("ScalarSub failed: expected %v, got %v", want, got)
	}
	if got, want := v.ScalarDiv(8), (Vec3{8, 4, 2}); got != want {
		t.Errorf("ScalarDiv failed: expected %v, got %v", want, got)
	}
	if got, want := v.Rcp(), (Vec3{1, 0.5, 0.25}); got != want {
		t.Errorf("Rcp failed: expected %v, got %v", want, got)
	}
	if got, want := v.DivScalar(2), (Vec3{0.5, 1, 2}); got != want {
		t.Errorf("DivScalar failed: expected %v, got %v", want, got)
	}
}

func TestVec4Arithmetic(t *testing.T) {
	u := Vec4{1, 2, 3, 4}
	v := Vec4{2, 2, 2, 2}

	if got, want := u.Mul(v), (Vec4{2, 4, 6, 8}); got != want {
		t.Errorf("Mul failed: expected %v, got %v", want, got)
	}
	if got, want := u.Div(v), (Vec4{0.5, 1, 1.5, 2}); got != want {
		t.Errorf("Div failed: expected %v, got %v", want, got)
	}
	if got, want := u.SubScalar(1), (Vec4{0, 1, 2, 3}); got != want {
		t.Errorf("SubScalar failed: expected %v, got %v", want, got)
	}
	if got, want := u.ScalarSub(4), (Vec4{3, 2, 1, 0}); got != want {
		t.Errorf("ScalarSub failed: expected %v, got %v", want, got)
	}
	if got, want := u.Negate(), (Vec4{-1, -2, -3, -4}); got != want {
		t.Errorf("Negate failed: expected %v, got %v", want, got)
	}
	if got := u.Dot(v); got != 20 {
		t.Errorf("Dot failed: expected 20, got %v", got)
	}
}

func TestVec3Length(t *testing.T) {
	v := Vec3{3, 4, 0}

	if math.Abs(v.Len()-5.0) > 1e-10 {
		t.Errorf("Len failed: expected 5, got %v", v.Len())
	}
	if v.SqLen() != 25 {
		t.Errorf("SqLen failed: expected 25, got %v", v.SqLen())
	}
}

func TestVec2Arithmetic(t *testing.T) {
	v := Vec2{2, -4}

	tests := []struct {
		name      string
		got, want Vec2
	}{
		{"AddScalar", v.AddScalar(1), Vec2{3, -3}},
		{"SubScalar", v.SubScalar(1), Vec2{1, -5}},
		{"ScalarSub", v.ScalarSub(1), Vec2{-1, 5}},
		{"ScalarDiv", v.ScalarDiv(8), Vec2{4, -2}},
		{"Negate", v.Negate(), Vec2{-2, 4}},
		{"Add", v.Add(Vec2{1, 1}), Vec2{3, -3}},
		{"Div", v.Div(Vec2{2, -2}), Vec2{1, 2}},
	}
	for _, tt := range tests {
		for i := range tt.want {
			if math.Abs(tt.got[i]-tt.want[i]) > 1e-10 {
				t.Errorf("%s failed: expected %v, got %v", tt.name, tt.want, tt.got)
				break
			}
		}
	}
}

func TestNormalize(t *testing.T) {
	vectors := []Vec3{{3, 4, 0}, {1, 1, 1}, {-0.001, 20, 7}, {1e6, 0, -1e6}}
	for _, v := range vectors {
		if l := v.Normalize().Len(); math.Abs(l-1.0) > 1e-10 {
			t.Errorf("Normalize(%v) failed: expected length 1, got %v", v, l)
		}
	}

	if l := (Vec2{3, 4}).Normalize().Len(); math.Abs(l-1.0) > 1e-10 {
		t.Errorf("Vec2 Normalize failed: expected length 1, got %v", l)
	}
	if l := (Vec4{1, 2, 3, 4}).Normalize().Len(); math.Abs(l-1.0) > 1e-10 {
		t.Errorf("Vec4 Normalize failed: expected length 1, got %v", l)
	}
}

func TestNormalizeZeroIsNotFinite(t *testing.T) {
	n := Vec3{}.Normalize()
	if n.Vec4(1).IsFinite() {
		t.Errorf("expected non-finite components, got %v", n)
	}
}

func TestVec3Cross(t *testing.T) {
	result := Vec3{1, 0, 0}.Cross(Vec3{0, 1, 0})

	expected := Vec3{0, 0, 1}
	if result != expected {
		t.Errorf("Cross failed: expected %v, got %v", expected, result)
	}
}

func TestCrossIsOrthogonal(t *testing.T) {
	pairs := [][2]Vec3{
		{{1, 2, 3}, {4, 5, 6}},
		{{-3, 0.5, 2}, {7, -1, 0.25}},
		{{0, 0, 1}, {1, 1, 0}},
	}
	for _, p := range pairs {
		c := p[0].Cross(p[1])
		if d := c.Dot(p[0]); math.Abs(d) > 1e-10 {
			t.Errorf("cross(%v, %v) not orthogonal to u: dot=%v", p[0], p[1], d)
		}
		if d := c.Dot(p[1]); math.Abs(d) > 1e-10 {
			t.Errorf("cross(%v, %v) not orthogonal to v: dot=%v", p[0], p[1], d)
		}
	}
}

func TestVec4Cross3ZeroesW(t *testing.T) {
	result := Vec4{0, 1, 0, 7}.Cross3(Vec4{0, 0, 1, 3})

	expected := Vec4{1, 0, 0, 0}
	if result != expected {
		t.Errorf("Cross3 failed: expected %v, got %v", expected, result)
	}
}

func TestVec3Dot(t *testing.T) {
	result := Vec3{1, 2, 3}.Dot(Vec3{4, 5, 6})

	expected := 32.0 // 1*4 + 2*5 + 3*6 = 32
	if math.Abs(result-expected) > 1e-10 {
		t.Errorf("Dot failed: expected %v, got %v", expected, result)
	}
}

func TestLerpVec3(t *testing.T) {
	result := LerpVec3(5, 0, 10, Vec3{0, 0, 0}, Vec3{10, 20, 30})

	expected := Vec3{5, 10, 15}
	if result != expected {
		t.Errorf("Lerp failed: expected %v, got %v", expected, result)
	}
}

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	prev := logger.Load()
	var buf bytes.Buffer
	SetLogger(log.New(&buf, "", 0))
	t.Cleanup(func() { logger.Store(prev) })
	return &buf
}

func TestFmod(t *testing.T) {
	buf := captureLog(t)

	tests := []struct {
		a, b, want float64
	}{
		{7, 3, 1},
		{6, 3, 0},
		{5.5, 2, 1.5},
		{3, 3, 0},
	}
	for _, tt := range tests {
		if got := Fmod(tt.a, tt.b); math.Abs(got-tt.want) > 1e-10 {
			t.Errorf("Fmod(%v, %v): expected %v, got %v", tt.a, tt.b, tt.want, got)
		}
	}
	if buf.Len() != 0 {
		t.Errorf("unexpected diagnostic: %s", buf.String())
	}
}

func TestFmodBelowModulusPassesThrough(t *testing.T) {
	buf := captureLog(t)

	if got := Fmod(-2, 3); got != -2 {
		t.Errorf("expected -2 unchanged, got %v", got)
	}
	if !strings.Contains(buf.String(), "Fmod(-2, 3)") {
		t.Errorf("expected diagnostic, got %q", buf.String())
	}
}

func TestFmodLargeQuotient(t *testing.T) {
	buf := captureLog(t)

	done := make(chan float64, 1)
	go func() { done <- Fmod(1e20, 360) }()

	select {
	case got := <-done:
		if want := math.Mod(1e20, 360); got != want {
			t.Errorf("Fmod(1e20, 360): expected %v, got %v", want, got)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Fmod(1e20, 360) did not return")
	}
	if buf.Len() != 0 {
		t.Errorf("unexpected diagnostic: %s", buf.String())
	}
}

func TestFmodNonTerminating(t *testing.T) {
	buf := captureLog(t)

	if got := Fmod(4, 0); got != 4 {
		t.Errorf("expected 4 unchanged, got %v", got)
	}
	if got := Fmod(math.Inf(1), 2); !math.IsInf(got, 1) {
		t.Errorf("expected +Inf unchanged, got %v", got)
	}
	if strings.Count(buf.String(), "would not terminate") != 2 {
		t.Errorf("expected two diagnostics, got %q", buf.String())
	}
}
