package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/philipparndt/viewmath/pkg/vecmath"
	"github.com/spf13/pflag"
)

// parseFloats splits a comma separated list of exactly n numbers.
func parseFloats(s string, n int) ([]float64, error) {
	parts := strings.Split(s, ",")
	if len(parts) != n {
		return nil, fmt.Errorf("expected %d comma separated values, got %d", n, len(parts))
	}
	out := make([]float64, n)
	for i, part := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, fmt.Errorf("value %d: %w", i+1, err)
		}
		out[i] = f
	}
	return out, nil
}

func formatFloats(fs []float64) string {
	parts := make([]string, len(fs))
	for i, f := range fs {
		parts[i] = strconv.FormatFloat(f, 'g', -1, 64)
	}
	return strings.Join(parts, ",")
}

// vec3Value is a pflag.Value for "x,y,z".
type vec3Value vecmath.Vec3

var _ pflag.Value = (*vec3Value)(nil)

func newVec3Value(def vecmath.Vec3, p *vecmath.Vec3) *vec3Value {
	*p = def
	return (*vec3Value)(p)
}

func (v *vec3Value) Set(s string) error {
	fs, err := parseFloats(s, 3)
	if err != nil {
		return err
	}
	copy(v[:], fs)
	return nil
}

func (v *vec3Value) String() string { return formatFloats(v[:]) }
func (v *vec3Value) Type() string   { return "x,y,z" }

// mat4Value is a pflag.Value for 16 comma separated numbers in column-major
// order, the layout the matrix is stored in.
type mat4Value vecmath.Mat4

var _ pflag.Value = (*mat4Value)(nil)

func newMat4Value(def vecmath.Mat4, p *vecmath.Mat4) *mat4Value {
	*p = def
	return (*mat4Value)(p)
}

func (m *mat4Value) Set(s string) error {
	fs, err := parseFloats(s, 16)
	if err != nil {
		return err
	}
	copy(m[:], fs)
	return nil
}

func (m *mat4Value) String() string { return formatFloats(m[:]) }
func (m *mat4Value) Type() string   { return "m0,...,m15" }

// pointsValue is a pflag.Value for "x,y,z;x,y,z;...". Repeating the flag
// appends.
type pointsValue []vecmath.Vec3

var _ pflag.Value = (*pointsValue)(nil)

func (p *pointsValue) Set(s string) error {
	for i, item := range strings.Split(s, ";") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		fs, err := parseFloats(item, 3)
		if err != nil {
			return fmt.Errorf("point %d: %w", i+1, err)
		}
		*p = append(*p, vecmath.Vec3{fs[0], fs[1], fs[2]})
	}
	return nil
}

func (p *pointsValue) String() string {
	parts := make([]string, len(*p))
	for i, v := range *p {
		parts[i] = formatFloats(v[:])
	}
	return strings.Join(parts, ";")
}

func (p *pointsValue) Type() string { return "points" }

// parseIndices reads a comma separated index list.
func parseIndices(s string) ([]uint32, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	out := make([]uint32, len(parts))
	for i, part := range parts {
		n, err := strconv.ParseUint(strings.TrimSpace(part), 10, 32)
		if err != nil {
			return nil, fmt.Errorf("index %d: %w", i+1, err)
		}
		out[i] = uint32(n)
	}
	return out, nil
}
