// Package config loads camera profiles from TOML files.
package config

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/philipparndt/viewmath/pkg/geometry"
	"github.com/philipparndt/viewmath/pkg/vecmath"
	"github.com/philipparndt/viewmath/pkg/viewer"
)

// ErrInvalidProfile is wrapped by every validation error.
var ErrInvalidProfile = errors.New("invalid profile")

// Output formats understood by the CLI.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Profile describes a camera and how results are printed.
type Profile struct {
	Format     string     `toml:"format"`
	Camera     Camera     `toml:"camera"`
	Projection Projection `toml:"projection"`
	Bounds     *Bounds    `toml:"bounds,omitempty"`
}

// Camera is the pose part of a profile. When View names an axis preset the
// eye is placed on that axis, keeping its distance to Look.
type Camera struct {
	Eye  vecmath.Vec3 `toml:"eye"`
	Look vecmath.Vec3 `toml:"look"`
	Up   vecmath.Vec3 `toml:"up"`
	View string       `toml:"view,omitempty"`
}

// Projection holds the lens. FOV is in degrees; OrthoScale is the
// half-height of the orthographic view volume.
type Projection struct {
	Kind       string  `toml:"kind"`
	FOV        float64 `toml:"fov"`
	Near       float64 `toml:"near"`
	Far        float64 `toml:"far"`
	Aspect     float64 `toml:"aspect"`
	OrthoScale float64 `toml:"ortho_scale"`
}

// Bounds is the region the camera is fitted to. A fitted camera derives its
// distance and clip planes from the bounds instead of the profile.
type Bounds struct {
	Min vecmath.Vec3 `toml:"min"`
	Max vecmath.Vec3 `toml:"max"`
}

// Default returns the profile used for missing keys.
func Default() Profile {
	return Profile{
		Format: FormatText,
		Camera: Camera{
			Eye:  vecmath.Vec3{0, 0, 10},
			Look: vecmath.Vec3{0, 0, 0},
			Up:   vecmath.Vec3{0, 1, 0},
		},
		Projection: Projection{
			Kind:       string(viewer.Perspective),
			FOV:        45,
			Near:       0.1,
			Far:        100,
			Aspect:     1,
			OrthoScale: 1,
		},
	}
}

// Load reads and validates a profile file.
func Load(path string) (*Profile, error) {
	p := Default()
	md, err := toml.DecodeFile(path, &p)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile %s: %w", path, err)
	}
	return finish(&p, md, path)
}

// Parse decodes and validates a profile from TOML text.
func Parse(data string) (*Profile, error) {
	p := Default()
	md, err := toml.Decode(data, &p)
	if err != nil {
		return nil, fmt.Errorf("failed to parse profile: %w", err)
	}
	return finish(&p, md, "profile")
}

func finish(p *Profile, md toml.MetaData, source string) (*Profile, error) {
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%s: %w: unknown keys %s", source, ErrInvalidProfile, strings.Join(keys, ", "))
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", source, err)
	}
	return p, nil
}

// Validate checks the profile for values the camera cannot use.
func (p *Profile) Validate() error {
	switch p.Format {
	case FormatText, FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("%w: unknown format %q", ErrInvalidProfile, p.Format)
	}

	proj := p.Projection
	switch viewer.Projection(proj.Kind) {
	case viewer.Perspective:
		if !(proj.FOV > 0 && proj.FOV < 180) {
			return fmt.Errorf("%w: fov %g must be in (0, 180) degrees", ErrInvalidProfile, proj.FOV)
		}
		if !(proj.Near > 0) {
			return fmt.Errorf("%w: near %g must be positive", ErrInvalidProfile, proj.Near)
		}
	case viewer.Orthographic:
		if !(proj.OrthoScale > 0) {
			return fmt.Errorf("%w: ortho_scale %g must be positive", ErrInvalidProfile, proj.OrthoScale)
		}
	default:
		return fmt.Errorf("%w: unknown projection %q", ErrInvalidProfile, proj.Kind)
	}
	if !(proj.Near < proj.Far) {
		return fmt.Errorf("%w: near %g must be less than far %g", ErrInvalidProfile, proj.Near, proj.Far)
	}
	if !(proj.Aspect > 0) || math.IsInf(proj.Aspect, 0) {
		return fmt.Errorf("%w: aspect %g must be positive", ErrInvalidProfile, proj.Aspect)
	}

	if p.Camera.Up.SqLen() == 0 {
		return fmt.Errorf("%w: up vector is zero", ErrInvalidProfile)
	}
	if p.Camera.View != "" {
		if _, err := viewer.ParseAxisView(p.Camera.View); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidProfile, err)
		}
	}

	if b := p.Bounds; b != nil {
		for i := 0; i < 3; i++ {
			if b.Min[i] > b.Max[i] {
				return fmt.Errorf("%w: bounds min %v exceeds max %v", ErrInvalidProfile, b.Min, b.Max)
			}
		}
	}
	return nil
}

// NewCamera builds the camera the profile describes.
func (p *Profile) NewCamera() (*viewer.Camera, error) {
	proj := p.Projection
	c := &viewer.Camera{
		Eye:        p.Camera.Eye,
		Look:       p.Camera.Look,
		Up:         p.Camera.Up,
		FOV:        proj.FOV * math.Pi / 180,
		Near:       proj.Near,
		Far:        proj.Far,
		Aspect:     proj.Aspect,
		Projection: viewer.Projection(proj.Kind),
		OrthoScale: proj.OrthoScale,
	}

	if p.Camera.View != "" {
		view, err := viewer.ParseAxisView(p.Camera.View)
		if err != nil {
			return nil, err
		}
		dist := c.Distance()
		if dist == 0 {
			dist = 1
		}
		pose, err := view.Pose(c.Look, dist)
		if err != nil {
			return nil, err
		}
		c.SetPose(pose)
	}

	if p.Bounds != nil {
		c.Fit(geometry.BoundaryFromMinMax(p.Bounds.Min, p.Bounds.Max))
	}
	return c, nil
}

// Encode writes the profile as TOML.
func (p *Profile) Encode(w io.Writer) error {
	if err := toml.NewEncoder(w).Encode(p); err != nil {
		return fmt.Errorf("failed to encode profile: %w", err)
	}
	return nil
}
