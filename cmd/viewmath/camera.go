package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/philipparndt/viewmath/pkg/analysis"
	"github.com/philipparndt/viewmath/pkg/config"
	"github.com/philipparndt/viewmath/pkg/vecmath"
	"github.com/philipparndt/viewmath/pkg/viewer"
	"github.com/philipparndt/viewmath/pkg/watcher"
	"github.com/spf13/cobra"
)

type screenPoint struct {
	Point vecmath.Vec3 `json:"point" yaml:"point"`
	X     float64      `json:"x" yaml:"x"`
	Y     float64      `json:"y" yaml:"y"`
	Depth float64      `json:"depth" yaml:"depth"`
}

type cameraResult struct {
	Pose           viewer.Pose       `json:"pose" yaml:"pose"`
	Projection     viewer.Projection `json:"projection" yaml:"projection"`
	FOV            float64           `json:"fov" yaml:"fov"`
	Near           float64           `json:"near" yaml:"near"`
	Far            float64           `json:"far" yaml:"far"`
	Aspect         float64           `json:"aspect" yaml:"aspect"`
	View           vecmath.Mat4      `json:"view" yaml:"view"`
	ProjMatrix     vecmath.Mat4      `json:"projection_matrix" yaml:"projection_matrix"`
	ViewProjection vecmath.Mat4      `json:"view_projection" yaml:"view_projection"`
	Screen         []screenPoint     `json:"screen,omitempty" yaml:"screen,omitempty"`
}

type cameraOptions struct {
	view          string
	yaw, pitch    float64
	zoom          float64
	width, height float64
	points        pointsValue
	watch         bool
	debounce      time.Duration
}

// camera builds the camera for a profile and applies the command line
// adjustments on top of it.
func (o *cameraOptions) camera(p *config.Profile) (*viewer.Camera, error) {
	if o.view != "" {
		adjusted := *p
		adjusted.Camera.View = o.view
		p = &adjusted
	}
	c, err := p.NewCamera()
	if err != nil {
		return nil, err
	}

	yaw := o.yaw
	if yaw >= 360 {
		yaw = vecmath.Fmod(yaw, 360)
	}
	if yaw != 0 || o.pitch != 0 {
		c.Orbit(yaw*math.Pi/180, o.pitch*math.Pi/180)
	}
	if o.zoom != 0 {
		c.Zoom(o.zoom)
	}
	return c, nil
}

func (o *cameraOptions) result(c *viewer.Camera) cameraResult {
	r := cameraResult{
		Pose:           c.Pose(),
		Projection:     c.Projection,
		FOV:            c.FOV * 180 / math.Pi,
		Near:           c.Near,
		Far:            c.Far,
		Aspect:         c.Aspect,
		View:           c.View(),
		ProjMatrix:     c.ProjectionMatrix(),
		ViewProjection: c.ViewProjection(),
	}
	for _, p := range o.points {
		x, y, depth := c.Project(p, o.width, o.height)
		r.Screen = append(r.Screen, screenPoint{Point: p, X: x, Y: y, Depth: depth})
	}
	return r
}

func writeCamera(w io.Writer, r cameraResult) {
	heading(w, "Camera")
	fmt.Fprintf(w, "Eye: %s\n", analysis.FormatVector(r.Pose.Eye))
	fmt.Fprintf(w, "Look: %s\n", analysis.FormatVector(r.Pose.Look))
	fmt.Fprintf(w, "Up: %s\n", analysis.FormatVector(r.Pose.Up))
	fmt.Fprintf(w, "Projection: %s\n", r.Projection)
	if r.Projection == viewer.Perspective {
		fmt.Fprintf(w, "FOV: %.6f degrees\n", r.FOV)
	}
	fmt.Fprintf(w, "Near: %.6f\n", r.Near)
	fmt.Fprintf(w, "Far: %.6f\n", r.Far)
	fmt.Fprintf(w, "Aspect: %.6f\n", r.Aspect)

	fmt.Fprintln(w, "\nView Matrix:")
	fmt.Fprint(w, analysis.FormatMatrix(r.View, "  "))
	fmt.Fprintln(w, "\nProjection Matrix:")
	fmt.Fprint(w, analysis.FormatMatrix(r.ProjMatrix, "  "))
	fmt.Fprintln(w, "\nView-Projection Matrix:")
	fmt.Fprint(w, analysis.FormatMatrix(r.ViewProjection, "  "))

	if len(r.Screen) > 0 {
		fmt.Fprintln(w, "\nScreen Positions:")
		fmt.Fprintf(w, "%-6s %-35s %-12s %-12s %-12s\n", "Index", "Point", "X", "Y", "Depth")
		for i, s := range r.Screen {
			fmt.Fprintf(w, "%-6d %-35s %-12.3f %-12.3f %-12.6f\n", i+1, analysis.FormatVector(s.Point), s.X, s.Y, s.Depth)
		}
	}
}

func newCameraCmd(opts *rootOptions) *cobra.Command {
	co := &cameraOptions{}

	cmd := &cobra.Command{
		Use:   "camera",
		Short: "Show the matrices of a camera profile",
		Long: `Show the pose, view and projection matrices of the camera described by
--config (or the default profile). --view places the eye on an axis preset
(right, left, front, back, top, bottom or 1-6), --yaw and --pitch orbit it
around the look point and --zoom moves it along the view direction.

With --watch the profile is reloaded and the camera printed again whenever
the file changes, until interrupted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if co.view != "" {
				if _, err := viewer.ParseAxisView(co.view); err != nil {
					return err
				}
			}

			var mu sync.Mutex
			render := func(p *config.Profile) error {
				c, err := co.camera(p)
				if err != nil {
					return err
				}
				r := co.result(c)

				mu.Lock()
				defer mu.Unlock()
				return opts.printer(cmd).print(r, func(w io.Writer) { writeCamera(w, r) })
			}

			if err := render(opts.currentProfile()); err != nil {
				return err
			}
			if !co.watch {
				return nil
			}
			if opts.configPath == "" {
				return errors.New("--watch needs a profile, use --config")
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			return watchProfile(ctx, opts.configPath, co.debounce, render)
		},
	}

	cmd.Flags().StringVar(&co.view, "view", "", "Axis view preset")
	cmd.Flags().Float64Var(&co.yaw, "yaw", 0, "Orbit around the up vector, in degrees")
	cmd.Flags().Float64Var(&co.pitch, "pitch", 0, "Orbit around the right vector, in degrees")
	cmd.Flags().Float64Var(&co.zoom, "zoom", 0, "Relative change of the eye distance, -0.5 halves it")
	cmd.Flags().Float64Var(&co.width, "width", 800, "Screen width for --points")
	cmd.Flags().Float64Var(&co.height, "height", 600, "Screen height for --points")
	cmd.Flags().VarP(&co.points, "points", "p", "World points to project to the screen, x,y,z;x,y,z")
	cmd.Flags().BoolVarP(&co.watch, "watch", "w", false, "Reprint when the profile changes")
	cmd.Flags().DurationVar(&co.debounce, "debounce", 200*time.Millisecond, "Delay before reloading a changed profile")
	return cmd
}

var reloadRetryDelay = 100 * time.Millisecond

// watchProfile calls render with the reloaded profile on every change to
// path until ctx is done. A profile that fails to load is reported and the
// previous output stays current.
func watchProfile(ctx context.Context, path string, debounce time.Duration, render func(*config.Profile) error) error {
	fw, err := watcher.NewFileWatcher(debounce)
	if err != nil {
		return err
	}
	defer fw.Close()

	err = fw.Watch([]string{path}, func(changed string) {
		// Editors may still be writing; retry unless the profile is
		// complete but invalid.
		var p *config.Profile
		err := retry.Do(func() error {
			var err error
			p, err = config.Load(changed)
			return err
		},
			retry.Context(ctx),
			retry.DelayType(retry.FixedDelay),
			retry.Delay(reloadRetryDelay),
			retry.Attempts(3),
			retry.LastErrorOnly(true),
			retry.RetryIf(func(err error) bool {
				return !errors.Is(err, config.ErrInvalidProfile)
			}),
		)
		if err != nil {
			log.Printf("Failed to reload profile: %v", err)
			return
		}
		if err := render(p); err != nil {
			log.Printf("Failed to render camera: %v", err)
		}
	})
	if err != nil {
		return err
	}

	log.Printf("Watching %s for changes", path)
	if err := fw.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
