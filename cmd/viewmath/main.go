package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/philipparndt/viewmath/pkg/config"
	"github.com/philipparndt/viewmath/pkg/vecmath"
	"github.com/philipparndt/viewmath/version"
	"github.com/spf13/cobra"
)

// rootOptions holds the persistent flags shared by every subcommand.
type rootOptions struct {
	format     string
	quiet      bool
	configPath string

	profile *config.Profile
}

// printer returns the output printer for cmd, honoring the profile's format
// unless --format was given.
func (o *rootOptions) printer(cmd *cobra.Command) *printer {
	format := o.format
	if !cmd.Flags().Changed("format") && o.profile != nil {
		format = o.profile.Format
	}
	return &printer{w: cmd.OutOrStdout(), format: format}
}

// currentProfile returns the --config profile, or the defaults without one.
func (o *rootOptions) currentProfile() *config.Profile {
	if o.profile != nil {
		return o.profile
	}
	p := config.Default()
	return &p
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "viewmath",
		Short: "A CLI for 3D view, projection and transform matrices",
		Long: `viewmath builds and inspects the 4x4 matrices behind a 3D viewer:
look-at views, perspective and orthographic projections, frustums,
point transforms, inverses and axis-aligned bounds.

Matrices are read and printed column-major, the layout they are stored in.`,
		Version:       version.GetFullVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			switch opts.format {
			case config.FormatText, config.FormatJSON, config.FormatYAML:
			default:
				return fmt.Errorf("unknown output format %q", opts.format)
			}

			log.SetFlags(log.LstdFlags | log.Lshortfile)
			if opts.quiet {
				log.SetOutput(io.Discard)
				vecmath.SetLogger(nil)
			} else {
				log.SetOutput(cmd.ErrOrStderr())
				vecmath.SetLogger(log.New(cmd.ErrOrStderr(), "vecmath: ", log.LstdFlags))
			}

			if opts.configPath != "" {
				p, err := config.Load(opts.configPath)
				if err != nil {
					return err
				}
				opts.profile = p
			}
			return nil
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&opts.format, "format", "f", config.FormatText, "Output format (text, json, yaml)")
	flags.BoolVarP(&opts.quiet, "quiet", "q", false, "Suppress diagnostics")
	flags.StringVarP(&opts.configPath, "config", "c", "", "Camera profile (TOML)")

	rootCmd.AddCommand(
		newLookAtCmd(opts),
		newPerspectiveCmd(opts),
		newOrthoCmd(opts),
		newFrustumCmd(opts),
		newTransformCmd(opts),
		newInvertCmd(opts),
		newBoundsCmd(opts),
		newMeshCmd(opts),
		newCameraCmd(opts),
		newProfileCmd(opts),
		newVersionCmd(),
	)
	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
