package main

import (
	"fmt"
	"os"

	"github.com/philipparndt/viewmath/version"
	"github.com/spf13/cobra"
)

func newProfileCmd(opts *rootOptions) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Print the effective camera profile as TOML",
		Long: `Print the profile loaded with --config, or the defaults without one.
The output is a complete profile that can be edited and passed back with
--config.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := opts.currentProfile()
			if output == "" {
				return p.Encode(cmd.OutOrStdout())
			}

			f, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", output, err)
			}
			if err := p.Encode(f); err != nil {
				f.Close()
				return err
			}
			return f.Close()
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Write the profile to a file instead of stdout")
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "viewmath %s\n", version.GetFullVersion())
		},
	}
}
