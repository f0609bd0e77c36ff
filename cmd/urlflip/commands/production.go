package commands

import (
	"github.com/spf13/cobra"
	"github.com/walteh/urlflip/cmd/urlflip/opts"
	"github.com/walteh/urlflip/pkg/config"
)

// NewProductionCmd creates the production command
func NewProductionCmd(opts *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "production",
		Short: "Point the project at the production endpoints",
		Long: `Production rewrites every localhost URL in the configured files to the
production frontend and backend URLs. Running it twice is a no-op.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProfile(cmd, opts, config.ProfileProduction)
		},
	}

	return cmd
}

// NewLocalhostCmd creates the localhost command
func NewLocalhostCmd(opts *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "localhost",
		Aliases: []string{"local", "revert"},
		Short:   "Point the project back at the local endpoints",
		Long: `Localhost rewrites the production frontend and backend URLs in the
configured files back to their localhost equivalents.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProfile(cmd, opts, config.ProfileLocalhost)
		},
	}

	return cmd
}
