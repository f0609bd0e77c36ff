package commands

import (
	"github.com/spf13/cobra"
	"github.com/walteh/urlflip/cmd/urlflip/opts"
)

// NewApplyCmd creates the apply command
func NewApplyCmd(opts *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "apply <profile>",
		Short: "Rewrite the configured files with a named profile",
		Long: `Apply runs the rules of any profile, built-in or defined in the config
file. Run "urlflip profiles" to see what is available.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProfile(cmd, opts, args[0])
		},
	}

	return cmd
}
