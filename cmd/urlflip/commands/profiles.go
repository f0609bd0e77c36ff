package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/walteh/urlflip/cmd/urlflip/opts"
)

// NewProfilesCmd creates the profiles command
func NewProfilesCmd(opts *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profiles",
		Short: "List the available profiles and their rules",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.LoadConfig(cmd.Context())
			if err != nil {
				return err
			}

			out := opts.Stdout
			for i, p := range cfg.Profiles {
				if i > 0 {
					fmt.Fprintln(out)
				}
				fmt.Fprintln(out, p.Name)
				if p.Description != "" {
					fmt.Fprintf(out, "  %s\n", p.Description)
				}
				for _, r := range p.Rules {
					line := fmt.Sprintf("  %s -> %s", r.Old, r.New)
					if r.File != "" {
						line += fmt.Sprintf(" [%s]", r.File)
					}
					fmt.Fprintln(out, line)
				}
			}

			return nil
		},
	}

	return cmd
}
