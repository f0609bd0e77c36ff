// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/urlflip/cmd/urlflip/commands"
	"github.com/walteh/urlflip/cmd/urlflip/opts"
)

// newRootCmd builds the command tree with its own set of options
func newRootCmd() *cobra.Command {
	o := &opts.RootOpts{}

	rootCmd := &cobra.Command{
		Use:   "urlflip",
		Short: "Switch a project between localhost and production URLs",
		Long: `urlflip rewrites hard-coded URLs in a fixed list of files, so a project
can be pointed at production before a deploy and back at localhost after.
Replacement is literal and ordered, and running a profile twice is a no-op.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			o.Stdout = cmd.OutOrStdout()
			o.Stderr = cmd.ErrOrStderr()
			cmd.SetContext(setupLogging(cmd, o))
		},
	}

	addRootFlags(rootCmd, o)

	rootCmd.AddCommand(
		commands.NewProductionCmd(o),
		commands.NewLocalhostCmd(o),
		commands.NewApplyCmd(o),
		commands.NewProfilesCmd(o),
		newVersionCmd(),
	)

	return rootCmd
}

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command, o *opts.RootOpts) {
	flags := cmd.PersistentFlags()
	flags.StringVarP(&o.ConfigFile, "config", "c", "", "config file path (default: .urlflip.hcl, .urlflip.yaml, .urlflip.yml or .urlflip.json if present)")
	flags.StringVar(&o.BaseDir, "base-dir", "", "directory the target files are relative to")
	flags.BoolVarP(&o.Debug, "debug", "d", false, "enable debug logging")
	flags.BoolVar(&o.DryRun, "dry-run", false, "report what would change without writing")
	flags.BoolVar(&o.FailOnError, "fail-on-error", false, "exit non-zero when any file could not be read or written")

	flags.StringVar(&o.Endpoints.LocalBackend, "local-backend", "", "local backend URL")
	flags.StringVar(&o.Endpoints.LocalFrontend, "local-frontend", "", "local frontend URL")
	flags.StringVar(&o.Endpoints.ProductionBackend, "production-backend", "", "production backend URL")
	flags.StringVar(&o.Endpoints.ProductionFrontend, "production-frontend", "", "production frontend URL")
}

// setupLogging attaches a zerolog logger to the command context
func setupLogging(cmd *cobra.Command, o *opts.RootOpts) context.Context {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: o.Stderr, NoColor: o.Stderr != os.Stderr}).
		Level(o.LogLevel()).
		With().Timestamp().Logger()
	return logger.WithContext(cmd.Context())
}
