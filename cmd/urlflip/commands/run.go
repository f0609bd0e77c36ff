package commands

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/urlflip/cmd/urlflip/opts"
	"github.com/walteh/urlflip/pkg/log"
	"github.com/walteh/urlflip/pkg/rewrite"
	"github.com/walteh/urlflip/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// 🏃 runProfile loads the configuration and rewrites its files with the
// named profile's rules
func runProfile(cmd *cobra.Command, o *opts.RootOpts, name string) error {
	ctx := cmd.Context()
	ctx = zerolog.Ctx(ctx).With().Str("command", cmd.Name()).Str("profile", name).Logger().WithContext(ctx)
	logger := zerolog.Ctx(ctx)

	cfg, err := o.LoadConfig(ctx)
	if err != nil {
		return err
	}

	profile, err := cfg.Profile(name)
	if err != nil {
		return err
	}

	baseDir, err := o.ResolveBaseDir(cfg)
	if err != nil {
		return err
	}

	console := log.NewWithZerolog(o.Stdout, *logger)
	ctx = log.NewContext(ctx, console)

	mgr := status.New(baseDir, logger)
	rw, err := rewrite.New(rewrite.Options{
		Files:    mgr,
		Reporter: mgr,
		Console:  console,
		DryRun:   o.DryRun,
	})
	if err != nil {
		return errors.Errorf("creating rewriter: %w", err)
	}

	ui := newSummary(o.Stdout)
	if err := ui.start(ctx, profile, len(cfg.Files), o.DryRun); err != nil {
		return errors.Errorf("printing summary: %w", err)
	}

	console.StartRunOperation(ctx, log.RunOperation{
		Profile: profile.Name,
		BaseDir: baseDir,
		DryRun:  o.DryRun,
	})
	results, rewriteErr := rw.Rewrite(ctx, cfg.Files, profile.ReplacementRules())
	console.EndRunOperation(ctx)

	if rewriteErr != nil && results == nil {
		return errors.Errorf("rewriting files: %w", rewriteErr)
	}

	files, err := mgr.ListFiles(ctx)
	if err != nil {
		return errors.Errorf("listing results: %w", err)
	}
	if err := ui.finish(ctx, cfg.Endpoints, mgr.Counts(), files, o.DryRun); err != nil {
		return errors.Errorf("printing summary: %w", err)
	}

	if rewriteErr != nil {
		console.Errorf("stopped after %d of %d files, the rest were not touched", len(results), len(cfg.Files))
		return errors.Errorf("rewriting files: %w", rewriteErr)
	}

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
		}
	}
	if failed > 0 && o.FailOnError {
		return errors.Errorf("%d of %d files failed", failed, len(results))
	}

	return nil
}
