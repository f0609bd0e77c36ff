package commands

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/pterm/pterm"
	"github.com/walteh/urlflip/pkg/config"
	"github.com/walteh/urlflip/pkg/log"
	"github.com/walteh/urlflip/pkg/status"
)

// 📢 summary prints the framing around a run: what is about to be rewritten
// and what the project now points at. Messages go through the console logger
// in ctx, tables are rendered to out.
type summary struct {
	out io.Writer
}

func newSummary(out io.Writer) *summary {
	return &summary{out: out}
}

// 📝 start lists the profile's rules before any file is touched
func (s *summary) start(ctx context.Context, profile *config.Profile, files int, dryRun bool) error {
	action := "rewriting"
	if dryRun {
		action = "checking"
	}
	log.FromContext(ctx).Header(fmt.Sprintf("%s %d files with profile %s", action, files, profile.Name))

	data := pterm.TableData{{"from", "to", "files"}}
	for _, r := range profile.Rules {
		scope := r.File
		if scope == "" {
			scope = "*"
		}
		data = append(data, []string{r.Old, r.New, scope})
	}

	return pterm.DefaultTable.WithHasHeader().WithData(data).WithWriter(s.out).Render()
}

// 📊 finish restates the effective endpoints and the per-status counts
func (s *summary) finish(ctx context.Context, endpoints config.Endpoints, counts map[status.FileStatus]int, files []status.FileInfo, dryRun bool) error {
	console := log.FromContext(ctx)
	console.LogNewline()

	data := pterm.TableData{
		{"endpoint", "url"},
		{"local backend", endpoints.LocalBackend},
		{"local frontend", endpoints.LocalFrontend},
		{"production backend", endpoints.ProductionBackend},
		{"production frontend", endpoints.ProductionFrontend},
	}
	if err := pterm.DefaultTable.WithHasHeader().WithData(data).WithWriter(s.out).Render(); err != nil {
		return err
	}

	msg := formatCounts(counts)
	if failed := failedPaths(files); len(failed) > 0 {
		console.Warning(fmt.Sprintf("%s (failed: %s)", msg, strings.Join(failed, ", ")))
	} else {
		console.Success(msg)
	}

	if dryRun {
		console.Info("dry run, nothing written")
	}

	return nil
}

// formatCounts renders counts in a fixed order, skipping empty buckets
func formatCounts(counts map[status.FileStatus]int) string {
	order := []status.FileStatus{
		status.StatusUpdated,
		status.StatusWouldUpdate,
		status.StatusUnchanged,
		status.StatusMissing,
		status.StatusError,
	}

	parts := make([]string, 0, len(order))
	for _, st := range order {
		if n := counts[st]; n > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", n, st))
		}
	}
	if len(parts) == 0 {
		return "no files processed"
	}
	return strings.Join(parts, ", ")
}

func failedPaths(files []status.FileInfo) []string {
	var failed []string
	for _, f := range files {
		if f.Status == status.StatusError {
			failed = append(failed, f.Path)
		}
	}
	return failed
}
