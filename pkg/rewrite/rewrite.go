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

package rewrite

import (
	"bytes"
	"context"
	"io"

	"github.com/rs/zerolog"
	"github.com/walteh/urlflip/pkg/log"
	"github.com/walteh/urlflip/pkg/status"
	"github.com/walteh/urlflip/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// 🔧 Options contains the collaborators of a Rewriter
type Options struct {
	// Files reads and writes target files
	Files status.FileManager
	// Reporter tracks per-file outcomes, optional
	Reporter status.StatusReporter
	// Replacer applies rules to content, defaults to text.SimpleTextReplacer
	Replacer text.TextReplacer
	// Console receives one line per file, optional
	Console *log.Logger
	// DryRun computes results without writing
	DryRun bool
}

// 🎮 Rewriter applies replacement rules to a list of files
type Rewriter struct {
	files    status.FileManager
	reporter status.StatusReporter
	replacer text.TextReplacer
	console  *log.Logger
	dryRun   bool
}

// 🏭 New creates a new rewriter with the given options
func New(opts Options) (*Rewriter, error) {
	if opts.Files == nil {
		return nil, errors.Errorf("file manager is required")
	}
	if opts.Replacer == nil {
		opts.Replacer = text.NewSimpleTextReplacer()
	}
	if opts.Console == nil {
		opts.Console = log.NewWithZerolog(io.Discard, zerolog.Nop())
	}
	return &Rewriter{
		files:    opts.Files,
		reporter: opts.Reporter,
		replacer: opts.Replacer,
		console:  opts.Console,
		dryRun:   opts.DryRun,
	}, nil
}

// 🏃 Rewrite applies rules to every target file in order.
//
// Per-file failures are reported in the results and never stop the loop.
// The returned error is only set for invalid rules or a cancelled context;
// on cancellation the results gathered so far are still returned.
func (r *Rewriter) Rewrite(ctx context.Context, targetFiles []string, rules []text.ReplacementRule) ([]FileUpdateResult, error) {
	logger := zerolog.Ctx(ctx)

	if err := r.replacer.ValidateRules(rules); err != nil {
		return nil, errors.Errorf("validating rules: %w", err)
	}

	if r.reporter != nil {
		r.reporter.StartOperation(ctx, len(targetFiles))
		defer r.reporter.FinishOperation(ctx)
	}

	results := make([]FileUpdateResult, 0, len(targetFiles))
	for i, path := range targetFiles {
		if err := ctx.Err(); err != nil {
			logger.Warn().Int("remaining", len(targetFiles)-i).Msg("rewrite cancelled")
			return results, errors.Errorf("rewrite cancelled: %w", err)
		}

		result := r.rewriteFile(ctx, path, text.ForFile(rules, path))
		results = append(results, result)
		r.report(ctx, result)

		if r.reporter != nil {
			r.reporter.UpdateProgress(ctx, i+1)
		}
	}

	return results, nil
}

// 📄 rewriteFile processes a single file, converting every failure into the result
func (r *Rewriter) rewriteFile(ctx context.Context, path string, rules []text.ReplacementRule) FileUpdateResult {
	logger := zerolog.Ctx(ctx).With().Str("file", path).Logger()
	result := FileUpdateResult{Path: path, DryRun: r.dryRun}

	exists, err := r.files.FileExists(ctx, path)
	if err != nil {
		result.Err = &FileError{Kind: ErrRead, Path: path, Err: err}
		return result
	}
	if !exists {
		logger.Debug().Msg("file not found")
		return result
	}
	result.Existed = true

	content, err := r.files.ReadFile(ctx, path)
	if err != nil {
		result.Err = &FileError{Kind: ErrRead, Path: path, Err: err}
		return result
	}

	if len(rules) == 0 {
		logger.Debug().Msg("no rules apply to file")
		return result
	}

	replaced, err := r.replacer.ReplaceText(logger.WithContext(ctx), bytes.NewReader(content), rules)
	if err != nil {
		result.Err = &FileError{Kind: ErrRead, Path: path, Err: err}
		return result
	}

	if !replaced.WasModified || bytes.Equal(replaced.ModifiedContent, content) {
		return result
	}

	result.Changed = true
	result.Replacements = replaced.ReplacementCount

	if r.dryRun {
		return result
	}

	if err := r.files.WriteFileAtomic(ctx, path, replaced.ModifiedContent); err != nil {
		result.Err = &FileError{Kind: ErrWrite, Path: path, Err: err}
		return result
	}

	return result
}

// 📝 report tracks the result and prints its status line
func (r *Rewriter) report(ctx context.Context, result FileUpdateResult) {
	st := result.Status()

	if r.reporter != nil {
		r.reporter.TrackFile(ctx, result.Path, status.FileInfo{
			Status:       st,
			Replacements: result.Replacements,
			Error:        result.Err,
		})
	}

	r.console.LogFileOperation(ctx, log.FileOperation{
		Path:         result.Path,
		Outcome:      outcomeFor(st),
		Replacements: result.Replacements,
		Err:          result.Err,
	})
}

func outcomeFor(st status.FileStatus) log.Outcome {
	switch st {
	case status.StatusUpdated:
		return log.OutcomeUpdated
	case status.StatusWouldUpdate:
		return log.OutcomeWouldUpdate
	case status.StatusMissing:
		return log.OutcomeMissing
	case status.StatusError:
		return log.OutcomeError
	default:
		return log.OutcomeUnchanged
	}
}
