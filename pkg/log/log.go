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

package log

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
)

// 🎨 Display configuration
const (
	fileIndent   = 4  // spaces to indent file entries
	nameWidth    = 60 // Base width for file path
	statusWidth  = 14 // Width for status text
	outcomeWidth = 12 // Width for the replacement count column
)

// 🎯 Outcome is the per-file result kind shown on the console
type Outcome string

const (
	OutcomeUpdated     Outcome = "updated"
	OutcomeUnchanged   Outcome = "unchanged"
	OutcomeMissing     Outcome = "missing"
	OutcomeError       Outcome = "error"
	OutcomeWouldUpdate Outcome = "would update"
)

// 🎯 FileOperation represents a rewritten (or skipped) file for logging
type FileOperation struct {
	Path         string  // File path as listed in the target set
	Outcome      Outcome // What happened to the file
	Replacements int     // Number of replacements made
	Err          error   // Read or write failure
}

// 📦 RunOperation represents one rewrite run for logging
type RunOperation struct {
	Profile string // Rule profile name
	BaseDir string // Directory target paths are resolved against
	DryRun  bool   // Whether files are left untouched
}

// 🎯 Logger handles structured logging with console output
type Logger struct {
	zlog       zerolog.Logger
	console    io.Writer
	mu         sync.Mutex
	currentOp  *RunOperation
	operations []FileOperation
}

// 🏭 NewWithZerolog creates a logger that writes structured records to zlog
func NewWithZerolog(console io.Writer, zlog zerolog.Logger) *Logger {
	return &Logger{
		zlog:    zlog,
		console: console,
	}
}

// 🔑 contextKey is the type for context values
type contextKey struct{}

// 🎯 FromContext gets the logger from context
func FromContext(ctx context.Context) *Logger {
	logger, ok := ctx.Value(contextKey{}).(*Logger)
	if !ok {
		panic("logger not found in context")
	}
	return logger
}

// 🎯 NewContext adds the logger to context
func NewContext(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, l)
}

// 📝 formatFileOperation formats a file operation for display
func (l *Logger) formatFileOperation(op FileOperation) string {
	var symbol rune
	var symbolColor color.Attribute
	switch op.Outcome {
	case OutcomeUpdated:
		symbol = '✓'
		symbolColor = color.FgGreen
	case OutcomeWouldUpdate:
		symbol = '~'
		symbolColor = color.FgBlue
	case OutcomeMissing:
		symbol = '⚠'
		symbolColor = color.FgYellow
	case OutcomeError:
		symbol = '✗'
		symbolColor = color.FgRed
	default:
		symbol = '•'
		symbolColor = color.FgCyan
	}

	count := ""
	if op.Replacements > 0 {
		count = fmt.Sprintf("%d replaced", op.Replacements)
	}

	line := fmt.Sprintf("%s%s %s %s %s",
		fmt.Sprintf("%*s", fileIndent, ""),
		color.New(symbolColor).Sprint(string(symbol)),
		fmt.Sprintf("%-*s", nameWidth, op.Path),
		color.New(symbolColor).Sprint(fmt.Sprintf("%-*s", statusWidth, string(op.Outcome))),
		fmt.Sprintf("%-*s", outcomeWidth, count))

	if op.Err != nil {
		line += color.New(color.FgRed).Sprint(op.Err.Error())
	}
	return line
}

// 📝 LogFileOperation logs a file operation
func (l *Logger) LogFileOperation(ctx context.Context, op FileOperation) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.operations = append(l.operations, op)

	fmt.Fprintln(l.console, l.formatFileOperation(op))

	ev := l.zlog.Info()
	if op.Err != nil {
		ev = l.zlog.Error().Err(op.Err)
	}
	ev.Str("file", op.Path).
		Str("outcome", string(op.Outcome)).
		Int("replacements", op.Replacements).
		Msg("file operation")
}

// 📝 StartRunOperation starts a new rewrite run
func (l *Logger) StartRunOperation(ctx context.Context, op RunOperation) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.currentOp = &op
	l.operations = nil

	mode := "rewriting"
	if op.DryRun {
		mode = "checking"
	}

	fmt.Fprintf(l.console, "[%s %s]\n", mode,
		color.New(color.FgCyan).Sprint(op.BaseDir))

	fmt.Fprintf(l.console, "%s %s\n",
		color.New(color.FgMagenta).Sprint("◆"),
		color.New(color.Bold).Sprint(op.Profile))

	l.zlog.Info().
		Str("profile", op.Profile).
		Str("base_dir", op.BaseDir).
		Bool("dry_run", op.DryRun).
		Msg("starting rewrite")
}

// 📝 EndRunOperation ends the current rewrite run
func (l *Logger) EndRunOperation(ctx context.Context) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.currentOp == nil {
		return
	}

	l.zlog.Info().
		Str("profile", l.currentOp.Profile).
		Int("files", len(l.operations)).
		Msg("rewrite complete")

	l.currentOp = nil
	l.operations = nil
}

// 📝 LogNewline logs a newline
func (l *Logger) LogNewline() {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.console)
}

// 📝 Header prints the run banner
func (l *Logger) Header(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	name := color.New(color.Bold, color.FgCyan).Sprint("urlflip")
	fmt.Fprintf(l.console, "\n%s %s\n\n", name, color.New(color.Faint).Sprint("• "+msg))
	l.zlog.Debug().Msg(msg)
}

// message prints one prefixed console line and mirrors it to zerolog at level
func (l *Logger) message(prefix string, attr color.Attribute, level zerolog.Level, msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "%s %s\n", prefix, color.New(attr).Sprint(msg))
	l.zlog.WithLevel(level).Msg(msg)
}

// Info prints a neutral note
func (l *Logger) Info(msg string) {
	l.message("ℹ️ ", color.FgCyan, zerolog.InfoLevel, msg)
}

// Success prints the closing line of a clean run
func (l *Logger) Success(msg string) {
	l.message("✅", color.FgGreen, zerolog.InfoLevel, msg)
}

// Warning prints the closing line of a run with failed files
func (l *Logger) Warning(msg string) {
	l.message("⚠️ ", color.FgYellow, zerolog.WarnLevel, msg)
}

// Error prints a run level failure, per-file failures go through LogFileOperation
func (l *Logger) Error(msg string) {
	l.message("❌", color.FgRed, zerolog.ErrorLevel, msg)
}

// Errorf is Error with formatting
func (l *Logger) Errorf(format string, args ...any) {
	l.Error(fmt.Sprintf(format, args...))
}
