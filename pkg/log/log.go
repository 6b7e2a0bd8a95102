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
	"github.com/walteh/pagechrome/pkg/status"
)

// 🎨 Display configuration
const (
	outcomeIndent = 2 // spaces to indent the status line under its page
)

// 📦 RunInfo describes a run for the header line
type RunInfo struct {
	Profile    string // Profile or config file name
	BaseDir    string // Directory being processed
	Candidates int    // Number of pages found
	DryRun     bool   // Whether writes are skipped
}

// 🎯 Logger prints run progress for people and mirrors it to zerolog
type Logger struct {
	zlog      zerolog.Logger
	console   io.Writer
	formatter status.FileFormatter
	mu        sync.Mutex
}

// 🏭 New creates a new logger
func New(console io.Writer, zlog zerolog.Logger) *Logger {
	return &Logger{
		zlog:      zlog,
		console:   console,
		formatter: status.NewDefaultFileFormatter(),
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

// 📝 formatOutcome colors the status line for an outcome
func (l *Logger) formatOutcome(o status.Outcome) string {
	var c *color.Color
	switch o.Status {
	case status.StatusUpdated:
		c = color.New(color.FgGreen)
	case status.StatusNotFound:
		c = color.New(color.FgYellow)
	case status.StatusError:
		c = color.New(color.FgRed)
	default:
		c = color.New(color.Faint)
	}
	return fmt.Sprintf("%*s%s", outcomeIndent, "", c.Sprint(l.formatter.FormatOutcome(o)))
}

// 📝 StartRun prints the run header
func (l *Logger) StartRun(ctx context.Context, info RunInfo) {
	l.mu.Lock()
	defer l.mu.Unlock()

	name := color.New(color.Bold, color.FgCyan).Sprint("pagechrome")
	mode := ""
	if info.DryRun {
		mode = color.New(color.FgYellow).Sprint(" (dry run)")
	}
	fmt.Fprintf(l.console, "%s %s%s\n", name, color.New(color.Faint).Sprint("• "+info.Profile+" • "+info.BaseDir), mode)
	fmt.Fprintf(l.console, "Found %d HTML files to process\n\n", info.Candidates)

	l.zlog.Info().
		Str("profile", info.Profile).
		Str("base_dir", info.BaseDir).
		Int("candidates", info.Candidates).
		Bool("dry_run", info.DryRun).
		Msg("starting run")
}

// 📝 Processing announces the page about to be processed
func (l *Logger) Processing(ctx context.Context, path string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.console, l.formatter.FormatProcessing(path))
}

// 📝 LogOutcome prints what happened to a page
func (l *Logger) LogOutcome(ctx context.Context, o status.Outcome) {
	l.mu.Lock()
	defer l.mu.Unlock()

	fmt.Fprintln(l.console, l.formatOutcome(o))

	ev := l.zlog.Info()
	switch o.Status {
	case status.StatusError:
		ev = l.zlog.Error().Err(o.Err)
	case status.StatusNotFound:
		ev = l.zlog.Warn()
	}
	ev.Str("file", o.Path).
		Str("status", o.Status.String()).
		Strs("missing", o.Missing).
		Bool("dry_run", o.DryRun).
		Msg("file processed")
}

// 📝 EndRun prints the summary
func (l *Logger) EndRun(ctx context.Context, s status.Summary, dryRun bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	fmt.Fprintf(l.console, "\n%s\n", color.New(color.FgGreen).Sprint(l.formatter.FormatSummary(s, dryRun)))
	if details := l.formatter.FormatDetails(s); details != "" {
		fmt.Fprintf(l.console, "%s\n", color.New(color.FgYellow).Sprint(details))
	}

	l.zlog.Info().
		Int("total", s.Total).
		Int("updated", s.Updated).
		Int("unchanged", s.Unchanged).
		Int("not_found", s.NotFound).
		Int("errors", s.Errors).
		Msg("run complete")
}

// 📝 Success logs a success message
func (l *Logger) Success(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "✅ %s\n", color.New(color.FgGreen).Sprint(msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Warning logs a warning message
func (l *Logger) Warning(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "⚠️  %s\n", color.New(color.FgYellow).Sprint(msg))
	l.zlog.Warn().Msg(msg)
}

// 📝 Info logs an info message
func (l *Logger) Info(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "ℹ️  %s\n", color.New(color.FgCyan).Sprint(msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Infof logs a formatted info message
func (l *Logger) Infof(format string, args ...interface{}) {
	l.Info(fmt.Sprintf(format, args...))
}

// 📝 Warningf logs a formatted warning message
func (l *Logger) Warningf(format string, args ...interface{}) {
	l.Warning(fmt.Sprintf(format, args...))
}

// 📝 Successf logs a formatted success message
func (l *Logger) Successf(format string, args ...interface{}) {
	l.Success(fmt.Sprintf(format, args...))
}
