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
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/pagechrome/pkg/status"
)

func TestLogger(t *testing.T) {
	// Disable color for testing
	color.NoColor = true
	defer func() { color.NoColor = false }()

	tests := []struct {
		name     string
		op       func(t *testing.T, logger *Logger)
		wantLogs []string
	}{
		{
			name: "log_run",
			op: func(t *testing.T, logger *Logger) {
				ctx := context.Background()
				logger.StartRun(ctx, RunInfo{Profile: "chrome", BaseDir: "/site", Candidates: 2})
				logger.Processing(ctx, "index.html")
				logger.LogOutcome(ctx, status.Outcome{Path: "index.html", Status: status.StatusUpdated})
				logger.Processing(ctx, "faq.html")
				logger.LogOutcome(ctx, status.Outcome{Path: "faq.html", Status: status.StatusUnchanged})
				logger.EndRun(ctx, status.Summary{Total: 2, Updated: 1, Unchanged: 1}, false)
			},
			wantLogs: []string{
				"pagechrome • chrome • /site",
				"Found 2 HTML files to process",
				"",
				"Processing: index.html",
				"✓ Updated",
				"Processing: faq.html",
				"- No changes needed",
				"",
				"Completed! Updated 1 out of 2 files.",
			},
		},
		{
			name: "log_dry_run_with_failures",
			op: func(t *testing.T, logger *Logger) {
				ctx := context.Background()
				logger.StartRun(ctx, RunInfo{Profile: "header", BaseDir: "/site", Candidates: 3, DryRun: true})
				logger.LogOutcome(ctx, status.Outcome{Path: "a.html", Status: status.StatusUpdated, DryRun: true})
				logger.LogOutcome(ctx, status.Outcome{Path: "b.html", Status: status.StatusNotFound, Missing: []string{"header"}})
				logger.LogOutcome(ctx, status.Outcome{Path: "c.html", Status: status.StatusError, Err: errors.New("boom")})
				logger.EndRun(ctx, status.Summary{Total: 3, Updated: 1, NotFound: 1, Errors: 1}, true)
			},
			wantLogs: []string{
				"pagechrome • header • /site (dry run)",
				"Found 3 HTML files to process",
				"",
				"✓ Would update",
				"✗ No header found",
				"❌ Error: boom",
				"",
				"Completed! Would update 1 out of 3 files.",
				"1 not found, 1 failed",
			},
		},
		{
			name: "log_messages",
			op: func(t *testing.T, logger *Logger) {
				logger.Info("info message")
				logger.Warning("warning message")
				logger.Success("success message")
			},
			wantLogs: []string{
				"ℹ️  info message",
				"⚠️  warning message",
				"✅ success message",
			},
		},
		{
			name: "log_formatted_messages",
			op: func(t *testing.T, logger *Logger) {
				logger.Infof("info %s", "test")
				logger.Warningf("warning %s", "test")
				logger.Successf("success %s", "test")
			},
			wantLogs: []string{
				"ℹ️  info test",
				"⚠️  warning test",
				"✅ success test",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			logger := New(buf, zerolog.Nop())

			tt.op(t, logger)

			output := strings.TrimSpace(buf.String())
			lines := strings.Split(output, "\n")

			require.Equal(t, len(tt.wantLogs), len(lines), "number of log lines should match")
			for i, want := range tt.wantLogs {
				assert.Equal(t, want, strings.TrimSpace(lines[i]), "log line %d should match", i)
			}
		})
	}
}

func TestLogger_OutcomeIndent(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	buf := &bytes.Buffer{}
	logger := New(buf, zerolog.Nop())
	logger.LogOutcome(context.Background(), status.Outcome{Path: "a.html", Status: status.StatusUnchanged})

	assert.Equal(t, "  - No changes needed\n", buf.String())
}

func TestLogger_StructuredOutput(t *testing.T) {
	jsonBuf := &bytes.Buffer{}
	logger := New(io.Discard, zerolog.New(jsonBuf))

	logger.LogOutcome(context.Background(), status.Outcome{Path: "a.html", Status: status.StatusError, Err: errors.New("denied")})

	out := jsonBuf.String()
	assert.Contains(t, out, `"level":"error"`)
	assert.Contains(t, out, `"file":"a.html"`)
	assert.Contains(t, out, `"status":"error"`)
	assert.Contains(t, out, `"error":"denied"`)
}

func TestLoggerContext(t *testing.T) {
	logger := New(io.Discard, zerolog.Nop())

	ctx := NewContext(context.Background(), logger)

	got := FromContext(ctx)
	assert.Same(t, logger, got, "logger from context should be the same instance")

	assert.Panics(t, func() {
		FromContext(context.Background())
	}, "FromContext should panic when logger is missing")
}
