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

package operation

import (
	"bytes"
	"context"
	"unicode/utf8"

	"github.com/rs/zerolog"
	"github.com/walteh/pagechrome/pkg/status"
	"github.com/walteh/pagechrome/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// ProcessOptions tunes how a single page is handled
type ProcessOptions struct {
	// DryRun computes the outcome without writing
	DryRun bool
	// ReportNotFound turns "no rule matched" into StatusNotFound
	ReportNotFound bool
}

// 📄 ProcessFile replaces the blocks of one page and writes it back if its
// text changed. It never returns an error: failures are reported in the
// outcome so the caller can carry on with the next page.
func ProcessFile(ctx context.Context, files status.FileManager, replacer text.TextReplacer, path string, rules []text.BlockRule, opts ProcessOptions) status.Outcome {
	logger := zerolog.Ctx(ctx).With().Str("file", path).Logger()
	outcome := status.Outcome{Path: path, DryRun: opts.DryRun}

	fail := func(err error) status.Outcome {
		outcome.Status = status.StatusError
		outcome.Err = err
		return outcome
	}

	content, err := files.ReadFile(ctx, path)
	if err != nil {
		return fail(err)
	}
	if !utf8.Valid(content) {
		return fail(errors.Errorf("file is not valid UTF-8"))
	}

	result, err := replacer.ReplaceText(ctx, bytes.NewReader(content), rules)
	if err != nil {
		return fail(errors.Errorf("replacing blocks: %w", err))
	}
	outcome.Missing = result.Missing

	logger.Debug().
		Strs("matched", result.Matched).
		Strs("missing", result.Missing).
		Bool("modified", result.WasModified).
		Msg("blocks replaced")

	if !result.WasModified {
		outcome.Status = status.StatusUnchanged
		if opts.ReportNotFound && len(result.Matched) == 0 {
			outcome.Status = status.StatusNotFound
		}
		return outcome
	}

	if !opts.DryRun {
		if err := files.WriteFile(ctx, path, result.ModifiedContent); err != nil {
			return fail(err)
		}
	}

	outcome.Status = status.StatusUpdated
	return outcome
}
