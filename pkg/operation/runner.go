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
	"context"

	"github.com/walteh/pagechrome/pkg/config"
	"github.com/walteh/pagechrome/pkg/log"
	"github.com/walteh/pagechrome/pkg/status"
	"github.com/walteh/pagechrome/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// 🔧 Options contains everything a run needs
type Options struct {
	// Config is the validated run configuration
	Config *config.Config
	// Files reads and writes pages under Config.BaseDir
	Files status.FileManager
	// Replacer applies the rules, defaults to text.BlockReplacer
	Replacer text.TextReplacer
	// Logger prints progress
	Logger *log.Logger
	// DryRun skips every write
	DryRun bool
}

// 🏃 Runner executes a replacement pass
type Runner struct {
	cfg      *config.Config
	files    status.FileManager
	replacer text.TextReplacer
	logger   *log.Logger
	dryRun   bool
}

// 🏗️ NewRunner creates a new runner
func NewRunner(opts Options) (*Runner, error) {
	if opts.Config == nil {
		return nil, errors.Errorf("config is required")
	}
	if opts.Files == nil {
		return nil, errors.Errorf("file manager is required")
	}
	if opts.Logger == nil {
		return nil, errors.Errorf("logger is required")
	}
	replacer := opts.Replacer
	if replacer == nil {
		replacer = text.NewBlockReplacer()
	}
	if err := replacer.ValidateRules(opts.Config.Rules()); err != nil {
		return nil, errors.Errorf("validating rules: %w", err)
	}
	return &Runner{
		cfg:      opts.Config,
		files:    opts.Files,
		replacer: replacer,
		logger:   opts.Logger,
		dryRun:   opts.DryRun,
	}, nil
}

// Candidates lists the pages a run would visit
func (r *Runner) Candidates(ctx context.Context) ([]string, error) {
	pages, err := Locate(ctx, r.files.FS(), r.cfg)
	if err != nil {
		return nil, errors.Errorf("locating pages: %w", err)
	}
	return pages, nil
}

func (r *Runner) processOptions(dryRun bool) ProcessOptions {
	return ProcessOptions{
		DryRun:         dryRun,
		ReportNotFound: r.cfg.ReportsNotFound(),
	}
}

// 🏃 Run visits every candidate in order and prints the summary. Per-page
// failures are counted, not returned; an error means the run could not start
// or the context was cancelled between pages.
func (r *Runner) Run(ctx context.Context) (status.Summary, error) {
	var summary status.Summary

	pages, err := r.Candidates(ctx)
	if err != nil {
		return summary, err
	}

	r.logger.StartRun(ctx, log.RunInfo{
		Profile:    r.cfg.Profile,
		BaseDir:    r.cfg.BaseDir,
		Candidates: len(pages),
		DryRun:     r.dryRun,
	})

	rules := r.cfg.Rules()
	opts := r.processOptions(r.dryRun)
	for _, page := range pages {
		if err := ctx.Err(); err != nil {
			return summary, errors.Errorf("run interrupted after %d of %d files: %w", summary.Total, len(pages), err)
		}

		r.logger.Processing(ctx, page)
		outcome := ProcessFile(ctx, r.files, r.replacer, page, rules, opts)
		r.logger.LogOutcome(ctx, outcome)
		summary.Add(outcome)
	}

	r.logger.EndRun(ctx, summary, r.dryRun)
	return summary, nil
}
