package operation

import (
	"context"

	"github.com/walteh/pagechrome/pkg/status"
	"gitlab.com/tozd/go/errors"
	"golang.org/x/sync/errgroup"
)

// DefaultPlanConcurrency bounds the pages read at once by Plan
const DefaultPlanConcurrency = 8

// Plan computes the outcome every candidate would have, without writing
// anything. Pages are read concurrently; outcomes keep candidate order.
func (r *Runner) Plan(ctx context.Context, concurrency int) ([]status.Outcome, error) {
	pages, err := r.Candidates(ctx)
	if err != nil {
		return nil, err
	}
	if concurrency < 1 {
		concurrency = DefaultPlanConcurrency
	}

	rules := r.cfg.Rules()
	opts := r.processOptions(true)
	outcomes := make([]status.Outcome, len(pages))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i, page := range pages {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			outcomes[i] = ProcessFile(gctx, r.files, r.replacer, page, rules, opts)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, errors.Errorf("planning: %w", err)
	}

	return outcomes, nil
}
