package operation

import (
	"context"

	"github.com/walteh/pagechrome/pkg/config"
	"github.com/walteh/pagechrome/pkg/status"
	"github.com/walteh/pagechrome/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// Extracted is one block copied out of the template source page
type Extracted struct {
	Tag  string
	Text string
}

// ExtractTemplates copies the region of every configured block out of the
// template source page, using the same matching as a run. The result can be
// saved and referenced with template_file so the next run uses it.
func ExtractTemplates(ctx context.Context, files status.FileManager, cfg *config.Config) ([]Extracted, error) {
	if cfg.TemplateSource == "" {
		return nil, errors.Errorf("template_source is not configured")
	}

	content, err := files.ReadFile(ctx, cfg.TemplateSource)
	if err != nil {
		return nil, errors.Errorf("reading template source: %w", err)
	}

	var out []Extracted
	for _, rule := range cfg.Rules() {
		region, ok, err := text.Extract(string(content), rule)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, errors.Errorf("no %s block in %s", rule.Tag, cfg.TemplateSource)
		}
		out = append(out, Extracted{Tag: rule.Tag, Text: region})
	}

	return out, nil
}
