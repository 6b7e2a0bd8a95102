package operation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/pagechrome/pkg/config"
	"github.com/walteh/pagechrome/pkg/operation"
)

func TestExtractTemplates(t *testing.T) {
	files := newMemFiles(map[string]string{
		"contact.html": "<html>\n<header id=\"top\">\n<nav>n</nav>\n</header>\n<main/>\n<footer id=\"footer-index\">f</footer>\n</html>",
	})
	cfg := testConfig(t, t.TempDir(), nil)

	got, err := operation.ExtractTemplates(testContext(t), files, cfg)
	require.NoError(t, err)
	assert.Equal(t, []operation.Extracted{
		{Tag: "header", Text: "<header id=\"top\">\n<nav>n</nav>\n</header>"},
		{Tag: "footer", Text: "<footer id=\"footer-index\">f</footer>"},
	}, got)
}

func TestExtractTemplates_Errors(t *testing.T) {
	tests := []struct {
		name    string
		files   map[string]string
		mutate  func(cfg *config.Config)
		wantErr string
	}{
		{
			name:    "no_source_configured",
			files:   map[string]string{},
			mutate:  func(cfg *config.Config) { cfg.TemplateSource = "" },
			wantErr: "template_source is not configured",
		},
		{
			name:    "source_missing",
			files:   map[string]string{},
			wantErr: "reading template source",
		},
		{
			name:    "block_missing",
			files:   map[string]string{"contact.html": "<header>h</header>"},
			wantErr: "no footer block in contact.html",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig(t, t.TempDir(), tt.mutate)
			_, err := operation.ExtractTemplates(testContext(t), newMemFiles(tt.files), cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
