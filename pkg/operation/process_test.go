package operation_test

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/pagechrome/pkg/config"
	"github.com/walteh/pagechrome/pkg/operation"
	"github.com/walteh/pagechrome/pkg/status"
	"github.com/walteh/pagechrome/pkg/text"
)

func TestProcessFile(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		readErr     error
		writeErr    error
		opts        operation.ProcessOptions
		rules       func(cfg *config.Config)
		wantStatus  status.FileStatus
		wantContent string
		wantWrites  int
		wantMissing []string
		wantErr     string
	}{
		{
			name:        "header_replaced",
			content:     `<html><header class="x">OLD</header><body>KEEP ME</body></html>`,
			wantStatus:  status.StatusUpdated,
			wantContent: `<html><header class="new">NEW</header><body>KEEP ME</body></html>`,
			wantWrites:  1,
			wantMissing: []string{"footer"},
		},
		{
			name:        "header_and_footer_replaced",
			content:     "<header>a</header>\n<main>m</main>\n<footer>b</footer>\n",
			wantStatus:  status.StatusUpdated,
			wantContent: headerTemplate + "\n<main>m</main>\n" + footerTemplate + "\n",
			wantWrites:  1,
		},
		{
			name:        "no_blocks_untouched",
			content:     "<html><body>plain</body></html>",
			wantStatus:  status.StatusUnchanged,
			wantContent: "<html><body>plain</body></html>",
			wantMissing: []string{"header", "footer"},
		},
		{
			name:        "no_blocks_reported",
			content:     "<html><body>plain</body></html>",
			opts:        operation.ProcessOptions{ReportNotFound: true},
			wantStatus:  status.StatusNotFound,
			wantContent: "<html><body>plain</body></html>",
			wantMissing: []string{"header", "footer"},
		},
		{
			name:        "already_canonical",
			content:     headerTemplate + footerTemplate,
			opts:        operation.ProcessOptions{ReportNotFound: true},
			wantStatus:  status.StatusUnchanged,
			wantContent: headerTemplate + footerTemplate,
		},
		{
			name:        "dry_run",
			content:     "<header>a</header>",
			opts:        operation.ProcessOptions{DryRun: true},
			wantStatus:  status.StatusUpdated,
			wantContent: "<header>a</header>",
			wantMissing: []string{"footer"},
		},
		{
			name:        "read_error",
			content:     "<header>a</header>",
			readErr:     fs.ErrPermission,
			wantStatus:  status.StatusError,
			wantContent: "<header>a</header>",
			wantErr:     "permission denied",
		},
		{
			name:        "write_error",
			content:     "<header>a</header>",
			writeErr:    errors.New("disk full"),
			wantStatus:  status.StatusError,
			wantContent: "<header>a</header>",
			wantMissing: []string{"footer"},
			wantErr:     "disk full",
		},
		{
			name:        "invalid_utf8",
			content:     "<header>\xff\xfe</header>",
			wantStatus:  status.StatusError,
			wantContent: "<header>\xff\xfe</header>",
			wantErr:     "not valid UTF-8",
		},
		{
			name:    "marker_anchored",
			content: "<body>\n    <!-- Header -->\n    <header>old</header>\n</body>",
			rules: func(cfg *config.Config) {
				cfg.Blocks = []config.Block{
					{Tag: "header", Marker: "<!-- Header -->", Text: "    <!-- Header -->\n    <header>new</header>"},
				}
			},
			wantStatus:  status.StatusUpdated,
			wantContent: "<body>\n    <!-- Header -->\n    <header>new</header>\n</body>",
			wantWrites:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := testContext(t)
			cfg := testConfig(t, t.TempDir(), tt.rules)
			files := newMemFiles(map[string]string{"page.html": tt.content})
			if tt.readErr != nil {
				files.readErr["page.html"] = tt.readErr
			}
			if tt.writeErr != nil {
				files.writeErr["page.html"] = tt.writeErr
			}

			got := operation.ProcessFile(ctx, files, text.NewBlockReplacer(), "page.html", cfg.Rules(), tt.opts)

			assert.Equal(t, "page.html", got.Path)
			assert.Equal(t, tt.wantStatus, got.Status, "status should match")
			assert.Equal(t, tt.wantContent, files.content("page.html"), "content should match")
			assert.Equal(t, tt.wantWrites, files.writeCount("page.html"), "write count should match")
			assert.Equal(t, tt.wantMissing, got.Missing, "missing tags should match")
			assert.Equal(t, tt.opts.DryRun, got.DryRun)
			if tt.wantErr != "" {
				require.Error(t, got.Err)
				assert.Contains(t, got.Err.Error(), tt.wantErr)
			} else {
				assert.NoError(t, got.Err)
			}
		})
	}
}

func TestProcessFile_Idempotent(t *testing.T) {
	ctx := testContext(t)
	cfg := testConfig(t, t.TempDir(), nil)
	files := newMemFiles(map[string]string{
		"page.html": "<html>\n<header id=\"old\">\n<nav>x</nav>\n</header>\n<footer>old</footer>\n<footer>second</footer>\n</html>",
	})
	replacer := text.NewBlockReplacer()

	first := operation.ProcessFile(ctx, files, replacer, "page.html", cfg.Rules(), operation.ProcessOptions{})
	require.Equal(t, status.StatusUpdated, first.Status)
	afterFirst := files.content("page.html")
	assert.Equal(t, "<html>\n"+headerTemplate+"\n"+footerTemplate+"\n<footer>second</footer>\n</html>", afterFirst,
		"only the first footer should be replaced")

	second := operation.ProcessFile(ctx, files, replacer, "page.html", cfg.Rules(), operation.ProcessOptions{})
	assert.Equal(t, status.StatusUnchanged, second.Status)
	assert.Equal(t, afterFirst, files.content("page.html"))
	assert.Equal(t, 1, files.writeCount("page.html"), "second pass should not write")
}
