package operation_test

import (
	"context"
	"io/fs"
	"sync"
	"testing"
	"testing/fstest"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"github.com/walteh/pagechrome/pkg/config"
	"github.com/walteh/pagechrome/pkg/status"
)

const (
	headerTemplate = `<header class="new">NEW</header>`
	footerTemplate = `<footer id="footer-index">FOOT</footer>`
)

func testContext(t *testing.T) context.Context {
	t.Helper()
	logger := zerolog.New(zerolog.NewTestWriter(t))
	return logger.WithContext(context.Background())
}

// testConfig builds a validated header+footer config rooted at dir
func testConfig(t *testing.T, dir string, mutate func(cfg *config.Config)) *config.Config {
	t.Helper()
	cfg := &config.Config{
		Profile:        "test",
		BaseDir:        dir,
		RootFiles:      []string{"index.html", "faq.html", "missing.html"},
		Subdirs:        []string{"recipe_details", "product_pages"},
		TemplateSource: "contact.html",
		Blocks: []config.Block{
			{Tag: "header", Text: headerTemplate},
			{Tag: "footer", Text: footerTemplate},
		},
	}
	if mutate != nil {
		mutate(cfg)
	}
	require.NoError(t, cfg.Validate())
	return cfg
}

// 🧪 memFiles is an in-memory status.FileManager with injectable failures
type memFiles struct {
	mu       sync.Mutex
	fsys     fstest.MapFS
	readErr  map[string]error
	writeErr map[string]error
	writes   map[string]int
}

var _ status.FileManager = (*memFiles)(nil)

func newMemFiles(files map[string]string) *memFiles {
	m := &memFiles{
		fsys:     fstest.MapFS{},
		readErr:  map[string]error{},
		writeErr: map[string]error{},
		writes:   map[string]int{},
	}
	for name, content := range files {
		m.fsys[name] = &fstest.MapFile{Data: []byte(content), Mode: 0644}
	}
	return m
}

func (m *memFiles) ReadFile(ctx context.Context, path string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.readErr[path]; err != nil {
		return nil, err
	}
	f, ok := m.fsys[path]
	if !ok {
		return nil, fs.ErrNotExist
	}
	return append([]byte(nil), f.Data...), nil
}

func (m *memFiles) WriteFile(ctx context.Context, path string, content []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.writeErr[path]; err != nil {
		return err
	}
	f, ok := m.fsys[path]
	if !ok {
		return fs.ErrNotExist
	}
	f.Data = append([]byte(nil), content...)
	m.writes[path]++
	return nil
}

func (m *memFiles) FS() fs.FS {
	return m.fsys
}

func (m *memFiles) content(path string) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return string(m.fsys[path].Data)
}

func (m *memFiles) writeCount(path string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writes[path]
}
