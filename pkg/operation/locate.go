package operation

import (
	"context"
	"io/fs"
	"path"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"github.com/walteh/pagechrome/pkg/config"
	"gitlab.com/tozd/go/errors"
)

// pageSuffix selects the files taken from each subdirectory
const pageSuffix = ".html"

// 🔍 Locate lists the candidate pages in fsys as slash paths relative to its
// root. Missing files and directories are skipped without error. The template
// source is never a candidate, whatever characters its name holds.
func Locate(ctx context.Context, fsys fs.FS, cfg *config.Config) ([]string, error) {
	logger := zerolog.Ctx(ctx)

	seen := make(map[string]bool)
	var pages []string
	add := func(p string) {
		if seen[p] {
			return
		}
		seen[p] = true
		if p == cfg.TemplateSource {
			logger.Debug().Str("file", p).Msg("skipping template source")
			return
		}
		if pattern, ok := excludedBy(ctx, cfg.Exclude, p); ok {
			logger.Debug().Str("file", p).Str("pattern", pattern).Msg("file excluded by pattern")
			return
		}
		pages = append(pages, p)
	}

	for _, name := range cfg.RootFiles {
		if !isFile(fsys, name) {
			logger.Debug().Str("file", name).Msg("skipping missing root file")
			continue
		}
		add(name)
	}

	if cfg.RootGlob != "" {
		matches, err := doublestar.Glob(fsys, cfg.RootGlob)
		if err != nil {
			return nil, errors.Errorf("matching root_glob %q: %w", cfg.RootGlob, err)
		}
		for _, m := range matches {
			if isFile(fsys, m) {
				add(m)
			}
		}
	}

	for _, dir := range cfg.Subdirs {
		entries, err := fs.ReadDir(fsys, dir)
		if err != nil {
			logger.Debug().Str("dir", dir).Err(err).Msg("skipping subdirectory")
			continue
		}
		for _, entry := range entries {
			if entry.IsDir() || !strings.HasSuffix(entry.Name(), pageSuffix) {
				continue
			}
			add(path.Join(dir, entry.Name()))
		}
	}

	return pages, nil
}

// excludedBy returns the first exclude pattern matching p
func excludedBy(ctx context.Context, patterns []string, p string) (string, bool) {
	for _, pattern := range patterns {
		matched, err := doublestar.Match(pattern, p)
		if err != nil {
			zerolog.Ctx(ctx).Debug().Str("pattern", pattern).Str("path", p).Err(err).Msg("error matching pattern")
			continue
		}
		if matched {
			return pattern, true
		}
	}
	return "", false
}

func isFile(fsys fs.FS, name string) bool {
	info, err := fs.Stat(fsys, name)
	return err == nil && !info.IsDir()
}
