package config

import (
	"context"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// ConfigNames are the file names searched for in the base directory, in order.
var ConfigNames = []string{
	".pagechrome.yaml",
	".pagechrome.yml",
	".pagechrome.json",
	".pagechrome.toml",
	".pagechrome.hcl",
}

// Options selects where the configuration comes from
type Options struct {
	// Path is an explicit config file; when empty ConfigNames are searched in Dir
	Path string
	// Dir overrides the base directory; defaults to the config file's base_dir,
	// then the config file's directory, then the working directory
	Dir string
	// Profile overrides the profile named by the config file
	Profile string
}

// Find returns the first config file from ConfigNames present in dir.
func Find(dir string) (string, bool, error) {
	for _, name := range ConfigNames {
		p := filepath.Join(dir, name)
		info, err := os.Stat(p)
		if err == nil && !info.IsDir() {
			return p, true, nil
		}
		if err != nil && !os.IsNotExist(err) {
			return "", false, errors.Errorf("checking %s: %w", p, err)
		}
	}
	return "", false, nil
}

// Resolve builds the validated configuration: the named profile, overlaid
// with the config file if there is one, with an absolute BaseDir.
func Resolve(ctx context.Context, opts Options) (*Config, error) {
	logger := zerolog.Ctx(ctx)

	searchDir := opts.Dir
	if searchDir == "" {
		searchDir = "."
	}

	path := opts.Path
	if path == "" {
		found, ok, err := Find(searchDir)
		if err != nil {
			return nil, errors.Errorf("looking for config file: %w", err)
		}
		if ok {
			path = found
		}
	}

	fileCfg := &Config{}
	if path != "" {
		var err error
		if fileCfg, err = parseFile(ctx, path); err != nil {
			return nil, err
		}
	}

	name := fileCfg.Profile
	if opts.Profile != "" {
		name = opts.Profile
	}
	if name == "" {
		name = DefaultProfile
	}
	base, err := Profile(name)
	if err != nil {
		return nil, err
	}
	cfg := mergeOnto(base, fileCfg)

	switch {
	case opts.Dir != "":
		cfg.BaseDir = opts.Dir
	case cfg.BaseDir != "" && cfg.location != "" && !filepath.IsAbs(cfg.BaseDir):
		cfg.BaseDir = filepath.Join(filepath.Dir(cfg.location), cfg.BaseDir)
	case cfg.BaseDir == "" && cfg.location != "":
		cfg.BaseDir = filepath.Dir(cfg.location)
	case cfg.BaseDir == "":
		cfg.BaseDir = "."
	}

	abs, err := filepath.Abs(cfg.BaseDir)
	if err != nil {
		return nil, errors.Errorf("getting absolute base dir: %w", err)
	}
	cfg.BaseDir = abs

	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	logger.Debug().
		Str("profile", cfg.Profile).
		Str("config", cfg.location).
		Str("base_dir", cfg.BaseDir).
		Int("blocks", len(cfg.Blocks)).
		Msg("configuration resolved")

	return cfg, nil
}
