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

// Package config builds the run configuration: which pages to visit and which
// blocks to overwrite with which templates.
package config

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"github.com/walteh/pagechrome/pkg/templates"
	"github.com/walteh/pagechrome/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// 🔌 Parser is the interface for config parsers
type Parser interface {
	// 📝 Parse decodes the config from bytes without validating it
	Parse(ctx context.Context, data []byte) (*Config, error)

	// 🔍 CanParse checks if this parser can handle the given file
	CanParse(filename string) bool
}

var (
	// 🗺️ parsers is a list of available parsers
	parsers []Parser
)

// 📝 Register registers a parser
func Register(p Parser) {
	parsers = append(parsers, p)
}

// 🎯 GetParser returns a parser that can handle the given file
func GetParser(filename string) Parser {
	for _, p := range parsers {
		if p.CanParse(filename) {
			return p
		}
	}
	return nil
}

// 🧱 Block selects one region of every page and the text written over it.
// Exactly one of Text, TemplateFile and Template must be set.
type Block struct {
	Tag          string `json:"tag" yaml:"tag" toml:"tag" hcl:"tag,label"`
	Marker       string `json:"marker,omitempty" yaml:"marker,omitempty" toml:"marker,omitempty" hcl:"marker,optional"`
	Template     string `json:"template,omitempty" yaml:"template,omitempty" toml:"template,omitempty" hcl:"template,optional"`
	TemplateFile string `json:"template_file,omitempty" yaml:"template_file,omitempty" toml:"template_file,omitempty" hcl:"template_file,optional"`
	Text         string `json:"text,omitempty" yaml:"text,omitempty" toml:"text,omitempty" hcl:"text,optional"`

	content string // resolved template text
}

// 📚 Config is the run configuration. It is built once at startup and passed
// to every operation; nothing reads it from package state.
type Config struct {
	Profile        string   `json:"profile,omitempty" yaml:"profile,omitempty" toml:"profile,omitempty" hcl:"profile,optional"`
	BaseDir        string   `json:"base_dir,omitempty" yaml:"base_dir,omitempty" toml:"base_dir,omitempty" hcl:"base_dir,optional"`
	RootFiles      []string `json:"root_files,omitempty" yaml:"root_files,omitempty" toml:"root_files,omitempty" hcl:"root_files,optional"`
	RootGlob       string   `json:"root_glob,omitempty" yaml:"root_glob,omitempty" toml:"root_glob,omitempty" hcl:"root_glob,optional"`
	Subdirs        []string `json:"subdirs,omitempty" yaml:"subdirs,omitempty" toml:"subdirs,omitempty" hcl:"subdirs,optional"`
	Exclude        []string `json:"exclude,omitempty" yaml:"exclude,omitempty" toml:"exclude,omitempty" hcl:"exclude,optional"`
	TemplateSource string   `json:"template_source,omitempty" yaml:"template_source,omitempty" toml:"template_source,omitempty" hcl:"template_source,optional"`
	ReportNotFound *bool    `json:"report_not_found,omitempty" yaml:"report_not_found,omitempty" toml:"report_not_found,omitempty" hcl:"report_not_found,optional"`
	Blocks         []Block  `json:"blocks,omitempty" yaml:"blocks,omitempty" toml:"blocks,omitempty" hcl:"block,block"`

	location string // file the config was read from, empty for a bare profile
}

// 🎯 Load reads, merges and validates the configuration file at path.
func Load(ctx context.Context, path string) (*Config, error) {
	return Resolve(ctx, Options{Path: path})
}

// parseFile decodes a config file with the parser registered for its name.
func parseFile(ctx context.Context, path string) (*Config, error) {
	zerolog.Ctx(ctx).Debug().Str("path", path).Msg("loading configuration")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading config file: %w", err)
	}

	p := GetParser(path)
	if p == nil {
		return nil, errors.Errorf("no parser found for file: %s", path)
	}

	cfg, err := p.Parse(ctx, data)
	if err != nil {
		return nil, errors.Errorf("parsing config: %w", err)
	}
	cfg.location = path

	return cfg, nil
}

// Location returns the file the config was loaded from, if any.
func (cfg *Config) Location() string {
	return cfg.location
}

// ReportsNotFound reports whether pages without any matching block are
// reported as not found instead of unchanged.
func (cfg *Config) ReportsNotFound() bool {
	return cfg.ReportNotFound != nil && *cfg.ReportNotFound
}

// Rules returns the replacement rules for the resolved blocks.
func (cfg *Config) Rules() []text.BlockRule {
	rules := make([]text.BlockRule, 0, len(cfg.Blocks))
	for _, b := range cfg.Blocks {
		rules = append(rules, text.BlockRule{
			Tag:      b.Tag,
			Marker:   b.Marker,
			Template: b.content,
		})
	}
	return rules
}

// 🔍 Validate normalizes paths, resolves block templates and checks the
// resulting rules. BaseDir must already be set.
func (cfg *Config) Validate() error {
	if cfg.BaseDir == "" {
		return errors.Errorf("base_dir is required")
	}
	cfg.BaseDir = filepath.Clean(cfg.BaseDir)

	if len(cfg.RootFiles) == 0 && cfg.RootGlob == "" && len(cfg.Subdirs) == 0 {
		return errors.Errorf("one of root_files, root_glob or subdirs is required")
	}

	var err error
	for i, f := range cfg.RootFiles {
		if cfg.RootFiles[i], err = cleanRel(f); err != nil {
			return errors.Errorf("root_files[%d]: %w", i, err)
		}
	}
	for i, d := range cfg.Subdirs {
		if cfg.Subdirs[i], err = cleanRel(d); err != nil {
			return errors.Errorf("subdirs[%d]: %w", i, err)
		}
	}
	if cfg.RootGlob != "" && !doublestar.ValidatePattern(cfg.RootGlob) {
		return errors.Errorf("root_glob: invalid pattern %q", cfg.RootGlob)
	}

	if cfg.TemplateSource != "" {
		if cfg.TemplateSource, err = cleanRel(cfg.TemplateSource); err != nil {
			return errors.Errorf("template_source: %w", err)
		}
	}
	for i, pattern := range cfg.Exclude {
		if !doublestar.ValidatePattern(pattern) {
			return errors.Errorf("exclude[%d]: invalid pattern %q", i, pattern)
		}
	}

	if len(cfg.Blocks) == 0 {
		return errors.Errorf("at least one block is required")
	}
	for i := range cfg.Blocks {
		if err := cfg.resolveBlock(&cfg.Blocks[i]); err != nil {
			return errors.Errorf("block %q: %w", cfg.Blocks[i].Tag, err)
		}
	}

	if err := text.NewBlockReplacer().ValidateRules(cfg.Rules()); err != nil {
		return errors.Errorf("validating rules: %w", err)
	}

	return nil
}

// resolveBlock loads the template text for a block
func (cfg *Config) resolveBlock(b *Block) error {
	set := 0
	for _, s := range []string{b.Text, b.TemplateFile, b.Template} {
		if s != "" {
			set++
		}
	}
	if set != 1 {
		return errors.Errorf("exactly one of text, template_file or template is required")
	}

	switch {
	case b.Text != "":
		b.content = b.Text
	case b.TemplateFile != "":
		file := b.TemplateFile
		if !filepath.IsAbs(file) {
			file = filepath.Join(cfg.TemplateDir(), file)
		}
		data, err := os.ReadFile(file)
		if err != nil {
			return errors.Errorf("reading template file: %w", err)
		}
		b.content = string(data)
	default:
		content, err := templates.Builtin(b.Template)
		if err != nil {
			return err
		}
		b.content = content
	}
	return nil
}

// TemplateDir is the directory template_file paths resolve against: the
// config file's directory, or BaseDir when there is no config file.
func (cfg *Config) TemplateDir() string {
	if cfg.location != "" {
		return filepath.Dir(cfg.location)
	}
	return cfg.BaseDir
}

// 📝 String returns a short description of the config
func (cfg *Config) String() string {
	tags := make([]string, 0, len(cfg.Blocks))
	for _, b := range cfg.Blocks {
		tags = append(tags, b.Tag)
	}
	name := cfg.Profile
	if cfg.location != "" {
		name = filepath.Base(cfg.location)
	}
	return fmt.Sprintf("%s [%s] -> %s", name, strings.Join(tags, ","), cfg.BaseDir)
}

// cleanRel cleans a path relative to the base directory and rejects paths
// that leave it.
func cleanRel(p string) (string, error) {
	cleaned := path.Clean(filepath.ToSlash(p))
	if !fs.ValidPath(cleaned) || cleaned == "." {
		return "", errors.Errorf("%q must be a relative path inside the base directory", p)
	}
	return cleaned, nil
}
