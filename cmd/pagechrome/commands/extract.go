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

package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/walteh/pagechrome/cmd/pagechrome/opts"
	"github.com/walteh/pagechrome/pkg/config"
	"github.com/walteh/pagechrome/pkg/log"
	"github.com/walteh/pagechrome/pkg/operation"
	"gitlab.com/tozd/go/errors"
	"gopkg.in/yaml.v3"
)

// NewExtractCmd creates the extract command. It saves the blocks of the
// template source page as template files and prints the matching config.
func NewExtractCmd(load opts.Loader) *cobra.Command {
	var outDir string

	cmd := &cobra.Command{
		Use:   "extract",
		Short: "Save the blocks of the template source page as template files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			o, err := load(cmd)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			logger := log.FromContext(ctx)

			extracted, err := operation.ExtractTemplates(ctx, o.Files, o.Config)
			if err != nil {
				return errors.Errorf("extracting templates: %w", err)
			}

			dir := outDir
			if !filepath.IsAbs(dir) {
				dir = filepath.Join(o.Config.BaseDir, dir)
			}

			if !o.DryRun {
				if err := os.MkdirAll(dir, 0o755); err != nil {
					return errors.Errorf("creating output directory: %w", err)
				}
			}

			byTag := make(map[string]string, len(extracted))
			for _, e := range extracted {
				path := filepath.Join(dir, e.Tag+".html")
				if o.DryRun {
					logger.Infof("would write %s", path)
				} else {
					if err := os.WriteFile(path, []byte(e.Text), 0o644); err != nil {
						return errors.Errorf("writing %s template: %w", e.Tag, err)
					}
					logger.Successf("wrote %s", path)
				}
				byTag[e.Tag] = path
			}

			// template_file is read relative to the config file
			refDir, err := filepath.Abs(o.Config.TemplateDir())
			if err != nil {
				return errors.Errorf("resolving template directory: %w", err)
			}

			blocks := make([]config.Block, 0, len(o.Config.Blocks))
			for _, b := range o.Config.Blocks {
				ref := byTag[b.Tag]
				if rel, err := filepath.Rel(refDir, ref); err == nil {
					ref = filepath.ToSlash(rel)
				}
				blocks = append(blocks, config.Block{Tag: b.Tag, Marker: b.Marker, TemplateFile: ref})
			}

			snippet, err := yaml.Marshal(map[string][]config.Block{"blocks": blocks})
			if err != nil {
				return errors.Errorf("encoding config snippet: %w", err)
			}
			fmt.Fprint(cmd.OutOrStdout(), string(snippet))
			return nil
		},
	}

	cmd.Flags().StringVarP(&outDir, "out", "o", "templates", "directory for the template files, relative to the base directory")

	return cmd
}
