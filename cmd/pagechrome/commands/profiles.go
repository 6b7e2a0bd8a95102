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
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/walteh/pagechrome/pkg/config"
	"github.com/walteh/pagechrome/pkg/templates"
	"gitlab.com/tozd/go/errors"
)

// NewProfilesCmd creates the profiles command
func NewProfilesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "profiles",
		Short: "List the built-in profiles and templates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data := pterm.TableData{{"Profile", "Blocks", "Pages", "Default"}}
			for _, name := range config.Profiles() {
				p, err := config.Profile(name)
				if err != nil {
					return errors.Errorf("loading profile: %w", err)
				}
				def := ""
				if name == config.DefaultProfile {
					def = "yes"
				}
				data = append(data, []string{name, describeBlocks(p.Blocks), describePages(p), def})
			}

			table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
			if err != nil {
				return errors.Errorf("rendering table: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, table)
			fmt.Fprintf(out, "Templates: %s\n", strings.Join(templates.Names(), ", "))
			return nil
		},
	}
}

func describeBlocks(blocks []config.Block) string {
	parts := make([]string, 0, len(blocks))
	for _, b := range blocks {
		if b.Marker != "" {
			parts = append(parts, fmt.Sprintf("%s after %s", b.Tag, b.Marker))
			continue
		}
		parts = append(parts, b.Tag)
	}
	return strings.Join(parts, ", ")
}

func describePages(c *config.Config) string {
	var parts []string
	if len(c.RootFiles) > 0 {
		parts = append(parts, fmt.Sprintf("%d root files", len(c.RootFiles)))
	}
	if c.RootGlob != "" {
		parts = append(parts, c.RootGlob)
	}
	for _, dir := range c.Subdirs {
		parts = append(parts, dir+"/")
	}
	return strings.Join(parts, ", ")
}
