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
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/walteh/pagechrome/cmd/pagechrome/opts"
	"github.com/walteh/pagechrome/pkg/log"
	"gitlab.com/tozd/go/errors"
)

// NewListCmd creates the list command
func NewListCmd(load opts.Loader) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the pages a run would visit, in order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			o, err := load(cmd)
			if err != nil {
				return err
			}

			runner, err := newRunner(cmd, o)
			if err != nil {
				return err
			}

			pages, err := runner.Candidates(cmd.Context())
			if err != nil {
				return errors.Errorf("listing pages: %w", err)
			}

			if len(pages) == 0 {
				log.FromContext(cmd.Context()).Warningf("no pages found under %s", o.Config.BaseDir)
				return nil
			}

			data := pterm.TableData{{"#", "Page"}}
			for i, page := range pages {
				data = append(data, []string{strconv.Itoa(i + 1), page})
			}

			table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
			if err != nil {
				return errors.Errorf("rendering table: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), table)
			return nil
		},
	}
}
