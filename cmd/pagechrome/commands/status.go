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

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/walteh/pagechrome/cmd/pagechrome/opts"
	"github.com/walteh/pagechrome/pkg/log"
	"github.com/walteh/pagechrome/pkg/operation"
	"github.com/walteh/pagechrome/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// NewStatusCmd creates the status command. It never writes.
func NewStatusCmd(load opts.Loader) *cobra.Command {
	var concurrency int

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show what a run would change without writing anything",
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

			outcomes, err := runner.Plan(cmd.Context(), concurrency)
			if err != nil {
				return err
			}

			if len(outcomes) == 0 {
				log.FromContext(cmd.Context()).Warningf("no pages found under %s", o.Config.BaseDir)
				return nil
			}

			var summary status.Summary
			data := pterm.TableData{{"Page", "Status", "Detail"}}
			for _, outcome := range outcomes {
				summary.Add(outcome)
				data = append(data, []string{outcome.Path, outcome.Status.String(), detail(outcome)})
			}

			table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
			if err != nil {
				return errors.Errorf("rendering table: %w", err)
			}

			out := cmd.OutOrStdout()
			formatter := status.NewDefaultFileFormatter()
			fmt.Fprintln(out, table)
			fmt.Fprintln(out, formatter.FormatSummary(summary, true))
			if summary.NotFound > 0 || summary.Errors > 0 {
				fmt.Fprintln(out, formatter.FormatDetails(summary))
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&concurrency, "jobs", "j", operation.DefaultPlanConcurrency, "pages to inspect in parallel")

	return cmd
}

func detail(o status.Outcome) string {
	switch {
	case o.Err != nil:
		return o.Err.Error()
	case len(o.Missing) > 0:
		return "missing " + o.MissingTags()
	default:
		return ""
	}
}
