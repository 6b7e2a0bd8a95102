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
	"github.com/spf13/cobra"
	"github.com/walteh/pagechrome/cmd/pagechrome/opts"
	"github.com/walteh/pagechrome/pkg/log"
	"github.com/walteh/pagechrome/pkg/operation"
	"gitlab.com/tozd/go/errors"
)

// NewApplyCmd creates the apply command. Per-page failures are reported in
// the summary and do not fail the command.
func NewApplyCmd(load opts.Loader) *cobra.Command {
	return &cobra.Command{
		Use:   "apply",
		Short: "Replace the configured blocks in every page",
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

			if _, err := runner.Run(cmd.Context()); err != nil {
				return errors.Errorf("running: %w", err)
			}
			return nil
		},
	}
}

func newRunner(cmd *cobra.Command, o *opts.RootOpts) (*operation.Runner, error) {
	runner, err := operation.NewRunner(operation.Options{
		Config: o.Config,
		Files:  o.Files,
		Logger: log.FromContext(cmd.Context()),
		DryRun: o.DryRun,
	})
	if err != nil {
		return nil, errors.Errorf("creating runner: %w", err)
	}
	return runner, nil
}
