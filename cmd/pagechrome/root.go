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

package main

import (
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/pagechrome/cmd/pagechrome/commands"
	"github.com/walteh/pagechrome/cmd/pagechrome/opts"
	"github.com/walteh/pagechrome/pkg/config"
	"github.com/walteh/pagechrome/pkg/log"
	"github.com/walteh/pagechrome/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// rootFlags holds the persistent flags shared by every command
type rootFlags struct {
	configFile string
	dir        string
	profile    string
	dryRun     bool
	debug      bool
}

// newRootCmd builds the command tree. Running it without a subcommand applies
// the templates.
func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:   "pagechrome",
		Short: "Keep the header and footer of static pages in sync",
		Long: `pagechrome overwrites the <header> and <footer> blocks of a set of static
HTML pages with one canonical copy. Pages are rewritten only when their text
changes, so running it again is a no-op.

With no flags it works on the current directory, using .pagechrome.{yaml,yml,json,toml,hcl}
when present and the "chrome" profile otherwise.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			zlog := newZerolog(cmd.ErrOrStderr(), flags.debug)
			cmd.SetContext(zlog.WithContext(cmd.Context()))
			return nil
		},
	}

	addRootFlags(rootCmd, flags)

	load := flags.loader()
	apply := commands.NewApplyCmd(load)
	rootCmd.RunE = apply.RunE

	rootCmd.AddCommand(
		apply,
		commands.NewListCmd(load),
		commands.NewStatusCmd(load),
		commands.NewExtractCmd(load),
		commands.NewProfilesCmd(),
		newVersionCmd(),
	)

	return rootCmd
}

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command, flags *rootFlags) {
	cmd.PersistentFlags().StringVarP(&flags.configFile, "config", "c", "", "config file path (default: search the base directory)")
	cmd.PersistentFlags().StringVarP(&flags.dir, "dir", "C", "", "base directory holding the pages (default: config base_dir or current directory)")
	cmd.PersistentFlags().StringVarP(&flags.profile, "profile", "p", "", "profile to start from: "+strings.Join(config.Profiles(), ", "))
	cmd.PersistentFlags().BoolVarP(&flags.dryRun, "dry-run", "n", false, "report what would change without writing")
	cmd.PersistentFlags().BoolVarP(&flags.debug, "debug", "d", false, "enable debug logging")
}

// loader resolves the configuration once flags are parsed
func (f *rootFlags) loader() opts.Loader {
	return func(cmd *cobra.Command) (*opts.RootOpts, error) {
		ctx := cmd.Context()

		cfg, err := config.Resolve(ctx, config.Options{
			Path:    f.configFile,
			Dir:     f.dir,
			Profile: f.profile,
		})
		if err != nil {
			return nil, errors.Errorf("loading config: %w", err)
		}

		logger := log.New(cmd.OutOrStdout(), *zerolog.Ctx(ctx))
		cmd.SetContext(log.NewContext(ctx, logger))

		return &opts.RootOpts{
			Config: cfg,
			Files:  status.New(cfg.BaseDir),
			DryRun: f.dryRun,
		}, nil
	}
}

// newZerolog configures the diagnostic logger. Warnings and errors only,
// unless debug is set.
func newZerolog(w io.Writer, debug bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if debug {
		level = zerolog.DebugLevel
	}
	if f, ok := w.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		w = zerolog.ConsoleWriter{Out: f}
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}
