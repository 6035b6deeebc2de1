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
	"context"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/colshift/cmd/colshift/commands"
	"github.com/walteh/colshift/cmd/colshift/opts"
	"github.com/walteh/colshift/pkg/config"
	"github.com/walteh/colshift/pkg/log"
	"gitlab.com/tozd/go/errors"
)

// rootFlags holds the persistent flags shared by every command
type rootFlags struct {
	configFile      string
	debug           bool
	path            string
	extension       string
	exclude         []string
	dryRun          bool
	backup          bool
	noAtomic        bool
	continueOnError bool
}

// newRootCmd builds the command tree, writing human output to console
func newRootCmd(console io.Writer) *cobra.Command {
	flags := &rootFlags{}
	rootOpts := &opts.RootOpts{}

	cmd := &cobra.Command{
		Use:   "colshift",
		Short: "Insert and reorder columns across a tree of CSV files",
		Long: `colshift applies one column layout change to every CSV file under a directory.
Files are processed one at a time and rewritten atomically.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			setupLogging(flags.debug)

			o, err := newRootOpts(ctx, cmd, flags)
			if err != nil {
				return err
			}
			*rootOpts = *o

			zlog := zerolog.Ctx(ctx)
			cmd.SetContext(log.NewContext(ctx, log.New(console, *zlog)))
			return nil
		},
	}

	addRootFlags(cmd, flags)

	cmd.AddCommand(
		commands.NewInsertCmd(rootOpts),
		commands.NewReorderCmd(rootOpts),
		commands.NewApplyCmd(rootOpts),
		commands.NewListCmd(rootOpts),
		commands.NewVersionCmd(),
	)

	return cmd
}

// newRootOpts loads the config, if any, and applies flag overrides on top of it
func newRootOpts(ctx context.Context, cmd *cobra.Command, flags *rootFlags) (*opts.RootOpts, error) {
	cfg := &config.Config{}
	if flags.configFile != "" {
		loaded, err := config.Load(ctx, flags.configFile)
		if err != nil {
			return nil, errors.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}

	f := cmd.Flags()
	if f.Changed("path") {
		cfg.Path = flags.path
	}
	if f.Changed("extension") {
		cfg.Extension = flags.extension
	}
	if f.Changed("exclude") {
		cfg.Exclude = flags.exclude
	}
	if f.Changed("backup") {
		cfg.Backup = flags.backup
	}
	if f.Changed("no-atomic") {
		cfg.InPlace = flags.noAtomic
	}
	if f.Changed("continue-on-error") {
		cfg.ContinueOnError = flags.continueOnError
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating options: %w", err)
	}

	zerolog.Ctx(ctx).Debug().Str("config", cfg.String()).Bool("dry_run", flags.dryRun).Msg("options resolved")

	return &opts.RootOpts{
		Config: cfg,
		DryRun: flags.dryRun,
	}, nil
}

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command, flags *rootFlags) {
	pf := cmd.PersistentFlags()
	pf.StringVarP(&flags.configFile, "config", "c", "", "config file path (.yaml, .yml, .hcl, .json or .toml)")
	pf.BoolVarP(&flags.debug, "debug", "d", false, "enable debug logging")
	pf.StringVarP(&flags.path, "path", "p", "", "directory to migrate")
	pf.StringVar(&flags.extension, "extension", "", "file extension to match (default csv)")
	pf.StringSliceVar(&flags.exclude, "exclude", nil, "doublestar pattern of paths to skip, relative to --path")
	pf.BoolVar(&flags.dryRun, "dry-run", false, "show the planned change without writing")
	pf.BoolVar(&flags.backup, "backup", false, "copy each file to <file>.bak before writing")
	pf.BoolVar(&flags.noAtomic, "no-atomic", false, "overwrite files in place instead of renaming a temp file")
	pf.BoolVar(&flags.continueOnError, "continue-on-error", false, "keep going after a file fails")
}

// setupLogging configures zerolog based on flags
func setupLogging(debug bool) {
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	}
}
