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
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/colshift/cmd/colshift/opts"
	"gitlab.com/tozd/go/errors"
)

// NewApplyCmd creates a new apply command
func NewApplyCmd(opts *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Run the steps of a config file",
		Long: `Apply runs every step listed in the config file, in order.
Each step is applied to the whole file set before the next one starts.
The first failing step stops the run.`,
		Example: `  colshift apply --config colshift.yaml`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if opts.Config.Location() == "" {
				return errors.New("apply needs a config file, use --config")
			}

			ops, err := opts.Config.Operations()
			if err != nil {
				return errors.Errorf("reading steps: %w", err)
			}
			if len(ops) == 0 {
				return errors.Errorf("config %s has no steps", opts.Config.Location())
			}

			zerolog.Ctx(ctx).Debug().
				Str("config", opts.Config.Location()).
				Str("hash", opts.Config.Hash()).
				Int("steps", len(ops)).
				Msg("applying config")

			for i, op := range ops {
				if err := runOperation(ctx, opts, op); err != nil {
					return errors.Errorf("step %d: %w", i+1, err)
				}
			}

			return nil
		},
	}

	return cmd
}
