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
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/colshift/cmd/colshift/opts"
	"github.com/walteh/colshift/pkg/locate"
	"github.com/walteh/colshift/pkg/log"
	"gitlab.com/tozd/go/errors"
)

// NewListCmd creates a new list command
func NewListCmd(opts *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the files a migration would touch",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			root, err := opts.Root()
			if err != nil {
				return err
			}

			files, err := locate.Files(ctx, root, opts.Config.LocateOptions())
			if err != nil {
				return errors.Errorf("locating files: %w", err)
			}

			logger := log.FromContext(ctx)
			for _, file := range files {
				if abs, err := filepath.Abs(file); err == nil {
					file = abs
				}
				logger.Plain(file)
			}

			zerolog.Ctx(ctx).Debug().Int("count", len(files)).Str("root", root).Msg("listed files")
			return nil
		},
	}

	return cmd
}
